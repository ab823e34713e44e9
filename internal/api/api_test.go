package api_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwjones-dev/pokernight/internal/api"
	"github.com/mwjones-dev/pokernight/internal/api/response"
	"github.com/mwjones-dev/pokernight/internal/factory"
	"github.com/mwjones-dev/pokernight/internal/services/auth"
	"github.com/mwjones-dev/pokernight/internal/storage/memory"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	storage *memory.Storage
	auth    *auth.Service
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// API tests are integration tests - use production factory with real clock
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:             logger,
		AuthService:        app.AuthService,
		RosterService:      app.RosterService,
		SessionService:     app.SessionService,
		ScheduleService:    app.ScheduleService,
		LedgerService:      app.LedgerService,
		LeaderboardService: app.LeaderboardService,
	})

	return &testServer{
		handler: router,
		storage: app.Storage.(*memory.Storage),
		auth:    app.AuthService,
	}
}

func (ts *testServer) request(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestRegisterAndLogin(t *testing.T) {
	ts := newTestServer(t)

	// Register
	registerBody := map[string]string{
		"email":    "host@example.com",
		"password": "secret123",
	}
	rr := ts.request(http.MethodPost, "/api/v1/auth/register", registerBody, "")
	assert.Equal(t, http.StatusCreated, rr.Code)

	var registerResp response.AuthResponse
	err := json.Unmarshal(rr.Body.Bytes(), &registerResp)
	require.NoError(t, err)
	assert.NotEmpty(t, registerResp.SessionToken)

	// Login
	loginBody := map[string]string{
		"email":    "host@example.com",
		"password": "secret123",
	}
	rr = ts.request(http.MethodPost, "/api/v1/auth/login", loginBody, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var loginResp response.AuthResponse
	err = json.Unmarshal(rr.Body.Bytes(), &loginResp)
	require.NoError(t, err)
	assert.Equal(t, registerResp.AccountID, loginResp.AccountID)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	ts := newTestServer(t)
	token := registerOperator(t, ts, "host@example.com")

	rr := ts.request(http.MethodPost, "/api/v1/auth/logout", nil, token)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/auth/me", nil, token)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestUnauthorizedWithoutToken(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/auth/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// Mutations need a session
	rr = ts.request(http.MethodPost, "/api/v1/players", map[string]string{"name": "Alice"}, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// Reads are public
	rr = ts.request(http.MethodGet, "/api/v1/players", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestPlayerCRUD(t *testing.T) {
	ts := newTestServer(t)
	token := registerOperator(t, ts, "host@example.com")

	// Create
	rr := ts.request(http.MethodPost, "/api/v1/players", map[string]any{"name": "Alice"}, token)
	assert.Equal(t, http.StatusCreated, rr.Code)

	var created response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, "Alice", created.Name)
	assert.Equal(t, 0, created.Wins)
	assert.True(t, created.Earnings.IsZero())

	// Get
	rr = ts.request(http.MethodGet, "/api/v1/players/"+created.ID, nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	// Update
	updateBody := map[string]any{"name": "Alice B", "wins": 3, "earnings": "250.50"}
	rr = ts.request(http.MethodPut, "/api/v1/players/"+created.ID, updateBody, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var updated response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, "Alice B", updated.Name)
	assert.Equal(t, 3, updated.Wins)
	assert.Equal(t, "250.5", updated.Earnings.String())

	// Delete
	rr = ts.request(http.MethodDelete, "/api/v1/players/"+created.ID, nil, token)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/players/"+created.ID, nil, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCreatePlayerValidation(t *testing.T) {
	ts := newTestServer(t)
	token := registerOperator(t, ts, "host@example.com")

	rr := ts.request(http.MethodPost, "/api/v1/players", map[string]any{"name": "   "}, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/players", map[string]any{"name": "Alice", "wins": -1}, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSessionCRUD(t *testing.T) {
	ts := newTestServer(t)
	token := registerOperator(t, ts, "host@example.com")

	body := map[string]any{
		"name":      "Friday Night",
		"location":  "Dave's place",
		"game_type": "Texas Hold'em",
		"buy_in":    "50",
		"date":      "2030-04-20",
		"time":      "19:00",
	}
	rr := ts.request(http.MethodPost, "/api/v1/sessions", body, token)
	assert.Equal(t, http.StatusCreated, rr.Code)

	var created response.Session
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, "Friday Night", created.Name)
	assert.Equal(t, "2030-04-20", created.Date)
	assert.Equal(t, "19:00", created.Time)

	// Partial update leaves other fields alone
	rr = ts.request(http.MethodPatch, "/api/v1/sessions/"+created.ID, map[string]any{"location": "Eve's place"}, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var updated response.Session
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, "Eve's place", updated.Location)
	assert.Equal(t, "Friday Night", updated.Name)

	// Delete
	rr = ts.request(http.MethodDelete, "/api/v1/sessions/"+created.ID, nil, token)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/sessions/"+created.ID, nil, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCreateSessionValidation(t *testing.T) {
	ts := newTestServer(t)
	token := registerOperator(t, ts, "host@example.com")

	body := map[string]any{
		"name":      "Bad Night",
		"game_type": "Blackjack",
		"buy_in":    "50",
		"date":      "2030-04-20",
		"time":      "19:00",
	}
	rr := ts.request(http.MethodPost, "/api/v1/sessions", body, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	body["game_type"] = "Texas Hold'em"
	body["date"] = "20/04/2030"
	rr = ts.request(http.MethodPost, "/api/v1/sessions", body, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLedgerFlow(t *testing.T) {
	ts := newTestServer(t)
	token := registerOperator(t, ts, "host@example.com")

	alice := createRosterPlayer(t, ts, token, "Alice")
	bob := createRosterPlayer(t, ts, token, "Bob")
	sessionID := createSession(t, ts, token, "Friday Night")

	// Alice joins with 100
	joinBody := map[string]any{"player_id": alice, "buy_in": "100"}
	rr := ts.request(http.MethodPost, "/api/v1/sessions/"+sessionID+"/players", joinBody, token)
	assert.Equal(t, http.StatusCreated, rr.Code)

	// Joining twice conflicts
	rr = ts.request(http.MethodPost, "/api/v1/sessions/"+sessionID+"/players", joinBody, token)
	assert.Equal(t, http.StatusConflict, rr.Code)

	// Bob is still eligible, Alice is not
	rr = ts.request(http.MethodGet, "/api/v1/sessions/"+sessionID+"/eligible-players", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var eligible []response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &eligible))
	require.Len(t, eligible, 1)
	assert.Equal(t, bob, eligible[0].ID)

	// Rebuy
	rr = ts.request(http.MethodPost, "/api/v1/sessions/"+sessionID+"/players/"+alice+"/rebuy", map[string]any{"amount": "50"}, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var row response.SessionPlayer
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &row))
	assert.Equal(t, "150", row.TotalBuyIn.String())
	assert.Equal(t, "100", row.InitialBuyIn.String())

	// Cash out
	rr = ts.request(http.MethodPost, "/api/v1/sessions/"+sessionID+"/players/"+alice+"/cash-out", map[string]any{"amount": "200"}, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &row))
	assert.Equal(t, "completed", row.Status)
	require.NotNil(t, row.Profit)
	assert.Equal(t, "50", row.Profit.String())
	assert.Equal(t, "gain", row.ProfitClass)

	// Second cash-out conflicts
	rr = ts.request(http.MethodPost, "/api/v1/sessions/"+sessionID+"/players/"+alice+"/cash-out", map[string]any{"amount": "999"}, token)
	assert.Equal(t, http.StatusConflict, rr.Code)

	// Member listing carries the player name
	rr = ts.request(http.MethodGet, "/api/v1/sessions/"+sessionID+"/players", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var members []response.SessionPlayer
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &members))
	require.Len(t, members, 1)
	assert.Equal(t, "Alice", members[0].PlayerName)
}

func TestJoinValidation(t *testing.T) {
	ts := newTestServer(t)
	token := registerOperator(t, ts, "host@example.com")

	alice := createRosterPlayer(t, ts, token, "Alice")
	sessionID := createSession(t, ts, token, "Friday Night")

	// buy_in must be present; an explicit zero is fine
	rr := ts.request(http.MethodPost, "/api/v1/sessions/"+sessionID+"/players", map[string]any{"player_id": alice}, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/sessions/"+sessionID+"/players", map[string]any{"player_id": alice, "buy_in": "0"}, token)
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestRebuyValidation(t *testing.T) {
	ts := newTestServer(t)
	token := registerOperator(t, ts, "host@example.com")

	alice := createRosterPlayer(t, ts, token, "Alice")
	sessionID := createSession(t, ts, token, "Friday Night")

	joinBody := map[string]any{"player_id": alice, "buy_in": "100"}
	rr := ts.request(http.MethodPost, "/api/v1/sessions/"+sessionID+"/players", joinBody, token)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/sessions/"+sessionID+"/players/"+alice+"/rebuy", map[string]any{"amount": "0"}, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSchedule(t *testing.T) {
	ts := newTestServer(t)
	token := registerOperator(t, ts, "host@example.com")

	createSessionOn(t, ts, token, "Long Past", "2020-01-15")
	createSessionOn(t, ts, token, "Far Future", "2100-04-20")

	rr := ts.request(http.MethodGet, "/api/v1/schedule", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var sched response.Schedule
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &sched))
	require.Len(t, sched.Upcoming, 1)
	require.Len(t, sched.Past, 1)
	assert.Equal(t, "Far Future", sched.Upcoming[0].Name)
	assert.Equal(t, "Long Past", sched.Past[0].Name)
}

func TestLeaderboard(t *testing.T) {
	ts := newTestServer(t)
	token := registerOperator(t, ts, "host@example.com")

	rr := ts.request(http.MethodPost, "/api/v1/players", map[string]any{"name": "Alice", "wins": 5, "earnings": "100"}, token)
	require.Equal(t, http.StatusCreated, rr.Code)
	rr = ts.request(http.MethodPost, "/api/v1/players", map[string]any{"name": "Bob", "wins": 2, "earnings": "900"}, token)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/leaderboard", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var byWins []response.LeaderboardEntry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &byWins))
	require.Len(t, byWins, 2)
	assert.Equal(t, "Alice", byWins[0].Player.Name)
	assert.Equal(t, 1, byWins[0].Rank)

	rr = ts.request(http.MethodGet, "/api/v1/leaderboard?sort=earnings", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var byEarnings []response.LeaderboardEntry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &byEarnings))
	assert.Equal(t, "Bob", byEarnings[0].Player.Name)

	rr = ts.request(http.MethodGet, "/api/v1/leaderboard?sort=losses", nil, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// Helper functions

func registerOperator(t *testing.T, ts *testServer, email string) string {
	t.Helper()

	body := map[string]string{"email": email, "password": "secret123"}
	rr := ts.request(http.MethodPost, "/api/v1/auth/register", body, "")
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp response.AuthResponse
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)

	return resp.SessionToken
}

func createRosterPlayer(t *testing.T, ts *testServer, token, name string) string {
	t.Helper()

	rr := ts.request(http.MethodPost, "/api/v1/players", map[string]any{"name": name}, token)
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.ID
}

func createSession(t *testing.T, ts *testServer, token, name string) string {
	t.Helper()
	return createSessionOn(t, ts, token, name, "2030-04-20")
}

func createSessionOn(t *testing.T, ts *testServer, token, name, date string) string {
	t.Helper()

	body := map[string]any{
		"name":      name,
		"game_type": "Texas Hold'em",
		"buy_in":    "50",
		"date":      date,
		"time":      "19:00",
	}
	rr := ts.request(http.MethodPost, "/api/v1/sessions", body, token)
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp response.Session
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.ID
}
