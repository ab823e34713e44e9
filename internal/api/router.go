package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mwjones-dev/pokernight/internal/api/handler"
	apimiddleware "github.com/mwjones-dev/pokernight/internal/api/middleware"
	"github.com/mwjones-dev/pokernight/internal/middleware"
	"github.com/mwjones-dev/pokernight/internal/services/auth"
	"github.com/mwjones-dev/pokernight/internal/services/leaderboard"
	"github.com/mwjones-dev/pokernight/internal/services/ledger"
	"github.com/mwjones-dev/pokernight/internal/services/roster"
	"github.com/mwjones-dev/pokernight/internal/services/schedule"
	"github.com/mwjones-dev/pokernight/internal/services/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	AuthService        *auth.Service
	RosterService      *roster.Service
	SessionService     *session.Service
	ScheduleService    *schedule.Service
	LedgerService      *ledger.Service
	LeaderboardService *leaderboard.Service
}

// NewRouter creates a new API router with all routes configured.
// Reads are public; anything that mutates the roster, schedule or ledger
// requires an operator session.
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	playerHandler := handler.NewPlayerHandler(cfg.RosterService)
	sessionHandler := handler.NewSessionHandler(cfg.SessionService)
	scheduleHandler := handler.NewScheduleHandler(cfg.ScheduleService)
	ledgerHandler := handler.NewLedgerHandler(cfg.LedgerService)
	leaderboardHandler := handler.NewLeaderboardHandler(cfg.LeaderboardService)

	// Create middleware
	authMiddleware := apimiddleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := apimiddleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Auth routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(authMiddleware)
	authProtected.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", authHandler.GetMe).Methods(http.MethodGet)

	// Public read routes
	api.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/players/{player_id}", playerHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/sessions", sessionHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{session_id}", sessionHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{session_id}/players", ledgerHandler.Members).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{session_id}/eligible-players", ledgerHandler.EligiblePlayers).Methods(http.MethodGet)
	api.HandleFunc("/schedule", scheduleHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/leaderboard", leaderboardHandler.Get).Methods(http.MethodGet)

	// Mutating routes require auth
	protected := api.NewRoute().Subrouter()
	protected.Use(authMiddleware)
	protected.HandleFunc("/players", playerHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/players/{player_id}", playerHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/players/{player_id}", playerHandler.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/sessions", sessionHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/sessions/{session_id}", sessionHandler.Update).Methods(http.MethodPatch)
	protected.HandleFunc("/sessions/{session_id}", sessionHandler.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/sessions/{session_id}/players", ledgerHandler.Join).Methods(http.MethodPost)
	protected.HandleFunc("/sessions/{session_id}/players/{player_id}/rebuy", ledgerHandler.Rebuy).Methods(http.MethodPost)
	protected.HandleFunc("/sessions/{session_id}/players/{player_id}/cash-out", ledgerHandler.CashOut).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
