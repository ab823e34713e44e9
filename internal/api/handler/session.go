package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/mwjones-dev/pokernight/internal/api/request"
	"github.com/mwjones-dev/pokernight/internal/api/response"
	"github.com/mwjones-dev/pokernight/internal/model"
	"github.com/mwjones-dev/pokernight/internal/services/session"
)

// SessionHandler handles session scheduling endpoints
type SessionHandler struct {
	sessionService *session.Service
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService *session.Service) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

// List handles GET /api/v1/sessions
// Supports ?from=YYYY-MM-DD to return only sessions on or after that date.
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	var from *time.Time
	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := time.ParseInLocation(model.DateFormat, raw, time.UTC)
		if err != nil {
			WriteError(w, NewInvalidRequestError("from must be in YYYY-MM-DD format"))
			return
		}
		from = &parsed
	}

	sessions, err := h.sessionService.List(r.Context(), from)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionsFromModel(sessions))
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}

	created, err := h.sessionService.Create(r.Context(), session.CreateParams{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		GameType:    model.GameType(req.GameType),
		BuyIn:       req.BuyIn,
		Date:        req.Date,
		TimeOfDay:   req.Time,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SessionFromModel(created))
}

// Get handles GET /api/v1/sessions/{session_id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["session_id"])

	s, err := h.sessionService.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(s))
}

// Update handles PATCH /api/v1/sessions/{session_id}
func (h *SessionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["session_id"])

	var req request.UpdateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	params := session.UpdateParams{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		BuyIn:       req.BuyIn,
		Date:        req.Date,
		TimeOfDay:   req.Time,
	}
	if req.GameType != nil {
		gt := model.GameType(*req.GameType)
		params.GameType = &gt
	}

	updated, err := h.sessionService.Update(r.Context(), id, params)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(updated))
}

// Delete handles DELETE /api/v1/sessions/{session_id}
// Deleting a session also removes its ledger rows.
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["session_id"])

	if err := h.sessionService.Delete(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
