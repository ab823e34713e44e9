package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mwjones-dev/pokernight/internal/api/request"
	"github.com/mwjones-dev/pokernight/internal/api/response"
	"github.com/mwjones-dev/pokernight/internal/model"
	"github.com/mwjones-dev/pokernight/internal/services/ledger"
)

// LedgerHandler handles session membership endpoints
type LedgerHandler struct {
	ledgerService *ledger.Service
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(ledgerService *ledger.Service) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

// Join handles POST /api/v1/sessions/{session_id}/players
func (h *LedgerHandler) Join(w http.ResponseWriter, r *http.Request) {
	sessionID := model.SessionID(mux.Vars(r)["session_id"])

	var req request.JoinSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.PlayerID == "" {
		WriteError(w, NewInvalidRequestError("player_id is required"))
		return
	}
	if req.BuyIn == nil {
		WriteError(w, NewInvalidRequestError("buy_in is required"))
		return
	}

	m, err := h.ledgerService.Join(r.Context(), sessionID, model.PlayerID(req.PlayerID), *req.BuyIn)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SessionPlayerFromMembership(m, ""))
}

// Members handles GET /api/v1/sessions/{session_id}/players
func (h *LedgerHandler) Members(w http.ResponseWriter, r *http.Request) {
	sessionID := model.SessionID(mux.Vars(r)["session_id"])

	members, err := h.ledgerService.Members(r.Context(), sessionID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionPlayersFromMembers(members))
}

// EligiblePlayers handles GET /api/v1/sessions/{session_id}/eligible-players
func (h *LedgerHandler) EligiblePlayers(w http.ResponseWriter, r *http.Request) {
	sessionID := model.SessionID(mux.Vars(r)["session_id"])

	players, err := h.ledgerService.EligiblePlayers(r.Context(), sessionID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayersFromModel(players))
}

// Rebuy handles POST /api/v1/sessions/{session_id}/players/{player_id}/rebuy
func (h *LedgerHandler) Rebuy(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := model.SessionID(vars["session_id"])
	playerID := model.PlayerID(vars["player_id"])

	var req request.RebuyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	m, err := h.ledgerService.Rebuy(r.Context(), sessionID, playerID, req.Amount)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionPlayerFromMembership(m, ""))
}

// CashOut handles POST /api/v1/sessions/{session_id}/players/{player_id}/cash-out
func (h *LedgerHandler) CashOut(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := model.SessionID(vars["session_id"])
	playerID := model.PlayerID(vars["player_id"])

	var req request.CashOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	m, err := h.ledgerService.CashOut(r.Context(), sessionID, playerID, req.Amount)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionPlayerFromMembership(m, ""))
}
