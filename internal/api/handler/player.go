package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/mwjones-dev/pokernight/internal/api/request"
	"github.com/mwjones-dev/pokernight/internal/api/response"
	"github.com/mwjones-dev/pokernight/internal/model"
	"github.com/mwjones-dev/pokernight/internal/services/roster"
)

// PlayerHandler handles roster endpoints
type PlayerHandler struct {
	rosterService *roster.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(rosterService *roster.Service) *PlayerHandler {
	return &PlayerHandler{
		rosterService: rosterService,
	}
}

// List handles GET /api/v1/players
// Supports ?sort=earnings|name and ?order=asc|desc. The default is earnings
// descending, matching the directory page.
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	key := roster.SortByEarnings
	desc := true

	switch r.URL.Query().Get("sort") {
	case "", "earnings":
	case "name":
		key = roster.SortByName
		desc = false
	default:
		WriteError(w, NewInvalidRequestError("sort must be earnings or name"))
		return
	}

	switch r.URL.Query().Get("order") {
	case "":
	case "asc":
		desc = false
	case "desc":
		desc = true
	default:
		WriteError(w, NewInvalidRequestError("order must be asc or desc"))
		return
	}

	players, err := h.rosterService.ListPlayers(r.Context(), key, desc)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayersFromModel(players))
}

// Create handles POST /api/v1/players
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	earnings := decimal.Zero
	if req.Earnings != nil {
		earnings = *req.Earnings
	}

	player, err := h.rosterService.AddPlayer(r.Context(), req.Name, earnings, req.Wins)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(player))
}

// Get handles GET /api/v1/players/{player_id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["player_id"])

	player, err := h.rosterService.GetPlayer(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Update handles PUT /api/v1/players/{player_id}
func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["player_id"])

	var req request.UpdatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	player, err := h.rosterService.UpdatePlayer(r.Context(), id, req.Name, req.Earnings, req.Wins)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Delete handles DELETE /api/v1/players/{player_id}
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["player_id"])

	if err := h.rosterService.RemovePlayer(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
