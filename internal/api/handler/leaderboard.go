package handler

import (
	"net/http"

	"github.com/mwjones-dev/pokernight/internal/api/response"
	"github.com/mwjones-dev/pokernight/internal/services/leaderboard"
)

// LeaderboardHandler handles the leaderboard endpoint
type LeaderboardHandler struct {
	leaderboardService *leaderboard.Service
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(leaderboardService *leaderboard.Service) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
	}
}

// Get handles GET /api/v1/leaderboard
// Supports ?sort=wins|earnings, defaulting to wins.
func (h *LeaderboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := leaderboard.SortKey(r.URL.Query().Get("sort"))

	entries, err := h.leaderboardService.Rank(r.Context(), key)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LeaderboardFromEntries(entries))
}
