package handler

import (
	"net/http"

	"github.com/mwjones-dev/pokernight/internal/api/response"
	"github.com/mwjones-dev/pokernight/internal/services/schedule"
)

// ScheduleHandler handles the schedule view endpoint
type ScheduleHandler struct {
	scheduleService *schedule.Service
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(scheduleService *schedule.Service) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
	}
}

// Get handles GET /api/v1/schedule
func (h *ScheduleHandler) Get(w http.ResponseWriter, r *http.Request) {
	partition, err := h.scheduleService.Partition(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ScheduleFromPartition(partition))
}
