package handler

import (
	"net/http"

	"github.com/Adityaaz10/decision-intelligence-platform/internal/service"
)

// StatsHandler handles aggregate endpoints.
type StatsHandler struct {
	statsSvc *service.StatsService
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(statsSvc *service.StatsService) *StatsHandler {
	return &StatsHandler{statsSvc: statsSvc}
}

// PopularOptions handles GET /v1/options/popular
func (h *StatsHandler) PopularOptions(w http.ResponseWriter, r *http.Request) {
	limit, ok := limitParam(w, r)
	if !ok {
		return
	}

	popular, err := h.statsSvc.PopularOptions(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"options": popular})
}
