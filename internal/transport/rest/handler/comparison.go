package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Adityaaz10/decision-intelligence-platform/internal/engine"
	"github.com/Adityaaz10/decision-intelligence-platform/internal/model"
	"github.com/Adityaaz10/decision-intelligence-platform/internal/service"
)

const defaultListLimit = 10

// ComparisonHandler handles comparison endpoints.
type ComparisonHandler struct {
	decisionSvc *service.DecisionService
	statsSvc    *service.StatsService
}

// NewComparisonHandler creates a new comparison handler.
func NewComparisonHandler(decisionSvc *service.DecisionService, statsSvc *service.StatsService) *ComparisonHandler {
	return &ComparisonHandler{decisionSvc: decisionSvc, statsSvc: statsSvc}
}

// Compare handles POST /v1/compare
func (h *ComparisonHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req model.ComparisonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.decisionSvc.Compare(r.Context(), &req)
	if err != nil {
		var verr *engine.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Get handles GET /v1/comparisons/{id}
func (h *ComparisonHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	record, err := h.decisionSvc.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if record == nil {
		writeError(w, http.StatusNotFound, "comparison not found")
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// List handles GET /v1/comparisons
func (h *ComparisonHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, ok := limitParam(w, r)
	if !ok {
		return
	}

	summaries, err := h.statsSvc.Recent(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"comparisons": summaries})
}

// Search handles GET /v1/comparisons/search
func (h *ComparisonHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "query parameter q is required")
		return
	}
	limit, ok := limitParam(w, r)
	if !ok {
		return
	}

	summaries, err := h.statsSvc.Search(r.Context(), query, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"comparisons": summaries})
}

// limitParam parses the optional limit query parameter, writing a 400 on
// garbage input.
func limitParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultListLimit, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		writeError(w, http.StatusBadRequest, "invalid limit")
		return 0, false
	}
	return limit, true
}

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
