package handlers

import (
	"net/http"

	"coderrBack/internal/models"
	"coderrBack/internal/services"
)

type StatisticsHandler struct {
	Service *services.StatisticsService
}

// GetBaseInfo serves the public platform counters.
func (h *StatisticsHandler) GetBaseInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.Service.GetBaseInfo(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (h *StatisticsHandler) GetOrderCount(w http.ResponseWriter, r *http.Request) {
	businessUserID, ok := getIntParam(r, "business_user_id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid business user ID")
		return
	}
	count, err := h.Service.GetOrderCount(r.Context(), businessUserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.OrderCountResponse{OrderCount: count})
}

func (h *StatisticsHandler) GetCompletedOrderCount(w http.ResponseWriter, r *http.Request) {
	businessUserID, ok := getIntParam(r, "business_user_id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid business user ID")
		return
	}
	count, err := h.Service.GetCompletedOrderCount(r.Context(), businessUserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.CompletedOrderCountResponse{CompletedOrderCount: count})
}
