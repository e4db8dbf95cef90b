package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"coderrBack/internal/models"
	"coderrBack/internal/services"
)

type OrderHandler struct {
	Service *services.OrderService
}

func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.Service.CreateOrder(r.Context(), requesterFromContext(r), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Service.GetOrdersForUser(r.Context(), requesterFromContext(r))
	if err != nil {
		log.Printf("GetOrders error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list orders")
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	orderID, ok := getIntParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid order ID")
		return
	}
	order, err := h.Service.GetOrderByID(r.Context(), requesterFromContext(r), orderID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID, ok := getIntParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid order ID")
		return
	}

	var req models.OrderStatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.Service.UpdateStatus(r.Context(), requesterFromContext(r), orderID, req.Status)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := getIntParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid order ID")
		return
	}
	if err := h.Service.DeleteOrder(r.Context(), requesterFromContext(r), orderID); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
