package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"coderrBack/internal/models"
	"coderrBack/internal/services"
)

type ReviewHandler struct {
	Service *services.ReviewService
}

func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var review models.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	review, err := h.Service.CreateReview(r.Context(), requesterFromContext(r), review)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

func (h *ReviewHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	f := models.ReviewFilterRequest{
		Ordering: r.URL.Query().Get("ordering"),
	}
	if raw := r.URL.Query().Get("business_user_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid business_user_id")
			return
		}
		f.BusinessUserID = id
	}
	if raw := r.URL.Query().Get("reviewer_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid reviewer_id")
			return
		}
		f.ReviewerID = id
	}

	reviews, err := h.Service.GetReviewsWithFilters(r.Context(), f)
	if err != nil {
		log.Printf("GetReviews error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list reviews")
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (h *ReviewHandler) GetReviewByID(w http.ResponseWriter, r *http.Request) {
	reviewID, ok := getIntParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid review ID")
		return
	}
	review, err := h.Service.GetReviewByID(r.Context(), reviewID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	reviewID, ok := getIntParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid review ID")
		return
	}

	var req models.ReviewUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	review, err := h.Service.UpdateReview(r.Context(), requesterFromContext(r), reviewID, req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	reviewID, ok := getIntParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid review ID")
		return
	}
	if err := h.Service.DeleteReview(r.Context(), requesterFromContext(r), reviewID); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
