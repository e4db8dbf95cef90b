package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"coderrBack/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			log.Printf("writeJSON error: %v", err)
		}
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// respondServiceError translates domain errors into the response taxonomy:
// validation -> 400 with field-keyed messages, permission -> 403, missing
// entity -> 404, conflicts -> 409/400.
func respondServiceError(w http.ResponseWriter, err error) {
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		writeJSON(w, http.StatusBadRequest, ve.Fields)
		return
	}

	switch {
	case errors.Is(err, models.ErrDuplicateUsername):
		writeJSON(w, http.StatusBadRequest, map[string][]string{"username": {"this username is already taken"}})
	case errors.Is(err, models.ErrDuplicateEmail):
		writeJSON(w, http.StatusBadRequest, map[string][]string{"email": {"a user with this email already exists"}})
	case errors.Is(err, models.ErrPermissionDenied):
		writeError(w, http.StatusForbidden, "permission denied")
	case errors.Is(err, models.ErrInvalidCredentials):
		writeError(w, http.StatusBadRequest, "invalid credentials")
	case errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrProfileNotFound),
		errors.Is(err, models.ErrOfferNotFound),
		errors.Is(err, models.ErrOfferDetailNotFound),
		errors.Is(err, models.ErrOrderNotFound),
		errors.Is(err, models.ErrReviewNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrAlreadyReviewed):
		writeError(w, http.StatusConflict, "you can only leave one review per business user")
	case errors.Is(err, models.ErrInvalidStatusTransition):
		writeError(w, http.StatusBadRequest, "invalid order status transition")
	case isForeignKeyConstraintError(err):
		writeError(w, http.StatusBadRequest, "referenced record does not exist")
	default:
		log.Printf("internal error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// requesterFromContext rebuilds the authenticated caller from the values the
// JWT middleware stored on the request context.
func requesterFromContext(r *http.Request) models.Requester {
	var req models.Requester
	if id, ok := r.Context().Value("user_id").(int); ok {
		req.ID = id
	}
	if role, ok := r.Context().Value("role").(string); ok {
		req.Role = role
	}
	if isStaff, ok := r.Context().Value("is_staff").(bool); ok {
		req.IsStaff = isStaff
	}
	return req
}
