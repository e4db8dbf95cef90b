package handlers

import (
	"encoding/json"
	"net/http"

	"coderrBack/internal/models"
	"coderrBack/internal/services"
)

type UserHandler struct {
	Service *services.UserService
}

func (h *UserHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.Service.SignUp(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *UserHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.Service.SignIn(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *UserHandler) LogOut(w http.ResponseWriter, r *http.Request) {
	requester := requesterFromContext(r)
	if requester.ID == 0 {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	if err := h.Service.LogOut(r.Context(), requester.ID); err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"detail": "logged out"})
}
