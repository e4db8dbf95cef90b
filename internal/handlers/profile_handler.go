package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"coderrBack/internal/models"
	"coderrBack/internal/services"
	"coderrBack/utils"
)

type ProfileHandler struct {
	Service   *services.ProfileService
	UploadDir string
	Storage   *utils.S3Storage
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := getIntParam(r, "user_id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid user ID")
		return
	}
	profile, err := h.Service.GetProfile(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := getIntParam(r, "user_id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	var req models.ProfileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := h.Service.UpdateProfile(r.Context(), requesterFromContext(r), userID, req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) GetBusinessProfiles(w http.ResponseWriter, r *http.Request) {
	h.listProfilesByType(w, r, models.RoleBusiness)
}

func (h *ProfileHandler) GetCustomerProfiles(w http.ResponseWriter, r *http.Request) {
	h.listProfilesByType(w, r, models.RoleCustomer)
}

func (h *ProfileHandler) listProfilesByType(w http.ResponseWriter, r *http.Request, profileType string) {
	profiles, err := h.Service.GetProfilesByType(r.Context(), profileType)
	if err != nil {
		log.Printf("listProfilesByType error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list profiles")
		return
	}
	writeJSON(w, http.StatusOK, profiles)
}

func (h *ProfileHandler) GetBusinessProfileByID(w http.ResponseWriter, r *http.Request) {
	h.getProfileByType(w, r, models.RoleBusiness)
}

func (h *ProfileHandler) GetCustomerProfileByID(w http.ResponseWriter, r *http.Request) {
	h.getProfileByType(w, r, models.RoleCustomer)
}

func (h *ProfileHandler) getProfileByType(w http.ResponseWriter, r *http.Request, profileType string) {
	userID, ok := getIntParam(r, "user_id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid user ID")
		return
	}
	profile, err := h.Service.GetProfileByType(r.Context(), userID, profileType)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// UploadProfileFile stores an uploaded profile document or avatar and records
// its path on the profile.
func (h *ProfileHandler) UploadProfileFile(w http.ResponseWriter, r *http.Request) {
	userID, ok := getIntParam(r, "user_id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil { // 32MB
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	uploadDir := filepath.Join(h.UploadDir, "profiles")
	if _, err := os.Stat(uploadDir); os.IsNotExist(err) {
		if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
			writeError(w, http.StatusInternalServerError, "failed to create upload directory")
			return
		}
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read file")
		return
	}

	filename := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(fileHeader.Filename))
	if err := os.WriteFile(filepath.Join(uploadDir, filename), data, 0o644); err != nil {
		writeError(w, http.StatusInternalServerError, "cannot save file")
		return
	}

	filePath := "/images/profiles/" + filename
	if h.Storage != nil {
		url, err := h.Storage.UploadFile(data, filename, "profiles", fileHeader.Header.Get("Content-Type"))
		if err != nil {
			log.Printf("S3 upload failed, keeping local copy: %v", err)
		} else {
			filePath = url
		}
	}

	profile, err := h.Service.SetProfileFile(r.Context(), requesterFromContext(r), userID, filePath)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) ServeProfileFile(w http.ResponseWriter, r *http.Request) {
	filename := getParam(r, "filename")
	if filename == "" || filename != filepath.Base(filename) {
		writeError(w, http.StatusBadRequest, "invalid filename")
		return
	}
	http.ServeFile(w, r, filepath.Join(h.UploadDir, "profiles", filename))
}
