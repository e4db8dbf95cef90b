package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"coderrBack/internal/models"
	"coderrBack/internal/services"
	"coderrBack/utils"
)

type OfferHandler struct {
	Service         *services.OfferService
	UploadDir       string
	Storage         *utils.S3Storage
	DefaultPageSize int
	MaxPageSize     int
}

// offerWriteResponse is the write-context shape: full detail objects plus the
// derived aggregates computed from the in-memory aggregate.
type offerWriteResponse struct {
	models.Offer
	MinPrice        float64 `json:"min_price"`
	MinDeliveryTime int     `json:"min_delivery_time"`
}

func newOfferWriteResponse(offer models.Offer) offerWriteResponse {
	minPrice, minDelivery := offer.ComputeAggregates()
	return offerWriteResponse{Offer: offer, MinPrice: minPrice, MinDeliveryTime: minDelivery}
}

func (h *OfferHandler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	var req models.OfferCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	offer, err := h.Service.CreateOffer(r.Context(), requesterFromContext(r), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, newOfferWriteResponse(offer))
}

func (h *OfferHandler) UpdateOffer(w http.ResponseWriter, r *http.Request) {
	offerID, ok := getIntParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid offer ID")
		return
	}

	var req models.OfferUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	offer, err := h.Service.UpdateOffer(r.Context(), requesterFromContext(r), offerID, req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newOfferWriteResponse(offer))
}

func (h *OfferHandler) DeleteOffer(w http.ResponseWriter, r *http.Request) {
	offerID, ok := getIntParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid offer ID")
		return
	}
	if err := h.Service.DeleteOffer(r.Context(), requesterFromContext(r), offerID); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *OfferHandler) GetOfferByID(w http.ResponseWriter, r *http.Request) {
	offerID, ok := getIntParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid offer ID")
		return
	}
	view, err := h.Service.GetOffer(r.Context(), offerID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *OfferHandler) GetOfferDetailByID(w http.ResponseWriter, r *http.Request) {
	detailID, ok := getIntParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid offer detail ID")
		return
	}
	detail, err := h.Service.GetOfferDetail(r.Context(), detailID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// parseOfferFilters reads the list query parameters. Page and page_size fall
// back to their defaults when absent or out of range; page_size is capped at
// the configured maximum.
func parseOfferFilters(r *http.Request, defaultPageSize, maxPageSize int) (models.OfferFilterRequest, error) {
	f := models.OfferFilterRequest{
		Search:   r.URL.Query().Get("search"),
		Ordering: r.URL.Query().Get("ordering"),
		Page:     1,
		PageSize: defaultPageSize,
	}

	if raw := r.URL.Query().Get("creator_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return f, errors.New("invalid creator_id")
		}
		f.CreatorID = id
	}
	if raw := r.URL.Query().Get("min_price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return f, errors.New("invalid min_price")
		}
		f.MinPrice = price
		f.HasMinPrice = true
	}
	if raw := r.URL.Query().Get("max_delivery_time"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			return f, errors.New("invalid max_delivery_time")
		}
		f.MaxDeliveryTime = days
		f.HasMaxDelivery = true
	}
	if raw := r.URL.Query().Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page > 0 {
			f.Page = page
		}
	}
	if raw := r.URL.Query().Get("page_size"); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil && size > 0 {
			f.PageSize = size
		}
	}
	if f.PageSize > maxPageSize {
		f.PageSize = maxPageSize
	}
	return f, nil
}

func (h *OfferHandler) GetOffers(w http.ResponseWriter, r *http.Request) {
	f, err := parseOfferFilters(r, h.DefaultPageSize, h.MaxPageSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.Service.GetOffersWithFilters(r.Context(), f)
	if err != nil {
		log.Printf("GetOffers error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list offers")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// UploadOfferImage stores an offer image on disk (and mirrors it to S3 when
// configured), then records the resulting path on the offer.
func (h *OfferHandler) UploadOfferImage(w http.ResponseWriter, r *http.Request) {
	offerID, ok := getIntParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid offer ID")
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil { // 32MB
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, fileHeader, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	uploadDir := filepath.Join(h.UploadDir, "offers")
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

	imagePath := "/images/offers/" + filename
	if h.Storage != nil {
		url, err := h.Storage.UploadFile(data, filename, "offers", fileHeader.Header.Get("Content-Type"))
		if err != nil {
			log.Printf("S3 upload failed, keeping local copy: %v", err)
		} else {
			imagePath = url
		}
	}

	if err := h.Service.SetOfferImage(r.Context(), requesterFromContext(r), offerID, imagePath); err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"image": imagePath})
}

func (h *OfferHandler) ServeOfferImage(w http.ResponseWriter, r *http.Request) {
	filename := getParam(r, "filename")
	if filename == "" || filename != filepath.Base(filename) {
		writeError(w, http.StatusBadRequest, "invalid filename")
		return
	}
	http.ServeFile(w, r, filepath.Join(h.UploadDir, "offers", filename))
}
