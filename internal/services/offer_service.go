package services

import (
	"context"
	"fmt"
	"strings"

	"coderrBack/internal/models"
	"coderrBack/internal/repositories"
)

type OfferService struct {
	OfferRepo *repositories.OfferRepository
}

// validateOfferDetails checks the exactly-three / one-per-tier invariant plus
// the per-detail field rules. A nil result means the set is valid.
func validateOfferDetails(details []models.OfferDetail) *models.ValidationError {
	ve := &models.ValidationError{}

	if len(details) != 3 {
		ve.Addf("details", "an offer requires exactly 3 details, got %d", len(details))
		return ve
	}

	seen := map[string]bool{}
	for i, d := range details {
		field := fmt.Sprintf("details[%d]", i)
		switch d.OfferType {
		case models.TierBasic, models.TierStandard, models.TierPremium:
			if seen[d.OfferType] {
				ve.Addf("details", "duplicate offer_type %q", d.OfferType)
			}
			seen[d.OfferType] = true
		default:
			ve.Addf(field+".offer_type", "offer_type must be one of: %s", strings.Join(models.OfferTiers, ", "))
		}
		if strings.TrimSpace(d.Title) == "" {
			ve.Add(field+".title", "title is required")
		}
		if d.Revisions < -1 {
			ve.Add(field+".revisions", "revisions must be -1 (unlimited) or greater")
		}
		if d.DeliveryTimeInDays <= 0 {
			ve.Add(field+".delivery_time_in_days", "delivery_time_in_days must be greater than 0")
		}
		if d.Price < 0 {
			ve.Add(field+".price", "price must not be negative")
		}
		if len(d.Features) == 0 {
			ve.Add(field+".features", "features must not be empty")
		}
	}

	for _, tier := range models.OfferTiers {
		if !seen[tier] {
			ve.Addf("details", "missing offer_type %q", tier)
		}
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}

func (s *OfferService) CreateOffer(ctx context.Context, requester models.Requester, req models.OfferCreateRequest) (models.Offer, error) {
	if !requester.IsBusiness() {
		return models.Offer{}, models.ErrPermissionDenied
	}

	ve := &models.ValidationError{}
	if strings.TrimSpace(req.Title) == "" {
		ve.Add("title", "title is required")
	}
	if detailErrs := validateOfferDetails(req.Details); detailErrs != nil {
		for field, messages := range detailErrs.Fields {
			for _, msg := range messages {
				ve.Add(field, msg)
			}
		}
	}
	if ve.HasErrors() {
		return models.Offer{}, ve
	}

	offer := models.Offer{
		UserID:      requester.ID,
		Title:       req.Title,
		Image:       req.Image,
		Description: req.Description,
		Details:     req.Details,
	}
	return s.OfferRepo.CreateOffer(ctx, offer)
}

func (s *OfferService) UpdateOffer(ctx context.Context, requester models.Requester, offerID int, req models.OfferUpdateRequest) (models.Offer, error) {
	ownerID, err := s.OfferRepo.GetOfferOwner(ctx, offerID)
	if err != nil {
		return models.Offer{}, err
	}
	if ownerID != requester.ID && !requester.IsStaff {
		return models.Offer{}, models.ErrPermissionDenied
	}

	if req.Details != nil {
		// Full replacement: the supplied set must satisfy the aggregate
		// invariant on its own.
		if ve := validateOfferDetails(*req.Details); ve != nil {
			return models.Offer{}, ve
		}
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return models.Offer{}, models.NewValidationError("title", "title must not be empty")
	}

	return s.OfferRepo.UpdateOffer(ctx, offerID, req)
}

func (s *OfferService) DeleteOffer(ctx context.Context, requester models.Requester, offerID int) error {
	ownerID, err := s.OfferRepo.GetOfferOwner(ctx, offerID)
	if err != nil {
		return err
	}
	if ownerID != requester.ID && !requester.IsStaff {
		return models.ErrPermissionDenied
	}
	return s.OfferRepo.DeleteOffer(ctx, offerID)
}

// GetOffer returns the read-context projection with live aggregates.
func (s *OfferService) GetOffer(ctx context.Context, offerID int) (models.OfferReadView, error) {
	return s.OfferRepo.GetOfferReadViewByID(ctx, offerID)
}

func (s *OfferService) GetOfferDetail(ctx context.Context, detailID int) (models.OfferDetail, error) {
	return s.OfferRepo.GetOfferDetailByID(ctx, detailID)
}

func (s *OfferService) GetOffersWithFilters(ctx context.Context, f models.OfferFilterRequest) (models.OfferListResponse, error) {
	views, total, err := s.OfferRepo.GetOffersWithFilters(ctx, f)
	if err != nil {
		return models.OfferListResponse{}, err
	}
	return models.OfferListResponse{
		Count:    total,
		Page:     f.Page,
		PageSize: f.PageSize,
		Results:  views,
	}, nil
}

func (s *OfferService) SetOfferImage(ctx context.Context, requester models.Requester, offerID int, path string) error {
	ownerID, err := s.OfferRepo.GetOfferOwner(ctx, offerID)
	if err != nil {
		return err
	}
	if ownerID != requester.ID && !requester.IsStaff {
		return models.ErrPermissionDenied
	}
	image := path
	req := models.OfferUpdateRequest{Image: &image}
	_, err = s.OfferRepo.UpdateOffer(ctx, offerID, req)
	return err
}
