package services

import (
	"context"
	"errors"

	"coderrBack/internal/models"
	"coderrBack/internal/repositories"
)

type ReviewService struct {
	ReviewsRepo *repositories.ReviewRepository
	ProfileRepo *repositories.ProfileRepository
}

func validRating(rating int) bool {
	return rating >= 1 && rating <= 5
}

// CreateReview lets a customer rate a business user once. The uniqueness of
// the (reviewer, business_user) pair is enforced by the database, not here.
func (s *ReviewService) CreateReview(ctx context.Context, requester models.Requester, rev models.Review) (models.Review, error) {
	if !requester.IsCustomer() {
		return models.Review{}, models.ErrPermissionDenied
	}

	ve := &models.ValidationError{}
	if rev.BusinessUserID <= 0 {
		ve.Add("business_user", "this field is required")
	}
	if !validRating(rev.Rating) {
		ve.Add("rating", "rating must be between 1 and 5")
	}
	if ve.HasErrors() {
		return models.Review{}, ve
	}

	profileType, err := s.ProfileRepo.GetProfileType(ctx, rev.BusinessUserID)
	if err != nil {
		if errors.Is(err, models.ErrProfileNotFound) {
			return models.Review{}, models.NewValidationError("business_user", "invalid business_user ID")
		}
		return models.Review{}, err
	}
	if profileType != models.RoleBusiness {
		return models.Review{}, models.NewValidationError("business_user", "the target user must have a business profile")
	}

	rev.ReviewerID = requester.ID
	return s.ReviewsRepo.CreateReview(ctx, rev)
}

func (s *ReviewService) UpdateReview(ctx context.Context, requester models.Requester, reviewID int, req models.ReviewUpdateRequest) (models.Review, error) {
	rev, err := s.ReviewsRepo.GetReviewByID(ctx, reviewID)
	if err != nil {
		return models.Review{}, err
	}
	if rev.ReviewerID != requester.ID && !requester.IsStaff {
		return models.Review{}, models.ErrPermissionDenied
	}
	if req.Rating != nil && !validRating(*req.Rating) {
		return models.Review{}, models.NewValidationError("rating", "rating must be between 1 and 5")
	}
	return s.ReviewsRepo.UpdateReview(ctx, reviewID, req)
}

func (s *ReviewService) DeleteReview(ctx context.Context, requester models.Requester, reviewID int) error {
	rev, err := s.ReviewsRepo.GetReviewByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if rev.ReviewerID != requester.ID && !requester.IsStaff {
		return models.ErrPermissionDenied
	}
	return s.ReviewsRepo.DeleteReview(ctx, reviewID)
}

func (s *ReviewService) GetReviewByID(ctx context.Context, reviewID int) (models.Review, error) {
	return s.ReviewsRepo.GetReviewByID(ctx, reviewID)
}

func (s *ReviewService) GetReviewsWithFilters(ctx context.Context, f models.ReviewFilterRequest) ([]models.Review, error) {
	return s.ReviewsRepo.GetReviewsWithFilters(ctx, f)
}
