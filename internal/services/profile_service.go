package services

import (
	"context"

	"coderrBack/internal/models"
	"coderrBack/internal/repositories"
)

type ProfileService struct {
	ProfileRepo *repositories.ProfileRepository
	UserRepo    *repositories.UserRepository
}

func (s *ProfileService) GetProfile(ctx context.Context, userID int) (models.Profile, error) {
	return s.ProfileRepo.GetProfileByUserID(ctx, userID)
}

func (s *ProfileService) GetProfileByType(ctx context.Context, userID int, profileType string) (models.Profile, error) {
	return s.ProfileRepo.GetProfileByUserIDAndType(ctx, userID, profileType)
}

func (s *ProfileService) GetProfilesByType(ctx context.Context, profileType string) ([]models.Profile, error) {
	return s.ProfileRepo.GetProfilesByType(ctx, profileType)
}

// UpdateProfile applies a partial update to the profile and its user row.
// Only the owner may update their profile.
func (s *ProfileService) UpdateProfile(ctx context.Context, requester models.Requester, userID int, req models.ProfileUpdateRequest) (models.Profile, error) {
	if requester.ID != userID && !requester.IsStaff {
		return models.Profile{}, models.ErrPermissionDenied
	}

	// first_name/last_name live on the user row, the rest on the profile.
	if req.FirstName != nil || req.LastName != nil {
		if err := s.UserRepo.UpdateUserNames(ctx, userID, req.FirstName, req.LastName); err != nil {
			return models.Profile{}, err
		}
	}
	if err := s.ProfileRepo.UpdateProfile(ctx, userID, req); err != nil {
		return models.Profile{}, err
	}
	return s.ProfileRepo.GetProfileByUserID(ctx, userID)
}

// SetProfileFile records the stored path of an uploaded profile file.
func (s *ProfileService) SetProfileFile(ctx context.Context, requester models.Requester, userID int, path string) (models.Profile, error) {
	if requester.ID != userID && !requester.IsStaff {
		return models.Profile{}, models.ErrPermissionDenied
	}
	if err := s.ProfileRepo.SetProfileFile(ctx, userID, path); err != nil {
		return models.Profile{}, err
	}
	return s.ProfileRepo.GetProfileByUserID(ctx, userID)
}
