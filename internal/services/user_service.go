package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"coderrBack/internal/models"
	"coderrBack/internal/repositories"
	"coderrBack/utils"
)

const (
	accessTokenTTL  = 20 * time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

type UserService struct {
	UserRepo     *repositories.UserRepository
	ProfileRepo  *repositories.ProfileRepository
	TokenManager *utils.Manager
	SigningKey   string
}

func (s *UserService) newAccessToken(user models.User, role string) (string, error) {
	claims := &models.Claims{
		UserID:  uint(user.ID),
		Role:    role,
		IsStaff: user.IsStaff,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(accessTokenTTL).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.SigningKey))
}

// SignUp registers a user and creates the matching profile in one go.
func (s *UserService) SignUp(ctx context.Context, req models.SignUpRequest) (models.SignUpResponse, error) {
	ve := &models.ValidationError{}
	if strings.TrimSpace(req.Username) == "" {
		ve.Add("username", "username is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		ve.Add("email", "email is required")
	}
	if req.Password == "" {
		ve.Add("password", "password is required")
	}
	if req.Password != req.RepeatedPassword {
		ve.Add("password", "passwords do not match")
	}

	profileType := req.Type
	if profileType == "" {
		profileType = models.RoleCustomer
	}
	if profileType != models.RoleBusiness && profileType != models.RoleCustomer {
		ve.Add("type", "type must be business or customer")
	}
	if ve.HasErrors() {
		return models.SignUpResponse{}, ve
	}

	if exists, err := s.UserRepo.UsernameExists(ctx, req.Username); err != nil {
		return models.SignUpResponse{}, err
	} else if exists {
		return models.SignUpResponse{}, models.ErrDuplicateUsername
	}
	if exists, err := s.UserRepo.EmailExists(ctx, req.Email); err != nil {
		return models.SignUpResponse{}, err
	} else if exists {
		return models.SignUpResponse{}, models.ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.SignUpResponse{}, err
	}

	user, err := s.UserRepo.CreateUser(ctx, models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
	})
	if err != nil {
		return models.SignUpResponse{}, err
	}
	if err := s.ProfileRepo.CreateProfile(ctx, user.ID, profileType, user.Email); err != nil {
		return models.SignUpResponse{}, err
	}

	token, err := s.newAccessToken(user, profileType)
	if err != nil {
		return models.SignUpResponse{}, err
	}

	return models.SignUpResponse{
		Token:    token,
		Username: user.Username,
		Email:    user.Email,
		UserID:   user.ID,
	}, nil
}

func (s *UserService) SignIn(ctx context.Context, req models.SignInRequest) (models.SignInResponse, error) {
	user, err := s.UserRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return models.SignInResponse{}, models.ErrInvalidCredentials
		}
		return models.SignInResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return models.SignInResponse{}, models.ErrInvalidCredentials
	}

	role, err := s.ProfileRepo.GetProfileType(ctx, user.ID)
	if err != nil && !errors.Is(err, models.ErrProfileNotFound) {
		return models.SignInResponse{}, err
	}

	accessToken, err := s.newAccessToken(user, role)
	if err != nil {
		return models.SignInResponse{}, err
	}

	// Generate a refresh token, falling back to a UUID when no token manager
	// is wired.
	refreshToken := uuid.New().String()
	if s.TokenManager != nil {
		refreshToken, err = s.TokenManager.NewRefreshToken()
		if err != nil {
			return models.SignInResponse{}, err
		}
	}
	session := models.Session{
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(refreshTokenTTL),
	}
	if err := s.UserRepo.SetSession(ctx, user.ID, session); err != nil {
		log.Printf("Error creating session: %v", err)
		return models.SignInResponse{}, err
	}

	return models.SignInResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		Username:     user.Username,
		Email:        user.Email,
		UserID:       user.ID,
	}, nil
}

func (s *UserService) LogOut(ctx context.Context, userID int) error {
	return s.UserRepo.ClearSession(ctx, userID)
}
