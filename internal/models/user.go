package models

import (
	"time"

	"github.com/dgrijalva/jwt-go"
)

const (
	RoleBusiness = "business"
	RoleCustomer = "customer"
)

type User struct {
	ID        int        `json:"id"`
	Username  string     `json:"username"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Email     string     `json:"email,omitempty"`
	Password  string     `json:"password,omitempty"`
	IsStaff   bool       `json:"is_staff,omitempty"`
	Role      string     `json:"role,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// Requester identifies the authenticated caller of a service operation. It is
// passed explicitly into every permission-sensitive call instead of being read
// from ambient request state.
type Requester struct {
	ID      int
	Role    string
	IsStaff bool
}

func (r Requester) IsBusiness() bool { return r.Role == RoleBusiness }
func (r Requester) IsCustomer() bool { return r.Role == RoleCustomer }

type Claims struct {
	UserID  uint   `json:"user_id"`
	Role    string `json:"role"`
	IsStaff bool   `json:"is_staff"`
	jwt.StandardClaims
}

type Session struct {
	UserID       int       `json:"user_id"`
	Role         string    `json:"role"`
	IsStaff      bool      `json:"is_staff"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

type SignUpRequest struct {
	Username         string `json:"username"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	RepeatedPassword string `json:"repeated_password"`
	Type             string `json:"type"`
}

type SignUpResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email"`
	UserID   int    `json:"user_id"`
}

type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SignInResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	UserID       int    `json:"user_id"`
}
