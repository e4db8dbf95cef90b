package models

import (
	"time"
)

type Profile struct {
	UserID       int       `json:"user"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	File         *string   `json:"file,omitempty"`
	Location     *string   `json:"location,omitempty"`
	Tel          *string   `json:"tel,omitempty"`
	Description  *string   `json:"description,omitempty"`
	WorkingHours *string   `json:"working_hours,omitempty"`
	Type         string    `json:"type"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"created_at"`
}

// ProfileUpdateRequest carries a partial update; nil fields stay untouched.
type ProfileUpdateRequest struct {
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Location     *string `json:"location"`
	Tel          *string `json:"tel"`
	Description  *string `json:"description"`
	WorkingHours *string `json:"working_hours"`
	Email        *string `json:"email"`
}
