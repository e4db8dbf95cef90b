package models

import (
	"time"
)

type Review struct {
	ID             int        `json:"id"`
	BusinessUserID int        `json:"business_user"`
	ReviewerID     int        `json:"reviewer"`
	Rating         int        `json:"rating"`
	Description    string     `json:"description"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

type ReviewUpdateRequest struct {
	Rating      *int    `json:"rating"`
	Description *string `json:"description"`
}

// Review list ordering options.
const (
	ReviewOrderingUpdatedAt     = "updated_at"
	ReviewOrderingUpdatedAtDesc = "-updated_at"
	ReviewOrderingRating        = "rating"
	ReviewOrderingRatingDesc    = "-rating"
)

type ReviewFilterRequest struct {
	BusinessUserID int
	ReviewerID     int
	Ordering       string
}
