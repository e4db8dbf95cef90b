package models

import (
	"time"
)

// Offer tiers. Every offer owns exactly one detail per tier.
const (
	TierBasic    = "basic"
	TierStandard = "standard"
	TierPremium  = "premium"
)

var OfferTiers = []string{TierBasic, TierStandard, TierPremium}

type OfferDetail struct {
	ID                 int      `json:"id"`
	OfferID            int      `json:"offer_id,omitempty"`
	Title              string   `json:"title"`
	Revisions          int      `json:"revisions"`
	DeliveryTimeInDays int      `json:"delivery_time_in_days"`
	Price              float64  `json:"price"`
	Features           []string `json:"features"`
	OfferType          string   `json:"offer_type"`
}

// OfferDetailRef is the lightweight detail shape embedded in list/retrieve
// responses.
type OfferDetailRef struct {
	ID  int    `json:"id"`
	URL string `json:"url"`
}

type Offer struct {
	ID          int           `json:"id"`
	UserID      int           `json:"user"`
	Title       string        `json:"title"`
	Image       *string       `json:"image"`
	Description string        `json:"description"`
	Details     []OfferDetail `json:"details"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   *time.Time    `json:"updated_at,omitempty"`
}

// OfferReadView is the read-context shape: detail references instead of full
// detail objects, plus the derived aggregate fields.
type OfferReadView struct {
	ID              int              `json:"id"`
	UserID          int              `json:"user"`
	Title           string           `json:"title"`
	Image           *string          `json:"image"`
	Description     string           `json:"description"`
	Details         []OfferDetailRef `json:"details"`
	MinPrice        float64          `json:"min_price"`
	MinDeliveryTime int              `json:"min_delivery_time"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       *time.Time       `json:"updated_at,omitempty"`
}

// ComputeAggregates returns the minimum price and minimum delivery time across
// the offer's current details. Both are derived values, never stored.
func (o Offer) ComputeAggregates() (minPrice float64, minDeliveryTime int) {
	for i, d := range o.Details {
		if i == 0 || d.Price < minPrice {
			minPrice = d.Price
		}
		if i == 0 || d.DeliveryTimeInDays < minDeliveryTime {
			minDeliveryTime = d.DeliveryTimeInDays
		}
	}
	return minPrice, minDeliveryTime
}

type OfferCreateRequest struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Image       *string       `json:"image"`
	Details     []OfferDetail `json:"details"`
}

// OfferUpdateRequest carries a partial update. A non-nil Details slice means
// full replacement of the children set.
type OfferUpdateRequest struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	Image       *string        `json:"image"`
	Details     *[]OfferDetail `json:"details"`
}

// Offer list ordering options accepted by the ordering query parameter.
const (
	OfferOrderingUpdatedAt     = "updated_at"
	OfferOrderingUpdatedAtDesc = "-updated_at"
	OfferOrderingMinPrice      = "min_price"
	OfferOrderingMinPriceDesc  = "-min_price"
)

type OfferFilterRequest struct {
	CreatorID       int
	MinPrice        float64
	HasMinPrice     bool
	MaxDeliveryTime int
	HasMaxDelivery  bool
	Search          string
	Ordering        string
	Page            int
	PageSize        int
}

type OfferListResponse struct {
	Count    int             `json:"count"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
	Results  []OfferReadView `json:"results"`
}
