package models

import (
	"time"
)

// Status constants used by the order lifecycle. Completed and cancelled are
// terminal.
const (
	OrderStatusInProgress = "in_progress"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

var orderTransitions = map[string]map[string]struct{}{
	OrderStatusInProgress: {
		OrderStatusCompleted: {},
		OrderStatusCancelled: {},
	},
}

// CanTransitionOrder reports whether an order status change is allowed.
func CanTransitionOrder(from, to string) bool {
	allowed, ok := orderTransitions[from]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}

// IsOrderStatus reports whether s is one of the known order statuses.
func IsOrderStatus(s string) bool {
	switch s {
	case OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is a point-in-time snapshot of the chosen offer detail. The copied
// fields stay frozen even if the source offer is later edited or deleted.
type Order struct {
	ID                 int        `json:"id"`
	CustomerUserID     int        `json:"customer_user"`
	BusinessUserID     int        `json:"business_user"`
	OfferDetailID      int        `json:"offer_detail_id"`
	Title              string     `json:"title"`
	Revisions          int        `json:"revisions"`
	DeliveryTimeInDays int        `json:"delivery_time_in_days"`
	Price              float64    `json:"price"`
	Features           []string   `json:"features"`
	OfferType          string     `json:"offer_type"`
	Status             string     `json:"status"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`
}

type OrderCreateRequest struct {
	OfferDetailID int `json:"offer_detail_id"`
}

type OrderStatusUpdateRequest struct {
	Status string `json:"status"`
}
