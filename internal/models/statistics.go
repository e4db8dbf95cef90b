package models

type BaseInfo struct {
	ReviewCount          int     `json:"review_count"`
	AverageRating        float64 `json:"average_rating"`
	BusinessProfileCount int     `json:"business_profile_count"`
	OfferCount           int     `json:"offer_count"`
}

type OrderCountResponse struct {
	OrderCount int `json:"order_count"`
}

type CompletedOrderCountResponse struct {
	CompletedOrderCount int `json:"completed_order_count"`
}
