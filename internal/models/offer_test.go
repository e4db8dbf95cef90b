package models

import "testing"

func TestComputeAggregates(t *testing.T) {
	offer := Offer{
		Details: []OfferDetail{
			{OfferType: TierPremium, Price: 30, DeliveryTimeInDays: 10},
			{OfferType: TierBasic, Price: 10, DeliveryTimeInDays: 5},
			{OfferType: TierStandard, Price: 20, DeliveryTimeInDays: 7},
		},
	}

	minPrice, minDelivery := offer.ComputeAggregates()
	if minPrice != 10 {
		t.Fatalf("expected min price 10 got %v", minPrice)
	}
	if minDelivery != 5 {
		t.Fatalf("expected min delivery 5 got %d", minDelivery)
	}
}

func TestComputeAggregatesMinFromDifferentDetails(t *testing.T) {
	// Cheapest detail is not the fastest one.
	offer := Offer{
		Details: []OfferDetail{
			{OfferType: TierBasic, Price: 50, DeliveryTimeInDays: 2},
			{OfferType: TierStandard, Price: 15, DeliveryTimeInDays: 9},
			{OfferType: TierPremium, Price: 80, DeliveryTimeInDays: 14},
		},
	}

	minPrice, minDelivery := offer.ComputeAggregates()
	if minPrice != 15 {
		t.Fatalf("expected min price 15 got %v", minPrice)
	}
	if minDelivery != 2 {
		t.Fatalf("expected min delivery 2 got %d", minDelivery)
	}
}

func TestComputeAggregatesEmpty(t *testing.T) {
	minPrice, minDelivery := Offer{}.ComputeAggregates()
	if minPrice != 0 || minDelivery != 0 {
		t.Fatalf("expected zero aggregates got %v / %d", minPrice, minDelivery)
	}
}
