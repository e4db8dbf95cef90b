package services

import (
	"testing"

	"coderrBack/internal/models"
)

func validDetails() []models.OfferDetail {
	return []models.OfferDetail{
		{OfferType: models.TierBasic, Title: "Basic", Revisions: 2, DeliveryTimeInDays: 5, Price: 10, Features: []string{"Logo"}},
		{OfferType: models.TierStandard, Title: "Standard", Revisions: 5, DeliveryTimeInDays: 7, Price: 20, Features: []string{"Logo", "Flyer"}},
		{OfferType: models.TierPremium, Title: "Premium", Revisions: -1, DeliveryTimeInDays: 10, Price: 30, Features: []string{"Logo", "Flyer", "Card"}},
	}
}

func TestValidateOfferDetailsValid(t *testing.T) {
	if ve := validateOfferDetails(validDetails()); ve != nil {
		t.Fatalf("expected valid detail set, got %v", ve.Fields)
	}
}

func TestValidateOfferDetailsWrongCount(t *testing.T) {
	if ve := validateOfferDetails(validDetails()[:2]); ve == nil {
		t.Fatal("expected error for two details")
	}
	if ve := validateOfferDetails(nil); ve == nil {
		t.Fatal("expected error for no details")
	}
	four := append(validDetails(), models.OfferDetail{OfferType: models.TierBasic})
	if ve := validateOfferDetails(four); ve == nil {
		t.Fatal("expected error for four details")
	}
}

func TestValidateOfferDetailsDuplicateTier(t *testing.T) {
	details := validDetails()
	details[2].OfferType = models.TierBasic
	ve := validateOfferDetails(details)
	if ve == nil {
		t.Fatal("expected error for duplicate tier")
	}
	if len(ve.Fields["details"]) == 0 {
		t.Fatalf("expected details error, got %v", ve.Fields)
	}
}

func TestValidateOfferDetailsUnknownTier(t *testing.T) {
	details := validDetails()
	details[0].OfferType = "platinum"
	if ve := validateOfferDetails(details); ve == nil {
		t.Fatal("expected error for unknown tier")
	}
}

func TestValidateOfferDetailsFieldRules(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(d *models.OfferDetail)
	}{
		{"empty title", func(d *models.OfferDetail) { d.Title = "  " }},
		{"revisions below -1", func(d *models.OfferDetail) { d.Revisions = -2 }},
		{"zero delivery time", func(d *models.OfferDetail) { d.DeliveryTimeInDays = 0 }},
		{"negative price", func(d *models.OfferDetail) { d.Price = -1 }},
		{"no features", func(d *models.OfferDetail) { d.Features = nil }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			details := validDetails()
			tc.mutate(&details[1])
			if ve := validateOfferDetails(details); ve == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestValidateOfferDetailsUnlimitedRevisions(t *testing.T) {
	details := validDetails()
	details[0].Revisions = -1
	if ve := validateOfferDetails(details); ve != nil {
		t.Fatalf("expected -1 revisions to be accepted, got %v", ve.Fields)
	}
}
