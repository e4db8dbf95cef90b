package handlers

import (
	"net/http/httptest"
	"testing"
)

func TestParseOfferFiltersPagination(t *testing.T) {
	cases := []struct {
		name         string
		url          string
		wantPage     int
		wantPageSize int
	}{
		{"defaults", "/offers", 1, 6},
		{"explicit page and size", "/offers?page=3&page_size=20", 3, 20},
		{"page_size capped at max", "/offers?page_size=500", 1, 100},
		{"zero page_size falls back to default", "/offers?page_size=0", 1, 6},
		{"negative page falls back to 1", "/offers?page=-2", 1, 6},
		{"non-numeric page falls back to 1", "/offers?page=abc", 1, 6},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tc.url, nil)
			f, err := parseOfferFilters(r, 6, 100)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if f.Page != tc.wantPage {
				t.Fatalf("expected page %d got %d", tc.wantPage, f.Page)
			}
			if f.PageSize != tc.wantPageSize {
				t.Fatalf("expected page_size %d got %d", tc.wantPageSize, f.PageSize)
			}
		})
	}
}

func TestParseOfferFiltersValues(t *testing.T) {
	r := httptest.NewRequest("GET", "/offers?creator_id=4&min_price=100&max_delivery_time=7&search=logo&ordering=-min_price", nil)
	f, err := parseOfferFilters(r, 6, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.CreatorID != 4 {
		t.Fatalf("expected creator_id 4 got %d", f.CreatorID)
	}
	if !f.HasMinPrice || f.MinPrice != 100 {
		t.Fatalf("expected min_price 100 got %v (set=%v)", f.MinPrice, f.HasMinPrice)
	}
	if !f.HasMaxDelivery || f.MaxDeliveryTime != 7 {
		t.Fatalf("expected max_delivery_time 7 got %d (set=%v)", f.MaxDeliveryTime, f.HasMaxDelivery)
	}
	if f.Search != "logo" || f.Ordering != "-min_price" {
		t.Fatalf("unexpected search/ordering: %q %q", f.Search, f.Ordering)
	}
}

func TestParseOfferFiltersRejectsBadValues(t *testing.T) {
	for _, url := range []string{
		"/offers?creator_id=abc",
		"/offers?min_price=cheap",
		"/offers?max_delivery_time=soon",
	} {
		r := httptest.NewRequest("GET", url, nil)
		if _, err := parseOfferFilters(r, 6, 100); err == nil {
			t.Fatalf("expected error for %s", url)
		}
	}
}
