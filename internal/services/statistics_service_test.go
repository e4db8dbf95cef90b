package services

import "testing"

func TestRoundRating(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"no reviews", 0, 0},
		{"repeating average", 14.0 / 3.0, 4.7},
		{"rounds down", 3.24, 3.2},
		{"rounds up", 3.25, 3.3},
		{"whole number stays", 5, 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := roundRating(tc.in); got != tc.want {
				t.Fatalf("expected %v got %v", tc.want, got)
			}
		})
	}
}
