package services

import "testing"

func TestValidRating(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		if !validRating(rating) {
			t.Fatalf("expected rating %d to be valid", rating)
		}
	}
	for _, rating := range []int{0, -1, 6, 100} {
		if validRating(rating) {
			t.Fatalf("expected rating %d to be invalid", rating)
		}
	}
}
