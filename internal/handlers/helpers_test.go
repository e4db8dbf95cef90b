package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"coderrBack/internal/models"
)

func TestRespondServiceErrorStatusCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"permission denied", models.ErrPermissionDenied, 403},
		{"invalid credentials", models.ErrInvalidCredentials, 400},
		{"offer not found", models.ErrOfferNotFound, 404},
		{"order not found", models.ErrOrderNotFound, 404},
		{"profile not found", models.ErrProfileNotFound, 404},
		{"already reviewed", models.ErrAlreadyReviewed, 409},
		{"invalid transition", models.ErrInvalidStatusTransition, 400},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondServiceError(rec, tc.err)
			if rec.Code != tc.want {
				t.Fatalf("expected status %d got %d", tc.want, rec.Code)
			}
		})
	}
}

func TestRespondServiceErrorDuplicateIdentity(t *testing.T) {
	cases := []struct {
		name  string
		err   error
		field string
	}{
		{"duplicate username", models.ErrDuplicateUsername, "username"},
		{"duplicate email", models.ErrDuplicateEmail, "email"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondServiceError(rec, tc.err)
			if rec.Code != 400 {
				t.Fatalf("expected status 400 got %d", rec.Code)
			}
			var body map[string][]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid response body: %v", err)
			}
			if len(body[tc.field]) == 0 {
				t.Fatalf("expected %s field error, got %v", tc.field, body)
			}
		})
	}
}

func TestRespondServiceErrorValidation(t *testing.T) {
	ve := models.NewValidationError("rating", "rating must be between 1 and 5")

	rec := httptest.NewRecorder()
	respondServiceError(rec, ve)
	if rec.Code != 400 {
		t.Fatalf("expected status 400 got %d", rec.Code)
	}

	var body map[string][]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body["rating"]) != 1 {
		t.Fatalf("expected rating field error, got %v", body)
	}
}
