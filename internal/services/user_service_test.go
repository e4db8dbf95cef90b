package services

import (
	"context"
	"errors"
	"testing"

	"coderrBack/internal/models"
)

// The validation block runs before any repository call, so a zero-value
// service is enough for these cases.
func TestSignUpValidation(t *testing.T) {
	s := &UserService{}

	cases := []struct {
		name  string
		req   models.SignUpRequest
		field string
	}{
		{"empty username", models.SignUpRequest{Email: "a@b.de", Password: "pw", RepeatedPassword: "pw"}, "username"},
		{"empty email", models.SignUpRequest{Username: "anna", Password: "pw", RepeatedPassword: "pw"}, "email"},
		{"empty password", models.SignUpRequest{Username: "anna", Email: "a@b.de"}, "password"},
		{"mismatched passwords", models.SignUpRequest{Username: "anna", Email: "a@b.de", Password: "pw", RepeatedPassword: "other"}, "password"},
		{"unknown type", models.SignUpRequest{Username: "anna", Email: "a@b.de", Password: "pw", RepeatedPassword: "pw", Type: "admin"}, "type"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.SignUp(context.Background(), tc.req)
			var ve *models.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if len(ve.Fields[tc.field]) == 0 {
				t.Fatalf("expected error on %q, got %v", tc.field, ve.Fields)
			}
		})
	}
}

func TestSignUpCollectsAllFieldErrors(t *testing.T) {
	s := &UserService{}
	_, err := s.SignUp(context.Background(), models.SignUpRequest{})

	var ve *models.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, field := range []string{"username", "email", "password"} {
		if len(ve.Fields[field]) == 0 {
			t.Fatalf("expected error on %q, got %v", field, ve.Fields)
		}
	}
}
