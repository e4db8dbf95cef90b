package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"coderrBack/internal/models"
)

func TestJWTMiddlewareRoleGates(t *testing.T) {
	app := &application{signingKey: "test-signing-key"}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	cases := []struct {
		name         string
		requiredRole string
		role         string
		isStaff      bool
		want         int
	}{
		{"business route allows business", models.RoleBusiness, models.RoleBusiness, false, 200},
		{"business route rejects customer", models.RoleBusiness, models.RoleCustomer, false, 403},
		{"business route allows staff", models.RoleBusiness, models.RoleCustomer, true, 200},
		{"customer route allows customer", models.RoleCustomer, models.RoleCustomer, false, 200},
		{"customer route rejects business", models.RoleCustomer, models.RoleBusiness, false, 403},
		{"staff route rejects non-staff", "staff", models.RoleBusiness, false, 403},
		{"staff route allows staff", "staff", models.RoleCustomer, true, 200},
		{"user route allows anyone authenticated", "user", models.RoleCustomer, false, 200},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := app.generateAccessToken(7, tc.role, tc.isStaff)
			if err != nil {
				t.Fatalf("generating token: %v", err)
			}
			req := httptest.NewRequest("POST", "/", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()

			app.JWTMiddleware(next, tc.requiredRole).ServeHTTP(rec, req)
			if rec.Code != tc.want {
				t.Fatalf("expected status %d got %d", tc.want, rec.Code)
			}
		})
	}
}

func TestJWTMiddlewareSeedsRequesterContext(t *testing.T) {
	app := &application{signingKey: "test-signing-key"}
	token, err := app.generateAccessToken(42, models.RoleBusiness, true)
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}

	var gotID int
	var gotRole string
	var gotStaff bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = r.Context().Value("user_id").(int)
		gotRole, _ = r.Context().Value("role").(string)
		gotStaff, _ = r.Context().Value("is_staff").(bool)
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	app.JWTMiddleware(next, "user").ServeHTTP(httptest.NewRecorder(), req)

	if gotID != 42 || gotRole != models.RoleBusiness || !gotStaff {
		t.Fatalf("context values not seeded: id=%d role=%q staff=%v", gotID, gotRole, gotStaff)
	}
}

func TestJWTMiddlewareMissingHeader(t *testing.T) {
	app := &application{signingKey: "test-signing-key"}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	app.JWTMiddleware(next, "user").ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
}
