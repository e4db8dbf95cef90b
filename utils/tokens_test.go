package utils

import (
	"testing"
	"time"
)

func TestNewManagerRequiresKey(t *testing.T) {
	if _, err := NewManager(""); err == nil {
		t.Fatal("expected error for empty signing key")
	}
}

func TestJWTRoundTrip(t *testing.T) {
	m, err := NewManager("test-signing-key")
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	token, err := m.NewJWT("42", time.Hour)
	if err != nil {
		t.Fatalf("NewJWT: %v", err)
	}

	sub, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if sub != "42" {
		t.Fatalf("expected subject 42 got %q", sub)
	}
}

func TestParseRejectsWrongKey(t *testing.T) {
	m1, _ := NewManager("key-one")
	m2, _ := NewManager("key-two")

	token, err := m1.NewJWT("42", time.Hour)
	if err != nil {
		t.Fatalf("NewJWT: %v", err)
	}
	if _, err := m2.Parse(token); err == nil {
		t.Fatal("expected parse with wrong key to fail")
	}
}

func TestNewRefreshToken(t *testing.T) {
	m, _ := NewManager("test-signing-key")

	a, err := m.NewRefreshToken()
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}
	b, err := m.NewRefreshToken()
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}
	if len(a) != 64 {
		t.Fatalf("expected 64 hex chars got %d", len(a))
	}
	if a == b {
		t.Fatal("expected distinct refresh tokens")
	}
}
