package handlers

import (
	"net/http/httptest"
	"testing"
)

func TestGetParamColonForm(t *testing.T) {
	r := httptest.NewRequest("GET", "/offers/7?:id=7", nil)
	if got := getParam(r, "id"); got != "7" {
		t.Fatalf("expected 7 got %q", got)
	}
}

func TestGetIntParam(t *testing.T) {
	r := httptest.NewRequest("GET", "/orders?:id=42", nil)
	id, ok := getIntParam(r, "id")
	if !ok || id != 42 {
		t.Fatalf("expected 42 got %d ok=%v", id, ok)
	}

	r = httptest.NewRequest("GET", "/orders?:id=abc", nil)
	if _, ok := getIntParam(r, "id"); ok {
		t.Fatal("expected non-numeric param to be rejected")
	}

	r = httptest.NewRequest("GET", "/orders?:id=-3", nil)
	if _, ok := getIntParam(r, "id"); ok {
		t.Fatal("expected negative param to be rejected")
	}

	r = httptest.NewRequest("GET", "/orders", nil)
	if _, ok := getIntParam(r, "id"); ok {
		t.Fatal("expected missing param to be rejected")
	}
}
