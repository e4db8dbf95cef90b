package services

import (
	"context"
	"errors"
	"testing"

	"coderrBack/internal/models"
)

func TestCreateOrderRejectsBusinessRequester(t *testing.T) {
	s := &OrderService{}
	requester := models.Requester{ID: 1, Role: models.RoleBusiness}
	_, err := s.CreateOrder(context.Background(), requester, models.OrderCreateRequest{OfferDetailID: 1})
	if !errors.Is(err, models.ErrPermissionDenied) {
		t.Fatalf("expected permission denied, got %v", err)
	}
}

func TestCreateOrderRequiresOfferDetailID(t *testing.T) {
	s := &OrderService{}
	requester := models.Requester{ID: 1, Role: models.RoleCustomer}
	_, err := s.CreateOrder(context.Background(), requester, models.OrderCreateRequest{})

	var ve *models.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(ve.Fields["offer_detail_id"]) == 0 {
		t.Fatalf("expected offer_detail_id error, got %v", ve.Fields)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	s := &OrderService{}
	requester := models.Requester{ID: 1, Role: models.RoleBusiness}

	for _, status := range []string{"", "delivered", models.OrderStatusInProgress} {
		_, err := s.UpdateStatus(context.Background(), requester, 1, status)
		var ve *models.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("status %q: expected validation error, got %v", status, err)
		}
	}
}

func TestDeleteOrderStaffOnly(t *testing.T) {
	s := &OrderService{}
	requester := models.Requester{ID: 1, Role: models.RoleCustomer}
	if err := s.DeleteOrder(context.Background(), requester, 1); !errors.Is(err, models.ErrPermissionDenied) {
		t.Fatalf("expected permission denied, got %v", err)
	}
}
