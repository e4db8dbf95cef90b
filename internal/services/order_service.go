package services

import (
	"context"

	"coderrBack/internal/models"
	"coderrBack/internal/repositories"
)

type OrderService struct {
	OrderRepo *repositories.OrderRepository
}

// CreateOrder snapshots the chosen offer detail for a customer.
func (s *OrderService) CreateOrder(ctx context.Context, requester models.Requester, req models.OrderCreateRequest) (models.Order, error) {
	if !requester.IsCustomer() {
		return models.Order{}, models.ErrPermissionDenied
	}
	if req.OfferDetailID <= 0 {
		return models.Order{}, models.NewValidationError("offer_detail_id", "offer_detail_id is required")
	}
	return s.OrderRepo.CreateOrder(ctx, requester.ID, req.OfferDetailID)
}

// UpdateStatus moves an order from in_progress to a terminal status. Only the
// business side of the order may do this; every other transition is rejected.
func (s *OrderService) UpdateStatus(ctx context.Context, requester models.Requester, orderID int, newStatus string) (models.Order, error) {
	if !models.IsOrderStatus(newStatus) || newStatus == models.OrderStatusInProgress {
		return models.Order{}, models.NewValidationError("status", "status must be one of: completed, cancelled")
	}

	order, err := s.OrderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return models.Order{}, err
	}
	if order.BusinessUserID != requester.ID {
		return models.Order{}, models.ErrPermissionDenied
	}
	if !models.CanTransitionOrder(order.Status, newStatus) {
		return models.Order{}, models.ErrInvalidStatusTransition
	}

	// The repository re-checks the current status inside the UPDATE, so a
	// concurrent transition loses cleanly instead of double-applying.
	if err := s.OrderRepo.UpdateStatus(ctx, orderID, models.OrderStatusInProgress, newStatus); err != nil {
		return models.Order{}, err
	}
	return s.OrderRepo.GetOrderByID(ctx, orderID)
}

func (s *OrderService) DeleteOrder(ctx context.Context, requester models.Requester, orderID int) error {
	if !requester.IsStaff {
		return models.ErrPermissionDenied
	}
	return s.OrderRepo.DeleteOrder(ctx, orderID)
}

// GetOrdersForUser lists orders the requester participates in, newest first.
func (s *OrderService) GetOrdersForUser(ctx context.Context, requester models.Requester) ([]models.Order, error) {
	return s.OrderRepo.GetOrdersForUser(ctx, requester.ID)
}

func (s *OrderService) GetOrderByID(ctx context.Context, requester models.Requester, orderID int) (models.Order, error) {
	order, err := s.OrderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return models.Order{}, err
	}
	if order.CustomerUserID != requester.ID && order.BusinessUserID != requester.ID && !requester.IsStaff {
		return models.Order{}, models.ErrPermissionDenied
	}
	return order, nil
}
