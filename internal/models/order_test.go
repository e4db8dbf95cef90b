package models

import "testing"

func TestCanTransitionOrder(t *testing.T) {
	if !CanTransitionOrder(OrderStatusInProgress, OrderStatusCompleted) {
		t.Fatal("expected in_progress -> completed to be allowed")
	}
	if !CanTransitionOrder(OrderStatusInProgress, OrderStatusCancelled) {
		t.Fatal("expected in_progress -> cancelled to be allowed")
	}
	if CanTransitionOrder(OrderStatusCompleted, OrderStatusInProgress) {
		t.Fatal("unexpected transition out of completed allowed")
	}
	if CanTransitionOrder(OrderStatusCancelled, OrderStatusCompleted) {
		t.Fatal("unexpected transition out of cancelled allowed")
	}
	if CanTransitionOrder(OrderStatusInProgress, OrderStatusInProgress) {
		t.Fatal("unexpected self transition allowed")
	}
}

func TestIsOrderStatus(t *testing.T) {
	for _, s := range []string{OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled} {
		if !IsOrderStatus(s) {
			t.Fatalf("expected %q to be a valid status", s)
		}
	}
	if IsOrderStatus("delivered") {
		t.Fatal("unexpected status accepted")
	}
	if IsOrderStatus("") {
		t.Fatal("empty status accepted")
	}
}
