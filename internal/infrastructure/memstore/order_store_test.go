package memstore

import (
	"errors"
	"strings"
	"testing"

	"github.com/frontline-homeworks/backend/internal/domain/entity"
	"github.com/frontline-homeworks/backend/internal/domain/repository"
)

func TestOrderStoreCreateAssignsUniqueOrderIDs(t *testing.T) {
	s := NewOrderStore()

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		o := &entity.Order{UserID: 1, Amount: 25.00, Status: entity.OrderStatusCompleted}
		if err := s.Create(o); err != nil {
			t.Fatalf("Create() failed: %v", err)
		}
		if !strings.HasPrefix(o.OrderID, "ORDER-") {
			t.Fatalf("unexpected order id format: %q", o.OrderID)
		}
		if seen[o.OrderID] {
			t.Fatalf("duplicate order id %q", o.OrderID)
		}
		seen[o.OrderID] = true
	}
}

func TestOrderStoreByUser(t *testing.T) {
	s := NewOrderStore()
	_ = s.Create(&entity.Order{UserID: 1, Amount: 10})
	_ = s.Create(&entity.Order{UserID: 2, Amount: 20})
	_ = s.Create(&entity.Order{UserID: 1, Amount: 30})

	mine := s.ByUser(1)
	if len(mine) != 2 {
		t.Fatalf("ByUser(1) returned %d orders, want 2", len(mine))
	}
	for _, o := range mine {
		if o.UserID != 1 {
			t.Fatalf("ByUser(1) leaked order of user %d", o.UserID)
		}
	}
}

func TestOrderStoreUpdateStatus(t *testing.T) {
	s := NewOrderStore()
	o := &entity.Order{UserID: 1, Status: entity.OrderStatusCompleted}
	_ = s.Create(o)

	updated, err := s.UpdateStatus(o.OrderID, entity.OrderStatusShipped)
	if err != nil {
		t.Fatalf("UpdateStatus() failed: %v", err)
	}
	if updated.Status != entity.OrderStatusShipped {
		t.Fatalf("status not updated: %q", updated.Status)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) && !updated.UpdatedAt.Equal(updated.CreatedAt) {
		t.Fatal("UpdatedAt not refreshed")
	}

	if _, err := s.UpdateStatus("ORDER-0", entity.OrderStatusShipped); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("unknown order: expected ErrNotFound, got %v", err)
	}
}
