package memstore

import (
	"fmt"
	"sync"
	"time"

	"github.com/frontline-homeworks/backend/internal/domain/entity"
	"github.com/frontline-homeworks/backend/internal/domain/repository"
)

// OrderStore keeps orders in process memory. Create assigns both the local
// numeric id and the time-derived OrderID under the same lock.
type OrderStore struct {
	mu         sync.RWMutex
	orders     []*entity.Order
	nextID     int64
	lastMillis int64
}

func NewOrderStore() *OrderStore {
	return &OrderStore{nextID: 1}
}

func (s *OrderStore) Create(o *entity.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o.ID = s.nextID
	s.nextID++
	now := time.Now()
	o.CreatedAt = now
	o.UpdatedAt = now
	// Two orders on the same millisecond must still get distinct OrderIDs.
	ms := now.UnixMilli()
	if ms <= s.lastMillis {
		ms = s.lastMillis + 1
	}
	s.lastMillis = ms
	o.OrderID = fmt.Sprintf("ORDER-%d", ms)
	cp := *o
	s.orders = append(s.orders, &cp)
	return nil
}

func (s *OrderStore) GetByOrderID(orderID string) (*entity.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.OrderID == orderID {
			cp := *o
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *OrderStore) ByUser(userID int64) []*entity.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*entity.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out
}

func (s *OrderStore) All() []*entity.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Order, 0, len(s.orders))
	for _, o := range s.orders {
		cp := *o
		out = append(out, &cp)
	}
	return out
}

func (s *OrderStore) UpdateStatus(orderID string, status string) (*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.OrderID == orderID {
			o.Status = status
			o.UpdatedAt = time.Now()
			cp := *o
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *OrderStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}
