package repository

import "github.com/frontline-homeworks/backend/internal/domain/entity"

// OrderRepository defines order store operations. Create assigns both the
// numeric id and the time-derived OrderID. Status is the only field mutable
// after creation.
type OrderRepository interface {
	Create(o *entity.Order) error
	GetByOrderID(orderID string) (*entity.Order, error)
	ByUser(userID int64) []*entity.Order
	All() []*entity.Order
	UpdateStatus(orderID string, status string) (*entity.Order, error)
	Count() int
}
