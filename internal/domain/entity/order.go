package entity

import "time"

// Order statuses. An order is created as completed (payment already
// confirmed); admins move it through the fulfilment states afterwards.
const (
	OrderStatusCompleted  = "completed"
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// OrderUpdateStatuses are the values an admin may set post-creation.
var OrderUpdateStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// Order records a confirmed purchase. UserID and ProductID reference other
// stores by identifier only; deleting a user does not cascade here.
// ProductName and the customer fields are snapshots taken at purchase time.
type Order struct {
	ID              int64     `json:"id"`
	OrderID         string    `json:"orderId"` // globally unique, derived from creation time
	UserID          int64     `json:"userId"`
	ProductID       string    `json:"productId"`
	ProductName     string    `json:"productName"`
	Amount          float64   `json:"amount"`
	Status          string    `json:"status"`
	PaymentIntentID string    `json:"paymentIntentId"`
	CustomerEmail   string    `json:"customerEmail"`
	CustomerName    string    `json:"customerName"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
