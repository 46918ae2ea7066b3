package application

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/frontline-homeworks/backend/internal/domain/entity"
	repo "github.com/frontline-homeworks/backend/internal/domain/repository"
	"github.com/frontline-homeworks/backend/pkg/mailer"
	"github.com/frontline-homeworks/backend/pkg/payments"
)

// PaymentService drives the intent/confirm flow. The gateway is the source
// of truth: an order exists only after it reports the intent succeeded.
type PaymentService struct {
	Orders      repo.OrderRepository
	Gateway     payments.Gateway
	Notifier    mailer.Notifier
	Logger      *logrus.Logger
	CompanyName string
}

func NewPaymentService(orders repo.OrderRepository, gw payments.Gateway, notifier mailer.Notifier, logger *logrus.Logger, company string) *PaymentService {
	return &PaymentService{Orders: orders, Gateway: gw, Notifier: notifier, Logger: logger, CompanyName: company}
}

// CreateIntent registers a payment intent with the gateway. amount is in
// dollars; the gateway wants cents.
func (s *PaymentService) CreateIntent(ctx context.Context, userID int64, amount float64, productID, productName string) (*payments.Intent, error) {
	cents := int64(math.Round(amount * 100))
	return s.Gateway.CreateIntent(ctx, cents, "usd", map[string]string{
		"productId":   productID,
		"productName": productName,
		"userId":      strconv.FormatInt(userID, 10),
	})
}

// Confirm re-fetches the intent and creates the order when the gateway
// reports success. Returns the gateway status alongside
// ErrPaymentNotCompleted so the handler can echo it.
func (s *PaymentService) Confirm(ctx context.Context, userID int64, intentID, productID, productName string, amount float64, customerEmail, customerName string) (*entity.Order, string, error) {
	intent, err := s.Gateway.GetIntent(ctx, intentID)
	if err != nil {
		return nil, "", err
	}
	if intent.Status != payments.StatusSucceeded {
		return nil, intent.Status, ErrPaymentNotCompleted
	}

	o := &entity.Order{
		UserID:          userID,
		ProductID:       productID,
		ProductName:     productName,
		Amount:          amount,
		Status:          entity.OrderStatusCompleted,
		PaymentIntentID: intentID,
		CustomerEmail:   customerEmail,
		CustomerName:    customerName,
	}
	if err := s.Orders.Create(o); err != nil {
		return nil, "", err
	}

	s.Notifier.Enqueue(ctx, mailer.EmailJob{
		To:       customerEmail,
		Template: mailer.TemplateOrderConfirmation,
		Data: map[string]any{
			"Name":    customerName,
			"Company": s.CompanyName,
			"OrderID": o.OrderID,
			"Amount":  fmt.Sprintf("%.2f", amount),
		},
	})
	s.Logger.WithFields(logrus.Fields{"order_id": o.OrderID, "user_id": userID, "amount": amount}).Info("order created")
	return o, intent.Status, nil
}

// OrdersFor lists the caller's own orders.
func (s *PaymentService) OrdersFor(userID int64) []*entity.Order {
	return s.Orders.ByUser(userID)
}

// OrderFor fetches one order, scoped to its owner.
func (s *PaymentService) OrderFor(userID int64, orderID string) (*entity.Order, error) {
	o, err := s.Orders.GetByOrderID(orderID)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, repo.ErrNotFound
	}
	return o, nil
}

// HandleWebhookEvent logs gateway notifications; order creation stays on
// the confirm path.
func (s *PaymentService) HandleWebhookEvent(ev *payments.Event) {
	switch ev.Type {
	case "payment_intent.succeeded":
		s.Logger.WithField("intent_id", ev.Object).Info("payment succeeded")
	case "payment_intent.payment_failed":
		s.Logger.WithField("intent_id", ev.Object).Warn("payment failed")
	default:
		s.Logger.WithField("type", ev.Type).Debug("unhandled gateway event")
	}
}
