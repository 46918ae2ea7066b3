package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/frontline-homeworks/backend/internal/application"
	repo "github.com/frontline-homeworks/backend/internal/domain/repository"
	"github.com/frontline-homeworks/backend/internal/interface/middleware"
	"github.com/frontline-homeworks/backend/pkg/response"
	"github.com/frontline-homeworks/backend/pkg/validation"
)

type PaymentHandler struct {
	Svc            *application.PaymentService
	Logger         *logrus.Logger
	PublishableKey string
}

func NewPaymentHandler(svc *application.PaymentService, logger *logrus.Logger, publishableKey string) *PaymentHandler {
	return &PaymentHandler{Svc: svc, Logger: logger, PublishableKey: publishableKey}
}

type createIntentRequest struct {
	Amount      float64 `json:"amount" binding:"required,gte=0.5"`
	ProductID   string  `json:"productId" binding:"required"`
	ProductName string  `json:"productName"`
}

type confirmRequest struct {
	PaymentIntentID string  `json:"paymentIntentId" binding:"required"`
	ProductID       string  `json:"productId" binding:"required"`
	ProductName     string  `json:"productName"`
	Amount          float64 `json:"amount" binding:"required,gt=0"`
	CustomerEmail   string  `json:"customerEmail" binding:"required,email"`
	CustomerName    string  `json:"customerName" binding:"required"`
}

// CreateIntent POST /api/payments/create-intent (auth required)
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req createIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "amount must be at least $0.50", validation.ToDetails(err))
		return
	}
	intent, err := h.Svc.CreateIntent(c.Request.Context(), middleware.UserID(c), req.Amount, req.ProductID, req.ProductName)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to create payment intent", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"clientSecret":   intent.ClientSecret,
		"publishableKey": h.PublishableKey,
	}, "payment intent created", nil)
}

// Confirm POST /api/payments/confirm (auth required)
func (h *PaymentHandler) Confirm(c *gin.Context) {
	var req confirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	order, status, err := h.Svc.Confirm(c.Request.Context(), middleware.UserID(c),
		req.PaymentIntentID, req.ProductID, req.ProductName, req.Amount, req.CustomerEmail, req.CustomerName)
	if err != nil {
		if errors.Is(err, application.ErrPaymentNotCompleted) {
			response.Error[any](c, http.StatusBadRequest, "payment not completed", gin.H{"status": status})
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "payment confirmation failed", err.Error())
		return
	}
	response.Success(c, http.StatusOK, order, "payment successful", nil)
}

// Orders GET /api/payments/orders (auth required)
func (h *PaymentHandler) Orders(c *gin.Context) {
	orders := h.Svc.OrdersFor(middleware.UserID(c))
	response.Success(c, http.StatusOK, orders, "orders", map[string]any{"count": len(orders)})
}

// Order GET /api/payments/orders/:orderId (auth required)
func (h *PaymentHandler) Order(c *gin.Context) {
	order, err := h.Svc.OrderFor(middleware.UserID(c), c.Param("orderId"))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "order not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to fetch order", err.Error())
		return
	}
	response.Success(c, http.StatusOK, order, "order", nil)
}

// Webhook POST /api/payments/webhook. Signature-verified gateway events;
// body must stay raw for verification.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "unreadable payload", nil)
		return
	}
	ev, err := h.Svc.Gateway.VerifyWebhook(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "webhook verification failed", err.Error())
		return
	}
	h.Svc.HandleWebhookEvent(ev)
	response.Success(c, http.StatusOK, gin.H{"received": true}, "webhook received", nil)
}
