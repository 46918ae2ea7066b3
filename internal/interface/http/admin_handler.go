package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/frontline-homeworks/backend/internal/application"
	repo "github.com/frontline-homeworks/backend/internal/domain/repository"
	"github.com/frontline-homeworks/backend/pkg/helpers"
	"github.com/frontline-homeworks/backend/pkg/response"
	"github.com/frontline-homeworks/backend/pkg/validation"
)

type AdminHandler struct {
	Svc    *application.AdminService
	Logs   *helpers.RingHook
	Logger *logrus.Logger
}

func NewAdminHandler(svc *application.AdminService, logs *helpers.RingHook, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{Svc: svc, Logs: logs, Logger: logger}
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Dashboard GET /api/admin/dashboard
func (h *AdminHandler) Dashboard(c *gin.Context) {
	response.Success(c, http.StatusOK, h.Svc.Dashboard(), "dashboard", nil)
}

// Users GET /api/admin/users
func (h *AdminHandler) Users(c *gin.Context) {
	users := h.Svc.Users.All()
	response.Success(c, http.StatusOK, users, "users", map[string]any{"count": len(users)})
}

// Orders GET /api/admin/orders
func (h *AdminHandler) Orders(c *gin.Context) {
	orders := h.Svc.Orders.All()
	response.Success(c, http.StatusOK, orders, "orders", map[string]any{"count": len(orders)})
}

// Contacts GET /api/admin/contacts
func (h *AdminHandler) Contacts(c *gin.Context) {
	contacts := h.Svc.Contacts.All()
	response.Success(c, http.StatusOK, contacts, "contacts", map[string]any{"count": len(contacts)})
}

// Analytics GET /api/admin/analytics
func (h *AdminHandler) Analytics(c *gin.Context) {
	response.Success(c, http.StatusOK, h.Svc.Analytics(), "analytics", nil)
}

// RecentLogs GET /api/admin/logs
func (h *AdminHandler) RecentLogs(c *gin.Context) {
	logs := h.Logs.Recent()
	response.Success(c, http.StatusOK, logs, "logs", map[string]any{"count": len(logs)})
}

// UpdateOrder PUT /api/admin/orders/:orderId
func (h *AdminHandler) UpdateOrder(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	order, err := h.Svc.UpdateOrderStatus(c.Param("orderId"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidStatus):
			response.Error[any](c, http.StatusBadRequest, "invalid status", nil)
		case errors.Is(err, repo.ErrNotFound):
			response.Error[any](c, http.StatusNotFound, "order not found", nil)
		default:
			response.Error[any](c, http.StatusInternalServerError, "failed to update order", err.Error())
		}
		return
	}
	response.Success(c, http.StatusOK, order, "order status updated", nil)
}

// UpdateContact PUT /api/admin/contacts/:contactId
func (h *AdminHandler) UpdateContact(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("contactId"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid contact id", nil)
		return
	}
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	contact, err := h.Svc.UpdateContactStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidStatus):
			response.Error[any](c, http.StatusBadRequest, "invalid status", nil)
		case errors.Is(err, repo.ErrNotFound):
			response.Error[any](c, http.StatusNotFound, "contact not found", nil)
		default:
			response.Error[any](c, http.StatusInternalServerError, "failed to update contact", err.Error())
		}
		return
	}
	response.Success(c, http.StatusOK, contact, "contact status updated", nil)
}

// DeleteUser DELETE /api/admin/users/:userId
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid user id", nil)
		return
	}
	u, err := h.Svc.DeleteUser(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "user not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to delete user", err.Error())
		return
	}
	response.Success(c, http.StatusOK, u.Public(), "user deleted successfully", nil)
}
