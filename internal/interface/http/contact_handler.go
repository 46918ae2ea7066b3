package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/frontline-homeworks/backend/internal/application"
	repo "github.com/frontline-homeworks/backend/internal/domain/repository"
	"github.com/frontline-homeworks/backend/pkg/response"
	"github.com/frontline-homeworks/backend/pkg/validation"
)

type ContactHandler struct {
	Svc      *application.ContactService
	Contacts repo.ContactRepository
	Logger   *logrus.Logger
}

func NewContactHandler(svc *application.ContactService, contacts repo.ContactRepository, logger *logrus.Logger) *ContactHandler {
	return &ContactHandler{Svc: svc, Contacts: contacts, Logger: logger}
}

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"omitempty,phone"`
	Message string `json:"message" binding:"required,min=5"`
}

// Submit POST /api/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	contact, err := h.Svc.Submit(c.Request.Context(), req.Name, req.Email, req.Phone, req.Message)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to submit contact form", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"id": contact.ID},
		"thank you for contacting us, we will get back to you soon", nil)
}

// List GET /api/contact (admin)
func (h *ContactHandler) List(c *gin.Context) {
	contacts := h.Contacts.All()
	response.Success(c, http.StatusOK, contacts, "contacts", map[string]any{"count": len(contacts)})
}

// Get GET /api/contact/:id (admin)
func (h *ContactHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid contact id", nil)
		return
	}
	contact, err := h.Contacts.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "contact not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to fetch contact", err.Error())
		return
	}
	response.Success(c, http.StatusOK, contact, "contact", nil)
}
