package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/frontline-homeworks/backend/internal/application"
	"github.com/frontline-homeworks/backend/internal/interface/middleware"
	"github.com/frontline-homeworks/backend/pkg/response"
	"github.com/frontline-homeworks/backend/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, token, exp, err := h.Svc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			response.Error[any](c, http.StatusBadRequest, "email already registered", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "registration failed", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"token": token,
		"user":  u.Public(),
	}, "user registered successfully", map[string]any{"token_expires_at": exp})
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, token, exp, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Error[any](c, http.StatusBadRequest, "invalid credentials", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "login failed", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"token": token,
		"user":  u.Public(),
	}, "login successful", map[string]any{"token_expires_at": exp})
}

// Profile GET /api/auth/profile (auth required)
func (h *AuthHandler) Profile(c *gin.Context) {
	u, err := h.Svc.Profile(middleware.UserID(c))
	if err != nil {
		response.Error[any](c, http.StatusNotFound, "user not found", nil)
		return
	}
	response.Success(c, http.StatusOK, u.Public(), "profile", nil)
}

// ForgotPassword POST /api/auth/forgot-password
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error[any](c, http.StatusBadRequest, "email not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to process request", err.Error())
		return
	}
	response.Success[any](c, http.StatusOK, nil, "password reset email sent, check your inbox", nil)
}

// Logout POST /api/auth/logout (auth required). Tokens are stateless; the
// client simply discards its copy.
func (h *AuthHandler) Logout(c *gin.Context) {
	response.Success[any](c, http.StatusOK, gin.H{"logged_out": true}, "logout successful", nil)
}
