package application

import "errors"

// Business-rule errors translated to response codes by the handlers.
var (
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrPaymentNotCompleted = errors.New("payment not completed")
)
