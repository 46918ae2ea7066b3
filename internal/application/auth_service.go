package application

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/frontline-homeworks/backend/internal/domain/entity"
	repo "github.com/frontline-homeworks/backend/internal/domain/repository"
	"github.com/frontline-homeworks/backend/pkg/helpers"
	"github.com/frontline-homeworks/backend/pkg/mailer"
)

// Burned on login attempts for unknown emails so they cost the same as a
// wrong password.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService owns registration, login and the reset flow. Tokens embed
// the role at issuance; a later role change or deletion does not touch
// tokens already in the wild.
type AuthService struct {
	Users       repo.UserRepository
	JWT         *helpers.JWTManager
	Notifier    mailer.Notifier
	Logger      *logrus.Logger
	CompanyName string
	FrontendURL string
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, notifier mailer.Notifier, logger *logrus.Logger, company, frontendURL string) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Notifier: notifier, Logger: logger, CompanyName: company, FrontendURL: frontendURL}
}

// Register creates a user with the default role, issues a token and queues
// the welcome email. Fails with ErrEmailTaken on a duplicate email.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*entity.User, string, time.Time, error) {
	if _, err := s.Users.GetByEmail(email); err == nil {
		return nil, "", time.Time{}, ErrEmailTaken
	}
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	u := &entity.User{
		Name:      name,
		Email:     email,
		Password:  hash,
		Role:      helpers.RoleUser,
		CreatedAt: time.Now(),
	}
	if err := s.Users.Create(u); err != nil {
		// The store enforces uniqueness under its lock; a concurrent
		// registration can lose the race after the check above passed.
		if errors.Is(err, repo.ErrConflict) {
			return nil, "", time.Time{}, ErrEmailTaken
		}
		return nil, "", time.Time{}, err
	}
	token, exp, err := s.JWT.Generate(u.ID, u.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	s.Notifier.Enqueue(ctx, mailer.EmailJob{
		To:       u.Email,
		Template: mailer.TemplateWelcome,
		Data:     map[string]any{"Name": u.Name, "Company": s.CompanyName},
	})
	s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "email": u.Email}).Info("user registered")
	return u, token, exp, nil
}

// Login verifies the credentials and issues a token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, string, time.Time, error) {
	u, err := s.Users.GetByEmail(email)
	if err != nil {
		helpers.CompareHashAndPassword(dummyHash, password)
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	token, exp, err := s.JWT.Generate(u.ID, u.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": u.ID}).Info("user logged in")
	return u, token, exp, nil
}

// Profile returns the current record for a token subject. The user may
// have been deleted since the token was issued.
func (s *AuthService) Profile(userID int64) (*entity.User, error) {
	u, err := s.Users.GetByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// ForgotPassword mails a reset link carrying a random token. Redemption is
// handled by the storefront; no token is retained server-side.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	if _, err := s.Users.GetByEmail(email); err != nil {
		return ErrUserNotFound
	}
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return err
	}
	resetToken := base64.RawURLEncoding.EncodeToString(b)
	s.Notifier.Enqueue(ctx, mailer.EmailJob{
		To:       email,
		Template: mailer.TemplatePasswordReset,
		Data: map[string]any{
			"Company":   s.CompanyName,
			"ResetLink": s.FrontendURL + "/reset-password?token=" + resetToken,
		},
	})
	s.Logger.WithField("email", email).Info("password reset email queued")
	return nil
}
