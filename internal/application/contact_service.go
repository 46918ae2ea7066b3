package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/frontline-homeworks/backend/internal/domain/entity"
	repo "github.com/frontline-homeworks/backend/internal/domain/repository"
	"github.com/frontline-homeworks/backend/pkg/mailer"
)

// ContactService records contact-form submissions and acknowledges them by
// email.
type ContactService struct {
	Contacts    repo.ContactRepository
	Notifier    mailer.Notifier
	Logger      *logrus.Logger
	CompanyName string
}

func NewContactService(contacts repo.ContactRepository, notifier mailer.Notifier, logger *logrus.Logger, company string) *ContactService {
	return &ContactService{Contacts: contacts, Notifier: notifier, Logger: logger, CompanyName: company}
}

func (s *ContactService) Submit(ctx context.Context, name, email, phone, message string) (*entity.Contact, error) {
	c := &entity.Contact{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Message: message,
		Status:  entity.ContactStatusNew,
	}
	if err := s.Contacts.Create(c); err != nil {
		return nil, err
	}
	s.Notifier.Enqueue(ctx, mailer.EmailJob{
		To:       email,
		Template: mailer.TemplateContactAck,
		Data:     map[string]any{"Name": name, "Company": s.CompanyName},
	})
	s.Logger.WithFields(logrus.Fields{"contact_id": c.ID, "email": email}).Info("contact form submitted")
	return c, nil
}
