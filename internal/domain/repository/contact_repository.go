package repository

import "github.com/frontline-homeworks/backend/internal/domain/entity"

// ContactRepository defines contact-form store operations.
type ContactRepository interface {
	Create(c *entity.Contact) error
	GetByID(id int64) (*entity.Contact, error)
	All() []*entity.Contact
	UpdateStatus(id int64, status string) (*entity.Contact, error)
	Count() int
}
