package repository

import "github.com/frontline-homeworks/backend/internal/domain/entity"

// UserRepository defines user store operations. Create assigns the next
// identifier; identifiers are never reused after deletion. Email uniqueness
// is the caller's responsibility, not the store's.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	All() []*entity.User
	Delete(id int64) (*entity.User, error)
	Count() int
}
