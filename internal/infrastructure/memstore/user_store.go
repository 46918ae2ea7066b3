package memstore

import (
	"sync"
	"time"

	"github.com/frontline-homeworks/backend/internal/domain/entity"
	"github.com/frontline-homeworks/backend/internal/domain/repository"
)

// UserStore keeps users in process memory. All mutations happen under the
// lock so identifier assignment stays unique under parallel requests.
type UserStore struct {
	mu     sync.RWMutex
	users  []*entity.User
	nextID int64
}

func NewUserStore() *UserStore {
	return &UserStore{nextID: 1}
}

// Create rejects duplicate emails under the same lock that assigns the id,
// so two concurrent registrations of one email cannot both succeed.
func (s *UserStore) Create(u *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return repository.ErrConflict
		}
	}
	u.ID = s.nextID
	s.nextID++
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	cp := *u
	s.users = append(s.users, &cp)
	return nil
}

func (s *UserStore) GetByID(id int64) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *UserStore) GetByEmail(email string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *UserStore) All() []*entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.User, 0, len(s.users))
	for _, u := range s.users {
		cp := *u
		out = append(out, &cp)
	}
	return out
}

func (s *UserStore) Delete(id int64) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.users {
		if u.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *UserStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
