package memstore

import (
	"sync"
	"time"

	"github.com/frontline-homeworks/backend/internal/domain/entity"
	"github.com/frontline-homeworks/backend/internal/domain/repository"
)

// ContactStore keeps contact-form submissions in process memory.
type ContactStore struct {
	mu       sync.RWMutex
	contacts []*entity.Contact
	nextID   int64
}

func NewContactStore() *ContactStore {
	return &ContactStore{nextID: 1}
}

func (s *ContactStore) Create(c *entity.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.nextID
	s.nextID++
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	if c.Status == "" {
		c.Status = entity.ContactStatusNew
	}
	cp := *c
	s.contacts = append(s.contacts, &cp)
	return nil
}

func (s *ContactStore) GetByID(id int64) (*entity.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.contacts {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *ContactStore) All() []*entity.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		cp := *c
		out = append(out, &cp)
	}
	return out
}

func (s *ContactStore) UpdateStatus(id int64, status string) (*entity.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.contacts {
		if c.ID == id {
			c.Status = status
			now := time.Now()
			c.UpdatedAt = &now
			cp := *c
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *ContactStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.contacts)
}
