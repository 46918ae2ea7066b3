package memstore

import (
	"strings"
	"sync"

	"github.com/frontline-homeworks/backend/internal/domain/entity"
	"github.com/frontline-homeworks/backend/internal/domain/repository"
)

// ProductStore keeps the catalog in process memory.
type ProductStore struct {
	mu       sync.RWMutex
	products []*entity.Product
	nextID   int64
}

func NewProductStore() *ProductStore {
	return &ProductStore{nextID: 1}
}

func (s *ProductStore) Create(p *entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.nextID
	s.nextID++
	cp := *p
	s.products = append(s.products, &cp)
	return nil
}

func (s *ProductStore) GetByID(id int64) (*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *ProductStore) All() []*entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Product, 0, len(s.products))
	for _, p := range s.products {
		cp := *p
		out = append(out, &cp)
	}
	return out
}

func (s *ProductStore) ByCategory(category string) []*entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*entity.Product
	for _, p := range s.products {
		if p.Category == category {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out
}

// Search matches the query case-insensitively against name, description
// and category.
func (s *ProductStore) Search(query string) []*entity.Product {
	q := strings.ToLower(query)
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*entity.Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out
}
