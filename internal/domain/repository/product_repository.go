package repository

import "github.com/frontline-homeworks/backend/internal/domain/entity"

// ProductRepository defines catalog store operations. Products are never
// updated or deleted once added.
type ProductRepository interface {
	Create(p *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	All() []*entity.Product
	ByCategory(category string) []*entity.Product
	Search(query string) []*entity.Product
}
