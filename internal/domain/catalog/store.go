package catalog

import (
	"github.com/google/uuid"

	"github.com/medigas/backend/internal/domain/shared"
)

// Store holds the static product catalog. It is populated once at
// startup and read-only afterwards; every accessor returns products in
// insertion order.
type Store struct {
	products []*Product
}

// NewStore creates a catalog store over the given products
func NewStore(products []*Product) *Store {
	return &Store{products: products}
}

// All returns every product in catalog order
func (s *Store) All() []*Product {
	return s.products
}

// Filter returns the products matching the given type filter, in
// catalog order. The sentinel "all" returns the full catalog; any
// other unmatched value returns an empty slice.
func (s *Store) Filter(filter string) []*Product {
	if filter == FilterAll {
		return s.products
	}
	matched := make([]*Product, 0, len(s.products))
	for _, p := range s.products {
		if p.Matches(filter) {
			matched = append(matched, p)
		}
	}
	return matched
}

// FindByID finds a product by its surrogate ID
func (s *Store) FindByID(id uuid.UUID) (*Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, shared.ErrNotFound
}

// FindByKey finds a product by its composite selection key.
// Keys are not guaranteed unique; the first catalog entry wins,
// matching the page's option lookup.
func (s *Store) FindByKey(key string) (*Product, error) {
	for _, p := range s.products {
		if p.SelectionKey() == key {
			return p, nil
		}
	}
	return nil, shared.ErrNotFound
}

// Len returns the number of catalog entries
func (s *Store) Len() int {
	return len(s.products)
}
