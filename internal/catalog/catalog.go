// Package catalog holds the static product catalog and the filter engine
// that drives the storefront listings.
package catalog

import (
	"errors"

	"github.com/nordixdotma/kamano/internal/models"
)

var ErrProductNotFound = errors.New("product not found")

// Store is the immutable in-process catalog. It is seeded once at startup
// and never mutated afterwards.
type Store struct {
	products []models.Product
	byID     map[int]int
}

// New returns a store seeded with the built-in catalog.
func New() *Store {
	return NewWithProducts(seedProducts())
}

// NewWithProducts builds a store over the given products, keeping their order.
func NewWithProducts(products []models.Product) *Store {
	s := &Store{
		products: products,
		byID:     make(map[int]int, len(products)),
	}
	for i, p := range products {
		s.byID[p.ID] = i
	}
	return s
}

// All returns the catalog in its seeded order. The returned slice is a copy.
func (s *Store) All() []models.Product {
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// ByID looks a product up by its identifier.
func (s *Store) ByID(id int) (models.Product, error) {
	i, ok := s.byID[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return s.products[i], nil
}

// Categories returns the distinct categories in first-seen order.
func (s *Store) Categories() []string {
	return s.distinct(func(p models.Product) string { return p.Category })
}

// Brands returns the distinct brands in first-seen order.
// Products without a brand contribute nothing.
func (s *Store) Brands() []string {
	return s.distinct(func(p models.Product) string { return p.Brand })
}

// HasCategory reports whether any product belongs to the category.
func (s *Store) HasCategory(category string) bool {
	for _, p := range s.products {
		if p.Category == category {
			return true
		}
	}
	return false
}

func (s *Store) distinct(field func(models.Product) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range s.products {
		v := field(p)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
