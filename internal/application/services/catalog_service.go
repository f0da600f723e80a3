// Package services provides read access to the guide catalog
package services

import (
	"fmt"

	"github.com/shelfwise/shelfwise-go/internal/domain/entities/catalog"
	catalogstore "github.com/shelfwise/shelfwise-go/internal/infrastructure/catalog"
)

// CatalogService exposes the loaded catalog to the presentation layer.
type CatalogService struct {
	store *catalogstore.Store
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(store *catalogstore.Store) *CatalogService {
	return &CatalogService{store: store}
}

// ListProducts returns every guide in catalog order.
func (s *CatalogService) ListProducts() []*catalog.ContentItem {
	return s.store.Products()
}

// GetProduct returns one guide.
func (s *CatalogService) GetProduct(productID catalog.ProductID) (*catalog.ContentItem, error) {
	product, ok := s.store.Product(productID)
	if !ok {
		return nil, fmt.Errorf("unknown product %q", productID)
	}
	return product, nil
}

// GetChapters returns the ordered chapter list for one guide.
func (s *CatalogService) GetChapters(productID catalog.ProductID) ([]catalog.ChapterItem, error) {
	if _, ok := s.store.Product(productID); !ok {
		return nil, fmt.Errorf("unknown product %q", productID)
	}
	return s.store.Chapters(productID), nil
}

// GetRelated returns the relationship graph neighbors of one guide.
func (s *CatalogService) GetRelated(productID catalog.ProductID) ([]*catalog.ContentItem, error) {
	if _, ok := s.store.Product(productID); !ok {
		return nil, fmt.Errorf("unknown product %q", productID)
	}

	var related []*catalog.ContentItem
	for _, id := range s.store.Related(productID) {
		if item, ok := s.store.Product(id); ok {
			related = append(related, item)
		}
	}
	return related, nil
}
