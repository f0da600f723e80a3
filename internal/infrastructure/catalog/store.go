// Package catalog provides the static, in-memory content catalog: products,
// chapters, the relationship graph, and the goal-to-product alignments. The
// catalog is read-only once loaded and validated.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/shelfwise/shelfwise-go/internal/domain/entities/account"
	"github.com/shelfwise/shelfwise-go/internal/domain/entities/catalog"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/observability/logging"
	"github.com/shelfwise/shelfwise-go/pkg/config"
)

// Store holds the validated catalog. All lookups are synchronous and
// allocation-free where possible; the Store is safe for concurrent reads.
type Store struct {
	products map[catalog.ProductID]*catalog.ContentItem
	order    []catalog.ProductID
	chapters map[catalog.ProductID][]catalog.ChapterItem

	goalAlignments map[account.GoalCategory]catalog.ProductID
	bundleID       catalog.ProductID
}

// overlay is the optional on-disk catalog shape. When present it replaces
// the built-in table entirely.
type overlay struct {
	Products []catalog.ContentItem `json:"products"`
	Chapters []catalog.ChapterItem `json:"chapters"`
}

// NewStore loads the catalog, applying the configured overlay file when one
// is set, and validates the relationship graph and chapter ordering.
func NewStore(logger *logging.ChanneledLogger) (*Store, error) {
	products := builtinProducts
	chapters := builtinChapters

	if config.CatalogOverlayPath != "" {
		data, err := os.ReadFile(config.CatalogOverlayPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog overlay %s: %w", config.CatalogOverlayPath, err)
		}
		var o overlay
		if err := json.Unmarshal(data, &o); err != nil {
			return nil, fmt.Errorf("failed to parse catalog overlay: %w", err)
		}
		products = o.Products
		chapters = o.Chapters
		logger.Catalog().Info("Catalog overlay loaded",
			"path", config.CatalogOverlayPath,
			"products", len(products),
			"chapters", len(chapters))
	}

	store := &Store{
		products:       make(map[catalog.ProductID]*catalog.ContentItem, len(products)),
		chapters:       make(map[catalog.ProductID][]catalog.ChapterItem),
		goalAlignments: builtinGoalAlignments,
	}

	for i := range products {
		item := products[i]
		if item.ID == "" {
			return nil, fmt.Errorf("catalog item %d has an empty id", i)
		}
		if _, dup := store.products[item.ID]; dup {
			return nil, fmt.Errorf("duplicate catalog item id %q", item.ID)
		}
		store.products[item.ID] = &item
		store.order = append(store.order, item.ID)
		if item.IsBundle {
			store.bundleID = item.ID
		}
	}

	for _, ch := range chapters {
		if _, ok := store.products[ch.ProductID]; !ok {
			return nil, fmt.Errorf("chapter %q/%d references unknown product", ch.ProductID, ch.Index)
		}
		store.chapters[ch.ProductID] = append(store.chapters[ch.ProductID], ch)
	}

	if err := store.validate(); err != nil {
		return nil, err
	}

	logger.Catalog().Info("Catalog ready",
		"products", len(store.products),
		"bundle", string(store.bundleID))
	return store, nil
}

// validate rejects dangling relationship references, non-contiguous chapter
// indices, and goal alignments pointing outside the catalog.
func (s *Store) validate() error {
	for id, item := range s.products {
		for _, related := range item.RelatedIDs {
			if _, ok := s.products[related]; !ok {
				return fmt.Errorf("product %q relates to unknown product %q", id, related)
			}
			if related == id {
				return fmt.Errorf("product %q relates to itself", id)
			}
		}
	}

	for id, chs := range s.chapters {
		sort.Slice(chs, func(i, j int) bool { return chs[i].Index < chs[j].Index })
		for i, ch := range chs {
			if ch.Index != i {
				return fmt.Errorf("product %q chapters are not contiguous at index %d", id, ch.Index)
			}
		}
		s.chapters[id] = chs
	}

	for category, target := range s.goalAlignments {
		if _, ok := s.products[target]; !ok {
			return fmt.Errorf("goal category %q aligned to unknown product %q", category, target)
		}
	}

	return nil
}

// Product returns the catalog item for an ID.
func (s *Store) Product(id catalog.ProductID) (*catalog.ContentItem, bool) {
	item, ok := s.products[id]
	return item, ok
}

// Products returns all catalog items in stable catalog order.
func (s *Store) Products() []*catalog.ContentItem {
	items := make([]*catalog.ContentItem, 0, len(s.order))
	for _, id := range s.order {
		items = append(items, s.products[id])
	}
	return items
}

// Chapters returns the ordered chapter list for a product.
func (s *Store) Chapters(id catalog.ProductID) []catalog.ChapterItem {
	return s.chapters[id]
}

// ChapterCount returns the number of chapters in a product.
func (s *Store) ChapterCount(id catalog.ProductID) int {
	return len(s.chapters[id])
}

// Related returns the relationship graph neighbors of a product.
func (s *Store) Related(id catalog.ProductID) []catalog.ProductID {
	if item, ok := s.products[id]; ok {
		return item.RelatedIDs
	}
	return nil
}

// GoalProduct maps a goal category to its aligned product, when one exists.
func (s *Store) GoalProduct(category account.GoalCategory) (catalog.ProductID, bool) {
	id, ok := s.goalAlignments[category]
	return id, ok
}

// BundleID returns the designated complete-collection bundle.
func (s *Store) BundleID() catalog.ProductID {
	return s.bundleID
}
