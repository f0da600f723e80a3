// Package catalog defines the application's core catalog domain entities.
package catalog

// ProductID identifies a single guide or bundle in the catalog.
type ProductID string

// ContentItem represents one sellable guide or bundle. Items are immutable
// once the catalog is loaded.
type ContentItem struct {
	ID         ProductID   `json:"id"`
	Title      string      `json:"title"`
	OneLiner   string      `json:"oneliner,omitempty"`
	Price      float64     `json:"price"`
	IsBundle   bool        `json:"isBundle,omitempty"`
	RelatedIDs []ProductID `json:"relatedIds,omitempty"`
}

// ChapterItem represents one chapter of a guide. Index is zero-based and
// contiguous within a product.
type ChapterItem struct {
	ProductID        ProductID `json:"productId"`
	Index            int       `json:"index"`
	Title            string    `json:"title"`
	EstimatedMinutes int       `json:"estimatedMinutes"`
}
