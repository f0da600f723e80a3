// Package services provides checkout-completion recording
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shelfwise/shelfwise-go/internal/domain/entities/catalog"
	"github.com/shelfwise/shelfwise-go/internal/domain/events"
	"github.com/shelfwise/shelfwise-go/internal/domain/repositories"
	catalogstore "github.com/shelfwise/shelfwise-go/internal/infrastructure/catalog"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/observability/logging"
)

// PurchaseService records completed checkouts. Payment itself happens off
// site; this is the ownership write the facts provider reads back.
type PurchaseService struct {
	purchases repositories.PurchaseRepository
	catalog   *catalogstore.Store
	sink      events.Sink
	logger    *logging.ChanneledLogger
}

// NewPurchaseService creates a new purchase service with its dependencies.
func NewPurchaseService(
	purchases repositories.PurchaseRepository,
	catalog *catalogstore.Store,
	sink events.Sink,
	logger *logging.ChanneledLogger,
) *PurchaseService {
	return &PurchaseService{
		purchases: purchases,
		catalog:   catalog,
		sink:      sink,
		logger:    logger,
	}
}

// RecordPurchase stores ownership of a guide at its catalog price and emits
// the purchase action. Recording an already-owned guide is a no-op.
func (s *PurchaseService) RecordPurchase(ctx context.Context, userID string, productID catalog.ProductID) error {
	item, ok := s.catalog.Product(productID)
	if !ok {
		return fmt.Errorf("unknown product %q", productID)
	}

	if err := s.purchases.Add(ctx, userID, productID, item.Price); err != nil {
		return fmt.Errorf("failed to record purchase: %w", err)
	}

	s.sink.Record(events.InteractionEvent{
		UserID:     userID,
		ObjectID:   string(productID),
		ObjectType: "guide",
		Verb:       "PURCHASED",
		CreatedAt:  time.Now().UTC(),
	})

	s.logger.System().Info("Purchase recorded", "userId", userID, "productId", string(productID), "price", item.Price)
	return nil
}
