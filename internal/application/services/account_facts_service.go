package services

import (
	"context"

	"github.com/shelfwise/shelfwise-go/internal/domain/entities/account"
	"github.com/shelfwise/shelfwise-go/internal/domain/repositories"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/observability/logging"
	"github.com/shelfwise/shelfwise-go/pkg/config"
	"golang.org/x/sync/errgroup"
)

// FactsAvailability records which fact categories the provider answered.
// A missing category degrades to empty; all four missing degrades the
// whole request to the guest pipeline.
type FactsAvailability struct {
	Ownership bool
	Progress  bool
	Goals     bool
	Activity  bool
}

// AllUnavailable reports total provider unavailability.
func (a FactsAvailability) AllUnavailable() bool {
	return !a.Ownership && !a.Progress && !a.Goals && !a.Activity
}

// AccountFactsService assembles the per-request facts snapshot. The four
// provider reads are independent, so they are issued concurrently and
// joined; a failure on any one read never blocks or fails the others.
type AccountFactsService struct {
	provider repositories.AccountFactsProvider
	logger   *logging.ChanneledLogger
}

// NewAccountFactsService creates a new facts assembly service.
func NewAccountFactsService(provider repositories.AccountFactsProvider, logger *logging.ChanneledLogger) *AccountFactsService {
	return &AccountFactsService{
		provider: provider,
		logger:   logger,
	}
}

// GetFacts fetches all four fact categories concurrently. Each failed
// category is logged and left empty in the returned snapshot; the
// availability flags let callers distinguish empty from unavailable.
func (s *AccountFactsService) GetFacts(ctx context.Context, userID string) (*account.Facts, FactsAvailability) {
	facts := &account.Facts{}
	availability := FactsAvailability{}

	readCtx, cancel := context.WithTimeout(ctx, config.FactsReadTimeout)
	defer cancel()

	g, readCtx := errgroup.WithContext(readCtx)

	g.Go(func() error {
		owned, err := s.provider.GetOwnedProducts(readCtx, userID)
		if err != nil {
			s.logger.Engine().Warn("Ownership facts unavailable, degrading to empty", "userId", userID, "error", err.Error())
			return nil
		}
		facts.OwnedProducts = owned
		availability.Ownership = true
		return nil
	})

	g.Go(func() error {
		progress, err := s.provider.GetProgress(readCtx, userID)
		if err != nil {
			s.logger.Engine().Warn("Progress facts unavailable, degrading to empty", "userId", userID, "error", err.Error())
			return nil
		}
		facts.Progress = progress
		availability.Progress = true
		return nil
	})

	g.Go(func() error {
		goals, err := s.provider.GetGoals(readCtx, userID)
		if err != nil {
			s.logger.Engine().Warn("Goal facts unavailable, degrading to empty", "userId", userID, "error", err.Error())
			return nil
		}
		facts.Goals = goals
		availability.Goals = true
		return nil
	})

	g.Go(func() error {
		activity, err := s.provider.GetRecentActivity(readCtx, userID)
		if err != nil {
			s.logger.Engine().Warn("Activity facts unavailable, degrading to empty", "userId", userID, "error", err.Error())
			return nil
		}
		facts.RecentActivity = activity
		availability.Activity = true
		return nil
	})

	// Goroutines swallow their own errors, so Wait only joins.
	_ = g.Wait()

	return facts, availability
}
