// Package container provides dependency injection for all singleton services
package container

import (
	"fmt"

	"github.com/shelfwise/shelfwise-go/internal/application/services"
	"github.com/shelfwise/shelfwise-go/internal/domain/events"
	catalogstore "github.com/shelfwise/shelfwise-go/internal/infrastructure/catalog"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/email"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/observability/logging"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/observability/performance"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/persistence/account"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/persistence/analytics"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/persistence/database"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/persistence/user"
)

// Container holds all singleton services and infrastructure dependencies
type Container struct {
	// Engine services (stateless singletons)
	RecommendationService *services.RecommendationService
	NudgeService          *services.NudgeService
	SignalGenerators      *services.SignalGeneratorService
	Aggregator            *services.AggregationService
	Ranker                *services.RankingService
	AccountFactsService   *services.AccountFactsService

	// Site services
	CatalogService  *services.CatalogService
	ProgressService *services.ProgressService
	GoalService     *services.GoalService
	PurchaseService *services.PurchaseService
	ProfileService  *services.ProfileService
	SessionService  *services.SessionService
	AuthService     *services.AuthService

	// Infrastructure dependencies
	DB           *database.DB
	CatalogStore *catalogstore.Store
	EventSink    events.Sink
	Logger       *logging.ChanneledLogger
	PerfTracker  *performance.Tracker
}

// NewContainer creates and wires all singleton services on top of an
// opened database, a validated catalog, and the shared observability
// infrastructure.
func NewContainer(db *database.DB, store *catalogstore.Store, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) (*Container, error) {
	factsRepo := account.NewSQLFactsRepository(db, logger)
	progressRepo := account.NewSQLProgressRepository(db, logger)
	goalRepo := account.NewSQLGoalRepository(db)
	purchaseRepo := account.NewSQLPurchaseRepository(db)
	profileRepo := user.NewSQLProfileRepository(db)
	eventSink := analytics.NewSQLEventSink(db, logger)

	emailService, err := email.NewService()
	if err != nil {
		logger.System().Warn("Email service not configured, welcome emails disabled", "error", err.Error())
		emailService = email.NoopService{}
	}

	authService, err := services.NewAuthService(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}

	factsService := services.NewAccountFactsService(factsRepo, logger)
	generators := services.NewSignalGeneratorService(store, services.DefaultSignalWeights())
	aggregator := services.NewAggregationService()
	ranker := services.NewRankingService()
	sessionService := services.NewSessionService(profileRepo, logger)

	return &Container{
		RecommendationService: services.NewRecommendationService(factsService, generators, aggregator, ranker, logger),
		NudgeService:          services.NewNudgeService(factsService, logger),
		SignalGenerators:      generators,
		Aggregator:            aggregator,
		Ranker:                ranker,
		AccountFactsService:   factsService,

		CatalogService:  services.NewCatalogService(store),
		ProgressService: services.NewProgressService(progressRepo, store, eventSink, logger),
		GoalService:     services.NewGoalService(goalRepo, logger),
		PurchaseService: services.NewPurchaseService(purchaseRepo, store, eventSink, logger),
		ProfileService:  services.NewProfileService(profileRepo, sessionService, authService, emailService, logger),
		SessionService:  sessionService,
		AuthService:     authService,

		DB:           db,
		CatalogStore: store,
		EventSink:    eventSink,
		Logger:       logger,
		PerfTracker:  perfTracker,
	}, nil
}
