// Package routes provides HTTP route configuration for the presentation layer.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shelfwise/shelfwise-go/internal/application/container"
	"github.com/shelfwise/shelfwise-go/internal/presentation/http/handlers"
	"github.com/shelfwise/shelfwise-go/internal/presentation/http/middleware"
)

// SetupRoutes configures all HTTP routes and middleware with dependency injection.
func SetupRoutes(container *container.Container) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	// Initialize handlers
	recommendationHandlers := handlers.NewRecommendationHandlers(container.RecommendationService, container.Logger, container.PerfTracker)
	nudgeHandlers := handlers.NewNudgeHandlers(container.NudgeService, container.Logger, container.PerfTracker)
	catalogHandlers := handlers.NewCatalogHandlers(container.CatalogService, container.Logger, container.PerfTracker)
	progressHandlers := handlers.NewProgressHandlers(container.ProgressService, container.Logger, container.PerfTracker)
	goalHandlers := handlers.NewGoalHandlers(container.GoalService, container.Logger, container.PerfTracker)
	purchaseHandlers := handlers.NewPurchaseHandlers(container.PurchaseService, container.Logger, container.PerfTracker)
	eventHandlers := handlers.NewEventHandlers(container.EventSink, container.Logger, container.PerfTracker)
	visitHandlers := handlers.NewVisitHandlers(container.SessionService, container.ProfileService, container.Logger, container.PerfTracker)
	authHandlers := handlers.NewAuthHandlers(container.AuthService, container.Logger, container.PerfTracker)
	dbHandlers := handlers.NewDBHandlers(container.DB, container.Logger, container.PerfTracker)

	api := r.Group("/api/v1")
	api.Use(middleware.SessionMiddleware(container.SessionService))
	{
		// Engine endpoints
		api.GET("/recommendations", recommendationHandlers.GetRecommendations)
		api.GET("/nudges", nudgeHandlers.GetNudges)

		// Catalog endpoints
		catalogGroup := api.Group("/catalog")
		{
			catalogGroup.GET("/products", catalogHandlers.GetProducts)
			catalogGroup.GET("/products/:productId", catalogHandlers.GetProduct)
			catalogGroup.GET("/products/:productId/chapters", catalogHandlers.GetProductChapters)
			catalogGroup.GET("/products/:productId/related", catalogHandlers.GetProductRelated)
		}

		// Reading progress
		api.GET("/progress/:productId", progressHandlers.GetProgress)
		api.POST("/progress/:productId", progressHandlers.PostProgress)

		// Reader goals
		api.GET("/goals", goalHandlers.GetGoals)
		api.POST("/goals", goalHandlers.PostGoal)

		// Checkout completion
		api.POST("/purchases", purchaseHandlers.PostPurchase)

		// Interaction events
		api.POST("/events", eventHandlers.PostEvent)

		// Authentication and session routes
		auth := api.Group("/auth")
		{
			auth.POST("/visit", visitHandlers.PostVisit)
			auth.POST("/profile", visitHandlers.PostProfile)
			auth.GET("/profile/decode", authHandlers.GetDecodeProfile)
			auth.POST("/login", authHandlers.PostLogin)
		}

		// System status
		api.GET("/health", dbHandlers.GetHealth)
		api.GET("/db/status", dbHandlers.GetDatabaseStatus)
	}

	return r
}
