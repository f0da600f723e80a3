package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shelfwise/shelfwise-go/internal/application/services"
	"github.com/shelfwise/shelfwise-go/internal/domain/entities/account"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/observability/logging"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/observability/performance"
	"github.com/shelfwise/shelfwise-go/internal/presentation/http/middleware"
)

// GoalHandlers contains the reader goal HTTP handlers
type GoalHandlers struct {
	goalService *services.GoalService
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewGoalHandlers creates goal handlers with injected dependencies
func NewGoalHandlers(goalService *services.GoalService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *GoalHandlers {
	return &GoalHandlers{
		goalService: goalService,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// GetGoals handles GET /api/v1/goals
func (h *GoalHandlers) GetGoals(c *gin.Context) {
	marker := h.perfTracker.StartOperation("get_goals_request")
	defer marker.Complete()

	userID := middleware.GetUserID(c)
	if userID == "" {
		marker.SetSuccess(false)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "a bound session is required"})
		return
	}

	goals, err := h.goalService.ListGoals(c.Request.Context(), userID)
	if err != nil {
		marker.SetError(err)
		h.logger.Engine().Error("Goal listing failed", "userId", userID, "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list goals"})
		return
	}

	marker.SetSuccess(true)
	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

// PostGoal handles POST /api/v1/goals
func (h *GoalHandlers) PostGoal(c *gin.Context) {
	marker := h.perfTracker.StartOperation("post_goal_request")
	defer marker.Complete()

	userID := middleware.GetUserID(c)
	if userID == "" {
		marker.SetSuccess(false)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "a bound session is required"})
		return
	}

	var goal account.Goal
	if err := c.ShouldBindJSON(&goal); err != nil {
		marker.SetSuccess(false)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}

	if err := h.goalService.SetGoal(c.Request.Context(), userID, goal); err != nil {
		marker.SetError(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	marker.SetSuccess(true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
