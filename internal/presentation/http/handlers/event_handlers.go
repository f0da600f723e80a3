package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shelfwise/shelfwise-go/internal/domain/events"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/observability/logging"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/observability/performance"
	"github.com/shelfwise/shelfwise-go/internal/presentation/http/middleware"
)

// EventHandlers contains the interaction event HTTP handlers
type EventHandlers struct {
	sink        events.Sink
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// EventRequest is one reported interaction from the storefront UI.
type EventRequest struct {
	ObjectID   string `json:"objectId" binding:"required"`
	ObjectType string `json:"objectType" binding:"required"`
	Verb       string `json:"verb" binding:"required"`
}

// NewEventHandlers creates event handlers with injected dependencies
func NewEventHandlers(sink events.Sink, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *EventHandlers {
	return &EventHandlers{
		sink:        sink,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// PostEvent handles POST /api/v1/events. The write is fire-and-forget:
// the response acknowledges receipt, not persistence.
func (h *EventHandlers) PostEvent(c *gin.Context) {
	marker := h.perfTracker.StartOperation("post_event_request")
	defer marker.Complete()

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		marker.SetSuccess(false)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}

	h.sink.Record(events.InteractionEvent{
		UserID:     middleware.GetUserID(c),
		ObjectID:   req.ObjectID,
		ObjectType: req.ObjectType,
		Verb:       req.Verb,
		CreatedAt:  time.Now().UTC(),
	})

	marker.SetSuccess(true)
	c.JSON(http.StatusAccepted, gin.H{"accepted": true})
}
