// Package analytics provides the concrete SQL-based implementation of the
// interaction event sink.
//
// PURPOSE: store UI-reported interaction events to the actions table as they
// happen. Recording is fire-and-forget: failures are logged, never returned
// to the caller.
package analytics

import (
	"time"

	"github.com/shelfwise/shelfwise-go/internal/domain/events"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/observability/logging"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/persistence/database"
	"github.com/shelfwise/shelfwise-go/internal/infrastructure/security"
)

// SQLEventSink handles real-time event persistence to the database.
type SQLEventSink struct {
	db     *database.DB
	logger *logging.ChanneledLogger
}

// NewSQLEventSink creates a new instance of the sink.
func NewSQLEventSink(db *database.DB, logger *logging.ChanneledLogger) *SQLEventSink {
	return &SQLEventSink{
		db:     db,
		logger: logger,
	}
}

// Record saves a user interaction event to the database.
func (s *SQLEventSink) Record(event events.InteractionEvent) {
	if event.ID == "" {
		event.ID = security.GenerateULID()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO actions (id, user_id, object_id, object_type, verb, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	start := time.Now()
	_, err := s.db.Exec(query,
		event.ID,
		event.UserID,
		event.ObjectID,
		event.ObjectType,
		event.Verb,
		event.CreatedAt,
	)
	if err != nil {
		s.logger.Database().Error("Interaction event insert failed",
			"error", err.Error(),
			"eventId", event.ID,
			"objectId", event.ObjectID,
			"verb", event.Verb,
			"userId", event.UserID)
		return
	}

	s.logger.Database().Debug("Interaction event insert completed",
		"eventId", event.ID,
		"objectId", event.ObjectID,
		"objectType", event.ObjectType,
		"verb", event.Verb,
		"duration", time.Since(start))
}
