// Package events provides interaction event types
package events

import "time"

// InteractionEvent records a user acting on a recommendation, nudge, or
// piece of content. Produced by the UI collaborator, never by the engine.
type InteractionEvent struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	ObjectID   string    `json:"objectId"`
	ObjectType string    `json:"objectType"`
	Verb       string    `json:"verb"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Sink accepts interaction events fire-and-forget. Implementations must not
// block the caller on persistence failures.
type Sink interface {
	Record(event InteractionEvent)
}
