package gateway

import "time"

// EventType identifies a message pushed to connected clients.
type EventType string

const (
	EventTypeStateSync        EventType = "state_sync"
	EventTypeOutcome          EventType = "outcome"
	EventTypeSessionStarted   EventType = "session_started"
	EventTypeSessionPaused    EventType = "session_paused"
	EventTypeSessionResumed   EventType = "session_resumed"
	EventTypeSessionRestarted EventType = "session_restarted"
	EventTypeSessionCompleted EventType = "session_completed"
)

// GameEvent is the envelope broadcast over WebSocket connections.
type GameEvent struct {
	Type      EventType   `json:"type"`
	SessionID string      `json:"session_id"`
	At        time.Time   `json:"at"`
	Payload   interface{} `json:"payload,omitempty"`
}
