package models

// SessionStatus defines the lifecycle state of a game session.
type SessionStatus string

const (
	SessionStatusIdle      SessionStatus = "IDLE"
	SessionStatusRunning   SessionStatus = "RUNNING"
	SessionStatusPaused    SessionStatus = "PAUSED"
	SessionStatusCompleted SessionStatus = "COMPLETED"
)
