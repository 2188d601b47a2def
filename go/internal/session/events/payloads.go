package events

import "github.com/sortrush/sortrush/go/internal/models"

// Event payload types shared between the session and gateway packages.

// SessionStartedPayload is the payload for a SessionStarted event.
type SessionStartedPayload struct {
	SessionID    string `json:"session_id"`
	TotalRounds  int    `json:"total_rounds"`
	RoundSeconds int    `json:"round_seconds"`
}

// SessionPausedPayload is the payload for a SessionPaused event.
type SessionPausedPayload struct {
	SessionID    string `json:"session_id"`
	RemainingSec int    `json:"remaining_sec"`
}

// SessionResumedPayload is the payload for a SessionResumed event.
type SessionResumedPayload struct {
	SessionID    string `json:"session_id"`
	RemainingSec int    `json:"remaining_sec"`
}

// SessionRestartedPayload is the payload for a SessionRestarted event.
type SessionRestartedPayload struct {
	SessionID   string `json:"session_id"`
	TotalRounds int    `json:"total_rounds"`
}

// RoundFinalizedPayload is the payload for a RoundFinalized event. It is
// the fire-and-forget outcome notification the presentation layer reacts
// to (audio or visual cue keyed by Outcome).
type RoundFinalizedPayload struct {
	SessionID    string         `json:"session_id"`
	RoundIndex   int            `json:"round_index"`
	Outcome      models.Outcome `json:"outcome"`
	Picks        []int          `json:"picks"`
	CorrectOrder [3]int         `json:"correct_order"`
	TimeUsedSec  int            `json:"time_used_sec"`
	SessionDone  bool           `json:"session_done"`
}
