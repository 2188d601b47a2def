package gateway

import (
	"github.com/sortrush/sortrush/go/internal/models"
	"github.com/sortrush/sortrush/go/internal/session"
)

// SessionState is the JSON view of a session pushed to clients and served
// by the state endpoint.
type SessionState struct {
	SessionID    string               `json:"session_id"`
	Status       models.SessionStatus `json:"status"`
	RoundIndex   int                  `json:"round_index"`
	TotalRounds  int                  `json:"total_rounds"`
	Expressions  []ExpressionView     `json:"expressions,omitempty"`
	Picks        []PickView           `json:"picks"`
	RemainingSec int                  `json:"remaining_sec"`
	RoundSeconds int                  `json:"round_seconds"`
	Score        int                  `json:"score"`
	Incorrect    int                  `json:"incorrect"`
	Timeouts     int                  `json:"timeouts"`
	Accuracy     int                  `json:"accuracy"`
	TimeUsedSec  int                  `json:"time_used_sec"`
	TotalTimeSec int                  `json:"total_time_sec"`
	Finished     bool                 `json:"finished"`
}

// ExpressionView is one of the three tappable expressions of the active
// round. Only the rendering is exposed; values stay server-side.
type ExpressionView struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// PickView is one entry of the in-progress pick sequence with its 1-based
// rank number.
type PickView struct {
	Index int `json:"index"`
	Rank  int `json:"rank"`
}

// HistoryView is one completed round for post-session review, resolvable
// back to its expressions and the correct order.
type HistoryView struct {
	RoundIndex   int            `json:"round_index"`
	Expressions  []string       `json:"expressions"`
	CorrectOrder [3]int         `json:"correct_order"`
	Picks        []int          `json:"picks"`
	Outcome      models.Outcome `json:"outcome"`
	TimeUsedSec  int            `json:"time_used_sec"`
}

// StateFromSnapshot converts a session snapshot into the client view.
func StateFromSnapshot(snap session.Snapshot) SessionState {
	state := SessionState{
		SessionID:    snap.ID,
		Status:       snap.Status,
		RoundIndex:   snap.RoundIndex,
		TotalRounds:  snap.TotalRounds,
		Picks:        make([]PickView, 0, len(snap.Picks)),
		RemainingSec: snap.RemainingSec,
		RoundSeconds: snap.RoundSeconds,
		Score:        snap.Score,
		Incorrect:    snap.Incorrect,
		Timeouts:     snap.Timeouts,
		Accuracy:     snap.Accuracy,
		TimeUsedSec:  snap.TimeUsedSec,
		TotalTimeSec: snap.TotalTimeSec,
		Finished:     snap.Finished,
	}

	if snap.Round != nil {
		for i, expr := range snap.Round.Expressions {
			state.Expressions = append(state.Expressions, ExpressionView{Index: i, Text: expr.Text})
		}
	}
	for rank, idx := range snap.Picks {
		state.Picks = append(state.Picks, PickView{Index: idx, Rank: rank + 1})
	}
	return state
}

// HistoryFromSession builds the review list for a session.
func HistoryFromSession(rounds []models.Round, history []models.HistoryEntry) []HistoryView {
	views := make([]HistoryView, 0, len(history))
	for _, entry := range history {
		view := HistoryView{
			RoundIndex:  entry.RoundIndex,
			Picks:       entry.Picks,
			Outcome:     entry.Outcome(),
			TimeUsedSec: entry.TimeUsedSec,
		}
		if entry.RoundIndex < len(rounds) {
			round := rounds[entry.RoundIndex]
			view.CorrectOrder = round.CorrectOrder
			for _, expr := range round.Expressions {
				view.Expressions = append(view.Expressions, expr.Text)
			}
		}
		views = append(views, view)
	}
	return views
}
