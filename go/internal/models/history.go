package models

// Outcome classifies how a round ended.
type Outcome string

const (
	OutcomeCorrect   Outcome = "correct"
	OutcomeIncorrect Outcome = "incorrect"
	OutcomeTimedOut  Outcome = "timed_out"
)

// HistoryEntry is the immutable record of one completed round. Exactly one
// entry is appended per round; entries are never mutated or removed.
type HistoryEntry struct {
	RoundIndex  int   `json:"round_index"`
	Picks       []int `json:"picks"` // may be shorter than 3 on timeout
	Correct     bool  `json:"correct"`
	TimedOut    bool  `json:"timed_out"`
	TimeUsedSec int   `json:"time_used_sec"`
}

// Outcome returns the outcome kind for this entry.
func (h HistoryEntry) Outcome() Outcome {
	switch {
	case h.TimedOut:
		return OutcomeTimedOut
	case h.Correct:
		return OutcomeCorrect
	default:
		return OutcomeIncorrect
	}
}
