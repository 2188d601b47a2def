package session

import (
	"math"

	"github.com/sortrush/sortrush/go/internal/models"
)

// Derived read-only views. All are recomputed from the history and current
// state on demand; nothing here is stored redundantly.

// Status returns the current lifecycle state.
func (s *Session) Status() models.SessionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Score is the count of correctly ordered rounds.
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scoreLocked()
}

// IncorrectCount is the count of rounds judged wrong without timing out.
func (s *Session) IncorrectCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.incorrectLocked()
}

// TimeoutCount is the count of rounds that ended on the countdown.
func (s *Session) TimeoutCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timeoutsLocked()
}

// Accuracy is the score as a rounded percentage of the total round count.
func (s *Session) Accuracy() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accuracyLocked()
}

// TimeUsed is the cumulative seconds consumed across completed rounds.
func (s *Session) TimeUsed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timeUsedLocked()
}

// Remaining is the countdown value for the active round.
func (s *Session) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remaining
}

// Finished reports whether the round pointer has advanced past the last
// round.
func (s *Session) Finished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current >= len(s.rounds)
}

// CurrentRoundIndex returns the zero-based pointer of the active round.
func (s *Session) CurrentRoundIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// CurrentRound returns the active round, or false once the session is
// finished.
func (s *Session) CurrentRound() (models.Round, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current >= len(s.rounds) {
		return models.Round{}, false
	}
	return s.rounds[s.current], true
}

// Picks returns a copy of the in-progress pick sequence.
func (s *Session) Picks() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	picks := make([]int, len(s.picks))
	copy(picks, s.picks)
	return picks
}

// History returns a copy of the completed-round history.
func (s *Session) History() []models.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	history := make([]models.HistoryEntry, len(s.history))
	copy(history, s.history)
	return history
}

// Rounds returns the full round sequence, so history entries can be
// resolved back to their expressions and correct order for review.
func (s *Session) Rounds() []models.Round {
	s.mu.Lock()
	defer s.mu.Unlock()
	rounds := make([]models.Round, len(s.rounds))
	copy(rounds, s.rounds)
	return rounds
}

// Settings returns the session configuration.
func (s *Session) Settings() models.GameSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Snapshot is a consistent point-in-time view of the session assembled
// under a single lock acquisition.
type Snapshot struct {
	ID           string
	Status       models.SessionStatus
	RoundIndex   int
	TotalRounds  int
	Round        *models.Round
	Picks        []int
	RemainingSec int
	RoundSeconds int
	Score        int
	Incorrect    int
	Timeouts     int
	Accuracy     int
	TimeUsedSec  int
	TotalTimeSec int
	Finished     bool
	History      []models.HistoryEntry
}

// Snapshot captures every view the presentation layer needs in one
// consistent read.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	picks := make([]int, len(s.picks))
	copy(picks, s.picks)
	history := make([]models.HistoryEntry, len(s.history))
	copy(history, s.history)

	snap := Snapshot{
		ID:           s.ID.String(),
		Status:       s.status,
		RoundIndex:   s.current,
		TotalRounds:  len(s.rounds),
		Picks:        picks,
		RemainingSec: s.remaining,
		RoundSeconds: s.settings.RoundSeconds,
		Score:        s.scoreLocked(),
		Incorrect:    s.incorrectLocked(),
		Timeouts:     s.timeoutsLocked(),
		Accuracy:     s.accuracyLocked(),
		TimeUsedSec:  s.timeUsedLocked(),
		TotalTimeSec: len(s.rounds) * s.settings.RoundSeconds,
		Finished:     s.current >= len(s.rounds),
		History:      history,
	}
	if s.current < len(s.rounds) {
		round := s.rounds[s.current]
		snap.Round = &round
	}
	return snap
}

func (s *Session) scoreLocked() int {
	score := 0
	for _, entry := range s.history {
		if entry.Correct {
			score++
		}
	}
	return score
}

func (s *Session) incorrectLocked() int {
	incorrect := 0
	for _, entry := range s.history {
		if !entry.Correct && !entry.TimedOut {
			incorrect++
		}
	}
	return incorrect
}

func (s *Session) timeoutsLocked() int {
	timeouts := 0
	for _, entry := range s.history {
		if entry.TimedOut {
			timeouts++
		}
	}
	return timeouts
}

func (s *Session) accuracyLocked() int {
	if len(s.rounds) == 0 {
		return 0
	}
	return int(math.Round(float64(s.scoreLocked()) / float64(len(s.rounds)) * 100))
}

func (s *Session) timeUsedLocked() int {
	total := 0
	for _, entry := range s.history {
		total += entry.TimeUsedSec
	}
	return total
}
