package session

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sortrush/sortrush/go/internal/generator"
	"github.com/sortrush/sortrush/go/internal/models"
	"github.com/sortrush/sortrush/go/internal/session/events"
)

// picksPerRound is the number of expressions the player must order.
const picksPerRound = 3

// NotifyFunc receives the fire-and-forget round outcome notification. It
// is invoked after the round transition has fully applied and never while
// the session lock is held, so implementations may call back into the
// session.
type NotifyFunc func(events.RoundFinalizedPayload)

// Session owns one run of the game: the fixed round sequence, the active
// round's picks, the countdown, and the append-only history. Commands are
// silent no-ops when invalid for the current state; the input layer never
// sees errors for stray events.
//
// Two triggers race to close a round: the countdown reaching zero and the
// third pick landing. The mutex serializes them and the finalizing latch
// absorbs re-entrant finalization within one round's lifetime, so exactly
// one HistoryEntry is appended per round.
type Session struct {
	ID uuid.UUID

	mu         sync.Mutex
	settings   models.GameSettings
	gen        *generator.Generator
	rounds     []models.Round
	current    int
	picks      []int
	remaining  int
	status     models.SessionStatus
	finalizing bool
	history    []models.HistoryEntry
	notify     NotifyFunc
	pending    *events.RoundFinalizedPayload
}

// New creates a session and bootstraps its first run.
func New(id uuid.UUID, settings models.GameSettings, gen *generator.Generator, notify NotifyFunc) *Session {
	if notify == nil {
		notify = func(events.RoundFinalizedPayload) {}
	}
	s := &Session{
		ID:       id,
		settings: settings,
		gen:      gen,
		notify:   notify,
	}
	s.Bootstrap()
	return s
}

// Bootstrap regenerates the full round sequence with fresh randomness,
// resets the round pointer, picks, history, and countdown, and leaves the
// session Idle. Safe to call from any state; everything in flight is
// discarded.
func (s *Session) Bootstrap() {
	s.mu.Lock()
	defer s.mu.Unlock()

	rounds := make([]models.Round, s.settings.TotalRounds)
	for i := range rounds {
		tier := generator.TierFor(i, s.settings)
		rounds[i] = s.gen.Round(i, tier)
	}

	s.rounds = rounds
	s.current = 0
	s.picks = nil
	s.history = nil
	s.remaining = s.settings.RoundSeconds
	s.status = models.SessionStatusIdle
	s.finalizing = false
	s.pending = nil
}

// Restart is Bootstrap under its command name: it is valid mid-round and
// is not undoable.
func (s *Session) Restart() {
	s.Bootstrap()
}

// Start moves an idle or paused session to Running. No effect once
// completed.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == models.SessionStatusIdle || s.status == models.SessionStatusPaused {
		s.status = models.SessionStatusRunning
	}
}

// Pause suspends a running session. The remaining countdown is state, not
// a running timer; it is preserved exactly until the next Start.
func (s *Session) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == models.SessionStatusRunning {
		s.status = models.SessionStatusPaused
	}
}

// Tick decrements the countdown by one unit. Only meaningful while
// Running; when the countdown reaches zero the round is finalized as
// timed out.
func (s *Session) Tick() {
	s.mu.Lock()
	if s.status != models.SessionStatusRunning || s.finalizing {
		s.mu.Unlock()
		return
	}

	s.remaining--
	if s.remaining <= 0 {
		s.finalizeRoundLocked(true)
	}
	notification := s.takePendingLocked()
	s.mu.Unlock()

	s.dispatch(notification)
}

// Pick registers the player tapping expression index. Picking an
// already-picked index deselects it with no other side effect. The third
// appended pick finalizes the round synchronously. Out-of-range indices
// and picks outside Running are ignored.
func (s *Session) Pick(index int) {
	s.mu.Lock()
	if s.status != models.SessionStatusRunning || s.finalizing {
		s.mu.Unlock()
		return
	}
	if index < 0 || index >= picksPerRound {
		s.mu.Unlock()
		return
	}

	if pos := indexOf(s.picks, index); pos >= 0 {
		s.picks = append(s.picks[:pos], s.picks[pos+1:]...)
		s.mu.Unlock()
		return
	}

	if len(s.picks) >= picksPerRound {
		s.mu.Unlock()
		return
	}

	s.picks = append(s.picks, index)
	if len(s.picks) == picksPerRound {
		s.finalizeRoundLocked(false)
	}
	notification := s.takePendingLocked()
	s.mu.Unlock()

	s.dispatch(notification)
}

// finalizeRoundLocked closes the active round: judges the picks, appends
// the history entry, and advances the pointer. The latch makes it
// idempotent for the round's lifetime and is cleared only after the
// transition has fully applied, so the next round's triggers are never
// suppressed. Callers hold the session lock.
func (s *Session) finalizeRoundLocked(timedOut bool) {
	if s.finalizing || s.current >= len(s.rounds) {
		return
	}
	s.finalizing = true

	round := s.rounds[s.current]
	correct := !timedOut && len(s.picks) == picksPerRound && picksMatch(s.picks, round.CorrectOrder)

	used := s.settings.RoundSeconds - s.remaining
	if used < 0 {
		used = 0
	}
	if used > s.settings.RoundSeconds {
		used = s.settings.RoundSeconds
	}

	picks := make([]int, len(s.picks))
	copy(picks, s.picks)

	entry := models.HistoryEntry{
		RoundIndex:  s.current,
		Picks:       picks,
		Correct:     correct,
		TimedOut:    timedOut,
		TimeUsedSec: used,
	}
	s.history = append(s.history, entry)

	s.current++
	if s.current < len(s.rounds) {
		s.picks = nil
		s.remaining = s.settings.RoundSeconds
	} else {
		s.picks = nil
		s.remaining = 0
		s.status = models.SessionStatusCompleted
	}

	s.finalizing = false

	s.pending = &events.RoundFinalizedPayload{
		SessionID:    s.ID.String(),
		RoundIndex:   entry.RoundIndex,
		Outcome:      entry.Outcome(),
		Picks:        picks,
		CorrectOrder: round.CorrectOrder,
		TimeUsedSec:  used,
		SessionDone:  s.current >= len(s.rounds),
	}
}

func (s *Session) takePendingLocked() *events.RoundFinalizedPayload {
	n := s.pending
	s.pending = nil
	return n
}

func (s *Session) dispatch(n *events.RoundFinalizedPayload) {
	if n != nil {
		s.notify(*n)
	}
}

func indexOf(picks []int, index int) int {
	for i, p := range picks {
		if p == index {
			return i
		}
	}
	return -1
}

func picksMatch(picks []int, order [3]int) bool {
	for i := range order {
		if picks[i] != order[i] {
			return false
		}
	}
	return true
}
