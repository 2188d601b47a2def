package runner

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/sortrush/sortrush/go/internal/generator"
	"github.com/sortrush/sortrush/go/internal/models"
	"github.com/sortrush/sortrush/go/internal/session"
)

func runnerSettings() models.GameSettings {
	tier := models.DifficultyTier{
		Name:       models.TierEasy,
		Operators:  []models.Operator{models.OperatorAdd},
		MinOperand: 1,
		MaxOperand: 10,
		AllowZero:  true,
	}
	return models.GameSettings{
		TotalRounds:  3,
		RoundSeconds: 10,
		EasyBand:     3,
		Easy:         tier,
		Medium:       tier,
		Hard:         tier,
	}
}

func TestRunner_TicksRunningSessionsOnly(t *testing.T) {
	fc := clockwork.NewFakeClock()
	registry := session.NewRegistry()

	running := session.New(uuid.New(), runnerSettings(), generator.New(1), nil)
	idle := session.New(uuid.New(), runnerSettings(), generator.New(2), nil)
	registry.Put(running)
	registry.Put(idle)
	running.Start()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- New(registry, fc, time.Second).Run(ctx)
	}()

	// Wait for the timer to be armed before advancing.
	fc.BlockUntil(1)

	for i := 0; i < 3; i++ {
		fc.Advance(time.Second)
		// The timer is re-armed only after the tick fan-out finished.
		fc.BlockUntil(1)
	}

	if remaining := running.Remaining(); remaining != 7 {
		t.Errorf("running session remaining = %d, want 7", remaining)
	}
	if remaining := idle.Remaining(); remaining != 10 {
		t.Errorf("idle session remaining = %d, want 10", remaining)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v, want nil", err)
		}
	case <-time.After(time.Second):
		t.Fatal("runner did not shut down after cancel")
	}
}

func TestRunner_DrivesRoundTimeout(t *testing.T) {
	fc := clockwork.NewFakeClock()
	registry := session.NewRegistry()

	s := session.New(uuid.New(), runnerSettings(), generator.New(3), nil)
	registry.Put(s)
	s.Start()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go New(registry, fc, time.Second).Run(ctx)

	fc.BlockUntil(1)
	for i := 0; i < 10; i++ {
		fc.Advance(time.Second)
		fc.BlockUntil(1)
	}

	history := s.History()
	if len(history) != 1 {
		t.Fatalf("history length = %d, want 1", len(history))
	}
	if !history[0].TimedOut {
		t.Error("round driven to zero by the runner should be timed out")
	}
	if s.CurrentRoundIndex() != 1 {
		t.Errorf("round pointer = %d, want 1", s.CurrentRoundIndex())
	}
}
