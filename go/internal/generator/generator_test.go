package generator

import (
	"strings"
	"testing"

	"github.com/sortrush/sortrush/go/internal/models"
)

func easyTier() models.DifficultyTier {
	return models.DifficultyTier{
		Name:       models.TierEasy,
		Operators:  []models.Operator{models.OperatorAdd},
		MinOperand: 1,
		MaxOperand: 10,
		AllowZero:  true,
	}
}

func mediumTier() models.DifficultyTier {
	return models.DifficultyTier{
		Name:       models.TierMedium,
		Operators:  []models.Operator{models.OperatorAdd, models.OperatorSubtract, models.OperatorMultiply},
		MinOperand: 2,
		MaxOperand: 12,
	}
}

func hardTier() models.DifficultyTier {
	return models.DifficultyTier{
		Name:       models.TierHard,
		Operators:  []models.Operator{models.OperatorAdd, models.OperatorSubtract, models.OperatorMultiply, models.OperatorDivide},
		MinOperand: 2,
		MaxOperand: 15,
	}
}

func operatorCount(text string) int {
	count := 0
	for _, op := range []string{"+", "-", "×", "÷"} {
		count += strings.Count(text, op)
	}
	return count
}

func TestExpression_Bounds(t *testing.T) {
	tiers := []struct {
		name string
		tier models.DifficultyTier
	}{
		{"easy", easyTier()},
		{"medium", mediumTier()},
		{"hard", hardTier()},
	}

	for _, tt := range tiers {
		t.Run(tt.name, func(t *testing.T) {
			g := New(42)
			for i := 0; i < 10000; i++ {
				expr := g.Expression(tt.tier)
				if expr.Value <= 0 || expr.Value > models.MaxExpressionValue {
					t.Fatalf("expression %q value %d out of (0, %d]", expr.Text, expr.Value, models.MaxExpressionValue)
				}
				if n := operatorCount(expr.Text); n > 1 {
					t.Fatalf("rendering %q contains %d operators", expr.Text, n)
				}
			}
		})
	}
}

func TestExpression_DivisionExact(t *testing.T) {
	tier := hardTier()
	tier.Operators = []models.Operator{models.OperatorDivide}

	g := New(7)
	for i := 0; i < 10000; i++ {
		expr := g.Expression(tier)
		if expr.Op != models.OperatorDivide {
			// fallback addition is still a valid expression
			continue
		}
		if expr.Right == 0 || expr.Left%expr.Right != 0 {
			t.Fatalf("dividend %d not divisible by divisor %d", expr.Left, expr.Right)
		}
		if expr.Value != expr.Left/expr.Right {
			t.Fatalf("value %d != %d / %d", expr.Value, expr.Left, expr.Right)
		}
		if expr.Left < tier.MinOperand || expr.Left > tier.MaxOperand {
			t.Fatalf("dividend %d outside operand range [%d, %d]", expr.Left, tier.MinOperand, tier.MaxOperand)
		}
	}
}

func TestExpression_ZeroOnlyInEasyAddition(t *testing.T) {
	g := New(99)

	sawZero := false
	for i := 0; i < 10000; i++ {
		expr := g.Expression(easyTier())
		if expr.Left == 0 || expr.Right == 0 {
			if expr.Op != models.OperatorAdd {
				t.Fatalf("zero operand in non-addition expression %q", expr.Text)
			}
			sawZero = true
		}
	}
	if !sawZero {
		t.Error("no zero operand observed in 10000 easy additions")
	}

	for _, tier := range []models.DifficultyTier{mediumTier(), hardTier()} {
		for i := 0; i < 10000; i++ {
			expr := g.Expression(tier)
			if expr.Left == 0 || expr.Right == 0 {
				t.Fatalf("zero operand in %s tier expression %q", tier.Name, expr.Text)
			}
		}
	}
}

func TestRound_DistinctAndAscending(t *testing.T) {
	g := New(1)
	for i := 0; i < 1000; i++ {
		round := g.Round(i, hardTier())

		values := round.Expressions
		if values[0].Value == values[1].Value || values[0].Value == values[2].Value || values[1].Value == values[2].Value {
			t.Fatalf("round %d has duplicate values: %d, %d, %d", i, values[0].Value, values[1].Value, values[2].Value)
		}

		prev := 0
		for _, idx := range round.CorrectOrder {
			v := round.Expressions[idx].Value
			if v <= prev {
				t.Fatalf("round %d correct order %v not strictly ascending", i, round.CorrectOrder)
			}
			prev = v
		}
	}
}

func TestExpression_Deterministic(t *testing.T) {
	a := New(1234)
	b := New(1234)
	for i := 0; i < 100; i++ {
		ea := a.Expression(hardTier())
		eb := b.Expression(hardTier())
		if ea != eb {
			t.Fatalf("draw %d diverged: %+v vs %+v", i, ea, eb)
		}
	}
}

func TestExpression_FallbackAddition(t *testing.T) {
	// Subtraction with min == max can never produce a > b, so every
	// attempt fails and the generator must fall back to addition.
	tier := models.DifficultyTier{
		Name:       models.TierMedium,
		Operators:  []models.Operator{models.OperatorSubtract},
		MinOperand: 5,
		MaxOperand: 5,
	}

	g := New(3)
	for i := 0; i < 100; i++ {
		expr := g.Expression(tier)
		if expr.Op != models.OperatorAdd {
			t.Fatalf("expected fallback addition, got %q", expr.Text)
		}
		if expr.Value != 10 {
			t.Fatalf("fallback 5 + 5 should be 10, got %d", expr.Value)
		}
	}
}
