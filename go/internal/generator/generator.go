package generator

import (
	"math/rand"
	"sort"

	"github.com/sortrush/sortrush/go/internal/models"
)

// maxAttempts bounds the rejection-sampling loop for a single operator draw
// before falling back to a guaranteed-valid addition.
const maxAttempts = 30

// Generator synthesizes single-operation arithmetic expressions and rounds.
// It is deterministic with respect to the seed of the injected random
// source, so tests can force exact sequences.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator seeded with the given value.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// NewFromRand creates a Generator that draws from the provided source.
func NewFromRand(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Expression generates one expression for the tier. The returned value is
// always an integer in (0, models.MaxExpressionValue] and the rendering
// contains at most one operator. Generation never fails: if the bounded
// retry budget is exhausted the fallback addition is used.
func (g *Generator) Expression(tier models.DifficultyTier) models.Expression {
	op := tier.Operators[g.rng.Intn(len(tier.Operators))]

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if expr, ok := g.tryExpression(op, tier); ok {
			return expr
		}
	}
	return g.fallbackAddition(tier)
}

// Round generates three expressions with pairwise-distinct values and the
// ascending permutation of their indices. Duplicate values are discarded
// and redrawn; collisions are rare so the loop is unbounded.
func (g *Generator) Round(index int, tier models.DifficultyTier) models.Round {
	var exprs [3]models.Expression
	count := 0
	for count < 3 {
		candidate := g.Expression(tier)
		duplicate := false
		for i := 0; i < count; i++ {
			if exprs[i].Value == candidate.Value {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}
		exprs[count] = candidate
		count++
	}

	order := [3]int{0, 1, 2}
	sort.Slice(order[:], func(a, b int) bool {
		return exprs[order[a]].Value < exprs[order[b]].Value
	})

	return models.Round{
		Index:        index,
		Expressions:  exprs,
		CorrectOrder: order,
	}
}

func (g *Generator) tryExpression(op models.Operator, tier models.DifficultyTier) (models.Expression, bool) {
	switch op {
	case models.OperatorAdd:
		return g.tryAddition(tier)
	case models.OperatorSubtract:
		return g.trySubtraction(tier)
	case models.OperatorMultiply:
		return g.tryMultiplication(tier)
	case models.OperatorDivide:
		return g.tryDivision(tier)
	default:
		return models.Expression{}, false
	}
}

func (g *Generator) tryAddition(tier models.DifficultyTier) (models.Expression, bool) {
	lo := tier.MinOperand
	if tier.AllowZero {
		lo = 0
	}
	a := g.between(lo, tier.MaxOperand)
	b := g.between(lo, tier.MaxOperand)
	sum := a + b
	if sum <= 0 || sum > models.MaxExpressionValue {
		return models.Expression{}, false
	}
	return build(a, b, models.OperatorAdd, sum), true
}

func (g *Generator) trySubtraction(tier models.DifficultyTier) (models.Expression, bool) {
	lo := tier.MinOperand
	if lo < 1 {
		lo = 1
	}
	a := g.between(lo, tier.MaxOperand)
	b := g.between(lo, tier.MaxOperand)
	if a <= b {
		return models.Expression{}, false
	}
	diff := a - b
	if diff > models.MaxExpressionValue {
		return models.Expression{}, false
	}
	return build(a, b, models.OperatorSubtract, diff), true
}

func (g *Generator) tryMultiplication(tier models.DifficultyTier) (models.Expression, bool) {
	lo := tier.MinOperand
	if lo < 1 {
		lo = 1
	}
	a := g.between(lo, tier.MaxOperand)
	b := g.between(lo, tier.MaxOperand)
	product := a * b
	if product <= 0 || product > models.MaxExpressionValue {
		return models.Expression{}, false
	}
	return build(a, b, models.OperatorMultiply, product), true
}

// tryDivision picks a divisor, then a quotient such that the dividend
// (divisor × quotient) stays inside the tier's operand range. The dividend
// is derived from the quotient, so division is always exact.
func (g *Generator) tryDivision(tier models.DifficultyTier) (models.Expression, bool) {
	lo := tier.MinOperand
	if lo < 1 {
		lo = 1
	}
	divisor := g.between(lo, tier.MaxOperand)

	qMin := (tier.MinOperand + divisor - 1) / divisor
	if qMin < 1 {
		qMin = 1
	}
	qMax := tier.MaxOperand / divisor
	if qMax > models.MaxExpressionValue {
		qMax = models.MaxExpressionValue
	}
	if qMin > qMax {
		return models.Expression{}, false
	}

	quotient := g.between(qMin, qMax)
	dividend := divisor * quotient
	return build(dividend, divisor, models.OperatorDivide, quotient), true
}

// fallbackAddition produces a known-valid expression when rejection
// sampling runs out of attempts. Operands respect the tier's zero rule;
// the literal pair 1 + 1 covers the case where even a redraw would exceed
// the cap.
func (g *Generator) fallbackAddition(tier models.DifficultyTier) models.Expression {
	lo := tier.MinOperand
	if tier.AllowZero {
		lo = 0
	}
	a := g.between(lo, tier.MaxOperand)
	b := g.between(lo, tier.MaxOperand)
	if sum := a + b; sum > 0 && sum <= models.MaxExpressionValue {
		return build(a, b, models.OperatorAdd, sum)
	}
	return build(1, 1, models.OperatorAdd, 2)
}

// between returns a uniform draw from the inclusive range [lo, hi].
func (g *Generator) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}

func build(left, right int, op models.Operator, value int) models.Expression {
	expr := models.Expression{
		Left:  left,
		Right: right,
		Op:    op,
		Value: value,
	}
	expr.Text = expr.Render()
	return expr
}
