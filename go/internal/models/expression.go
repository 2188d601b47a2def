package models

import "fmt"

// Operator is the arithmetic operator of a single-operation expression.
type Operator string

const (
	OperatorAdd      Operator = "+"
	OperatorSubtract Operator = "-"
	OperatorMultiply Operator = "×"
	OperatorDivide   Operator = "÷"
)

// MaxExpressionValue is the inclusive upper bound on any evaluated expression.
const MaxExpressionValue = 200

// Expression is an immutable single-operation arithmetic expression.
// Value is always a positive integer ≤ MaxExpressionValue and Text contains
// at most one operator symbol.
type Expression struct {
	Left  int      `json:"left"`
	Right int      `json:"right"`
	Op    Operator `json:"op,omitempty"` // empty for a bare integer literal
	Value int      `json:"value"`
	Text  string   `json:"text"`
}

// Render returns the human-readable form of the expression.
func (e Expression) Render() string {
	if e.Op == "" {
		return fmt.Sprintf("%d", e.Value)
	}
	return fmt.Sprintf("%d %s %d", e.Left, e.Op, e.Right)
}
