package models

// TierName identifies a difficulty tier.
type TierName string

const (
	TierEasy   TierName = "easy"
	TierMedium TierName = "medium"
	TierHard   TierName = "hard"
)

// DifficultyTier configures expression generation for a band of rounds:
// the allowed operator set, the inclusive operand range, and whether zero
// may appear as an addition operand.
type DifficultyTier struct {
	Name       TierName   `json:"name"`
	Operators  []Operator `json:"operators"`
	MinOperand int        `json:"min_operand"`
	MaxOperand int        `json:"max_operand"`
	AllowZero  bool       `json:"allow_zero"` // addition only, easiest tier only
}

// GameSettings holds the tunable configuration of a game session. Round
// count and band widths are parameters, not constants; the bands partition
// the round sequence contiguously (easy, then medium, remainder hard).
type GameSettings struct {
	TotalRounds  int            `json:"total_rounds"`
	RoundSeconds int            `json:"round_seconds"`
	EasyBand     int            `json:"easy_band"`
	MediumBand   int            `json:"medium_band"`
	Easy         DifficultyTier `json:"easy"`
	Medium       DifficultyTier `json:"medium"`
	Hard         DifficultyTier `json:"hard"`
}
