package models

// Round is one set of three expressions the player must tap in ascending
// order of evaluated value. Expression values are pairwise distinct and
// CorrectOrder is the permutation of indices 0..2 sorted by value.
// Rounds are created once at session bootstrap and never mutated.
type Round struct {
	Index        int           `json:"index"`
	Expressions  [3]Expression `json:"expressions"`
	CorrectOrder [3]int        `json:"correct_order"`
}
