package generator

import "github.com/sortrush/sortrush/go/internal/models"

// TierFor returns the difficulty tier for a round position. The bands are
// contiguous and non-overlapping: the first EasyBand rounds are easy, the
// next MediumBand rounds are medium, and the remainder is hard. The
// function is pure; the same position and settings always yield the same
// tier.
func TierFor(index int, settings models.GameSettings) models.DifficultyTier {
	switch {
	case index < settings.EasyBand:
		return settings.Easy
	case index < settings.EasyBand+settings.MediumBand:
		return settings.Medium
	default:
		return settings.Hard
	}
}
