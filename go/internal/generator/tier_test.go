package generator

import (
	"testing"

	"github.com/sortrush/sortrush/go/internal/models"
)

func testSettings(total, easy, medium int) models.GameSettings {
	return models.GameSettings{
		TotalRounds:  total,
		RoundSeconds: 10,
		EasyBand:     easy,
		MediumBand:   medium,
		Easy:         easyTier(),
		Medium:       mediumTier(),
		Hard:         hardTier(),
	}
}

func TestTierFor_Partition(t *testing.T) {
	tests := []struct {
		name   string
		total  int
		easy   int
		medium int
	}{
		{"15 rounds 5/5/5", 15, 5, 5},
		{"25 rounds 10/8/7", 25, 10, 8},
		{"all easy", 6, 6, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := testSettings(tt.total, tt.easy, tt.medium)

			counts := map[models.TierName]int{}
			for i := 0; i < tt.total; i++ {
				tier := TierFor(i, settings)
				counts[tier.Name]++
			}

			if counts[models.TierEasy] != tt.easy {
				t.Errorf("easy band = %d, want %d", counts[models.TierEasy], tt.easy)
			}
			if counts[models.TierMedium] != tt.medium {
				t.Errorf("medium band = %d, want %d", counts[models.TierMedium], tt.medium)
			}
			if hard := tt.total - tt.easy - tt.medium; counts[models.TierHard] != hard {
				t.Errorf("hard band = %d, want %d", counts[models.TierHard], hard)
			}
		})
	}
}

func TestTierFor_ContiguousBands(t *testing.T) {
	settings := testSettings(15, 5, 5)

	// Bands must be contiguous: once the tier changes it never goes back.
	seen := []models.TierName{}
	for i := 0; i < settings.TotalRounds; i++ {
		name := TierFor(i, settings).Name
		if len(seen) == 0 || seen[len(seen)-1] != name {
			seen = append(seen, name)
		}
	}

	want := []models.TierName{models.TierEasy, models.TierMedium, models.TierHard}
	if len(seen) != len(want) {
		t.Fatalf("tier transitions = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("tier transitions = %v, want %v", seen, want)
		}
	}
}

func TestTierFor_ZeroAllowanceOnlyEasiestBand(t *testing.T) {
	settings := testSettings(15, 5, 5)
	for i := 0; i < settings.TotalRounds; i++ {
		tier := TierFor(i, settings)
		if tier.AllowZero && tier.Name != models.TierEasy {
			t.Fatalf("round %d: zero allowance on %s tier", i, tier.Name)
		}
	}
}
