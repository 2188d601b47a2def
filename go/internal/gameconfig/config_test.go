package gameconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sortrush/sortrush/go/internal/models"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	return path
}

func TestLoadSettings_DefaultsWithoutFile(t *testing.T) {
	settings, err := LoadSettings("")
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if settings.TotalRounds != 15 || settings.RoundSeconds != 10 {
		t.Errorf("defaults = %d rounds / %d sec, want 15 / 10", settings.TotalRounds, settings.RoundSeconds)
	}
	if !settings.Easy.AllowZero || settings.Medium.AllowZero || settings.Hard.AllowZero {
		t.Error("zero allowance must be restricted to the easy tier")
	}
}

func TestLoadSettings_FileOverridesDefaults(t *testing.T) {
	path := writeSettings(t, `
total_rounds: 25
easy_band: 10
medium_band: 8
tiers:
  hard:
    operators: ["+", "-", "*", "/"]
    min: 3
    max: 14
`)

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if settings.TotalRounds != 25 {
		t.Errorf("total_rounds = %d, want 25", settings.TotalRounds)
	}
	if settings.EasyBand != 10 || settings.MediumBand != 8 {
		t.Errorf("bands = %d/%d, want 10/8", settings.EasyBand, settings.MediumBand)
	}
	if settings.RoundSeconds != 10 {
		t.Errorf("round_seconds = %d, want default 10", settings.RoundSeconds)
	}
	if settings.Hard.MinOperand != 3 || settings.Hard.MaxOperand != 14 {
		t.Errorf("hard range = [%d, %d], want [3, 14]", settings.Hard.MinOperand, settings.Hard.MaxOperand)
	}
	if len(settings.Hard.Operators) != 4 || settings.Hard.Operators[3] != models.OperatorDivide {
		t.Errorf("hard operators = %v", settings.Hard.Operators)
	}
	// Untouched tier keeps defaults.
	if settings.Easy.MaxOperand != 10 {
		t.Errorf("easy max = %d, want 10", settings.Easy.MaxOperand)
	}
}

func TestLoadSettings_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			"bands exceed rounds",
			"total_rounds: 5\neasy_band: 4\nmedium_band: 4\n",
			"exceed total rounds",
		},
		{
			"unknown operator",
			"tiers:\n  easy:\n    operators: [\"%\"]\n",
			"unknown operator",
		},
		{
			"unknown tier",
			"tiers:\n  brutal:\n    min: 1\n",
			"unknown tier",
		},
		{
			"zero allowance outside easy",
			"tiers:\n  hard:\n    allow_zero: true\n",
			"only allowed on the easy tier",
		},
		{
			"non-positive rounds",
			"total_rounds: 0\n",
			"must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSettings(t, tt.content)
			_, err := LoadSettings(path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GAME_SETTINGS", "/etc/sortrush/game.yaml")

	cfg := NewConfigFromEnv()
	if cfg.Port != "9090" {
		t.Errorf("Port = %s, want 9090", cfg.Port)
	}
	if cfg.SettingsPath != "/etc/sortrush/game.yaml" {
		t.Errorf("SettingsPath = %s", cfg.SettingsPath)
	}
}
