package gameconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sortrush/sortrush/go/internal/models"
)

// Config holds service settings read from the environment.
type Config struct {
	Port         string
	SettingsPath string // optional YAML game settings file
}

// NewConfigFromEnv reads environment variables (with defaults).
func NewConfigFromEnv() Config {
	return Config{
		Port:         getEnv("PORT", "8080"),
		SettingsPath: getEnv("GAME_SETTINGS", ""),
	}
}

// DefaultSettings returns the built-in game tuning: 15 rounds of 10
// seconds in 5/5/5 difficulty bands. Every field can be overridden by a
// settings file; none of this is a hard constant.
func DefaultSettings() models.GameSettings {
	return models.GameSettings{
		TotalRounds:  15,
		RoundSeconds: 10,
		EasyBand:     5,
		MediumBand:   5,
		Easy: models.DifficultyTier{
			Name:       models.TierEasy,
			Operators:  []models.Operator{models.OperatorAdd},
			MinOperand: 1,
			MaxOperand: 10,
			AllowZero:  true,
		},
		Medium: models.DifficultyTier{
			Name:       models.TierMedium,
			Operators:  []models.Operator{models.OperatorAdd, models.OperatorSubtract, models.OperatorMultiply},
			MinOperand: 2,
			MaxOperand: 12,
		},
		Hard: models.DifficultyTier{
			Name:       models.TierHard,
			Operators:  []models.Operator{models.OperatorAdd, models.OperatorSubtract, models.OperatorMultiply, models.OperatorDivide},
			MinOperand: 2,
			MaxOperand: 15,
		},
	}
}

// settingsFile is the YAML shape of a game settings override. Absent
// fields keep their defaults.
type settingsFile struct {
	TotalRounds  *int                `yaml:"total_rounds"`
	RoundSeconds *int                `yaml:"round_seconds"`
	EasyBand     *int                `yaml:"easy_band"`
	MediumBand   *int                `yaml:"medium_band"`
	Tiers        map[string]tierFile `yaml:"tiers"`
}

type tierFile struct {
	Operators []string `yaml:"operators"`
	Min       *int     `yaml:"min"`
	Max       *int     `yaml:"max"`
	AllowZero *bool    `yaml:"allow_zero"`
}

// LoadSettings returns the game settings, overlaying the YAML file at
// path (when non-empty) on the defaults.
func LoadSettings(path string) (models.GameSettings, error) {
	settings := DefaultSettings()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.GameSettings{}, fmt.Errorf("read settings file: %w", err)
	}

	var file settingsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return models.GameSettings{}, fmt.Errorf("parse settings file: %w", err)
	}

	if file.TotalRounds != nil {
		settings.TotalRounds = *file.TotalRounds
	}
	if file.RoundSeconds != nil {
		settings.RoundSeconds = *file.RoundSeconds
	}
	if file.EasyBand != nil {
		settings.EasyBand = *file.EasyBand
	}
	if file.MediumBand != nil {
		settings.MediumBand = *file.MediumBand
	}

	for name, tf := range file.Tiers {
		var target *models.DifficultyTier
		switch models.TierName(name) {
		case models.TierEasy:
			target = &settings.Easy
		case models.TierMedium:
			target = &settings.Medium
		case models.TierHard:
			target = &settings.Hard
		default:
			return models.GameSettings{}, fmt.Errorf("unknown tier %q in settings file", name)
		}
		if err := applyTier(target, tf); err != nil {
			return models.GameSettings{}, fmt.Errorf("tier %q: %w", name, err)
		}
	}

	if err := validate(settings); err != nil {
		return models.GameSettings{}, fmt.Errorf("settings file %s: %w", path, err)
	}
	return settings, nil
}

func applyTier(tier *models.DifficultyTier, file tierFile) error {
	if len(file.Operators) > 0 {
		ops := make([]models.Operator, 0, len(file.Operators))
		for _, symbol := range file.Operators {
			op, err := parseOperator(symbol)
			if err != nil {
				return err
			}
			ops = append(ops, op)
		}
		tier.Operators = ops
	}
	if file.Min != nil {
		tier.MinOperand = *file.Min
	}
	if file.Max != nil {
		tier.MaxOperand = *file.Max
	}
	if file.AllowZero != nil {
		tier.AllowZero = *file.AllowZero
	}
	return nil
}

func parseOperator(symbol string) (models.Operator, error) {
	switch symbol {
	case "+":
		return models.OperatorAdd, nil
	case "-":
		return models.OperatorSubtract, nil
	case "×", "*", "x":
		return models.OperatorMultiply, nil
	case "÷", "/":
		return models.OperatorDivide, nil
	default:
		return "", fmt.Errorf("unknown operator %q", symbol)
	}
}

func validate(s models.GameSettings) error {
	if s.TotalRounds <= 0 {
		return fmt.Errorf("total_rounds must be positive, got %d", s.TotalRounds)
	}
	if s.RoundSeconds <= 0 {
		return fmt.Errorf("round_seconds must be positive, got %d", s.RoundSeconds)
	}
	if s.EasyBand < 0 || s.MediumBand < 0 {
		return fmt.Errorf("band widths must be non-negative")
	}
	if s.EasyBand+s.MediumBand > s.TotalRounds {
		return fmt.Errorf("bands (%d + %d) exceed total rounds %d", s.EasyBand, s.MediumBand, s.TotalRounds)
	}
	for _, tier := range []models.DifficultyTier{s.Easy, s.Medium, s.Hard} {
		if len(tier.Operators) == 0 {
			return fmt.Errorf("tier %s has no operators", tier.Name)
		}
		if tier.MinOperand < 1 || tier.MaxOperand < tier.MinOperand {
			return fmt.Errorf("tier %s has invalid operand range [%d, %d]", tier.Name, tier.MinOperand, tier.MaxOperand)
		}
		if tier.AllowZero && tier.Name != models.TierEasy {
			return fmt.Errorf("zero operands are only allowed on the easy tier")
		}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
