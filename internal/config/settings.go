// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSettings is wrapped by every validation failure of Settings.
var ErrInvalidSettings = errors.New("invalid settings")

// PausePolicy decides what happens to scheduled spawns while the game is paused.
type PausePolicy string

const (
	// PauseExact freezes the spawn clock, spawns replay at their exact game time.
	PauseExact PausePolicy = "exact"
	// PauseCatchUp keeps the spawn clock running and fires overdue spawns on resume.
	PauseCatchUp PausePolicy = "catchUp"
)

// Settings holds the tunable values of a session.
type Settings struct {
	Seed             int64       `yaml:"seed"` // 0 — случайный сид
	StartingGold     int         `yaml:"startingGold"`
	BaseLives        int         `yaml:"baseLives"`
	BufferRadius     float64     `yaml:"bufferRadius"`
	PathRadius       float64     `yaml:"pathRadius"`
	PredictionTime   float64     `yaml:"predictionTime"`
	PausePolicy      PausePolicy `yaml:"pausePolicy"`
	SlowFactor       float64     `yaml:"slowFactor"`
	SpawnJitterSteps int         `yaml:"spawnJitterSteps"`
	SpawnJitterStep  float64     `yaml:"spawnJitterStep"`
}

// DefaultSettings returns the settings used when no file is given.
func DefaultSettings() Settings {
	var s Settings
	s.applyDefaults()
	return s
}

// LoadSettings reads settings from a YAML file. Missing fields get defaults.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings YAML from %s: %w", path, err)
	}

	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("settings %s: %w", path, err)
	}

	log.Printf("[Settings] Loaded %s (gold %d, lives %d, pause policy %s)", path, s.StartingGold, s.BaseLives, s.PausePolicy)
	return s, nil
}

func (s *Settings) applyDefaults() {
	if s.StartingGold == 0 {
		s.StartingGold = 75
	}
	if s.BaseLives == 0 {
		s.BaseLives = 5
	}
	if s.BufferRadius == 0 {
		s.BufferRadius = 32
	}
	if s.PathRadius == 0 {
		s.PathRadius = 32
	}
	if s.PredictionTime == 0 {
		s.PredictionTime = 0.5
	}
	if s.PausePolicy == "" {
		s.PausePolicy = PauseExact
	}
	if s.SlowFactor == 0 {
		s.SlowFactor = 0.5
	}
	if s.SpawnJitterSteps == 0 {
		s.SpawnJitterSteps = 10
	}
	if s.SpawnJitterStep == 0 {
		s.SpawnJitterStep = 10
	}
}

// Validate checks value ranges. Errors wrap ErrInvalidSettings.
func (s Settings) Validate() error {
	switch {
	case s.StartingGold < 0:
		return fmt.Errorf("%w: startingGold cannot be negative, got %d", ErrInvalidSettings, s.StartingGold)
	case s.BaseLives <= 0:
		return fmt.Errorf("%w: baseLives must be positive, got %d", ErrInvalidSettings, s.BaseLives)
	case s.BufferRadius < 0:
		return fmt.Errorf("%w: bufferRadius cannot be negative, got %f", ErrInvalidSettings, s.BufferRadius)
	case s.PathRadius <= 0:
		return fmt.Errorf("%w: pathRadius must be positive, got %f", ErrInvalidSettings, s.PathRadius)
	case s.PredictionTime <= 0:
		return fmt.Errorf("%w: predictionTime must be positive, got %f", ErrInvalidSettings, s.PredictionTime)
	case s.SlowFactor <= 0 || s.SlowFactor > 1:
		return fmt.Errorf("%w: slowFactor must be in (0, 1], got %f", ErrInvalidSettings, s.SlowFactor)
	case s.SpawnJitterSteps < 0:
		return fmt.Errorf("%w: spawnJitterSteps cannot be negative, got %d", ErrInvalidSettings, s.SpawnJitterSteps)
	}
	if s.PausePolicy != PauseExact && s.PausePolicy != PauseCatchUp {
		return fmt.Errorf("%w: unknown pausePolicy %q", ErrInvalidSettings, s.PausePolicy)
	}
	return nil
}
