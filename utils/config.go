package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the game
type Config struct {
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	Generations int           `json:"generations"`
	FrameRate   time.Duration `json:"frame_rate"`
}

// DefaultConfig mirrors the reference run: a 10x10 grid advanced 100
// generations at 50ms per frame
func DefaultConfig() Config {
	return Config{
		Width:       10,
		Height:      10,
		Generations: 100,
		FrameRate:   50 * time.Millisecond,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks that the configuration describes a runnable game
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("[Validate] grid dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Generations < 0 {
		return errors.Errorf("[Validate] generations must be non-negative, got %d", c.Generations)
	}
	return nil
}
