package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	config := DefaultConfig()
	assert.Equal(t, 10, config.Width)
	assert.Equal(t, 10, config.Height)
	assert.Equal(t, 100, config.Generations)
	assert.Equal(t, 50*time.Millisecond, config.FrameRate)
	assert.NoError(t, config.Validate())
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("missing file falls back to defaults", func(t *testing.T) {
		t.Parallel()
		config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
		assert.Equal(t, DefaultConfig(), config)
	})

	t.Run("overrides applied", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path,
			[]byte(`{"width": 20, "height": 15, "generations": 5, "frame_rate": 100000000}`), 0o644))

		config, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 20, config.Width)
		assert.Equal(t, 15, config.Height)
		assert.Equal(t, 5, config.Generations)
		assert.Equal(t, 100*time.Millisecond, config.FrameRate)
	})

	t.Run("invalid JSON rejected", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte("{nope"), 0o644))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"valid", Config{Width: 5, Height: 5, Generations: 10}, false},
		{"zero generations", Config{Width: 5, Height: 5}, false},
		{"zero width", Config{Height: 5}, true},
		{"negative height", Config{Width: 5, Height: -1}, true},
		{"negative generations", Config{Width: 5, Height: 5, Generations: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
