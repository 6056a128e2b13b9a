package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		neighbors int
		alive     bool
		want      bool
	}{
		{"live cell starves with 0", 0, true, false},
		{"live cell starves with 1", 1, true, false},
		{"live cell survives with 2", 2, true, true},
		{"live cell survives with 3", 3, true, true},
		{"live cell overcrowds with 4", 4, true, false},
		{"live cell overcrowds with 8", 8, true, false},
		{"dead cell stays dead with 2", 2, false, false},
		{"dead cell births with 3", 3, false, true},
		{"dead cell stays dead with 4", 4, false, false},
		{"dead cell stays dead with 0", 0, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Alive(tt.neighbors, tt.alive))
		})
	}
}

func TestPatternShapes(t *testing.T) {
	t.Parallel()

	glider := Glider()
	assert.Len(t, glider, 4)
	for _, row := range glider {
		assert.Len(t, row, 3)
	}

	assert.Len(t, Blinker(), 1)
	assert.Len(t, Blinker()[0], 3)

	block := Block()
	assert.Len(t, block, 2)
	assert.Len(t, block[0], 2)
}
