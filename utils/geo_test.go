package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversine(t *testing.T) {
	// Downtown Vancouver to Stanley Park, roughly 2.9 km.
	d := Haversine(49.2827, -123.1207, 49.3043, -123.1443)
	assert.InDelta(t, 2.9, d, 0.3)

	// Zero distance to itself.
	assert.Equal(t, 0.0, Haversine(49.2827, -123.1207, 49.2827, -123.1207))

	// Symmetric.
	assert.InDelta(t,
		Haversine(49.28, -123.12, 48.43, -123.37),
		Haversine(48.43, -123.37, 49.28, -123.12),
		1e-9)
}

func TestClampInt(t *testing.T) {
	assert.Equal(t, 120, ClampInt(30, 120, 420))
	assert.Equal(t, 420, ClampInt(999, 120, 420))
	assert.Equal(t, 240, ClampInt(240, 120, 420))
}
