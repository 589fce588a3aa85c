package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"automapper/primitive"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultMaxDepth, cfg.MaxDepth)
	assert.Equal(t, 1, cfg.Concurrency)
	assert.False(t, cfg.Strict)
	assert.Equal(t, GapAll, cfg.Gaps)
	assert.Equal(t, primitive.CategorySafeNumber, cfg.Conversions)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero depth", func(c *Config) { c.MaxDepth = 0 }},
		{"negative depth", func(c *Config) { c.MaxDepth = -1 }},
		{"zero concurrency", func(c *Config) { c.Concurrency = 0 }},
		{"unknown gap bits", func(c *Config) { c.Gaps = GapAll + 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestGapCategory(t *testing.T) {
	assert.True(t, GapAll.Has(GapMissingSource))
	assert.True(t, GapAll.Has(GapMissingSource|GapTypeMismatch))
	assert.False(t, GapNone.Has(GapMissingSource))
	assert.False(t, GapMissingSource.Has(GapMissingSource|GapTypeMismatch))

	assert.Equal(t, "missing_source", GapMissingSource.Code())
	assert.Equal(t, "non_object_source", GapNonObjectSource.Code())
	assert.Equal(t, "unknown", GapAll.Code())
}
