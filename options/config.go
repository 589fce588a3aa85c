package options

import (
	"errors"
	"fmt"

	"automapper/primitive"
)

// DefaultMaxDepth bounds recursion through nested objects and arrays.
const DefaultMaxDepth = 64

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid mapper config")

// Config tunes a Mapper. The zero value is not usable; start from Default.
type Config struct {
	// MaxDepth is the deepest nesting level the engine descends to.
	MaxDepth int
	// Concurrency > 1 maps object array elements in parallel.
	Concurrency int
	// Strict makes Map report resolution gaps as an error.
	Strict bool
	// Gaps selects which gap categories are recorded.
	Gaps GapCategory
	// Conversions selects which scalar conversions assignment may perform.
	Conversions primitive.CategoryEnum
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		MaxDepth:    DefaultMaxDepth,
		Concurrency: 1,
		Gaps:        GapAll,
		Conversions: primitive.CategorySafeNumber,
	}
}

// Validate checks the configuration for impossible values.
func (c Config) Validate() error {
	if c.MaxDepth <= 0 {
		return fmt.Errorf("%w: max depth must be positive, got %d", ErrInvalidConfig, c.MaxDepth)
	}

	if c.Concurrency < 1 {
		return fmt.Errorf("%w: concurrency must be at least 1, got %d", ErrInvalidConfig, c.Concurrency)
	}

	if c.Gaps&^GapAll != 0 {
		return fmt.Errorf("%w: unknown gap categories %b", ErrInvalidConfig, c.Gaps&^GapAll)
	}

	return nil
}
