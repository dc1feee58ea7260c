package ascii

import (
	"errors"
	"fmt"
	"math"

	"github.com/koki-develop/imgascii/internal/resize"
)

const (
	DefaultWidth       = 100
	DefaultAspectRatio = 0.5
	DefaultContrast    = 1.0

	// MaxWidth and MaxHeight bound the character grid.
	MaxWidth  = 1 << 16
	MaxHeight = 1 << 16
)

var ErrInvalidConfig = errors.New("invalid render config")

// Config holds the rendering parameters. It is built once and not mutated.
type Config struct {
	// Width is the number of characters per output row.
	Width int
	// AspectRatio scales the output height to compensate for glyph cells
	// being taller than wide.
	AspectRatio float64
	// Contrast is a linear stretch around mid-gray. Nominally 0.5 to 2.0.
	Contrast float64
	Invert   bool
	Dense    bool

	Filter resize.Filter
	// Workers bounds the number of rows rendered concurrently. Zero means
	// GOMAXPROCS.
	Workers int
}

func DefaultConfig() Config {
	return Config{
		Width:       DefaultWidth,
		AspectRatio: DefaultAspectRatio,
		Contrast:    DefaultContrast,
		Filter:      resize.CatmullRom,
	}
}

func (c Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidConfig, c.Width)
	}
	if c.Width > MaxWidth {
		return fmt.Errorf("%w: width must be at most %d, got %d", ErrInvalidConfig, MaxWidth, c.Width)
	}
	if math.IsNaN(c.AspectRatio) || math.IsInf(c.AspectRatio, 0) || c.AspectRatio <= 0 {
		return fmt.Errorf("%w: aspect ratio must be positive, got %v", ErrInvalidConfig, c.AspectRatio)
	}
	if math.IsNaN(c.Contrast) {
		return fmt.Errorf("%w: contrast is not a number", ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.Filter != "" {
		if _, err := resize.ParseFilter(string(c.Filter)); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}
