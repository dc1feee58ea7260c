package ascii

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrayscale(t *testing.T) {
	tests := []struct {
		name  string
		pixel color.NRGBA
		want  uint8
	}{
		{name: "opaque black", pixel: color.NRGBA{0, 0, 0, 255}, want: 0},
		{name: "opaque white", pixel: color.NRGBA{255, 255, 255, 255}, want: 255},
		{name: "opaque red", pixel: color.NRGBA{255, 0, 0, 255}, want: 54},
		{name: "opaque green", pixel: color.NRGBA{0, 255, 0, 255}, want: 182},
		{name: "opaque blue", pixel: color.NRGBA{0, 0, 255, 255}, want: 18},
		{name: "transparent black", pixel: color.NRGBA{0, 0, 0, 0}, want: 255},
		{name: "transparent color", pixel: color.NRGBA{12, 200, 77, 0}, want: 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Grayscale(tt.pixel))
		})
	}
}

func TestGrayscaleTransparentIgnoresColor(t *testing.T) {
	for v := 0; v < 256; v += 15 {
		c := color.NRGBA{uint8(v), uint8(255 - v), uint8(v / 2), 0}
		assert.Equal(t, uint8(255), Grayscale(c), "pixel %v", c)
	}
}

func TestGrayscaleAlphaBlendsTowardWhite(t *testing.T) {
	opaque := Grayscale(color.NRGBA{0, 0, 0, 255})
	half := Grayscale(color.NRGBA{0, 0, 0, 128})
	transparent := Grayscale(color.NRGBA{0, 0, 0, 0})

	assert.Less(t, opaque, half)
	assert.Less(t, half, transparent)
	assert.InDelta(t, 127, int(half), 1)
}

func TestAdjustContrast(t *testing.T) {
	tests := []struct {
		name   string
		lum    uint8
		factor float64
		want   uint8
	}{
		{name: "black unchanged", lum: 0, factor: 1, want: 0},
		{name: "white unchanged", lum: 255, factor: 1, want: 255},
		{name: "high contrast clips black", lum: 0, factor: 2, want: 0},
		{name: "high contrast clips white", lum: 255, factor: 2, want: 255},
		{name: "low contrast lifts black", lum: 0, factor: 0.5, want: 63},
		{name: "low contrast dims white", lum: 255, factor: 0.5, want: 191},
		{name: "zero factor flattens", lum: 0, factor: 0, want: 127},
		{name: "large factor saturates", lum: 200, factor: 100, want: 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AdjustContrast(tt.lum, tt.factor))
		})
	}
}

func TestAdjustContrastPivot(t *testing.T) {
	for _, factor := range []float64{0.5, 0.75, 1, 1.5, 2} {
		got := AdjustContrast(128, factor)
		assert.Contains(t, []uint8{127, 128}, got, "factor %v", factor)
	}
}

func TestAdjustContrastMonotonic(t *testing.T) {
	for _, factor := range []float64{0.5, 1, 2} {
		prev := AdjustContrast(0, factor)
		for l := 1; l < 256; l++ {
			got := AdjustContrast(uint8(l), factor)
			assert.GreaterOrEqual(t, got, prev, "factor %v lum %d", factor, l)
			prev = got
		}
	}
}
