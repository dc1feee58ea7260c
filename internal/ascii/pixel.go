package ascii

import "image/color"

// Grayscale composites c over opaque white and returns its Rec. 709
// luminance. Each step truncates to 8 bits; no gamma correction is applied.
func Grayscale(c color.NRGBA) uint8 {
	alpha := float32(c.A) / 255
	r := composite(c.R, alpha)
	g := composite(c.G, alpha)
	b := composite(c.B, alpha)

	lum := float32(0.2126*float32(r)) + float32(0.7152*float32(g))
	lum = lum + float32(0.0722*float32(b))
	return toByte(lum)
}

// AdjustContrast stretches l around mid-gray by factor. Factors below 1
// flatten toward gray, above 1 push toward the extremes and clip.
func AdjustContrast(l uint8, factor float64) uint8 {
	n := float32(l) / 255
	adjusted := float32((n-0.5)*float32(factor)) + 0.5
	adjusted = min(max(adjusted, 0), 1)
	return toByte(float32(adjusted * 255))
}

func composite(v uint8, alpha float32) uint8 {
	return toByte(float32(float32(v)*alpha) + float32(255*(1-alpha)))
}

// toByte truncates f toward zero, saturating at the 8-bit bounds. NaN
// maps to zero.
func toByte(f float32) uint8 {
	switch {
	case !(f > 0):
		return 0
	case f >= 255:
		return 255
	}
	return uint8(f)
}
