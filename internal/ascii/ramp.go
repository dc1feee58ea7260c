package ascii

import "math"

// Ramp is a character gradient ordered from the heaviest glyph to the
// lightest. Every ramp ends with a space.
type Ramp string

const (
	Dense  Ramp = "@&%QWN0gB$D8mHXKAUbGOpV4d9h6PkyqwSE2]ayjxY5Zeo[nult13If}C{iF|(7J)vTLs?z/*cr!+><;=^,':-. "
	Sparse Ramp = "@&%Q$wusv*+=^,':-. "
)

func RampFor(dense bool) Ramp {
	if dense {
		return Dense
	}
	return Sparse
}

// Index returns the ramp position for luminance l, before reversal:
// 0 for black and len-1 for white. Halves round away from zero.
func (r Ramp) Index(l uint8, invert bool) int {
	if invert {
		l = 255 - l
	}
	last := len(r) - 1
	p := float32(l) / 255
	return int(math.Round(float64(float32(p * float32(last)))))
}

// Glyph maps an adjusted luminance to its character. Bright values land
// toward the tail of the ramp, so 255 is a space and 0 the heaviest glyph.
func (r Ramp) Glyph(l uint8, invert bool) byte {
	return r[len(r)-1-r.Index(l, invert)]
}
