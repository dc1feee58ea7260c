package resize

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math"
	"sort"

	"github.com/nfnt/resize"
	"github.com/qeesung/image2ascii/convert"
	xdraw "golang.org/x/image/draw"
)

var (
	ErrEmptyImage    = errors.New("image has no pixels")
	ErrUnknownFilter = errors.New("unknown resampling filter")
)

// Filter names a resampling kernel.
type Filter string

const (
	CatmullRom Filter = "catmullrom"
	Bicubic    Filter = "bicubic"
	Mitchell   Filter = "mitchell"
	Lanczos2   Filter = "lanczos2"
	Lanczos3   Filter = "lanczos3"
	Bilinear   Filter = "bilinear"
	Nearest    Filter = "nearest"
)

var nfntFilters = map[Filter]resize.InterpolationFunction{
	Bicubic:  resize.Bicubic,
	Mitchell: resize.MitchellNetravali,
	Lanczos2: resize.Lanczos2,
	Lanczos3: resize.Lanczos3,
	Bilinear: resize.Bilinear,
	Nearest:  resize.NearestNeighbor,
}

// Filters returns every accepted filter name, sorted.
func Filters() []string {
	names := []string{string(CatmullRom)}
	for f := range nfntFilters {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

func ParseFilter(s string) (Filter, error) {
	f := Filter(s)
	if f == CatmullRom {
		return f, nil
	}
	if _, ok := nfntFilters[f]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q (want one of %v)", ErrUnknownFilter, s, Filters())
}

// TargetSize returns the character grid for a srcW x srcH image rendered
// width characters wide. The height is scaled by aspect to compensate for
// glyph cells being taller than they are wide, and truncated toward zero.
// Heights that do not fit an int32 saturate at math.MaxInt32; NaN and
// negative heights become zero.
func TargetSize(srcW, srcH, width int, aspect float64) (int, int) {
	if srcW <= 0 {
		return width, 0
	}
	h := float32(float32(width)*float32(aspect)) * (float32(srcH) / float32(srcW))
	switch {
	case !(h > 0):
		return width, 0
	case h >= math.MaxInt32:
		return width, math.MaxInt32
	}
	return width, int(h)
}

type Resizer struct {
	filter        Filter
	resizeHandler *convert.ImageResizeHandler
}

func NewResizer(filter Filter) *Resizer {
	if filter == "" {
		filter = CatmullRom
	}
	return &Resizer{
		filter:        filter,
		resizeHandler: convert.NewResizeHandler().(*convert.ImageResizeHandler),
	}
}

func (r *Resizer) Filter() Filter {
	return r.filter
}

// Resize resamples img to exactly w x h. A zero height yields an empty
// w x 0 image; requesting the source dimensions returns img as is.
func (r *Resizer) Resize(img image.Image, w, h int) (image.Image, error) {
	sz := img.Bounds()
	if sz.Dx() <= 0 || sz.Dy() <= 0 {
		return nil, ErrEmptyImage
	}
	if w <= 0 || h <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, max(w, 0), 0)), nil
	}
	if sz.Dx() == w && sz.Dy() == h {
		return img, nil
	}

	slog.Debug("resizing image", "from", sz.Size(), "to", image.Pt(w, h), "filter", r.filter)

	if interp, ok := nfntFilters[r.filter]; ok {
		return resize.Resize(uint(w), uint(h), img, interp), nil
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, sz, xdraw.Src, nil)
	return dst, nil
}

// FitWidth returns the widest grid that keeps img, rendered with the given
// aspect correction, inside a cols x rows terminal. If even a single
// column is too tall, it returns 1.
func (r *Resizer) FitWidth(img image.Image, cols, rows int, aspect float64) int {
	sz := img.Bounds()
	if cols <= 0 {
		return 1
	}
	if rows <= 0 || aspect <= 0 || sz.Dx() <= 0 || sz.Dy() <= 0 {
		return cols
	}

	fits := func(w int) bool {
		_, h := TargetSize(sz.Dx(), sz.Dy(), w, aspect)
		return h <= rows
	}

	// The handler corrects for its own glyph cell ratio, so its estimate
	// is only a starting point for the exact search against TargetSize.
	neww, _ := r.resizeHandler.CalcFitSize(float64(cols), float64(rows), float64(sz.Dx()), float64(sz.Dy()))
	w := min(max(int(neww), 1), cols)
	for w > 1 && !fits(w) {
		w--
	}
	for w < cols && fits(w+1) {
		w++
	}
	return w
}
