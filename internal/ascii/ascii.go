package ascii

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"
	"runtime"
	"strings"
	"time"

	"github.com/koki-develop/imgascii/internal/resize"
	"golang.org/x/sync/errgroup"
)

// Art is a rendered image, one string per text row, top to bottom.
type Art []string

func (a Art) String() string {
	b := new(strings.Builder)
	for _, line := range a {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// WriteTo writes every row followed by a newline.
func (a Art) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, line := range a {
		n, err := io.WriteString(w, line+"\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

type Converter struct {
	cfg     Config
	ramp    Ramp
	resizer *resize.Resizer
}

func NewConverter(cfg Config) (*Converter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Converter{
		cfg:     cfg,
		ramp:    RampFor(cfg.Dense),
		resizer: resize.NewResizer(cfg.Filter),
	}, nil
}

// Render is shorthand for NewConverter followed by ImageToASCII.
func Render(ctx context.Context, img image.Image, cfg Config) (Art, error) {
	c, err := NewConverter(cfg)
	if err != nil {
		return nil, err
	}
	return c.ImageToASCII(ctx, img)
}

// ImageToASCII resizes img to the configured grid and maps every cell to a
// glyph. The result depends only on img and the config.
func (c *Converter) ImageToASCII(ctx context.Context, img image.Image) (Art, error) {
	start := time.Now()
	sz := img.Bounds()
	w, h := resize.TargetSize(sz.Dx(), sz.Dy(), c.cfg.Width, c.cfg.AspectRatio)
	if h > MaxHeight {
		return nil, fmt.Errorf("%w: output height %d exceeds %d", ErrInvalidConfig, h, MaxHeight)
	}

	resized, err := c.resizer.Resize(img, w, h)
	if err != nil {
		return nil, err
	}

	workers := c.cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	rows := make(Art, h)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for y := 0; y < h; y++ {
		y := y
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows[y] = c.row(resized, y, w)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	slog.Debug("rendered ascii art",
		"width", w,
		"height", h,
		"dense", c.cfg.Dense,
		"workers", workers,
		"elapsed", time.Since(start))

	return rows, nil
}

func (c *Converter) row(img image.Image, y, w int) string {
	origin := img.Bounds().Min
	b := new(strings.Builder)
	b.Grow(w)
	for x := 0; x < w; x++ {
		pixel := color.NRGBAModel.Convert(img.At(origin.X+x, origin.Y+y)).(color.NRGBA)
		lum := AdjustContrast(Grayscale(pixel), c.cfg.Contrast)
		b.WriteByte(c.ramp.Glyph(lum, c.cfg.Invert))
	}
	return b.String()
}
