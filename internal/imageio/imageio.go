package imageio

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

var ErrDecode = errors.New("failed to decode image")

// Load decodes the image at path, or from os.Stdin when path is "-".
func Load(path string) (image.Image, error) {
	if path == Stdin {
		return Decode(os.Stdin, "<stdin>")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrDecode, path, err)
	}
	defer f.Close()

	return Decode(f, path)
}

// Decode reads a PNG, JPEG, GIF, BMP, TIFF or WebP image from r. name is
// used in error messages only.
func Decode(r io.Reader, name string) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrDecode, name, err)
	}
	sz := img.Bounds()
	if sz.Empty() {
		return nil, fmt.Errorf("%w %q: image is empty", ErrDecode, name)
	}

	slog.Debug("decoded image", "path", name, "format", format, "width", sz.Dx(), "height", sz.Dy())
	return img, nil
}
