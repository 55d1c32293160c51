package framebuffer

import (
	"errors"
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned by Save for unknown file extensions.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// EncodeError wraps a failure of the underlying image encoder.
type EncodeError struct {
	Format string
	Err    error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s: %v", e.Format, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

func (f *Framebuffer) WritePNG(w io.Writer) error {
	if err := (&png.Encoder{CompressionLevel: png.BestSpeed}).Encode(w, f.Image()); err != nil {
		return &EncodeError{Format: "png", Err: err}
	}
	return nil
}

func (f *Framebuffer) WriteJPEG(w io.Writer, quality int) error {
	if err := jpeg.Encode(w, f.Image(), &jpeg.Options{Quality: quality}); err != nil {
		return &EncodeError{Format: "jpeg", Err: err}
	}
	return nil
}

func (f *Framebuffer) WriteTIFF(w io.Writer) error {
	if err := tiff.Encode(w, f.Image(), &tiff.Options{Compression: tiff.Deflate}); err != nil {
		return &EncodeError{Format: "tiff", Err: err}
	}
	return nil
}

// Save writes the buffer to path, picking the encoder from the extension.
func (f *Framebuffer) Save(path string) (err error) {
	var write func(io.Writer) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		write = f.WritePNG
	case ".jpg", ".jpeg":
		write = func(w io.Writer) error { return f.WriteJPEG(w, 95) }
	case ".tif", ".tiff":
		write = f.WriteTIFF
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	return write(out)
}
