package framebuffer

import (
	"image"
	_ "image/jpeg" // register JPEG format with image.Decode
	_ "image/png"  // register PNG format with image.Decode
	"io"
	"log/slog"

	"github.com/echoflaresat/tiff"
	"golang.org/x/exp/mmap"
	"golang.org/x/image/draw"

	"github.com/echoflaresat/tinyray/colors"
)

// LoadImage decodes an image file, trying TIFF first and falling back to the
// registered image codecs.
//
// The TIFF decoder may read pixels lazily through the mapped file, so the
// result is copied into memory the caller owns before the mapping is closed.
func LoadImage(path string) (image.Image, error) {
	reader, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	size := int64(reader.Len())
	img, err := tiff.Decode(io.NewSectionReader(reader, 0, size))
	if err == nil {
		return detach(img), nil
	}
	slog.Warn("not a TIFF, falling back to image codecs", "path", path, "error", err)

	img, _, err = image.Decode(io.NewSectionReader(reader, 0, size))
	if err != nil {
		slog.Warn("failed to decode image", "path", path, "error", err)
		return nil, err
	}
	return detach(img), nil
}

// detach copies img into a freshly allocated 16-bit image.
func detach(img image.Image) *image.NRGBA64 {
	b := img.Bounds()
	owned := image.NewNRGBA64(b)
	draw.Draw(owned, b, img, b.Min, draw.Src)
	return owned
}

// FromImage converts a decoded image back into a framebuffer.
func FromImage(img image.Image) *Framebuffer {
	b := img.Bounds()
	f := New(b.Dx(), b.Dy())
	for row := 0; row < f.height; row++ {
		for col := 0; col < f.width; col++ {
			f.Set(row, col, colors.FromStandardColor(img.At(b.Min.X+col, b.Min.Y+row)))
		}
	}
	return f
}

// Load reads an image file into a framebuffer.
func Load(path string) (*Framebuffer, error) {
	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}
