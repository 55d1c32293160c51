// Package framebuffer stores rendered pixels and converts them to images.
package framebuffer

import (
	"image"

	"github.com/echoflaresat/tinyray/colors"
	"github.com/echoflaresat/tinyray/vectors"
)

// Framebuffer is a width x height grid of linear RGB pixels in row-major
// order. Values are stored unclamped.
type Framebuffer struct {
	width  int
	height int
	buf    []vectors.Vec3
}

func New(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		buf:    make([]vectors.Vec3, width*height),
	}
}

func (f *Framebuffer) Width() int  { return f.width }
func (f *Framebuffer) Height() int { return f.height }

// Pixels exposes the backing slice; pixel (row, col) is at col + row*width.
func (f *Framebuffer) Pixels() []vectors.Vec3 {
	return f.buf
}

func (f *Framebuffer) Index(row, col int) int {
	return col + row*f.width
}

func (f *Framebuffer) At(row, col int) vectors.Vec3 {
	return f.buf[f.Index(row, col)]
}

func (f *Framebuffer) Set(row, col int, c vectors.Vec3) {
	f.buf[f.Index(row, col)] = c
}

// Image quantizes the buffer to an opaque 8-bit image. Channels are clamped
// to [0,1] and truncated.
func (f *Framebuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.width, f.height))
	for row := 0; row < f.height; row++ {
		for col := 0; col < f.width; col++ {
			img.SetNRGBA(col, row, colors.ToNRGBA(f.At(row, col)))
		}
	}
	return img
}
