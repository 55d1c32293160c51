// Package colors holds the linear RGB helpers shared by the shader and the
// encoders. Colors are vectors.Vec3 triples, unclamped until quantized.
package colors

import (
	"image/color"

	"github.com/echoflaresat/tinyray/vectors"
)

// Background is returned for rays that escape the scene or run out of depth.
var Background = vectors.Vec3{0.2, 0.7, 0.8}

func White() vectors.Vec3 {
	return vectors.Vec3{1, 1, 1}
}

// Compress scales c down uniformly when its brightest channel exceeds 1,
// keeping the hue instead of clipping channels independently.
func Compress(c vectors.Vec3) vectors.Vec3 {
	if m := vectors.MaxComponent(c); m > 1 {
		return vectors.Vec3{c[0] / m, c[1] / m, c[2] / m}
	}
	return c
}

// ToNRGBA returns an opaque 8-bit color, clamping each channel to [0,1].
func ToNRGBA(c vectors.Vec3) color.NRGBA {
	return color.NRGBA{
		R: to8bit(c[0]),
		G: to8bit(c[1]),
		B: to8bit(c[2]),
		A: 255,
	}
}

// FromStandardColor converts any color.Color to linear floats in [0,1],
// dropping alpha.
func FromStandardColor(c color.Color) vectors.Vec3 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return vectors.Vec3{
		float32(n.R) / 255,
		float32(n.G) / 255,
		float32(n.B) / 255,
	}
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// to8bit truncates 255*clamp01(x) toward zero.
func to8bit(x float32) uint8 {
	return uint8(255 * clamp01(x))
}
