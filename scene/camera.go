package scene

import (
	"math"

	"github.com/echoflaresat/tinyray/vectors"
)

// Camera is a pinhole camera at the world origin looking down -Z with +Y up.
type Camera struct {
	Width  int
	Height int

	focal float32
}

// NewCamera places the image plane so that height pixels span the vertical
// field of view fov, in radians.
func NewCamera(width, height int, fov float32) Camera {
	return Camera{
		Width:  width,
		Height: height,
		focal:  float32(height) / (2 * float32(math.Tan(float64(fov)/2))),
	}
}

// Origin is where every primary ray starts.
func (c Camera) Origin() vectors.Vec3 {
	return vectors.Zero()
}

// ComputeRay returns the unnormalized direction through the center of pixel
// (row, col). It depends only on its arguments, so pixels can be evaluated
// in any order.
func (c Camera) ComputeRay(row, col int) vectors.Vec3 {
	w := float32(c.Width)
	h := float32(c.Height)
	return vectors.Vec3{
		(float32(col) + 0.5) - w/2,
		-(float32(row) + 0.5) + h/2,
		-c.focal,
	}
}
