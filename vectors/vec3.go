package vectors

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vec3 is a 3D vector with float32 components.
//
// It is an alias of mgl32.Vec3, so Add, Sub, Mul, Dot, Cross, Len and
// Normalize come from mathgl. Normalizing a zero-length vector yields NaN
// components; callers must not pass degenerate geometry.
type Vec3 = mgl32.Vec3

func Zero() Vec3 {
	return Vec3{}
}

// Max returns the component-wise maximum of a and b.
func Max(a, b Vec3) Vec3 {
	return Vec3{max(a[0], b[0]), max(a[1], b[1]), max(a[2], b[2])}
}

// MaxComponent returns the largest of the three components.
func MaxComponent(v Vec3) float32 {
	return max(v[0], v[1], v[2])
}

// Reflect mirrors a about the normal n.
func Reflect(a, n Vec3) Vec3 {
	return a.Sub(n.Mul(2 * a.Dot(n)))
}

// Refract bends the incident direction i through a surface with normal n,
// going from a medium with index ni into one with index nr (Snell's law).
//
// When i leaves the surface (i·n > 0) the normal is flipped and the indices
// swapped, so one call handles both entering and exiting a volume. On total
// internal reflection the negated mirror direction is returned.
func Refract(i, n Vec3, ni, nr float32) Vec3 {
	cosI := -i.Dot(n)
	if cosI < 0 {
		return Refract(i, n.Mul(-1), nr, ni)
	}
	eta := ni / nr
	cosRSq := 1 - eta*eta*(1-cosI*cosI)
	if cosRSq < 0 {
		// total reflection
		return Reflect(i, n).Mul(-1)
	}
	return i.Mul(eta).Add(n.Mul(eta*cosI - float32(math.Sqrt(float64(cosRSq)))))
}

// Distance returns ||v1 - v2||.
func Distance(v1, v2 Vec3) float32 {
	return v1.Sub(v2).Len()
}
