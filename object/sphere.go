package object

import (
	"math"

	"github.com/echoflaresat/tinyray/material"
	"github.com/echoflaresat/tinyray/vectors"
)

type Sphere struct {
	Center   vectors.Vec3
	Radius   float32
	Material material.Material
}

func NewSphere(center vectors.Vec3, radius float32, m material.Material) Sphere {
	return Sphere{
		Center:   center,
		Radius:   radius,
		Material: m,
	}
}

// RayIntersect projects the center onto the ray and solves for the chord.
// A ray starting inside the sphere reports the far intersection. The normal
// always points away from the center, even for such rays.
func (s Sphere) RayIntersect(orig, dir vectors.Vec3) (IntersectionInfo, bool) {
	dir = dir.Normalize()
	radiusSq := s.Radius * s.Radius

	toCenter := s.Center.Sub(orig)
	dirLen := toCenter.Dot(dir)
	distToLineSq := toCenter.Dot(toCenter) - dirLen*dirLen
	if distToLineSq > radiusSq {
		return IntersectionInfo{}, false
	}

	segment := float32(math.Sqrt(float64(radiusSq - distToLineSq)))
	near := dirLen - segment
	far := dirLen + segment

	selected := near
	if near < 0 {
		selected = far
	}
	if selected < 0 {
		return IntersectionInfo{}, false
	}

	hit := orig.Add(dir.Mul(selected))
	return IntersectionInfo{
		Dist:     selected,
		Hit:      hit,
		Normal:   hit.Sub(s.Center).Normalize(),
		Material: s.Material,
	}, true
}
