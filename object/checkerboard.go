package object

import (
	"github.com/echoflaresat/tinyray/material"
	"github.com/echoflaresat/tinyray/vectors"
)

// Checkerboard is a finite planar grid of alternating materials.
//
// The board starts at Origin and is tiled by the cell vectors A and B, which
// must not be parallel. It spans Width cells along A and Height cells along
// B. The surface normal is A×B, so the order of A and B picks the lit side.
type Checkerboard struct {
	Origin    vectors.Vec3
	A, B      vectors.Vec3
	Width     int
	Height    int
	Materials [2]material.Material
}

func NewCheckerboard(origin, a, b vectors.Vec3, width, height int, even, odd material.Material) Checkerboard {
	return Checkerboard{
		Origin:    origin,
		A:         a,
		B:         b,
		Width:     width,
		Height:    height,
		Materials: [2]material.Material{even, odd},
	}
}

func (c Checkerboard) Normal() vectors.Vec3 {
	return c.A.Cross(c.B).Normalize()
}

func (c Checkerboard) RayIntersect(orig, dir vectors.Vec3) (IntersectionInfo, bool) {
	dir = dir.Normalize()
	normal := c.Normal()

	facing := normal.Dot(dir)
	if facing == 0 {
		return IntersectionInfo{}, false
	}

	// Distance measured from the board's side of the plane. A non-negative
	// value means the board is not ahead of the ray.
	local := normal.Dot(orig.Sub(c.Origin)) / facing
	if !(local < 0) {
		return IntersectionInfo{}, false
	}
	dist := -local

	hit := orig.Add(dir.Mul(dist))
	u, v := c.cellCoords(hit)
	if !(u >= 0 && v >= 0 && u <= float32(c.Width) && v <= float32(c.Height)) {
		return IntersectionInfo{}, false
	}

	return IntersectionInfo{
		Dist:     dist,
		Hit:      hit,
		Normal:   normal,
		Material: c.Materials[(int(u)+int(v))&1],
	}, true
}

// cellCoords projects p onto A and B, in units of cell length.
func (c Checkerboard) cellCoords(p vectors.Vec3) (u, v float32) {
	rel := p.Sub(c.Origin)
	u = rel.Dot(c.A) / c.A.Dot(c.A)
	v = rel.Dot(c.B) / c.B.Dot(c.B)
	return u, v
}
