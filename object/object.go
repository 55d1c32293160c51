// Package object holds the primitives a scene is built from and their
// closed-form ray intersection tests.
package object

import (
	"github.com/echoflaresat/tinyray/material"
	"github.com/echoflaresat/tinyray/vectors"
)

// IntersectionInfo describes where a ray met an object.
type IntersectionInfo struct {
	Dist     float32 // distance along the normalized ray, >= 0
	Hit      vectors.Vec3
	Normal   vectors.Vec3 // unit length, outward
	Material material.Material
}

// Object is anything a ray can hit.
//
// RayIntersect reports the nearest intersection in front of orig along dir.
// dir does not need to be normalized. Implementations must be safe for
// concurrent use; objects are never modified once a render starts.
type Object interface {
	RayIntersect(orig, dir vectors.Vec3) (IntersectionInfo, bool)
}
