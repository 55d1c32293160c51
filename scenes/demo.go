// Package scenes builds ready-made scenes for the command line tools.
package scenes

import (
	"github.com/echoflaresat/tinyray/material"
	"github.com/echoflaresat/tinyray/object"
	"github.com/echoflaresat/tinyray/scene"
	"github.com/echoflaresat/tinyray/vectors"
)

var (
	Ivory = material.Color(vectors.Vec3{0.4, 0.4, 0.3}, 0.6).
		WithSpecular(50, 0.3).
		WithReflect(0.1)
	Glass = material.Color(vectors.Vec3{0.6, 0.7, 0.8}, 0).
		WithSpecular(125, 0.5).
		WithReflect(0.1).
		WithRefract(1.5, 0.8)
	RedRubber = material.Color(vectors.Vec3{0.3, 0.1, 0.1}, 0.9).
			WithSpecular(10, 0.1)
	Mirror = material.Color(vectors.Vec3{1, 1, 1}, 0).
		WithSpecular(1425, 10).
		WithReflect(0.8)

	BoardLight = material.Color(vectors.Vec3{0.3, 0.3, 0.3}, 1)
	BoardDark  = material.Color(vectors.Vec3{0.3, 0.2, 0.1}, 1)
)

// Demo returns four spheres over a 20x20 checkerboard floor lit by three
// point lights, framed for a camera at the origin looking down -Z.
func Demo() *scene.Scene {
	s := scene.New()

	s.PushObject(object.NewSphere(vectors.Vec3{-3, 0, -16}, 2, Ivory))
	s.PushObject(object.NewSphere(vectors.Vec3{-1, -1.5, -12}, 2, Glass))
	s.PushObject(object.NewSphere(vectors.Vec3{1.5, -0.5, -18}, 3, RedRubber))
	s.PushObject(object.NewSphere(vectors.Vec3{7, 5, -18}, 4, Mirror))

	// 2x2 cells from x=-10..10 and z=-30..-10 at y=-4; A×B points up
	s.PushObject(object.NewCheckerboard(
		vectors.Vec3{-10, -4, -30},
		vectors.Vec3{0, 0, 2},
		vectors.Vec3{2, 0, 0},
		10, 10,
		BoardLight, BoardDark,
	))

	s.PushLight(scene.NewLight(vectors.Vec3{-20, 20, 20}, 1.5))
	s.PushLight(scene.NewLight(vectors.Vec3{30, 50, -25}, 1.8))
	s.PushLight(scene.NewLight(vectors.Vec3{30, 20, 30}, 1.7))

	return s
}
