// Package scene owns the objects and lights of a render and evaluates rays
// against them with Whitted-style recursive shading.
package scene

import (
	"math"

	"github.com/echoflaresat/tinyray/colors"
	"github.com/echoflaresat/tinyray/material"
	"github.com/echoflaresat/tinyray/object"
	"github.com/echoflaresat/tinyray/vectors"
)

const (
	// MaxDepth is the recursion budget given to primary rays.
	MaxDepth = 4

	// AirRefractionIndex is the medium every ray starts in.
	AirRefractionIndex = 1.0

	// offset keeps secondary rays from hitting the surface they start on.
	offset = 1e-3
)

// Light is a point light.
type Light struct {
	Position  vectors.Vec3
	Intensity float32
}

func NewLight(position vectors.Vec3, intensity float32) Light {
	return Light{
		Position:  position,
		Intensity: intensity,
	}
}

// Scene is an ordered collection of objects and lights.
//
// Objects and lights are appended during setup only. Once rendering starts a
// Scene is read-only and may be shared by any number of goroutines.
type Scene struct {
	objects []object.Object
	lights  []Light
}

func New() *Scene {
	return &Scene{}
}

func (s *Scene) PushObject(o object.Object) {
	s.objects = append(s.objects, o)
}

func (s *Scene) PushLight(l Light) {
	s.lights = append(s.lights, l)
}

func (s *Scene) Objects() []object.Object {
	return s.objects
}

func (s *Scene) Lights() []Light {
	return s.lights
}

// TestIntersect returns the nearest hit over all objects. On equal distances
// the object pushed first wins.
func (s *Scene) TestIntersect(orig, dir vectors.Vec3) (object.IntersectionInfo, bool) {
	var (
		nearest object.IntersectionInfo
		found   bool
	)
	for _, o := range s.objects {
		info, ok := o.RayIntersect(orig, dir)
		if !ok {
			continue
		}
		if !found || info.Dist < nearest.Dist {
			nearest = info
			found = true
		}
	}
	return nearest, found
}

// litLight is a light that reaches the shaded point, with its unit direction.
type litLight struct {
	dir   vectors.Vec3
	light Light
}

// CastRay returns the color seen along a ray. depth is the number of
// reflection/refraction bounces still allowed; at zero the background is
// returned without testing the scene.
func (s *Scene) CastRay(orig, dir vectors.Vec3, depth int) vectors.Vec3 {
	if depth <= 0 {
		return colors.Background
	}
	info, ok := s.TestIntersect(orig, dir)
	if !ok {
		return colors.Background
	}

	dir = dir.Normalize()
	lit := s.visibleLights(info)
	m := info.Material

	color := diffuse(m, info, lit).
		Add(specular(m, info, lit, dir)).
		Add(s.reflect(m, info, dir, depth)).
		Add(s.refract(m, info, dir, depth))

	return colors.Compress(color)
}

// visibleLights casts a shadow ray toward every light and keeps the ones
// nothing blocks.
func (s *Scene) visibleLights(info object.IntersectionInfo) []litLight {
	lit := make([]litLight, 0, len(s.lights))
	for _, light := range s.lights {
		lightDir := light.Position.Sub(info.Hit).Normalize()
		lightDist := vectors.Distance(light.Position, info.Hit)

		shadowOrig := offsetOrigin(info, lightDir)
		if shadow, ok := s.TestIntersect(shadowOrig, lightDir); ok && shadow.Dist < lightDist {
			continue
		}
		lit = append(lit, litLight{dir: lightDir, light: light})
	}
	return lit
}

func diffuse(m material.Material, info object.IntersectionInfo, lit []litLight) vectors.Vec3 {
	if !m.HasDiffuse {
		return vectors.Zero()
	}
	var intensity float32
	for _, l := range lit {
		intensity += l.light.Intensity * max(0, l.dir.Dot(info.Normal))
	}
	return m.Diffuse.Color.Mul(intensity * m.Diffuse.Albedo)
}

func specular(m material.Material, info object.IntersectionInfo, lit []litLight, dir vectors.Vec3) vectors.Vec3 {
	if !m.HasSpecular {
		return vectors.Zero()
	}
	var intensity float32
	for _, l := range lit {
		angle := max(0, vectors.Reflect(l.dir, info.Normal).Dot(dir))
		intensity += l.light.Intensity * float32(math.Pow(float64(angle), float64(m.Specular.Exponent)))
	}
	return colors.White().Mul(intensity * m.Specular.Albedo)
}

func (s *Scene) reflect(m material.Material, info object.IntersectionInfo, dir vectors.Vec3, depth int) vectors.Vec3 {
	if !m.HasReflect {
		return vectors.Zero()
	}
	reflectDir := vectors.Reflect(dir, info.Normal)
	return s.CastRay(offsetOrigin(info, reflectDir), reflectDir, depth-1).Mul(m.Reflect.Albedo)
}

func (s *Scene) refract(m material.Material, info object.IntersectionInfo, dir vectors.Vec3, depth int) vectors.Vec3 {
	if !m.HasRefract {
		return vectors.Zero()
	}
	refractDir := vectors.Refract(dir, info.Normal, AirRefractionIndex, m.Refract.Index)
	return s.CastRay(offsetOrigin(info, refractDir), refractDir, depth-1).Mul(m.Refract.Albedo)
}

// offsetOrigin nudges the hit point off the surface, onto the side that dir
// leaves toward.
func offsetOrigin(info object.IntersectionInfo, dir vectors.Vec3) vectors.Vec3 {
	if dir.Dot(info.Normal) < 0 {
		return info.Hit.Sub(info.Normal.Mul(offset))
	}
	return info.Hit.Add(info.Normal.Mul(offset))
}
