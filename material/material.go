// Package material describes how a surface responds to light.
//
// A Material is a set of independent, optional light-transport terms. An
// absent term contributes no energy, so materials compose by adding whatever
// terms are present. Materials are plain values: copying one copies every
// term.
package material

import "github.com/echoflaresat/tinyray/vectors"

type Material struct {
	Diffuse  Diffuse
	Specular Specular
	Reflect  Reflect
	Refract  Refract

	HasDiffuse  bool
	HasSpecular bool
	HasReflect  bool
	HasRefract  bool
}

// Diffuse is a Lambertian term with a base color.
type Diffuse struct {
	Color  vectors.Vec3
	Albedo float32
}

// Specular is a Phong highlight; it always shades white.
type Specular struct {
	Exponent float32
	Albedo   float32
}

// Reflect triggers a recursive mirror bounce.
type Reflect struct {
	Albedo float32
}

// Refract triggers a recursive transmission bounce through a medium with the
// given index of refraction.
type Refract struct {
	Index  float32
	Albedo float32
}

// None returns a material with no terms. It renders black.
func None() Material {
	return Material{}
}

// Color returns a purely diffuse material.
func Color(diffuse vectors.Vec3, albedo float32) Material {
	return Material{}.WithDiffuse(diffuse, albedo)
}

func (m Material) WithDiffuse(color vectors.Vec3, albedo float32) Material {
	m.Diffuse = Diffuse{Color: color, Albedo: albedo}
	m.HasDiffuse = true
	return m
}

func (m Material) WithSpecular(exponent, albedo float32) Material {
	m.Specular = Specular{Exponent: exponent, Albedo: albedo}
	m.HasSpecular = true
	return m
}

func (m Material) WithReflect(albedo float32) Material {
	m.Reflect = Reflect{Albedo: albedo}
	m.HasReflect = true
	return m
}

func (m Material) WithRefract(index, albedo float32) Material {
	m.Refract = Refract{Index: index, Albedo: albedo}
	m.HasRefract = true
	return m
}
