// Package lighting provides the scene's single diffuse point light.
package lighting

import "github.com/Faultbox/sceneview/pkg/math"

// UniformSetter uploads vec3 uniforms. *shader.Program satisfies it.
type UniformSetter interface {
	SetVec3(name string, v math.Vec3)
}

// PointLight is a positional light with a diffuse tint and no falloff.
type PointLight struct {
	Position math.Vec3
	Color    math.Vec3
}

// Apply uploads the light as the lightPos and diffuseColor uniforms.
func (l PointLight) Apply(u UniformSetter) {
	u.SetVec3("lightPos", l.Position)
	u.SetVec3("diffuseColor", l.Color)
}
