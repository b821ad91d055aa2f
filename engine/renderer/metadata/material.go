package metadata

import "github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/math"

// Material represents the reflective properties of a surface: how much
// diffuse and specular light it reflects and how tight its specular
// highlight is. Materials are registered once during scene preparation and
// immutable afterwards.
type Material struct {
	// Tag is the lookup key for the material. Uniqueness is not enforced;
	// the first match wins on lookup.
	Tag           string
	DiffuseColor  math.Vec3
	SpecularColor math.Vec3
	// Shininess is the specular exponent, >= 0.
	Shininess float32
}
