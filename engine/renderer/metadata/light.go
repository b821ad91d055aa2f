package metadata

import "github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/math"

// MaxPointLights is the size of the point light array in the shader.
const MaxPointLights = 4

// DirectionalLight is a light with parallel rays, such as sunlight.
type DirectionalLight struct {
	Direction math.Vec3
	Ambient   math.Vec3
	Diffuse   math.Vec3
	Specular  math.Vec3
	Active    bool
}

// PointLight emits light from a position in all directions.
type PointLight struct {
	Position math.Vec3
	Ambient  math.Vec3
	Diffuse  math.Vec3
	Specular math.Vec3
	Active   bool
}
