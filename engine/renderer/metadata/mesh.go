package metadata

import "github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/math"

// Shape enumerates the primitive mesh kinds the scene can draw.
type Shape int

const (
	ShapePlane Shape = iota
	ShapeBox
	ShapeCylinder
	ShapeSphere
	ShapeCone
)

func (s Shape) String() string {
	switch s {
	case ShapePlane:
		return "plane"
	case ShapeBox:
		return "box"
	case ShapeCylinder:
		return "cylinder"
	case ShapeSphere:
		return "sphere"
	case ShapeCone:
		return "cone"
	}
	return "unknown"
}

// DrawCommand fully describes one object draw: the mesh kind, its placement
// and the texture/material/UV state to bind before the draw call. Commands
// are plain values consumed by the scene system's Submit entry point.
type DrawCommand struct {
	Shape Shape

	Scale       math.Vec3
	RotationDeg math.Vec3
	Position    math.Vec3

	// TextureTag selects a registered texture. Ignored when UseColor is set.
	TextureTag string
	// Color is a flat RGBA color used instead of texture sampling when
	// UseColor is set.
	Color    math.Vec4
	UseColor bool

	// MaterialTag selects a registered material. Empty leaves the previously
	// bound material in place.
	MaterialTag string

	// UVScale is the texture coordinate tiling factor.
	UVScale math.Vec2
}
