package components

import (
	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/math"
)

// DefaultFOVDegrees is the vertical field of view used when a scene does not
// set one.
const DefaultFOVDegrees = 45.0

// Camera is a fixed look-at camera for a static scene.
type Camera struct {
	// Position of the camera. Do not set directly; use SetPosition so the
	// view matrix is recalculated when needed.
	Position math.Vec3
	// Target the camera looks at. Do not set directly; use SetTarget.
	Target math.Vec3
	Up     math.Vec3
	// FOVDegrees is the vertical field of view.
	FOVDegrees float32

	isDirty    bool
	viewMatrix math.Mat4
}

func NewCamera() *Camera {
	c := &Camera{}
	c.Reset()
	return c
}

func (c *Camera) Reset() {
	c.Position = math.NewVec3(0, 5, 20)
	c.Target = math.NewVec3Zero()
	c.Up = math.NewVec3(0, 1, 0)
	c.FOVDegrees = DefaultFOVDegrees
	c.isDirty = true
	c.viewMatrix = math.NewMat4Identity()
}

func (c *Camera) SetPosition(position math.Vec3) {
	c.Position = position
	c.isDirty = true
}

func (c *Camera) SetTarget(target math.Vec3) {
	c.Target = target
	c.isDirty = true
}

// GetView returns the view matrix, rebuilding it only when position or
// target changed since the last call.
func (c *Camera) GetView() math.Mat4 {
	if c.isDirty {
		c.viewMatrix = math.NewMat4LookAt(c.Position, c.Target, c.Up)
		c.isDirty = false
	}
	return c.viewMatrix
}

// GetProjection returns a perspective projection for the given viewport
// aspect ratio.
func (c *Camera) GetProjection(aspectRatio float32) math.Mat4 {
	fov := c.FOVDegrees
	if fov <= 0 {
		fov = DefaultFOVDegrees
	}
	fov = math.Clamp(fov, 1.0, 179.0)
	return math.NewMat4Perspective(math.DegToRad(fov), aspectRatio, 0.1, 100.0)
}
