package renderer

import (
	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/math"
	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/renderer/metadata"
)

// RendererBackend is the graphics API surface the scene systems draw
// against. The OpenGL implementation lives in the opengl package; tests use
// in-memory fakes.
type RendererBackend interface {
	Initialize(appName string, width, height uint32) error
	Shutdown() error
	// BeginFrame clears the color and depth buffers to the provided color.
	BeginFrame(r, g, b, a float32) error
	EndFrame() error
	Resized(width, height uint32)
	// TextureCreate uploads decoded pixels as a new texture object with
	// repeat wrapping, linear filtering and generated mipmaps. The texture
	// is left unbound after upload. channelCount must be 3 or 4.
	TextureCreate(pixels []uint8, width, height uint32, channelCount uint8) (metadata.TextureHandle, error)
	// TextureBindUnit binds the texture to the given texture unit.
	TextureBindUnit(unit uint32, handle metadata.TextureHandle)
	TextureDestroy(handle metadata.TextureHandle)
}

// ShaderProgram accepts named uniform values for the currently active shader.
// Setters take effect for all subsequent draw calls until overwritten.
type ShaderProgram interface {
	Use()
	Destroy()
	SetMat4(name string, value math.Mat4)
	SetVec2(name string, value math.Vec2)
	SetVec3(name string, value math.Vec3)
	SetVec4(name string, value math.Vec4)
	SetFloat(name string, value float32)
	SetInt(name string, value int32)
	SetBool(name string, value bool)
	// SetSampler assigns the texture unit a sampler2D reads from.
	SetSampler(name string, unit int32)
}

// MeshProvider loads and draws the primitive meshes used by the scene.
// Load<Shape>Mesh is called once per shape kind during preparation;
// Draw<Shape>Mesh once per object per frame against the currently bound
// shader, texture and transform state.
type MeshProvider interface {
	LoadPlaneMesh()
	LoadBoxMesh()
	LoadCylinderMesh()
	LoadSphereMesh()
	LoadConeMesh()

	DrawPlaneMesh()
	DrawBoxMesh()
	DrawCylinderMesh()
	DrawSphereMesh()
	DrawConeMesh()

	Dispose()
}
