package renderer

import (
	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/renderer/metadata"
)

// Renderer is the frontend the systems talk to. It owns the backend, the
// active shader program and the mesh provider, and delegates to them.
type Renderer struct {
	backend RendererBackend
	shader  ShaderProgram
	meshes  MeshProvider
}

func New(backend RendererBackend, shader ShaderProgram, meshes MeshProvider) *Renderer {
	return &Renderer{
		backend: backend,
		shader:  shader,
		meshes:  meshes,
	}
}

// Shader returns the active shader program.
func (r *Renderer) Shader() ShaderProgram {
	return r.shader
}

// Meshes returns the mesh provider.
func (r *Renderer) Meshes() MeshProvider {
	return r.meshes
}

func (r *Renderer) BeginFrame(red, green, blue, alpha float32) error {
	return r.backend.BeginFrame(red, green, blue, alpha)
}

func (r *Renderer) EndFrame() error {
	return r.backend.EndFrame()
}

func (r *Renderer) Resized(width, height uint32) {
	r.backend.Resized(width, height)
}

func (r *Renderer) TextureCreate(pixels []uint8, width, height uint32, channelCount uint8) (metadata.TextureHandle, error) {
	return r.backend.TextureCreate(pixels, width, height, channelCount)
}

func (r *Renderer) TextureBindUnit(unit uint32, handle metadata.TextureHandle) {
	r.backend.TextureBindUnit(unit, handle)
}

func (r *Renderer) TextureDestroy(handle metadata.TextureHandle) {
	r.backend.TextureDestroy(handle)
}

func (r *Renderer) Shutdown() error {
	r.meshes.Dispose()
	r.shader.Destroy()
	return r.backend.Shutdown()
}
