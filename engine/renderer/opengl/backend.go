package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/core"
)

// Backend implements renderer.RendererBackend on an OpenGL 4.1 core context.
// The context must be current on the calling thread before Initialize.
type Backend struct {
	width  uint32
	height uint32
}

func NewBackend() *Backend {
	return &Backend{}
}

func (b *Backend) Initialize(appName string, width, height uint32) error {
	if err := gl.Init(); err != nil {
		core.LogError("failed to initialize OpenGL bindings: %s", err)
		return err
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	core.LogInfo("%s rendering with OpenGL %s", appName, version)

	gl.Enable(gl.DEPTH_TEST)
	b.Resized(width, height)

	return nil
}

func (b *Backend) Shutdown() error {
	return nil
}

func (b *Backend) BeginFrame(r, g, bl, a float32) error {
	gl.ClearColor(r, g, bl, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	return nil
}

func (b *Backend) EndFrame() error {
	// Buffer swap belongs to the windowing layer.
	return nil
}

func (b *Backend) Resized(width, height uint32) {
	b.width = width
	b.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}
