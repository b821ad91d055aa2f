package systems

import (
	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/core"
	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/math"
	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/renderer"
	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/renderer/components"
	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/renderer/metadata"
)

// SceneSystem prepares a static scene once and renders it every frame by
// walking an ordered list of draw commands.
type SceneSystem struct {
	renderer       *renderer.Renderer
	textureSystem  *TextureSystem
	materialSystem *MaterialSystem
	shaderState    *ShaderStateSystem
	camera         *components.Camera
}

func NewSceneSystem(r *renderer.Renderer, ts *TextureSystem, ms *MaterialSystem, ss *ShaderStateSystem) *SceneSystem {
	return &SceneSystem{
		renderer:       r,
		textureSystem:  ts,
		materialSystem: ms,
		shaderState:    ss,
		camera:         components.NewCamera(),
	}
}

// Camera returns the scene camera.
func (ss *SceneSystem) Camera() *components.Camera {
	return ss.camera
}

// Prepare runs once before rendering: loads the mesh geometry kinds used by
// the scene, loads and tags every texture, registers every material and
// configures the lighting rig. Individual texture failures are logged and
// preparation continues with the remaining entries.
func (ss *SceneSystem) Prepare(config *metadata.SceneConfig) {
	meshes := ss.renderer.Meshes()
	meshes.LoadPlaneMesh()
	meshes.LoadBoxMesh()
	meshes.LoadCylinderMesh()
	meshes.LoadSphereMesh()
	meshes.LoadConeMesh()

	failed := 0
	for _, texture := range config.Textures {
		if err := ss.textureSystem.Load(texture.Path, texture.Tag); err != nil {
			failed++
		}
	}
	if failed > 0 {
		core.LogWarn("scene prepared with %d of %d textures missing; affected objects render with stale state",
			failed, len(config.Textures))
	}
	ss.textureSystem.BindAll()

	for _, material := range config.Materials {
		m := material.Material()
		ss.materialSystem.Register(m.Tag, m.DiffuseColor, m.SpecularColor, m.Shininess)
	}

	points := make([]metadata.PointLight, 0, len(config.Lighting.Points))
	for _, point := range config.Lighting.Points {
		points = append(points, point.Light())
	}
	ss.shaderState.SetLighting(config.Lighting.Directional.Light(), points)

	ss.applyCameraConfig(config.Camera)

	core.LogInfo("scene prepared: %d textures, %d materials, %d point lights",
		ss.textureSystem.Count(), ss.materialSystem.Count(), len(points))
}

func (ss *SceneSystem) applyCameraConfig(config metadata.CameraConfig) {
	if config.Position != ([3]float32{}) || config.Target != ([3]float32{}) {
		ss.camera.SetPosition(math.NewVec3(config.Position[0], config.Position[1], config.Position[2]))
		ss.camera.SetTarget(math.NewVec3(config.Target[0], config.Target[1], config.Target[2]))
	}
	if config.FOVDegrees > 0 {
		ss.camera.FOVDegrees = config.FOVDegrees
	}
}

// ApplyCamera writes the view, projection and view position uniforms for the
// current viewport size. Called once per frame before submitting commands.
func (ss *SceneSystem) ApplyCamera(width, height uint32) {
	if width == 0 {
		width = 1
	}
	if height == 0 {
		height = 1
	}
	aspect := float32(width) / float32(height)
	ss.shaderState.SetViewProjection(ss.camera.GetView(), ss.camera.GetProjection(aspect), ss.camera.Position)
}

// Submit binds the command's transform, texture or solid color, material and
// UV scale, then issues the draw call for its shape. The command is consumed
// by value; nothing is retained.
func (ss *SceneSystem) Submit(cmd metadata.DrawCommand) {
	ss.shaderState.SetModel(math.ComposeTransform(cmd.Scale, cmd.RotationDeg, cmd.Position))

	if cmd.UseColor {
		ss.shaderState.SetSolidColor(cmd.Color.X, cmd.Color.Y, cmd.Color.Z, cmd.Color.W)
	} else {
		ss.shaderState.SetTexture(cmd.TextureTag)
	}

	if cmd.MaterialTag != "" {
		ss.shaderState.SetMaterial(cmd.MaterialTag)
	}

	ss.shaderState.SetUVScale(cmd.UVScale.X, cmd.UVScale.Y)

	ss.draw(cmd.Shape)
}

func (ss *SceneSystem) draw(shape metadata.Shape) {
	meshes := ss.renderer.Meshes()
	switch shape {
	case metadata.ShapePlane:
		meshes.DrawPlaneMesh()
	case metadata.ShapeBox:
		meshes.DrawBoxMesh()
	case metadata.ShapeCylinder:
		meshes.DrawCylinderMesh()
	case metadata.ShapeSphere:
		meshes.DrawSphereMesh()
	case metadata.ShapeCone:
		meshes.DrawConeMesh()
	default:
		core.LogError("draw command with unknown shape %d skipped", shape)
	}
}

// RenderFrame submits every command in order.
func (ss *SceneSystem) RenderFrame(commands []metadata.DrawCommand) {
	for _, cmd := range commands {
		ss.Submit(cmd)
	}
}

// Shutdown releases the backend resources the scene acquired.
func (ss *SceneSystem) Shutdown() {
	ss.textureSystem.ReleaseAll()
}
