package systems

import (
	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/core"
	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/math"
	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/renderer"
	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/renderer/metadata"
)

// ShaderStateSystem pushes per-draw state into the active shader's named
// uniforms ahead of each draw call, mirroring the bind-before-draw
// discipline of the graphics API. Every operation writes uniform state and
// nothing else; values stay bound until overwritten.
type ShaderStateSystem struct {
	renderer       *renderer.Renderer
	textureSystem  *TextureSystem
	materialSystem *MaterialSystem
}

func NewShaderStateSystem(r *renderer.Renderer, ts *TextureSystem, ms *MaterialSystem) *ShaderStateSystem {
	return &ShaderStateSystem{
		renderer:       r,
		textureSystem:  ts,
		materialSystem: ms,
	}
}

// SetModel writes the model matrix uniform.
func (ss *ShaderStateSystem) SetModel(model math.Mat4) {
	ss.renderer.Shader().SetMat4(metadata.UniformModel, model)
}

// SetViewProjection writes the camera uniforms for the frame.
func (ss *ShaderStateSystem) SetViewProjection(view, projection math.Mat4, viewPosition math.Vec3) {
	shader := ss.renderer.Shader()
	shader.SetMat4(metadata.UniformView, view)
	shader.SetMat4(metadata.UniformProjection, projection)
	shader.SetVec3(metadata.UniformViewPosition, viewPosition)
}

// SetSolidColor disables texture sampling and sets a flat RGBA color for the
// next draw. Mutually exclusive with SetTexture; whichever runs last before
// the draw wins.
func (ss *ShaderStateSystem) SetSolidColor(r, g, b, a float32) {
	shader := ss.renderer.Shader()
	shader.SetBool(metadata.UniformUseTexture, false)
	shader.SetVec4(metadata.UniformObjectColor, math.NewVec4(r, g, b, a))
}

// SetTexture enables texture sampling and points the sampler at the slot
// registered under tag. An unresolved tag selects sampler -1, which draws
// garbage rather than failing; the miss is logged.
func (ss *ShaderStateSystem) SetTexture(tag string) {
	slot := ss.textureSystem.FindSlot(tag)
	if slot < 0 {
		core.LogError("no texture registered under tag '%s'; sampler set to -1", tag)
	}

	shader := ss.renderer.Shader()
	shader.SetBool(metadata.UniformUseTexture, true)
	shader.SetSampler(metadata.UniformObjectTexture, int32(slot))
}

// SetUVScale sets the texture coordinate tiling factor, independent of which
// texture is selected.
func (ss *ShaderStateSystem) SetUVScale(u, v float32) {
	ss.renderer.Shader().SetVec2(metadata.UniformUVScale, math.NewVec2(u, v))
}

// SetMaterial writes the diffuse/specular/shininess uniforms of the material
// registered under tag. A miss leaves the previously bound values in place.
func (ss *ShaderStateSystem) SetMaterial(tag string) {
	material, found := ss.materialSystem.Find(tag)
	if !found {
		core.LogWarn("no material registered under tag '%s'; previous material stays bound", tag)
		return
	}

	shader := ss.renderer.Shader()
	shader.SetVec3(metadata.UniformMaterialDiffuse, material.DiffuseColor)
	shader.SetVec3(metadata.UniformMaterialSpecular, material.SpecularColor)
	shader.SetFloat(metadata.UniformMaterialShininess, material.Shininess)
}

// SetLighting enables lighting and writes the full fixed rig: the
// directional light and up to MaxPointLights point lights. Unused point
// light slots are deactivated.
func (ss *ShaderStateSystem) SetLighting(directional metadata.DirectionalLight, points []metadata.PointLight) {
	shader := ss.renderer.Shader()
	shader.SetBool(metadata.UniformUseLighting, true)

	shader.SetVec3(metadata.UniformDirectionalLight("direction"), directional.Direction)
	shader.SetVec3(metadata.UniformDirectionalLight("ambient"), directional.Ambient)
	shader.SetVec3(metadata.UniformDirectionalLight("diffuse"), directional.Diffuse)
	shader.SetVec3(metadata.UniformDirectionalLight("specular"), directional.Specular)
	shader.SetBool(metadata.UniformDirectionalLight("bActive"), directional.Active)

	if len(points) > metadata.MaxPointLights {
		core.LogWarn("%d point lights configured, only %d supported; extra lights ignored",
			len(points), metadata.MaxPointLights)
		points = points[:metadata.MaxPointLights]
	}

	for i := 0; i < metadata.MaxPointLights; i++ {
		if i >= len(points) {
			shader.SetBool(metadata.UniformPointLight(i, "bActive"), false)
			continue
		}
		light := points[i]
		shader.SetVec3(metadata.UniformPointLight(i, "position"), light.Position)
		shader.SetVec3(metadata.UniformPointLight(i, "ambient"), light.Ambient)
		shader.SetVec3(metadata.UniformPointLight(i, "diffuse"), light.Diffuse)
		shader.SetVec3(metadata.UniformPointLight(i, "specular"), light.Specular)
		shader.SetBool(metadata.UniformPointLight(i, "bActive"), light.Active)
	}
}
