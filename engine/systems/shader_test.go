package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/math"
	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/renderer/metadata"
)

func newShaderStateForTest(t *testing.T, rig *testRig) (*ShaderStateSystem, *TextureSystem, *MaterialSystem) {
	t.Helper()
	ts := newTextureSystemForTest(t, rig)
	ms := NewMaterialSystem()
	return NewShaderStateSystem(rig.renderer, ts, ms), ts, ms
}

func TestSetSolidColorDisablesTextureSampling(t *testing.T) {
	rig := newTestRig(t)
	ss, _, _ := newShaderStateForTest(t, rig)

	ss.SetSolidColor(0.7, 0.7, 0.7, 1)

	assert.False(t, rig.shader.bools[metadata.UniformUseTexture])
	assert.Equal(t, math.NewVec4(0.7, 0.7, 0.7, 1), rig.shader.vec4s[metadata.UniformObjectColor])
}

func TestSetTextureEnablesSamplingAndSelectsSlot(t *testing.T) {
	rig := newTestRig(t)
	ss, ts, _ := newShaderStateForTest(t, rig)

	wood := writeOpaquePNG(t, rig.assetDir, "wood.png", 2, 2)
	fabric := writeOpaquePNG(t, rig.assetDir, "fabric.png", 2, 2)
	require.NoError(t, ts.Load(wood, "wood"))
	require.NoError(t, ts.Load(fabric, "fabric"))

	ss.SetTexture("fabric")

	assert.True(t, rig.shader.bools[metadata.UniformUseTexture])
	assert.Equal(t, int32(1), rig.shader.samplers[metadata.UniformObjectTexture])
}

func TestSetTextureUnknownTagStillTogglesSampling(t *testing.T) {
	rig := newTestRig(t)
	ss, _, _ := newShaderStateForTest(t, rig)

	ss.SetTexture("marble")

	assert.True(t, rig.shader.bools[metadata.UniformUseTexture])
	assert.Equal(t, int32(-1), rig.shader.samplers[metadata.UniformObjectTexture])
}

func TestColorAndTextureAreMutuallyExclusive(t *testing.T) {
	rig := newTestRig(t)
	ss, ts, _ := newShaderStateForTest(t, rig)

	wood := writeOpaquePNG(t, rig.assetDir, "wood.png", 2, 2)
	require.NoError(t, ts.Load(wood, "wood"))

	ss.SetTexture("wood")
	assert.True(t, rig.shader.bools[metadata.UniformUseTexture])

	ss.SetSolidColor(1, 0, 0, 1)
	assert.False(t, rig.shader.bools[metadata.UniformUseTexture])

	ss.SetTexture("wood")
	assert.True(t, rig.shader.bools[metadata.UniformUseTexture])
}

func TestSetUVScaleWritesTilingFactor(t *testing.T) {
	rig := newTestRig(t)
	ss, _, _ := newShaderStateForTest(t, rig)

	ss.SetUVScale(4, 2)

	assert.Equal(t, math.NewVec2(4, 2), rig.shader.vec2s[metadata.UniformUVScale])
}

func TestSetMaterialWritesRegisteredValues(t *testing.T) {
	rig := newTestRig(t)
	ss, _, ms := newShaderStateForTest(t, rig)

	ms.Register("metal", math.NewVec3(0.6, 0.6, 0.6), math.NewVec3(0.9, 0.9, 0.9), 128)
	ss.SetMaterial("metal")

	assert.Equal(t, math.NewVec3(0.6, 0.6, 0.6), rig.shader.vec3s[metadata.UniformMaterialDiffuse])
	assert.Equal(t, math.NewVec3(0.9, 0.9, 0.9), rig.shader.vec3s[metadata.UniformMaterialSpecular])
	assert.Equal(t, float32(128), rig.shader.floats[metadata.UniformMaterialShininess])
}

func TestSetMaterialMissLeavesPreviousValuesBound(t *testing.T) {
	rig := newTestRig(t)
	ss, _, ms := newShaderStateForTest(t, rig)

	ms.Register("metal", math.NewVec3(0.6, 0.6, 0.6), math.NewVec3(0.9, 0.9, 0.9), 128)
	ss.SetMaterial("metal")
	ss.SetMaterial("glass")

	assert.Equal(t, math.NewVec3(0.6, 0.6, 0.6), rig.shader.vec3s[metadata.UniformMaterialDiffuse])
	assert.Equal(t, float32(128), rig.shader.floats[metadata.UniformMaterialShininess])
}

func TestSetLightingWritesRigAndDeactivatesUnusedSlots(t *testing.T) {
	rig := newTestRig(t)
	ss, _, _ := newShaderStateForTest(t, rig)

	directional := metadata.DirectionalLight{
		Direction: math.NewVec3(-0.3, -1, -0.2),
		Ambient:   math.NewVec3(0.3, 0.3, 0.32),
		Diffuse:   math.NewVec3(0.5, 0.5, 0.52),
		Specular:  math.NewVec3(0.3, 0.3, 0.3),
		Active:    true,
	}
	points := []metadata.PointLight{
		{Position: math.NewVec3(5, 8, 3), Active: true},
		{Position: math.NewVec3(-9, 6, 2), Active: true},
	}

	ss.SetLighting(directional, points)

	assert.True(t, rig.shader.bools[metadata.UniformUseLighting])
	assert.Equal(t, directional.Direction, rig.shader.vec3s[metadata.UniformDirectionalLight("direction")])
	assert.True(t, rig.shader.bools[metadata.UniformDirectionalLight("bActive")])

	assert.Equal(t, math.NewVec3(5, 8, 3), rig.shader.vec3s[metadata.UniformPointLight(0, "position")])
	assert.True(t, rig.shader.bools[metadata.UniformPointLight(0, "bActive")])
	assert.True(t, rig.shader.bools[metadata.UniformPointLight(1, "bActive")])
	assert.False(t, rig.shader.bools[metadata.UniformPointLight(2, "bActive")])
	assert.False(t, rig.shader.bools[metadata.UniformPointLight(3, "bActive")])
}

func TestSetLightingTruncatesPastCapacity(t *testing.T) {
	rig := newTestRig(t)
	ss, _, _ := newShaderStateForTest(t, rig)

	points := make([]metadata.PointLight, metadata.MaxPointLights+2)
	for i := range points {
		points[i] = metadata.PointLight{Position: math.NewVec3(float32(i), 0, 0), Active: true}
	}

	ss.SetLighting(metadata.DirectionalLight{}, points)

	for i := 0; i < metadata.MaxPointLights; i++ {
		assert.True(t, rig.shader.bools[metadata.UniformPointLight(i, "bActive")])
	}
	_, wrote := rig.shader.vec3s[metadata.UniformPointLight(metadata.MaxPointLights, "position")]
	assert.False(t, wrote)
}
