package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/renderer/metadata"
)

func newTextureSystemForTest(t *testing.T, rig *testRig) *TextureSystem {
	t.Helper()
	ts, err := NewTextureSystem(&TextureSystemConfig{
		MaxTextureCount: metadata.MaxTextureUnits,
	}, rig.assets, rig.renderer)
	require.NoError(t, err)
	return ts
}

func TestNewTextureSystemRejectsZeroCapacity(t *testing.T) {
	rig := newTestRig(t)
	_, err := NewTextureSystem(&TextureSystemConfig{}, rig.assets, rig.renderer)
	assert.Error(t, err)
}

func TestTextureLoadAssignsSlotsInLoadOrder(t *testing.T) {
	rig := newTestRig(t)
	ts := newTextureSystemForTest(t, rig)

	wood := writeOpaquePNG(t, rig.assetDir, "wood.png", 4, 4)
	fabric := writeAlphaPNG(t, rig.assetDir, "fabric.png", 2, 2)

	require.NoError(t, ts.Load(wood, "wood"))
	require.NoError(t, ts.Load(fabric, "fabric"))

	assert.Equal(t, 2, ts.Count())
	assert.Equal(t, 0, ts.FindSlot("wood"))
	assert.Equal(t, 1, ts.FindSlot("fabric"))

	require.Len(t, rig.backend.uploads, 2)
	assert.Equal(t, uint8(3), rig.backend.uploads[0].channelCount)
	assert.Equal(t, 4*4*3, rig.backend.uploads[0].pixelBytes)
	assert.Equal(t, uint8(4), rig.backend.uploads[1].channelCount)
	assert.Equal(t, 2*2*4, rig.backend.uploads[1].pixelBytes)
}

func TestTextureLoadRejectsUnsupportedChannelCount(t *testing.T) {
	rig := newTestRig(t)
	ts := newTextureSystemForTest(t, rig)

	gray := writeGrayPNG(t, rig.assetDir, "gray.png", 4, 4)

	err := ts.Load(gray, "gray")
	require.Error(t, err)
	assert.True(t, IsUnsupportedFormat(err))
	assert.Equal(t, 0, ts.Count())
	assert.Empty(t, rig.backend.uploads)
}

func TestTextureLoadMissingFileLeavesRegistryUnchanged(t *testing.T) {
	rig := newTestRig(t)
	ts := newTextureSystemForTest(t, rig)

	err := ts.Load("absent.png", "absent")
	require.Error(t, err)
	assert.False(t, IsUnsupportedFormat(err))
	assert.Equal(t, 0, ts.Count())
	assert.Equal(t, -1, ts.FindSlot("absent"))
	assert.Equal(t, -1, ts.FindHandle("absent"))
}

func TestTextureFindMissReturnsSentinel(t *testing.T) {
	rig := newTestRig(t)
	ts := newTextureSystemForTest(t, rig)

	wood := writeOpaquePNG(t, rig.assetDir, "wood.png", 2, 2)
	require.NoError(t, ts.Load(wood, "wood"))

	assert.Equal(t, -1, ts.FindSlot("marble"))
	assert.Equal(t, -1, ts.FindHandle("marble"))
	assert.GreaterOrEqual(t, ts.FindHandle("wood"), 0)
}

func TestTextureBindAllBindsSlotToUnit(t *testing.T) {
	rig := newTestRig(t)
	ts := newTextureSystemForTest(t, rig)

	wood := writeOpaquePNG(t, rig.assetDir, "wood.png", 2, 2)
	fabric := writeOpaquePNG(t, rig.assetDir, "fabric.png", 2, 2)
	require.NoError(t, ts.Load(wood, "wood"))
	require.NoError(t, ts.Load(fabric, "fabric"))

	ts.BindAll()

	require.Len(t, rig.backend.bound, 2)
	assert.Equal(t, metadata.TextureHandle(ts.FindHandle("wood")), rig.backend.bound[0])
	assert.Equal(t, metadata.TextureHandle(ts.FindHandle("fabric")), rig.backend.bound[1])
}

func TestTextureReleaseAllDestroysAndEmpties(t *testing.T) {
	rig := newTestRig(t)
	ts := newTextureSystemForTest(t, rig)

	wood := writeOpaquePNG(t, rig.assetDir, "wood.png", 2, 2)
	fabric := writeOpaquePNG(t, rig.assetDir, "fabric.png", 2, 2)
	require.NoError(t, ts.Load(wood, "wood"))
	require.NoError(t, ts.Load(fabric, "fabric"))

	ts.ReleaseAll()

	assert.Equal(t, 0, ts.Count())
	assert.Len(t, rig.backend.destroyed, 2)
	assert.Equal(t, -1, ts.FindSlot("wood"))
}
