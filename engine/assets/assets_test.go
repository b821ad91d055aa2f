package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/core"
	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/renderer/metadata"
)

func TestLoadAssetResolvesRelativeNames(t *testing.T) {
	dir := t.TempDir()
	manifest := "[[textures]]\npath = \"textures/wood.jpg\"\ntag = \"wood\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scene.toml"), []byte(manifest), 0o644))

	am := NewAssetManager(dir)
	resource, err := am.LoadAsset("scene.toml", metadata.ResourceTypeScene, nil)
	require.NoError(t, err)

	config, ok := resource.Data.(*metadata.SceneConfig)
	require.True(t, ok)
	assert.Equal(t, "wood", config.Textures[0].Tag)
	assert.Equal(t, filepath.Join(dir, "scene.toml"), resource.FullPath)
}

func TestLoadAssetAbsolutePathBypassesBaseDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.toml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	am := NewAssetManager(filepath.Join(dir, "elsewhere"))
	resource, err := am.LoadAsset(path, metadata.ResourceTypeScene, nil)
	require.NoError(t, err)
	assert.Equal(t, path, resource.FullPath)
}

func TestLoadAssetUnknownTypeFails(t *testing.T) {
	am := NewAssetManager(t.TempDir())
	_, err := am.LoadAsset("anything", metadata.ResourceType(99), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrUnknownResource)
}

func TestUnloadAssetToleratesNil(t *testing.T) {
	am := NewAssetManager(t.TempDir())
	am.UnloadAsset(nil)
}
