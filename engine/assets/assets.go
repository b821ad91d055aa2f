package assets

import (
	"fmt"
	"path/filepath"

	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/assets/loaders"
	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/core"
	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/renderer/metadata"
)

// Loader decodes one asset kind from disk.
type Loader interface {
	Load(path string, params interface{}) (*metadata.Resource, error)
	Unload(*metadata.Resource) error
}

// AssetManager resolves asset names against a base directory and dispatches
// to the loader registered for the resource type.
type AssetManager struct {
	baseDir string
	loaders map[metadata.ResourceType]Loader
}

func NewAssetManager(baseDir string) *AssetManager {
	am := &AssetManager{
		baseDir: baseDir,
		loaders: make(map[metadata.ResourceType]Loader),
	}

	am.registerLoader(metadata.ResourceTypeImage, &loaders.ImageLoader{})
	am.registerLoader(metadata.ResourceTypeScene, &loaders.SceneLoader{})

	return am
}

func (am *AssetManager) registerLoader(assetType metadata.ResourceType, loader Loader) {
	am.loaders[assetType] = loader
}

// LoadAsset loads the named asset. Relative names resolve against the
// manager's base directory; absolute paths are used as-is.
func (am *AssetManager) LoadAsset(name string, assetType metadata.ResourceType, params interface{}) (*metadata.Resource, error) {
	loader, ok := am.loaders[assetType]
	if !ok {
		return nil, fmt.Errorf("%w: %d", core.ErrUnknownResource, assetType)
	}

	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(am.baseDir, name)
	}

	return loader.Load(path, params)
}

// UnloadAsset releases any loader-held state for the resource.
func (am *AssetManager) UnloadAsset(resource *metadata.Resource) {
	if resource == nil {
		return
	}
	loader, ok := am.loaders[resource.Type]
	if !ok {
		return
	}
	if err := loader.Unload(resource); err != nil {
		core.LogWarn("failed to unload asset '%s': %s", resource.FullPath, err)
	}
}
