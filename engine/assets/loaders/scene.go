package loaders

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"

	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/renderer/metadata"
)

// SceneLoader parses a TOML scene manifest: texture path/tag pairs,
// materials, lighting and camera placement.
type SceneLoader struct{}

func (sl *SceneLoader) Load(path string, params interface{}) (*metadata.Resource, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene manifest %s: %w", path, err)
	}

	config := &metadata.SceneConfig{}
	if err := toml.Unmarshal(raw, config); err != nil {
		return nil, fmt.Errorf("scene manifest %s: %w", path, err)
	}

	if len(config.Lighting.Points) > metadata.MaxPointLights {
		return nil, fmt.Errorf("scene manifest %s: %d point lights exceeds the maximum of %d",
			path, len(config.Lighting.Points), metadata.MaxPointLights)
	}

	return &metadata.Resource{
		ID:       uuid.New(),
		Name:     "scene",
		FullPath: path,
		Type:     metadata.ResourceTypeScene,
		DataSize: uint64(len(raw)),
		Data:     config,
	}, nil
}

func (sl *SceneLoader) Unload(*metadata.Resource) error {
	return nil
}
