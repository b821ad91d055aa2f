package systems

import (
	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/assets"
	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/renderer"
	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/renderer/metadata"
)

// SystemManager wires the scene systems together in dependency order.
type SystemManager struct {
	AssetManager   *assets.AssetManager
	TextureSystem  *TextureSystem
	MaterialSystem *MaterialSystem
	ShaderState    *ShaderStateSystem
	SceneSystem    *SceneSystem
}

func NewSystemManager(am *assets.AssetManager, r *renderer.Renderer) (*SystemManager, error) {
	ts, err := NewTextureSystem(&TextureSystemConfig{
		MaxTextureCount: metadata.MaxTextureUnits,
	}, am, r)
	if err != nil {
		return nil, err
	}

	ms := NewMaterialSystem()
	ss := NewShaderStateSystem(r, ts, ms)
	scene := NewSceneSystem(r, ts, ms, ss)

	return &SystemManager{
		AssetManager:   am,
		TextureSystem:  ts,
		MaterialSystem: ms,
		ShaderState:    ss,
		SceneSystem:    scene,
	}, nil
}

func (sm *SystemManager) Shutdown() error {
	sm.SceneSystem.Shutdown()
	return nil
}
