package livingroom

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine"
	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/core"
	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/renderer/metadata"
)

// ManifestName is the scene manifest looked up in the asset directory. When
// it is missing the built-in DefaultSceneConfig is used instead.
const ManifestName = "livingroom.toml"

type LivingRoomGame struct {
	*engine.Game
}

type gameState struct {
	width  uint32
	height uint32

	commands []metadata.DrawCommand
}

func NewGame() (*LivingRoomGame, error) {
	g := &LivingRoomGame{
		Game: &engine.Game{
			ApplicationConfig: &engine.ApplicationConfig{
				StartPosX:   100,
				StartPosY:   100,
				StartWidth:  1280,
				StartHeight: 720,
				Name:        "Living Room",
				AssetDir:    "assets",
				LogLevel:    log.InfoLevel,
				ClearColor:  [4]float32{0.1, 0.1, 0.12, 1.0},
			},
			State: &gameState{
				width:  1280,
				height: 720,
			},
		},
	}

	g.FnInitialize = g.Initialize
	g.FnUpdate = g.Update
	g.FnRender = g.Render
	g.FnOnResize = g.OnResize
	g.FnShutdown = g.Shutdown

	return g, nil
}

// Initialize prepares the scene once: it loads the manifest (falling back to
// the built-in config) and hands it to the scene system.
func (g *LivingRoomGame) Initialize() error {
	if g.SystemManager == nil {
		return fmt.Errorf("engine systems are not initialized")
	}

	state := g.State.(*gameState)
	state.commands = Objects()

	config := DefaultSceneConfig()
	resource, err := g.SystemManager.AssetManager.LoadAsset(ManifestName, metadata.ResourceTypeScene, nil)
	if err != nil {
		core.LogWarn("scene manifest %s not loaded (%v); using built-in scene config", ManifestName, err)
	} else {
		config = resource.Data.(*metadata.SceneConfig)
	}

	g.SystemManager.SceneSystem.Prepare(config)
	return nil
}

func (g *LivingRoomGame) Update(deltaTime float64) error {
	return nil
}

// Render draws the full command list. The scene is static so every frame
// submits the same commands.
func (g *LivingRoomGame) Render(deltaTime float64) error {
	state := g.State.(*gameState)
	g.SystemManager.SceneSystem.ApplyCamera(state.width, state.height)
	g.SystemManager.SceneSystem.RenderFrame(state.commands)
	return nil
}

func (g *LivingRoomGame) OnResize(width uint32, height uint32) error {
	state := g.State.(*gameState)
	state.width = width
	state.height = height
	return nil
}

func (g *LivingRoomGame) Shutdown() error {
	core.LogInfo("living room scene shutting down")
	return nil
}
