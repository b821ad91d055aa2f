package engine

import (
	"fmt"

	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/assets"
	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/core"
	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/platform"
	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/renderer"
	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/renderer/opengl"
	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/systems"
)

type Engine struct {
	gameInstance  *Game
	isRunning     bool
	platform      *platform.Platform
	assetManager  *assets.AssetManager
	renderer      *renderer.Renderer
	systemManager *systems.SystemManager
	clock         *core.Clock
	width         uint32
	height        uint32
	lastTime      float64
}

func New(g *Game) (*Engine, error) {
	if g.ApplicationConfig == nil {
		return nil, fmt.Errorf("game has no application config")
	}

	core.SetLogLevel(g.ApplicationConfig.LogLevel)

	return &Engine{
		gameInstance: g,
		platform:     platform.New(),
		assetManager: assets.NewAssetManager(g.ApplicationConfig.AssetDir),
		clock:        core.NewClock(),
		isRunning:    true,
		width:        g.ApplicationConfig.StartWidth,
		height:       g.ApplicationConfig.StartHeight,
	}, nil
}

// Initialize creates the window and graphics context, compiles the scene
// shader, wires the systems and runs the game's own initialization.
func (e *Engine) Initialize() error {
	config := e.gameInstance.ApplicationConfig

	e.platform.SetResizeCallback(e.onResized)
	if err := e.platform.Startup(config.Name, config.StartPosX, config.StartPosY, config.StartWidth, config.StartHeight); err != nil {
		return err
	}

	// The framebuffer can be larger than the requested window size on
	// high-DPI displays.
	e.width, e.height = e.platform.FramebufferSize()

	backend := opengl.NewBackend()
	if err := backend.Initialize(config.Name, e.width, e.height); err != nil {
		return err
	}

	program, err := opengl.NewSceneProgram()
	if err != nil {
		core.LogError("failed to build the scene shader: %s", err)
		return err
	}
	program.Use()

	e.renderer = renderer.New(backend, program, opengl.NewMeshProvider())

	sm, err := systems.NewSystemManager(e.assetManager, e.renderer)
	if err != nil {
		return err
	}
	e.systemManager = sm
	e.gameInstance.SystemManager = sm

	if e.gameInstance.FnInitialize != nil {
		if err := e.gameInstance.FnInitialize(); err != nil {
			return err
		}
	}

	return nil
}

func (e *Engine) Run() error {
	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed()

	clear := e.gameInstance.ApplicationConfig.ClearColor

	for e.isRunning {
		if !e.platform.PumpMessages() {
			e.isRunning = false
			break
		}

		e.clock.Update()
		currentTime := e.clock.Elapsed()
		delta := currentTime - e.lastTime
		e.lastTime = currentTime

		if err := e.gameInstance.FnUpdate(delta); err != nil {
			core.LogError("game update failed, shutting down: %s", err)
			e.isRunning = false
			break
		}

		if err := e.renderer.BeginFrame(clear[0], clear[1], clear[2], clear[3]); err != nil {
			return err
		}

		if err := e.gameInstance.FnRender(delta); err != nil {
			core.LogError("game render failed, shutting down: %s", err)
			e.isRunning = false
			break
		}

		if err := e.renderer.EndFrame(); err != nil {
			return err
		}
		e.platform.SwapBuffers()
	}

	return e.Shutdown()
}

func (e *Engine) Shutdown() error {
	if !e.isRunning && e.systemManager == nil {
		return nil
	}
	e.isRunning = false

	if e.gameInstance.FnShutdown != nil {
		if err := e.gameInstance.FnShutdown(); err != nil {
			core.LogWarn("game shutdown reported: %s", err)
		}
	}
	if e.systemManager != nil {
		if err := e.systemManager.Shutdown(); err != nil {
			return err
		}
		e.systemManager = nil
	}
	if e.renderer != nil {
		if err := e.renderer.Shutdown(); err != nil {
			return err
		}
		e.renderer = nil
	}
	return e.platform.Shutdown()
}

func (e *Engine) onResized(width, height uint32) {
	e.width = width
	e.height = height
	if e.renderer != nil {
		e.renderer.Resized(width, height)
	}
	if e.gameInstance.FnOnResize != nil {
		if err := e.gameInstance.FnOnResize(width, height); err != nil {
			core.LogWarn("game resize handler reported: %s", err)
		}
	}
}
