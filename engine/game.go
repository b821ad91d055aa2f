package engine

import (
	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/systems"
)

// Game is the application hook surface: the engine owns the loop, the game
// prepares its scene in FnInitialize and renders it every frame in FnRender.
type Game struct {
	ApplicationConfig *ApplicationConfig
	SystemManager     *systems.SystemManager
	State             interface{}
	FnInitialize      Initialize
	FnUpdate          Update
	FnRender          Render
	FnOnResize        OnResize
	FnShutdown        Shutdown
}

type Initialize func() error
type Update func(deltaTime float64) error
type Render func(deltaTime float64) error
type OnResize func(width uint32, height uint32) error
type Shutdown func() error
