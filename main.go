/*
Renders a fixed living-room scene with the engine package: textured and
lit primitives prepared once and drawn every frame.
*/
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine"
	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/livingroom"
)

func main() {
	game, err := livingroom.NewGame()
	if err != nil {
		panic(err)
	}

	app, err := engine.New(game.Game)
	if err != nil {
		panic(err)
	}

	if err := app.Initialize(); err != nil {
		panic(err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	go func() {
		<-sigCh
		_ = app.Shutdown()
	}()

	if err := app.Run(); err != nil {
		panic(err)
	}
}
