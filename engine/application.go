package engine

import "github.com/charmbracelet/log"

type ApplicationConfig struct {
	// Window starting position x axis, if applicable.
	StartPosX uint32
	// Window starting position y axis, if applicable.
	StartPosY uint32
	// Window starting width, if applicable.
	StartWidth uint32
	// Window starting height, if applicable.
	StartHeight uint32
	// The application name used in windowing, if applicable.
	Name string
	// AssetDir is the directory asset names resolve against.
	AssetDir string
	LogLevel log.Level
	// ClearColor is the background color each frame clears to.
	ClearColor [4]float32
}
