package core

import (
	"errors"
)

var (
	// ErrImageDecode indicates an image file could not be read or decoded.
	ErrImageDecode = errors.New("image could not be decoded")
	// ErrUnsupportedChannels indicates a decoded image has a channel count
	// other than 3 (RGB) or 4 (RGBA).
	ErrUnsupportedChannels = errors.New("unsupported channel count")
	// ErrUnknownResource indicates no loader is registered for a resource type.
	ErrUnknownResource = errors.New("unknown resource type")
)
