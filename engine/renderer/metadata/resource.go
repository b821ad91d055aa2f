package metadata

import "github.com/google/uuid"

// ResourceType identifies the kind of asset a resource holds.
type ResourceType int

const (
	ResourceTypeImage ResourceType = iota
	ResourceTypeScene
)

// Resource is a loaded asset. Data holds the type-specific decoded payload,
// e.g. *ImageResourceData or *SceneConfig.
type Resource struct {
	ID       uuid.UUID
	Name     string
	FullPath string
	Type     ResourceType
	DataSize uint64
	Data     interface{}
}
