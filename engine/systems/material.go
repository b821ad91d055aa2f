package systems

import (
	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/core"
	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/math"
	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/renderer/metadata"
)

// MaterialSystem is the material registry: named immutable
// diffuse/specular/shininess tuples registered during scene preparation.
type MaterialSystem struct {
	materials []metadata.Material
}

func NewMaterialSystem() *MaterialSystem {
	return &MaterialSystem{
		materials: make([]metadata.Material, 0, 16),
	}
}

// Register appends a material under tag. Uniqueness is not enforced; on
// lookup the first registration wins, so callers must choose distinct tags.
func (ms *MaterialSystem) Register(tag string, diffuse, specular math.Vec3, shininess float32) {
	if shininess < 0 {
		core.LogWarn("material '%s' registered with negative shininess %f, clamping to 0", tag, shininess)
		shininess = 0
	}
	ms.materials = append(ms.materials, metadata.Material{
		Tag:           tag,
		DiffuseColor:  diffuse,
		SpecularColor: specular,
		Shininess:     shininess,
	})
}

// Find returns the first material registered under tag. The second return
// is false whenever no entry matches, mirroring the texture registry's miss
// contract.
func (ms *MaterialSystem) Find(tag string) (metadata.Material, bool) {
	for _, material := range ms.materials {
		if material.Tag == tag {
			return material, true
		}
	}
	return metadata.Material{}, false
}

// Count returns the number of registered materials.
func (ms *MaterialSystem) Count() int {
	return len(ms.materials)
}
