package systems

import (
	"errors"
	"fmt"

	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/assets"
	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/core"
	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/renderer"
	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/renderer/metadata"
)

type TextureSystemConfig struct {
	// MaxTextureCount is the number of texture units the backend offers.
	// The system warns past the bound but does not enforce it; staying
	// within it is the caller's responsibility.
	MaxTextureCount uint32
}

// TextureSystem is the texture registry: it loads images, uploads them to
// the backend and maps a tag to the backend handle and the texture unit slot
// the texture binds to. Slots are assigned in load order.
type TextureSystem struct {
	config       *TextureSystemConfig
	entries      []metadata.TextureEntry
	assetManager *assets.AssetManager
	renderer     *renderer.Renderer
}

func NewTextureSystem(config *TextureSystemConfig, am *assets.AssetManager, r *renderer.Renderer) (*TextureSystem, error) {
	if config.MaxTextureCount == 0 {
		err := fmt.Errorf("func NewTextureSystem - config.MaxTextureCount must be > 0")
		core.LogError(err.Error())
		return nil, err
	}

	return &TextureSystem{
		config:       config,
		entries:      make([]metadata.TextureEntry, 0, config.MaxTextureCount),
		assetManager: am,
		renderer:     r,
	}, nil
}

// Load decodes the image at path (vertically flipped), uploads it to the
// backend and registers it under tag with slot = the current entry count.
// A decode failure or a channel count other than 3 or 4 is logged and leaves
// the registry unchanged. The uploaded texture is left unbound.
func (ts *TextureSystem) Load(path, tag string) error {
	if uint32(len(ts.entries)) >= ts.config.MaxTextureCount {
		core.LogWarn("loading texture '%s' past the %d available texture units", tag, ts.config.MaxTextureCount)
	}

	resource, err := ts.assetManager.LoadAsset(path, metadata.ResourceTypeImage, &metadata.ImageResourceParams{
		FlipY: true,
	})
	if err != nil {
		core.LogError("could not load image '%s' for texture '%s': %s", path, tag, err)
		return err
	}
	defer ts.assetManager.UnloadAsset(resource)

	data, ok := resource.Data.(*metadata.ImageResourceData)
	if !ok {
		err := fmt.Errorf("image resource '%s' holds no image data", path)
		core.LogError(err.Error())
		return err
	}

	if data.ChannelCount != 3 && data.ChannelCount != 4 {
		err := fmt.Errorf("%w: texture '%s' has %d channels, want 3 or 4",
			core.ErrUnsupportedChannels, tag, data.ChannelCount)
		core.LogError(err.Error())
		return err
	}

	handle, err := ts.renderer.TextureCreate(data.Pixels, data.Width, data.Height, data.ChannelCount)
	if err != nil {
		core.LogError("backend upload failed for texture '%s': %s", tag, err)
		return err
	}

	ts.entries = append(ts.entries, metadata.TextureEntry{
		Tag:          tag,
		Handle:       handle,
		Slot:         len(ts.entries),
		Width:        data.Width,
		Height:       data.Height,
		ChannelCount: data.ChannelCount,
	})

	core.LogInfo("loaded texture '%s' from %s (%dx%d, %d channels) into slot %d",
		tag, path, data.Width, data.Height, data.ChannelCount, len(ts.entries)-1)

	return nil
}

// BindAll binds every registered texture to the texture unit equal to its
// slot. Must run before any draw that samples textures; the bindings stay
// valid for subsequent draws as long as the registry does not change.
func (ts *TextureSystem) BindAll() {
	for _, entry := range ts.entries {
		ts.renderer.TextureBindUnit(uint32(entry.Slot), entry.Handle)
	}
}

// FindHandle returns the backend handle registered under tag, or -1 when the
// tag is absent. Callers must check for -1 before using the result.
func (ts *TextureSystem) FindHandle(tag string) int {
	for _, entry := range ts.entries {
		if entry.Tag == tag {
			return int(entry.Handle)
		}
	}
	return -1
}

// FindSlot returns the texture unit slot registered under tag, or -1 when
// the tag is absent.
func (ts *TextureSystem) FindSlot(tag string) int {
	for _, entry := range ts.entries {
		if entry.Tag == tag {
			return entry.Slot
		}
	}
	return -1
}

// Count returns the number of registered textures.
func (ts *TextureSystem) Count() int {
	return len(ts.entries)
}

// ReleaseAll destroys every backend texture and empties the registry.
// Intended for scene teardown.
func (ts *TextureSystem) ReleaseAll() {
	for _, entry := range ts.entries {
		ts.renderer.TextureDestroy(entry.Handle)
	}
	ts.entries = ts.entries[:0]
}

// IsUnsupportedFormat reports whether err came from a rejected channel count.
func IsUnsupportedFormat(err error) bool {
	return errors.Is(err, core.ErrUnsupportedChannels)
}
