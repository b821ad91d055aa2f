package metadata

// MaxTextureUnits is the number of simultaneous texture units the backend
// guarantees. The registry does not enforce the bound itself; callers must
// not register more textures than units.
const MaxTextureUnits = 16

// TextureHandle identifies a backend texture object. Zero is never returned
// for a successfully created texture.
type TextureHandle uint32

// TextureEntry associates a human-readable tag with a backend texture handle
// and the texture unit slot it binds to. An entry only exists for fully
// decoded and uploaded textures; there are no partial entries.
type TextureEntry struct {
	// Tag is the unique lookup key for the texture.
	Tag string
	// Handle is the backend texture object.
	Handle TextureHandle
	// Slot is the texture unit index, equal to the load order of the entry.
	Slot         int
	Width        uint32
	Height       uint32
	ChannelCount uint8
}

// ImageResourceData is the decoded form of an image asset.
type ImageResourceData struct {
	Pixels       []uint8
	Width        uint32
	Height       uint32
	ChannelCount uint8
}

// ImageResourceParams controls image decoding.
type ImageResourceParams struct {
	// FlipY flips the image vertically during decode to match the rendering
	// convention of texture coordinates originating at the bottom left.
	FlipY bool
}
