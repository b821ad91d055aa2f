package systems

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/assets"
	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/math"
	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/renderer"
	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/renderer/metadata"
)

// fakeBackend records texture calls and hands out increasing handles.
type fakeBackend struct {
	nextHandle metadata.TextureHandle
	uploads    []textureUpload
	bound      map[uint32]metadata.TextureHandle
	destroyed  []metadata.TextureHandle
}

type textureUpload struct {
	handle       metadata.TextureHandle
	width        uint32
	height       uint32
	channelCount uint8
	pixelBytes   int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		nextHandle: 1,
		bound:      make(map[uint32]metadata.TextureHandle),
	}
}

func (fb *fakeBackend) Initialize(appName string, width, height uint32) error { return nil }
func (fb *fakeBackend) Shutdown() error                                       { return nil }
func (fb *fakeBackend) BeginFrame(r, g, b, a float32) error                   { return nil }
func (fb *fakeBackend) EndFrame() error                                       { return nil }
func (fb *fakeBackend) Resized(width, height uint32)                          {}

func (fb *fakeBackend) TextureCreate(pixels []uint8, width, height uint32, channelCount uint8) (metadata.TextureHandle, error) {
	handle := fb.nextHandle
	fb.nextHandle++
	fb.uploads = append(fb.uploads, textureUpload{
		handle:       handle,
		width:        width,
		height:       height,
		channelCount: channelCount,
		pixelBytes:   len(pixels),
	})
	return handle, nil
}

func (fb *fakeBackend) TextureBindUnit(unit uint32, handle metadata.TextureHandle) {
	fb.bound[unit] = handle
}

func (fb *fakeBackend) TextureDestroy(handle metadata.TextureHandle) {
	fb.destroyed = append(fb.destroyed, handle)
}

// fakeShader records the last value written to every uniform name.
type fakeShader struct {
	mats     map[string]math.Mat4
	vec2s    map[string]math.Vec2
	vec3s    map[string]math.Vec3
	vec4s    map[string]math.Vec4
	floats   map[string]float32
	ints     map[string]int32
	bools    map[string]bool
	samplers map[string]int32
}

func newFakeShader() *fakeShader {
	return &fakeShader{
		mats:     make(map[string]math.Mat4),
		vec2s:    make(map[string]math.Vec2),
		vec3s:    make(map[string]math.Vec3),
		vec4s:    make(map[string]math.Vec4),
		floats:   make(map[string]float32),
		ints:     make(map[string]int32),
		bools:    make(map[string]bool),
		samplers: make(map[string]int32),
	}
}

func (fs *fakeShader) Use()     {}
func (fs *fakeShader) Destroy() {}

func (fs *fakeShader) SetMat4(name string, value math.Mat4) { fs.mats[name] = value }
func (fs *fakeShader) SetVec2(name string, value math.Vec2) { fs.vec2s[name] = value }
func (fs *fakeShader) SetVec3(name string, value math.Vec3) { fs.vec3s[name] = value }
func (fs *fakeShader) SetVec4(name string, value math.Vec4) { fs.vec4s[name] = value }
func (fs *fakeShader) SetFloat(name string, value float32)  { fs.floats[name] = value }
func (fs *fakeShader) SetInt(name string, value int32)      { fs.ints[name] = value }
func (fs *fakeShader) SetBool(name string, value bool)      { fs.bools[name] = value }
func (fs *fakeShader) SetSampler(name string, unit int32)   { fs.samplers[name] = unit }

// fakeMeshes records load and draw calls per shape.
type fakeMeshes struct {
	loaded []string
	drawn  []string
}

func (fm *fakeMeshes) LoadPlaneMesh()    { fm.loaded = append(fm.loaded, "plane") }
func (fm *fakeMeshes) LoadBoxMesh()      { fm.loaded = append(fm.loaded, "box") }
func (fm *fakeMeshes) LoadCylinderMesh() { fm.loaded = append(fm.loaded, "cylinder") }
func (fm *fakeMeshes) LoadSphereMesh()   { fm.loaded = append(fm.loaded, "sphere") }
func (fm *fakeMeshes) LoadConeMesh()     { fm.loaded = append(fm.loaded, "cone") }

func (fm *fakeMeshes) DrawPlaneMesh()    { fm.drawn = append(fm.drawn, "plane") }
func (fm *fakeMeshes) DrawBoxMesh()      { fm.drawn = append(fm.drawn, "box") }
func (fm *fakeMeshes) DrawCylinderMesh() { fm.drawn = append(fm.drawn, "cylinder") }
func (fm *fakeMeshes) DrawSphereMesh()   { fm.drawn = append(fm.drawn, "sphere") }
func (fm *fakeMeshes) DrawConeMesh()     { fm.drawn = append(fm.drawn, "cone") }

func (fm *fakeMeshes) Dispose() {}

type testRig struct {
	renderer *renderer.Renderer
	backend  *fakeBackend
	shader   *fakeShader
	meshes   *fakeMeshes
	assets   *assets.AssetManager
	assetDir string
}

func newTestRig(t *testing.T) *testRig {
	t.Helper()

	backend := newFakeBackend()
	shader := newFakeShader()
	meshes := &fakeMeshes{}
	dir := t.TempDir()

	return &testRig{
		renderer: renderer.New(backend, shader, meshes),
		backend:  backend,
		shader:   shader,
		meshes:   meshes,
		assets:   assets.NewAssetManager(dir),
		assetDir: dir,
	}
}

// writeOpaquePNG writes a fully opaque truecolor image; it decodes to three
// channels.
func writeOpaquePNG(t *testing.T, dir, name string, width, height int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(40 * x), G: uint8(40 * y), B: 200, A: 255})
		}
	}
	return writePNG(t, dir, name, img)
}

// writeAlphaPNG writes an image with a translucent pixel; it decodes to four
// channels.
func writeAlphaPNG(t *testing.T, dir, name string, width, height int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: uint8(40 * x), B: uint8(40 * y), A: 255})
		}
	}
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 0, B: 0, A: 128})
	return writePNG(t, dir, name, img)
}

// writeGrayPNG writes a single-channel image; the texture registry rejects
// it.
func writeGrayPNG(t *testing.T, dir, name string, width, height int) string {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(30 * (x + y))})
		}
	}
	return writePNG(t, dir, name, img)
}

func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return name
}
