package metadata

import "github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/math"

// SceneConfig is the declarative manifest a scene is prepared from: which
// texture files to load under which tags, which materials exist and the
// lighting rig. It is TOML-compatible so that scenes can be described in an
// asset file instead of code.
type SceneConfig struct {
	Textures  []TextureConfig  `toml:"textures"`
	Materials []MaterialConfig `toml:"materials"`
	Lighting  LightingConfig   `toml:"lighting"`
	Camera    CameraConfig     `toml:"camera"`
}

// TextureConfig maps an image file path to its registry tag. Tags must be
// unique and images must decode to 3 or 4 channels.
type TextureConfig struct {
	Path string `toml:"path"`
	Tag  string `toml:"tag"`
}

// MaterialConfig is the manifest form of a Material.
type MaterialConfig struct {
	Tag       string     `toml:"tag"`
	Diffuse   [3]float32 `toml:"diffuse"`
	Specular  [3]float32 `toml:"specular"`
	Shininess float32    `toml:"shininess"`
}

// Material converts the config into its registry form.
func (mc MaterialConfig) Material() Material {
	return Material{
		Tag:           mc.Tag,
		DiffuseColor:  math.NewVec3(mc.Diffuse[0], mc.Diffuse[1], mc.Diffuse[2]),
		SpecularColor: math.NewVec3(mc.Specular[0], mc.Specular[1], mc.Specular[2]),
		Shininess:     mc.Shininess,
	}
}

// LightingConfig holds the fixed lighting rig: one directional light and a
// small number of point lights.
type LightingConfig struct {
	Directional DirectionalLightConfig `toml:"directional"`
	Points      []PointLightConfig     `toml:"point"`
}

type DirectionalLightConfig struct {
	Direction [3]float32 `toml:"direction"`
	Ambient   [3]float32 `toml:"ambient"`
	Diffuse   [3]float32 `toml:"diffuse"`
	Specular  [3]float32 `toml:"specular"`
	Active    bool       `toml:"active"`
}

func (dc DirectionalLightConfig) Light() DirectionalLight {
	return DirectionalLight{
		Direction: math.NewVec3(dc.Direction[0], dc.Direction[1], dc.Direction[2]),
		Ambient:   math.NewVec3(dc.Ambient[0], dc.Ambient[1], dc.Ambient[2]),
		Diffuse:   math.NewVec3(dc.Diffuse[0], dc.Diffuse[1], dc.Diffuse[2]),
		Specular:  math.NewVec3(dc.Specular[0], dc.Specular[1], dc.Specular[2]),
		Active:    dc.Active,
	}
}

type PointLightConfig struct {
	Position [3]float32 `toml:"position"`
	Ambient  [3]float32 `toml:"ambient"`
	Diffuse  [3]float32 `toml:"diffuse"`
	Specular [3]float32 `toml:"specular"`
	Active   bool       `toml:"active"`
}

func (pc PointLightConfig) Light() PointLight {
	return PointLight{
		Position: math.NewVec3(pc.Position[0], pc.Position[1], pc.Position[2]),
		Ambient:  math.NewVec3(pc.Ambient[0], pc.Ambient[1], pc.Ambient[2]),
		Diffuse:  math.NewVec3(pc.Diffuse[0], pc.Diffuse[1], pc.Diffuse[2]),
		Specular: math.NewVec3(pc.Specular[0], pc.Specular[1], pc.Specular[2]),
		Active:   pc.Active,
	}
}

// CameraConfig places the scene camera.
type CameraConfig struct {
	Position [3]float32 `toml:"position"`
	Target   [3]float32 `toml:"target"`
	// FOVDegrees is the vertical field of view. Zero means the default.
	FOVDegrees float32 `toml:"fov_degrees"`
}
