// Package livingroom describes a fixed living-room scene: a chair with
// cushions and a pillow, a metal cabinet carrying a record player, and
// framed pictures on the wall, lit by soft interior lighting.
package livingroom

import (
	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/math"
	"github.com/SoldierMechanic/CS-330-Comp-Graphic-and-Visualization/engine/renderer/metadata"
)

// DefaultSceneConfig is the built-in manifest used when no scene file is
// present in the asset directory.
func DefaultSceneConfig() *metadata.SceneConfig {
	return &metadata.SceneConfig{
		Textures: []metadata.TextureConfig{
			{Path: "textures/wood.jpg", Tag: "wood"},
			{Path: "textures/fabric.jpg", Tag: "fabric"},
			{Path: "textures/white.jpg", Tag: "white"},
			{Path: "textures/floor.jpg", Tag: "floor"},
			{Path: "textures/pillow.jpg", Tag: "pillow"},
			{Path: "textures/wall.jpg", Tag: "wall"},
			{Path: "textures/metal.jpg", Tag: "metal"},
			{Path: "textures/record_player.jpg", Tag: "record_player"},
			{Path: "textures/turntable.jpg", Tag: "turntable"},
			{Path: "textures/vinyl.jpg", Tag: "vinyl"},
			{Path: "textures/polka.jpg", Tag: "polka"},
			{Path: "textures/picture1.jpg", Tag: "picture1"},
			{Path: "textures/picture2.jpg", Tag: "picture2"},
			{Path: "textures/picture3.jpg", Tag: "picture3"},
			{Path: "textures/picture4.jpg", Tag: "picture4"},
		},
		Materials: []metadata.MaterialConfig{
			{Tag: "wood", Diffuse: [3]float32{0.6, 0.3, 0.1}, Specular: [3]float32{0.2, 0.2, 0.2}, Shininess: 10},
			{Tag: "fabric", Diffuse: [3]float32{0.8, 0.5, 0.5}, Specular: [3]float32{0.1, 0.1, 0.1}, Shininess: 5},
			{Tag: "white", Diffuse: [3]float32{1, 1, 1}, Specular: [3]float32{0.5, 0.5, 0.5}, Shininess: 20},
			{Tag: "floor", Diffuse: [3]float32{0.4, 0.4, 0.4}, Specular: [3]float32{0.2, 0.2, 0.2}, Shininess: 15},
			{Tag: "pillow", Diffuse: [3]float32{1, 1, 1}, Specular: [3]float32{0.5, 0.5, 0.5}, Shininess: 25},
			{Tag: "metal", Diffuse: [3]float32{0.6, 0.6, 0.6}, Specular: [3]float32{0.9, 0.9, 0.9}, Shininess: 128},
			{Tag: "vinyl", Diffuse: [3]float32{0.2, 0.2, 0.2}, Specular: [3]float32{0.7, 0.7, 0.7}, Shininess: 50},
			{Tag: "turntable", Diffuse: [3]float32{0.5, 0.5, 0.5}, Specular: [3]float32{0.8, 0.8, 0.8}, Shininess: 30},
			{Tag: "polka", Diffuse: [3]float32{1, 1, 1}, Specular: [3]float32{0.5, 0.5, 0.5}, Shininess: 10},
			{Tag: "picture", Diffuse: [3]float32{1, 1, 1}, Specular: [3]float32{0.5, 0.5, 0.5}, Shininess: 10},
		},
		Lighting: metadata.LightingConfig{
			// Soft natural interior lighting.
			Directional: metadata.DirectionalLightConfig{
				Direction: [3]float32{-0.3, -1.0, -0.2},
				Ambient:   [3]float32{0.3, 0.3, 0.32},
				Diffuse:   [3]float32{0.5, 0.5, 0.52},
				Specular:  [3]float32{0.3, 0.3, 0.3},
				Active:    true,
			},
			Points: []metadata.PointLightConfig{
				// Warm fill near the cabinet.
				{
					Position: [3]float32{5.0, 8.0, 3.0},
					Ambient:  [3]float32{0.15, 0.15, 0.15},
					Diffuse:  [3]float32{0.6, 0.58, 0.55},
					Specular: [3]float32{0.4, 0.4, 0.4},
					Active:   true,
				},
				// Ambient fill near the chair.
				{
					Position: [3]float32{-9.0, 6.0, 2.0},
					Ambient:  [3]float32{0.2, 0.2, 0.2},
					Diffuse:  [3]float32{0.5, 0.48, 0.46},
					Specular: [3]float32{0.2, 0.2, 0.2},
					Active:   true,
				},
			},
		},
		Camera: metadata.CameraConfig{
			Position:   [3]float32{0, 9, 22},
			Target:     [3]float32{0, 5, 0},
			FOVDegrees: 45,
		},
	}
}

func textured(shape metadata.Shape, scale, rotation, position math.Vec3, texture, material string) metadata.DrawCommand {
	return metadata.DrawCommand{
		Shape:       shape,
		Scale:       scale,
		RotationDeg: rotation,
		Position:    position,
		TextureTag:  texture,
		MaterialTag: material,
		UVScale:     math.NewVec2(1, 1),
	}
}

func colored(shape metadata.Shape, scale, rotation, position math.Vec3, color math.Vec4, material string) metadata.DrawCommand {
	return metadata.DrawCommand{
		Shape:       shape,
		Scale:       scale,
		RotationDeg: rotation,
		Position:    position,
		Color:       color,
		UseColor:    true,
		MaterialTag: material,
		UVScale:     math.NewVec2(1, 1),
	}
}

var noRotation = math.NewVec3Zero()

// Objects returns the fixed, ordered draw list for the living-room scene.
// Order matters only for readability; every command binds its full state.
func Objects() []metadata.DrawCommand {
	commands := []metadata.DrawCommand{
		// Floor and back wall.
		textured(metadata.ShapePlane, math.NewVec3(20, 1, 10), noRotation, math.NewVec3(0, 0, 0), "floor", "floor"),
		textured(metadata.ShapePlane, math.NewVec3(20, 1, 10), math.NewVec3(90, 180, 0), math.NewVec3(0, 10, -5), "white", "white"),
	}

	commands = append(commands, chair()...)
	commands = append(commands, pillow()...)
	commands = append(commands, cabinet()...)
	commands = append(commands, recordPlayer()...)
	commands = append(commands, cup()...)
	commands = append(commands, pictures()...)

	return commands
}

// chair builds the armchair: four splayed legs, seat frame, cushion,
// backrest and armrests.
func chair() []metadata.DrawCommand {
	leg := math.NewVec3(0.2, 4.5, 0.2)
	return []metadata.DrawCommand{
		textured(metadata.ShapeCylinder, leg, math.NewVec3(0, 0, -10), math.NewVec3(-13, 0, 4.5), "wood", "wood"),
		textured(metadata.ShapeCylinder, leg, math.NewVec3(10, 0, -10), math.NewVec3(-13, 0, -1), "wood", "wood"),
		textured(metadata.ShapeCylinder, leg, math.NewVec3(0, 0, 10), math.NewVec3(-6, 0, 4.5), "wood", "wood"),
		textured(metadata.ShapeCylinder, leg, math.NewVec3(10, 0, 10), math.NewVec3(-6, 0, -1), "wood", "wood"),

		textured(metadata.ShapeBox, math.NewVec3(6, 0.3, 5.5), noRotation, math.NewVec3(-9.5, 2.25, 1.75), "wood", "wood"),
		textured(metadata.ShapeBox, math.NewVec3(5.5, 0.8, 5.2), noRotation, math.NewVec3(-9.5, 2.8, 1.75), "fabric", "fabric"),
		textured(metadata.ShapeBox, math.NewVec3(5, 3.5, 0.8), math.NewVec3(-10, 0, 0), math.NewVec3(-9.5, 4.5, -1.2), "fabric", "fabric"),

		textured(metadata.ShapeBox, math.NewVec3(1, 0.3, 5.5), noRotation, math.NewVec3(-12.5, 4.35, 1.75), "wood", "wood"),
		textured(metadata.ShapeBox, math.NewVec3(1, 0.3, 5.5), noRotation, math.NewVec3(-6.5, 4.35, 1.75), "wood", "wood"),
	}
}

// pillow leans against the backrest; the case is drawn slightly proud of
// the plain pillow body so it sits on top.
func pillow() []metadata.DrawCommand {
	return []metadata.DrawCommand{
		textured(metadata.ShapeBox, math.NewVec3(2.5, 3.5, 0.5), math.NewVec3(-10, 0, 0), math.NewVec3(-9.5, 4.5, -0.5), "white", "pillow"),
		textured(metadata.ShapeBox, math.NewVec3(2.5, 3.5, 0.51), math.NewVec3(-10, 0, 0), math.NewVec3(-9.5, 4.5, -0.49), "pillow", "pillow"),
	}
}

// cabinet builds the metal cabinet: four legs, the body and two door panels.
func cabinet() []metadata.DrawCommand {
	leg := math.NewVec3(0.15, 2, 0.15)
	return []metadata.DrawCommand{
		textured(metadata.ShapeBox, leg, noRotation, math.NewVec3(1, 1, 1.5), "metal", "metal"),
		textured(metadata.ShapeBox, leg, noRotation, math.NewVec3(10.5, 1, 1.5), "metal", "metal"),
		textured(metadata.ShapeBox, leg, noRotation, math.NewVec3(1, 1, -1.5), "metal", "metal"),
		textured(metadata.ShapeBox, leg, noRotation, math.NewVec3(10.5, 1, -1.5), "metal", "metal"),

		textured(metadata.ShapeBox, math.NewVec3(10, 4.4, 3.5), noRotation, math.NewVec3(5.75, 4, 0), "metal", "metal"),
		textured(metadata.ShapeBox, math.NewVec3(4.8, 4, 0.1), noRotation, math.NewVec3(3.3, 4, 1.85), "metal", "metal"),
		textured(metadata.ShapeBox, math.NewVec3(4.8, 4, 0.1), noRotation, math.NewVec3(8.3, 4, 1.85), "metal", "metal"),
	}
}

// recordPlayer sits on the cabinet, rotated slightly off axis: the deck and
// lid, the platter (flat color), the vinyl record and the tonearm.
func recordPlayer() []metadata.DrawCommand {
	return []metadata.DrawCommand{
		textured(metadata.ShapeBox, math.NewVec3(3.2, 0.8, 3.2), math.NewVec3(0, -10, 0), math.NewVec3(5.42, 6.65, 0.1), "record_player", "metal"),
		textured(metadata.ShapeBox, math.NewVec3(3.2, 0.8, 3.2), math.NewVec3(90, -10, 0), math.NewVec3(5.75, 8.67, -1.85), "record_player", "metal"),

		colored(metadata.ShapeCylinder, math.NewVec3(1.5, 0.2, 1.5), math.NewVec3(0, -10, 0), math.NewVec3(5.42, 7.1, 0.1), math.NewVec4(0.7, 0.7, 0.7, 1), "metal"),
		textured(metadata.ShapeCylinder, math.NewVec3(1.2, 0.05, 1.2), math.NewVec3(0, -10, 0), math.NewVec3(5.42, 7.35, 0.1), "vinyl", "vinyl"),

		textured(metadata.ShapeBox, math.NewVec3(0.1, 2.2, 0.1), math.NewVec3(-90, -23, 0), math.NewVec3(6.3, 7.45, 0.1), "metal", "metal"),
		textured(metadata.ShapeBox, math.NewVec3(0.23, 0.9, 0.23), math.NewVec3(0, -23, 0), math.NewVec3(6.76, 7.35, -0.9), "metal", "metal"),
	}
}

// cup is a polka-dot mug on the cabinet.
func cup() []metadata.DrawCommand {
	return []metadata.DrawCommand{
		textured(metadata.ShapeCylinder, math.NewVec3(0.4, 1, 0.4), noRotation, math.NewVec3(8.5, 6.25, 0.9), "polka", "polka"),
	}
}

// pictures builds four framed pictures on the back wall; each one is a wood
// frame, a wall-colored mat and the picture face, layered front to back.
func pictures() []metadata.DrawCommand {
	framed := func(frame, mat, face math.Vec3, x, y float32, picture string) []metadata.DrawCommand {
		rotation := math.NewVec3(0, 180, 0)
		return []metadata.DrawCommand{
			textured(metadata.ShapeBox, frame, rotation, math.NewVec3(x, y, -4.9), "wood", "wood"),
			textured(metadata.ShapeBox, mat, rotation, math.NewVec3(x, y, -4.8), "wall", "white"),
			textured(metadata.ShapeBox, face, rotation, math.NewVec3(x, y, -4.7), picture, "picture"),
		}
	}

	commands := framed(math.NewVec3(4.5, 7, 0.1), math.NewVec3(4, 6.5, 0.1), math.NewVec3(3.5, 6, 0.1), -5, 9.5, "picture1")
	commands = append(commands, framed(math.NewVec3(4.5, 4.5, 0.1), math.NewVec3(4, 4, 0.1), math.NewVec3(3.5, 3.5, 0.1), -11, 11.5, "picture2")...)
	commands = append(commands, framed(math.NewVec3(3.2, 5, 0.1), math.NewVec3(2.8, 4.5, 0.1), math.NewVec3(2.5, 4, 0.1), -5.5, 16.5, "picture3")...)
	commands = append(commands, framed(math.NewVec3(6, 5, 0.1), math.NewVec3(5.5, 4.5, 0.1), math.NewVec3(5, 4, 0.1), -11, 17.5, "picture4")...)

	return commands
}
