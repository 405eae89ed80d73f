package scene

import (
	"fmt"
	"sort"

	"github.com/leomartinch/raytracer/types"
)

// DefaultCenterMesh is the mesh placed in the middle of the cornell preset
// when no other mesh is requested.
const DefaultCenterMesh = "sphere"

type presetFn func(centerMesh string) []ObjectConfig

var presets = map[string]presetFn{
	"cornell":  cornellBox,
	"lightbox": lightBox,
}

// PresetNames returns the names of the built-in scenes.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns the object list for a built-in scene. centerMesh selects
// the mesh placed at the origin for scenes that have one.
func Preset(name, centerMesh string) ([]ObjectConfig, error) {
	fn, exists := presets[name]
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	if centerMesh == "" {
		centerMesh = DefaultCenterMesh
	}
	return fn(centerMesh), nil
}

func diffuse(r, g, b float64) Material {
	return Material{Color: types.XYZ(r, g, b), Albedo: 1, Roughness: 1}
}

// A box built from five cube walls lit by an emissive ceiling, with a smooth
// shaded mesh in the middle. The camera looks down +Y from (0, -3, 0).
func cornellBox(centerMesh string) []ObjectConfig {
	light := diffuse(1, 1, 1)
	light.EmissionStrength = 1

	center := diffuse(1, 1, 1)
	center.Smooth = true

	return []ObjectConfig{
		{"left_wall", "cube", Transform{Translation: types.XYZ(-4, 0, 0), Rotation: Rotate(0, 0, 0), Scale: 2}, diffuse(1, 0, 0)},
		{"right_wall", "cube", Transform{Translation: types.XYZ(4, 0, 0), Rotation: Rotate(0, 0, 0), Scale: 2}, diffuse(0, 0, 1)},
		{"bottom_wall", "cube", Transform{Translation: types.XYZ(0, 0, -4), Rotation: Rotate(0, 0, 0), Scale: 2}, diffuse(0, 1, 0)},
		{"top_wall", "cube", Transform{Translation: types.XYZ(0, 0, 4), Rotation: Rotate(0, 0, 0), Scale: 2}, light},
		{"back_wall", "cube", Transform{Translation: types.XYZ(0, 4, 0), Rotation: Rotate(0, 0, 0), Scale: 2}, diffuse(1, 1, 1)},
		{"center", centerMesh, Transform{Translation: types.XYZ(0, 0, 0), Rotation: Rotate(0, 0, 0), Scale: 0.75}, center},
	}
}

// A single emissive panel covering the default camera's whole field of
// view. Useful for smoke renders: every pixel should come out in the panel
// color.
func lightBox(_ string) []ObjectConfig {
	return []ObjectConfig{
		{
			Name:      "panel",
			Mesh:      "cube",
			Transform: Transform{Translation: types.XYZ(0, 4, 0), Scale: 6},
			Material:  Material{Color: types.XYZ(1, 0.8, 0.6), EmissionStrength: 1, Roughness: 0},
		},
	}
}
