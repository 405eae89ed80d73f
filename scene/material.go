package scene

import (
	"fmt"

	"github.com/leomartinch/raytracer/types"
)

// Material describes the surface response of a scene object.
type Material struct {
	// Base color; each channel in [0, 1].
	Color types.Vec3

	// Fraction of incoming light that is reflected.
	Albedo float64

	// Blend factor between a perfect mirror (0) and a fully diffuse (1)
	// reflection.
	Roughness float64

	// Scaler for light emitted by the surface; emitted radiance is
	// Color * EmissionStrength.
	EmissionStrength float64

	// Interpolate vertex normals across triangles.
	Smooth bool
}

// Emission returns the radiance emitted by the surface.
func (m Material) Emission() types.Vec3 {
	return m.Color.Scale(m.EmissionStrength)
}

// IsEmissive returns true if the surface emits light.
func (m Material) IsEmissive() bool {
	return m.EmissionStrength > 0 && m.Color.MaxComponent() > 0
}

// Validate checks that all material parameters are within range.
func (m Material) Validate() error {
	for axis, name := range []string{"red", "green", "blue"} {
		if c := m.Color.Axis(axis); c < 0 || c > 1 {
			return fmt.Errorf("material: %s channel %v outside [0, 1]", name, c)
		}
	}
	if m.Roughness < 0 || m.Roughness > 1 {
		return fmt.Errorf("material: roughness %v outside [0, 1]", m.Roughness)
	}
	if m.Albedo < 0 {
		return fmt.Errorf("material: negative albedo %v", m.Albedo)
	}
	if m.EmissionStrength < 0 {
		return fmt.Errorf("material: negative emission strength %v", m.EmissionStrength)
	}
	return nil
}
