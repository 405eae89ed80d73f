package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/leomartinch/raytracer/types"
)

var (
	ErrInvalidScale     = errors.New("transform: scale must be positive")
	ErrInvalidTransform = errors.New("transform: non-finite translation or rotation")
)

// Transform places a mesh in world space.
type Transform struct {
	Translation types.Vec3

	// Euler angles in degrees, applied about world X, then Y, then Z. A nil
	// rotation skips the rotation step only; scale and translation are
	// always applied.
	Rotation *types.Vec3

	// Uniform scale factor; must be positive.
	Scale float64
}

// Rotate returns a pointer to the given Euler angles; it is a helper for
// writing Transform literals.
func Rotate(x, y, z float64) *types.Vec3 {
	v := types.XYZ(x, y, z)
	return &v
}

// Validate checks that the transform maps finite vertices to finite vertices
// without collapsing or mirroring them.
func (t Transform) Validate() error {
	if !(t.Scale > 0) || math.IsInf(t.Scale, 1) {
		return fmt.Errorf("%w; got %v", ErrInvalidScale, t.Scale)
	}
	if !t.Translation.IsFinite() || (t.Rotation != nil && !t.Rotation.IsFinite()) {
		return ErrInvalidTransform
	}
	return nil
}

// Apply returns a new vertex list with the transformation applied to each
// vertex: scale about the origin, rotate, then translate. The input slice is
// never modified.
func (t Transform) Apply(vertices []types.Vec3) []types.Vec3 {
	out := make([]types.Vec3, len(vertices))
	for index, v := range vertices {
		v = v.Scale(t.Scale)
		if t.Rotation != nil {
			v = types.RotateEuler(v, *t.Rotation)
		}
		out[index] = v.Add(t.Translation)
	}
	return out
}
