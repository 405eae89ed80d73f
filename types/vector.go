package types

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 is a 3 component float64 vector. All methods take and return values;
// none of them mutate the receiver or the operand.
type Vec3 r3.Vec

// Define a 3 component vector.
func XYZ(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Splat returns a vector with all components set to s.
func Splat(s float64) Vec3 {
	return Vec3{X: s, Y: s, Z: s}
}

// Add a vector.
func (v Vec3) Add(v2 Vec3) Vec3 {
	return Vec3(r3.Add(r3.Vec(v), r3.Vec(v2)))
}

// Subtract a vector.
func (v Vec3) Sub(v2 Vec3) Vec3 {
	return Vec3(r3.Sub(r3.Vec(v), r3.Vec(v2)))
}

// Negate vector.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Multiply two vectors elementwise.
func (v Vec3) Mul(v2 Vec3) Vec3 {
	return Vec3{v.X * v2.X, v.Y * v2.Y, v.Z * v2.Z}
}

// Divide two vectors elementwise.
func (v Vec3) Div(v2 Vec3) Vec3 {
	return Vec3{v.X / v2.X, v.Y / v2.Y, v.Z / v2.Z}
}

// Multiply vector with a scalar.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3(r3.Scale(s, r3.Vec(v)))
}

// Divide vector by a scalar.
func (v Vec3) DivScalar(s float64) Vec3 {
	return Vec3{v.X / s, v.Y / s, v.Z / s}
}

// Calculate dot product of 2 vectors.
func (v Vec3) Dot(v2 Vec3) float64 {
	return r3.Dot(r3.Vec(v), r3.Vec(v2))
}

// Calculate cross product of 2 vectors.
func (v Vec3) Cross(v2 Vec3) Vec3 {
	return Vec3(r3.Cross(r3.Vec(v), r3.Vec(v2)))
}

// Get vector length.
func (v Vec3) Len() float64 {
	return r3.Norm(r3.Vec(v))
}

// Get squared vector length.
func (v Vec3) LenSq() float64 {
	return r3.Norm2(r3.Vec(v))
}

// Normalize vector. The caller must ensure v is not the zero vector; the
// components of a normalized zero vector are NaN.
func (v Vec3) Normalize() Vec3 {
	return v.DivScalar(v.Len())
}

// Lerp blends between v (t=0) and v2 (t=1).
func (v Vec3) Lerp(v2 Vec3, t float64) Vec3 {
	return v.Scale(1 - t).Add(v2.Scale(t))
}

// Axis returns the component for axis 0 (X), 1 (Y) or 2 (Z).
func (v Vec3) Axis(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	return v.Z
}

// MaxComponent returns the largest of the three components.
func (v Vec3) MaxComponent() float64 {
	return math.Max(v.X, math.Max(v.Y, v.Z))
}

// IsFinite returns false if any component is NaN or infinite.
func (v Vec3) IsFinite() bool {
	for i := 0; i < 3; i++ {
		c := v.Axis(i)
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// ApproxEqual compares two vectors componentwise using the given tolerance.
func (v Vec3) ApproxEqual(v2 Vec3, eps float64) bool {
	return math.Abs(v.X-v2.X) <= eps && math.Abs(v.Y-v2.Y) <= eps && math.Abs(v.Z-v2.Z) <= eps
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}

// Calc min component from two vectors
func MinVec3(v1, v2 Vec3) Vec3 {
	return Vec3{math.Min(v1.X, v2.X), math.Min(v1.Y, v2.Y), math.Min(v1.Z, v2.Z)}
}

// Calc max component from two vectors
func MaxVec3(v1, v2 Vec3) Vec3 {
	return Vec3{math.Max(v1.X, v2.X), math.Max(v1.Y, v2.Y), math.Max(v1.Z, v2.Z)}
}
