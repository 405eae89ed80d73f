package types

import "math"

// World axes.
var (
	AxisX = Vec3{X: 1}
	AxisY = Vec3{Y: 1}
	AxisZ = Vec3{Z: 1}
)

// Rotate point p by angle (radians) around axis using Rodrigues' formula. The
// point is split into a component parallel to the axis, which is unaffected,
// and a perpendicular component that is rotated in the plane spanned by
// itself and axis x p.
func RotateAxis(p, axis Vec3, angle float64) Vec3 {
	axis = axis.Normalize()

	parallel := axis.Scale(axis.Dot(p))
	perpendicular := p.Sub(parallel)
	cross := axis.Cross(p)

	sin, cos := math.Sincos(angle)
	return perpendicular.Scale(cos).Add(cross.Scale(sin)).Add(parallel)
}

// Rotate point p about the world X, then Y, then Z axes. Angles are
// specified in degrees.
func RotateEuler(p, degrees Vec3) Vec3 {
	p = RotateAxis(p, AxisX, Radians(degrees.X))
	p = RotateAxis(p, AxisY, Radians(degrees.Y))
	return RotateAxis(p, AxisZ, Radians(degrees.Z))
}

// Convert degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
