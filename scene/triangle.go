package scene

import (
	"math"

	"github.com/leomartinch/raytracer/types"
)

// Determinants and hit distances below this value are rejected.
const intersectEpsilon = 1e-8

// TriangleHit describes a ray-triangle intersection.
type TriangleHit struct {
	// Distance along the ray direction (in units of the direction length).
	T float64

	// World-space intersection point.
	Point types.Vec3

	// Barycentric weights for v1 (U), v2 (V) and v0 (W); U+V+W = 1.
	U, V, W float64
}

// IntersectTriangle tests a ray against triangle (v0, v1, v2) using the
// Möller–Trumbore algorithm. Rays parallel to the triangle plane, hits
// outside the triangle and hits behind the ray origin all report false.
func IntersectTriangle(origin, dir, v0, v1, v2 types.Vec3) (TriangleHit, bool) {
	e1 := v1.Sub(v0)
	e2 := v2.Sub(v0)

	p := dir.Cross(e2)
	det := e1.Dot(p)
	if math.Abs(det) < intersectEpsilon {
		return TriangleHit{}, false
	}

	invDet := 1.0 / det
	s := origin.Sub(v0)

	u := s.Dot(p) * invDet
	if u < 0 || u > 1 {
		return TriangleHit{}, false
	}

	q := s.Cross(e1)
	v := dir.Dot(q) * invDet
	if v < 0 || u+v > 1 {
		return TriangleHit{}, false
	}

	t := e2.Dot(q) * invDet
	if t <= intersectEpsilon {
		return TriangleHit{}, false
	}

	return TriangleHit{
		T:     t,
		Point: origin.Add(dir.Scale(t)),
		U:     u,
		V:     v,
		W:     1 - u - v,
	}, true
}

// FaceNormal returns the unit normal of triangle (v0, v1, v2) following its
// winding order.
func FaceNormal(v0, v1, v2 types.Vec3) types.Vec3 {
	return v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
}
