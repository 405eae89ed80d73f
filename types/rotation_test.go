package types

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestRotateAxisFullTurn(t *testing.T) {
	axes := []Vec3{AxisX, AxisY, AxisZ, XYZ(1, 1, 1), XYZ(-0.3, 2, 0.7)}
	points := []Vec3{XYZ(1, 0, 0), XYZ(1, 2, 3), XYZ(-4, 0.5, 9)}

	for axisIndex, axis := range axes {
		for pointIndex, p := range points {
			got := RotateAxis(p, axis, 2*math.Pi)
			if !got.ApproxEqual(p, 1e-9) {
				t.Fatalf("[axis %d, point %d] expected 360 degree rotation to be the identity; got %v for %v", axisIndex, pointIndex, got, p)
			}

			angle := 0.73
			got = RotateAxis(RotateAxis(p, axis, angle), axis, -angle)
			if !got.ApproxEqual(p, 1e-9) {
				t.Fatalf("[axis %d, point %d] expected rotating by θ and -θ to be the identity; got %v for %v", axisIndex, pointIndex, got, p)
			}
		}
	}
}

func TestRotateAxisMatchesGonum(t *testing.T) {
	type spec struct {
		p     Vec3
		axis  Vec3
		angle float64
	}
	specs := []spec{
		{XYZ(1, 0, 0), AxisZ, math.Pi / 2},
		{XYZ(1, 2, 3), XYZ(0, 1, 1), 1.2},
		{XYZ(-2, 0.5, 4), XYZ(3, -1, 2), -2.5},
	}

	for index, s := range specs {
		exp := Vec3(r3.NewRotation(s.angle, r3.Vec(s.axis.Normalize())).Rotate(r3.Vec(s.p)))
		got := RotateAxis(s.p, s.axis, s.angle)
		if !got.ApproxEqual(exp, 1e-9) {
			t.Fatalf("[spec %d] expected %v; got %v", index, exp, got)
		}
	}
}

func TestRotateEulerOrder(t *testing.T) {
	// X first: (0,1,0) -> (0,0,1); then Z leaves it alone.
	got := RotateEuler(XYZ(0, 1, 0), XYZ(90, 0, 90))
	exp := XYZ(0, 0, 1)
	if !got.ApproxEqual(exp, 1e-9) {
		t.Fatalf("expected %v; got %v", exp, got)
	}

	// Z only: (1,0,0) -> (0,1,0)
	got = RotateEuler(XYZ(1, 0, 0), XYZ(0, 0, 90))
	exp = XYZ(0, 1, 0)
	if !got.ApproxEqual(exp, 1e-9) {
		t.Fatalf("expected %v; got %v", exp, got)
	}
}
