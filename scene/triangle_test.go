package scene

import (
	"math"
	"testing"

	"github.com/leomartinch/raytracer/types"
)

var (
	triV0 = types.XYZ(0, 0, 0)
	triV1 = types.XYZ(1, 0, 0)
	triV2 = types.XYZ(0, 1, 0)
)

func TestIntersectTriangleCentroid(t *testing.T) {
	centroid := triV0.Add(triV1).Add(triV2).DivScalar(3)
	normal := FaceNormal(triV0, triV1, triV2)
	if normal != types.XYZ(0, 0, 1) {
		t.Fatalf("expected face normal (0,0,1); got %v", normal)
	}

	// Aim at the centroid from the side the normal points to
	origin := centroid.Add(normal.Scale(5))
	hit, ok := IntersectTriangle(origin, normal.Neg(), triV0, triV1, triV2)
	if !ok {
		t.Fatal("expected ray through the centroid to hit the triangle")
	}

	if math.Abs(hit.U+hit.V+hit.W-1) > 1e-12 {
		t.Fatalf("expected barycentric weights to sum to 1; got %f", hit.U+hit.V+hit.W)
	}
	for name, w := range map[string]float64{"u": hit.U, "v": hit.V, "w": hit.W} {
		if w < 0 {
			t.Fatalf("expected barycentric weight %s to be >= 0; got %f", name, w)
		}
		if math.Abs(w-1.0/3) > 1e-9 {
			t.Fatalf("expected barycentric weight %s to be 1/3 at the centroid; got %f", name, w)
		}
	}
	if math.Abs(hit.T-5) > 1e-9 {
		t.Fatalf("expected hit distance 5; got %f", hit.T)
	}
	if !hit.Point.ApproxEqual(centroid, 1e-9) {
		t.Fatalf("expected hit point %v; got %v", centroid, hit.Point)
	}
}

func TestIntersectTriangleMisses(t *testing.T) {
	type spec struct {
		name   string
		origin types.Vec3
		dir    types.Vec3
	}
	specs := []spec{
		{"parallel to plane", types.XYZ(-1, 0.25, 0), types.XYZ(1, 0, 0)},
		{"parallel above plane", types.XYZ(-1, 0.25, 1), types.XYZ(1, 0, 0)},
		{"outside u", types.XYZ(1.5, 0.1, 1), types.XYZ(0, 0, -1)},
		{"outside v", types.XYZ(0.1, -0.5, 1), types.XYZ(0, 0, -1)},
		{"outside u+v", types.XYZ(0.6, 0.6, 1), types.XYZ(0, 0, -1)},
		{"behind origin", types.XYZ(0.25, 0.25, -1), types.XYZ(0, 0, -1)},
		{"origin on plane", types.XYZ(0.25, 0.25, 0), types.XYZ(0, 0, -1)},
	}

	for index, s := range specs {
		if _, ok := IntersectTriangle(s.origin, s.dir, triV0, triV1, triV2); ok {
			t.Fatalf("[spec %d: %s] expected no intersection", index, s.name)
		}
	}
}

func TestIntersectTriangleFromBehind(t *testing.T) {
	// The raw triangle test is two sided; culling happens in the scene query
	hit, ok := IntersectTriangle(types.XYZ(0.25, 0.25, -1), types.XYZ(0, 0, 1), triV0, triV1, triV2)
	if !ok {
		t.Fatal("expected ray from behind to intersect the triangle")
	}
	if !hit.Point.ApproxEqual(types.XYZ(0.25, 0.25, 0), 1e-12) {
		t.Fatalf("expected hit at (0.25, 0.25, 0); got %v", hit.Point)
	}
}

func TestIntersectDegenerateTriangle(t *testing.T) {
	v := types.XYZ(1, 1, 1)
	if _, ok := IntersectTriangle(types.XYZ(1, 1, 5), types.XYZ(0, 0, -1), v, v, v); ok {
		t.Fatal("expected degenerate triangle to never intersect")
	}
}
