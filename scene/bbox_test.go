package scene

import (
	"math"
	"testing"

	"github.com/leomartinch/raytracer/types"
)

func TestBBoxEnclosesVertices(t *testing.T) {
	specs := [][]types.Vec3{
		// Entirely on the positive side of the origin
		{types.XYZ(2, 3, 4), types.XYZ(5, 6, 7), types.XYZ(3, 9, 5)},
		// Entirely on the negative side of the origin
		{types.XYZ(-2, -3, -4), types.XYZ(-5, -6, -7)},
		// Straddling the origin
		{types.XYZ(-1, 2, -3), types.XYZ(4, -5, 6)},
		// Single vertex
		{types.XYZ(1, 1, 1)},
	}

	for index, verts := range specs {
		bbox := NewBBox(verts)
		for vIndex, v := range verts {
			if !bbox.Contains(v) {
				t.Fatalf("[spec %d] expected bbox %v-%v to contain vertex %d %v", index, bbox.Min, bbox.Max, vIndex, v)
			}
		}
	}

	// The box must be tight; a mesh away from the origin must not include it
	bbox := NewBBox(specs[0])
	if bbox.Contains(types.XYZ(0, 0, 0)) {
		t.Fatalf("expected bbox %v-%v not to include the origin", bbox.Min, bbox.Max)
	}
	if bbox.Min != types.XYZ(2, 3, 4) || bbox.Max != types.XYZ(5, 9, 7) {
		t.Fatalf("expected bbox (2,3,4)-(5,9,7); got %v-%v", bbox.Min, bbox.Max)
	}
}

func TestEmptyBBox(t *testing.T) {
	bbox := NewBBox(nil)
	if !bbox.IsEmpty() {
		t.Fatalf("expected bbox for no vertices to be empty; got %v-%v", bbox.Min, bbox.Max)
	}

	unit := NewBBox([]types.Vec3{types.XYZ(-1, -1, -1), types.XYZ(1, 1, 1)})
	if got := bbox.Union(unit); got != unit {
		t.Fatalf("expected union with empty box to be the identity; got %v-%v", got.Min, got.Max)
	}
	if c := unit.Center(); c != types.XYZ(0, 0, 0) {
		t.Fatalf("expected center at origin; got %v", c)
	}
}

func TestBBoxIntersect(t *testing.T) {
	bbox := BBox{Min: types.XYZ(-1, -1, -1), Max: types.XYZ(1, 1, 1)}

	type spec struct {
		origin types.Vec3
		dir    types.Vec3
		exp    bool
	}
	specs := []spec{
		// Straight through the interior
		{types.XYZ(-5, 0, 0), types.XYZ(1, 0, 0), true},
		// Diagonal through a corner region
		{types.XYZ(-5, -5, -5), types.XYZ(1, 1, 1).Normalize(), true},
		// Parallel to the X slab but offset outside the Y slab
		{types.XYZ(-5, 2, 0), types.XYZ(1, 0, 0), false},
		// Parallel and offset outside the Z slab
		{types.XYZ(-5, 0, -1.5), types.XYZ(1, 0, 0), false},
		// Box is behind the ray
		{types.XYZ(5, 0, 0), types.XYZ(1, 0, 0), false},
		// Origin inside the box
		{types.XYZ(0, 0, 0), types.XYZ(0, 0, 1), true},
		// Slanted ray missing the box
		{types.XYZ(-5, 0, 0), types.XYZ(1, 1, 0).Normalize(), false},
		// Grazing a face
		{types.XYZ(-5, 1, 0), types.XYZ(1, 0, 0), true},
	}

	for index, s := range specs {
		if got := bbox.Intersect(s.origin, s.dir); got != s.exp {
			t.Fatalf("[spec %d] expected intersect(%v, %v) to be %t; got %t", index, s.origin, s.dir, s.exp, got)
		}
	}
}

func TestFlatBBoxIntersect(t *testing.T) {
	// A zero-thickness box such as the one enclosing a single quad
	bbox := BBox{Min: types.XYZ(-1, 2, -1), Max: types.XYZ(1, 2, 1)}
	if !bbox.Intersect(types.XYZ(0, 0, 0), types.XYZ(0, 1, 0)) {
		t.Fatal("expected ray to hit the flat box")
	}
	if bbox.Intersect(types.XYZ(0, 0, 0), types.XYZ(0, -1, 0)) {
		t.Fatal("expected ray pointing away to miss the flat box")
	}
	if math.IsInf(bbox.Center().Y, 0) {
		t.Fatal("expected finite center")
	}
}
