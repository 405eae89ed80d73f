package scene

import (
	"math"
	"testing"

	"github.com/leomartinch/raytracer/types"
)

func TestCubeVertexNormalsPointOutward(t *testing.T) {
	mesh := cubeMesh()
	transforms := []Transform{
		{Scale: 1},
		{Translation: types.XYZ(5, -2, 7), Rotation: Rotate(30, 45, 60), Scale: 2.5},
	}

	for tIndex, transform := range transforms {
		verts := transform.Apply(mesh.Vertices)
		centroid := types.Vec3{}
		for _, v := range verts {
			centroid = centroid.Add(v)
		}
		centroid = centroid.DivScalar(float64(len(verts)))

		normals := VertexNormals(verts, mesh.Triangles)
		if len(normals) != len(verts) {
			t.Fatalf("[transform %d] expected %d normals; got %d", tIndex, len(verts), len(normals))
		}

		for vIndex, n := range normals {
			if math.Abs(n.Len()-1) > 1e-9 {
				t.Fatalf("[transform %d, vertex %d] expected unit normal; got length %f", tIndex, vIndex, n.Len())
			}
			if n.Dot(verts[vIndex].Sub(centroid)) <= 0 {
				t.Fatalf("[transform %d, vertex %d] expected normal %v to point away from the centroid", tIndex, vIndex, n)
			}
		}
	}
}

func TestVertexNormalsSkipDegenerateFaces(t *testing.T) {
	verts := []types.Vec3{
		types.XYZ(0, 0, 0), types.XYZ(1, 0, 0), types.XYZ(0, 1, 0),
		types.XYZ(2, 2, 2), // only referenced by a zero-area face
		types.XYZ(5, 5, 5), // unreferenced
	}
	tris := [][3]int{{0, 1, 2}, {3, 3, 3}}

	normals := VertexNormals(verts, tris)
	for vIndex := 0; vIndex < 3; vIndex++ {
		if !normals[vIndex].ApproxEqual(types.XYZ(0, 0, 1), 1e-12) {
			t.Fatalf("[vertex %d] expected normal (0,0,1); got %v", vIndex, normals[vIndex])
		}
	}
	for vIndex := 3; vIndex < 5; vIndex++ {
		if normals[vIndex] != (types.Vec3{}) {
			t.Fatalf("[vertex %d] expected zero normal; got %v", vIndex, normals[vIndex])
		}
	}
}
