package reader

import (
	"strings"
	"testing"

	"github.com/leomartinch/raytracer/asset"
	"github.com/leomartinch/raytracer/types"
)

func TestVec3Parser(t *testing.T) {
	expError := "unsupported syntax for 'v'; expected 3 arguments; got 0"
	_, err := parseVec3([]string{"v"})
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get %s; got %v", expError, err)
	}

	_, err = parseVec3([]string{"v", "not-a-float", "2", "3"})
	if err == nil {
		t.Fatal("expected to get a parse error")
	}

	v, err := parseVec3([]string{"v", "3.14", "0", "0.4"})
	if err != nil {
		t.Fatal(err)
	}

	expVal := types.XYZ(3.14, 0, 0.4)
	if v != expVal {
		t.Fatalf("expected parsed value to be %v; got %v", expVal, v)
	}
}

func TestSelectFaceCoordinate(t *testing.T) {
	expError := "index out of bounds"
	type spec struct {
		in       string
		listLen  int
		out      int
		expError string
	}
	specs := []spec{
		{"2", 1, -1, expError},
		{"-2", 1, -1, expError},
		{"0", 3, -1, expError},
		{"1", 10, 0, ""}, // indices are 1-based
		{"-1", 10, 9, ""},
	}

	for idx, s := range specs {
		v, err := selectFaceCoordIndex(s.in, s.listLen)
		if s.expError != "" && (err == nil || err.Error() != s.expError) {
			t.Fatalf("[spec %d] expected error %s; got %v", idx, s.expError, err)
		} else if v != s.out {
			t.Fatalf("[spec %d] expected index to be %d; got %d", idx, s.out, v)
		}
	}
}

func TestWavefrontMeshReader(t *testing.T) {
	payload := `
# a unit quad and a triangle
o quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vn 0 0 1
vt 0 0
usemtl ignored
f 1/1/1 2/1/1 3/1/1 4/1/1
v 2 0 0
f -3 -4 -1
`
	mesh, err := Read(asset.NewResourceFromStream("quad.obj", strings.NewReader(payload)))
	if err != nil {
		t.Fatal(err)
	}

	if mesh.Name != "quad" {
		t.Fatalf("expected mesh name %q; got %q", "quad", mesh.Name)
	}
	if len(mesh.Vertices) != 5 {
		t.Fatalf("expected 5 vertices; got %d", len(mesh.Vertices))
	}

	expTris := [][3]int{{0, 1, 2}, {0, 2, 3}, {2, 1, 4}}
	if len(mesh.Triangles) != len(expTris) {
		t.Fatalf("expected %d triangles; got %d", len(expTris), len(mesh.Triangles))
	}
	for index, tri := range expTris {
		if mesh.Triangles[index] != tri {
			t.Fatalf("[tri %d] expected %v; got %v", index, tri, mesh.Triangles[index])
		}
	}
}

func TestWavefrontMeshName(t *testing.T) {
	type spec struct {
		file    string
		payload string
		exp     string
	}
	specs := []spec{
		{"suzanne.obj", "o monke\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n", "monke"},
		{"suzanne.obj", "g head\no ignored\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n", "head"},
		{"suzanne.obj", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n", "suzanne"},
	}

	for specIndex, s := range specs {
		mesh, err := Read(asset.NewResourceFromStream(s.file, strings.NewReader(s.payload)))
		if err != nil {
			t.Fatalf("[spec %d] unexpected error: %v", specIndex, err)
		}
		if mesh.Name != s.exp {
			t.Fatalf("[spec %d] expected mesh name %q; got %q", specIndex, s.exp, mesh.Name)
		}
	}
}

func TestWavefrontMeshReaderErrors(t *testing.T) {
	type spec struct {
		payload  string
		expError string
	}
	specs := []spec{
		{"v 0 0\n", "[broken.obj: 1] error: unsupported syntax for 'v'"},
		{"v 0 0 0\nf 1 2\n", "[broken.obj: 2] error: unsupported syntax for \"f\""},
		{"v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n", "[broken.obj: 4] error: could not parse vertex coord for face argument 2: index out of bounds"},
		{"v 0 0 0\nf /1 /1 /1\n", "does not include a vertex index"},
		{"o\n", "expected 1 argument for object name"},
	}

	for index, s := range specs {
		_, err := Read(asset.NewResourceFromStream("broken.obj", strings.NewReader(s.payload)))
		if err == nil || !strings.Contains(err.Error(), s.expError) {
			t.Fatalf("[spec %d] expected error containing %q; got %v", index, s.expError, err)
		}
	}
}
