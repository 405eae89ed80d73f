package scene

import (
	"fmt"

	"github.com/leomartinch/raytracer/asset"
	"github.com/leomartinch/raytracer/types"
)

// A cube spanning [-1, 1] on every axis with outward facing winding.
func cubeMesh() *asset.Mesh {
	return &asset.Mesh{
		Name: "cube",
		Vertices: []types.Vec3{
			types.XYZ(-1, -1, -1), types.XYZ(1, -1, -1), types.XYZ(1, 1, -1), types.XYZ(-1, 1, -1),
			types.XYZ(-1, -1, 1), types.XYZ(1, -1, 1), types.XYZ(1, 1, 1), types.XYZ(-1, 1, 1),
		},
		Triangles: [][3]int{
			{0, 3, 2}, {0, 2, 1}, // -Z
			{4, 5, 6}, {4, 6, 7}, // +Z
			{0, 1, 5}, {0, 5, 4}, // -Y
			{3, 7, 6}, {3, 6, 2}, // +Y
			{0, 4, 7}, {0, 7, 3}, // -X
			{1, 2, 6}, {1, 6, 5}, // +X
		},
	}
}

// A square in the XZ plane spanning [-1, 1] whose normal points to -Y.
func quadMesh() *asset.Mesh {
	return &asset.Mesh{
		Name: "quad",
		Vertices: []types.Vec3{
			types.XYZ(-1, 0, -1), types.XYZ(1, 0, -1), types.XYZ(1, 0, 1), types.XYZ(-1, 0, 1),
		},
		Triangles: [][3]int{{0, 1, 2}, {0, 2, 3}},
	}
}

type staticLoader map[string]*asset.Mesh

func (l staticLoader) Load(name string) (*asset.Mesh, error) {
	mesh, exists := l[name]
	if !exists {
		return nil, fmt.Errorf("mesh %q not found", name)
	}
	return mesh, nil
}

func mustObject(name string, mesh *asset.Mesh, transform Transform, material Material) *Object {
	obj, err := NewObject(name, mesh, transform, material)
	if err != nil {
		panic(err)
	}
	return obj
}
