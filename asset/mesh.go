package asset

import (
	"errors"
	"fmt"

	"github.com/leomartinch/raytracer/types"
)

var (
	ErrEmptyMesh = errors.New("mesh: no triangles defined")
)

// Mesh is an immutable triangle mesh asset: an ordered vertex list and a
// list of index triples into it. Meshes carry no normals, uvs or materials;
// these are supplied per scene object. A Mesh may be shared by any number of
// scene objects and must not be modified after loading.
type Mesh struct {
	Name      string
	Vertices  []types.Vec3
	Triangles [][3]int
}

// Validate ensures that the mesh defines at least one triangle and that every
// triangle index points into the vertex list.
func (m *Mesh) Validate() error {
	if len(m.Triangles) == 0 {
		return fmt.Errorf("%w (%q)", ErrEmptyMesh, m.Name)
	}

	for triIndex, tri := range m.Triangles {
		for _, vIndex := range tri {
			if vIndex < 0 || vIndex >= len(m.Vertices) {
				return fmt.Errorf("mesh %q: triangle %d references vertex %d; mesh defines %d vertices", m.Name, triIndex, vIndex, len(m.Vertices))
			}
		}
	}
	return nil
}

// Bounds returns the local-space min/max corners of the mesh vertices.
func (m *Mesh) Bounds() (min, max types.Vec3) {
	if len(m.Vertices) == 0 {
		return
	}

	min, max = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		min = types.MinVec3(min, v)
		max = types.MaxVec3(max, v)
	}
	return min, max
}
