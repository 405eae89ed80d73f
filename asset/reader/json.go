package reader

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/leomartinch/raytracer/asset"
	"github.com/leomartinch/raytracer/log"
	"github.com/leomartinch/raytracer/types"
)

// The on-disk layout produced by the mesh exporter.
type jsonMesh struct {
	Vertices [][]float64 `json:"vertices"`
	Mesh     [][]int     `json:"mesh"`
}

type jsonMeshReader struct {
	logger log.Logger
}

func newJSONReader() *jsonMeshReader {
	return &jsonMeshReader{
		logger: log.New("json mesh reader"),
	}
}

// Read a mesh exported as a JSON document with a "vertices" list of xyz
// triples and a "mesh" list of vertex index lists.
func (r *jsonMeshReader) Read(res *asset.Resource) (*asset.Mesh, error) {
	r.logger.Infof(`parsing mesh from "%s"`, res.Path())
	start := time.Now()

	var raw jsonMesh
	if err := json.NewDecoder(res).Decode(&raw); err != nil {
		return nil, fmt.Errorf("[%s] error: could not decode mesh: %s", res.Path(), err)
	}

	mesh := &asset.Mesh{
		Name:      res.Name(),
		Vertices:  make([]types.Vec3, 0, len(raw.Vertices)),
		Triangles: make([][3]int, 0, len(raw.Mesh)),
	}

	for index, v := range raw.Vertices {
		if len(v) != 3 {
			return nil, fmt.Errorf("[%s] error: vertex %d has %d coordinates; expected 3", res.Path(), index, len(v))
		}
		mesh.Vertices = append(mesh.Vertices, types.XYZ(v[0], v[1], v[2]))
	}

	for index, face := range raw.Mesh {
		if len(face) < 3 {
			return nil, fmt.Errorf("[%s] error: face %d has %d indices; expected at least 3", res.Path(), index, len(face))
		}
		if len(face) > 3 {
			r.logger.Debugf("triangulating face %d with %d vertices", index, len(face))
		}
		mesh.Triangles = append(mesh.Triangles, fanTriangulate(face)...)
	}

	r.logger.Infof("parsed mesh %q (%d vertices, %d triangles) in %d ms", mesh.Name, len(mesh.Vertices), len(mesh.Triangles), time.Since(start).Nanoseconds()/1e6)
	return mesh, nil
}

// Split a convex polygon into a triangle fan around its first vertex.
func fanTriangulate(face []int) [][3]int {
	tris := make([][3]int, 0, len(face)-2)
	for i := 1; i+1 < len(face); i++ {
		tris = append(tris, [3]int{face[0], face[i], face[i+1]})
	}
	return tris
}
