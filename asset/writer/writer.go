package writer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/leomartinch/raytracer/asset"
)

// The on-disk layout consumed by the json mesh reader.
type jsonMesh struct {
	Vertices [][3]float64 `json:"vertices"`
	Mesh     [][3]int     `json:"mesh"`
}

// Encode mesh in the json asset format.
func Encode(mesh *asset.Mesh, w io.Writer) error {
	out := jsonMesh{
		Vertices: make([][3]float64, len(mesh.Vertices)),
		Mesh:     mesh.Triangles,
	}
	for index, v := range mesh.Vertices {
		out.Vertices[index] = [3]float64{v.X, v.Y, v.Z}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	return enc.Encode(out)
}

// WriteMesh writes mesh to filename in the json asset format.
func WriteMesh(mesh *asset.Mesh, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("writeMesh: %w", err)
	}

	if err = Encode(mesh, f); err != nil {
		f.Close()
		return fmt.Errorf("writeMesh: %w", err)
	}
	return f.Close()
}
