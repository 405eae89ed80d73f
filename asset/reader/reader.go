package reader

import (
	"fmt"

	"github.com/leomartinch/raytracer/asset"
)

// The Reader interface is implemented by all mesh asset readers.
type Reader interface {
	// Read a mesh definition from a resource.
	Read(*asset.Resource) (*asset.Mesh, error)
}

// ReadMesh loads and validates a mesh from a local file or http(s) URL. The
// reader is selected based on the file extension.
func ReadMesh(pathToMesh string) (*asset.Mesh, error) {
	res, err := asset.NewResource(pathToMesh, nil)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	return Read(res)
}

// Read decodes and validates a mesh from an already opened resource.
func Read(res *asset.Resource) (*asset.Mesh, error) {
	var r Reader
	switch res.Ext() {
	case ".json":
		r = newJSONReader()
	case ".obj":
		r = newWavefrontReader()
	default:
		return nil, fmt.Errorf("readMesh: unsupported file format %q", res.Ext())
	}

	mesh, err := r.Read(res)
	if err != nil {
		return nil, err
	}

	if err = mesh.Validate(); err != nil {
		return nil, err
	}
	return mesh, nil
}
