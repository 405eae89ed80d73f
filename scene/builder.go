package scene

import (
	"fmt"
	"time"

	"github.com/leomartinch/raytracer/asset"
	"github.com/leomartinch/raytracer/log"
)

// A MeshLoader resolves mesh asset names. Implementations are expected to
// return the same shared instance for repeated requests of one name.
type MeshLoader interface {
	Load(name string) (*asset.Mesh, error)
}

// ObjectConfig is the literal description of one scene object.
type ObjectConfig struct {
	Name      string
	Mesh      string
	Transform Transform
	Material  Material
}

var builderLogger = log.New("scene builder")

// Build loads the meshes referenced by configs and places every object in a
// new scene. Any missing asset or invalid object aborts the build.
func Build(configs []ObjectConfig, loader MeshLoader) (*Scene, error) {
	if len(configs) == 0 {
		return nil, ErrEmptyScene
	}

	start := time.Now()
	objects := make([]*Object, 0, len(configs))
	for _, cfg := range configs {
		if cfg.Mesh == "" {
			return nil, fmt.Errorf("%w: %q", ErrMissingMeshRef, cfg.Name)
		}

		mesh, err := loader.Load(cfg.Mesh)
		if err != nil {
			return nil, fmt.Errorf("scene: object %q: %w", cfg.Name, err)
		}

		obj, err := NewObject(cfg.Name, mesh, cfg.Transform, cfg.Material)
		if err != nil {
			return nil, fmt.Errorf("scene: %w", err)
		}
		builderLogger.Debugf("placed object %q (%s) with bbox %v - %v", obj.Name, obj.MeshName, obj.BBox.Min, obj.BBox.Max)
		objects = append(objects, obj)
	}

	sc, err := New(objects...)
	if err != nil {
		return nil, err
	}

	builderLogger.Infof("built scene with %d objects and %d triangles in %d ms", sc.Len(), sc.TriangleCount(), time.Since(start).Nanoseconds()/1e6)
	return sc, nil
}
