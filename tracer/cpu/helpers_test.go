package cpu

import (
	"testing"

	"github.com/leomartinch/raytracer/asset"
	"github.com/leomartinch/raytracer/scene"
	"github.com/leomartinch/raytracer/types"
)

type meshLoader map[string]*asset.Mesh

func (l meshLoader) Load(name string) (*asset.Mesh, error) {
	return l[name], nil
}

func cubeMesh() *asset.Mesh {
	return &asset.Mesh{
		Name: "cube",
		Vertices: []types.Vec3{
			types.XYZ(-1, -1, -1), types.XYZ(1, -1, -1), types.XYZ(1, 1, -1), types.XYZ(-1, 1, -1),
			types.XYZ(-1, -1, 1), types.XYZ(1, -1, 1), types.XYZ(1, 1, 1), types.XYZ(-1, 1, 1),
		},
		Triangles: [][3]int{
			{0, 3, 2}, {0, 2, 1}, {4, 5, 6}, {4, 6, 7}, {0, 1, 5}, {0, 5, 4},
			{3, 7, 6}, {3, 6, 2}, {0, 4, 7}, {0, 7, 3}, {1, 2, 6}, {1, 6, 5},
		},
	}
}

func buildPreset(t *testing.T, name string) *scene.Scene {
	configs, err := scene.Preset(name, "cube")
	if err != nil {
		t.Fatal(err)
	}
	sc, err := scene.Build(configs, meshLoader{"cube": cubeMesh()})
	if err != nil {
		t.Fatal(err)
	}
	return sc
}

func smallCamera(t *testing.T, resolution, spp, bounces int) *scene.Camera {
	cfg := scene.DefaultCameraConfig()
	cfg.Resolution = resolution
	cfg.SamplesPerPixel = spp
	cfg.MaxBounces = bounces
	cam, err := scene.NewCamera(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return cam
}
