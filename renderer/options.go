package renderer

import "github.com/leomartinch/raytracer/scene"

type Options struct {
	// Camera placement, image plane and sampling settings.
	Camera scene.CameraConfig

	// Base seed for the per-row random number generators.
	Seed int64

	// Invoked from the rendering goroutine every time a row completes.
	// May be nil.
	Progress func(completedRows, totalRows int)
}
