package renderer

import "time"

type TracerStat struct {
	// The tracer id.
	Id string

	// The block height and the percentage of total frame area it represents.
	BlockH       int
	FramePercent float64

	// Render time for assigned block
	RenderTime time.Duration
}

type FrameStats struct {
	// Individual tracer stats.
	Tracers []TracerStat

	// Frame dims and sampling settings.
	FrameW, FrameH  int
	SamplesPerPixel int

	// Total render time for entire frame.
	RenderTime time.Duration
}
