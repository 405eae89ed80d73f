package tracer

import (
	"context"
	"errors"
	"time"

	"github.com/leomartinch/raytracer/frame"
)

var (
	ErrNoSceneData  = errors.New("tracer: no scene data uploaded")
	ErrNoCamera     = errors.New("tracer: no camera uploaded")
	ErrNotReady     = errors.New("tracer: worker did not accept block request")
	ErrFrameMissing = errors.New("tracer: tracer not initialized with a frame buffer")
)

type UpdateType uint8

const (
	UpdateScene UpdateType = iota
	UpdateCamera
)

// A unit of work that is processed by a tracer.
type BlockRequest struct {
	// Block start row and height.
	BlockY int
	BlockH int

	// Base seed for the per-row random number generators. Row h draws its
	// samples from a generator seeded with Seed + h.
	Seed int64

	// Checked between rows; a cancelled context aborts the block.
	Ctx context.Context

	// A channel to signal on block completion with the number of completed rows.
	DoneChan chan<- int

	// A channel to signal if an error occurs.
	ErrChan chan<- error

	// An optional channel that receives the index of every completed row.
	RowChan chan<- int
}

// Tracer statistics.
type Stats struct {
	// The rendered block height
	BlockH int

	// The time for rendering this block
	RenderTime time.Duration

	// The time spent applying pending updates before rendering the block
	UpdateTime time.Duration
}

type Tracer interface {
	// Get tracer id.
	Id() string

	// Attach the frame buffer that blocks are rendered into and start the
	// worker.
	Init(buf *frame.Buffer) error

	// Shutdown and cleanup tracer.
	Close()

	// Get the tracers computation speed estimate compared to a
	// baseline (single core) implementation.
	SpeedEstimate() float64

	// Enqueue block request.
	Enqueue(BlockRequest)

	// Append a change to the tracer's update buffer. Pending changes are
	// applied before the next block is rendered.
	Update(UpdateType, interface{})

	// Retrieve last frame statistics.
	Stats() *Stats
}
