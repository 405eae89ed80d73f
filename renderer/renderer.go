package renderer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/leomartinch/raytracer/frame"
	"github.com/leomartinch/raytracer/log"
	"github.com/leomartinch/raytracer/scene"
	"github.com/leomartinch/raytracer/tracer"
)

type Renderer interface {
	// Render frame. The returned buffer is owned by the renderer and is
	// overwritten by the next call to Render.
	Render(ctx context.Context) (*frame.Buffer, error)

	// Shutdown renderer and any attached tracer.
	Close()

	// Get render statistics.
	Stats() FrameStats
}

// The default renderer splits the frame rows into contiguous blocks and
// renders each block on one of the attached tracers.
type defaultRenderer struct {
	logger log.Logger

	sync.Mutex

	tracers          []tracer.Tracer
	scheduler        tracer.BlockScheduler
	blockAssignments []int

	scene  *scene.Scene
	camera *scene.Camera
	frame  *frame.Buffer

	options Options
	stats   FrameStats
}

// Create a new default renderer using the specified block scheduler and
// tracers. The renderer takes ownership of the tracers and closes them when
// it is closed.
func NewDefault(sc *scene.Scene, scheduler tracer.BlockScheduler, tracers []tracer.Tracer, opts Options) (Renderer, error) {
	switch {
	case sc == nil:
		return nil, ErrSceneNotDefined
	case len(tracers) == 0:
		return nil, ErrNoTracers
	}

	camera, err := scene.NewCamera(opts.Camera)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCameraNotDefined, err)
	}

	buf, err := frame.NewBuffer(camera.FrameW, camera.FrameH)
	if err != nil {
		return nil, err
	}

	r := &defaultRenderer{
		logger:    log.New("renderer"),
		tracers:   tracers,
		scheduler: scheduler,
		scene:     sc,
		camera:    camera,
		frame:     buf,
		options:   opts,
	}

	for _, tr := range tracers {
		if err = tr.Init(buf); err != nil {
			r.Close()
			return nil, fmt.Errorf("renderer: could not init tracer %s: %w", tr.Id(), err)
		}
		tr.Update(tracer.UpdateScene, sc)
		tr.Update(tracer.UpdateCamera, camera)
	}

	r.logger.Noticef("attached %d tracers; frame %dx%d; %d spp; %d bounces", len(tracers), camera.FrameW, camera.FrameH, camera.SamplesPerPixel, camera.MaxBounces)
	return r, nil
}

// Shutdown renderer and any attached tracer.
func (r *defaultRenderer) Close() {
	for _, tr := range r.tracers {
		tr.Close()
	}
	r.tracers = nil
}

// Get render statistics.
func (r *defaultRenderer) Stats() FrameStats {
	r.Lock()
	defer r.Unlock()
	return r.stats
}

// Render frame.
func (r *defaultRenderer) Render(ctx context.Context) (*frame.Buffer, error) {
	r.Lock()
	defer r.Unlock()

	if len(r.tracers) == 0 {
		return nil, ErrNoTracers
	}

	start := time.Now()
	err := r.renderFrame(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrInterrupted
		}
		return nil, err
	}

	r.updateStats(time.Since(start))
	r.logger.Infof("rendered %dx%d frame in %d ms", r.frame.W, r.frame.H, r.stats.RenderTime.Nanoseconds()/1e6)
	return r.frame, nil
}

// Schedule blocks, dispatch them to the tracers and wait for all of them to
// complete. Row progress is forwarded to the progress callback as it
// arrives.
func (r *defaultRenderer) renderFrame(ctx context.Context) error {
	frameH := r.frame.H
	r.blockAssignments = r.scheduler.Schedule(r.tracers, frameH)

	doneChan := make(chan int, len(r.tracers))
	errChan := make(chan error, len(r.tracers))
	rowChan := make(chan int, frameH)

	pending := 0
	var blockY int
	for idx, tr := range r.tracers {
		blockH := r.blockAssignments[idx]
		if blockH == 0 {
			continue
		}

		r.logger.Debugf("assigning rows [%d, %d) to tracer %s", blockY, blockY+blockH, tr.Id())
		tr.Enqueue(tracer.BlockRequest{
			BlockY:   blockY,
			BlockH:   blockH,
			Seed:     r.options.Seed,
			Ctx:      ctx,
			DoneChan: doneChan,
			ErrChan:  errChan,
			RowChan:  rowChan,
		})
		blockY += blockH
		pending++
	}

	var firstErr error
	completedRows := 0
	onRow := func() {
		completedRows++
		if r.options.Progress != nil {
			r.options.Progress(completedRows, frameH)
		}
	}

	for pending > 0 {
		select {
		case <-doneChan:
			pending--
		case err := <-errChan:
			pending--
			if firstErr == nil {
				firstErr = err
			}
		case <-rowChan:
			onRow()
		}
	}

	// Rows are always reported before their block completes
	for len(rowChan) > 0 {
		<-rowChan
		onRow()
	}

	return firstErr
}

func (r *defaultRenderer) updateStats(renderTime time.Duration) {
	r.stats = FrameStats{
		Tracers:         make([]TracerStat, len(r.tracers)),
		FrameW:          r.frame.W,
		FrameH:          r.frame.H,
		SamplesPerPixel: r.camera.SamplesPerPixel,
		RenderTime:      renderTime,
	}

	for idx, tr := range r.tracers {
		blockH := r.blockAssignments[idx]
		stat := TracerStat{
			Id:           tr.Id(),
			BlockH:       blockH,
			FramePercent: 100.0 * float64(blockH) / float64(r.frame.H),
		}
		if blockH > 0 {
			stat.RenderTime = tr.Stats().RenderTime
		}
		r.stats.Tracers[idx] = stat
	}
}
