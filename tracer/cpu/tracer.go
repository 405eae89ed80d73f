package cpu

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/leomartinch/raytracer/frame"
	"github.com/leomartinch/raytracer/log"
	"github.com/leomartinch/raytracer/scene"
	"github.com/leomartinch/raytracer/tracer"
)

// Speed estimate reported by every cpu tracer. Each tracer runs a single
// worker so all instances perform roughly the same.
const baselineSpeed = 1.0

type cpuTracer struct {
	logger log.Logger

	sync.Mutex
	wg sync.WaitGroup

	// The tracer id.
	id string

	// A buffer for queuing updates. Updates are grouped by type and
	// latest updates always overwrite the previous ones.
	updateMutex  sync.Mutex
	updateBuffer map[tracer.UpdateType]interface{}

	// A channel for receiving block requests from the renderer.
	blockReqChan chan tracer.BlockRequest

	// A channel for signaling the worker to exit.
	closeChan chan struct{}

	// Statistics for last rendered frame.
	stats *tracer.Stats

	// State owned by the worker once it is running.
	frame      *frame.Buffer
	sceneData  *scene.Scene
	camera     *scene.Camera
	integrator *PathIntegrator
}

// Create a new cpu tracer.
func NewTracer(id string) tracer.Tracer {
	return &cpuTracer{
		logger:       log.New(fmt.Sprintf("cpu tracer (%s)", id)),
		id:           id,
		blockReqChan: make(chan tracer.BlockRequest, 1),
		updateBuffer: make(map[tracer.UpdateType]interface{}),
		stats:        &tracer.Stats{},
	}
}

// Get tracer id.
func (tr *cpuTracer) Id() string {
	return tr.id
}

// Get the computation speed estimate.
func (tr *cpuTracer) SpeedEstimate() float64 {
	return baselineSpeed
}

// Attach the frame buffer and start the worker.
func (tr *cpuTracer) Init(buf *frame.Buffer) error {
	if buf == nil {
		return tracer.ErrFrameMissing
	}

	tr.Lock()
	defer tr.Unlock()

	tr.frame = buf
	if tr.closeChan == nil {
		tr.startWorker()
	}
	return nil
}

// Shutdown and cleanup tracer.
func (tr *cpuTracer) Close() {
	tr.Lock()
	defer tr.Unlock()

	tr.cleanup()
}

// Cleanup tracer. This method is meant to be called while holding tr.Lock()
func (tr *cpuTracer) cleanup() {
	// If the worker is running shut it down
	if tr.closeChan != nil {
		tr.closeChan <- struct{}{}

		// wait for worker to ack close and shutdown channel
		<-tr.closeChan
		tr.wg.Wait()
		close(tr.closeChan)
		tr.closeChan = nil
	}

	tr.sceneData = nil
	tr.camera = nil
	tr.integrator = nil
}

// Enqueue block request.
func (tr *cpuTracer) Enqueue(blockReq tracer.BlockRequest) {
	select {
	case tr.blockReqChan <- blockReq:
	default:
		// drop the request if worker is not listening
		tr.logger.Error("request processor did not receive block request")
		blockReq.ErrChan <- fmt.Errorf("%w (%s)", tracer.ErrNotReady, tr.id)
	}
}

// Append a change to the tracer's update buffer.
func (tr *cpuTracer) Update(updateType tracer.UpdateType, data interface{}) {
	tr.updateMutex.Lock()
	tr.updateBuffer[updateType] = data
	tr.updateMutex.Unlock()
}

// Retrieve last frame statistics.
func (tr *cpuTracer) Stats() *tracer.Stats {
	return tr.stats
}

// Commit queued changes.
func (tr *cpuTracer) commitUpdates() error {
	tr.updateMutex.Lock()
	defer tr.updateMutex.Unlock()

	if len(tr.updateBuffer) == 0 {
		return nil
	}

	for updateType, data := range tr.updateBuffer {
		switch updateType {
		case tracer.UpdateScene:
			tr.sceneData = data.(*scene.Scene)
		case tracer.UpdateCamera:
			tr.camera = data.(*scene.Camera)
		default:
			return fmt.Errorf("unsupported update type %d", updateType)
		}
	}

	if tr.sceneData != nil && tr.camera != nil {
		tr.integrator = &PathIntegrator{
			Scene:      tr.sceneData,
			Samples:    tr.camera.SamplesPerPixel,
			MaxBounces: tr.camera.MaxBounces,
		}
	}

	tr.updateBuffer = make(map[tracer.UpdateType]interface{})
	return nil
}

// Spawn a go-routine to process block render requests.
func (tr *cpuTracer) startWorker() {
	tr.closeChan = make(chan struct{})
	readyChan := make(chan struct{})
	tr.wg.Add(1)
	go func() {
		defer tr.wg.Done()
		var blockReq tracer.BlockRequest
		var startTime time.Time
		var err error
		close(readyChan)
		for {
			select {
			case blockReq = <-tr.blockReqChan:
				// Apply any pending changes
				startTime = time.Now()
				err = tr.commitUpdates()
				if err != nil {
					blockReq.ErrChan <- err
					continue
				}
				tr.stats.UpdateTime = time.Since(startTime)

				// Render block and reply with our completion status
				startTime = time.Now()
				err = tr.renderBlock(&blockReq)
				if err != nil {
					blockReq.ErrChan <- err
					continue
				}

				// Update stats
				tr.stats.BlockH = blockReq.BlockH
				tr.stats.RenderTime = time.Since(startTime)

				blockReq.DoneChan <- blockReq.BlockH
			case <-tr.closeChan:
				// Ack close
				tr.closeChan <- struct{}{}
				return
			}
		}
	}()

	// Wait for go-routine to start
	<-readyChan
}

// Render block rows into the frame buffer. Every row uses its own random
// number generator so the output does not depend on how rows are split
// between tracers.
func (tr *cpuTracer) renderBlock(blockReq *tracer.BlockRequest) error {
	switch {
	case tr.sceneData == nil:
		return tracer.ErrNoSceneData
	case tr.camera == nil:
		return tracer.ErrNoCamera
	case blockReq.BlockY < 0 || blockReq.BlockY+blockReq.BlockH > tr.frame.H:
		return fmt.Errorf("tracer %s: block [%d, %d) outside frame of height %d", tr.id, blockReq.BlockY, blockReq.BlockY+blockReq.BlockH, tr.frame.H)
	case tr.camera.FrameW != tr.frame.W:
		return fmt.Errorf("tracer %s: camera frame width %d does not match buffer width %d", tr.id, tr.camera.FrameW, tr.frame.W)
	}

	for h := blockReq.BlockY; h < blockReq.BlockY+blockReq.BlockH; h++ {
		if blockReq.Ctx != nil {
			if err := blockReq.Ctx.Err(); err != nil {
				return err
			}
		}

		rng := rand.New(rand.NewSource(blockReq.Seed + int64(h)))
		row := tr.frame.Row(h)
		for w := range row {
			origin, dir := tr.camera.Ray(h, w)
			row[w] = tr.integrator.Radiance(origin, dir, rng)
		}

		if blockReq.RowChan != nil {
			blockReq.RowChan <- h
		}
	}

	tr.logger.Debugf("rendered rows [%d, %d)", blockReq.BlockY, blockReq.BlockY+blockReq.BlockH)
	return nil
}
