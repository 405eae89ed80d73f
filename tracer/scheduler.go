package tracer

import "math"

// The BlockScheduler interface is implemented by all block scheduling algorithms.
type BlockScheduler interface {
	// Split frame into blocks of variable height and assign to the pool
	// of tracers using feedback collected from previous frames.
	//
	// This function returns the block height assignment for each tracer
	// in the input list. The assignments always add up to frameH; tracers
	// may be assigned zero rows when there are more tracers than rows.
	Schedule(tracers []Tracer, frameH int) []int
}

type naiveScheduler struct{}

// Create a new naive scheduler instance. The naive scheduler splits the
// frame proportionally to each tracer's speed estimate.
func NaiveScheduler() BlockScheduler {
	return naiveScheduler{}
}

func (naiveScheduler) Schedule(tracers []Tracer, frameH int) []int {
	return scheduleBySpeed(tracers, frameH)
}

// The perfect scheduler assumes that the volume of tracing work between two
// subsequent frames is approximately the same.
type perfectScheduler struct {
	blockAssignment []int
	frameH          int
}

// Create a new perfect scheduler instance
func PerfectScheduler() BlockScheduler {
	return &perfectScheduler{}
}

// Split frame into blocks of variable height and assign to the pool
// of tracers using feedback collected from previous frames.
//
// When previous frame information is available the scheduler uses the
// following formula for estimating the workload for tracer w and frame i+1:
// w_i, f_i+1 = (blockH,w_i / time,w_i) / Σ(blockH_i-1 / time,i-1)
func (sch *perfectScheduler) Schedule(tracers []Tracer, frameH int) []int {
	// If this is the first time we try to schedule or the number of tracers
	// or the frame height has changed we need to reset the block assignments
	if len(sch.blockAssignment) != len(tracers) || sch.frameH != frameH || !hasFrameStats(tracers) {
		sch.blockAssignment = scheduleBySpeed(tracers, frameH)
		sch.frameH = frameH
		return sch.blockAssignment
	}

	// Use last frame statistics
	var total float64
	for _, tr := range tracers {
		stats := tr.Stats()
		total += float64(stats.BlockH) / float64(stats.RenderTime)
	}

	scaler := float64(frameH) / total
	for idx, tr := range tracers {
		stats := tr.Stats()
		sch.blockAssignment[idx] = int(math.Max(1.0, math.Floor(float64(stats.BlockH)/float64(stats.RenderTime)*scaler)))
	}

	balance(sch.blockAssignment, frameH)
	return sch.blockAssignment
}

// Frame statistics can only be used if every tracer rendered a non-empty
// block during the last frame.
func hasFrameStats(tracers []Tracer) bool {
	for _, tr := range tracers {
		stats := tr.Stats()
		if stats == nil || stats.BlockH <= 0 || stats.RenderTime <= 0 {
			return false
		}
	}
	return true
}

// Distribute rows according to each tracer's speed estimate.
func scheduleBySpeed(tracers []Tracer, frameH int) []int {
	blockAssignment := make([]int, len(tracers))
	if len(tracers) == 0 {
		return blockAssignment
	}

	var total float64
	for _, tr := range tracers {
		total += math.Max(0, tr.SpeedEstimate())
	}

	for idx, tr := range tracers {
		if total == 0 {
			blockAssignment[idx] = frameH / len(tracers)
			continue
		}
		blockAssignment[idx] = int(math.Max(1.0, math.Floor(math.Max(0, tr.SpeedEstimate())*float64(frameH)/total)))
	}

	balance(blockAssignment, frameH)
	return blockAssignment
}

// Make sure that the block assignments add up to frameH. Missing rows are
// appended to the first tracer; excess rows (caused by the one row minimum)
// are taken away from the largest blocks.
func balance(blockAssignment []int, frameH int) {
	scheduledRows := 0
	for _, rows := range blockAssignment {
		scheduledRows += rows
	}

	if scheduledRows < frameH {
		blockAssignment[0] += frameH - scheduledRows
		return
	}

	for ; scheduledRows > frameH; scheduledRows-- {
		largest := 0
		for idx, rows := range blockAssignment {
			if rows > blockAssignment[largest] {
				largest = idx
			}
		}
		blockAssignment[largest]--
	}
}
