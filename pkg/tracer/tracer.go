package tracer

import (
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Eearslya/Rake/pkg/core"
	"github.com/Eearslya/Rake/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Config contains tracer configuration
type Config struct {
	NumWorkers      int    // Number of worker threads (0 = CPU count - 2, minimum 1)
	LinesPerTask    int    // Image rows per task band
	UpdateThreshold uint64 // New samples required before UpdatePixels copies a snapshot
}

// DefaultConfig returns the standard tracer configuration
func DefaultConfig() Config {
	return Config{
		NumWorkers:      0,
		LinesPerTask:    10,
		UpdateThreshold: 100,
	}
}

// A task is one band of image rows at one sample index, packed into a
// uint64: yMin:16 | yMax:16 | sample:32.
func packTask(yMin, yMax, sample uint32) uint64 {
	return uint64(yMin)<<48 | uint64(yMax)<<32 | uint64(sample)
}

func unpackTask(task uint64) (yMin, yMax, sample uint32) {
	return uint32(task >> 48), uint32(task>>32) & 0xFFFF, uint32(task)
}

// Tracer renders worlds progressively on a pool of worker goroutines.
// Bands of image rows cycle through the task queue once per sample;
// each completed task updates the running per-pixel average, so a
// consumer polling UpdatePixels sees the image refine over time.
//
// The control surface (StartTrace, CancelTrace, Update, UpdatePixels
// and the read-only views) is intended for a single consumer thread.
type Tracer struct {
	config Config
	logger core.Logger

	tasksMutex sync.Mutex
	tasksCond  *sync.Cond
	tasks      []uint64
	running    bool
	workers    sync.WaitGroup

	// Per-trace state, written by StartTrace and read by workers under
	// tasksMutex at task pop
	traceID      uint64
	width        int
	height       int
	samples      uint32
	linesPerTask uint32
	camera       *Camera
	world        *scene.World
	sumPixels    []core.Vec3
	avgPixels    []core.Vec3
	bandSamples  []uint32

	rendering        atomic.Bool
	completedSamples atomic.Uint64
	totalRaycasts    atomic.Uint64

	taskGroupCount    uint64
	neededSamples     uint64
	lastUpdatedSample uint64

	renderStart   time.Time
	renderElapsed time.Duration
}

// New creates a tracer and spawns its worker pool. It returns once
// every worker has parked on the task queue. Close must be called to
// stop the workers.
func New(config Config, logger core.Logger) *Tracer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	if config.NumWorkers <= 0 {
		config.NumWorkers = max(1, runtime.NumCPU()-2)
	}
	if config.LinesPerTask <= 0 {
		config.LinesPerTask = DefaultConfig().LinesPerTask
	}

	t := &Tracer{
		config:  config,
		logger:  logger,
		running: true,
	}
	t.tasksCond = sync.NewCond(&t.tasksMutex)

	t.logger.Printf("Tracer: starting %d render workers\n", config.NumWorkers)

	var ready sync.WaitGroup
	ready.Add(config.NumWorkers)
	t.workers.Add(config.NumWorkers)
	for id := 0; id < config.NumWorkers; id++ {
		go t.renderWorker(id, &ready)
	}
	ready.Wait()

	return t
}

// Close stops the worker pool and waits for all workers to exit.
// In-flight tasks are completed; queued tasks are abandoned.
func (t *Tracer) Close() {
	t.tasksMutex.Lock()
	t.running = false
	t.tasks = nil
	t.tasksMutex.Unlock()
	t.tasksCond.Broadcast()
	t.workers.Wait()
}

// StartTrace begins a progressive trace of the world. It returns false
// if a trace is already in progress or the world's BVH cannot be built.
func (t *Tracer) StartTrace(width, height int, samplesPerPixel uint32, world *scene.World) bool {
	if t.rendering.Load() {
		t.logger.Printf("Tracer: trace already in progress, ignoring request\n")
		return false
	}
	if width <= 0 || height <= 0 || samplesPerPixel < 1 {
		t.logger.Printf("Tracer: rejecting trace with empty image or zero samples\n")
		return false
	}

	bvhStart := time.Now()
	if err := world.ConstructBVH(); err != nil {
		t.logger.Printf("Tracer: failed to build BVH for world %q: %v\n", world.Name, err)
		return false
	}
	t.logger.Printf("Tracer: built BVH for world %q in %v\n", world.Name, time.Since(bvhStart))

	linesPerTask := uint32(t.config.LinesPerTask)
	bandCount := (uint32(height) + linesPerTask - 1) / linesPerTask

	t.tasksMutex.Lock()
	t.traceID++
	t.width = width
	t.height = height
	t.samples = samplesPerPixel
	t.linesPerTask = linesPerTask
	t.world = world
	t.camera = NewCamera(
		world.CameraPos, world.CameraTarget,
		world.VerticalFOV, float64(width)/float64(height),
		world.CameraAperture, world.CameraFocusDistance,
	)
	t.sumPixels = make([]core.Vec3, width*height)
	t.avgPixels = make([]core.Vec3, width*height)
	t.bandSamples = make([]uint32, bandCount)

	t.taskGroupCount = uint64(bandCount)
	t.neededSamples = uint64(bandCount) * uint64(samplesPerPixel)
	t.lastUpdatedSample = 0
	t.completedSamples.Store(0)
	t.totalRaycasts.Store(0)
	t.renderStart = time.Now()
	t.renderElapsed = 0

	t.tasks = t.tasks[:0]
	for band := uint32(0); band < bandCount; band++ {
		yMin := band * linesPerTask
		yMax := min(yMin+linesPerTask, uint32(height))
		t.tasks = append(t.tasks, packTask(yMin, yMax, 0))
	}
	t.rendering.Store(true)
	t.tasksMutex.Unlock()
	t.tasksCond.Broadcast()

	t.logger.Printf("Tracer: tracing world %q at %dx%d, %d samples per pixel, %d bands\n",
		world.Name, width, height, samplesPerPixel, bandCount)

	return true
}

// CancelTrace drains the task queue and stops the trace. Workers finish
// the band they are rendering and do not enqueue follow-up work.
// Calling it with no trace in progress is a no-op.
func (t *Tracer) CancelTrace() bool {
	t.tasksMutex.Lock()
	t.tasks = t.tasks[:0]
	if t.rendering.Load() {
		t.renderElapsed = time.Since(t.renderStart)
		t.rendering.Store(false)
		t.logger.Printf("Tracer: trace cancelled\n")
	}
	t.tasksMutex.Unlock()

	return true
}

// Update performs per-frame housekeeping: it detects trace completion,
// stops the stopwatch, and releases the world reference once the trace
// is over. Call once per frame from the consumer.
func (t *Tracer) Update() {
	if t.rendering.Load() && t.neededSamples > 0 && t.completedSamples.Load() == t.neededSamples {
		t.tasksMutex.Lock()
		t.renderElapsed = time.Since(t.renderStart)
		t.rendering.Store(false)
		t.tasksMutex.Unlock()
		t.logger.Printf("Tracer: trace completed in %v (%d raycasts)\n", t.renderElapsed, t.totalRaycasts.Load())
	}

	if !t.rendering.Load() {
		t.tasksMutex.Lock()
		t.world = nil
		t.tasksMutex.Unlock()
	}
}

// UpdatePixels copies the averaged buffer into out when enough new
// samples have landed since the last copy, or when the trace has just
// finished. It returns false, leaving out untouched, otherwise.
func (t *Tracer) UpdatePixels(out *[]core.Vec3) bool {
	completed := t.completedSamples.Load()
	if completed == t.lastUpdatedSample {
		return false
	}

	finished := t.neededSamples > 0 && completed == t.neededSamples
	if completed-t.lastUpdatedSample < t.config.UpdateThreshold && !finished {
		return false
	}

	if cap(*out) < len(t.avgPixels) {
		*out = make([]core.Vec3, len(t.avgPixels))
	}
	*out = (*out)[:len(t.avgPixels)]
	copy(*out, t.avgPixels)
	t.lastUpdatedSample = completed

	return true
}

// IsRunning reports whether a trace is in progress
func (t *Tracer) IsRunning() bool {
	return t.rendering.Load()
}

// ElapsedTime returns the running trace's elapsed time, or the duration
// of the last trace once it has finished or been cancelled
func (t *Tracer) ElapsedTime() time.Duration {
	t.tasksMutex.Lock()
	defer t.tasksMutex.Unlock()
	if t.rendering.Load() {
		return time.Since(t.renderStart)
	}
	return t.renderElapsed
}

// CompletedSamples returns the number of samples every band has
// finished: the floor of per-band progress
func (t *Tracer) CompletedSamples() uint32 {
	t.tasksMutex.Lock()
	defer t.tasksMutex.Unlock()

	if len(t.bandSamples) == 0 {
		return 0
	}
	done := t.samples
	for _, count := range t.bandSamples {
		done = min(done, count)
	}
	return done
}

// RaycastCount returns the total rays cast by the current trace
func (t *Tracer) RaycastCount() uint64 {
	return t.totalRaycasts.Load()
}

// renderWorker is the worker loop. Workers park on the task condvar,
// pop one band task at a time, shade it for one sample, fold the result
// into the accumulation buffers, and re-enqueue the band for its next
// sample. Each worker owns a deterministically seeded generator.
func (t *Tracer) renderWorker(id int, ready *sync.WaitGroup) {
	defer t.workers.Done()
	random := rand.New(rand.NewSource(int64(id) + 1))

	t.tasksMutex.Lock()
	ready.Done()
	for {
		for t.running && len(t.tasks) == 0 {
			t.tasksCond.Wait()
		}
		if !t.running && len(t.tasks) == 0 {
			t.tasksMutex.Unlock()
			return
		}

		task := t.tasks[0]
		t.tasks = t.tasks[1:]

		// Capture this trace's state before releasing the lock; a
		// cancel plus a new StartTrace must not redirect in-flight
		// writes
		traceID := t.traceID
		width, height := t.width, t.height
		samples := t.samples
		linesPerTask := t.linesPerTask
		camera, world := t.camera, t.world
		sum, avg := t.sumPixels, t.avgPixels
		band := t.bandSamples
		t.tasksMutex.Unlock()

		yMin, yMax, sample := unpackTask(task)
		raycasts := uint64(0)
		avgFactor := 1.0 / float64(sample+1)

		for y := yMin; y < yMax; y++ {
			for x := 0; x < width; x++ {
				s := (float64(x) + random.Float64()) / float64(width-1)
				v := 1.0 - (float64(y)+random.Float64())/float64(height-1)
				ray := camera.GetRay(s, v, random)

				offset := int(y)*width + x
				sum[offset] = sum[offset].Add(castRay(ray, world, 0, random, &raycasts))
				avg[offset] = sum[offset].Multiply(avgFactor)
			}
		}

		t.tasksMutex.Lock()
		// A cancelled trace still counts its in-flight bands, but a
		// stale band from a superseded trace must not touch the new
		// trace's counters or queue
		if t.traceID == traceID {
			t.completedSamples.Add(1)
			t.totalRaycasts.Add(raycasts)
			band[yMin/linesPerTask] = sample + 1
			if t.running && t.rendering.Load() && sample+1 < samples {
				t.tasks = append(t.tasks, packTask(yMin, yMax, sample+1))
				t.tasksCond.Signal()
			}
		}
	}
}
