package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks frame rate, frame time and heap usage for performance monitoring.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	logger         *log.Logger
	frameCount     int
	frameTimeSum   float64
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	now            func() time.Time
}

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithLogger sets the logger the statistics are written to. Defaults to the standard logger.
//
// Parameters:
//   - logger: the destination logger
//
// Returns:
//   - ProfilerOption: option function to apply
func WithLogger(logger *log.Logger) ProfilerOption {
	return func(p *Profiler) {
		p.logger = logger
	}
}

// WithUpdateInterval sets how often statistics are logged.
//
// Parameters:
//   - interval: the logging interval
//
// Returns:
//   - ProfilerOption: option function to apply
func WithUpdateInterval(interval time.Duration) ProfilerOption {
	return func(p *Profiler) {
		p.updateInterval = interval
	}
}

// withClock replaces the wall clock; used by tests.
func withClock(now func() time.Time) ProfilerOption {
	return func(p *Profiler) {
		p.now = now
	}
}

// NewProfiler creates a new Profiler. Update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options applied after the defaults
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		logger:         log.Default(),
		updateInterval: time.Second,
		now:            time.Now,
	}
	for _, opt := range options {
		opt(p)
	}
	p.lastTime = p.now()
	return p
}

// Tick should be called once per frame with that frame's delta time in seconds.
// Logs FPS, mean frame time and heap usage when the update interval has elapsed.
//
// Parameters:
//   - deltaTime: seconds since the previous frame
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick(deltaTime float32) bool {
	p.frameCount++
	p.frameTimeSum += float64(deltaTime)

	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	fps := float64(p.frameCount) / elapsed.Seconds()
	frameMs := p.frameTimeSum / float64(p.frameCount) * 1000

	runtime.ReadMemStats(&p.memStats)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024

	p.logger.Printf("[Profiler] FPS: %.2f | Frame: %.3f ms | Heap: %.2f MB | GC: %d",
		fps, frameMs, allocMB, p.memStats.NumGC)

	p.frameCount = 0
	p.frameTimeSum = 0
	p.lastTime = currentTime
	return true
}
