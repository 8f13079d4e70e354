// package bench compares the memory cost of allocating a fresh flo8 buffer
// on every pass against reusing one buffer, and puts a (very) rough energy
// figure on the difference.
package bench

import (
	"time"

	"github.com/pfcm/flo8"
	"github.com/pfcm/flo8/mem"
)

// The workload the original comparison ran: a million passes over a
// thousand elements, costed at a 20 W package draw.
const (
	DefaultIterations = 1000000
	DefaultElements   = 1000
	DefaultPowerWatts = 20.0
)

// Runner drives the workloads. All fields must be set; Default fills in the
// standard ones.
type Runner struct {
	// Iterations is the number of passes over the buffer.
	Iterations int
	// Elements is the length of the flo8.F43 buffer written each pass.
	Elements int
	// PowerWatts is the assumed package power draw for the energy
	// estimate.
	PowerWatts float64
	// Tracker records the bytes the workload allocates and frees.
	Tracker *mem.Tracker
}

// Default returns a Runner for the standard workload, recording with t.
func Default(t *mem.Tracker) Runner {
	return Runner{
		Iterations: DefaultIterations,
		Elements:   DefaultElements,
		PowerWatts: DefaultPowerWatts,
		Tracker:    t,
	}
}

// Result describes one workload run. Allocated and Freed are the tracker
// totals when the run finished, so callers comparing phases should Reset the
// tracker in between.
type Result struct {
	Name      string
	Allocated uint64
	Freed     uint64
	Elapsed   time.Duration
	Joules    float64
}

// Unoptimized allocates a fresh buffer on every iteration, fills it and
// releases it again.
func (r Runner) Unoptimized() Result {
	start := time.Now()
	for i := 0; i < r.Iterations; i++ {
		data := mem.Make[flo8.F43](r.Tracker, r.Elements)
		Fill(data)
		mem.Release(r.Tracker, data)
	}
	return r.result("non-optimized", start)
}

// Optimized allocates one buffer up front and reuses it for every iteration.
// However many iterations run, it allocates and frees exactly Elements bytes.
func (r Runner) Optimized() Result {
	start := time.Now()
	data := mem.Make[flo8.F43](r.Tracker, r.Elements)
	for i := 0; i < r.Iterations; i++ {
		Fill(data)
	}
	mem.Release(r.Tracker, data)
	return r.result("optimized", start)
}

// Pooled cycles the buffer through a mem.Pool every iteration. The pool may
// occasionally shed its buffer, so unlike Optimized the allocated total is
// not exact, but it must not scale with the iteration count.
func (r Runner) Pooled() Result {
	start := time.Now()
	pool := mem.NewPool[flo8.F43](r.Tracker)
	for i := 0; i < r.Iterations; i++ {
		data := pool.Get(r.Elements)
		Fill(data)
		pool.Put(data)
	}
	return r.result("pooled", start)
}

// Fill writes the element indices into data: data[j] holds FromFloat(j).
// Indices past 480 all saturate to flo8.MaxF43.
func Fill(data []flo8.F43) {
	for j := range data {
		data[j] = flo8.FromFloat(float32(j))
	}
}

func (r Runner) result(name string, start time.Time) Result {
	elapsed := time.Since(start)
	stats := r.Tracker.Stats()
	return Result{
		Name:      name,
		Allocated: stats.Allocated,
		Freed:     stats.Freed,
		Elapsed:   elapsed,
		Joules:    Energy(elapsed, r.PowerWatts),
	}
}

// Energy estimates the energy in joules spent running for d at watts. It is
// a plain linear model, not a measurement.
func Energy(d time.Duration, watts float64) float64 {
	return d.Seconds() * watts
}
