package bench

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pfcm/flo8"
	"github.com/pfcm/flo8/mem"
)

func testRunner(iterations, elements int) Runner {
	return Runner{
		Iterations: iterations,
		Elements:   elements,
		PowerWatts: DefaultPowerWatts,
		Tracker:    &mem.Tracker{},
	}
}

func TestOptimizedAllocatesOnce(t *testing.T) {
	r := testRunner(1000, 64)
	res := r.Optimized()

	// One buffer for the whole run, however many iterations: the point of
	// the comparison.
	assert.Equal(t, uint64(64), res.Allocated)
	assert.Equal(t, uint64(64), res.Freed)
	assert.Equal(t, "optimized", res.Name)
}

func TestUnoptimizedScalesWithIterations(t *testing.T) {
	r := testRunner(10, 8)
	res := r.Unoptimized()

	assert.Equal(t, uint64(10*8), res.Allocated)
	assert.Equal(t, uint64(10*8), res.Freed)
	assert.Equal(t, "non-optimized", res.Name)
}

func TestPooledDoesNotScaleWithIterations(t *testing.T) {
	r := testRunner(500, 32)
	res := r.Pooled()

	assert.GreaterOrEqual(t, res.Allocated, uint64(32))
	assert.Less(t, res.Allocated, uint64(500*32))
}

func TestResultJoules(t *testing.T) {
	r := testRunner(5, 8)
	res := r.Optimized()

	assert.Equal(t, Energy(res.Elapsed, r.PowerWatts), res.Joules)
	assert.Positive(t, res.Elapsed)
}

func TestFill(t *testing.T) {
	data := make([]flo8.F43, 600)
	Fill(data)

	assert.Equal(t, flo8.F43(0), data[0])
	assert.Equal(t, flo8.FromFloat(1.0), data[1])
	assert.Equal(t, flo8.FromFloat(479.0), data[479])
	// Indices past the representable range saturate.
	assert.Equal(t, flo8.MaxF43, data[599])
}

func TestEnergy(t *testing.T) {
	for _, c := range []struct {
		d     time.Duration
		watts float64
		out   float64
	}{
		{0, 20, 0},
		{time.Second, 20, 20},
		{2 * time.Second, 20, 40},
		{500 * time.Millisecond, 10, 5},
	} {
		assert.Equal(t, c.out, Energy(c.d, c.watts))
	}
}

func TestDefault(t *testing.T) {
	tr := &mem.Tracker{}
	r := Default(tr)

	assert.Equal(t, 1000000, r.Iterations)
	assert.Equal(t, 1000, r.Elements)
	assert.Equal(t, 20.0, r.PowerWatts)
	assert.Same(t, tr, r.Tracker)
}
