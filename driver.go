package lander

import "time"

// DEFAULT_RATE is the number of fixed steps per simulated second
const DEFAULT_RATE = 60

// Driver runs a fixed-timestep accumulator.
// Wall time is accumulated in nanoseconds so that one long frame and many short frames covering the same
// span run the same number of steps. The number of catch-up steps per frame is not bounded: after a long
// stall a single Frame call runs every missed step.
type Driver struct {
	// Rate in steps per second, DEFAULT_RATE when zero
	Rate int

	accumulator time.Duration
	previous    int64
}

func (d *Driver) rate() int {
	if d.Rate <= 0 {
		return DEFAULT_RATE
	}
	return d.Rate
}

// Step returns the fixed step as a duration
func (d *Driver) Step() time.Duration {
	return time.Second / time.Duration(d.rate())
}

// Leftover returns the accumulated time not yet consumed by a step
func (d *Driver) Leftover() time.Duration {
	return d.accumulator
}

// Frame takes the clock reading in milliseconds, measures the time since the previous reading
// (or since zero on the first call) and runs the due steps
func (d *Driver) Frame(nowMillis int64, tick func(dt float64)) int {
	elapsed := time.Duration(nowMillis-d.previous) * time.Millisecond
	d.previous = nowMillis
	if elapsed < 0 {
		elapsed = 0
	}

	return d.Accumulate(elapsed, tick)
}

// Accumulate adds elapsed wall time and calls tick once per whole fixed step
func (d *Driver) Accumulate(elapsed time.Duration, tick func(dt float64)) int {
	step := d.Step()
	dt := 1.0 / float64(d.rate())

	d.accumulator += elapsed
	steps := 0
	for d.accumulator >= step {
		tick(dt)
		d.accumulator -= step
		steps++
	}

	return steps
}
