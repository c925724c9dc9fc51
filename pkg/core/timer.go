package core

import "time"

// FixedStep paces simulation updates at a steady generations-per-second rate,
// independent of how often the caller polls it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given rate.
func NewFixedStep(rate int) *FixedStep {
	return newFixedStep(rate, time.Now)
}

func newFixedStep(rate int, now func() time.Time) *FixedStep {
	fs := &FixedStep{now: now}
	fs.SetRate(rate)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the number of steps per second. Non-positive rates fall
// back to 10.
func (f *FixedStep) SetRate(rate int) {
	if rate <= 0 {
		rate = 10
	}
	f.step = time.Second / time.Duration(rate)
}

// Rate returns the current number of steps per second.
func (f *FixedStep) Rate() int {
	return int(time.Second / f.step)
}

// ShouldStep reports whether the simulation should advance by one generation.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		// Drop backlog after a stall instead of stepping in bursts.
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
