package life

import (
	"crypto/md5"
	"fmt"
)

// Outcome is the state of a stabilization search.
type Outcome int

const (
	// Running means no repeat has been observed yet.
	Running Outcome = iota
	// Stable means the last step reproduced the generation before it.
	Stable
	// Cyclic means the last step reproduced an earlier generation.
	Cyclic
	// Exhausted means the attempt budget ran out without a repeat.
	Exhausted
)

func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case Stable:
		return "stable"
	case Cyclic:
		return "cyclic"
	case Exhausted:
		return "exhausted"
	}
	return "unknown"
}

// MarshalText encodes the outcome by name.
func (o Outcome) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// UnmarshalText decodes an outcome name.
func (o *Outcome) UnmarshalText(text []byte) error {
	for _, c := range []Outcome{Running, Stable, Cyclic, Exhausted} {
		if c.String() == string(text) {
			*o = c
			return nil
		}
	}
	return fmt.Errorf("life: unknown outcome %q", text)
}

// Result summarizes a stabilization search.
type Result struct {
	Outcome Outcome
	// Generations is the number of steps taken by the search.
	Generations int
	// Period is the cycle length: 1 for Stable, >1 for Cyclic, 0 otherwise.
	Period int
	// FirstSeen is the step at which the repeated generation first appeared.
	FirstSeen int
}

// Reached reports whether the board settled into a fixed point or cycle.
func (r Result) Reached() bool { return r.Outcome == Stable || r.Outcome == Cyclic }

// Tracker detects repeated generations of one board, step by step. States are
// remembered by digest, so memory stays small for long runs on large boards.
type Tracker struct {
	seen  map[[md5.Size]byte]int
	steps int
	res   Result
}

// NewTracker starts tracking from the board's current generation.
func NewTracker(b *Board) *Tracker {
	t := &Tracker{seen: map[[md5.Size]byte]int{}}
	t.seen[md5.Sum(b.Cells())] = 0
	return t
}

// Observe records the board after one Step and reports the search state. Once
// a repeat is found the outcome is latched and further calls are no-ops.
func (t *Tracker) Observe(b *Board) Outcome {
	if t.res.Outcome != Running {
		return t.res.Outcome
	}
	t.steps++
	t.res.Generations = t.steps
	key := md5.Sum(b.Cells())
	if first, ok := t.seen[key]; ok {
		t.res.Period = t.steps - first
		t.res.FirstSeen = first
		t.res.Outcome = Cyclic
		if t.res.Period == 1 {
			t.res.Outcome = Stable
		}
		return t.res.Outcome
	}
	t.seen[key] = t.steps
	return Running
}

// Result returns the search state so far.
func (t *Tracker) Result() Result { return t.res }

// Stabilize runs up to maxAttempts steps and stops at the first fixed point or
// cycle. The board is left at the generation where the search stopped.
func Stabilize(b *Board, maxAttempts int) Result {
	t := NewTracker(b)
	for i := 0; i < maxAttempts; i++ {
		Step(b)
		if t.Observe(b) != Running {
			return t.Result()
		}
	}
	res := t.Result()
	res.Outcome = Exhausted
	return res
}
