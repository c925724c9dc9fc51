package life

import (
	"strconv"

	"golboard/pkg/core"
)

// Config holds parameters for the registered Life simulation.
type Config struct {
	Width  int
	Height int
	Seed   int64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: DefaultWidth, Height: DefaultHeight, Seed: 42}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// Sim drives a single board continuously and keeps watch for repeats.
type Sim struct {
	cfg     Config
	seed    int64
	board   *Board
	tracker *Tracker
}

// NewSim returns a seeded simulation. Invalid dimensions fall back to the
// defaults.
func NewSim(cfg Config) *Sim {
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}
	b, _ := NewBoard(0, cfg.Width, cfg.Height)
	s := &Sim{cfg: cfg, board: b}
	s.Reset(0)
	return s
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "life" }

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size { return s.board.Size() }

// Cells exposes the current grid values.
func (s *Sim) Cells() []uint8 { return s.board.Cells() }

// Board returns the simulated board.
func (s *Sim) Board() *Board { return s.board }

// Reset reseeds the board. A zero seed reuses the configured one.
func (s *Sim) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	s.seed = seed
	Seed(s.board, core.NewRNG(seed))
	s.tracker = NewTracker(s.board)
}

// Step advances the simulation by one generation.
func (s *Sim) Step() {
	Step(s.board)
	s.tracker.Observe(s.board)
}

// Status reports whether the board has settled since the last reset.
func (s *Sim) Status() Result { return s.tracker.Result() }

// Parameters describes the board and the run for display.
func (s *Sim) Parameters() core.ParameterSnapshot {
	st := s.Status()
	period := "-"
	if st.Reached() {
		period = strconv.Itoa(st.Period)
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				{Key: "w", Label: "Width", Value: strconv.Itoa(s.board.Width())},
				{Key: "h", Label: "Height", Value: strconv.Itoa(s.board.Height())},
				{Key: "seed", Label: "Seed", Value: strconv.FormatInt(s.seed, 10)},
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				{Key: "generation", Label: "Generation", Value: strconv.Itoa(s.board.Generation())},
				{Key: "population", Label: "Population", Value: strconv.Itoa(s.board.Population())},
				{Key: "status", Label: "Status", Value: st.Outcome.String()},
				{Key: "period", Label: "Period", Value: period},
			},
		},
	}}
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return NewSim(FromMap(cfg))
	})
}
