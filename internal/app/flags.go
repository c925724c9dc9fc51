package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim   string
	W     int
	H     int
	Scale int
	TPS   int
	Rate  int
	Seed  int64
	Panel int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", W: 96, H: 64, Scale: 8, TPS: 60, Rate: 10, Seed: 42, Panel: 200}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.W, "w", c.W, "board width in cells")
	fs.IntVar(&c.H, "h", c.H, "board height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Rate, "rate", c.Rate, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Panel, "panel", c.Panel, "side panel width in pixels (0 hides it)")
}

// SimConfig returns the string map handed to the sim factory.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"w":    strconv.Itoa(c.W),
		"h":    strconv.Itoa(c.H),
		"seed": strconv.FormatInt(c.Seed, 10),
	}
}
