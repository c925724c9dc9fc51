// Package config holds the settings of the board service.
package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"

	"golboard/pkg/life"
)

// Config represents the service settings.
type Config struct {
	Addr string `json:"addr"`
	// MaxAttempts bounds the generations a final-state search may run.
	MaxAttempts int `json:"max_attempts"`
	// Width and Height are used when a create request omits dimensions.
	Width  int `json:"width"`
	Height int `json:"height"`
	// Seed fixes board seeding; zero draws a fresh seed per board.
	Seed int64  `json:"seed"`
	File string `json:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Addr:        ":8080",
		MaxAttempts: 100,
		Width:       life.DefaultWidth,
		Height:      life.DefaultHeight,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Addr, "addr", c.Addr, "listen address")
	fs.IntVar(&c.MaxAttempts, "max-attempts", c.MaxAttempts, "maximum generations searched for a final state")
	fs.IntVar(&c.Width, "w", c.Width, "default board width")
	fs.IntVar(&c.Height, "h", c.Height, "default board height")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "fixed seed for board seeding (0 = random)")
	fs.StringVar(&c.File, "config", c.File, "optional JSON config file")
}

// LoadFile overlays settings from a JSON file. Keys missing from the file keep
// their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays LIFE_ADDR, PORT, LIFE_MAX_ATTEMPTS and LIFE_SEED.
func (c *Config) ApplyEnv(getenv func(string) string) {
	env := map[string]string{}
	for _, key := range []string{"LIFE_ADDR", "PORT", "LIFE_MAX_ATTEMPTS", "LIFE_SEED"} {
		if v := getenv(key); v != "" {
			env[key] = v
		}
	}
	if v, ok := env["PORT"]; ok {
		c.Addr = ":" + v
	}
	if v, ok := env["LIFE_ADDR"]; ok {
		c.Addr = v
	}
	if v, ok := env["LIFE_MAX_ATTEMPTS"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.MaxAttempts = parsed
		}
	}
	if v, ok := env["LIFE_SEED"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
}

// Validate reports settings the service cannot run with.
func (c *Config) Validate() error {
	if c.MaxAttempts < 0 {
		return fmt.Errorf("config: max attempts must not be negative, got %d", c.MaxAttempts)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: default dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	return nil
}
