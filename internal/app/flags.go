package app

import (
	"flag"
	"fmt"
	"strconv"

	"torus-life/internal/sims/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	GPS      int
	HUDWidth int

	Seed    int64
	Size    int
	Density float64
	Pattern string
	Verbose bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Scale: 8, TPS: 60, GPS: 10, HUDWidth: 220, Seed: 42, Size: 64, Density: 0.3}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.GPS, "gps", c.GPS, "generations per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "status panel width in pixels (0 hides it)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random boards")
	fs.IntVar(&c.Size, "size", c.Size, "board edge length in cells")
	fs.Float64Var(&c.Density, "density", c.Density, "chance a cell starts alive on a random board")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "catalog pattern to place instead of a random board")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "enable debug logging")
}

// Validate reports the first unusable setting. Board settings are checked
// before any sim is built so a bad size never reaches population.
func (c *Config) Validate() error {
	switch {
	case c.Size <= 0:
		return fmt.Errorf("size: %w: got %d", life.ErrInvalidSize, c.Size)
	case c.Density < 0 || c.Density > 1:
		return fmt.Errorf("density %v outside [0,1]", c.Density)
	case c.Scale <= 0:
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	case c.TPS <= 0:
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	case c.GPS <= 0:
		return fmt.Errorf("gps must be positive, got %d", c.GPS)
	case c.HUDWidth < 0:
		return fmt.Errorf("hud width must not be negative, got %d", c.HUDWidth)
	}
	return nil
}

// SimOptions converts the board settings into the key/value form accepted by
// simulation factories.
func (c *Config) SimOptions() map[string]string {
	opts := map[string]string{
		"size":    strconv.Itoa(c.Size),
		"seed":    strconv.FormatInt(c.Seed, 10),
		"density": strconv.FormatFloat(c.Density, 'f', -1, 64),
	}
	if c.Pattern != "" {
		opts["pattern"] = c.Pattern
	}
	return opts
}
