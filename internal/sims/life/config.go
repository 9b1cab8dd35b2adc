package life

import (
	"fmt"
	"strconv"
)

// Config controls board construction and seeding.
type Config struct {
	Size int
	Seed int64

	// Density is the chance a cell starts alive when no pattern is set.
	Density float64

	// Pattern names a catalog pattern to place instead of random seeding.
	Pattern string
	// X and Y position the pattern's top-left corner. Negative values centre it.
	X, Y int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size:    64,
		Seed:    42,
		Density: 0.3,
		X:       -1,
		Y:       -1,
	}
}

// Validate reports the first problem with c.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, c.Size)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("life: density %v outside [0,1]", c.Density)
	}
	if c.Pattern == "" {
		return nil
	}
	p, err := LookupPattern(c.Pattern)
	if err != nil {
		return err
	}
	if p.W > c.Size || p.H > c.Size {
		return fmt.Errorf("%w: %s is %dx%d, board is %dx%d", ErrPatternTooLarge, p.Name, p.W, p.H, c.Size, c.Size)
	}
	return nil
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Missing keys keep their defaults. A malformed value or a config that fails
// Validate is an error.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	var err error
	if v, ok := cfg["size"]; ok {
		if c.Size, err = strconv.Atoi(v); err != nil {
			return c, fmt.Errorf("life: size %q: %w", v, err)
		}
	}
	if v, ok := cfg["seed"]; ok {
		if c.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return c, fmt.Errorf("life: seed %q: %w", v, err)
		}
	}
	if v, ok := cfg["density"]; ok {
		if c.Density, err = strconv.ParseFloat(v, 64); err != nil {
			return c, fmt.Errorf("life: density %q: %w", v, err)
		}
	}
	if v, ok := cfg["x"]; ok {
		if c.X, err = strconv.Atoi(v); err != nil {
			return c, fmt.Errorf("life: x %q: %w", v, err)
		}
	}
	if v, ok := cfg["y"]; ok {
		if c.Y, err = strconv.Atoi(v); err != nil {
			return c, fmt.Errorf("life: y %q: %w", v, err)
		}
	}
	if v, ok := cfg["pattern"]; ok {
		c.Pattern = v
	}
	return c, c.Validate()
}
