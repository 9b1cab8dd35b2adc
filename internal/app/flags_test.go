package app

import (
	"flag"
	"testing"

	"torus-life/internal/core"
	"torus-life/internal/sims/life"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)

	require.NoError(t, fs.Parse([]string{"-size", "12", "-pattern", "glider", "-gps", "4", "-seed", "9"}))
	assert.Equal(t, 12, cfg.Size)
	assert.Equal(t, "glider", cfg.Pattern)
	assert.Equal(t, 4, cfg.GPS)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, "life", cfg.Sim)
}

func TestSimOptionsBuildSim(t *testing.T) {
	cfg := NewConfig()
	cfg.Size = 10
	cfg.Pattern = "beacon"

	opts := cfg.SimOptions()
	assert.Equal(t, "10", opts["size"])
	assert.Equal(t, "beacon", opts["pattern"])

	sim, err := core.Sims()[cfg.Sim](opts)
	require.NoError(t, err)
	assert.Equal(t, core.Size{W: 10, H: 10}, sim.Size())

	cfg.Pattern = ""
	_, ok := cfg.SimOptions()["pattern"]
	assert.False(t, ok)
}

func TestConfigValidateRejectsNonPositiveSize(t *testing.T) {
	for _, size := range []string{"0", "-5"} {
		cfg := NewConfig()
		fs := flag.NewFlagSet("life", flag.ContinueOnError)
		cfg.Bind(fs)
		require.NoError(t, fs.Parse([]string{"-size", size}))

		assert.ErrorIs(t, cfg.Validate(), life.ErrInvalidSize, "size %s", size)

		_, err := core.Sims()[cfg.Sim](cfg.SimOptions())
		assert.ErrorIs(t, err, life.ErrInvalidSize, "factory must not fall back for size %s", size)
	}
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, NewConfig().Validate())

	tests := []struct {
		name  string
		apply func(c *Config)
	}{
		{"density", func(c *Config) { c.Density = 2 }},
		{"scale", func(c *Config) { c.Scale = 0 }},
		{"tps", func(c *Config) { c.TPS = 0 }},
		{"gps", func(c *Config) { c.GPS = -1 }},
		{"hud", func(c *Config) { c.HUDWidth = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.apply(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
