package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c := &Config{}
	require.NoError(t, c.Load(nil))
	assert.Equal(t, 2, c.Depth)
	assert.Equal(t, "default", c.Mode)
	assert.Equal(t, 1, c.Threads)
	assert.Equal(t, 1000, c.Games)
	assert.Equal(t, "random", c.Strategy)
	assert.False(t, c.Debug)
	assert.NoError(t, c.Validate())
}

func TestLoadFlags(t *testing.T) {
	c := &Config{}
	require.NoError(t, c.Load([]string{
		"-depth", "4", "-mode", "nearfull", "-threads", "8",
		"-games", "50", "-seed", "123", "-strategy", "greedy", "-debug",
	}))
	assert.Equal(t, 4, c.Depth)
	assert.Equal(t, "nearfull", c.Mode)
	assert.Equal(t, 8, c.Threads)
	assert.Equal(t, 50, c.Games)
	assert.Equal(t, uint64(123), c.Seed)
	assert.Equal(t, "greedy", c.Strategy)
	assert.True(t, c.Debug)
	assert.NoError(t, c.Validate())
}

func TestLoadBadNumeric(t *testing.T) {
	c := &Config{}
	// Non-numeric depth is a reported user error, not a panic.
	assert.Error(t, c.Load([]string{"-depth", "banana"}))
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative depth", func(c *Config) { c.Depth = -1 }},
		{"unknown mode", func(c *Config) { c.Mode = "sideways" }},
		{"zero threads", func(c *Config) { c.Threads = 0 }},
		{"zero games", func(c *Config) { c.Games = 0 }},
		{"unknown strategy", func(c *Config) { c.Strategy = "psychic" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := &Config{}
			require.NoError(t, c.Load(nil))
			tc.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}
