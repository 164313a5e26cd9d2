package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, 20*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, SessionBackendMemory, cfg.Session.Backend)
	assert.Equal(t, 60*time.Minute, cfg.Session.TTL)
	assert.InDelta(t, 1.0/3.0, cfg.Tracker.ReferenceFraction, 1e-9)
	assert.Equal(t, 100.0, cfg.Tracker.HeaderOffset)
	assert.Equal(t, 10.0, cfg.Tracker.TopThreshold)
	assert.Empty(t, cfg.Content.Path)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("server.port", 9000)
	v.Set("session.backend", "REDIS")
	v.Set("redis.address", "cache:6379")
	v.Set("tracker.header_offset", 64)

	cfg := fromViper(v)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, SessionBackendRedis, cfg.Session.Backend)
	assert.Equal(t, "cache:6379", cfg.Redis.Address)
	assert.Equal(t, 64.0, cfg.Tracker.HeaderOffset)
}

func TestConfig_Validate(t *testing.T) {
	base := func() *Config {
		v := viper.New()
		setDefaults(v)
		return fromViper(v)
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }},
		{"unknown backend", func(c *Config) { c.Session.Backend = "mongo" }},
		{"redis without address", func(c *Config) {
			c.Session.Backend = SessionBackendRedis
			c.Redis.Address = ""
		}},
		{"zero ttl", func(c *Config) { c.Session.TTL = 0 }},
		{"fraction out of range", func(c *Config) { c.Tracker.ReferenceFraction = 1.5 }},
		{"negative header offset", func(c *Config) { c.Tracker.HeaderOffset = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
