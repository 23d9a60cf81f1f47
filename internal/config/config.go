// Package config loads the test dispatcher's TOML configuration.
package config

import (
	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pavanmanishd/nostl"
)

const (
	defaultLogLevel = "info"
	defaultGrowth   = "normal"
)

// Config is the dispatcher configuration.
//
//	[log]
//	level = "debug"
//
//	[vector]
//	initial_capacity = 2
//	growth = "restrictive"
type Config struct {
	Log    LogConfig    `toml:"log"`
	Vector VectorConfig `toml:"vector"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type VectorConfig struct {
	InitialCapacity int    `toml:"initial_capacity"`
	Growth          string `toml:"growth"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	c.SetDefaultValues()
	return c
}

// Load decodes the file at path and fills in defaults for absent keys.
func Load(path string) (*Config, error) {
	c := &Config{}
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return nil, errors.Wrapf(err, "config: decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Newf("config: unknown key %q in %s", undecoded[0].String(), path)
	}
	c.SetDefaultValues()
	if err := c.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config: %s", path)
	}
	return c, nil
}

// SetDefaultValues fills zero fields with their defaults.
func (c *Config) SetDefaultValues() {
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
	if c.Vector.InitialCapacity == 0 {
		c.Vector.InitialCapacity = nostl.DefaultInitialCapacity
	}
	if c.Vector.Growth == "" {
		c.Vector.Growth = defaultGrowth
	}
}

// Validate checks every value can be applied.
func (c *Config) Validate() error {
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if c.Vector.InitialCapacity < 1 {
		return errors.Newf("vector.initial_capacity must be positive, got %d", c.Vector.InitialCapacity)
	}
	_, err := nostl.ParseGrowthPolicy(c.Vector.Growth)
	return err
}

// LogLevel parses the configured log level.
func (c *Config) LogLevel() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return zap.InfoLevel, errors.Wrap(err, "log.level")
	}
	return lvl, nil
}

// VectorOptions returns the container options the configuration selects.
// Call Validate first; invalid values fall back to the defaults.
func (c *Config) VectorOptions() []nostl.Option {
	policy, _ := nostl.ParseGrowthPolicy(c.Vector.Growth)
	return []nostl.Option{
		nostl.WithInitialCapacity(c.Vector.InitialCapacity),
		nostl.WithGrowthPolicy(policy),
	}
}
