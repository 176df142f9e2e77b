// Package config holds the YAML configuration for the bitmapctl tool and
// the window store it drives: window capacity, logging, and which
// persistence backend to use.
package config

import (
	"io/ioutil"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v2"
)

// PersistenceType selects the window store backend.
type PersistenceType = string

const (
	PersistenceTypeMemory PersistenceType = "memory"
	PersistenceTypeRedis  PersistenceType = "redis"
)

var defaultMaxIdle = uint(1000)
var defaultMaxActive = uint(0)

// DefaultConfig returns the configuration bitmapctl starts with when no
// config file is given.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			NumBits: 256,
		},
		Log: LogConfig{
			Level: "info",
		},
		Persistence: PersistenceConfig{
			Type: PersistenceTypeMemory,
			Redis: RedisConfig{
				Addr:        "127.0.0.1:6379",
				Database:    0,
				MaxIdle:     &defaultMaxIdle,
				MaxActive:   &defaultMaxActive,
				IdleTimeout: 240 * time.Second,
			},
		},
	}
}

// WindowConfig sizes the BitmapRange windows created by bitmapctl.
type WindowConfig struct {
	// NumBits is the window capacity N. Must be a positive multiple of
	// 32; 0 means use bitmaprange.DefaultNumBits.
	NumBits uint32 `yaml:"num_bits"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level string `yaml:"level"`
}

// PersistenceConfig selects and configures the window store backend.
type PersistenceConfig struct {
	Type  PersistenceType `yaml:"type"`
	Redis RedisConfig     `yaml:"redis"`
}

// RedisConfig configures the redis-backed window store.
type RedisConfig struct {
	Addr        string        `yaml:"addr"`
	Password    string        `yaml:"password"`
	Database    int           `yaml:"database"`
	MaxIdle     *uint         `yaml:"max_idle"`
	MaxActive   *uint         `yaml:"max_active"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Config is the top-level bitmapctl configuration.
type Config struct {
	Window      WindowConfig      `yaml:"window"`
	Log         LogConfig         `yaml:"log"`
	Persistence PersistenceConfig `yaml:"persistence"`
}

// Validate checks the configuration for obviously invalid values.
func (c Config) Validate() error {
	if c.Window.NumBits != 0 && c.Window.NumBits%32 != 0 {
		return errors.New("window.num_bits must be a multiple of 32")
	}
	if c.Persistence.Type != PersistenceTypeMemory && c.Persistence.Type != PersistenceTypeRedis {
		return errors.Errorf("invalid persistence type %q", c.Persistence.Type)
	}
	if c.Persistence.Type == PersistenceTypeRedis && c.Persistence.Redis.Addr == "" {
		return errors.New("persistence.redis.addr is required when persistence.type is redis")
	}
	return nil
}

// ParseConfig reads and validates a YAML config file, falling back to
// DefaultConfig when filePath is empty.
func ParseConfig(filePath string) (Config, error) {
	c := DefaultConfig()
	if filePath == "" {
		return c, nil
	}
	b, err := ioutil.ReadFile(filePath)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config file")
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Config{}, errors.Wrap(err, "parse config file")
	}
	if err := c.Validate(); err != nil {
		return Config{}, errors.Wrap(err, "invalid config")
	}
	return c, nil
}

// GetLogger builds a *zap.Logger from the Log config, mirroring the
// teacher's Config.GetLogger helper.
func (c Config) GetLogger() (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return nil, errors.Wrap(err, "parse log level")
	}
	lc := zap.NewDevelopmentConfig()
	lc.Level = zap.NewAtomicLevelAt(level)
	return lc.Build()
}
