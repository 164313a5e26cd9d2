package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Session store backends
const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

type Config struct {
	Server  ServerConfig
	Logger  LoggerConfig
	Session SessionConfig
	Redis   RedisConfig
	Tracker TrackerConfig
	Content ContentConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	BodyLimit    int
}

type LoggerConfig struct {
	Env   string
	Level string
}

// SessionConfig controls where per-page view state lives and for how long.
type SessionConfig struct {
	Backend string
	TTL     time.Duration
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// TrackerConfig tunes the sidebar section tracker.
type TrackerConfig struct {
	ReferenceFraction float64 // fraction of the viewport height used as the reference line
	HeaderOffset      float64 // fixed header height in pixels
	TopThreshold      float64 // scroll offset under which the first section is forced
}

// ContentConfig points at an optional content file. Empty means the embedded default.
type ContentConfig struct {
	Path string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 20)
	v.SetDefault("server.write_timeout", 20)
	v.SetDefault("server.idle_timeout", 20)
	v.SetDefault("server.body_limit", 1024*1024)

	v.SetDefault("logger.env", "development")
	v.SetDefault("logger.level", "info")

	v.SetDefault("session.backend", SessionBackendMemory)
	v.SetDefault("session.ttl", 60)

	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.db", 0)

	v.SetDefault("tracker.reference_fraction", 1.0/3.0)
	v.SetDefault("tracker.header_offset", 100)
	v.SetDefault("tracker.top_threshold", 10)

	v.SetDefault("content.path", "")
}

// LoadConfig reads config.yaml (if present), .env (if present) and environment overrides.
func LoadConfig() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("logger.env", "APP_ENV")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
			IdleTimeout:  time.Duration(v.GetInt("server.idle_timeout")) * time.Second,
			BodyLimit:    v.GetInt("server.body_limit"),
		},
		Logger: LoggerConfig{
			Env:   v.GetString("logger.env"),
			Level: v.GetString("logger.level"),
		},
		Session: SessionConfig{
			Backend: strings.ToLower(v.GetString("session.backend")),
			TTL:     time.Duration(v.GetInt("session.ttl")) * time.Minute,
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Tracker: TrackerConfig{
			ReferenceFraction: v.GetFloat64("tracker.reference_fraction"),
			HeaderOffset:      v.GetFloat64("tracker.header_offset"),
			TopThreshold:      v.GetFloat64("tracker.top_threshold"),
		},
		Content: ContentConfig{
			Path: v.GetString("content.path"),
		},
	}
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	switch c.Session.Backend {
	case SessionBackendMemory:
	case SessionBackendRedis:
		if c.Redis.Address == "" {
			return fmt.Errorf("redis session backend requires redis.address")
		}
	default:
		return fmt.Errorf("unsupported session backend: %q", c.Session.Backend)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("session ttl must be positive")
	}
	if c.Tracker.ReferenceFraction <= 0 || c.Tracker.ReferenceFraction > 1 {
		return fmt.Errorf("tracker.reference_fraction must be in (0, 1], got %v", c.Tracker.ReferenceFraction)
	}
	if c.Tracker.HeaderOffset < 0 || c.Tracker.TopThreshold < 0 {
		return fmt.Errorf("tracker offsets must not be negative")
	}
	return nil
}
