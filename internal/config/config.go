package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Tasks   TasksConfig   `yaml:"tasks"`
}

type StorageConfig struct {
	Backend     string `yaml:"backend"`
	DBPath      string `yaml:"db_path"`
	RedisAddr   string `yaml:"redis_addr"`
	RedisPrefix string `yaml:"redis_prefix"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type TasksConfig struct {
	AllowRecompletion bool `yaml:"allow_recompletion"`
}

// Load reads the YAML file at path, falling back to tracker.yaml or
// tracker.yml in the working directory when path is empty. A missing default
// file is not an error. TRACKER_* environment variables override the file.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		for _, loc := range []string{"tracker.yaml", "tracker.yml"} {
			if _, err := os.Stat(loc); err == nil {
				path = loc
				break
			}
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Path returns the config path from TRACKER_CONFIG, or "".
func Path() string {
	return os.Getenv("TRACKER_CONFIG")
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("TRACKER_BACKEND"); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv("TRACKER_DB_PATH"); v != "" {
		c.Storage.DBPath = v
	}
	if v := os.Getenv("TRACKER_REDIS_ADDR"); v != "" {
		c.Storage.RedisAddr = v
	}
	if v := os.Getenv("TRACKER_REDIS_PREFIX"); v != "" {
		c.Storage.RedisPrefix = v
	}
	if v := os.Getenv("TRACKER_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("TRACKER_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv("TRACKER_ALLOW_RECOMPLETION"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parse TRACKER_ALLOW_RECOMPLETION: %w", err)
		}
		c.Tasks.AllowRecompletion = b
	}
	return nil
}

func (c *Config) applyDefaults() {
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	if c.Storage.Backend == "" {
		c.Storage.Backend = BackendSQLite
	}
	if c.Storage.DBPath == "" {
		c.Storage.DBPath = "tracker.db"
	}
	if c.Storage.RedisAddr == "" {
		c.Storage.RedisAddr = "localhost:6379"
	}
	if c.Storage.RedisPrefix == "" {
		c.Storage.RedisPrefix = "tracker:"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendMemory, BackendSQLite, BackendRedis:
	default:
		return fmt.Errorf("unknown storage backend %q (want memory, sqlite or redis)", c.Storage.Backend)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q (want text or json)", c.Log.Format)
	}
	return nil
}
