// Package config loads the optional flowsuite configuration file.
package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Environment overrides.
const (
	EnvRedisAddr = "FLOWSUITE_REDIS_ADDR"
	EnvCacheKey  = "FLOWSUITE_CACHE_KEY"
)

// Cache drivers.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheFile   = "file"
)

// Config is the root of flowsuite.yaml.
type Config struct {
	Server ServerConfig `yaml:"server" json:"server"`
	Log    LogConfig    `yaml:"log" json:"log"`
	Cache  CacheConfig  `yaml:"cache" json:"cache"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr" json:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout" json:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout" json:"write_timeout"`
}

type LogConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

type CacheConfig struct {
	Driver string      `yaml:"driver" json:"driver"`
	Redis  RedisConfig `yaml:"redis" json:"redis"`
	File   FileConfig  `yaml:"file" json:"file"`

	// EncryptionKey is a hex-encoded AES-256 key. When set, cached
	// documents are encrypted before they reach the driver.
	EncryptionKey string `yaml:"encryption_key" json:"encryption_key"`
}

type FileConfig struct {
	Dir string `yaml:"dir" json:"dir"`
}

type RedisConfig struct {
	Addr     string        `yaml:"addr" json:"addr"`
	Password string        `yaml:"password" json:"password"`
	DB       int           `yaml:"db" json:"db"`
	Prefix   string        `yaml:"prefix" json:"prefix"`
	TTL      time.Duration `yaml:"ttl" json:"ttl"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Cache: CacheConfig{
			Driver: CacheMemory,
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: "flowsuite:doc:",
				TTL:    24 * time.Hour,
			},
			File: FileConfig{
				Dir: filepath.Join(".flowsuite", "cache"),
			},
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
// JSON and JSONC files are accepted; JSON is a subset of YAML once comments
// and trailing commas are stripped, so every format goes through one decoder.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		data = jsonc.ToJSON(data)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return cfg, cfg.Validate()
}

// ApplyEnv applies environment overrides read through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if addr := getenv(EnvRedisAddr); addr != "" {
		c.Cache.Redis.Addr = addr
	}
	if key := getenv(EnvCacheKey); key != "" {
		c.Cache.EncryptionKey = key
	}
}

// Key decodes EncryptionKey. It returns nil when no key is configured.
func (c CacheConfig) Key() ([]byte, error) {
	if c.EncryptionKey == "" {
		return nil, nil
	}
	key, err := hex.DecodeString(c.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("encryption key is not hex: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("encryption key must be 32 bytes, got %d", len(key))
	}
	return key, nil
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	switch c.Cache.Driver {
	case CacheNone, CacheMemory, CacheRedis, CacheFile:
	default:
		return fmt.Errorf("unknown cache driver %q", c.Cache.Driver)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	if c.Cache.Driver == CacheRedis && c.Cache.Redis.Addr == "" {
		return fmt.Errorf("redis cache requires an address")
	}
	if c.Cache.Driver == CacheFile && c.Cache.File.Dir == "" {
		return fmt.Errorf("file cache requires a directory")
	}
	if _, err := c.Cache.Key(); err != nil {
		return err
	}
	return nil
}
