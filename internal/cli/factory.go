package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lime816/whatsappsuitetest-sub002"
	"github.com/lime816/whatsappsuitetest-sub002/internal/config"
	"github.com/lime816/whatsappsuitetest-sub002/internal/logging"
	"github.com/lime816/whatsappsuitetest-sub002/pkg/adapters/file"
	"github.com/lime816/whatsappsuitetest-sub002/pkg/adapters/memory"
	"github.com/lime816/whatsappsuitetest-sub002/pkg/adapters/redis"
	"github.com/lime816/whatsappsuitetest-sub002/pkg/observability"
	"github.com/lime816/whatsappsuitetest-sub002/pkg/persistence/middleware"
	"github.com/lime816/whatsappsuitetest-sub002/pkg/ports"
)

// Options contains the flags shared by every command.
type Options struct {
	ConfigPath string
	Debug      bool
}

// LoadConfig reads the config file, if any, and applies environment
// overrides. Debug forces the debug log level.
func LoadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return cfg, err
	}
	cfg.ApplyEnv(os.Getenv)
	if opts.Debug {
		cfg.Log.Level = "debug"
	}
	return cfg, nil
}

// CreateLogger builds the stderr logger described by cfg.
func CreateLogger(cfg config.LogConfig) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	return logging.NewWriter(os.Stderr, level, logging.Format(cfg.Format)), nil
}

// CreateCache returns the document cache selected by cfg, or nil for the
// "none" driver. A configured encryption key wraps the driver.
func CreateCache(cfg config.CacheConfig) (ports.DocumentCache, error) {
	var cache ports.DocumentCache
	switch cfg.Driver {
	case config.CacheNone:
		return nil, nil
	case config.CacheMemory, "":
		cache = memory.NewCache()
	case config.CacheFile:
		cache = file.New(cfg.File.Dir)
	case config.CacheRedis:
		opts := []redis.Option{redis.WithTTL(cfg.Redis.TTL)}
		if cfg.Redis.Prefix != "" {
			opts = append(opts, redis.WithPrefix(cfg.Redis.Prefix))
		}
		cache = redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, opts...)
	default:
		return nil, fmt.Errorf("unknown cache driver %q", cfg.Driver)
	}

	key, err := cfg.Key()
	if err != nil {
		return nil, err
	}
	if key == nil {
		return cache, nil
	}
	encrypt, err := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: key})
	if err != nil {
		return nil, err
	}
	return middleware.Chain(cache, encrypt), nil
}

// CreateSuite initializes a Suite with standard CLI conventions. Metrics
// are registered on reg when it is not nil.
func CreateSuite(cfg config.Config, logger *slog.Logger, reg prometheus.Registerer) (*flowsuite.Suite, error) {
	opts := []flowsuite.Option{flowsuite.WithLogger(logger)}

	cache, err := CreateCache(cfg.Cache)
	if err != nil {
		return nil, err
	}
	if cache != nil {
		opts = append(opts, flowsuite.WithCache(cache))
		logger.Debug("Cache enabled", "driver", cfg.Cache.Driver)
	}

	if reg != nil {
		opts = append(opts, flowsuite.WithHooks(observability.NewMetrics(reg).Hooks()))
	}

	return flowsuite.New(opts...), nil
}
