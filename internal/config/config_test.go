package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "flowsuite.yaml", `
server:
  addr: ":9090"
log:
  level: debug
  format: json
cache:
  driver: redis
  redis:
    addr: "redis:6379"
    ttl: 10m
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout, "unset keys keep defaults")
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, CacheRedis, cfg.Cache.Driver)
	assert.Equal(t, 10*time.Minute, cfg.Cache.Redis.TTL)
	assert.Equal(t, "flowsuite:doc:", cfg.Cache.Redis.Prefix)
}

func TestLoad_JSONC(t *testing.T) {
	path := writeFile(t, "flowsuite.jsonc", `{
  // local development
  "cache": {"driver": "none",},
}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, CacheNone, cfg.Cache.Driver)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config")

	_, err = Load(writeFile(t, "bad.yaml", "cache: ["))
	assert.ErrorContains(t, err, "failed to parse bad.yaml")

	_, err = Load(writeFile(t, "driver.yaml", "cache:\n  driver: memcached\n"))
	assert.ErrorContains(t, err, "unknown cache driver")
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	cfg.ApplyEnv(func(key string) string {
		if key == EnvRedisAddr {
			return "cache.internal:6380"
		}
		return ""
	})
	assert.Equal(t, "cache.internal:6380", cfg.Cache.Redis.Addr)

	cfg = Default()
	cfg.ApplyEnv(func(string) string { return "" })
	assert.Equal(t, "localhost:6379", cfg.Cache.Redis.Addr)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Log.Format = "xml"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Cache.Driver = CacheRedis
	cfg.Cache.Redis.Addr = ""
	assert.Error(t, cfg.Validate())
}

func TestCacheConfig_Key(t *testing.T) {
	key, err := CacheConfig{}.Key()
	require.NoError(t, err)
	assert.Nil(t, key)

	hexKey := strings.Repeat("ab", 32)
	key, err = CacheConfig{EncryptionKey: hexKey}.Key()
	require.NoError(t, err)
	assert.Len(t, key, 32)

	_, err = CacheConfig{EncryptionKey: "zz"}.Key()
	assert.ErrorContains(t, err, "not hex")

	_, err = CacheConfig{EncryptionKey: "abcd"}.Key()
	assert.ErrorContains(t, err, "32 bytes")

	cfg := Default()
	cfg.ApplyEnv(func(k string) string {
		if k == EnvCacheKey {
			return hexKey
		}
		return ""
	})
	assert.Equal(t, hexKey, cfg.Cache.EncryptionKey)
}

func TestValidate_FileCache(t *testing.T) {
	cfg := Default()
	cfg.Cache.Driver = CacheFile
	assert.NoError(t, cfg.Validate())

	cfg.Cache.File.Dir = ""
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Cache.EncryptionKey = "short"
	assert.Error(t, cfg.Validate())
}
