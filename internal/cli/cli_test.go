package cli

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/muesli/termenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lime816/whatsappsuitetest-sub002"
	"github.com/lime816/whatsappsuitetest-sub002/internal/config"
	"github.com/lime816/whatsappsuitetest-sub002/internal/logging"
	"github.com/lime816/whatsappsuitetest-sub002/pkg/adapters/file"
	"github.com/lime816/whatsappsuitetest-sub002/pkg/adapters/memory"
	"github.com/lime816/whatsappsuitetest-sub002/pkg/adapters/redis"
	"github.com/lime816/whatsappsuitetest-sub002/pkg/domain"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flowsuite.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o644))

	t.Setenv(config.EnvRedisAddr, "redis.internal:6379")
	cfg, err := LoadConfig(Options{ConfigPath: path})
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "redis.internal:6379", cfg.Cache.Redis.Addr)

	cfg, err = LoadConfig(Options{ConfigPath: path, Debug: true})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)

	_, err = LoadConfig(Options{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}

func TestCreateLogger(t *testing.T) {
	_, err := CreateLogger(config.LogConfig{Level: "info", Format: "json"})
	assert.NoError(t, err)

	_, err = CreateLogger(config.LogConfig{Level: "loud"})
	assert.Error(t, err)
}

func TestCreateCache(t *testing.T) {
	cache, err := CreateCache(config.CacheConfig{Driver: config.CacheNone})
	require.NoError(t, err)
	assert.Nil(t, cache)

	cache, err = CreateCache(config.CacheConfig{Driver: config.CacheMemory})
	require.NoError(t, err)
	assert.IsType(t, &memory.Cache{}, cache)

	mr := miniredis.RunT(t)
	cfg := config.Default().Cache
	cfg.Driver = config.CacheRedis
	cfg.Redis.Addr = mr.Addr()
	cache, err = CreateCache(cfg)
	require.NoError(t, err)
	require.IsType(t, &redis.Cache{}, cache)

	ctx := context.Background()
	require.NoError(t, cache.Put(ctx, "k", []byte("v")))
	assert.True(t, mr.Exists(cfg.Redis.Prefix+"k"))

	cache, err = CreateCache(config.CacheConfig{Driver: config.CacheFile, File: config.FileConfig{Dir: t.TempDir()}})
	require.NoError(t, err)
	assert.IsType(t, &file.Cache{}, cache)

	_, err = CreateCache(config.CacheConfig{Driver: "disk"})
	assert.Error(t, err)
}

func TestCreateCache_Encrypted(t *testing.T) {
	dir := t.TempDir()
	cache, err := CreateCache(config.CacheConfig{
		Driver:        config.CacheFile,
		File:          config.FileConfig{Dir: dir},
		EncryptionKey: strings.Repeat("0f", 32),
	})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, cache.Put(ctx, "k", []byte(`{"screens":[]}`)))

	raw, err := os.ReadFile(filepath.Join(dir, "k.json"))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "screens")

	got, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `{"screens":[]}`, string(got))

	_, err = CreateCache(config.CacheConfig{Driver: config.CacheMemory, EncryptionKey: "nothex"})
	assert.Error(t, err)
}

func TestCreateSuite(t *testing.T) {
	reg := prometheus.NewRegistry()
	suite, err := CreateSuite(config.Default(), logging.NewNop(), reg)
	require.NoError(t, err)

	screens := []domain.Screen{suite.Factory().DefaultScreen("A", "A", "")}
	_, err = suite.Export(context.Background(), screens)
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestReportMarkdown(t *testing.T) {
	res := flowsuite.ValidationResult{
		Errors: []flowsuite.Issue{{
			Code: domain.CodeContentLimitExceeded, ScreenID: "A", ElementID: "h",
			Message: "text a|b too long",
		}},
		Warnings: []flowsuite.Issue{{Code: domain.CodeCountLimitExceeded, ScreenID: "A", Message: "too many images"}},
	}

	md := ReportMarkdown("flow.yaml", res)
	assert.Contains(t, md, "# Validation report: flow.yaml")
	assert.Contains(t, md, "1 errors, 1 warnings.")
	assert.Contains(t, md, "## Errors")
	assert.Contains(t, md, `text a\|b too long`)
	assert.Contains(t, md, "| CountLimitExceeded | A | - | too many images |")

	clean := ReportMarkdown("x", flowsuite.ValidationResult{IsValid: true})
	assert.NotContains(t, clean, "##")
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "✓ valid", Summary(flowsuite.ValidationResult{IsValid: true}, termenv.Ascii))
	assert.Equal(t, "✓ valid with 2 warnings",
		Summary(flowsuite.ValidationResult{IsValid: true, Warnings: make([]flowsuite.Issue, 2)}, termenv.Ascii))
	assert.Equal(t, "✗ invalid: 1 errors, 0 warnings",
		Summary(flowsuite.ValidationResult{Errors: make([]flowsuite.Issue, 1)}, termenv.Ascii))

	colored := Summary(flowsuite.ValidationResult{IsValid: true}, termenv.TrueColor)
	assert.Contains(t, colored, "\x1b[")
}

func TestPrintReport_NotATerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "report.md"))
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, PrintReport(f, "flow", flowsuite.ValidationResult{IsValid: true}))

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# Validation report: flow"))
	assert.Contains(t, string(data), "✓ valid")
}

func TestReadSource(t *testing.T) {
	data, err := ReadSource("-", strings.NewReader("screens: []"))
	require.NoError(t, err)
	assert.Equal(t, "screens: []", string(data))

	path := filepath.Join(t.TempDir(), "f.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))
	data, err = ReadSource(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	_, err = ReadSource(path+".missing", nil)
	assert.Error(t, err)
}

func TestPrintSystemMessage(t *testing.T) {
	var buf bytes.Buffer
	PrintSystemMessage(&buf, "compiled %d screens", 3)
	assert.Equal(t, ">>> compiled 3 screens\n", buf.String())
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flow.yaml")
	replace := func(content string) {
		tmp := filepath.Join(dir, "flow.yaml.tmp")
		require.NoError(t, os.WriteFile(tmp, []byte(content), 0o644))
		require.NoError(t, os.Rename(tmp, path))
	}
	replace("one")

	var mu sync.Mutex
	var seen []string
	var errs int
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(data []byte, err error) {
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs++
				return
			}
			seen = append(seen, string(data))
		})
	}()

	snapshot := func() ([]string, int) {
		mu.Lock()
		defer mu.Unlock()
		return append([]string(nil), seen...), errs
	}
	last := func(want string) func() bool {
		return func() bool {
			got, _ := snapshot()
			return len(got) > 0 && got[len(got)-1] == want
		}
	}

	require.Eventually(t, last("one"), 2*time.Second, 5*time.Millisecond)
	replace("two")
	require.Eventually(t, last("two"), 2*time.Second, 5*time.Millisecond)
	replace("two")
	replace("three")
	require.Eventually(t, last("three"), 2*time.Second, 5*time.Millisecond)

	got, _ := snapshot()
	assert.Equal(t, []string{"one", "two", "three"}, got, "unchanged content is not reported")

	require.NoError(t, os.Remove(path))
	require.Eventually(t, func() bool { _, n := snapshot(); return n == 1 }, 2*time.Second, 5*time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644))

	replace("four")
	require.Eventually(t, last("four"), 2*time.Second, 5*time.Millisecond)
	_, n := snapshot()
	assert.Equal(t, 1, n, "a missing file is reported once")

	cancel()
	assert.NoError(t, <-done)
}

func TestWatch_MissingDirectory(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "flow.yaml"), func([]byte, error) {})
	assert.Error(t, err)
}

func TestServe(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "pong")
	})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- Serve(ctx, config.Default().Server, handler, ln, logging.NewNop())
	}()

	var body []byte
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/ping")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ = io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "pong", string(body))

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(ShutdownTimeout + time.Second):
		t.Fatal("server did not stop")
	}
}

func TestSignalContext_ParentCancel(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	sc := NewSignalContext(parent)
	defer sc.Cancel()

	cancel()
	select {
	case <-sc.Done():
	case <-time.After(time.Second):
		t.Fatal("context not cancelled with parent")
	}
	assert.Nil(t, sc.Signal())
}
