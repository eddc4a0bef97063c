package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/linkdraw/pkg/cache"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if !strings.HasSuffix(dir, appName) {
		t.Errorf("cacheDir() = %q, should end with %q", dir, appName)
	}
}

func TestCachePathCommand(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", xdg)

	root := New(io.Discard, LogInfo).RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"cache", "path"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got, want := strings.TrimSpace(out.String()), filepath.Join(xdg, appName); got != want {
		t.Errorf("cache path = %q, want %q", got, want)
	}
}

func TestCacheClearCommand(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", xdg)

	fc, err := cache.NewFileCache(filepath.Join(xdg, appName))
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	if err := fc.Set(ctx, "placement:abc", []byte("{}"), time.Hour); err != nil {
		t.Fatal(err)
	}

	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs([]string{"cache", "clear"})
	if err := root.ExecuteContext(ctx); err != nil {
		t.Fatal(err)
	}

	if _, hit, _ := fc.Get(ctx, "placement:abc"); hit {
		t.Error("entry survived cache clear")
	}
	entries, _ := os.ReadDir(fc.Dir())
	if len(entries) != 0 {
		t.Errorf("cache dir has %d entries after clear", len(entries))
	}
}

func TestNewCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	ctx := context.Background()

	c, err := newCache(ctx, cacheFlags{noCache: true})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.(*cache.NullCache); !ok {
		t.Errorf("--no-cache gave %T, want *cache.NullCache", c)
	}

	c, err = newCache(ctx, cacheFlags{})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.(*cache.FileCache); !ok {
		t.Errorf("default cache is %T, want *cache.FileCache", c)
	}

	if _, err := newCache(ctx, cacheFlags{redis: "not a url"}); err == nil {
		t.Error("invalid redis URL should fail")
	}
}

func TestNewRunnerScope(t *testing.T) {
	c := New(io.Discard, LogInfo)
	opts := cache.ArtifactKeyOpts{Format: "svg"}

	served, err := c.newRunner(context.Background(), cacheFlags{noCache: true}, serveScope)
	if err != nil {
		t.Fatal(err)
	}
	if key := served.Keyer.ArtifactKey("h", opts); !strings.HasPrefix(key, "serve:artifact:") {
		t.Errorf("serve runner artifact key = %q, want serve: scope", key)
	}

	plain, err := c.newRunner(context.Background(), cacheFlags{noCache: true}, "")
	if err != nil {
		t.Fatal(err)
	}
	if served.Keyer.ArtifactKey("h", opts) == plain.Keyer.ArtifactKey("h", opts) {
		t.Error("serve and render runners must not share artifact keys")
	}
}
