package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/linkdraw/pkg/cache"
	pkgio "github.com/matzehuels/linkdraw/pkg/io"
	"github.com/matzehuels/linkdraw/pkg/observability"
)

// Cache key types reported to the cache hooks.
const (
	keyTypePlacement = "placement"
	keyTypeArtifact  = "artifact"
)

// Runner encapsulates pipeline execution with caching.
// Both the CLI and the preview server use it to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → place → frame → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	ds, hash, err := Load(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Dataset = ds
	result.DatasetHash = hash
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.LinkCount = len(ds.Links)
	result.Stats.NodeCount = len(ds.Nodes)

	r.Logger.Info("loaded dataset",
		"links", len(ds.Links),
		"nodes", len(ds.Nodes),
		"duration", result.Stats.LoadTime)

	// Stage 2: Place
	placeStart := time.Now()
	placeHit, err := r.PlaceWithCacheInfo(ctx, ds, hash, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.PlaceTime = time.Since(placeStart)
	result.CacheInfo.PlacementHit = placeHit

	// Stages 3 and 4: Frame and Render
	renderStart := time.Now()
	artifacts, frame, renderHit, err := r.RenderWithCacheInfo(ctx, ds, hash, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Frame = frame
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit
	if frame != nil {
		result.Stats.LaidOut = frame.LaidOut
	}

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads the dataset named by opts. See [Load].
func (r *Runner) Load(ctx context.Context, opts Options) (*pkgio.Dataset, string, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLoad(); err != nil {
		return nil, "", err
	}
	return Load(ctx, opts)
}

// PlaceWithCacheInfo positions unplaced nodes, reusing cached positions for
// the same dataset bytes, and reports whether the cache was hit.
func (r *Runner) PlaceWithCacheInfo(ctx context.Context, ds *pkgio.Dataset, hash string, opts Options) (bool, error) {
	if !ds.Unplaced() {
		return false, nil
	}
	opts.SetFrameDefaults()
	cacheKey := r.Keyer.PlacementKey(hash + ":" + opts.RankDir)

	if !opts.NoCache {
		var pos map[string][2]float64
		if err := cache.GetJSON(ctx, r.Cache, cacheKey, &pos); err == nil {
			if ApplyPositions(ds, pos) {
				observability.Cache().OnCacheHit(ctx, keyTypePlacement)
				r.Logger.Debug("placement from cache", "nodes", len(pos))
				return true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, keyTypePlacement)
	}

	start := time.Now()
	if err := Place(ctx, ds, opts); err != nil {
		return false, err
	}
	r.Logger.Info("placed nodes", "nodes", len(ds.Nodes), "duration", time.Since(start))

	if !opts.NoCache {
		pos := Positions(ds)
		if err := cache.SetJSON(ctx, r.Cache, cacheKey, pos, cache.TTLPlacement); err == nil {
			observability.Cache().OnCacheSet(ctx, keyTypePlacement, len(pos))
		}
	}
	return false, nil
}

// Build lays out a placed dataset. See [BuildFrame].
func (r *Runner) Build(ctx context.Context, ds *pkgio.Dataset, opts Options) (*Frame, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForFrame(); err != nil {
		return nil, err
	}

	start := time.Now()
	f, err := BuildFrame(ctx, ds, opts)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("built frame",
		"links", f.Set.Len(),
		"laid_out", f.LaidOut,
		"duration", time.Since(start))
	return f, nil
}

// RenderWithCacheInfo returns the artifacts for a placed dataset. When every
// format is cached the frame is not built and the returned frame is nil.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, ds *pkgio.Dataset, hash string, opts Options) (map[string][]byte, *Frame, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, nil, false, err
	}

	if !opts.NoCache {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			data, hit, err := r.Cache.Get(ctx, r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format)))
			if err != nil || !hit {
				observability.Cache().OnCacheMiss(ctx, keyTypeArtifact)
				break
			}
			observability.Cache().OnCacheHit(ctx, keyTypeArtifact)
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, nil, true, nil // All artifacts from cache
		}
	}

	f, err := r.Build(ctx, ds, opts)
	if err != nil {
		return nil, nil, false, err
	}
	rendered, err := Render(ctx, f, opts)
	if err != nil {
		return nil, nil, false, err
	}

	if !opts.NoCache {
		for format, data := range rendered {
			cacheKey := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
			if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact); err == nil {
				observability.Cache().OnCacheSet(ctx, keyTypeArtifact, len(data))
			}
		}
	}
	return rendered, f, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, ds *pkgio.Dataset, hash string, opts Options) (map[string][]byte, error) {
	artifacts, _, _, err := r.RenderWithCacheInfo(ctx, ds, hash, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
