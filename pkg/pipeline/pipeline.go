// Package pipeline provides the rendering pipeline for linkdraw.
//
// This package implements the complete load → place → frame → render
// pipeline used by every CLI command and the preview server. By centralizing
// this logic, all entry points draw identical output for the same options.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Load: Read and validate a dataset file (JSON, TOML or YAML)
//  2. Place: Position nodes without coordinates with Graphviz
//  3. Frame: Build one connector per link, reveal it to the requested
//     progress and lay everything out once
//  4. Render: Encode the laid out scene in every requested format
//
// Placement results and rendered artifacts are cached under the hash of the
// dataset bytes.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Dataset: "flows.yaml",
//	    Formats: []string{"svg", "png"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	ds, hash, err := runner.Load(ctx, opts)
//	hit, err := runner.PlaceWithCacheInfo(ctx, ds, hash, opts)
//	frame, err := runner.Build(ctx, ds, opts)
//	artifacts, err := pipeline.Render(ctx, frame, opts)
package pipeline

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/linkdraw/pkg/cache"
	"github.com/matzehuels/linkdraw/pkg/errors"
	pkgio "github.com/matzehuels/linkdraw/pkg/io"
	"github.com/matzehuels/linkdraw/pkg/linkset"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = 600.0

	// DefaultZoom is the scale of the root group.
	DefaultZoom = 1.0

	// DefaultProgress draws every connector completely.
	DefaultProgress = 1.0

	// DefaultScale is the PNG resolution factor.
	DefaultScale = 2.0

	// DefaultRankDir is the Graphviz rank direction used for placement.
	DefaultRankDir = "LR"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats lists the supported output formats.
var ValidFormats = []string{FormatSVG, FormatPNG, FormatPDF, FormatJSON}

// ValidRankDirs lists the accepted placement directions.
var ValidRankDirs = []string{"LR", "RL", "TB", "BT"}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline. It decodes from JSON
// request bodies and from linkdraw.toml configuration files.
type Options struct {
	// Load options
	Dataset       string `json:"dataset,omitempty" toml:"dataset"`
	DatasetBytes  []byte `json:"-" toml:"-"` // Inline dataset, used instead of Dataset
	DatasetFormat string `json:"dataset_format,omitempty" toml:"dataset_format"`

	// Placement options
	RankDir string `json:"rank_dir,omitempty" toml:"rank_dir"`

	// Frame options
	Width     float64 `json:"width,omitempty" toml:"width"`
	Height    float64 `json:"height,omitempty" toml:"height"`
	Zoom      float64 `json:"zoom,omitempty" toml:"zoom"`
	Progress  float64 `json:"progress,omitempty" toml:"progress"` // Zero means fully drawn
	Highlight []int   `json:"highlight,omitempty" toml:"highlight"`

	// Render options
	Formats     []string `json:"formats,omitempty" toml:"formats"`
	Interactive bool     `json:"interactive,omitempty" toml:"interactive"`
	Background  string   `json:"background,omitempty" toml:"background"`
	Title       string   `json:"title,omitempty" toml:"title"`
	Font        string   `json:"font,omitempty" toml:"font"`
	Scale       float64  `json:"scale,omitempty" toml:"scale"`

	// Runtime options (not serialized)
	NoCache bool        `json:"-" toml:"-"`
	Logger  *log.Logger `json:"-" toml:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Dataset is the loaded dataset with every node placed.
	Dataset *pkgio.Dataset

	// DatasetHash is the content hash of the dataset bytes.
	DatasetHash string

	// Frame is the laid out scene. It is nil when every artifact came from
	// the cache.
	Frame *Frame

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	LinkCount  int
	NodeCount  int
	LaidOut    int
	LoadTime   time.Duration
	PlaceTime  time.Duration
	FrameTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	PlacementHit bool // Whether node positions came from cache
	RenderHit    bool // Whether all artifacts came from cache
}

// Frame is a laid out connector scene ready for the sinks.
type Frame struct {
	Set     *linkset.Set
	Width   float64
	Height  float64
	LaidOut int // connectors laid out by the first frame
}

// Layout returns the pose dump of the frame.
func (f *Frame) Layout() pkgio.Layout { return f.Set.Dump(f.Width, f.Height) }

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForFrame(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks that a dataset is given.
func (o *Options) ValidateForLoad() error {
	if o.Dataset == "" && len(o.DatasetBytes) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "dataset is required")
	}
	if len(o.DatasetBytes) > 0 && o.DatasetFormat == "" {
		o.DatasetFormat = pkgio.FormatJSON
	}
	if o.Dataset != "" && len(o.DatasetBytes) == 0 {
		if err := errors.ValidatePath(o.Dataset); err != nil {
			return err
		}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetFrameDefaults sets default values for building the scene.
func (o *Options) SetFrameDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Zoom == 0 {
		o.Zoom = DefaultZoom
	}
	if o.Progress == 0 {
		o.Progress = DefaultProgress
	}
	if o.RankDir == "" {
		o.RankDir = DefaultRankDir
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForFrame validates and sets defaults for building the scene.
func (o *Options) ValidateForFrame() error {
	o.SetFrameDefaults()
	if o.Width < 0 || o.Height < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "canvas size %vx%v must be positive", o.Width, o.Height)
	}
	if o.Zoom < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "zoom %v must be positive", o.Zoom)
	}
	if err := errors.ValidateProgress(o.Progress); err != nil {
		return err
	}
	for _, i := range o.Highlight {
		if i < 0 {
			return errors.New(errors.ErrCodeInvalidInput, "highlight index %d is negative", i)
		}
	}
	return errors.ValidateOneOf(errors.ErrCodeInvalidInput, "rank_dir", o.RankDir, ValidRankDirs)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetFrameDefaults()
	o.SetRenderDefaults()
	return errors.ValidateFormats(o.Formats, ValidFormats)
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		Format:    format,
		RankDir:   o.RankDir,
		Width:     o.Width,
		Height:    o.Height,
		Zoom:      o.Zoom,
		Progress:  o.Progress,
		Highlight: slices.Sorted(slices.Values(o.Highlight)),
	}
	switch format {
	case FormatSVG, FormatPDF:
		k.Interactive = o.Interactive && format == FormatSVG
		k.Background = o.Background
		k.Title = o.Title
	case FormatPNG:
		k.Background = o.Background
		k.Font = o.Font
		k.Scale = o.Scale
	}
	return k
}
