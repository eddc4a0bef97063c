package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/linkdraw/pkg/pipeline"
)

// frameFlags are the flags shared by every command that builds a frame.
type frameFlags struct {
	config    string
	rankDir   string
	width     float64
	height    float64
	zoom      float64
	progress  float64
	highlight []int
	cache     cacheFlags
}

func (f *frameFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.config, "config", "", "TOML options file (default: ./"+configFile+" when present)")
	fs.StringVar(&f.rankDir, "rank-dir", pipeline.DefaultRankDir, "placement direction for nodes without coordinates: LR, RL, TB, BT")
	fs.Float64Var(&f.width, "width", pipeline.DefaultWidth, "canvas width")
	fs.Float64Var(&f.height, "height", pipeline.DefaultHeight, "canvas height")
	fs.Float64Var(&f.zoom, "zoom", pipeline.DefaultZoom, "canvas scale; markers and labels keep their size")
	fs.Float64Var(&f.progress, "progress", pipeline.DefaultProgress, "reveal progress of every connector (0-1]")
	fs.IntSliceVar(&f.highlight, "highlight", nil, "link indices drawn in the emphasis state")
	fs.BoolVar(&f.cache.noCache, "no-cache", false, "disable caching")
	fs.StringVar(&f.cache.redis, "redis", "", "redis URL for a shared cache (e.g. redis://localhost:6379/0)")
}

// options loads the config file and lays explicitly set flags over it.
func (f *frameFlags) options(cmd *cobra.Command, dataset string) (pipeline.Options, error) {
	var opts pipeline.Options
	if err := loadConfig(f.config, &opts); err != nil {
		return opts, err
	}
	if dataset != "" {
		opts.Dataset = dataset
	}

	fs := cmd.Flags()
	if fs.Changed("rank-dir") || opts.RankDir == "" {
		opts.RankDir = f.rankDir
	}
	if fs.Changed("width") || opts.Width == 0 {
		opts.Width = f.width
	}
	if fs.Changed("height") || opts.Height == 0 {
		opts.Height = f.height
	}
	if fs.Changed("zoom") || opts.Zoom == 0 {
		opts.Zoom = f.zoom
	}
	if fs.Changed("progress") || opts.Progress == 0 {
		opts.Progress = f.progress
	}
	if fs.Changed("highlight") {
		opts.Highlight = f.highlight
	}
	opts.NoCache = f.cache.noCache
	return opts, nil
}
