package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/linkdraw/pkg/pipeline"
)

// renderFlags holds the output flags of the render command.
type renderFlags struct {
	frameFlags
	output      string
	formats     string
	interactive bool
	background  string
	title       string
	font        string
	scale       float64
}

// renderCommand creates the render command for drawing a dataset.
func (c *CLI) renderCommand() *cobra.Command {
	var f renderFlags

	cmd := &cobra.Command{
		Use:   "render [dataset]",
		Short: "Render a link dataset to SVG, PNG, PDF or JSON",
		Long: `Render a link dataset to SVG, PNG, PDF or JSON.

The dataset is a JSON, TOML or YAML file holding series options and a list
of links. Nodes without coordinates are placed with Graphviz first.

Options can also be read from a TOML file (--config, or ./linkdraw.toml).
Flags given on the command line take precedence.

Placements and rendered artifacts are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.renderOptions(cmd, args[0])
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, f)
		},
	}

	f.register(cmd)
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().BoolVar(&f.interactive, "interactive", false, "embed hover styles and script in SVG output")
	cmd.Flags().StringVar(&f.background, "background", "", "background color")
	cmd.Flags().StringVar(&f.title, "title", "", "SVG document title")
	cmd.Flags().StringVar(&f.font, "font", "", "TTF font file for PNG labels")
	cmd.Flags().Float64Var(&f.scale, "scale", pipeline.DefaultScale, "PNG resolution factor")

	return cmd
}

func (f *renderFlags) renderOptions(cmd *cobra.Command, dataset string) (pipeline.Options, error) {
	opts, err := f.options(cmd, dataset)
	if err != nil {
		return opts, err
	}
	fs := cmd.Flags()
	if fs.Changed("format") || len(opts.Formats) == 0 {
		opts.Formats = parseFormats(f.formats)
	}
	if fs.Changed("interactive") {
		opts.Interactive = f.interactive
	}
	if fs.Changed("background") {
		opts.Background = f.background
	}
	if fs.Changed("title") {
		opts.Title = f.title
	}
	if fs.Changed("font") {
		opts.Font = f.font
	}
	if fs.Changed("scale") || opts.Scale == 0 {
		opts.Scale = f.scale
	}
	return opts, nil
}

// runRender executes the pipeline and writes one file per format.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, f renderFlags) error {
	runner, err := c.newRunner(ctx, f.cache, "")
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	prog := newProgress(c.Logger)

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", strings.Join(opts.Formats, ", ")))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	paths, err := writeArtifacts(result.Artifacts, opts.Formats, f.output, input)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d links", result.Stats.LinkCount))

	printSuccess("Render complete")
	for _, p := range paths {
		printFile(p)
	}
	printStats(result.Stats.LinkCount, result.Stats.NodeCount, result.CacheInfo.RenderHit)
	return nil
}

// writeArtifacts writes every rendered format and returns the written paths
// in format order.
func writeArtifacts(artifacts map[string][]byte, formats []string, output, input string) ([]string, error) {
	var paths []string
	for _, format := range formats {
		data, ok := artifacts[format]
		if !ok {
			continue
		}
		path := outputPath(output, input, format, len(formats))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// outputPath returns the file for one format. A single format is written to
// output as given; otherwise the format extension is appended to the base
// path.
func outputPath(output, input, format string, count int) string {
	if output != "" && count == 1 {
		return output
	}
	return basePath(output, input) + "." + format
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .png, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if slices.Contains(pipeline.ValidFormats, strings.TrimPrefix(ext, ".")) {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
