package cli

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/linkdraw/pkg/io"
	"github.com/matzehuels/linkdraw/pkg/pipeline"
)

// layoutCommand creates the layout command that prints connector poses.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		f      frameFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "layout [dataset]",
		Short: "Print the computed marker and label poses of a dataset",
		Long: `Print the computed marker and label poses of a dataset.

The layout command builds one frame exactly like 'render' does and prints
every connector's state, endpoint markers and label as a table. With -o the
poses are written as JSON instead (same format as 'render -f json').`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options(cmd, args[0])
			if err != nil {
				return err
			}
			return c.runLayout(cmd.Context(), opts, f.cache, output)
		},
	}

	f.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the poses as JSON to this file")

	return cmd
}

// runLayout builds the frame and prints or exports its poses.
func (c *CLI) runLayout(ctx context.Context, opts pipeline.Options, flags cacheFlags, output string) error {
	frame, cached, err := c.buildFrame(ctx, opts, flags)
	if err != nil {
		return err
	}
	l := frame.Layout()

	if output != "" {
		if err := pkgio.ExportLayout(l, output); err != nil {
			return fmt.Errorf("write output %s: %w", output, err)
		}
		printSuccess("Layout complete")
		printFile(output)
		printStats(len(l.Links), 0, cached)
		printNewline()
		printNextStep("Render", appName+" render "+opts.Dataset)
		return nil
	}

	fmt.Println(poseTable(l))
	printStats(len(l.Links), 0, cached)
	return nil
}

// buildFrame runs the load, place and frame stages. cached reports whether
// the node placement came from the cache.
func (c *CLI) buildFrame(ctx context.Context, opts pipeline.Options, flags cacheFlags) (*pipeline.Frame, bool, error) {
	runner, err := c.newRunner(ctx, flags, "")
	if err != nil {
		return nil, false, fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	ds, hash, err := runner.Load(ctx, opts)
	if err != nil {
		return nil, false, err
	}
	cached, err := runner.PlaceWithCacheInfo(ctx, ds, hash, opts)
	if err != nil {
		return nil, false, err
	}
	frame, err := runner.Build(ctx, ds, opts)
	if err != nil {
		return nil, false, err
	}
	return frame, cached, nil
}

// poseTable renders the poses of l as a bordered table.
func poseTable(l pkgio.Layout) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("#", "STATE", "FROM", "TO", "LABEL", "AT", "ALIGN").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return StyleTitle.Padding(0, 1)
			case col == 0:
				return StyleNumber.Padding(0, 1)
			default:
				return StyleValue.Padding(0, 1)
			}
		})

	for _, p := range l.Links {
		t.Row(poseRow(p)...)
	}
	return t.Render()
}

func poseRow(p pkgio.LinkPose) []string {
	from, to := "-", "-"
	for _, m := range p.Markers {
		desc := fmt.Sprintf("%s @ %s %s°", m.Kind, formatPoint(m.Position), formatFloat(m.Rotation*180/math.Pi))
		if m.Category == "fromSymbol" {
			from = desc
		} else {
			to = desc
		}
	}

	label, at, align := "-", "-", "-"
	if p.Label != nil {
		label = p.Label.Text
		if p.Label.HoverText != "" && p.Label.HoverText != label {
			label += " / " + p.Label.HoverText
		}
		at = p.Label.Policy + " " + formatPoint(p.Label.Position)
		align = p.Label.Align + " " + p.Label.VerticalAlign
	}

	return []string{strconv.Itoa(p.Index), p.State, from, to, label, at, align}
}

func formatPoint(p [2]float64) string {
	return "(" + formatFloat(p[0]) + ", " + formatFloat(p[1]) + ")"
}

func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}
