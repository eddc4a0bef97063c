package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// inspectCommand creates the interactive connector browser.
func (c *CLI) inspectCommand() *cobra.Command {
	var f frameFlags

	cmd := &cobra.Command{
		Use:   "inspect [dataset]",
		Short: "Browse connectors and toggle their highlight",
		Long: `Browse the connectors of a dataset in the terminal.

Each connector is listed with its state and label. Selecting one shows its
marker and label poses; space toggles the emphasis state and re-lays out
the frame, so hover labels and emphasis styles can be checked without a
browser.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options(cmd, args[0])
			if err != nil {
				return err
			}
			frame, _, err := c.buildFrame(cmd.Context(), opts, f.cache)
			if err != nil {
				return err
			}
			if frame.Set.Len() == 0 {
				printInfo("Dataset has no links")
				return nil
			}

			p := tea.NewProgram(NewInspectModel(frame), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("inspect: %w", err)
			}
			return nil
		},
	}

	f.register(cmd)
	return cmd
}
