package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gooze.dev/pkg/gooze/internal/config"
	"gooze.dev/pkg/gooze/internal/report"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <report.json>",
		Short: "Re-render a previously saved JSON report",
		Long:  "Load a JSON report written by a previous `gooze mutate -o json` run and re-render it in any format, without re-running any mutations.",
		Args:  cobra.ExactArgs(1),
		RunE:  runView,
	}

	cmd.Flags().StringP("output", "o", "console", "report format: console|json|html")
	bindFlagToConfig(cmd.Flags().Lookup("output"), "output")

	return cmd
}

func runView(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open report: %w", err)
	}
	defer func() { _ = f.Close() }()

	run, err := report.LoadJSON(f)
	if err != nil {
		return fmt.Errorf("decode report: %w", err)
	}

	return report.ForName(cfg.Output, cfg.NoColor).Render(run, cmd.OutOrStdout())
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
