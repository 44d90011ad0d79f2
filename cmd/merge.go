package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"gooze.dev/pkg/gooze/internal/config"
	m "gooze.dev/pkg/gooze/internal/model"
	"gooze.dev/pkg/gooze/internal/report"
)

// mergeCmd represents the merge command.
var mergeCmd = newMergeCmd()

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge <shard-dir>",
		Short: "Merge sharded JSON reports into one",
		Long:  "Merge every *.json report in shard-dir (written by separate `gooze mutate --shard` invocations) into a single combined report.",
		Args:  cobra.ExactArgs(1),
		RunE:  runMerge,
	}

	cmd.Flags().StringP("output", "o", "console", "report format: console|json|html")
	bindFlagToConfig(cmd.Flags().Lookup("output"), "output")

	cmd.Flags().String("report", "", "file path to write the merged report to (default: stdout)")
	bindFlagToConfig(cmd.Flags().Lookup("report"), "report")

	return cmd
}

func runMerge(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	shardFiles, err := filepath.Glob(filepath.Join(args[0], "*.json"))
	if err != nil {
		return fmt.Errorf("glob shard reports: %w", err)
	}

	if len(shardFiles) == 0 {
		return fmt.Errorf("no *.json reports found in %s", args[0])
	}

	merged := m.Run{Generator: "LeanMutator", Version: "1.0"}

	for _, shardFile := range shardFiles {
		f, ferr := os.Open(shardFile)
		if ferr != nil {
			return fmt.Errorf("open %s: %w", shardFile, ferr)
		}

		run, lerr := report.LoadJSON(f)
		_ = f.Close()

		if lerr != nil {
			return fmt.Errorf("decode %s: %w", shardFile, lerr)
		}

		merged.Results = append(merged.Results, run.Results...)

		for _, r := range run.Results {
			merged.Stats.Add(r)
		}

		merged.Stats.TotalTimeMs += run.Stats.TotalTimeMs
	}

	out := cmd.OutOrStdout()
	if cfg.Report != "" {
		f, cerr := os.Create(cfg.Report)
		if cerr != nil {
			return fmt.Errorf("create merged report: %w", cerr)
		}
		defer func() { _ = f.Close() }()

		out = f
	}

	return report.ForName(cfg.Output, cfg.NoColor).Render(merged, out)
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}
