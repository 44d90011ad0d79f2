package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"gooze.dev/pkg/gooze/internal/config"
	"gooze.dev/pkg/gooze/internal/discover"
	"gooze.dev/pkg/gooze/internal/lean"
	"gooze.dev/pkg/gooze/internal/mutate"
	"gooze.dev/pkg/gooze/internal/mutate/operators"
)

const listLongDescription = `List source files and the number of applicable mutations, without
running any of them.

` + pathPatternsHelp

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List source files and mutation counts",
		Long:  listLongDescription,
		RunE:  runList,
	}

	cmd.Flags().StringArrayP("exclude", "x", nil, "substring patterns to exclude (can be repeated)")
	bindFlagToConfig(cmd.Flags().Lookup("exclude"), "paths.exclude")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}

	sources, err := discover.Sources(paths, cfg.Exclude)
	if err != nil {
		return fmt.Errorf("discover sources: %w", err)
	}

	registry := operators.DefaultRegistry()

	counts := make(map[string]int, len(sources))
	total := 0

	for _, file := range sources {
		content, rerr := os.ReadFile(file)
		if rerr != nil {
			return fmt.Errorf("read %s: %w", file, rerr)
		}

		root, _ := lean.Parse(file, content)

		mutations := mutate.Generate(registry, root, file, content, mutate.Options{IncludePatterns: true})
		counts[file] = len(mutations)
		total += len(mutations)
	}

	files := make([]string, 0, len(counts))
	for f := range counts {
		files = append(files, f)
	}

	sort.Strings(files)

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Path", "Mutations"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, f := range files {
		table.Append([]string{f, fmt.Sprintf("%d", counts[f])})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Files %d", len(files)), fmt.Sprintf("%d", total)})
	table.Render()

	return nil
}

func init() {
	rootCmd.AddCommand(listCmd)
}
