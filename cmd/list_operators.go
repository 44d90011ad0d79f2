package cmd

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"gooze.dev/pkg/gooze/internal/mutate/operators"
)

var listOperatorsCmd = newListOperatorsCmd()

func newListOperatorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-operators",
		Short: "List the built-in mutation operators",
		Long:  "Print every registered mutation operator in registration order, with its description.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry := operators.DefaultRegistry()

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Name", "Description"})
			table.SetBorder(false)
			table.SetCenterSeparator("")
			table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

			for _, op := range registry.All() {
				table.Append([]string{op.Name(), op.Description()})
			}

			table.Render()

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(listOperatorsCmd)
}
