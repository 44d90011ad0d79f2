// Package cmd provides the root command and CLI setup for gooze, a mutation
// testing tool for the Lean 4 language.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gooze.dev/pkg/gooze/internal/config"
)

func init() {
	config.Init()
	configureRootFlags(rootCmd)
}

const pathPatternsHelp = `paths may be individual .lean files or directories to scan recursively.
Hidden directories and .gooze-cache are skipped automatically.`

const rootLongDescription = `Gooze is a mutation testing tool for Lean 4 that assesses test-suite
quality by introducing small changes (mutations) to your sources and
checking whether your build/test tool catches them.

` + pathPatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gooze",
		Short: "Mutation testing for Lean 4",
		Long:  rootLongDescription,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().Bool("verbose", false, "enable debug-level logging")
	bindFlagToConfig(cmd.PersistentFlags().Lookup("verbose"), "verbose")

	cmd.PersistentFlags().Bool("no-color", false, "disable ANSI color in console output")
	bindFlagToConfig(cmd.PersistentFlags().Lookup("no-color"), "no-color")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(os.ErrInvalid)
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and runs it. It is
// called by main.main() exactly once.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
