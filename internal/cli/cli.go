// Package cli implements the radiodial command line.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type radiodialCmd interface {
	register() *cobra.Command
	run(cmd *cobra.Command, args []string) error
}

// Cmd builds the root command. Without a subcommand it opens the dial window.
func Cmd() *cobra.Command {
	up := newUpCmd()
	rootCmd := up.register()
	rootCmd.RunE = up.run
	rootCmd.SilenceUsage = true

	themeCmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect dial theme files",
	}
	addCommand(themeCmd, &themeDefaultCmd{})
	addCommand(themeCmd, &themeCheckCmd{})
	rootCmd.AddCommand(themeCmd)

	addCommand(rootCmd, &versionCmd{})

	return rootCmd
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := Cmd().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func addCommand(parent *cobra.Command, child radiodialCmd) {
	cobraChild := child.register()
	cobraChild.RunE = child.run
	parent.AddCommand(cobraChild)
}
