package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tejashwikalptaru/radiodial/internal/app"
)

type versionCmd struct {
	short bool
}

func (c *versionCmd) register() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().BoolVar(&c.short, "short", false, "Print only the release name")
	return cmd
}

func (c *versionCmd) run(cmd *cobra.Command, _ []string) error {
	info := app.GetVersionInfo()
	if c.short {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), info.Short())
		return err
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), info.FullString())
	return err
}
