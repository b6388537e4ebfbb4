package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tejashwikalptaru/radiodial/internal/config"
)

type themeDefaultCmd struct{}

func (c *themeDefaultCmd) register() *cobra.Command {
	return &cobra.Command{
		Use:   "default",
		Short: "Print the built-in theme as TOML",
		Long: `Prints every theme key with its built-in value. Save the output,
edit what you want to change and load it with --theme or File > Load Theme.

radiodial theme default > mytheme.toml
`,
		Args: cobra.NoArgs,
	}
}

func (c *themeDefaultCmd) run(cmd *cobra.Command, _ []string) error {
	return config.Encode(cmd.OutOrStdout(), config.Default())
}

type themeCheckCmd struct{}

func (c *themeCheckCmd) register() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Validate theme files without opening a window",
		Args:  cobra.MinimumNArgs(1),
	}
}

func (c *themeCheckCmd) run(cmd *cobra.Command, args []string) error {
	failed := 0
	for _, path := range args {
		if _, err := config.Load(path); err != nil {
			failed++
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
			continue
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d theme files are invalid", failed, len(args))
	}
	return nil
}
