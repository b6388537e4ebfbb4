package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tejashwikalptaru/radiodial/internal/app"
	"github.com/tejashwikalptaru/radiodial/internal/logger"
)

type upCmd struct {
	preset    string
	theme     string
	logLevel  string
	logFormat string
	scroll    bool

	// newApp is swapped in tests
	newApp func(app.Config) (runner, error)
}

type runner interface {
	Run() error
	Shutdown() error
}

func newUpCmd() *upCmd {
	return &upCmd{
		newApp: func(cfg app.Config) (runner, error) {
			return app.NewApplication(cfg)
		},
	}
}

func (c *upCmd) register() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "radiodial",
		Short: "A scrollable radio frequency dial",
		Long: `Opens a window with a horizontally scrolling frequency ruler.

Drag or scroll the ruler, use the arrow buttons or Alt+Left / Alt+Right to
tune. The band, the scroll toggle and the last theme are remembered between
runs; the flags below override them and are remembered too.

# Start on AM with a theme
radiodial --preset am --theme ~/themes/night.toml
`,
		Args: cobra.NoArgs,
	}

	cmd.Flags().StringVar(&c.preset, "preset", "", "Band to start on: fm or am (default: last used)")
	cmd.Flags().StringVar(&c.theme, "theme", "", "TOML theme file to apply (default: last used)")
	cmd.Flags().BoolVar(&c.scroll, "scroll", true, "Allow dragging and wheel scrolling of the ruler")
	cmd.Flags().StringVar(&c.logLevel, "log-level", "", "Log level: debug, info, warn or error (default: $"+logger.EnvLevel+" or info)")
	cmd.Flags().StringVar(&c.logFormat, "log-format", "text", "Log format: text or json")

	return cmd
}

// appConfig turns the flags into an application config. Flags left unset
// keep the saved preferences.
func (c *upCmd) appConfig(cmd *cobra.Command) (app.Config, error) {
	cfg := app.DefaultConfig()
	cfg.Preset = c.preset
	cfg.ThemePath = c.theme

	if cmd.Flags().Changed("scroll") {
		scroll := c.scroll
		cfg.ScrollEnabled = &scroll
	}

	if c.logLevel != "" {
		level, err := logger.ParseLevel(c.logLevel)
		if err != nil {
			return cfg, err
		}
		cfg.LogLevel = level
	}

	switch c.logFormat {
	case "text", "json":
		cfg.LogFormat = c.logFormat
	default:
		return cfg, fmt.Errorf("unknown log format %q", c.logFormat)
	}

	return cfg, nil
}

func (c *upCmd) run(cmd *cobra.Command, _ []string) error {
	cfg, err := c.appConfig(cmd)
	if err != nil {
		return err
	}

	application, err := c.newApp(cfg)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}

	// Run blocks until the window is closed
	runErr := application.Run()
	if err := application.Shutdown(); err != nil && runErr == nil {
		return err
	}
	return runErr
}
