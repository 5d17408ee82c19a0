package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-markup/internal/config"
	"github.com/goliatone/go-markup/pkg/document"
	"github.com/goliatone/go-markup/pkg/logging"
	"github.com/goliatone/go-markup/pkg/scope"
)

// Set through -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type app struct {
	verbosity  int
	configFile string
	cfg        config.Config
	logger     zerolog.Logger
}

// NewRootCmd builds the command tree. Each call returns independent state so
// tests can execute commands repeatedly.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "markup",
		Short: "Render declarative HTML and CSS documents",
		Long: `markup renders ordered YAML or JSON documents into HTML and CSS.

Documents reference values from a context file with the !ctx tag. Files named
*.css.yaml describe style rules; everything else describes markup.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default: markup.toml in the working directory)")

	root.AddCommand(
		newRenderCmd(a),
		newStyleCmd(a),
		newBuildCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	path := a.configFile
	if path == "" {
		path = config.DiscoverAll(".")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	a.cfg = cfg

	verbosity := a.verbosity
	if cfg.Verbosity > verbosity {
		verbosity = cfg.Verbosity
	}
	logging.Setup(verbosity, cmd.ErrOrStderr())
	a.logger = logging.GetLogger("cli")
	a.logger.Debug().Str("command", cmd.Name()).Str("config", path).Msg("command started")
	return nil
}

// context loads the context file named by the flag, falling back to the
// configured one. No file means no explicit context.
func (a *app) context(flagValue string) (scope.Context, error) {
	path := flagValue
	if path == "" {
		path = a.cfg.Context
	}
	if path == "" {
		return nil, nil
	}
	ctx, err := document.LoadContext(path)
	if err != nil {
		return nil, err
	}
	a.logger.Debug().Str("path", path).Int("keys", len(ctx)).Msg("context loaded")
	return ctx, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "markup version %s\n", version)
			fmt.Fprintf(out, "  commit: %s\n", commit)
			fmt.Fprintf(out, "  built:  %s\n", date)
		},
	}
}
