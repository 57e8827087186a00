package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/zipstate"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries the state shared by subcommands.
type app struct {
	configPath string
	debug      bool
	output     string

	cfg    *Config
	logger *zipstate.Logger
	db     *zipstate.DB
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "zipstate",
		Short:         "Resolve US ZIP codes to states and normalize state names",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "TOML config selecting the dataset source")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging to stderr")
	cmd.PersistentFlags().StringVarP(&a.output, "output", "o", formatText, "output format: text, json or yaml")

	cmd.AddCommand(
		a.stateCmd(),
		a.validCmd(),
		a.abbrCmd(),
		a.nameCmd(),
		a.normCmd(),
		a.formatCmd(),
		a.zipsCmd(),
		a.versionCmd(),
		a.buildCmd(),
	)
	return cmd
}

func (a *app) init() error {
	if err := checkFormat(a.output); err != nil {
		return err
	}

	level := slog.LevelWarn
	if a.debug {
		level = slog.LevelDebug
	}
	a.logger = zipstate.NewTextLogger(level)

	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

// open loads the configured dataset on first use.
func (a *app) open(ctx context.Context) (*zipstate.DB, error) {
	if a.db != nil {
		return a.db, nil
	}

	opts := []zipstate.Option{
		zipstate.WithLogger(a.logger),
		zipstate.WithCodec(a.cfg.Codec()),
	}
	if a.cfg.Dataset.Source != SourceEmbedded {
		store, name, err := a.cfg.Store(ctx)
		if err != nil {
			return nil, err
		}
		opts = append(opts, zipstate.WithArtifact(store, name))
	}

	db, err := zipstate.Open(ctx, opts...)
	if err != nil {
		return nil, err
	}
	a.db = db
	return db, nil
}
