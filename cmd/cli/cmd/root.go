// Package cmd provides the CLI commands for kscalc.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"kingshot-calc/adapters/storage"
	"kingshot-calc/core/calculator"
	"kingshot-calc/core/export"
	"kingshot-calc/core/tabledef"
	"kingshot-calc/games/kingshot"
	"kingshot-calc/internal/config"
	"kingshot-calc/internal/logging"
)

// Version is the CLI version
const Version = "0.1.0"

// app is the state shared by every command once the config is loaded
type app struct {
	cfg     *config.Config
	reg     *calculator.Registry
	store   storage.Store
	formats *export.Registry
}

type rootOptions struct {
	cfgFile string
	verbose bool
	app     *app
}

// Execute runs the CLI
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "kscalc",
		Short: "Resource planning calculators for Kingshot",
		Long: `kscalc answers "how much does it cost to go from here to there,
and how long will it take" for Kingshot's upgrade systems.

Examples:
  kscalc calculate mastery --current 0 --target 10 --income 200 --multiplier 3
  kscalc calculate pet --current 1 --target 60 --income 500 --opt type=wolf
  kscalc tiers gear
  kscalc bear --events 20 --hammers 15`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			opts.app = a
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if opts.app != nil && opts.app.store != nil {
				return opts.app.store.Close()
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.kscalc/config.json)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(
		newCalculateCmd(opts),
		newCalculatorsCmd(opts),
		newTiersCmd(opts),
		newBearCmd(opts),
		newTroopCmd(opts),
		newCompareCmd(opts),
		newHistoryCmd(opts),
		newTablesCmd(),
		versionCmd,
	)
	return rootCmd
}

// load reads the config, initialises logging and builds the registry.
// Table files that fail to load are reported and the built-in tables kept.
func (o *rootOptions) load(stderr io.Writer) (*app, error) {
	path := o.cfgFile
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = home + "/.kscalc/config.json"
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if o.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(stderr, "Error initializing logging: %v\n", err)
	}
	config.Set(cfg)
	logging.Debug("config loaded", zap.String("path", path), zap.String("storage", cfg.Storage.Directory))

	tables, err := tabledef.LoadTables(cfg.Tables.Files...)
	if err != nil {
		logging.Warn("table files", zap.Error(err))
		fmt.Fprintf(stderr, "Warning: %v\n", err)
	}
	if len(tables) > 0 {
		logging.Info("loaded table files", zap.Int("files", len(cfg.Tables.Files)), zap.Int("tables", len(tables)))
	}
	reg := calculator.NewRegistry()
	if err := kingshot.Register(reg, tables); err != nil {
		logging.Warn("table overrides", zap.Error(err))
		fmt.Fprintf(stderr, "Warning: %v\n", err)
	}

	store, err := storage.StoreFactory(storage.Backend(cfg.Storage.Backend), map[string]string{"path": cfg.Storage.Directory})
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:   cfg,
		reg:   reg,
		store: store,
		formats: export.DefaultRegistry(export.TextOptions{
			Locale:    cfg.Output.Locale,
			Breakdown: cfg.Output.ShowBreakdown,
		}),
	}, nil
}

// render writes a report in the named format, the configured default
// when format is empty
func (a *app) render(w io.Writer, report *calculator.Report, format string) error {
	if format == "" {
		format = a.cfg.Output.DefaultFormat
	}
	f, err := a.formats.Get(export.Format(format))
	if err != nil {
		return err
	}
	return f.Render(w, report)
}

// run calculates, applies prepare to the report, then saves and renders.
// Rejected input is never saved.
func (a *app) run(cmd *cobra.Command, name string, in calculator.Input, format string, save bool, prepare ...func(*calculator.Report)) error {
	calc, err := a.reg.Get(name)
	if err != nil {
		return err
	}
	report, err := calc.Calculate(in)
	if err != nil {
		return err
	}
	for _, p := range prepare {
		p(report)
	}
	if save {
		if err := a.store.Save(cmd.Context(), calculator.StorageKey(calc.Name()), report); err != nil {
			return err
		}
	}
	return a.render(cmd.OutOrStdout(), report, format)
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "kscalc version %s\n", Version)
	},
}
