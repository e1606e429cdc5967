package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rgehrsitz/bdtax/internal/config"
	"github.com/rgehrsitz/bdtax/internal/domain"
	"github.com/rgehrsitz/bdtax/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app is the state shared by every subcommand, resolved once per invocation
type app struct {
	settings *config.Settings
	logger   *zap.Logger
	lang     domain.Language
}

type rootOptions struct {
	configPath string
	brackets   string
	lang       string
	logLevel   string
	logFormat  string
	debug      bool
}

// loadTable returns the configured bracket table, or the built-in one for the
// current language. builtin reports which of the two it is.
func (a *app) loadTable() (table *domain.TaxConfig, builtin bool, err error) {
	table, err = config.NewInputParser().LoadOrDefault(a.settings.Brackets, a.lang)
	if err != nil {
		return nil, false, err
	}
	return table, a.settings.Brackets == "", nil
}

func (a *app) setup(cmd *cobra.Command, opts *rootOptions) error {
	settings, err := config.LoadSettings(opts.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("brackets") {
		settings.Brackets = opts.brackets
	}
	if flags.Changed("lang") {
		settings.Language = opts.lang
	}
	if flags.Changed("log-format") {
		settings.Logging.Format = opts.logFormat
	}
	levelOverride := ""
	if flags.Changed("log-level") {
		levelOverride = opts.logLevel
	}
	if opts.debug {
		levelOverride = "debug"
	}

	logger, err := logging.New(settings.Logging, levelOverride)
	if err != nil {
		return err
	}

	lang, err := domain.ParseLanguage(settings.Language)
	if err != nil {
		return err
	}

	a.settings = settings
	a.logger = logger
	a.lang = lang

	logger.Debug("settings resolved",
		zap.String("brackets", settings.Brackets),
		zap.String("language", string(lang)),
		zap.String("format", settings.Format),
	)
	return nil
}

func newRootCmd() *cobra.Command {
	a := &app{}
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "bdtax",
		Short: "Bangladesh income tax calculator",
		Long: `Calculate progressive income tax over a bracket table.

The built-in table is the FY 2024-2025 individual taxpayer schedule; pass
--brackets to use a table from a YAML file instead.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, opts)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "Settings file (default: ./bdtax.yaml or $HOME/.config/bdtax/bdtax.yaml)")
	pf.StringVarP(&opts.brackets, "brackets", "b", "", "Bracket table file (default: built-in table)")
	pf.StringVarP(&opts.lang, "lang", "l", "en", "Output language (en, bn)")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	pf.StringVar(&opts.logFormat, "log-format", "console", "Log format (console, json)")
	pf.BoolVar(&opts.debug, "debug", false, "Enable debug output for detailed calculations")

	root.AddCommand(
		newCalculateCmd(a),
		newBracketsCmd(a),
		newValidateCmd(a),
		newSweepCmd(a),
		newCompareCmd(a),
		newSolveCmd(a),
		newTUICmd(a),
		versionCmd(),
	)
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bdtax %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil && bi.Main.Version != "" {
		return bi.Main.Path + " " + bi.Main.Version
	}
	return ""
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
