package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fwojciec/tint/config"
	"github.com/fwojciec/tint/manifest"
	"github.com/fwojciec/tint/themefile"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	themesDir  string
	debug      bool
	logFile    string

	logClose func() error
}

// NewRootCmd builds the tint command tree. Subcommands share an App
// whose dependencies are wired in PersistentPreRunE; tests may inject
// their own before executing.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &App{}

	cmd := &cobra.Command{
		Use:   "tint",
		Short: "Verify and preview terminal themes",
		Long: `tint checks theme definition files against a SHA-256 manifest and
renders their colors in the terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(config.Path(flags.configPath))
			if err != nil {
				return err
			}
			if flags.themesDir != "" {
				cfg.ThemesDir = flags.themesDir
			}

			logger, err := flags.setupLogging(cmd.ErrOrStderr(), cfg.LogFile)
			if err != nil {
				return err
			}

			app.Config = cfg
			app.Logger = logger
			app.Out = cmd.OutOrStdout()
			if app.Loader == nil {
				app.Loader = themefile.NewLoader()
			}
			if app.Verifier == nil {
				v := manifest.NewVerifier(cfg.ThemesDir, manifest.WithLogger(logger))
				app.Verifier = v
				app.Batch = v
			}
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if flags.logClose != nil {
				return flags.logClose()
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to the config file")
	cmd.PersistentFlags().StringVar(&flags.themesDir, "themes-dir", "", "override the themes directory")
	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "write logs to a file instead of stderr")

	cmd.AddCommand(
		newVerifyCmd(app),
		newShowCmd(app),
		newPreviewCmd(app),
		newHashCmd(app),
	)

	return cmd
}

// setupLogging configures the process-wide slog logger. The log file
// flag wins over the config file setting.
func (f *rootFlags) setupLogging(stderr io.Writer, cfgLogFile string) (*slog.Logger, error) {
	level := slog.LevelInfo
	if f.debug {
		level = slog.LevelDebug
	}

	w := stderr
	path := f.logFile
	if path == "" {
		path = cfgLogFile
	}
	if path != "" {
		file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w = file
		f.logClose = file.Close
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger, nil
}
