package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"impractical.co/vitae/internal/config"
)

var (
	cfgFile string
	verbose bool

	appConfig config.Config
)

var rootCmd = &cobra.Command{
	Use:   "vitae",
	Short: "Render a curriculum vitae as a static HTML page",
	Long: `vitae reads a CV from a YAML, JSON, or Markdown content file and
renders it, along with any stylesheets, into a single static HTML page.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return initializeConfig(cmd)
	},
}

// Execute runs the root command and exits non-zero if it fails.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./vitae.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, or error")
}

func initializeConfig(cmd *cobra.Command) error {
	cfg, used, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	appConfig = cfg

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	cmd.SetContext(withLogger(cmd.Context(), logger))

	if used != "" {
		logger.Debug("using config file", "path", used)
	} else {
		logger.Debug("no config file found, using defaults, environment, and flags")
	}
	return nil
}
