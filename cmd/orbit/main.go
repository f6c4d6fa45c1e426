// Command orbit is a terminal client for the orbit account service: register,
// log in, then browse the Home, Explore and Profile tabs.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"orbit/internal/auth"
	"orbit/internal/config"
	"orbit/internal/logging"
	"orbit/internal/telemetry"
	"orbit/internal/ui"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

type options struct {
	configFile string
	apiURL     string
	logFile    string
	logLevel   string
	timeout    time.Duration
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "orbit",
		Short:         "Terminal client for the orbit account service",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.configFile, "config", "", "YAML config file")
	f.StringVar(&opts.apiURL, "api-url", "", "backend base URL (env "+config.EnvAPIURL+")")
	f.StringVar(&opts.logFile, "log-file", "", "log file path (env "+config.EnvLogFile+")")
	f.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error (env "+config.EnvLogLevel+")")
	f.DurationVar(&opts.timeout, "timeout", 0, "per-request timeout, 0 disables (default 30s)")
	return cmd
}

// resolveConfig layers flags that were set explicitly over config.Load.
func resolveConfig(cmd *cobra.Command, opts options) (*config.Config, error) {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return nil, err
	}
	f := cmd.Flags()
	if f.Changed("api-url") {
		cfg.APIURL = opts.apiURL
	}
	if f.Changed("log-file") {
		cfg.LogFile = opts.logFile
	}
	if f.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if f.Changed("timeout") {
		cfg.RequestTimeout = opts.timeout
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func run(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger, closer, err := logging.Open(cfg.LogFile, level)
	if err != nil {
		return err
	}
	defer closer.Close()

	tp, err := telemetry.Setup(ctx, version, logger)
	if err != nil {
		logger.Warn("tracing disabled", "err", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Warn("trace shutdown", "err", err)
		}
	}()

	client := auth.NewClient(cfg.APIURL,
		auth.WithTimeout(cfg.RequestTimeout),
		auth.WithLogger(logger),
	)
	logger.Info("starting", "version", version, "api_url", client.BaseURL(), "timeout", cfg.RequestTimeout)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	model := ui.NewAppModel(ctx, client, logger).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	logger.Info("exiting")
	return nil
}
