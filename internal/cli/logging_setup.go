package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sdiallo/woyofal/internal/config"
	"github.com/sdiallo/woyofal/internal/logging"
)

// Environment variables recognised for logging overrides.
const (
	envLogLevel  = "WOYOFAL_LOG_LEVEL"
	envLogFormat = "WOYOFAL_LOG_FORMAT"
	envConfig    = "WOYOFAL_CONFIG"
)

// setupLogging configures logging from defaults, environment, and CLI
// flags, and attaches the logger plus a trace ID to the command context.
func setupLogging(cmd *cobra.Command) {
	cfg := logging.Config{
		Level:  "warn",
		Format: "console",
		Output: cmd.ErrOrStderr(),
	}

	if envLevel := os.Getenv(envLogLevel); envLevel != "" {
		cfg.Level = envLevel
	}
	if envFormat := os.Getenv(envLogFormat); envFormat != "" {
		cfg.Format = envFormat
	}

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		cfg.Level = "debug"
		cfg.Format = "console"
	}

	root := logging.New(cfg)
	logger = logging.ComponentLogger(root, "cli")

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Debug().Str("command", cmd.Name()).Str("trace_id", traceID).Msg("command started")
}

// configOverride returns the config file path override for a command
// run. The --config flag wins over the WOYOFAL_CONFIG environment
// variable; empty means the default path.
func configOverride(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path
	}
	return os.Getenv(envConfig)
}

// loadRates resolves the rate configuration for a command run.
func loadRates(cmd *cobra.Command) (config.Rates, error) {
	if path := configOverride(cmd); path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}
