package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"storefront/internal/config"
	"storefront/internal/logger"
	"storefront/internal/tracer"
	"storefront/internal/version"

	"github.com/spf13/cobra"
)

var (
	themeFlag   string
	logFileFlag string

	cfg      *config.Config
	shutdown = func() {}
	logFile  *os.File
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Browse the shop catalog and add items to your cart",
	Long: `storefront talks to the shop API at API_URL.

Available subcommands:
  browse - Print the product grid, optionally filtered with --search
  tui    - Interactive shop page with live search
  serve  - Server-rendered shop page over HTTP
  add    - Add one or more products to the cart
  login  - Store a session token
  logout - Remove the stored session token`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		shutdown()
		if logFile != nil {
			_ = logFile.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "color theme: light or dark (default from THEME)")
	rootCmd.PersistentFlags().StringVar(&logFileFlag, "log-file", "", "write JSON logs to this file")

	rootCmd.AddCommand(browseCmd, tuiCmd, serveCmd, addCmd, loginCmd, logoutCmd)
}

// setup routes logs away from the rendered output, loads configuration
// and starts telemetry.
func setup(cmd *cobra.Command, args []string) error {
	switch {
	case logFileFlag != "":
		f, err := os.OpenFile(logFileFlag, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		logger.SetOutput(f)
	case cmd == tuiCmd:
		logger.SetOutput(io.Discard)
	case cmd != serveCmd:
		logger.SetOutput(os.Stderr)
	}

	cfg = config.Instance()
	if themeFlag != "" {
		if themeFlag != config.ThemeLight && themeFlag != config.ThemeDark {
			return fmt.Errorf("invalid --theme %q: want %q or %q", themeFlag, config.ThemeLight, config.ThemeDark)
		}
		cfg.Theme = themeFlag
	}

	logger.Instance().Info(cfg.AppName,
		slog.String("version", version.Version),
		slog.String("commit", version.Commit),
		slog.String("buildTime", version.BuildTime),
		slog.String("command", cmd.Name()),
	)

	stop, err := tracer.Instance(context.Background(), cfg)
	if err != nil {
		logger.Instance().Warn("Telemetry disabled", slog.String("error", err.Error()))
		return nil
	}
	shutdown = stop
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
