package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/thepitchdeck/portal/internal/app"
	"github.com/thepitchdeck/portal/internal/config"
	"github.com/thepitchdeck/portal/internal/logging"
	"github.com/thepitchdeck/portal/internal/server"
	"github.com/thepitchdeck/portal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Long: `Run the portal's HTTP server until SIGINT or SIGTERM.

Configuration is read from the environment (and a .env file when present):
  PORTAL_ADDR, PORTAL_API_BASE_URL, PORTAL_API_TIMEOUT, PORTAL_SESSION_SECRET,
  PORTAL_STATIC_DIR, PORTAL_FAVOURITES_TOGGLE, PORTAL_RATE_LIMIT,
  LOG_FORMAT, LOG_LEVEL`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	logger := logging.New(cfg.LogFormat, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	injector := app.NewInjector(cfg, logger)
	defer func() {
		if report := injector.Shutdown(); report != nil && !report.Succeed {
			logger.Error("Dependency shutdown failed", "error", report.Error())
		}
	}()

	deps, err := app.Resolve(injector)
	if err != nil {
		return err
	}
	if err := deps.StartDiagnostics(ctx); err != nil {
		return err
	}

	static, err := web.StaticFS(cfg.StaticDir)
	if err != nil {
		return fmt.Errorf("static assets: %w", err)
	}
	s, err := server.New(deps, static)
	if err != nil {
		return fmt.Errorf("build server: %w", err)
	}
	s.RegisterRoutes()

	return s.Start(ctx, cfg.Addr)
}
