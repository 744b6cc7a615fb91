package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/prf-platform/prfweb/internal/gateway/config"
	"github.com/prf-platform/prfweb/internal/gateway/server"
	"github.com/prf-platform/prfweb/internal/logger"
	"github.com/prf-platform/prfweb/internal/version"

	// CA roots for outbound TLS when built into a scratch container
	_ "golang.org/x/crypto/x509roots/fallback"
)

func main() {
	cmd := &cobra.Command{
		Use:   "prfweb",
		Short: "PRF web gateway",
		Long:  `Serves the PRF single-page app and forwards /api traffic to the PRF backend`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	v := version.Get()
	cmd.Version = fmt.Sprintf("%s (built %s, commit %s)", v.Version, v.BuildDate, v.GitCommit)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	// .env is optional - real deployments configure through the environment
	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		return err
	}

	log := logger.InitLogger(logger.ParseLogLevel(cfg.LogLevel), cfg.Environment)

	log.Info("starting gateway",
		slog.String("version", version.Get().Version),
		slog.String("environment", cfg.Environment),
		slog.String("backend", cfg.APIBaseURL),
	)

	corsMw, err := config.NewCORSMiddleware(cfg)
	if err != nil {
		log.Error("failed to configure CORS", slog.String("error", err.Error()))
		return err
	}

	srv, err := server.NewServer(cfg, log, corsMw)
	if err != nil {
		log.Error("failed to create server", slog.String("error", err.Error()))
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Start(ctx); err != nil {
		log.Error("gateway error", slog.String("error", err.Error()))
		return err
	}

	log.Info("gateway shutdown complete")
	return nil
}
