package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/adsight/adsight/internal/config"
	"github.com/adsight/adsight/internal/httpx"
	"github.com/adsight/adsight/internal/ingest"
	"github.com/adsight/adsight/internal/insight"
	"github.com/adsight/adsight/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Load the configured datasets and serve the insight API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel()}))
		slog.SetDefault(logger)

		cl := ingest.NewHTTPClient(cfg.HTTPTimeout())
		st := store.NewMemoryStore()
		loader := ingest.NewLoader(cl, st, logger, cfg)
		svc := insight.NewService(st, policyFromConfig(cfg))

		if err := loader.Run(cmd.Context()); err != nil {
			logger.Warn("initial load incomplete", slog.String("err", err.Error()))
		}

		r := httpx.NewRouter(logger, loader, svc)
		srv := &http.Server{
			Addr:              ":" + cfg.Server.Port,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}

		logger.Info("starting server", slog.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	},
}

func policyFromConfig(cfg config.Config) insight.Policy {
	return insight.Policy{
		ZeroSalesThreshold: cfg.Policy.ZeroSalesThreshold,
		ShareGapThreshold:  cfg.Policy.ShareGapThreshold,
		WinnerMinCost:      cfg.Policy.WinnerMinCost,
		WinnerMinROAS:      cfg.Policy.WinnerMinROAS,
		MaxIssues:          cfg.Policy.MaxIssues,
		MaxActions:         cfg.Policy.MaxActions,
	}
}
