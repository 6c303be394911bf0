package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/adsight/adsight/internal/config"
	"github.com/adsight/adsight/internal/ingest"
	"github.com/adsight/adsight/internal/insight"
	"github.com/adsight/adsight/internal/models"
	"github.com/adsight/adsight/internal/store"
)

var (
	analyzeFrom      string
	analyzeTo        string
	analyzeEntities  []string
	analyzeThreshold float64
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the pipeline once and print the view model as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel()}))

		cl := ingest.NewHTTPClient(cfg.HTTPTimeout())
		st := store.NewMemoryStore()
		loader := ingest.NewLoader(cl, st, logger, cfg)
		if err := loader.Run(cmd.Context()); err != nil {
			return err
		}

		req := models.FilterRequest{EntityIDs: analyzeEntities}
		if t, ok := parseDayFlag(analyzeFrom); ok {
			req.Start = t
		}
		if t, ok := parseDayFlag(analyzeTo); ok {
			req.End = t
		}
		if cmd.Flags().Changed("threshold") {
			req.Threshold = &analyzeThreshold
		}

		svc := insight.NewService(st, policyFromConfig(cfg))
		view := svc.View(req)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", " ")
		return enc.Encode(view)
	},
}

func parseDayFlag(s string) (*time.Time, bool) {
	if s == "" {
		return nil, false
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ignoring bad date %q (want YYYY-MM-DD)\n", s)
		return nil, false
	}
	return &t, true
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeFrom, "from", "", "Start date (YYYY-MM-DD, inclusive)")
	analyzeCmd.Flags().StringVar(&analyzeTo, "to", "", "End date (YYYY-MM-DD, inclusive)")
	analyzeCmd.Flags().StringSliceVar(&analyzeEntities, "entities", nil, "Restrict to these entity ids")
	analyzeCmd.Flags().Float64Var(&analyzeThreshold, "threshold", 1.0, "Zero-sales spend threshold")
}
