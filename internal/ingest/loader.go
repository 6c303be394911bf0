// Package ingest loads the configured performance tables into the memory
// store: fetch or read CSV, normalize, replace. The recommendation pipeline
// itself never touches files or the network.
package ingest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/adsight/adsight/internal/config"
	"github.com/adsight/adsight/internal/models"
	"github.com/adsight/adsight/internal/normalize"
	"github.com/adsight/adsight/internal/obs"
	"github.com/adsight/adsight/internal/store"
	"github.com/adsight/adsight/internal/utils"
)

type Loader struct {
	c   HTTPClient
	st  *store.MemoryStore
	log *slog.Logger
	cfg config.Config
}

func NewLoader(c HTTPClient, st *store.MemoryStore, log *slog.Logger, cfg config.Config) *Loader {
	return &Loader{c: c, st: st, log: log, cfg: cfg}
}

// Run loads every configured dataset. A table that fails is skipped, logged
// and counted; the others still load. An error is returned only when nothing
// could be loaded at all.
func (l *Loader) Run(ctx context.Context) error {
	loaded := 0
	var lastErr error
	for _, t := range models.EntityTypes {
		ds, ok := l.cfg.Datasets[string(t)]
		if !ok || ds.Source == "" {
			continue
		}
		rows, err := l.loadTable(ctx, t, ds.Source)
		if err != nil {
			obs.LoadFailures.WithLabelValues(string(t)).Inc()
			l.log.Error("dataset load failed",
				slog.String("table", string(t)),
				slog.String("source", ds.Source),
				slog.String("err", err.Error()))
			lastErr = err
			continue
		}
		l.st.Replace(t, rows)
		obs.DatasetRows.WithLabelValues(string(t)).Set(float64(len(rows)))
		l.log.Info("dataset loaded",
			slog.String("table", string(t)),
			slog.Int("rows", len(rows)))
		loaded++
	}
	if loaded == 0 && lastErr != nil {
		return fmt.Errorf("no dataset loaded: %w", lastErr)
	}
	return nil
}

func (l *Loader) loadTable(ctx context.Context, t models.EntityType, source string) ([]models.MetricRow, error) {
	var raw []byte
	var err error
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		raw, err = l.fetch(ctx, source)
	} else {
		raw, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, err
	}
	records, err := readRecords(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", t, err)
	}
	return normalize.Rows(records), nil
}

// fetch retrieves a CSV over HTTP with exponential backoff plus jitter.
func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	var body []byte
	backoff := utils.NewBackoff(100*time.Millisecond, 2)
	err := backoff.Do(func(i int) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		resp, err := l.c.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
			return fmt.Errorf("non-2xx: %d body=%s", resp.StatusCode, string(b))
		}
		body, err = io.ReadAll(resp.Body)
		return err
	})
	return body, err
}
