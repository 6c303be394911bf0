package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/adsight/adsight/internal/ingest"
	"github.com/adsight/adsight/internal/insight"
	"github.com/adsight/adsight/internal/models"
	"github.com/adsight/adsight/internal/utils"
)

type router struct{ mux *chi.Mux }

func NewRouter(log *slog.Logger, loader *ingest.Loader, svc *insight.Service) http.Handler {
	mux := chi.NewRouter()
	mux.Use(utils.RequestID)
	mux.Use(utils.Logger(log))

	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ok")) })
	mux.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ready")) })
	mux.Handle("/metrics", promhttp.Handler())

	mux.Post("/ingest/run", func(w http.ResponseWriter, r *http.Request) {
		if err := loader.Run(r.Context()); err != nil {
			http.Error(w, err.Error(), 502)
			return
		}
		w.WriteHeader(202)
		w.Write([]byte("reload started"))
	})

	mux.Get("/api/view", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, svc.View(parseFilter(r.URL.Query())))
	})
	mux.Get("/api/summary", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, svc.View(parseFilter(r.URL.Query())).Summary)
	})
	mux.Get("/api/shares", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, svc.View(parseFilter(r.URL.Query())).Shares)
	})
	mux.Get("/api/issues", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, svc.View(parseFilter(r.URL.Query())).Issues)
	})
	mux.Get("/api/actions", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, svc.View(parseFilter(r.URL.Query())).Actions)
	})

	mux.Get("/api/rows/{table}", func(w http.ResponseWriter, r *http.Request) {
		t, ok := tableParam(chi.URLParam(r, "table"))
		if !ok {
			http.Error(w, "unknown table", 404)
			return
		}
		q := r.URL.Query()
		req := models.FilterRequest{
			Start:     parseDay(q.Get("start_date")),
			End:       parseDay(q.Get("end_date")),
			EntityIDs: splitCSV(q.Get("entity_id")),
		}
		limit := atoiDef(q.Get("limit"), 0)
		writeJSON(w, toRowJSON(svc.Rows(t, req, limit)))
	})

	return mux
}

func tableParam(s string) (models.EntityType, bool) {
	t := models.EntityType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range models.EntityTypes {
		if t == known {
			return t, true
		}
	}
	return "", false
}

// parseFilter maps view query params to a filter request: from, to
// (YYYY-MM-DD), entities (comma-separated ids), threshold.
func parseFilter(v url.Values) models.FilterRequest {
	req := models.FilterRequest{
		Start:     parseDay(v.Get("from")),
		End:       parseDay(v.Get("to")),
		EntityIDs: splitCSV(v.Get("entities")),
	}
	if s := v.Get("threshold"); s != "" {
		if f, err := strconv.ParseFloat(s, 64); err == nil && f >= 0 {
			req.Threshold = &f
		}
	}
	return req
}

func parseDay(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &t
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func atoiDef(s string, d int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return d
	}
	return v
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	enc.Encode(v)
}
