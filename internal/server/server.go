// Package server exposes the chart engine over HTTP: a JSON API plus a
// minimal embedded HTML front end. Field names on the wire match the
// original API (Portuguese), so existing clients keep working.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/vekiano/mapa-astral-estrelas/internal/astro"
	"github.com/vekiano/mapa-astral-estrelas/internal/chart"
	"github.com/vekiano/mapa-astral-estrelas/internal/cities"
	"github.com/vekiano/mapa-astral-estrelas/internal/config"
	"github.com/vekiano/mapa-astral-estrelas/internal/ephemeris"
	"github.com/vekiano/mapa-astral-estrelas/internal/report"
)

// Server wires the chart computer and the city index behind HTTP
// handlers. Each request runs an independent computation; the server
// holds no per-request state.
type Server struct {
	cfg      config.Config
	computer *chart.Computer
	cities   *cities.Index // nil when no gazetteer is configured
}

// New creates a Server. The cities index may be nil.
func New(cfg config.Config, oracle ephemeris.Oracle, cityIndex *cities.Index) *Server {
	computer := chart.NewComputer(oracle, cfg.NatalTable(), ephemeris.HouseSystem(cfg.HouseSystem))
	return &Server{cfg: cfg, computer: computer, cities: cityIndex}
}

// Handler returns the routed HTTP handler with request logging applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /", s.handleIndex)
	mux.HandleFunc("GET /api/cidades", s.handleCities)
	mux.HandleFunc("POST /api/calcular", s.handleCalculate)
	return withRequestLog(mux)
}

// ListenAndServe runs the server until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.HTTPAddr,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	slog.Info("server listening", "addr", s.cfg.HTTPAddr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errc:
		return err
	}
}

// chartRequest mirrors the original JSON request body.
type chartRequest struct {
	Nome      string  `json:"nome"`
	Dia       int     `json:"dia"`
	Mes       int     `json:"mes"`
	Ano       int     `json:"ano"`
	Hora      int     `json:"hora"`
	Minuto    int     `json:"minuto"`
	Segundo   int     `json:"segundo"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  float64 `json:"timezone"`
	Cidade    string  `json:"cidade"`
	Estado    string  `json:"estado"`
	Pais      string  `json:"pais"`
}

func (r chartRequest) input() chart.Input {
	return chart.Input{
		Name: r.Nome,
		Calendar: astro.Calendar{
			Year: r.Ano, Month: r.Mes, Day: r.Dia,
			Hour: r.Hora, Minute: r.Minuto, Second: r.Segundo,
			UTCOffset: r.Timezone,
		},
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		City:      r.Cidade,
		State:     r.Estado,
		Country:   r.Pais,
	}
}

type chartResponse struct {
	Status         string `json:"status"`
	Relatorio      string `json:"relatorio,omitempty"`
	Msg            string `json:"msg,omitempty"`
	PlanetasCount  int    `json:"planetas_count,omitempty"`
	AspectosCount  int    `json:"aspectos_count,omitempty"`
	TransitosCount int    `json:"transitos_count,omitempty"`
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var req chartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, chartResponse{Status: "erro", Msg: "corpo JSON inválido"})
		return
	}

	in := req.input()
	// Validation failures never reach the oracle.
	if err := in.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, chartResponse{Status: "erro", Msg: err.Error()})
		return
	}

	snap, err := s.computer.ComputeSnapshot(r.Context(), in)
	if err != nil {
		s.writeComputeError(w, r.Context(), err)
		return
	}
	tl, err := s.computer.ComputeTimeline(r.Context(), in, chart.TimelineOptions{
		MarginDays:  s.cfg.WindowMarginDays,
		StepDays:    s.cfg.StepDays,
		ScanAspects: s.cfg.ScanTable(),
		Workers:     s.cfg.Workers,
	})
	if err != nil {
		s.writeComputeError(w, r.Context(), err)
		return
	}

	writeJSON(w, http.StatusOK, chartResponse{
		Status:         "ok",
		Relatorio:      report.RenderText(snap, tl),
		PlanetasCount:  len(snap.Placements),
		AspectosCount:  len(snap.Aspects),
		TransitosCount: len(tl.Events),
	})
}

// writeComputeError maps computation failures: oracle errors are the
// caller's data being out of the supported range (400); everything else
// is a server fault.
func (s *Server) writeComputeError(w http.ResponseWriter, ctx context.Context, err error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		writeJSON(w, http.StatusRequestTimeout, chartResponse{Status: "erro", Msg: "cálculo cancelado"})
		return
	}
	if ephemeris.IsOracleError(err) {
		writeJSON(w, http.StatusBadRequest, chartResponse{Status: "erro", Msg: err.Error()})
		return
	}
	slog.Error("chart computation failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, chartResponse{Status: "erro", Msg: "falha no cálculo"})
}

func (s *Server) handleCities(w http.ResponseWriter, r *http.Request) {
	if s.cities == nil {
		writeJSON(w, http.StatusOK, []cities.City{})
		return
	}
	q := r.URL.Query().Get("q")
	if len(q) < 2 {
		writeJSON(w, http.StatusOK, []cities.City{})
		return
	}
	results, err := s.cities.Search(r.Context(), q)
	if err != nil {
		slog.Error("city search failed", "query", q, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"erro": "busca de cidades falhou"})
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexHTML)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response failed", "error", err)
	}
}

// withRequestLog tags every request with a time-sortable correlation id
// and logs method, path, status and duration.
func withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.Must(uuid.NewV7()).String()
		start := time.Now()

		lw := &loggingWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(lw, r)

		slog.Info("request",
			"request_id", reqID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", lw.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

type loggingWriter struct {
	http.ResponseWriter
	status int
}

func (w *loggingWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
