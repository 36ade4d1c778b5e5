package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/raysh454/linkscope/docs/swagger" // generated swagger spec
	"github.com/raysh454/linkscope/internal/app"
	"github.com/raysh454/linkscope/internal/logging"
	"github.com/raysh454/linkscope/internal/model"
)

// Server is the HTTP + WebSocket API surface for linkscope.
type Server struct {
	cfg      Config
	app      *app.App
	router   chi.Router
	upgrader websocket.Upgrader
	hub      *wsHub
	logger   logging.Logger
}

// NewServer creates a new Server with its own orchestrator.
func NewServer(cfg Config) (*Server, error) {
	if cfg.AppConfig == nil {
		cfg.AppConfig = app.DefaultConfig()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewStdoutLogger("Server")
	}

	application, err := app.New(cfg.AppConfig, logger)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	s := &Server{
		cfg:    cfg,
		app:    application,
		router: r,
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// TODO: tighten for production
				return true
			},
		},
		hub: newWSHub(logger),
	}

	s.routes()
	return s, nil
}

// App returns the underlying orchestrator for advanced use (tests, etc.).
func (s *Server) App() *app.App {
	return s.app
}

func (s *Server) routes() {
	r := s.router

	r.Use(s.corsMiddleware)

	// CORS preflight
	r.Options("/scans", s.optionsHandler("GET, POST, DELETE"))
	r.Options("/scans/compare", s.optionsHandler("GET"))
	r.Options("/scans/{scanID}", s.optionsHandler("GET"))
	r.Options("/scans/{scanID}/export", s.optionsHandler("GET"))
	r.Options("/ws/scans", s.optionsHandler("GET"))

	// Scans
	r.Post("/scans", s.handleCreateScan)
	r.Get("/scans", s.handleListScans)
	r.Delete("/scans", s.handleClearScans)
	r.Get("/scans/compare", s.handleCompareScans)
	r.Get("/scans/{scanID}", s.handleGetScan)
	r.Get("/scans/{scanID}/export", s.handleExportScan)

	// WebSocket feed of completed scans
	r.Get("/ws/scans", s.handleScansWS)

	// Operational surface
	r.Get("/healthz", s.handleHealthz)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Max-Age", "86400")

		next.ServeHTTP(w, r)
	})
}

func (s *Server) optionsHandler(methods string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Methods", methods)
		w.WriteHeader(http.StatusNoContent)
	}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	fields := []logging.Field{
		{Key: "method", Value: r.Method},
		{Key: "path", Value: r.URL.Path},
	}

	if q := r.URL.Query(); len(q) > 0 {
		fields = append(fields, logging.Field{Key: "query", Value: q})
	}

	if r.Body != nil && r.Method == http.MethodPost {
		if bodyBytes, err := io.ReadAll(r.Body); err == nil {
			fields = append(fields, logging.Field{Key: "body", Value: string(bodyBytes)})
			r.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		}
	}

	s.logger.Info("http_request", fields...)

	s.router.ServeHTTP(w, r)
}

// Close shuts down the websocket hub.
func (s *Server) Close() {
	s.hub.close()
}

// HTTPServer creates an *http.Server ready to ListenAndServe.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         s.cfg.ListenAddr,
		Handler:      s,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // allow streaming
	}
}

// --- JSON helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// --- HTTP handlers ---

// handleCreateScan godoc
// @Summary Scan a URL
// @Description Evaluates the submitted URL against the heuristic rule set and appends the result to the history log.
// @Accept json
// @Produce json
// @Param request body ScanRequest true "URL to scan"
// @Success 201 {object} ScanResponse
// @Failure 400 {object} ErrorResponse
// @Router /scans [post]
func (s *Server) handleCreateScan(w http.ResponseWriter, r *http.Request) {
	var body ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	start := time.Now()
	result, insights, err := s.app.Scan(r.Context(), body.URL)
	if err != nil {
		if errors.Is(err, app.ErrEmptyInput) {
			writeError(w, http.StatusBadRequest, "url must not be empty")
			return
		}
		s.logger.Warn("scanning url", logging.Field{Key: "error", Value: err.Error()})
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	observeScan(result, time.Since(start))

	s.logger.Info("created scan", logging.Field{Key: "id", Value: result.ID}, logging.Field{Key: "status", Value: string(result.Status)})
	s.hub.broadcast(result)
	writeJSON(w, http.StatusCreated, ScanResponse{Result: result, Insights: insights})
}

// handleListScans godoc
// @Summary List scan history
// @Description Returns the bounded history, most-recent-first. An optional filter substring matches URLs case-insensitively.
// @Produce json
// @Param filter query string false "Substring to match against scanned URLs"
// @Success 200 {array} model.ScanResult
// @Router /scans [get]
func (s *Server) handleListScans(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("filter")

	var results []*model.ScanResult
	if filter != "" {
		results = s.app.FilterHistory(filter)
	} else {
		results = s.app.History()
	}
	if results == nil {
		results = []*model.ScanResult{}
	}

	s.logger.Info("listed scans", logging.Field{Key: "count", Value: len(results)})
	writeJSON(w, http.StatusOK, results)
}

// handleClearScans godoc
// @Summary Clear scan history
// @Success 204
// @Router /scans [delete]
func (s *Server) handleClearScans(w http.ResponseWriter, r *http.Request) {
	s.app.ClearHistory()
	s.logger.Info("cleared scan history")
	writeJSON(w, http.StatusNoContent, nil)
}

// handleGetScan godoc
// @Summary Get one scan
// @Produce json
// @Param scanID path string true "Scan ID"
// @Success 200 {object} model.ScanResult
// @Failure 404 {object} ErrorResponse
// @Router /scans/{scanID} [get]
func (s *Server) handleGetScan(w http.ResponseWriter, r *http.Request) {
	scanID := chi.URLParam(r, "scanID")

	result, err := s.app.GetScan(scanID)
	if err != nil {
		s.logger.Warn("getting scan: not found", logging.Field{Key: "id", Value: scanID})
		writeError(w, http.StatusNotFound, "scan not found")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleExportScan godoc
// @Summary Export one scan
// @Description Wraps the scan result in the versioned export envelope.
// @Produce json
// @Param scanID path string true "Scan ID"
// @Success 200 {object} model.ExportEnvelope
// @Failure 404 {object} ErrorResponse
// @Router /scans/{scanID}/export [get]
func (s *Server) handleExportScan(w http.ResponseWriter, r *http.Request) {
	scanID := chi.URLParam(r, "scanID")

	env, err := s.app.Export(scanID)
	if err != nil {
		s.logger.Warn("exporting scan: not found", logging.Field{Key: "id", Value: scanID})
		writeError(w, http.StatusNotFound, "scan not found")
		return
	}
	w.Header().Set("Content-Disposition", "attachment; filename=scan-"+scanID+".json")
	writeJSON(w, http.StatusOK, env)
}

// handleCompareScans godoc
// @Summary Compare two scans
// @Produce json
// @Param base query string true "Base scan ID"
// @Param head query string true "Head scan ID"
// @Success 200 {object} model.ScanDiff
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /scans/compare [get]
func (s *Server) handleCompareScans(w http.ResponseWriter, r *http.Request) {
	baseID := r.URL.Query().Get("base")
	headID := r.URL.Query().Get("head")
	if baseID == "" || headID == "" {
		writeError(w, http.StatusBadRequest, "base and head query parameters are required")
		return
	}

	diff, err := s.app.Compare(baseID, headID)
	if err != nil {
		s.logger.Warn("comparing scans", logging.Field{Key: "error", Value: err.Error()})
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, diff)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
