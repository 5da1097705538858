// Package web serves a row collection over HTTP in the page-envelope
// format the paged source consumes, with sorting and slicing done
// server-side.
package web

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/taisazevedo9/gridview/internal/dataview"
)

// DefaultPerPage is the page size when the request doesn't set one.
const DefaultPerPage = dataview.DefaultItemsPerPage

// envelope is one page of rows plus the page numbers a remote view
// needs. The field names are the wire contract with the HTTP source.
type envelope struct {
	Items      []dataview.Row `json:"items"`
	Columns    []string       `json:"columns,omitempty"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
	Total      int            `json:"total"`
}

// Server exposes one dataset as a paged JSON API.
type Server struct {
	rows    []dataview.Row
	columns []string
	log     *slog.Logger
	router  *chi.Mux
	server  *http.Server
}

// NewServer creates a server over a fixed row collection. columns is
// the render order advertised to clients; empty means clients infer it.
func NewServer(rows []dataview.Row, columns []string, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		rows:    rows,
		columns: columns,
		log:     log,
		router:  chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.logRequests)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(30 * time.Second))
}

func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)
	s.router.Route("/api", func(r chi.Router) {
		r.Get("/view", s.handleView)
		r.Get("/rows", s.handleRows)
	})
}

// handleView serves one sorted page. Query parameters: page (zero-based),
// per_page, sort (column key), dir (asc|desc).
func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	if page < 0 {
		page = 0
	}
	perPage, _ := strconv.Atoi(q.Get("per_page"))
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	rows := s.rows
	if key := q.Get("sort"); key != "" {
		switch dir := q.Get("dir"); dir {
		case "", "asc", "desc":
			st := dataview.SortState{Key: key, Direction: dataview.ParseDirection(dir)}
			rows = dataview.SortRows(rows, dataview.MapField, st)
		default:
			writeError(w, s.log, http.StatusBadRequest, "dir must be asc or desc")
			return
		}
	}

	totalPages := dataview.TotalPages(len(rows), perPage)
	if totalPages > 0 && page >= totalPages {
		page = totalPages - 1
	}

	env := envelope{
		Items:      dataview.PageSlice(rows, page+1, perPage),
		Columns:    s.columns,
		Page:       page,
		TotalPages: totalPages,
		Total:      len(rows),
	}
	if env.Items == nil {
		env.Items = []dataview.Row{}
	}
	writeJSON(w, s.log, env)
}

// handleRows serves the whole dataset as a plain array, for clients
// that paginate locally.
func (s *Server) handleRows(w http.ResponseWriter, r *http.Request) {
	rows := s.rows
	if rows == nil {
		rows = []dataview.Row{}
	}
	writeJSON(w, s.log, rows)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// Start begins listening for HTTP requests.
func (s *Server) Start(addr string) error {
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.log.Info("serving rows", "addr", addr, "rows", len(s.rows))
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// logRequests logs method, path, status, and duration for every request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, log *slog.Logger, status int, message string) {
	log.Warn("request failed", "status", status, "error", message)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// writeJSON encodes v as JSON and writes it to w.
func writeJSON(w http.ResponseWriter, log *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("json encode failed", "error", err)
	}
}
