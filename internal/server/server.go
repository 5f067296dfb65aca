package server

import (
	"encoding/json"
	"net/http"

	"github.com/digimosa/exposure-scan/internal/analyzer"
	"github.com/digimosa/exposure-scan/internal/logging"
	"github.com/digimosa/exposure-scan/internal/storage"
)

// Server wires the analyzer and scan store behind the HTTP/JSON API
type Server struct {
	analyzer *analyzer.Analyzer
	store    storage.Store
	logger   *logging.Logger
}

func New(az *analyzer.Analyzer, store storage.Store, logger *logging.Logger) *Server {
	return &Server{
		analyzer: az,
		store:    store,
		logger:   logger,
	}
}

// Handler builds the route table and wraps it with CORS and request logging
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/analyze", s.handleAnalyze)
	mux.HandleFunc("GET /api/history", s.handleHistory)
	mux.HandleFunc("GET /api/history/{id}", s.handleScan)
	mux.HandleFunc("DELETE /api/history", s.handleClear)

	// Legacy aliases kept for older clients
	mux.HandleFunc("POST /api/scans", s.handleAnalyze)
	mux.HandleFunc("GET /api/scans", s.handleHistory)
	mux.HandleFunc("GET /api/scans/{id}", s.handleScan)
	mux.HandleFunc("GET /api/report/{id}", s.handleReport)
	mux.HandleFunc("GET /api/export", s.handleExport)
	mux.HandleFunc("GET /api/health", s.handleHealth)

	return corsMiddleware(loggingMiddleware(s.logger, mux))
}

// decodeJSON reads the request body into dst
func decodeJSON(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// writeJSON writes data with the given status as a JSON body
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes the API error envelope {"error": message}
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
