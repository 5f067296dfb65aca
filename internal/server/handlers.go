package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/digimosa/exposure-scan/internal/reporting"
	"github.com/digimosa/exposure-scan/internal/storage"
)

// analyzeRequest is the JSON body of POST /api/analyze. Validation is
// presence-only: the url must be set, the platform may be anything and
// defaults to instagram when omitted.
type analyzeRequest struct {
	URL      string `json:"url"`
	Platform string `json:"platform,omitempty"`
}

func (r *analyzeRequest) validate() error {
	if r.URL == "" {
		return errors.New("URL is required")
	}
	return nil
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := s.analyzer.Analyze(req.URL, req.Platform)

	scan, err := s.store.Create(result)
	if err != nil {
		s.logger.Error("Failed to persist scan", "url", req.URL, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to analyze profile")
		return
	}

	writeJSON(w, http.StatusOK, scan)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	scans, err := s.store.List()
	if err != nil {
		s.logger.Error("Failed to list scans", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch history")
		return
	}
	writeJSON(w, http.StatusOK, scans)
}

func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	scan, err := s.store.Get(r.PathValue("id"))
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Scan not found")
		return
	}
	if err != nil {
		s.logger.Error("Failed to fetch scan", "id", r.PathValue("id"), "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch scan")
		return
	}
	writeJSON(w, http.StatusOK, scan)
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Clear(); err != nil {
		s.logger.Error("Failed to clear history", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to clear history")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "History cleared"})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	scan, err := s.store.Get(r.PathValue("id"))
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Scan not found")
		return
	}
	if err != nil {
		s.logger.Error("Failed to fetch scan for report", "id", r.PathValue("id"), "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate report")
		return
	}

	doc, err := reporting.PDF(scan)
	if err != nil {
		s.logger.Error("Failed to render report", "id", scan.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate report")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=exposure-report-%s.pdf", scan.ID))
	w.Write(doc)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	scans, err := s.store.List()
	if err != nil {
		s.logger.Error("Failed to list scans for export", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to export history")
		return
	}

	doc, err := reporting.XLSX(scans)
	if err != nil {
		s.logger.Error("Failed to render export", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to export history")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=exposure-history.xlsx")
	w.Write(doc)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
