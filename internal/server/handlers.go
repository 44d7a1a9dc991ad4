package server

import (
	"errors"
	"net/http"

	"github.com/spf13/afero"

	"github.com/jonathan/portfolio-hydrator/internal/loader"
	"github.com/jonathan/portfolio-hydrator/internal/rendering"
)

// handlePage hydrates the page from the current data on every request
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	logger := s.logger.With("request_id", RequestID(r.Context()))

	page, err := s.fs.Open(s.pagePath)
	if err != nil {
		logger.Error("failed to open page", "page", s.pagePath, "error", err)
		s.errorResponse(w, HTTPStatus(err), "page unavailable")
		return
	}
	defer func() { _ = page.Close() }()

	h := &rendering.Hydrator{Primary: s.primary, Renderer: s.renderer, Logger: logger}
	out, result, err := h.HydrateHTML(r.Context(), page)

	var loadErr *rendering.LoadError
	if err != nil && !errors.As(err, &loadErr) {
		logger.Error("failed to render page", "error", err)
		s.errorResponse(w, HTTPStatus(err), "failed to render page")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if result != nil {
		w.Header().Set("X-Portfolio-Source", result.Source)
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(out)); err != nil {
		logger.Error("failed to write page", "error", err)
	}
}

// handleData serves the profile document the page would be hydrated with
func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	var fallback loader.Source
	if page, err := afero.ReadFile(s.fs, s.pagePath); err == nil {
		if doc, err := rendering.ParsePageString(string(page)); err == nil {
			fallback = &loader.EmbeddedSource{Page: doc}
		}
	}

	result, err := loader.New(s.primary, fallback, s.logger).Load(r.Context())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Portfolio-Source", result.Source)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Raw)
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
