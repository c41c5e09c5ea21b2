package server

import (
	"bytes"
	"log"
	"net/http"

	"github.com/ziadkadry99/responsive-toolbar/internal/page"
)

// handlePage renders a fresh view for path on every request.
func (s *Server) handlePage(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		factory, ok := s.pages.Resolve(path)
		if !ok {
			http.NotFound(w, r)
			return
		}

		view, err := factory()
		if err != nil {
			s.pageError(w, path, err)
			return
		}
		prepared, err := page.Prepare(view, s.base)
		if err != nil {
			s.pageError(w, path, err)
			return
		}

		viewID := s.views.Add(prepared)

		var buf bytes.Buffer
		if err := page.WriteDocument(&buf, prepared, viewID); err != nil {
			s.views.Remove(viewID)
			s.pageError(w, path, err)
			return
		}

		s.metrics.pageRenders.WithLabelValues(path, "ok").Inc()
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		w.Write(buf.Bytes())
	}
}

func (s *Server) pageError(w http.ResponseWriter, path string, err error) {
	log.Printf("server: rendering %s: %v", path, err)
	s.metrics.pageRenders.WithLabelValues(path, "error").Inc()
	http.Error(w, "page could not be rendered", http.StatusInternalServerError)
}
