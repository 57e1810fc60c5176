package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dgallion1/guideview/internal/docstore"
	"github.com/dgallion1/guideview/internal/outline"
	"github.com/go-chi/chi/v5"
)

// handleViewDoc serves the fully composed HTML page for one document.
func (s *Server) handleViewDoc(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	page, err := s.store.Page(name)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		s.log.Error("render failed", "doc", name, "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.WriteHTML(w); err != nil {
		s.log.Error("write page", "doc", name, "error", err)
	}
}

// handleListDocs lists the available document names.
func (s *Server) handleListDocs(w http.ResponseWriter, r *http.Request) {
	names, err := s.store.List()
	if err != nil {
		jsonError(w, "failed to list documents: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if names == nil {
		names = []string{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"documents": names})
}

// handleOutline returns the document's chapter entries as JSON.
func (s *Server) handleOutline(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	page, err := s.store.Page(name)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			jsonError(w, "document not found", http.StatusNotFound)
			return
		}
		jsonError(w, "render failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	entries := page.Entries
	if entries == nil {
		entries = []outline.Entry{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"title":   page.Title,
		"outline": entries,
	})
}
