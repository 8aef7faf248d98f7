package dev

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sitewinder-dev/sitewinder/pkg/persist"
)

// State endpoints let the running app checkpoint named snapshots so a
// full-page reload can pick up where it left off. JSON over the wire,
// msgpack on disk.

func (s *Server) handleStateGet(w http.ResponseWriter, req *http.Request) {
	name := chi.URLParam(req, "name")
	snap, err := s.store.Load(name)
	if err == persist.ErrNoSnapshot {
		http.NotFound(w, req)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any(snap))
}

func (s *Server) handleStatePut(w http.ResponseWriter, req *http.Request) {
	name := chi.URLParam(req, "name")
	var snap map[string]any
	if err := json.NewDecoder(req.Body).Decode(&snap); err != nil {
		http.Error(w, "invalid snapshot body", http.StatusBadRequest)
		return
	}
	if err := s.store.Save(name, persist.Snapshot(snap)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleStateDelete(w http.ResponseWriter, req *http.Request) {
	name := chi.URLParam(req, "name")
	if err := s.store.Delete(name); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
