package api

import (
	"encoding/json"
	"net/http"

	"github.com/dgallion1/guideview/internal/pipeline"
	"github.com/go-chi/chi/v5"
)

// handleRenderBatch queues a batch render job. An empty or missing doc
// list renders everything in the store.
func (s *Server) handleRenderBatch(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Docs []string `json:"docs"`
	}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
			return
		}
	}

	job := pipeline.NewJob(body.Docs)
	if err := s.orchestrator.Submit(job); err != nil {
		jsonError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(job.Snapshot())
}

// handleRenderStatus reports a job's progress.
func (s *Server) handleRenderStatus(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job := s.orchestrator.GetJob(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(job.Snapshot())
}
