package pipeline

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

// JobStatus represents the state of a batch render job.
type JobStatus string

const (
	StatusQueued    JobStatus = "queued"
	StatusRendering JobStatus = "rendering"
	StatusCompleted JobStatus = "completed"
	StatusFailed    JobStatus = "failed"
	StatusPartial   JobStatus = "partial"
)

// Job tracks the state of one batch render.
type Job struct {
	mu sync.Mutex

	ID   string   `json:"job_id"`
	Docs []string `json:"docs"` // empty means every document in the store

	Status JobStatus `json:"status"`
	Phase  string    `json:"phase"`

	Progress Progress `json:"progress"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	errors []string
}

// Progress tracks batch progress.
type Progress struct {
	TotalDocs      int      `json:"total_docs"`
	DocsRendered   int      `json:"docs_rendered"`
	PagesPublished int      `json:"pages_published"`
	Errors         []string `json:"errors"`
}

// NewJob creates a queued job for the given documents.
func NewJob(docs []string) *Job {
	now := time.Now()
	return &Job{
		ID:        newJobID(),
		Docs:      docs,
		Status:    StatusQueued,
		Phase:     "queued",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// newJobID returns a sortable unique id: millisecond timestamp plus
// random suffix.
func newJobID() string {
	var b [8]byte
	rand.Read(b[:])
	ts := time.Now().UTC().Format("20060102T150405.000")
	return ts + "-" + hex.EncodeToString(b[:])
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus, phase string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// AddError records an error.
func (j *Job) AddError(err string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errors = append(j.errors, err)
	j.Progress.Errors = j.errors
	j.UpdatedAt = time.Now()
}

// SetTotalDocs records how many documents the batch covers.
func (j *Job) SetTotalDocs(n int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.TotalDocs = n
	j.UpdatedAt = time.Now()
}

// IncrRendered atomically increments the rendered count.
func (j *Job) IncrRendered() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.DocsRendered++
	j.UpdatedAt = time.Now()
}

// IncrPublished atomically increments the published count.
func (j *Job) IncrPublished() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.PagesPublished++
	j.UpdatedAt = time.Now()
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID       string    `json:"job_id"`
	Docs     []string  `json:"docs,omitempty"`
	Status   JobStatus `json:"status"`
	Phase    string    `json:"phase"`
	Progress Progress  `json:"progress"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	errs := j.Progress.Errors
	if errs == nil {
		errs = []string{}
	}
	return JobSnapshot{
		ID:     j.ID,
		Docs:   append([]string(nil), j.Docs...),
		Status: j.Status,
		Phase:  j.Phase,
		Progress: Progress{
			TotalDocs:      j.Progress.TotalDocs,
			DocsRendered:   j.Progress.DocsRendered,
			PagesPublished: j.Progress.PagesPublished,
			Errors:         errs,
		},
	}
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Cleanup removes expired jobs.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		job.mu.Lock()
		updated := job.UpdatedAt
		job.mu.Unlock()
		if now.Sub(updated) > s.ttl {
			delete(s.jobs, id)
		}
	}
}
