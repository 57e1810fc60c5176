package pipeline

import (
	"testing"
	"time"
)

func TestJob_StateTransitions(t *testing.T) {
	job := NewJob(nil)
	if job.Status != StatusQueued {
		t.Errorf("expected new job queued, got %q", job.Status)
	}

	transitions := []struct {
		status JobStatus
		phase  string
	}{
		{StatusRendering, "rendering"},
		{StatusCompleted, "done"},
	}
	for _, tr := range transitions {
		before := job.UpdatedAt
		time.Sleep(time.Millisecond)
		job.SetStatus(tr.status, tr.phase)

		if job.Status != tr.status {
			t.Errorf("expected status %q, got %q", tr.status, job.Status)
		}
		if job.Phase != tr.phase {
			t.Errorf("expected phase %q, got %q", tr.phase, job.Phase)
		}
		if !job.UpdatedAt.After(before) {
			t.Errorf("expected UpdatedAt to advance after SetStatus(%q)", tr.status)
		}
	}
}

func TestJob_Progress(t *testing.T) {
	job := NewJob([]string{"a", "b"})
	job.SetTotalDocs(2)
	job.IncrRendered()
	job.IncrRendered()
	job.IncrPublished()
	job.AddError("b: publish timed out")

	snap := job.Snapshot()
	if snap.Progress.TotalDocs != 2 || snap.Progress.DocsRendered != 2 {
		t.Errorf("unexpected progress: %+v", snap.Progress)
	}
	if snap.Progress.PagesPublished != 1 {
		t.Errorf("expected 1 published, got %d", snap.Progress.PagesPublished)
	}
	if len(snap.Progress.Errors) != 1 {
		t.Errorf("expected 1 error, got %v", snap.Progress.Errors)
	}
}

func TestJob_SnapshotHasNoNilErrors(t *testing.T) {
	snap := NewJob(nil).Snapshot()
	if snap.Progress.Errors == nil {
		t.Error("expected empty slice, not nil, for JSON output")
	}
}

func TestNewJobID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := newJobID()
		if seen[id] {
			t.Fatalf("duplicate job id %q", id)
		}
		seen[id] = true
	}
}

func TestJobStore_PutGetCleanup(t *testing.T) {
	store := NewJobStore(10 * time.Millisecond)
	job := NewJob(nil)
	store.Put(job)

	if store.Get(job.ID) != job {
		t.Fatal("expected to get the stored job back")
	}
	if store.Get("missing") != nil {
		t.Error("expected nil for unknown id")
	}

	time.Sleep(20 * time.Millisecond)
	store.Cleanup()
	if store.Get(job.ID) != nil {
		t.Error("expected expired job evicted")
	}
}

func TestJobStore_CleanupKeepsFreshJobs(t *testing.T) {
	store := NewJobStore(1 * time.Hour)
	job := NewJob(nil)
	store.Put(job)
	store.Cleanup()
	if store.Get(job.ID) == nil {
		t.Error("fresh job must survive cleanup")
	}
}
