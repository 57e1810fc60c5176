package publish

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_PutPage(t *testing.T) {
	var got PageRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		if r.URL.Path != "/pages/intro" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer secret" {
			t.Errorf("missing bearer token")
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")
	defer c.Close()

	err := c.PutPage(context.Background(), "intro", PageRequest{Title: "Intro", BodyHTML: "<p>hi</p>"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != "Intro" {
		t.Errorf("expected title sent, got %+v", got)
	}
}

func TestClient_PutPage_RetryableStatuses(t *testing.T) {
	for _, status := range []int{http.StatusInternalServerError, http.StatusServiceUnavailable, http.StatusTooManyRequests} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))
		c := NewClient(srv.URL, "secret")
		err := c.PutPage(context.Background(), "intro", PageRequest{})
		srv.Close()
		c.Close()

		var retryable *RetryableError
		if !errors.As(err, &retryable) {
			t.Errorf("status %d: expected RetryableError, got %v", status, err)
		}
	}
}

func TestClient_PutPage_ClientErrorNotRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()
	c := NewClient(srv.URL, "wrong")
	defer c.Close()

	err := c.PutPage(context.Background(), "intro", PageRequest{})
	if err == nil {
		t.Fatal("expected error")
	}
	var retryable *RetryableError
	if errors.As(err, &retryable) {
		t.Errorf("4xx must not be retryable, got %v", err)
	}
}
