// Package docstore loads guide sources from a directory and caches
// their rendered pages. A filesystem watcher drops cache entries when
// the underlying files change.
package docstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/dgallion1/guideview/internal/compose"
	"github.com/fsnotify/fsnotify"
)

// ErrNotFound reports a document name with no matching source file.
var ErrNotFound = errors.New("document not found")

var sourceExtensions = []string{".md", ".markdown"}

// Store resolves document names to rendered pages.
type Store struct {
	dir       string
	assembler *compose.Assembler
	log       *slog.Logger

	mu    sync.Mutex
	cache map[string]*compose.Page
}

func New(dir string, assembler *compose.Assembler, log *slog.Logger) (*Store, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("docs dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("docs dir %s is not a directory", dir)
	}
	return &Store{
		dir:       dir,
		assembler: assembler,
		log:       log,
		cache:     make(map[string]*compose.Page),
	}, nil
}

// List returns the available document names in sorted order.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list docs: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if name, ok := docName(e.Name()); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Page returns the rendered page for a document name, rendering and
// caching it on first use.
func (s *Store) Page(name string) (*compose.Page, error) {
	if !validName(name) {
		return nil, ErrNotFound
	}

	s.mu.Lock()
	if page, ok := s.cache[name]; ok {
		s.mu.Unlock()
		return page, nil
	}
	s.mu.Unlock()

	path, err := s.resolve(name)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	page, err := s.assembler.Assemble(string(raw))
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}

	s.mu.Lock()
	s.cache[name] = page
	s.mu.Unlock()
	return page, nil
}

// Invalidate drops a document's cached page.
func (s *Store) Invalidate(name string) {
	s.mu.Lock()
	delete(s.cache, name)
	s.mu.Unlock()
}

// Watch invalidates cache entries as source files change, until ctx is
// done. It returns once the watcher is installed.
func (s *Store) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(s.dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", s.dir, err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				name, isDoc := docName(filepath.Base(event.Name))
				if !isDoc {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
					s.log.Info("source changed, dropping cached page", "doc", name, "op", event.Op.String())
					s.Invalidate(name)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.log.Warn("watcher error", "error", err)
			}
		}
	}()
	return nil
}

// resolve maps a document name to its source file.
func (s *Store) resolve(name string) (string, error) {
	for _, ext := range sourceExtensions {
		path := filepath.Join(s.dir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", ErrNotFound
}

// validName rejects anything that could escape the docs directory.
func validName(name string) bool {
	if name == "" || name != filepath.Base(name) {
		return false
	}
	if strings.HasPrefix(name, ".") || strings.ContainsAny(name, `/\`) {
		return false
	}
	return true
}

// docName strips a recognized source extension from a filename.
func docName(filename string) (string, bool) {
	for _, ext := range sourceExtensions {
		if strings.HasSuffix(filename, ext) {
			return strings.TrimSuffix(filename, ext), true
		}
	}
	return "", false
}
