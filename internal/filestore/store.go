// Package filestore persists the three bot documents as JSON files. Every
// mutation is a whole-file read-modify-write; the last save wins.
package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

const (
	activitiesFile = "activities.json"
	gangsFile      = "gangs.json"
	configFile     = "config.json"
)

// Store owns the data directory holding the document files. Each document
// has its own lock so a single process never interleaves its own
// read-modify-write on the same file.
type Store struct {
	dir    string
	logger *slog.Logger

	activitiesMu sync.Mutex
	gangsMu      sync.Mutex
	configMu     sync.Mutex
}

// New creates a store rooted at dir.
func New(dir string, logger *slog.Logger) *Store {
	return &Store{dir: dir, logger: logger}
}

// EnsureFiles creates the data directory and empty documents on first run.
// Existing files are left untouched.
func (s *Store) EnsureFiles() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	defaults := map[string]string{
		activitiesFile: "[]",
		gangsFile:      "[]",
		configFile:     `{"channels":{}}`,
	}
	for name, content := range defaults {
		path := filepath.Join(s.dir, name)
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("checking %s: %w", name, err)
		}
		if err := os.WriteFile(path, []byte(content+"\n"), 0o644); err != nil {
			return fmt.Errorf("creating %s: %w", name, err)
		}
	}
	return nil
}

// Path returns the absolute path of a document file within the store.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// DocumentFiles lists the file names the store manages.
func DocumentFiles() []string {
	return []string{activitiesFile, gangsFile, configFile}
}

// load reads a document into v. A missing or unparsable file leaves v at its
// zero value and returns nil: corrupt data degrades to an empty default
// instead of failing the caller.
func (s *Store) load(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("reading document failed, using default", "file", name, "error", err)
		}
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.logger.Warn("document is malformed, using default", "file", name, "error", err)
		return nil
	}
	return nil
}

// save marshals v and replaces the document via a temp file rename so a
// crash mid-write never leaves a half-written document behind.
func (s *Store) save(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", name, err)
	}
	path := filepath.Join(s.dir, name)
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", name, err)
	}
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing %s: %w", name, err)
	}
	return nil
}
