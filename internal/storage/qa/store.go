package qa

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sandevgo/jarvisbot/pkg/log"
)

// Store is the persistent question→answer cache. Every insert rewrites the
// whole backing file atomically (temp file in the same directory, then
// rename) under one mutex, so concurrent writers cannot interleave a
// partial write.
type Store struct {
	mu   sync.Mutex
	path string
	data map[string]string
}

// Load reads the store from disk. A missing or corrupt file yields an
// empty store, logged but never fatal.
func Load(ctx context.Context, path string) *Store {
	s := &Store{
		path: path,
		data: make(map[string]string),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.FromCtx(ctx).Warn().Err(err).Str("path", path).Msg("could not read QA data, starting empty")
		}
		return s
	}

	if err := json.Unmarshal(raw, &s.data); err != nil {
		// Legacy format: a JSON array of "question: answer" strings.
		var legacy []string
		if err2 := json.Unmarshal(raw, &legacy); err2 != nil {
			log.FromCtx(ctx).Warn().Err(err).Str("path", path).Msg("corrupt QA data, starting empty")
			return s
		}
		for _, item := range legacy {
			if q, a, ok := strings.Cut(item, ":"); ok {
				s.data[strings.TrimSpace(q)] = strings.TrimSpace(a)
			}
		}
	}

	log.FromCtx(ctx).Info().Int("pairs", len(s.data)).Str("path", path).Msg("loaded QA store")
	return s
}

func (s *Store) Get(question string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	answer, ok := s.data[question]
	return answer, ok
}

// Put inserts the pair and persists the whole map. The write happens under
// the store mutex; the last writer wins on the same key.
func (s *Store) Put(question, answer string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[question] = answer
	return s.persist()
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}

func (s *Store) Path() string {
	return s.path
}

// Snapshot returns a copy of the current mapping for read-only consumers
// such as the local matcher.
func (s *Store) Snapshot() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]string, len(s.data))
	for q, a := range s.data {
		out[q] = a
	}
	return out
}

// persist must be called with s.mu held.
func (s *Store) persist() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create QA directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".qna-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s.data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("encode QA data: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace QA file: %w", err)
	}
	return nil
}
