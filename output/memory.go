package output

import (
	"context"
	"sort"
	"sync"

	"github.com/c360studio/ontogen/ontology"
)

// MemorySink keeps units in memory. Used for dry runs and tests.
type MemorySink struct {
	mu    sync.RWMutex
	units map[string][]byte
}

// NewMemorySink creates an empty in-memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{
		units: make(map[string][]byte),
	}
}

// Write stores a copy of content under the cleaned path. A later write to the
// same path replaces the earlier one.
func (s *MemorySink) Write(ctx context.Context, relPath string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	clean, err := cleanRelPath(relPath)
	if err != nil {
		return ontology.NewError(ontology.KindIOFailure, relPath, err)
	}

	data := make([]byte, len(content))
	copy(data, content)

	s.mu.Lock()
	s.units[clean] = data
	s.mu.Unlock()
	return nil
}

// Get returns the content written to relPath.
func (s *MemorySink) Get(relPath string) ([]byte, bool) {
	clean, err := cleanRelPath(relPath)
	if err != nil {
		return nil, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.units[clean]
	return data, ok
}

// Paths returns all written paths, sorted.
func (s *MemorySink) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	paths := make([]string, 0, len(s.units))
	for p := range s.units {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Len returns the number of stored units.
func (s *MemorySink) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.units)
}
