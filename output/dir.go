package output

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/c360studio/ontogen/ontology"
)

// DirSink writes units as files below a root directory.
type DirSink struct {
	root   string
	logger *slog.Logger

	unitsWritten atomic.Int64
	writeErrors  atomic.Int64
}

// NewDirSink creates a sink rooted at root. The root itself is created on
// the first write.
func NewDirSink(root string, logger *slog.Logger) *DirSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &DirSink{
		root:   root,
		logger: logger,
	}
}

// Root returns the output root.
func (s *DirSink) Root() string {
	return s.root
}

// Write creates the unit's directory when missing and writes the file.
// Any failure is an IOFailure for the unit.
func (s *DirSink) Write(ctx context.Context, relPath string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	clean, err := cleanRelPath(relPath)
	if err != nil {
		s.writeErrors.Add(1)
		return ontology.NewError(ontology.KindIOFailure, relPath, err)
	}

	filePath := filepath.Join(s.root, filepath.FromSlash(clean))

	// MkdirAll succeeds when the directory already exists.
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		s.writeErrors.Add(1)
		return ontology.NewError(ontology.KindIOFailure, relPath, fmt.Errorf("create directory: %w", err))
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.WriteFile(filePath, content, 0644); err != nil {
		s.writeErrors.Add(1)
		return ontology.NewError(ontology.KindIOFailure, relPath, fmt.Errorf("write file: %w", err))
	}

	s.unitsWritten.Add(1)
	s.logger.Debug("Wrote header file", "path", filePath, "bytes", len(content))
	return nil
}

// UnitsWritten returns the number of files written.
func (s *DirSink) UnitsWritten() int64 {
	return s.unitsWritten.Load()
}

// WriteErrors returns the number of failed writes.
func (s *DirSink) WriteErrors() int64 {
	return s.writeErrors.Load()
}
