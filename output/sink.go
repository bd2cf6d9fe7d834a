// Package output writes generated units below an output root.
package output

import (
	"context"
	"fmt"
	"path"
	"strings"
)

// Sink receives generated units. relPath is slash-separated and relative to
// the sink's root.
type Sink interface {
	Write(ctx context.Context, relPath string, content []byte) error
}

// cleanRelPath validates a unit path and returns it in clean slash form.
func cleanRelPath(relPath string) (string, error) {
	if relPath == "" {
		return "", fmt.Errorf("empty unit path")
	}
	if path.IsAbs(relPath) || strings.HasPrefix(relPath, "\\") {
		return "", fmt.Errorf("unit path %q is absolute", relPath)
	}
	clean := path.Clean(relPath)
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("unit path %q escapes the output root", relPath)
	}
	return clean, nil
}
