package ontology

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ResolveDocuments expands document arguments into file paths.
// Supports both single-level wildcards (*) and recursive wildcards (**).
//
// Examples:
//   - "ontologies/nao.nq" → ["ontologies/nao.nq"] (not checked for existence)
//   - "ontologies/*.nq" → every .nq file directly in ontologies/
//   - "ontologies/**/*.nq" → every .nq file below ontologies/
//
// Plain paths are returned unchanged so that a missing document surfaces as a
// per-document parse failure. Matches of one pattern are sorted; the order of
// the arguments is kept, and a path appearing twice is only loaded once.
func ResolveDocuments(patterns []string) ([]string, error) {
	var resolved []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		paths, err := resolveDocumentPattern(pattern)
		if err != nil {
			return nil, fmt.Errorf("resolve pattern %q: %w", pattern, err)
		}

		for _, p := range paths {
			if !seen[p] {
				seen[p] = true
				resolved = append(resolved, p)
			}
		}
	}

	return resolved, nil
}

// resolveDocumentPattern expands a single glob pattern to regular files.
func resolveDocumentPattern(pattern string) ([]string, error) {
	if !containsGlob(pattern) {
		return []string{pattern}, nil
	}

	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob error: %w", err)
	}

	var files []string
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil {
			continue
		}
		if info.Mode().IsRegular() {
			files = append(files, match)
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no documents match pattern: %s", pattern)
	}

	sort.Strings(files)
	return files, nil
}

// containsGlob checks if a pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
