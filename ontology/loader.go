package ontology

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/nquads"
	"github.com/geoknoesis/rdf-go/rdf"
)

// Format identifies an ontology serialization.
type Format string

const (
	// FormatNQuads reads statements with an optional graph label per line.
	FormatNQuads Format = "nquads"

	// FormatNTriples reads statements without graph labels. Every statement
	// gets an empty context.
	FormatNTriples Format = "ntriples"

	// FormatTriG reads named graph blocks; the graph name is the context.
	FormatTriG Format = "trig"

	// FormatTurtle reads statements without graph labels, like N-Triples.
	FormatTurtle Format = "turtle"
)

var formatsByExtension = map[string]Format{
	".nq":       FormatNQuads,
	".nquads":   FormatNQuads,
	".nt":       FormatNTriples,
	".ntriples": FormatNTriples,
	".trig":     FormatTriG,
	".ttl":      FormatTurtle,
	".turtle":   FormatTurtle,
}

// ErrNoParser is returned when no parser exists for a document's serialization.
var ErrNoParser = errors.New("no parser for serialization")

// FormatForPath picks the serialization from a file extension.
func FormatForPath(path string) (Format, bool) {
	f, ok := formatsByExtension[strings.ToLower(filepath.Ext(path))]
	return f, ok
}

// Loader reads ontology documents into one accumulating entry set.
// Documents are loaded one at a time; each is folded atomically, so a
// document that fails to parse contributes nothing.
type Loader struct {
	logger   *slog.Logger
	entries  *EntrySet
	loaded   []string
	failures []error
}

// NewLoader creates a loader with an empty entry set.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		logger:  logger,
		entries: NewEntrySet(),
	}
}

// Entries returns the accumulated entry set.
func (l *Loader) Entries() *EntrySet {
	return l.entries
}

// Loaded returns the documents loaded successfully, in load order.
func (l *Loader) Loaded() []string {
	return append([]string(nil), l.loaded...)
}

// Failures returns the parse failures recorded by LoadAll.
func (l *Loader) Failures() []error {
	return append([]error(nil), l.failures...)
}

// LoadAll loads every document in order. A document that fails to parse is
// logged, recorded in Failures and skipped. Only cancellation stops the loop.
func (l *Loader) LoadAll(ctx context.Context, paths []string) error {
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}

		l.logger.Info("Reading ontology", "path", path)
		if err := l.LoadFile(ctx, path); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			l.failures = append(l.failures, err)
			l.logger.Warn("Skipping ontology document", "path", path, "error", err)
		}
	}
	return nil
}

// LoadFile parses one document, choosing the parser from its extension.
func (l *Loader) LoadFile(ctx context.Context, path string) error {
	format, ok := FormatForPath(path)
	if !ok {
		return NewError(KindParseFailure, path, ErrNoParser)
	}

	f, err := os.Open(path)
	if err != nil {
		return NewError(KindParseFailure, path, err)
	}
	defer f.Close()

	return l.Load(ctx, f, path, format)
}

// Load parses one document from r. name identifies the document in errors.
func (l *Loader) Load(ctx context.Context, r io.Reader, name string, format Format) error {
	triples, err := readTriples(ctx, r, format)
	if err != nil {
		if ctx.Err() != nil {
			return err
		}
		return NewError(KindParseFailure, name, err)
	}

	l.entries.AddAll(triples)
	l.loaded = append(l.loaded, name)

	l.logger.Debug("Loaded ontology document",
		"path", name,
		"statements", len(triples),
		"subjects", l.entries.Len())
	return nil
}

// readTriples decodes all statements of a document before any is folded.
func readTriples(ctx context.Context, r io.Reader, format Format) ([]Triple, error) {
	switch format {
	case FormatNQuads, FormatNTriples:
		return readLineTriples(ctx, r, format)
	case FormatTriG:
		return readTurtleTriples(ctx, r, rdf.FormatTriG)
	case FormatTurtle:
		return readTurtleTriples(ctx, r, rdf.FormatTurtle)
	default:
		return nil, fmt.Errorf("%w: %s", ErrNoParser, format)
	}
}

// readLineTriples decodes line-based N-Quads and N-Triples.
func readLineTriples(ctx context.Context, r io.Reader, format Format) ([]Triple, error) {
	// Raw mode keeps typed literals as written instead of converting them.
	dec := nquads.NewReader(r, true)

	var triples []Triple
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		q, err := dec.ReadQuad()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("statement %d: %w", len(triples)+1, err)
		}

		t := Triple{
			Subject:   valueString(q.Subject),
			Predicate: valueString(q.Predicate),
			Object:    valueString(q.Object),
		}
		if format == FormatNQuads {
			t.Context = valueString(q.Label)
		}
		triples = append(triples, t)
	}
	return triples, nil
}

// readTurtleTriples decodes TriG and Turtle. Statements outside a graph
// block get an empty context.
func readTurtleTriples(ctx context.Context, r io.Reader, format rdf.Format) ([]Triple, error) {
	dec, err := rdf.NewReader(r, format, rdf.OptContext(ctx))
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	var triples []Triple
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		st, err := dec.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("statement %d: %w", len(triples)+1, err)
		}

		triples = append(triples, Triple{
			Subject:   termString(st.S),
			Predicate: st.P.Value,
			Object:    termString(st.O),
			Context:   termString(st.G),
		})
	}
	return triples, nil
}

// termString returns the lexical form of a term, like valueString.
func termString(t rdf.Term) string {
	switch t := t.(type) {
	case nil:
		return ""
	case rdf.IRI:
		return t.Value
	case rdf.BlankNode:
		return "_:" + t.ID
	case rdf.Literal:
		return t.Lexical
	default:
		return t.String()
	}
}

// valueString returns the lexical form of a term: IRIs without brackets,
// literals without quotes or datatype.
func valueString(v quad.Value) string {
	switch v := v.(type) {
	case nil:
		return ""
	case quad.IRI:
		return string(v)
	case quad.BNode:
		return "_:" + string(v)
	case quad.String:
		return string(v)
	case quad.TypedString:
		return string(v.Value)
	case quad.LangString:
		return string(v.Value)
	default:
		return fmt.Sprint(v.Native())
	}
}
