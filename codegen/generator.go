package codegen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/c360studio/ontogen/ontology"
	"github.com/c360studio/ontogen/output"
	"github.com/c360studio/ontogen/vocabulary/schema"
)

// Config configures a Generator.
type Config struct {
	Emit EmitOptions

	// Namer resolves identifiers. Nil uses the default tables.
	Namer *Namer

	// Verify parses every header as C++ before it is written.
	Verify bool

	Logger *slog.Logger
}

// Stats summarizes one generation run.
type Stats struct {
	ClassesEmitted    int
	ClassesFailed     int
	PropertiesEmitted int
	PropertiesSkipped int

	// FailuresByKind counts failed classes by error kind.
	FailuresByKind map[string]int
}

// Generator emits one header per class of a model through a sink.
type Generator struct {
	sink     output.Sink
	namer    *Namer
	writer   *HeaderWriter
	verifier *SyntaxVerifier
	logger   *slog.Logger
}

// NewGenerator creates a generator writing to sink.
func NewGenerator(sink output.Sink, cfg Config) *Generator {
	if cfg.Namer == nil {
		cfg.Namer = NewNamer(nil, nil)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Emit.Extension == "" {
		cfg.Emit.Extension = DefaultEmitOptions().Extension
	}

	g := &Generator{
		sink:   sink,
		namer:  cfg.Namer,
		writer: NewHeaderWriter(cfg.Emit, cfg.Namer),
		logger: cfg.Logger,
	}
	if cfg.Verify {
		g.verifier = NewSyntaxVerifier()
	}
	return g
}

// Generate emits every class of the model in URI order. A class that fails
// is reported and skipped; the others are still emitted. The returned error
// joins all class failures. Cancellation stops the run.
func (g *Generator) Generate(ctx context.Context, model *ontology.Model) (Stats, error) {
	stats := Stats{FailuresByKind: make(map[string]int)}
	written := make(map[string]string)

	var errs []error
	for _, class := range model.Classes() {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		header, err := g.generateClass(ctx, model, class, written)
		if err != nil {
			if ctx.Err() != nil {
				return stats, ctx.Err()
			}
			stats.ClassesFailed++
			stats.FailuresByKind[failureKind(err)]++
			g.logger.Error("Failed to generate class", "class", class.URI, "error", err)
			errs = append(errs, fmt.Errorf("class %s: %w", class.URI, err))
			continue
		}

		for _, skipped := range header.Skipped {
			g.logger.Warn("No range given for property", "class", class.URI, "property", subjectOf(skipped))
		}

		stats.ClassesEmitted++
		stats.PropertiesEmitted += header.Properties
		stats.PropertiesSkipped += len(header.Skipped)
	}

	return stats, errors.Join(errs...)
}

func (g *Generator) generateClass(ctx context.Context, model *ontology.Model, class *ontology.Class, written map[string]string) (Header, error) {
	ref, err := g.classRef(model, class.URI)
	if err != nil {
		return Header{}, err
	}

	spec := ClassSpec{
		URI:        class.URI,
		Ref:        ref,
		Comment:    class.Comment,
		Properties: class.Properties,
	}

	for _, p := range model.DirectParents(class.URI) {
		pref, err := g.classRef(model, p)
		if err != nil {
			return Header{}, fmt.Errorf("parent %s: %w", p, err)
		}
		spec.Parents = append(spec.Parents, pref)
	}
	for _, a := range model.ConstructionOrder(class.URI) {
		aref, err := g.classRef(model, a)
		if err != nil {
			return Header{}, fmt.Errorf("ancestor %s: %w", a, err)
		}
		spec.Ancestors = append(spec.Ancestors, aref)
	}
	if len(spec.Parents) == 0 {
		spec.Special = model.SpecialProperties()
	}

	header := g.writer.Write(spec)

	if other, ok := written[header.Path]; ok {
		return header, ontology.NewError(ontology.KindIOFailure, header.Path,
			fmt.Errorf("unit already written for class %s", other))
	}

	if g.verifier != nil {
		if err := g.verifier.Verify(ctx, []byte(header.Content)); err != nil {
			return header, fmt.Errorf("verify %s: %w", header.Path, err)
		}
	}

	if err := g.sink.Write(ctx, header.Path, []byte(header.Content)); err != nil {
		return header, err
	}
	written[header.Path] = class.URI

	g.logger.Debug("Wrote class header",
		"class", class.URI,
		"path", header.Path,
		"properties", header.Properties)
	return header, nil
}

// classRef resolves the namespace and name of a class.
func (g *Generator) classRef(model *ontology.Model, uri string) (ClassRef, error) {
	class, ok := model.Class(uri)
	if !ok {
		return ClassRef{}, ontology.NewError(ontology.KindUnresolvedNamespace, uri, errors.New("not a class"))
	}

	ns, err := NamespaceAbbreviation(model, class.Context)
	if err != nil {
		return ClassRef{}, err
	}
	return ClassRef{Namespace: ns, Name: g.namer.ClassName(uri)}, nil
}

// NamespaceAbbreviation resolves the abbreviation of the ontology a class
// belongs to: the ontology's nao:hasDefaultNamespaceAbbreviation, else the
// last path segment of the ontology URI without '#'. The result must be a
// valid C++ identifier.
func NamespaceAbbreviation(model *ontology.Model, ontologyURI string) (string, error) {
	if onto, ok := model.Ontology(ontologyURI); ok {
		if abbr, ok := onto.Value(schema.DefaultNamespaceAbbr); ok && abbr != "" {
			if !isIdentifier(abbr) {
				return "", ontology.NewError(ontology.KindUnresolvedNamespace, ontologyURI,
					fmt.Errorf("abbreviation %q is not an identifier", abbr))
			}
			return abbr, nil
		}
	}

	abbr := strings.ReplaceAll(ontologyURI[strings.LastIndex(ontologyURI, "/")+1:], "#", "")
	if abbr == "" {
		return "", ontology.NewError(ontology.KindUnresolvedNamespace, ontologyURI,
			errors.New("no namespace abbreviation"))
	}
	if !isIdentifier(abbr) {
		return "", ontology.NewError(ontology.KindUnresolvedNamespace, ontologyURI,
			fmt.Errorf("derived abbreviation %q is not an identifier", abbr))
	}
	return abbr, nil
}

func isIdentifier(s string) bool {
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return s != ""
}

// failureKind labels a class failure for stats and metrics.
func failureKind(err error) string {
	if errors.Is(err, ErrSyntax) {
		return "syntax"
	}
	return ontology.KindOf(err).String()
}

func subjectOf(err error) string {
	var e *ontology.Error
	if errors.As(err, &e) {
		return e.Subject
	}
	return ""
}
