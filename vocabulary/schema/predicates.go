package schema

import (
	"sync"

	"github.com/c360studio/semstreams/vocabulary"
)

// Entry predicates, shared by every kind of ontology entry.
const (
	// Type is the entry's rdf:type. Only the last type statement is kept.
	Type = "ontology.entry.type"

	// Label is the human-readable name of a class or property.
	Label = "ontology.entry.label"

	// Comment is the human-readable description of a class or property.
	Comment = "ontology.entry.comment"
)

// Class predicates.
const (
	// SubClassOf links a class to one of its direct parents.
	// Repeatable: every statement appends a parent in document order.
	SubClassOf = "ontology.class.subclass_of"
)

// Property predicates.
const (
	// Domain is the class a property belongs to.
	Domain = "ontology.property.domain"

	// Range is the value type of a property.
	Range = "ontology.property.range"

	// Cardinality is the exact number of values a property takes.
	Cardinality = "ontology.property.cardinality"

	// MaxCardinality is the maximum number of values a property takes.
	// Only consulted when Cardinality is absent.
	MaxCardinality = "ontology.property.max_cardinality"
)

// Ontology predicates.
const (
	// DefaultNamespaceAbbr is the short prefix of an ontology, used for output
	// folders and the inner namespace of generated classes.
	DefaultNamespaceAbbr = "ontology.graph.ns_abbreviation"
)

// Predicates lists every recognized predicate in registration order.
var Predicates = []string{
	Type,
	Label,
	Comment,
	SubClassOf,
	Domain,
	Range,
	Cardinality,
	MaxCardinality,
	DefaultNamespaceAbbr,
}

func init() {
	vocabulary.Register(Type,
		vocabulary.WithDescription("Kind of entry: ontology, class or property"),
		vocabulary.WithDataType("iri"),
		vocabulary.WithIRI(RDFType))

	vocabulary.Register(Label,
		vocabulary.WithDescription("Human-readable name"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(RDFSLabel))

	vocabulary.Register(Comment,
		vocabulary.WithDescription("Human-readable description"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(RDFSComment))

	vocabulary.Register(SubClassOf,
		vocabulary.WithDescription("Direct parent class"),
		vocabulary.WithDataType("array"),
		vocabulary.WithIRI(RDFSSubClassOf))

	vocabulary.Register(Domain,
		vocabulary.WithDescription("Class owning the property"),
		vocabulary.WithDataType("iri"),
		vocabulary.WithIRI(RDFSDomain))

	vocabulary.Register(Range,
		vocabulary.WithDescription("Value type of the property"),
		vocabulary.WithDataType("iri"),
		vocabulary.WithIRI(RDFSRange))

	vocabulary.Register(Cardinality,
		vocabulary.WithDescription("Exact number of values"),
		vocabulary.WithDataType("int"),
		vocabulary.WithRange("non-negative"),
		vocabulary.WithIRI(NRLCardinality))

	vocabulary.Register(MaxCardinality,
		vocabulary.WithDescription("Maximum number of values"),
		vocabulary.WithDataType("int"),
		vocabulary.WithRange("non-negative"),
		vocabulary.WithIRI(NRLMaxCard))

	vocabulary.Register(DefaultNamespaceAbbr,
		vocabulary.WithDescription("Default namespace abbreviation of an ontology"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(NAODefaultNsAbb))
}

var (
	byIRIOnce sync.Once
	byIRI     map[string]string
)

// PredicateForIRI returns the dotted name registered for a full predicate IRI.
// The second result is false for predicates the generator does not recognize.
func PredicateForIRI(iri string) (string, bool) {
	byIRIOnce.Do(func() {
		byIRI = make(map[string]string, len(Predicates))
		for _, name := range Predicates {
			if meta := vocabulary.GetPredicateMetadata(name); meta != nil && meta.StandardIRI != "" {
				byIRI[meta.StandardIRI] = name
			}
		}
	})
	name, ok := byIRI[iri]
	return name, ok
}
