// Package schema provides the RDF, RDFS, NRL, NAO and XSD terms the generator
// understands, and registers the recognized ontology predicates.
//
// # Semstreams Integration
//
// This package follows semstreams vocabulary patterns:
//   - Predicates use three-level dotted notation (domain.category.property)
//   - Predicates are registered in init() using vocabulary.Register()
//   - IRI mappings use vocabulary.WithIRI() so incoming statements can be
//     translated from their full IRI to the dotted name
//
// # Recognized Predicates
//
// Only nine predicates drive code generation:
//
//	Type                  rdf:type
//	SubClassOf            rdfs:subClassOf (the only repeatable predicate)
//	Domain                rdfs:domain
//	Range                 rdfs:range
//	Comment               rdfs:comment
//	Label                 rdfs:label
//	Cardinality           nrl:cardinality
//	MaxCardinality        nrl:maxCardinality
//	DefaultNamespaceAbbr  nao:hasDefaultNamespaceAbbreviation
//
// Statements using any other predicate are kept under their raw IRI and never
// influence the output.
package schema
