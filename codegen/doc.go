// Package codegen turns a classified ontology model into C++/Qt accessor
// headers, one per class, each wrapping Nepomuk2::SimpleResource.
//
// The pipeline after classification is:
//
//	MapType    range + cardinality → Type
//	Namer      property URI → getter, setter and adder identifiers
//	HeaderWriter  class → header text
//	Generator  model → units written through an output.Sink
//
// Output is deterministic: classes are emitted in URI order and properties in
// property URI order, so the same input always produces the same bytes.
package codegen
