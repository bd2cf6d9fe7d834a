package codegen

import (
	"testing"

	"github.com/c360studio/ontogen/ontology"
	"github.com/c360studio/ontogen/vocabulary/schema"
)

const (
	tagsNS = "http://example.org/ontologies/tags#"
	nieNS  = "http://example.org/ontologies/nie#"
)

// modelBuilder assembles a model from statements.
type modelBuilder struct {
	set *ontology.EntrySet
}

func newModelBuilder() *modelBuilder {
	return &modelBuilder{set: ontology.NewEntrySet()}
}

func (b *modelBuilder) add(subject, predicate, object, context string) *modelBuilder {
	b.set.Add(ontology.Triple{Subject: subject, Predicate: predicate, Object: object, Context: context})
	return b
}

func (b *modelBuilder) ontology(uri, abbr string) *modelBuilder {
	b.add(uri, schema.RDFType, schema.NRLOntology, uri)
	if abbr != "" {
		b.add(uri, schema.NAODefaultNsAbb, abbr, uri)
	}
	return b
}

func (b *modelBuilder) class(uri, context string, parents ...string) *modelBuilder {
	b.add(uri, schema.RDFType, schema.RDFSClass, context)
	for _, p := range parents {
		b.add(uri, schema.RDFSSubClassOf, p, context)
	}
	return b
}

func (b *modelBuilder) property(uri, context, domain, rng, cardinality string) *modelBuilder {
	b.add(uri, schema.RDFType, schema.RDFProperty, context)
	if domain != "" {
		b.add(uri, schema.RDFSDomain, domain, context)
	}
	if rng != "" {
		b.add(uri, schema.RDFSRange, rng, context)
	}
	if cardinality != "" {
		b.add(uri, schema.NRLMaxCard, cardinality, context)
	}
	return b
}

func (b *modelBuilder) build() *ontology.Model {
	return ontology.Classify(b.set)
}

// tagModel is a single parentless class with one scalar string property.
func tagModel() *ontology.Model {
	return newModelBuilder().
		class(tagsNS+"Tag", tagsNS).
		add(tagsNS+"Tag", schema.RDFSComment, "A tag", tagsNS).
		property(tagsNS+"label", tagsNS, tagsNS+"Tag", schema.XSDString, "1").
		add(tagsNS+"label", schema.RDFSLabel, "label", tagsNS).
		add(tagsNS+"label", schema.RDFSComment, "The label.", tagsNS).
		build()
}

// desktopModel has a diamond below InformationElement and two special
// properties.
func desktopModel() *ontology.Model {
	return newModelBuilder().
		ontology(nieNS, "nie").
		class(nieNS+"InformationElement", nieNS, schema.RDFSResource).
		class(nieNS+"DataObject", nieNS, nieNS+"InformationElement").
		class(nieNS+"FileResource", nieNS, nieNS+"InformationElement").
		class(nieNS+"FileDataObject", nieNS, nieNS+"DataObject", nieNS+"FileResource").
		property(nieNS+"fileSize", nieNS, nieNS+"FileDataObject", schema.XSDInteger, "1").
		property(nieNS+"hasPart", nieNS, nieNS+"InformationElement", nieNS+"InformationElement", "").
		property(nieNS+"keywords", nieNS, nieNS+"DataObject", schema.XSDString, "").
		property(nieNS+"title", nieNS, "", schema.XSDString, "").
		property(nieNS+"identifier", nieNS, schema.RDFSResource, schema.XSDString, "").
		build()
}

func classSpec(t *testing.T, m *ontology.Model, uri string) ClassSpec {
	t.Helper()

	g := NewGenerator(nil, Config{})
	class, ok := m.Class(uri)
	if !ok {
		t.Fatalf("no class %s", uri)
	}

	ref, err := g.classRef(m, uri)
	if err != nil {
		t.Fatalf("resolve %s: %v", uri, err)
	}

	spec := ClassSpec{URI: uri, Ref: ref, Comment: class.Comment, Properties: class.Properties}
	for _, p := range m.DirectParents(uri) {
		r, err := g.classRef(m, p)
		if err != nil {
			t.Fatalf("resolve %s: %v", p, err)
		}
		spec.Parents = append(spec.Parents, r)
	}
	for _, a := range m.ConstructionOrder(uri) {
		r, err := g.classRef(m, a)
		if err != nil {
			t.Fatalf("resolve %s: %v", a, err)
		}
		spec.Ancestors = append(spec.Ancestors, r)
	}
	if len(spec.Parents) == 0 {
		spec.Special = m.SpecialProperties()
	}
	return spec
}
