package ontology

import (
	"sort"
	"strconv"

	"github.com/c360studio/ontogen/vocabulary/schema"
)

// Property is a property definition attached to a class, or a special
// property applied to every root class.
type Property struct {
	URI string

	// Special marks properties without a domain or with the rdfs:Resource
	// domain. Their cardinality defaults to 1 instead of 0.
	Special bool

	entry *Entry
}

// Range returns the declared value type.
func (p Property) Range() (string, bool) {
	return p.entry.Value(schema.Range)
}

// Domain returns the declared owning class.
func (p Property) Domain() (string, bool) {
	return p.entry.Value(schema.Domain)
}

// Label returns the rdfs:label of the property.
func (p Property) Label() (string, bool) {
	return p.entry.Value(schema.Label)
}

// Comment returns the rdfs:comment of the property.
func (p Property) Comment() (string, bool) {
	return p.entry.Value(schema.Comment)
}

// Cardinality returns nrl:cardinality, else nrl:maxCardinality, else the
// default (1 for special properties, 0 otherwise). Values that are not
// integers count as absent.
func (p Property) Cardinality() int {
	for _, pred := range []string{schema.Cardinality, schema.MaxCardinality} {
		if raw, ok := p.entry.Value(pred); ok {
			if n, err := strconv.Atoi(raw); err == nil {
				return n
			}
		}
	}
	if p.Special {
		return 1
	}
	return 0
}

// Class is an assembled class definition.
type Class struct {
	URI     string
	Context string
	Parents []string
	Label   string
	Comment string

	// Properties whose domain is this class, sorted by URI.
	Properties []Property
}

// Model is the classified ontology closure of one run. It is read-only once
// Classify returns.
type Model struct {
	ontologies map[string]*Entry
	classes    map[string]*Class
	classURIs  []string
	special    []Property
}

// Classify buckets entries into ontologies, classes and special properties,
// and assembles every class with the properties of its domain.
// Entries without a type, and entries of any other type, are ignored.
func Classify(entries *EntrySet) *Model {
	m := &Model{
		ontologies: make(map[string]*Entry),
		classes:    make(map[string]*Class),
	}

	byDomain := make(map[string][]Property)
	var classEntries []*Entry

	for _, subject := range entries.Subjects() {
		entry, _ := entries.Get(subject)

		switch entry.Type() {
		case "":
			continue
		case schema.NRLOntology:
			m.ontologies[subject] = entry
		case schema.RDFSClass:
			classEntries = append(classEntries, entry)
		case schema.RDFProperty:
			domain, ok := entry.Value(schema.Domain)
			if !ok || domain == schema.RDFSResource {
				m.special = append(m.special, Property{URI: subject, Special: true, entry: entry})
				continue
			}
			byDomain[domain] = append(byDomain[domain], Property{URI: subject, entry: entry})
		}
	}

	sortProperties(m.special)

	for _, entry := range classEntries {
		m.classes[entry.Subject] = assembleClass(entry, byDomain[entry.Subject])
		m.classURIs = append(m.classURIs, entry.Subject)
	}
	sort.Strings(m.classURIs)

	return m
}

// assembleClass copies the class metadata and attaches its properties.
func assembleClass(entry *Entry, props []Property) *Class {
	c := &Class{
		URI:     entry.Subject,
		Context: entry.Context,
		Parents: entry.Parents(),
	}
	c.Label, _ = entry.Value(schema.Label)
	c.Comment, _ = entry.Value(schema.Comment)

	c.Properties = make([]Property, len(props))
	copy(c.Properties, props)
	sortProperties(c.Properties)

	return c
}

func sortProperties(props []Property) {
	sort.Slice(props, func(i, j int) bool {
		return props[i].URI < props[j].URI
	})
}

// Classes returns all classes sorted by URI.
func (m *Model) Classes() []*Class {
	out := make([]*Class, 0, len(m.classURIs))
	for _, uri := range m.classURIs {
		out = append(out, m.classes[uri])
	}
	return out
}

// Class returns the class with the given URI.
func (m *Model) Class(uri string) (*Class, bool) {
	c, ok := m.classes[uri]
	return c, ok
}

// Ontology returns the ontology entry with the given URI.
func (m *Model) Ontology(uri string) (*Entry, bool) {
	e, ok := m.ontologies[uri]
	return e, ok
}

// OntologyCount returns the number of ontology entries.
func (m *Model) OntologyCount() int {
	return len(m.ontologies)
}

// SpecialProperties returns the properties applied to every root class,
// sorted by URI.
func (m *Model) SpecialProperties() []Property {
	out := make([]Property, len(m.special))
	copy(out, m.special)
	return out
}
