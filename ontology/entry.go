package ontology

import (
	"sort"

	"github.com/c360studio/ontogen/vocabulary/schema"
)

// Triple is one statement of an ontology document. Context is the graph the
// statement belongs to, which identifies its source ontology.
type Triple struct {
	Subject   string
	Predicate string
	Object    string
	Context   string
}

// Entry is everything known about one subject, folded from all statements
// sharing that subject. Recognized predicates are keyed by their dotted name
// from the schema vocabulary; others keep their raw IRI.
type Entry struct {
	Subject string
	Context string

	values  map[string]string
	parents []string
}

func newEntry(subject string) *Entry {
	return &Entry{
		Subject: subject,
		values:  make(map[string]string),
	}
}

// Value returns the object stored for a predicate.
func (e *Entry) Value(predicate string) (string, bool) {
	v, ok := e.values[predicate]
	return v, ok
}

// Has reports whether the entry carries a value for predicate.
func (e *Entry) Has(predicate string) bool {
	_, ok := e.values[predicate]
	return ok
}

// Type returns the entry's rdf:type, or "" when it has none.
func (e *Entry) Type() string {
	return e.values[schema.Type]
}

// Parents returns the rdfs:subClassOf objects in document order.
func (e *Entry) Parents() []string {
	if len(e.parents) == 0 {
		return nil
	}
	out := make([]string, len(e.parents))
	copy(out, e.parents)
	return out
}

// Predicates returns the single-valued predicates of the entry, sorted.
func (e *Entry) Predicates() []string {
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// fold applies one statement. subClassOf appends; everything else overwrites.
func (e *Entry) fold(predicate, object, context string) {
	if predicate == schema.SubClassOf {
		e.parents = append(e.parents, object)
	} else {
		e.values[predicate] = object
	}
	e.Context = context
}

// EntrySet maps subjects to their entries and remembers the order in which
// subjects were first seen.
type EntrySet struct {
	entries map[string]*Entry
	order   []string
}

// NewEntrySet creates an empty entry set.
func NewEntrySet() *EntrySet {
	return &EntrySet{
		entries: make(map[string]*Entry),
	}
}

// Add folds a statement into the entry of its subject.
func (s *EntrySet) Add(t Triple) {
	entry, ok := s.entries[t.Subject]
	if !ok {
		entry = newEntry(t.Subject)
		s.entries[t.Subject] = entry
		s.order = append(s.order, t.Subject)
	}

	predicate, known := schema.PredicateForIRI(t.Predicate)
	if !known {
		predicate = t.Predicate
	}
	entry.fold(predicate, t.Object, t.Context)
}

// AddAll folds statements in order.
func (s *EntrySet) AddAll(triples []Triple) {
	for _, t := range triples {
		s.Add(t)
	}
}

// Get returns the entry for a subject.
func (s *EntrySet) Get(subject string) (*Entry, bool) {
	e, ok := s.entries[subject]
	return e, ok
}

// Subjects returns all subjects in first-seen order.
func (s *EntrySet) Subjects() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of subjects.
func (s *EntrySet) Len() int {
	return len(s.entries)
}
