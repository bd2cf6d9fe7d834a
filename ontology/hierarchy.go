package ontology

import "github.com/c360studio/ontogen/vocabulary/schema"

// DirectParents returns the declared parents of a class that are classes of
// the model, in declaration order. rdfs:Resource is the implicit root of
// every class and is never listed. A parent declared twice is listed once.
func (m *Model) DirectParents(uri string) []string {
	c, ok := m.classes[uri]
	if !ok {
		return nil
	}

	var parents []string
	seen := make(map[string]bool)
	for _, p := range c.Parents {
		if p == schema.RDFSResource || seen[p] {
			continue
		}
		if _, known := m.classes[p]; !known {
			continue
		}
		seen[p] = true
		parents = append(parents, p)
	}
	return parents
}

// Ancestors returns every transitive ancestor of a class exactly once.
// The walk is depth-first over declared parents; an ancestor is appended
// after its own ancestors. Cycles and diamonds are cut by a visited set.
func (m *Model) Ancestors(uri string) []string {
	return m.linearize(uri, false)
}

// ConstructionOrder returns the same ancestors as Ancestors, but walks the
// direct parents of every class in reverse declaration order. This matches
// the virtual base initialization order of emitted classes, whose base lists
// name the direct parents reversed.
func (m *Model) ConstructionOrder(uri string) []string {
	return m.linearize(uri, true)
}

func (m *Model) linearize(uri string, reversed bool) []string {
	visited := map[string]bool{uri: true}
	var out []string
	m.walk(uri, reversed, visited, &out)
	return out
}

func (m *Model) walk(uri string, reversed bool, visited map[string]bool, out *[]string) {
	parents := m.DirectParents(uri)
	if reversed {
		for i, j := 0, len(parents)-1; i < j; i, j = i+1, j-1 {
			parents[i], parents[j] = parents[j], parents[i]
		}
	}

	for _, p := range parents {
		if visited[p] {
			continue
		}
		visited[p] = true
		m.walk(p, reversed, visited, out)
		*out = append(*out, p)
	}
}
