package codegen

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultOverrides assigns fixed identifiers to properties whose URI suffixes
// collide across the desktop ontologies. Generated accessor names stay the
// same no matter which of the colliding ontologies are part of a run.
var DefaultOverrides = map[string]string{
	"http://www.semanticdesktop.org/ontologies/2007/03/22/nco#contributor":  "ncoContributor",
	"http://www.semanticdesktop.org/ontologies/2007/08/15/nao#contributor":  "naoContributor",
	"http://www.semanticdesktop.org/ontologies/2007/01/19/nie#description":  "nieDescription",
	"http://www.semanticdesktop.org/ontologies/2007/08/15/nao#description":  "naoDescription",
	"http://www.semanticdesktop.org/ontologies/2007/08/15/nco#creator":      "ncoCreator",
	"http://www.semanticdesktop.org/ontologies/2007/08/15/nao#creator":      "naoCreator",
	"http://www.semanticdesktop.org/ontologies/2007/01/19/nie#modified":     "nieModified",
	"http://www.semanticdesktop.org/ontologies/2007/08/15/nao#modified":     "naoModified",
	"http://www.semanticdesktop.org/ontologies/2007/04/02/ncal#created":     "ncalCreated",
	"http://www.semanticdesktop.org/ontologies/2007/08/15/nao#created":      "naoCreated",
	"http://www.semanticdesktop.org/ontologies/2007/01/19/nie#lastModified": "nieLastModified",
	"http://www.semanticdesktop.org/ontologies/2007/08/15/nao#lastModified": "naoLastModified",
}

// DefaultKeywords are the C++ reserved words a getter may not be named after.
var DefaultKeywords = []string{
	"alignas", "alignof", "and", "and_eq", "asm", "auto", "bitand", "bitor",
	"bool", "break", "case", "catch", "char", "char8_t", "char16_t", "char32_t",
	"class", "compl", "concept", "const", "consteval", "constexpr", "constinit",
	"const_cast", "continue", "co_await", "co_return", "co_yield", "decltype",
	"default", "delete", "do", "double", "dynamic_cast", "else", "enum",
	"explicit", "export", "extern", "false", "float", "for", "friend", "goto",
	"if", "inline", "int", "long", "mutable", "namespace", "new", "noexcept",
	"not", "not_eq", "nullptr", "operator", "or", "or_eq", "private",
	"protected", "public", "register", "reinterpret_cast", "requires", "return",
	"short", "signed", "sizeof", "static", "static_assert", "static_cast",
	"struct", "switch", "template", "this", "thread_local", "throw", "true",
	"try", "typedef", "typeid", "typename", "union", "unsigned", "using",
	"virtual", "void", "volatile", "wchar_t", "while", "xor", "xor_eq",
}

// Namer turns class and property URIs into C++ identifiers.
type Namer struct {
	overrides map[string]string
	keywords  map[string]bool
}

// NewNamer creates a namer from the default tables plus extra overrides and
// keywords. Extra overrides replace defaults for the same URI.
func NewNamer(overrides map[string]string, keywords []string) *Namer {
	n := &Namer{
		overrides: make(map[string]string, len(DefaultOverrides)+len(overrides)),
		keywords:  make(map[string]bool, len(DefaultKeywords)+len(keywords)),
	}
	for uri, name := range DefaultOverrides {
		n.overrides[uri] = name
	}
	for uri, name := range overrides {
		n.overrides[uri] = name
	}
	for _, kw := range DefaultKeywords {
		n.keywords[kw] = true
	}
	for _, kw := range keywords {
		n.keywords[kw] = true
	}
	return n
}

// Name returns the identifier for a URI: the override when one exists,
// otherwise the part after the last '#', '/' or ':'. Characters that cannot
// appear in an identifier become '_', and a leading digit gets a '_' prefix.
func (n *Namer) Name(uri string) string {
	name, ok := n.overrides[uri]
	if !ok {
		name = uri[strings.LastIndexAny(uri, "#/:")+1:]
	}
	return normalize(name)
}

// ClassName returns the class identifier for a URI. Reserved words get a
// '_' suffix.
func (n *Namer) ClassName(uri string) string {
	name := n.Name(uri)
	if n.keywords[name] {
		return name + "_"
	}
	return name
}

// Getter returns the getter name of a property.
func (n *Namer) Getter(uri string, cardinality int) string {
	name := accessor(n.Name(uri), cardinality)
	if n.keywords[name] {
		return "get" + upperFirst(name)
	}
	return name
}

// Setter returns the setter name of a property.
func (n *Namer) Setter(uri string, cardinality int) string {
	return "set" + upperFirst(accessor(n.Name(uri), cardinality))
}

// Adder returns the adder name of a property. Adders take one value, so the
// name is never pluralized.
func (n *Namer) Adder(uri string) string {
	return "add" + upperFirst(accessor(n.Name(uri), 1))
}

func normalize(name string) string {
	id := strings.Map(func(r rune) rune {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, name)
	if id == "" || (id[0] >= '0' && id[0] <= '9') {
		id = "_" + id
	}
	return id
}

// accessor strips a leading "has" before an upper-case letter and pluralizes
// multi-valued names.
func accessor(name string, cardinality int) string {
	if rest, ok := strings.CutPrefix(name, "has"); ok {
		if r, _ := utf8.DecodeRuneInString(rest); unicode.IsUpper(r) {
			name = lowerFirst(rest)
		}
	}
	if cardinality != 1 {
		if strings.HasSuffix(name, "s") {
			name += "es"
		} else {
			name += "s"
		}
	}
	return name
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
