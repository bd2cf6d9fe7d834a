package codegen

import (
	"fmt"
	"path"
	"strings"

	"github.com/mitchellh/go-wordwrap"

	"github.com/c360studio/ontogen/ontology"
)

// EmitOptions controls the layout of emitted headers.
type EmitOptions struct {
	// OuterNamespace wraps every class namespace.
	OuterNamespace string

	// BaseClass is the qualified class parentless classes derive from.
	BaseClass string

	// BaseInclude is included by every header for BaseClass.
	BaseInclude string

	// Extension of emitted headers, including the dot.
	Extension string

	// CommentWidth is the column budget of doc comment text.
	CommentWidth int
}

// DefaultEmitOptions returns the layout for Nepomuk2::SimpleResource.
func DefaultEmitOptions() EmitOptions {
	return EmitOptions{
		OuterNamespace: "Nepomuk2",
		BaseClass:      "Nepomuk2::SimpleResource",
		BaseInclude:    "Nepomuk2/SimpleResource",
		Extension:      ".h",
		CommentWidth:   50,
	}
}

// ClassRef locates an emitted class: its namespace abbreviation and name.
type ClassRef struct {
	Namespace string
	Name      string
}

// Qualified returns the class name qualified by its inner namespace.
func (r ClassRef) Qualified() string {
	return strings.ToUpper(r.Namespace) + "::" + r.Name
}

// Path returns the unit path of the class header.
func (r ClassRef) Path(ext string) string {
	return path.Join(r.Namespace, strings.ToLower(r.Name)+ext)
}

// ClassSpec is everything the writer needs to render one class.
type ClassSpec struct {
	URI     string
	Ref     ClassRef
	Comment string

	// Parents are the direct parents in declaration order.
	Parents []ClassRef

	// Ancestors are all ancestors in construction order.
	Ancestors []ClassRef

	// Properties are rendered in order.
	Properties []ontology.Property

	// Special properties are rendered after Properties, and only when the
	// class has no parents.
	Special []ontology.Property
}

// Header is a rendered class.
type Header struct {
	Path    string
	Content string

	// Properties is the number of properties that got accessors.
	Properties int

	// Skipped holds an UnresolvedRange error per property without range.
	Skipped []error
}

// HeaderWriter renders class headers.
type HeaderWriter struct {
	opts  EmitOptions
	namer *Namer
}

// NewHeaderWriter creates a writer. A nil namer uses the default tables.
func NewHeaderWriter(opts EmitOptions, namer *Namer) *HeaderWriter {
	if namer == nil {
		namer = NewNamer(nil, nil)
	}
	if opts.CommentWidth <= 0 {
		opts.CommentWidth = DefaultEmitOptions().CommentWidth
	}
	return &HeaderWriter{opts: opts, namer: namer}
}

// Write renders one class.
func (w *HeaderWriter) Write(spec ClassSpec) Header {
	var sb strings.Builder
	h := Header{Path: spec.Ref.Path(w.opts.Extension)}

	guard := fmt.Sprintf("_%s_%s_H_", strings.ToUpper(spec.Ref.Namespace), strings.ToUpper(spec.Ref.Name))
	sb.WriteString("#ifndef " + guard + "\n")
	sb.WriteString("#define " + guard + "\n\n")

	for _, inc := range []string{"QVariant", "QStringList", "QUrl", "QDate", "QTime", "QDateTime"} {
		sb.WriteString("#include <QtCore/" + inc + ">\n")
	}
	sb.WriteString("\n#include <" + w.opts.BaseInclude + ">\n\n")

	// Direct parents in reverse declaration order.
	bases := make([]string, 0, len(spec.Parents))
	for _, p := range spec.Parents {
		sb.WriteString("#include \"" + p.Path(w.opts.Extension) + "\"\n")
		bases = append([]string{p.Qualified()}, bases...)
	}
	if len(spec.Parents) > 0 {
		sb.WriteString("\n")
	}

	sb.WriteString("namespace " + w.opts.OuterNamespace + " {\n")
	sb.WriteString("namespace " + strings.ToUpper(spec.Ref.Namespace) + " {\n")

	if spec.Comment != "" {
		w.writeComment(&sb, spec.Comment, 0)
	}

	name := spec.Ref.Name
	root := len(spec.Parents) == 0
	if root {
		bases = []string{w.opts.BaseClass}
	}
	sb.WriteString("class " + name + " : ")
	for i, b := range bases {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("public virtual " + b)
	}
	sb.WriteString("\n{\npublic:\n")

	base := w.baseName()
	typeTag := fromEncoded(spec.URI)
	w.writeConstructor(&sb, spec, name+"(const QUrl& uri = QUrl())", "uri", typeTag, root)
	sb.WriteString("\n")
	w.writeConstructor(&sb, spec, name+"(const "+base+"& res)", "res", typeTag, root)
	sb.WriteString("\n")

	sb.WriteString("    " + name + "& operator=(const " + base + "& res) {\n")
	sb.WriteString("        " + base + "::operator=(res);\n")
	sb.WriteString("        addType(" + typeTag + ");\n")
	sb.WriteString("        return *this;\n")
	sb.WriteString("    }\n\n")

	for _, p := range spec.Properties {
		w.writeProperty(&sb, &h, p)
	}
	if root {
		for _, p := range spec.Special {
			w.writeProperty(&sb, &h, p)
		}
	}

	sb.WriteString("protected:\n")
	w.writeConstructor(&sb, spec, name+"(const QUrl& uri, const QUrl& type)", "uri", "type", root)
	w.writeConstructor(&sb, spec, name+"(const "+base+"& res, const QUrl& type)", "res", "type", root)
	sb.WriteString("};\n")
	sb.WriteString("}\n}\n\n#endif\n")

	h.Content = sb.String()
	return h
}

// writeConstructor writes a constructor that initializes the base resource
// from arg. Parentless classes add the type tag themselves; derived classes
// forward it to every ancestor, so each virtual base adds it exactly once.
func (w *HeaderWriter) writeConstructor(sb *strings.Builder, spec ClassSpec, signature, arg, typeTag string, root bool) {
	sb.WriteString("    " + signature + "\n")
	sb.WriteString("      : " + w.baseName() + "(" + arg + ")")
	if !root {
		for _, a := range spec.Ancestors {
			sb.WriteString(", " + a.Qualified() + "(" + arg + ", " + typeTag + ")")
		}
	}
	sb.WriteString(" {\n")
	if root {
		sb.WriteString("        addType(" + typeTag + ");\n")
	}
	sb.WriteString("    }\n")
}

// writeProperty writes the getter, setter and adder of one property.
func (w *HeaderWriter) writeProperty(sb *strings.Builder, h *Header, p ontology.Property) {
	rng, ok := p.Range()
	if !ok || rng == "" {
		h.Skipped = append(h.Skipped, ontology.NewError(ontology.KindUnresolvedRange, p.URI, nil))
		return
	}

	card := p.Cardinality()
	typ := MapType(rng, card)
	elem := typ.Element()
	uri := fromEncoded(p.URI)

	label, ok := p.Label()
	if !ok {
		if p.Special {
			label = "unknown"
		} else {
			label = w.namer.Name(p.URI)
		}
	}
	comment, ok := p.Comment()
	if !ok && p.Special {
		comment = "unknown"
	}

	w.writeComment(sb, fmt.Sprintf("Get property %s. %s", label, comment), 1)
	sb.WriteString(fmt.Sprintf("    %s %s() const {\n", typ.Qt(), w.namer.Getter(p.URI, card)))
	sb.WriteString(fmt.Sprintf("        %s value;\n", typ.Qt()))
	if typ.IsCollection() {
		sb.WriteString(fmt.Sprintf("        for (const QVariant& v : property(%s))\n", uri))
		sb.WriteString(fmt.Sprintf("            value << qvariant_cast<%s>(v);\n", elem.Qt()))
	} else {
		sb.WriteString(fmt.Sprintf("        if (contains(%s))\n", uri))
		sb.WriteString(fmt.Sprintf("            value = qvariant_cast<%s>(property(%s).first());\n", elem.Qt(), uri))
	}
	sb.WriteString("        return value;\n")
	sb.WriteString("    }\n\n")

	w.writeComment(sb, fmt.Sprintf("Set property %s. %s", label, comment), 1)
	sb.WriteString(fmt.Sprintf("    void %s(const %s& value) {\n", w.namer.Setter(p.URI, card), typ.Qt()))
	sb.WriteString("        QVariantList values;\n")
	if typ.IsCollection() {
		sb.WriteString(fmt.Sprintf("        for (const %s& v : value)\n", elem.Qt()))
		sb.WriteString("            values << v;\n")
	} else {
		sb.WriteString("        values << value;\n")
	}
	sb.WriteString(fmt.Sprintf("        setProperty(%s, values);\n", uri))
	sb.WriteString("    }\n\n")

	w.writeComment(sb, fmt.Sprintf("Add value to property %s. %s", label, comment), 1)
	sb.WriteString(fmt.Sprintf("    void %s(const %s& value) {\n", w.namer.Adder(p.URI), elem.Qt()))
	sb.WriteString(fmt.Sprintf("        addProperty(%s, value);\n", uri))
	sb.WriteString("    }\n\n")

	h.Properties++
}

// writeComment writes a doc comment with text wrapped to the comment width.
func (w *HeaderWriter) writeComment(sb *strings.Builder, text string, indent int) {
	pad := strings.Repeat("    ", indent)
	text = strings.Join(strings.Fields(text), " ")
	// A "*/" in the text would close the comment early.
	text = strings.ReplaceAll(text, "*/", "* /")

	sb.WriteString(pad + "/**\n")
	for _, line := range strings.Split(wordwrap.WrapString(text, uint(w.opts.CommentWidth)), "\n") {
		sb.WriteString(pad + " * " + line + "\n")
	}
	sb.WriteString(pad + " */\n")
}

// baseName returns the unqualified base class name.
func (w *HeaderWriter) baseName() string {
	if i := strings.LastIndex(w.opts.BaseClass, "::"); i >= 0 {
		return w.opts.BaseClass[i+2:]
	}
	return w.opts.BaseClass
}

func fromEncoded(uri string) string {
	return fmt.Sprintf("QUrl::fromEncoded(%q, QUrl::StrictMode)", uri)
}
