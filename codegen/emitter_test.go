package codegen

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/ontogen/ontology"
	"github.com/c360studio/ontogen/vocabulary/schema"
)

func fromEnc(uri string) string {
	return `QUrl::fromEncoded("` + uri + `", QUrl::StrictMode)`
}

func TestHeaderWriter_Tag(t *testing.T) {
	m := tagModel()
	w := NewHeaderWriter(DefaultEmitOptions(), nil)

	h := w.Write(classSpec(t, m, tagsNS+"Tag"))
	content := h.Content

	assert.Equal(t, "tags/tag.h", h.Path)
	assert.Equal(t, 1, h.Properties)
	assert.Empty(t, h.Skipped)

	assert.True(t, strings.HasPrefix(content, "#ifndef _TAGS_TAG_H_\n#define _TAGS_TAG_H_\n"))
	assert.True(t, strings.HasSuffix(content, "};\n}\n}\n\n#endif\n"))
	assert.Contains(t, content, "#include <Nepomuk2/SimpleResource>\n")
	assert.Contains(t, content, "#include <QtCore/QStringList>\n")
	assert.Contains(t, content, "namespace Nepomuk2 {\nnamespace TAGS {\n")
	assert.Contains(t, content, "/**\n * A tag\n */\nclass Tag : public virtual Nepomuk2::SimpleResource\n{\npublic:\n")

	// Parentless: the type is added directly, nothing is forwarded.
	assert.Contains(t, content,
		"    Tag(const QUrl& uri = QUrl())\n"+
			"      : SimpleResource(uri) {\n"+
			"        addType("+fromEnc(tagsNS+"Tag")+");\n"+
			"    }\n")
	assert.Contains(t, content,
		"    Tag(const SimpleResource& res)\n"+
			"      : SimpleResource(res) {\n"+
			"        addType("+fromEnc(tagsNS+"Tag")+");\n"+
			"    }\n")
	assert.NotContains(t, content, "SimpleResource(uri), ")
	assert.NotContains(t, content, "SimpleResource(res), ")

	assert.Contains(t, content,
		"    Tag& operator=(const SimpleResource& res) {\n"+
			"        SimpleResource::operator=(res);\n"+
			"        addType("+fromEnc(tagsNS+"Tag")+");\n"+
			"        return *this;\n"+
			"    }\n")

	label := fromEnc(tagsNS + "label")
	assert.Contains(t, content,
		"    /**\n     * Get property label. The label.\n     */\n"+
			"    QString label() const {\n"+
			"        QString value;\n"+
			"        if (contains("+label+"))\n"+
			"            value = qvariant_cast<QString>(property("+label+").first());\n"+
			"        return value;\n"+
			"    }\n")
	assert.Contains(t, content,
		"    void setLabel(const QString& value) {\n"+
			"        QVariantList values;\n"+
			"        values << value;\n"+
			"        setProperty("+label+", values);\n"+
			"    }\n")
	assert.Contains(t, content,
		"    void addLabel(const QString& value) {\n"+
			"        addProperty("+label+", value);\n"+
			"    }\n")

	assert.Contains(t, content,
		"protected:\n"+
			"    Tag(const QUrl& uri, const QUrl& type)\n"+
			"      : SimpleResource(uri) {\n"+
			"        addType(type);\n"+
			"    }\n"+
			"    Tag(const SimpleResource& res, const QUrl& type)\n"+
			"      : SimpleResource(res) {\n"+
			"        addType(type);\n"+
			"    }\n")
}

func TestHeaderWriter_Diamond(t *testing.T) {
	m := desktopModel()
	w := NewHeaderWriter(DefaultEmitOptions(), nil)

	h := w.Write(classSpec(t, m, nieNS+"FileDataObject"))
	content := h.Content

	assert.Equal(t, "nie/filedataobject.h", h.Path)
	assert.Contains(t, content, "#include \"nie/dataobject.h\"\n#include \"nie/fileresource.h\"\n")
	assert.Contains(t, content,
		"class FileDataObject : public virtual NIE::FileResource, public virtual NIE::DataObject\n")

	tag := fromEnc(nieNS + "FileDataObject")
	assert.Contains(t, content,
		"    FileDataObject(const QUrl& uri = QUrl())\n"+
			"      : SimpleResource(uri), NIE::InformationElement(uri, "+tag+"), "+
			"NIE::FileResource(uri, "+tag+"), NIE::DataObject(uri, "+tag+") {\n"+
			"    }\n")
	assert.Contains(t, content,
		"      : SimpleResource(res), NIE::InformationElement(res, type), "+
			"NIE::FileResource(res, type), NIE::DataObject(res, type) {\n")

	assert.Equal(t, 1, strings.Count(content, "NIE::InformationElement(uri, "+tag+")"),
		"shared ancestor is constructed once")
	assert.Equal(t, 1, strings.Count(content, "addType("), "only the assignment operator adds the type")

	assert.Contains(t, content, "    qint64 fileSize() const {\n")
}

func TestHeaderWriter_SpecialPropertyLaw(t *testing.T) {
	m := desktopModel()
	w := NewHeaderWriter(DefaultEmitOptions(), nil)

	root := w.Write(classSpec(t, m, nieNS+"InformationElement")).Content
	assert.Contains(t, root, "QString title() const {")
	assert.Contains(t, root, "QString identifier() const {")
	assert.Contains(t, root, "void addIdentifier(const QString& value) {")
	assert.Contains(t, root, "QList<QUrl> parts() const {")
	assert.Contains(t, root, "* Get property unknown. unknown\n")

	assert.Less(t, strings.Index(root, "parts() const"), strings.Index(root, "identifier() const"),
		"declared properties come before special ones")

	for _, uri := range []string{nieNS + "DataObject", nieNS + "FileResource", nieNS + "FileDataObject"} {
		derived := w.Write(classSpec(t, m, uri)).Content
		assert.NotContains(t, derived, "title()", uri)
		assert.NotContains(t, derived, "identifier()", uri)
	}
}

func TestHeaderWriter_CardinalityLaw(t *testing.T) {
	m := desktopModel()
	w := NewHeaderWriter(DefaultEmitOptions(), nil)

	data := w.Write(classSpec(t, m, nieNS+"DataObject")).Content
	kw := fromEnc(nieNS + "keywords")

	assert.Contains(t, data,
		"    QStringList keywordses() const {\n"+
			"        QStringList value;\n"+
			"        for (const QVariant& v : property("+kw+"))\n"+
			"            value << qvariant_cast<QString>(v);\n")
	assert.Contains(t, data,
		"    void setKeywordses(const QStringList& value) {\n"+
			"        QVariantList values;\n"+
			"        for (const QString& v : value)\n"+
			"            values << v;\n")
	assert.Contains(t, data, "    void addKeywords(const QString& value) {\n")
	assert.NotContains(t, data, "QList<QString>")
}

func TestHeaderWriter_MissingRange(t *testing.T) {
	m := newModelBuilder().
		class(tagsNS+"Tag", tagsNS).
		property(tagsNS+"label", tagsNS, tagsNS+"Tag", "", "1").
		property(tagsNS+"color", tagsNS, tagsNS+"Tag", tagsNS+"Color", "1").
		build()

	h := NewHeaderWriter(DefaultEmitOptions(), nil).Write(classSpec(t, m, tagsNS+"Tag"))

	require.Len(t, h.Skipped, 1)
	assert.True(t, ontology.IsUnresolvedRange(h.Skipped[0]))
	assert.Equal(t, 1, h.Properties)
	assert.NotContains(t, h.Content, "label()")
	assert.Contains(t, h.Content, "QUrl color() const {")
	assert.Contains(t, h.Content, "* Get property color.\n", "missing label falls back to the name")
}

func TestHeaderWriter_CommentWrapping(t *testing.T) {
	m := newModelBuilder().
		class(tagsNS+"Tag", tagsNS).
		add(tagsNS+"Tag", "http://www.w3.org/2000/01/rdf-schema#comment",
			"A tag is a short\tkeyword  attached to resources by the user to group them in ad hoc ways.", tagsNS).
		build()

	opts := DefaultEmitOptions()
	opts.CommentWidth = 20
	content := NewHeaderWriter(opts, nil).Write(classSpec(t, m, tagsNS+"Tag")).Content

	start := strings.Index(content, "/**\n")
	end := strings.Index(content, " */\n")
	require.True(t, start >= 0 && end > start)

	lines := strings.Split(strings.TrimSuffix(content[start+4:end], "\n"), "\n")
	require.Greater(t, len(lines), 1)
	for _, line := range lines {
		require.True(t, strings.HasPrefix(line, " * "), line)
		assert.LessOrEqual(t, len(line)-3, 20, line)
	}
	assert.Equal(t, " * A tag is a short", lines[0])
}

func TestHeaderWriter_CommentTerminatorIsEscaped(t *testing.T) {
	m := newModelBuilder().
		class(tagsNS+"Tag", tagsNS).
		add(tagsNS+"Tag", schema.RDFSComment, "Glob such as *.txt */ for files", tagsNS).
		property(tagsNS+"pattern", tagsNS, tagsNS+"Tag", schema.XSDString, "1").
		add(tagsNS+"pattern", schema.RDFSComment, "Ends the block */ int x;", tagsNS).
		build()

	h := NewHeaderWriter(DefaultEmitOptions(), nil).Write(classSpec(t, m, tagsNS+"Tag"))

	assert.Contains(t, h.Content, " * Glob such as *.txt * / for files\n")
	assert.Contains(t, h.Content, "Ends the block * / int x;")
	assert.NoError(t, NewSyntaxVerifier().Verify(context.Background(), []byte(h.Content)))
}

func TestHeaderWriter_CustomLayout(t *testing.T) {
	opts := EmitOptions{
		OuterNamespace: "Acme",
		BaseClass:      "Acme::Core::Resource",
		BaseInclude:    "acme/resource.hpp",
		Extension:      ".hpp",
	}

	h := NewHeaderWriter(opts, nil).Write(classSpec(t, tagModel(), tagsNS+"Tag"))

	assert.Equal(t, "tags/tag.hpp", h.Path)
	assert.Contains(t, h.Content, "#include <acme/resource.hpp>\n")
	assert.Contains(t, h.Content, "namespace Acme {\nnamespace TAGS {\n")
	assert.Contains(t, h.Content, "class Tag : public virtual Acme::Core::Resource\n")
	assert.Contains(t, h.Content, "    Tag(const Resource& res)\n      : Resource(res) {\n")
	assert.Contains(t, h.Content, "        Resource::operator=(res);\n")
}

func TestHeaderWriter_OutputParses(t *testing.T) {
	v := NewSyntaxVerifier()
	w := NewHeaderWriter(DefaultEmitOptions(), nil)

	m := desktopModel()
	for _, c := range m.Classes() {
		h := w.Write(classSpec(t, m, c.URI))
		assert.NoError(t, v.Verify(context.Background(), []byte(h.Content)), h.Path)
	}

	h := w.Write(classSpec(t, tagModel(), tagsNS+"Tag"))
	assert.NoError(t, v.Verify(context.Background(), []byte(h.Content)))
}

func TestSyntaxVerifier_RejectsBrokenHeader(t *testing.T) {
	v := NewSyntaxVerifier()

	err := v.Verify(context.Background(), []byte("class Tag : public {\n  void f( {\n};\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSyntax)
}
