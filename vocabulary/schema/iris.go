package schema

// Namespace IRIs of the vocabularies the generator reads.
const (
	RDFNamespace  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"
	XSDNamespace  = "http://www.w3.org/2001/XMLSchema#"
	NRLNamespace  = "http://www.semanticdesktop.org/ontologies/2007/08/15/nrl#"
	NAONamespace  = "http://www.semanticdesktop.org/ontologies/2007/08/15/nao#"
)

// Class IRIs used to classify entries.
const (
	// RDFProperty is the type of every property definition.
	RDFProperty = RDFNamespace + "Property"

	// RDFSClass is the type of every class definition.
	RDFSClass = RDFSNamespace + "Class"

	// RDFSResource is the implicit root of every class hierarchy.
	// Properties whose domain is RDFSResource apply to every root class.
	RDFSResource = RDFSNamespace + "Resource"

	// RDFSLiteral is the generic literal range, treated like xsd:string.
	RDFSLiteral = RDFSNamespace + "Literal"

	// NRLOntology is the type of an ontology (graph) description.
	NRLOntology = NRLNamespace + "Ontology"
)

// Predicate IRIs.
const (
	RDFType         = RDFNamespace + "type"
	RDFSSubClassOf  = RDFSNamespace + "subClassOf"
	RDFSDomain      = RDFSNamespace + "domain"
	RDFSRange       = RDFSNamespace + "range"
	RDFSComment     = RDFSNamespace + "comment"
	RDFSLabel       = RDFSNamespace + "label"
	NRLCardinality  = NRLNamespace + "cardinality"
	NRLMaxCard      = NRLNamespace + "maxCardinality"
	NAODefaultNsAbb = NAONamespace + "hasDefaultNamespaceAbbreviation"
)

// XSD datatype IRIs understood by the type mapper.
const (
	XSDString             = XSDNamespace + "string"
	XSDBoolean            = XSDNamespace + "boolean"
	XSDInteger            = XSDNamespace + "integer"
	XSDNegativeInteger    = XSDNamespace + "negativeInteger"
	XSDNonPositiveInteger = XSDNamespace + "nonPositiveInteger"
	XSDNonNegativeInteger = XSDNamespace + "nonNegativeInteger"
	XSDPositiveInteger    = XSDNamespace + "positiveInteger"
	XSDLong               = XSDNamespace + "long"
	XSDUnsignedLong       = XSDNamespace + "unsignedLong"
	XSDInt                = XSDNamespace + "int"
	XSDUnsignedInt        = XSDNamespace + "unsignedInt"
	XSDShort              = XSDNamespace + "short"
	XSDUnsignedShort      = XSDNamespace + "unsignedShort"
	XSDByte               = XSDNamespace + "byte"
	XSDUnsignedByte       = XSDNamespace + "unsignedByte"
	XSDFloat              = XSDNamespace + "float"
	XSDDouble             = XSDNamespace + "double"
	XSDDate               = XSDNamespace + "date"
	XSDTime               = XSDNamespace + "time"
	XSDDateTime           = XSDNamespace + "dateTime"
)
