package codegen

import (
	"fmt"

	"github.com/c360studio/ontogen/vocabulary/schema"
)

// Kind is the tag of a Type.
type Kind int

const (
	// KindURI is a resource reference. Ranges without a literal mapping use it.
	KindURI Kind = iota
	KindInt
	KindUint
	KindFloat
	KindBool
	KindDate
	KindTime
	KindDateTime
	KindString

	// KindStringList is the dedicated collection of strings.
	KindStringList

	// KindList is a collection of a scalar element type.
	KindList
)

// String returns the string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindURI:
		return "uri"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindDate:
		return "date"
	case KindTime:
		return "time"
	case KindDateTime:
		return "datetime"
	case KindString:
		return "string"
	case KindStringList:
		return "string_list"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Type is a mapped target type. The zero value is the URI scalar.
// Types are built by MapType and the constructors below; Width is only set
// for integer kinds and Elem only for KindList.
type Type struct {
	kind  Kind
	width int
	elem  *Type
}

// Scalar constructors.
var (
	URI      = Type{kind: KindURI}
	Float64  = Type{kind: KindFloat, width: 64}
	Bool     = Type{kind: KindBool}
	Date     = Type{kind: KindDate}
	Time     = Type{kind: KindTime}
	DateTime = Type{kind: KindDateTime}
	String   = Type{kind: KindString}

	StringList = Type{kind: KindStringList}
)

// Int returns a signed integer type of the given bit width.
func Int(width int) Type {
	return Type{kind: KindInt, width: width}
}

// Uint returns an unsigned integer type of the given bit width.
func Uint(width int) Type {
	return Type{kind: KindUint, width: width}
}

// ListOf returns a collection of elem. A string element yields StringList.
func ListOf(elem Type) Type {
	if elem.kind == KindString {
		return StringList
	}
	if elem.IsCollection() {
		return elem
	}
	e := elem
	return Type{kind: KindList, elem: &e}
}

// Kind returns the tag of the type.
func (t Type) Kind() Kind { return t.kind }

// Width returns the bit width of integer and float types, 0 otherwise.
func (t Type) Width() int { return t.width }

// IsCollection reports whether the type holds multiple values.
func (t Type) IsCollection() bool {
	return t.kind == KindList || t.kind == KindStringList
}

// Element returns the scalar type held by a collection, or t itself.
func (t Type) Element() Type {
	switch t.kind {
	case KindStringList:
		return String
	case KindList:
		return *t.elem
	default:
		return t
	}
}

// Equal reports whether two types are the same.
func (t Type) Equal(o Type) bool {
	if t.kind != o.kind || t.width != o.width {
		return false
	}
	if t.kind == KindList {
		return t.elem.Equal(*o.elem)
	}
	return true
}

// Qt renders the type as a C++/Qt type name.
func (t Type) Qt() string {
	switch t.kind {
	case KindInt:
		return fmt.Sprintf("qint%d", t.width)
	case KindUint:
		return fmt.Sprintf("quint%d", t.width)
	case KindFloat:
		return "double"
	case KindBool:
		return "bool"
	case KindDate:
		return "QDate"
	case KindTime:
		return "QTime"
	case KindDateTime:
		return "QDateTime"
	case KindString:
		return "QString"
	case KindStringList:
		return "QStringList"
	case KindList:
		return "QList<" + t.elem.Qt() + ">"
	default:
		return "QUrl"
	}
}

func (t Type) String() string {
	return t.Qt()
}

// literalTypes maps literal ranges to scalar types. Everything else is a URI.
var literalTypes = map[string]Type{
	schema.XSDInteger:            Int(64),
	schema.XSDNegativeInteger:    Int(64),
	schema.XSDNonPositiveInteger: Int(64),
	schema.XSDLong:               Int(64),
	schema.XSDNonNegativeInteger: Uint(64),
	schema.XSDPositiveInteger:    Uint(64),
	schema.XSDUnsignedLong:       Uint(64),
	schema.XSDInt:                Int(32),
	schema.XSDUnsignedInt:        Uint(32),
	schema.XSDShort:              Int(16),
	schema.XSDUnsignedShort:      Uint(16),
	schema.XSDByte:               Int(8),
	schema.XSDUnsignedByte:       Uint(8),
	schema.XSDFloat:              Float64,
	schema.XSDDouble:             Float64,
	schema.XSDBoolean:            Bool,
	schema.XSDDate:               Date,
	schema.XSDTime:               Time,
	schema.XSDDateTime:           DateTime,
	schema.XSDString:             String,
	schema.RDFSLiteral:           String,
}

// MapType maps a property range and cardinality to a target type.
// Cardinality 1 is scalar; anything else is a collection.
func MapType(rangeURI string, cardinality int) Type {
	scalar, ok := literalTypes[rangeURI]
	if !ok {
		scalar = URI
	}
	if cardinality != 1 {
		return ListOf(scalar)
	}
	return scalar
}
