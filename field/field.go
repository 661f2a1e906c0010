// Package field defines the queryable column schema: comparators, field
// types, coercion/escaping rules, and the permission-aware predicate
// builders that turn a raw user value into a SQL fragment for a single
// column.
package field

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/nrbnet/qfilter/qerr"
)

var foldCase = cases.Fold()

// foldEqual reports whether a and b are equal under Unicode case folding.
func foldEqual(a, b string) bool {
	return foldCase.String(a) == foldCase.String(b)
}

// Comparator is one of the six relational operators a query can use to
// compare a field against a value. The zero value is Equal.
type Comparator int

const (
	Equal Comparator = iota
	NotEqual
	Gt
	Lt
	Gte
	Lte
)

// ParseComparator recognizes both the canonical and the swapped-symbol
// spelling of each comparator ("=="/"=", ">="/"=>", "<="/"=<", "!="/"=!").
func ParseComparator(s string) (Comparator, error) {
	switch s {
	case "=", "==":
		return Equal, nil
	case ">=", "=>":
		return Gte, nil
	case ">":
		return Gt, nil
	case "<=", "=<":
		return Lte, nil
	case "<":
		return Lt, nil
	case "!=", "=!":
		return NotEqual, nil
	default:
		return Equal, qerr.NewParseError(fmt.Sprintf("'%s' is no comparator!", s))
	}
}

// String renders the comparator as it appears in emitted SQL.
func (c Comparator) String() string {
	switch c {
	case Equal:
		return "="
	case NotEqual:
		return "!="
	case Gt:
		return ">"
	case Lt:
		return "<"
	case Gte:
		return ">="
	case Lte:
		return "<="
	default:
		return "="
	}
}

// Negate is an involution: negating twice returns the original comparator.
func (c Comparator) Negate() Comparator {
	switch c {
	case Equal:
		return NotEqual
	case NotEqual:
		return Equal
	case Gt:
		return Lte
	case Gte:
		return Lt
	case Lte:
		return Gt
	case Lt:
		return Gte
	default:
		return c
	}
}

// Direction disambiguates which end of a range a value represents. It
// matters only for DATE fields, where a bare token like "Feb" resolves to
// a different concrete date depending on whether it opens or closes a
// range.
type Direction int

const (
	// From is the inclusive lower bound of a range, or a bare equality.
	From Direction = iota
	// To is the exclusive upper bound of a range.
	To
)

// DateRange is the result of resolving a date token: a concrete calendar
// date usable as the start of a (possibly half-open) range.
type DateRange interface {
	// Start returns the canonical yyyy-mm-dd representation.
	Start() string
}

// DateResolver resolves natural-language or ISO date tokens relative to
// today's date. Implementations are supplied by the caller; qfilter
// itself is agnostic to calendar/locale logic beyond this interface
// (the dateresolve package provides a usable default).
type DateResolver interface {
	Resolve(today time.Time, dir Direction, token string) (DateRange, error)
}

// Kind tags the shape of a FieldType.
type Kind int

const (
	Varchar Kind = iota
	Text
	Integer
	Numeric
	Bool
	Date
	Timestamp
)

// FieldType describes the SQL type and constraints of a column.
type FieldType struct {
	Kind Kind

	// Varchar
	MaxLen int

	// Integer
	Min, Max uint64

	// Numeric
	Precision, Scale uint32
}

func NewVarchar(maxLen int) FieldType      { return FieldType{Kind: Varchar, MaxLen: maxLen} }
func NewText() FieldType                   { return FieldType{Kind: Text} }
func NewInteger(min, max uint64) FieldType { return FieldType{Kind: Integer, Min: min, Max: max} }
func NewNumeric(precision, scale uint32) FieldType {
	return FieldType{Kind: Numeric, Precision: precision, Scale: scale}
}
func NewBool() FieldType      { return FieldType{Kind: Bool} }
func NewDate() FieldType      { return FieldType{Kind: Date} }
func NewTimestamp() FieldType { return FieldType{Kind: Timestamp} }

// Bucket maps the type to the coarse category used by Searchbar's
// explanation output: TEXT, NUMBER, BOOL, or TIME.
func (t FieldType) Bucket() string {
	switch t.Kind {
	case Varchar, Text:
		return "TEXT"
	case Integer, Numeric:
		return "NUMBER"
	case Bool:
		return "BOOL"
	case Date, Timestamp:
		return "TIME"
	default:
		return "TEXT"
	}
}

// Descriptor is an immutable description of one queryable column.
type Descriptor struct {
	// SQLName is the column name injected verbatim into the emitted
	// fragment. It is developer-supplied and trusted; it is never
	// derived from user input.
	SQLName string
	Type    FieldType
	// Permission is the opaque token the caller must hold to read this
	// field.
	Permission string
	// Aliases are the lowercase, user-facing names this field can be
	// queried or sorted by. Must be non-empty.
	Aliases []string
}

// NewDescriptor builds a Descriptor. aliases must be non-empty.
func NewDescriptor(sqlName string, t FieldType, permission string, aliases ...string) Descriptor {
	return Descriptor{SQLName: sqlName, Type: t, Permission: permission, Aliases: aliases}
}

// IsText reports whether the field is VARCHAR or TEXT.
func (d Descriptor) IsText() bool {
	return d.Type.Kind == Varchar || d.Type.Kind == Text
}

// AliasList renders the field's aliases as "[a, b, c]".
func (d Descriptor) AliasList() string {
	return "[" + strings.Join(d.Aliases, ", ") + "]"
}

// Schema is an ordered, immutable set of field descriptors. Iteration
// order is the declared order, and is also the emission order for
// multi-field fan-outs.
type Schema struct {
	fields []Descriptor
}

// NewSchema validates that no alias is duplicated (case-insensitively)
// across the schema and returns the ordered field set.
func NewSchema(fields ...Descriptor) (*Schema, error) {
	seen := make(map[string]string)
	for _, f := range fields {
		if len(f.Aliases) == 0 {
			return nil, qerr.NewParseError(fmt.Sprintf("field '%s' has no aliases", f.SQLName))
		}
		for _, a := range f.Aliases {
			key := foldCase.String(a)
			if owner, ok := seen[key]; ok {
				return nil, qerr.NewParseError(fmt.Sprintf(
					"alias '%s' is used by both '%s' and '%s'", a, owner, f.SQLName))
			}
			seen[key] = f.SQLName
		}
	}
	return &Schema{fields: fields}, nil
}

// Fields returns the schema in declaration order.
func (s *Schema) Fields() []Descriptor {
	return s.fields
}

// Find looks up a field by alias, case-insensitively. ok is false when no
// field declares that alias.
func (s *Schema) Find(alias string) (Descriptor, bool) {
	for _, f := range s.fields {
		for _, a := range f.Aliases {
			if foldEqual(a, alias) {
				return f, true
			}
		}
	}
	return Descriptor{}, false
}

// FoldEqual exposes the Unicode-aware case-insensitive comparison used for
// alias matching. The lexer does not use it: it matches the keywords
// "AND"/"OR"/"NOT" with strings.EqualFold.
func FoldEqual(a, b string) bool { return foldEqual(a, b) }

// FoldLower returns the Unicode case-folded form of s.
func FoldLower(s string) string { return foldCase.String(s) }
