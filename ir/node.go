// Package ir defines the SQLTerm intermediate representation: the
// algebraic boolean tree of typed predicates that sits between the
// parser and the emitter.
package ir

import "github.com/nrbnet/qfilter/field"

// SQLTerm is the closed sum type of all IR node kinds. Adding a new kind
// is an explicit act: every switch over SQLTerm (in emit and in tests)
// must be extended to handle it.
type SQLTerm interface {
	sqlTermNode()
}

// And combines its children with SQL AND.
type And struct {
	Children []SQLTerm
}

// Or combines its children with SQL OR. A bare-term fan-out across
// multiple permitted fields is represented as an Or.
type Or struct {
	Children []SQLTerm
}

// Not negates its child.
type Not struct {
	Child SQLTerm
}

// Value is a typed, single-field predicate. Raw is the post-parse,
// pre-SQL-escape user string; Dir disambiguates which end of a range this
// value represents, which only matters for DATE fields.
type Value struct {
	Field field.Descriptor
	Cmp   field.Comparator
	Dir   field.Direction
	Raw   string
}

// Like is a user-glob predicate (raw wildcards, not yet escaped).
type Like struct {
	Field field.Descriptor
	Glob  string
}

// Denied marks a branch the caller may not read. It is eliminated during
// emission: a parent AND/OR drops it and proceeds with any surviving
// siblings; a DENIED root emits an error.
type Denied struct{}

func (*And) sqlTermNode()    {}
func (*Or) sqlTermNode()     {}
func (*Not) sqlTermNode()    {}
func (*Value) sqlTermNode()  {}
func (*Like) sqlTermNode()   {}
func (*Denied) sqlTermNode() {}

// SortSpec pairs a field with its sort direction. Emission order matches
// parse order.
type SortSpec struct {
	Field      field.Descriptor
	Descending bool
}
