// Package emit traverses a SQLTerm IR and produces either a SQL fragment
// or a human-readable textual rendering of the same tree.
package emit

import (
	"strings"
	"time"

	"github.com/nrbnet/qfilter/field"
	"github.com/nrbnet/qfilter/ir"
	"github.com/nrbnet/qfilter/qerr"
)

// SQL renders term as a SQL WHERE-clause fragment. today and dates
// resolve DATE values lazily, only for VALUE nodes that are actually
// reached during emission (a DENIED or otherwise-dropped branch never
// touches them).
//
// Inside AND/OR, a child that fails to emit (typically a DENIED branch,
// or a type/permission error) is silently dropped; the parent succeeds
// if any siblings survive. A combinator with zero surviving children
// fails with a "Empty SQLTerm!" ParseError. NOT(NOT(x)) collapses to x.
// A VALUE whose raw value contains a literal '*' is re-routed through
// LIKE emission, since a wildcard overrides an exact comparison.
func SQL(term ir.SQLTerm, today time.Time, dates field.DateResolver) (string, error) {
	switch n := term.(type) {
	case *ir.Or:
		return explodeSQL(n.Children, " OR ", today, dates)
	case *ir.And:
		return explodeSQL(n.Children, " AND ", today, dates)
	case *ir.Not:
		if inner, ok := n.Child.(*ir.Not); ok {
			return SQL(inner.Child, today, dates)
		}
		s, err := SQL(n.Child, today, dates)
		if err != nil {
			return "", err
		}
		return "NOT " + s, nil
	case *ir.Value:
		return valueSQL(n, today, dates)
	case *ir.Like:
		return n.Field.TryLike(n.Glob)
	case *ir.Denied:
		return "", qerr.ErrDenied
	default:
		return "", qerr.NewParseError("unknown SQLTerm node")
	}
}

// valueSQL reroutes through LIKE emission when the raw value carries a
// literal wildcard, since a glob always overrides an exact comparison.
func valueSQL(v *ir.Value, today time.Time, dates field.DateResolver) (string, error) {
	if strings.Contains(v.Raw, "*") {
		return v.Field.TryLike(v.Raw)
	}
	return v.Field.TryEq(v.Cmp, v.Raw, v.Dir, today, dates)
}

func explodeSQL(children []ir.SQLTerm, sep string, today time.Time, dates field.DateResolver) (string, error) {
	var parts []string
	for _, c := range children {
		s, err := SQL(c, today, dates)
		if err != nil {
			continue
		}
		parts = append(parts, s)
	}
	switch len(parts) {
	case 0:
		return "", qerr.NewParseError("Empty SQLTerm!")
	case 1:
		return parts[0], nil
	default:
		return "( " + strings.Join(parts, sep) + " )", nil
	}
}

// OrderBy renders a sort list as a comma-joined "{sql_name}[ DESC]" list.
func OrderBy(sorts []ir.SortSpec) string {
	parts := make([]string, len(sorts))
	for i, s := range sorts {
		if s.Descending {
			parts[i] = s.Field.SQLName + " DESC"
		} else {
			parts[i] = s.Field.SQLName
		}
	}
	return strings.Join(parts, ", ")
}
