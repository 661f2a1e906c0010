package emit

import (
	"strings"

	"github.com/nrbnet/qfilter/field"
	"github.com/nrbnet/qfilter/ir"
	"github.com/nrbnet/qfilter/qerr"
)

// combinatorText returns how a combinator renders between two siblings in
// the given style.
func combinatorText(style field.Style, and bool) string {
	switch style {
	case field.Html:
		if and {
			return `<span class="syntax_combinator syntax_c_and">&amp;&amp;</span>`
		}
		return `<span class="syntax_combinator syntax_c_or">||</span>`
	case field.Compact:
		if and {
			return "&&"
		}
		return "||"
	default: // Pretty
		if and {
			return " && "
		}
		return " || "
	}
}

// Text renders term as a human-readable query string in the given style,
// for echoing a parsed expression back to the user that typed it. Unlike
// SQL, a negated VALUE is not prefixed with an operator: the negation is
// pushed into the field's own comparator, so "age != 10" round-trips as
// itself rather than as "!age=10".
func Text(term ir.SQLTerm, style field.Style) (string, error) {
	switch n := term.(type) {
	case *ir.Or:
		return explodeText(n.Children, style, false)
	case *ir.And:
		return explodeText(n.Children, style, true)
	case *ir.Not:
		if inner, ok := n.Child.(*ir.Not); ok {
			return Text(inner.Child, style)
		}
		if v, ok := n.Child.(*ir.Value); ok {
			return v.Field.AsText(style, v.Cmp.Negate(), v.Raw), nil
		}
		s, err := Text(n.Child, style)
		if err != nil {
			return "", err
		}
		return "!" + s, nil
	case *ir.Value:
		return n.Field.AsText(style, n.Cmp, n.Raw), nil
	case *ir.Like:
		return n.Field.AsText(style, field.Equal, n.Glob), nil
	case *ir.Denied:
		return "", qerr.ErrDenied
	default:
		return "", qerr.NewParseError("unknown SQLTerm node")
	}
}

func explodeText(children []ir.SQLTerm, style field.Style, and bool) (string, error) {
	var parts []string
	for _, c := range children {
		s, err := Text(c, style)
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
		joined := strings.Join(parts, combinatorText(style, and))
		if style == field.Html {
			return `<span class="syntax_bracket"><span class="syntax_b_start">(</span>` +
				`<div class="syntax_in_brackets">` + joined + `</div>` +
				`<span class="syntax_b_end">)</span></span>`, nil
		}
		return "(" + joined + ")", nil
	}
}
