package field

import "fmt"

// Style selects how the textual renderer decorates combinators and
// predicates when echoing a parsed query back to a user.
type Style int

const (
	Compact Style = iota
	Pretty
	Html
)

// AsText renders a single predicate in this field's textual form, using
// the field's first declared alias (whichever alias the user typed) rather
// than its SQL column name. Html wraps each part in a syntax-highlighting span;
// Compact and Pretty share the same plain rendering, since only the
// combinator tokens differ between those two styles.
func (d Descriptor) AsText(style Style, cmp Comparator, raw string) string {
	name := d.SQLName
	if len(d.Aliases) > 0 {
		name = d.Aliases[0]
	}
	if style == Html {
		return fmt.Sprintf(
			`<span class="syntax_field">%s</span><span class="syntax_cmp">%s</span><span class="syntax_value">%s</span>`,
			name, cmp, raw)
	}
	return name + cmp.String() + raw
}
