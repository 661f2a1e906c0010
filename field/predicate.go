package field

import (
	"fmt"
	"time"

	"github.com/nrbnet/qfilter/qerr"
)

// TryEq renders an equality-shaped predicate for this field: "{name}{cmp}{value}".
// BOOL rewrites the comparator away entirely, emitting the bare column
// name when the coerced value matches cmp==Equal and "{name}=false"
// otherwise (it is the only type that does this); NUMERIC
// and INTEGER values are emitted unquoted; DATE resolves through dates
// relative to today before formatting; everything else is single-quoted.
func (d Descriptor) TryEq(cmp Comparator, val string, dir Direction, today time.Time, dates DateResolver) (string, error) {
	switch d.Type.Kind {
	case Bool:
		b, err := CoerceBool(val)
		if err != nil {
			return "", err
		}
		if b == (cmp == Equal) {
			return d.SQLName, nil
		}
		return d.SQLName + "=false", nil
	case Integer, Numeric:
		safe, err := sqlSafe(d.Type, val)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s%s%s", d.SQLName, cmp, safe), nil
	case Date:
		if dates == nil {
			return "", qerr.NewParseError("no date resolver configured")
		}
		rng, err := dates.Resolve(today, dir, val)
		if err != nil {
			return "", qerr.NewParseError(err.Error())
		}
		return fmt.Sprintf("%s%s'%s'", d.SQLName, cmp, rng.Start()), nil
	default:
		safe, err := sqlSafe(d.Type, val)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s%s'%s'", d.SQLName, cmp, safe), nil
	}
}

// TryLike renders a LIKE-shaped predicate from a glob value (pre-escape,
// `*`/`?` still present). DATE and TIMESTAMP columns cannot be searched
// this way.
func (d Descriptor) TryLike(val string) (string, error) {
	switch d.Type.Kind {
	case Varchar, Text:
		safe, err := sqlSafe(d.Type, val)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s LIKE '%s'", d.SQLName, safe), nil
	case Date, Timestamp:
		return "", qerr.ErrLikeNotPossible
	default:
		safe, err := sqlSafe(d.Type, val)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s::TEXT LIKE '%s'", d.SQLName, safe), nil
	}
}
