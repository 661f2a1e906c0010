package field

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nrbnet/qfilter/qerr"
)

// boolTrue and boolFalse hold the fixed multilingual token set a BOOL
// field accepts. Matching is case-insensitive and trims surrounding
// whitespace.
var boolTrue = map[string]bool{
	"1": true, "true": true, "wahr": true, "yes": true, "ja": true,
	"y": true, "j": true, "t": true, "w": true,
}

var boolFalse = map[string]bool{
	"0": true, "false": true, "falsch": true, "unwahr": true, "no": true,
	"not": true, "nein": true, "n": true, "f": true,
}

// CoerceBool interprets raw as a boolean using the token table above.
func CoerceBool(raw string) (bool, error) {
	key := FoldLower(strings.TrimSpace(raw))
	if boolTrue[key] {
		return true, nil
	}
	if boolFalse[key] {
		return false, nil
	}
	return false, qerr.NewParseError(fmt.Sprintf("No boolean value: '%s'", raw))
}

// escapeChar substitutes one glob/SQL-special character. It is applied
// uniformly, character by character, before any type-specific check.
func escapeChar(r rune) string {
	switch r {
	case '?':
		return "_"
	case '*':
		return "%"
	case '\'':
		return "''"
	case '_':
		return "\\_"
	case '%':
		return "\\%"
	default:
		return string(r)
	}
}

// sqlSafe escapes raw for safe embedding inside a single-quoted SQL
// literal, translating glob wildcards to their SQL equivalents, then
// runs the field-type-specific checker over the result.
func sqlSafe(t FieldType, raw string) (string, error) {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		b.WriteString(escapeChar(r))
	}
	return checkType(t, b.String())
}

// checkType validates (and sometimes normalizes) an already-escaped value
// against the field's type constraints.
func checkType(t FieldType, val string) (string, error) {
	switch t.Kind {
	case Varchar:
		if len([]rune(val)) > t.MaxLen {
			return "", qerr.NewParseError(fmt.Sprintf("Value '%s' too long", val))
		}
		return val, nil
	case Text:
		return val, nil
	case Timestamp:
		return timestampChecker(val)
	case Integer:
		cVal := strings.ReplaceAll(val, ",", ".")
		stripped := strings.ReplaceAll(cVal, "%", "")
		d, err := strconv.ParseUint(stripped, 10, 64)
		if err != nil || d < t.Min || d > t.Max {
			return "", qerr.NewParseError(fmt.Sprintf("No Integer value '%s'", val))
		}
		return cVal, nil
	case Numeric:
		cVal := strings.ReplaceAll(val, ",", ".")
		number := strings.ReplaceAll(cVal, "%", "")
		if _, err := strconv.ParseFloat(number, 64); err != nil || len(number) >= int(t.Precision)+1 {
			return "", qerr.NewParseError(fmt.Sprintf("No Numeric value '%s'", val))
		}
		return cVal, nil
	default:
		return "", qerr.NewParseError(fmt.Sprintf("Don't know how to handle: %v = '%s'", t, val))
	}
}

// timestampChecker accepts digits, '-', ':', space and '%'; a 10-character
// date-only value (yyyy-mm-dd) is widened to a full timestamp by
// appending midnight.
func timestampChecker(val string) (string, error) {
	for _, r := range val {
		switch r {
		case '-', ':', ' ', '%':
			continue
		default:
			if r < '0' || r > '9' {
				return "", qerr.NewParseError("No date")
			}
		}
	}
	if len(val) == 10 {
		return val + " 00:00:00", nil
	}
	return val, nil
}
