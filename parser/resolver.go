package parser

import (
	"fmt"

	"github.com/nrbnet/qfilter/field"
	"github.com/nrbnet/qfilter/ir"
	"github.com/nrbnet/qfilter/qerr"
	"github.com/nrbnet/qfilter/token"
)

// resolveTerm parses one term production, already past the field name
// and comparator (if any), starting from firstTok - the first token of
// the term body, already consumed by the caller. It builds an Or over
// every field the term fans out to: a single field when name matches an
// alias, or the entire schema in declared order when it does not
// (including when name is nil).
//
// The if/else-if dispatch order mirrors the resolved semantics exactly:
// permission denial first, then anchored LIKE, then the bare-term
// text/numeric fan-out, then a from_to range, then NotEqual rewritten as
// NOT(Equal), and finally a plain comparator value. Per-field coercion
// and escaping errors are NOT raised here - they surface later, during
// emission, where a failing sibling is silently dropped instead of
// aborting the whole query.
func (p *Parser) resolveTerm(name *string, cmp field.Comparator, firstTok token.Item) (ir.SQLTerm, error) {
	var likeStarting, likeEnding bool
	var value string

	switch firstTok.Kind {
	case token.STAR:
		likeStarting = true
		v, err := p.expectValueToken()
		if err != nil {
			return nil, err
		}
		value = v
	case token.CARET:
		likeEnding = true
		v, err := p.expectValueToken()
		if err != nil {
			return nil, err
		}
		value = v
	case token.IDENT, token.STRING:
		value = firstTok.Value
	default:
		return nil, qerr.NewParseError(fmt.Sprintf("unexpected token %q in term", firstTok.Value))
	}

	switch p.lex.Peek().Kind {
	case token.STAR:
		p.lex.Next()
		likeEnding = true
	case token.DOLLAR:
		p.lex.Next()
		likeStarting = true
	}

	var toVal *string
	if p.lex.Peek().Kind == token.DASH {
		p.lex.Next()
		v, err := p.expectValueToken()
		if err != nil {
			return nil, err
		}
		toVal = &v
	}

	fields := p.chooseFields(name)
	children := make([]ir.SQLTerm, 0, len(fields))
	for _, sf := range fields {
		if err := p.perm.HasPerm(sf.Permission); err != nil {
			children = append(children, &ir.Denied{})
			continue
		}

		switch {
		case likeStarting || likeEnding:
			glob := wildcardGlob(likeStarting, likeEnding, value)
			var node ir.SQLTerm = &ir.Like{Field: sf, Glob: glob}
			if cmp == field.NotEqual {
				node = &ir.Not{Child: node}
			}
			children = append(children, node)
		case name == nil:
			if sf.IsText() || p.likeInNumerics {
				children = append(children, &ir.Like{Field: sf, Glob: "*" + value + "*"})
			} else {
				children = append(children, &ir.Value{Field: sf, Cmp: field.Equal, Dir: field.From, Raw: value})
			}
		case toVal != nil:
			children = append(children, &ir.And{Children: []ir.SQLTerm{
				&ir.Value{Field: sf, Cmp: field.Gte, Dir: field.From, Raw: value},
				&ir.Value{Field: sf, Cmp: field.Lt, Dir: field.To, Raw: *toVal},
			}})
		case cmp == field.NotEqual:
			children = append(children, &ir.Not{Child: &ir.Value{Field: sf, Cmp: field.Equal, Dir: field.From, Raw: value}})
		default:
			children = append(children, &ir.Value{Field: sf, Cmp: cmp, Dir: field.From, Raw: value})
		}
	}
	return &ir.Or{Children: children}, nil
}

// wildcardGlob renders the anchor markers as a glob string. The mapping
// is intentionally asymmetric: starts_with=='^' and ends_with=='$' both
// mean "wildcard on the OTHER side", a quirk preserved from the original
// grammar rather than normalized away.
func wildcardGlob(starting, ending bool, value string) string {
	switch {
	case starting && !ending:
		return "*" + value
	case !starting && ending:
		return value + "*"
	default:
		return "*" + value + "*"
	}
}

// chooseFields resolves name to the single field declaring it as an
// alias, or - when name is nil or matches no alias - to the entire
// schema in declared order. A typo'd field name therefore fans out
// across every field rather than failing to parse; this is a faithful
// port of the original resolver's fallback, not an oversight.
func (p *Parser) chooseFields(name *string) []field.Descriptor {
	if name != nil {
		if f, ok := p.schema.Find(*name); ok {
			return []field.Descriptor{f}
		}
	}
	return p.schema.Fields()
}

// expectValueToken consumes the next token and requires it to be a bare
// word or quoted string, returning its literal value.
func (p *Parser) expectValueToken() (string, error) {
	tok := p.lex.Next()
	if tok.Kind != token.IDENT && tok.Kind != token.STRING {
		return "", qerr.NewParseError(fmt.Sprintf("expected value, got %q", tok.Value))
	}
	return tok.Value, nil
}

// parseSort parses a comma-separated list of sort fields, each with an
// optional leading "^" marking descending order. A field name that
// matches no alias is silently dropped from the result rather than
// raising an error.
func (p *Parser) parseSort() ([]ir.SortSpec, error) {
	var sorts []ir.SortSpec
	for {
		desc := false
		if p.lex.Peek().Kind == token.CARET {
			p.lex.Next()
			desc = true
		}
		tok := p.lex.Next()
		if tok.Kind != token.IDENT {
			return nil, qerr.NewParseError(fmt.Sprintf("expected sort field name, got %q", tok.Value))
		}
		if f, ok := p.schema.Find(tok.Value); ok {
			sorts = append(sorts, ir.SortSpec{Field: f, Descending: desc})
		}
		if p.lex.Peek().Kind == token.COMMA {
			p.lex.Next()
			continue
		}
		return sorts, nil
	}
}
