// Package parser implements a recursive-descent parser over the
// search-bar query grammar: it turns a token stream into a SQLTerm IR
// tree plus an optional sort-field list, resolving field aliases and
// permission checks as it goes.
package parser

import (
	"fmt"
	"sync"

	"github.com/nrbnet/qfilter/field"
	"github.com/nrbnet/qfilter/ir"
	"github.com/nrbnet/qfilter/lexer"
	"github.com/nrbnet/qfilter/permission"
	"github.com/nrbnet/qfilter/qerr"
	"github.com/nrbnet/qfilter/token"
)

// Parser consumes one query string and produces its SQLTerm tree. It is
// not safe for concurrent use; build one Parser per query.
type Parser struct {
	lex            *lexer.Lexer
	schema         *field.Schema
	perm           permission.Permission
	likeInNumerics bool
}

var parserPool = sync.Pool{
	New: func() any { return &Parser{lex: lexer.New("")} },
}

// New builds a Parser for input against schema, gating field visibility
// through perm. likeInNumerics mirrors Options.LikeInNumerics: when set,
// a bare (field-less) term also runs as a LIKE fan-out across numeric
// columns, not just text ones.
func New(input string, schema *field.Schema, perm permission.Permission, likeInNumerics bool) *Parser {
	return &Parser{lex: lexer.New(input), schema: schema, perm: perm, likeInNumerics: likeInNumerics}
}

// Get returns a Parser from the pool, initialized for input.
func Get(input string, schema *field.Schema, perm permission.Permission, likeInNumerics bool) *Parser {
	p := parserPool.Get().(*Parser)
	p.lex.Reset(input)
	p.schema = schema
	p.perm = perm
	p.likeInNumerics = likeInNumerics
	return p
}

// Put returns the Parser to the pool.
func Put(p *Parser) {
	parserPool.Put(p)
}

// Parse consumes the whole input and returns the resulting SQLTerm tree
// (an empty AND when the query carries no expr) plus any sort fields
// named after a leading ";". Trailing input after the optional sort
// clause is an error.
func (p *Parser) Parse() (ir.SQLTerm, []ir.SortSpec, error) {
	var term ir.SQLTerm = &ir.And{}
	if tok := p.lex.Peek(); tok.Kind != token.SEMI && tok.Kind != token.EOF {
		t, err := p.parseExpr(field.Equal)
		if err != nil {
			return nil, nil, err
		}
		term = t
	}

	var sorts []ir.SortSpec
	if p.lex.Peek().Kind == token.SEMI {
		p.lex.Next()
		s, err := p.parseSort()
		if err != nil {
			return nil, nil, err
		}
		sorts = s
	}

	if tok := p.lex.Next(); tok.Kind != token.EOF {
		return nil, nil, qerr.NewParseError(fmt.Sprintf("unexpected trailing token %q", tok.Value))
	}
	return term, sorts, nil
}

// parseExpr parses one expr production: a flat list of atoms separated
// by AND/OR/NOT tokens and nested parenthesized sub-exprs.
//
// Two pieces of state are threaded across the WHOLE loop body, not reset
// between atoms: cmp (the running sign register, toggled by each NOT)
// and or (overwritten, not toggled, by the last AND/OR token seen). The
// final value of or decides whether every atom collected in this expr -
// regardless of where AND/OR tokens appeared relative to it - is wrapped
// in one flat Or or one flat And. A parenthesized sub-expr gets its own
// fresh cmp via the recursive call; it does not inherit or leak this
// expr's running sign.
func (p *Parser) parseExpr(outerCmp field.Comparator) (ir.SQLTerm, error) {
	cmp := outerCmp
	or := false
	var acc []ir.SQLTerm

	for {
		tok := p.lex.Peek()
		switch tok.Kind {
		case token.EOF, token.SEMI, token.RPAREN:
			if or {
				return &ir.Or{Children: acc}, nil
			}
			return &ir.And{Children: acc}, nil
		case token.AND:
			p.lex.Next()
			or = false
		case token.OR:
			p.lex.Next()
			or = true
		case token.NOT:
			p.lex.Next()
			cmp = cmp.Negate()
		case token.LPAREN:
			p.lex.Next()
			child, err := p.parseExpr(field.Equal)
			if err != nil {
				return nil, err
			}
			if err := p.expect(token.RPAREN); err != nil {
				return nil, err
			}
			acc = append(acc, child)
		default:
			child, err := p.parseAtom(cmp)
			if err != nil {
				return nil, err
			}
			acc = append(acc, child)
		}
	}
}

// parseAtom parses either a field production (field_name comparator
// term) or a bare term with no field name, distinguishing the two with
// a single token of lookahead after consuming the leading IDENT.
func (p *Parser) parseAtom(outerCmp field.Comparator) (ir.SQLTerm, error) {
	tok := p.lex.Next()

	if tok.Kind == token.IDENT && p.lex.Peek().Kind == token.COMPARATOR {
		name := tok.Value
		cmpTok := p.lex.Next()
		cmp, err := field.ParseComparator(cmpTok.Value)
		if err != nil {
			return nil, err
		}

		not := outerCmp == field.NotEqual
		if p.lex.Peek().Kind == token.NOT {
			p.lex.Next()
			not = !not
		}
		final := cmp
		if not {
			final = cmp.Negate()
		}

		firstTok := p.lex.Next()
		return p.resolveTerm(&name, final, firstTok)
	}

	return p.resolveTerm(nil, outerCmp, tok)
}

func (p *Parser) expect(k token.Kind) error {
	tok := p.lex.Next()
	if tok.Kind != k {
		return qerr.NewParseError(fmt.Sprintf("expected %s, got %q", k, tok.Value))
	}
	return nil
}
