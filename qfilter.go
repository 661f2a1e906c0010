// Package qfilter translates compact, search-bar-style query text into a
// permission-filtered SQL WHERE/ORDER BY fragment. A caller declares a
// Schema of queryable fields, builds a Searchbar over it, and calls
// Execute per incoming query string; the result is a WhereClause that
// renders the SQL fragment (or an empty string once any top-level error
// or permission denial has emptied it out).
package qfilter

import (
	"fmt"
	"strings"
	"time"

	"github.com/nrbnet/qfilter/dateresolve"
	"github.com/nrbnet/qfilter/emit"
	"github.com/nrbnet/qfilter/field"
	"github.com/nrbnet/qfilter/ir"
	"github.com/nrbnet/qfilter/parser"
	"github.com/nrbnet/qfilter/permission"
)

// Re-exported so callers need only import this package for the common path.
type (
	Schema     = field.Schema
	Descriptor = field.Descriptor
	FieldType  = field.FieldType
	Permission = permission.Permission
	Style      = field.Style
)

var (
	NewSchema     = field.NewSchema
	NewDescriptor = field.NewDescriptor
	NewVarchar    = field.NewVarchar
	NewText       = field.NewText
	NewInteger    = field.NewInteger
	NewNumeric    = field.NewNumeric
	NewBool       = field.NewBool
	NewDate       = field.NewDate
	NewTimestamp  = field.NewTimestamp
	AllowAll      = permission.AllowAll{}
)

const (
	Compact = field.Compact
	Pretty  = field.Pretty
	Html    = field.Html
)

// Options configures a Searchbar beyond its fixed field schema.
type Options struct {
	// LikeInNumerics makes a bare (unqualified) term also fan out as a
	// LIKE search across numeric columns, not just text ones.
	LikeInNumerics bool
	// Dates resolves DATE-typed values. Defaults to dateresolve.Resolver{}
	// when left nil, so a Searchbar is usable without wiring an external
	// date helper.
	Dates field.DateResolver
	// Now supplies the "today" a DATE value resolves relative to.
	// Defaults to time.Now when left nil; tests supply a fixed clock for
	// deterministic output.
	Now func() time.Time
}

// Searchbar binds an immutable schema and option set; it holds no
// per-query state. Execute may be called concurrently by multiple
// callers against the same Searchbar, provided the Permission each
// passes in is itself safe for concurrent use.
type Searchbar struct {
	schema *field.Schema
	opts   Options
}

// New builds a Searchbar over schema with the given options.
func New(schema *field.Schema, opts Options) *Searchbar {
	if opts.Dates == nil {
		opts.Dates = dateresolve.Resolver{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Searchbar{schema: schema, opts: opts}
}

// Schema returns the Searchbar's underlying field schema.
func (s *Searchbar) Schema() *field.Schema { return s.schema }

// WhereClause is the parsed result of one Execute call: an IR root term
// plus an ordered sort-field list, both fully resolved against a
// Permission at parse time. It is immutable and cheap to render
// repeatedly.
type WhereClause struct {
	root  ir.SQLTerm
	sorts []ir.SortSpec
	today time.Time
	dates field.DateResolver
}

// Execute parses query against s's schema, gating each field behind
// perm.HasPerm. A field the caller cannot read never reaches the
// emitted fragment, even when the query text names it explicitly.
func (s *Searchbar) Execute(perm permission.Permission, query string) (*WhereClause, error) {
	p := parser.New(query, s.schema, perm, s.opts.LikeInNumerics)
	root, sorts, err := p.Parse()
	if err != nil {
		return nil, err
	}
	return &WhereClause{root: root, sorts: sorts, today: s.opts.Now(), dates: s.opts.Dates}, nil
}

// Where renders the WHERE-clause fragment alone, with no keyword prefix
// and no ORDER BY suffix.
func (w *WhereClause) Where() (string, error) {
	return emit.SQL(w.root, w.today, w.dates)
}

// OrderBy renders the sort list as a comma-joined "{sql_name}[ DESC]" list.
// It is empty when the query carried no sort clause.
func (w *WhereClause) OrderBy() string {
	return emit.OrderBy(w.sorts)
}

// Explain renders the parsed query back as human-readable text in the
// given style, for echoing a user's search back to them.
func (w *WhereClause) Explain(style field.Style) (string, error) {
	return emit.Text(w.root, style)
}

// ToSQL renders the full fragment: the WHERE portion, prefixed by
// " {prefix} " when it is non-empty, followed by an optional
// " ORDER BY {order_by}". Any top-level error from Where (an empty
// query, a permission denial that empties every branch, or a value that
// fails type coercion in every branch) is treated as empty WHERE output
// rather than propagated; the overall result is the empty string when
// there is neither a surviving predicate nor a sort clause.
func (w *WhereClause) ToSQL(prefix string) string {
	var b strings.Builder
	if where, err := w.Where(); err == nil && where != "" {
		b.WriteString(" ")
		b.WriteString(prefix)
		b.WriteString(" ")
		b.WriteString(where)
	}
	if len(w.sorts) > 0 {
		b.WriteString(" ORDER BY ")
		b.WriteString(w.OrderBy())
	}
	return b.String()
}

// Explanation lists the fields perm can read, one per line, as
// "[alias1, alias2, ...] TYPE" with TYPE bucketed to one of TEXT,
// NUMBER, BOOL, or TIME.
func (s *Searchbar) Explanation(perm permission.Permission) string {
	var lines []string
	for _, f := range s.schema.Fields() {
		if perm.HasPerm(f.Permission) != nil {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %s", f.AliasList(), f.Type.Bucket()))
	}
	return strings.Join(lines, "\n")
}
