// Command qfilter is a small demo front-end for the qfilter library: it
// parses one query string against a fixed demo schema and prints the
// resulting WHERE/ORDER BY fragment. It carries no parsing logic of its
// own; it exists purely to exercise the library end to end.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/nrbnet/qfilter"
	"github.com/nrbnet/qfilter/permission"
)

type cliOptions struct {
	Query          string `short:"q" long:"query" description:"Query text to parse" required:"true"`
	Prefix         string `long:"prefix" description:"Keyword prefixed to the WHERE fragment" default:"WHERE"`
	Deny           bool   `long:"deny" description:"Run as a caller with no permissions, instead of an admin"`
	LikeInNumerics bool   `long:"like-in-numerics" description:"Fan out bare terms as LIKE across numeric columns too"`
	Explain        bool   `long:"explain" description:"Print the fields the caller may query instead of parsing --query"`
}

// demoSchema mirrors the fixture used by the library's own end-to-end
// tests: an article number, a free-text description, a price, an age, a
// per-mille value, and a changed-on date, each gated by its own
// permission token.
func demoSchema() *qfilter.Schema {
	schema, err := qfilter.NewSchema(
		qfilter.NewDescriptor("artikelnummer", qfilter.NewVarchar(32), "read:artikelnummer", "artnr", "artikelnummer", "ano"),
		qfilter.NewDescriptor("positionstext", qfilter.NewText(), "read:positionstext", "ptext", "positionstext", "desc"),
		qfilter.NewDescriptor("price", qfilter.NewNumeric(10, 2), "read:price", "price"),
		qfilter.NewDescriptor("age", qfilter.NewInteger(0, 150), "read:age", "age"),
		qfilter.NewDescriptor("promille", qfilter.NewInteger(1, 1000), "read:promille", "promille", "nummer"),
		qfilter.NewDescriptor("changed", qfilter.NewDate(), "read:changed", "ch", "changed"),
	)
	if err != nil {
		log.Fatalf("building demo schema: %v", err)
	}
	return schema
}

func main() {
	var opts cliOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[options]"
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		log.Fatal(err)
	}

	bar := qfilter.New(demoSchema(), qfilter.Options{LikeInNumerics: opts.LikeInNumerics})

	var perm permission.Permission = qfilter.AllowAll
	if opts.Deny {
		perm = permission.NewSet()
	}

	if opts.Explain {
		fmt.Println(bar.Explanation(perm))
		return
	}

	where, err := bar.Execute(perm, opts.Query)
	if err != nil {
		log.Fatalf("parsing query: %v", err)
	}
	fmt.Println(where.ToSQL(opts.Prefix))
}
