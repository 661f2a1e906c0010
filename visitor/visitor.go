// Package visitor provides depth-first traversal over a SQLTerm tree.
package visitor

import "github.com/nrbnet/qfilter/ir"

// Visit is called once per node during Walk. Returning false stops
// descent into that node's children (it is always called on the node
// itself regardless).
type Visit func(node ir.SQLTerm) bool

// Walk traverses term depth-first, calling visit on every node.
func Walk(term ir.SQLTerm, visit Visit) {
	if term == nil {
		return
	}
	if !visit(term) {
		return
	}
	switch n := term.(type) {
	case *ir.And:
		for _, c := range n.Children {
			Walk(c, visit)
		}
	case *ir.Or:
		for _, c := range n.Children {
			Walk(c, visit)
		}
	case *ir.Not:
		Walk(n.Child, visit)
	case *ir.Value, *ir.Like, *ir.Denied:
		// leaves
	}
}

// CollectFields returns every field referenced anywhere in term, in
// visitation order (duplicates included).
func CollectFields(term ir.SQLTerm) []string {
	var names []string
	Walk(term, func(n ir.SQLTerm) bool {
		switch v := n.(type) {
		case *ir.Value:
			names = append(names, v.Field.SQLName)
		case *ir.Like:
			names = append(names, v.Field.SQLName)
		}
		return true
	})
	return names
}
