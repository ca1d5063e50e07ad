package ast

// Walker is called for every node visited by Walk. Returning false skips
// the node's children.
type Walker func(Node) bool

// Walk traverses nodes depth-first in source order, descending into every
// child list, including those held by list items, table parts and
// template parameters.
func Walk(nodes []Node, f Walker) {
	for _, n := range nodes {
		if n == nil || !f(n) {
			continue
		}
		switch t := n.(type) {
		case *Category:
			Walk(t.Ordinal, f)
		case *DefinitionList:
			for _, item := range t.Items {
				Walk(item.Nodes, f)
			}
		case *ExternalLink:
			Walk(t.Nodes, f)
		case *Heading:
			Walk(t.Nodes, f)
		case *Image:
			Walk(t.Text, f)
		case *Link:
			Walk(t.Text, f)
		case *OrderedList:
			for _, item := range t.Items {
				Walk(item.Nodes, f)
			}
		case *UnorderedList:
			for _, item := range t.Items {
				Walk(item.Nodes, f)
			}
		case *Parameter:
			Walk(t.Name, f)
			Walk(t.Default, f)
		case *Preformatted:
			Walk(t.Nodes, f)
		case *Table:
			Walk(t.Attributes, f)
			for _, c := range t.Captions {
				Walk(c.Attributes, f)
				Walk(c.Content, f)
			}
			for _, r := range t.Rows {
				Walk(r.Attributes, f)
				for _, c := range r.Cells {
					Walk(c.Attributes, f)
					Walk(c.Content, f)
				}
			}
		case *Tag:
			Walk(t.Nodes, f)
		case *Template:
			Walk(t.Name, f)
			for _, p := range t.Parameters {
				Walk(p.Name, f)
				Walk(p.Value, f)
			}
		}
	}
}

// Count returns the number of nodes reachable from nodes.
func Count(nodes []Node) int {
	n := 0
	Walk(nodes, func(Node) bool {
		n++
		return true
	})
	return n
}
