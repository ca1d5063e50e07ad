// MIT License

// Copyright (c) 2018 Akhil Indurti

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package inspect

import (
	"akhil.cc/wikiscope/ast"
	"akhil.cc/wikiscope/dom"
)

// AddNodes appends one box per node to container, in order.
//
// Every node type is handled explicitly; a node type added to package ast
// without a case here panics with *UnknownNodeError.
func AddNodes(doc dom.Document, container dom.Element, nodes []ast.Node) {
	for _, node := range nodes {
		box := doc.CreateElement("div", NodeClass)
		switch n := node.(type) {
		case *ast.Bold:
			AddNodeHead(doc, box, "bold", n.Start, n.End)
		case *ast.BoldItalic:
			AddNodeHead(doc, box, "bold italic", n.Start, n.End)
		case *ast.Category:
			AddNodeHead(doc, box, "category", n.Start, n.End)
			AddTextAttribute(doc, box, "target: ", n.Target)
			AddComplexAttribute(doc, box, "ordinal: ", n.Ordinal)
		case *ast.CharacterEntity:
			AddNodeHead(doc, box, "character entity", n.Start, n.End)
			AddTextAttribute(doc, box, "character: ", string(n.Character))
		case *ast.Comment:
			AddNodeHead(doc, box, "comment", n.Start, n.End)
		case *ast.DefinitionList:
			AddNodeHead(doc, box, "definition list", n.Start, n.End)
			for _, item := range n.Items {
				label := "details"
				if item.Type == ast.TermItem {
					label = "term"
				}
				addItem(doc, box, label, item.Pos, item.Nodes)
			}
		case *ast.EndTag:
			AddNodeHead(doc, box, "end tag", n.Start, n.End)
			AddTextAttribute(doc, box, "name: ", n.Name)
		case *ast.ExternalLink:
			AddNodeHead(doc, box, "external link", n.Start, n.End)
			AddNodes(doc, box, n.Nodes)
		case *ast.Heading:
			AddNodeHead(doc, box, "heading", n.Start, n.End)
			AddTextAttribute(doc, box, "level: ", n.Level)
			AddNodes(doc, box, n.Nodes)
		case *ast.HorizontalDivider:
			AddNodeHead(doc, box, "horizontal divider", n.Start, n.End)
		case *ast.Image:
			AddNodeHead(doc, box, "image", n.Start, n.End)
			AddTextAttribute(doc, box, "target: ", n.Target)
			AddComplexAttribute(doc, box, "text: ", n.Text)
		case *ast.Italic:
			AddNodeHead(doc, box, "italic", n.Start, n.End)
		case *ast.Link:
			AddNodeHead(doc, box, "link", n.Start, n.End)
			AddTextAttribute(doc, box, "target: ", n.Target)
			AddComplexAttribute(doc, box, "text: ", n.Text)
		case *ast.MagicWord:
			AddNodeHead(doc, box, "magic word", n.Start, n.End)
		case *ast.OrderedList:
			AddNodeHead(doc, box, "ordered list", n.Start, n.End)
			for _, item := range n.Items {
				addItem(doc, box, "item", item.Pos, item.Nodes)
			}
		case *ast.ParagraphBreak:
			AddNodeHead(doc, box, "paragraph break", n.Start, n.End)
		case *ast.Parameter:
			AddNodeHead(doc, box, "parameter", n.Start, n.End)
			AddComplexAttribute(doc, box, "name", n.Name)
			if n.Default != nil {
				AddComplexAttribute(doc, box, "default", n.Default)
			}
		case *ast.Preformatted:
			AddNodeHead(doc, box, "preformatted", n.Start, n.End)
			AddNodes(doc, box, n.Nodes)
		case *ast.Redirect:
			AddNodeHead(doc, box, "redirect", n.Start, n.End)
			AddTextAttribute(doc, box, "target: ", n.Target)
		case *ast.StartTag:
			AddNodeHead(doc, box, "start tag", n.Start, n.End)
			AddTextAttribute(doc, box, "name: ", n.Name)
		case *ast.Table:
			AddNodeHead(doc, box, "table", n.Start, n.End)
			addTable(doc, box, n)
		case *ast.Tag:
			AddNodeHead(doc, box, "tag", n.Start, n.End)
			AddTextAttribute(doc, box, "name: ", n.Name)
			AddNodes(doc, box, n.Nodes)
		case *ast.Text:
			AddNodeHead(doc, box, "text", n.Start, n.End)
			AddTextAttribute(doc, box, "value: ", n.Value)
		case *ast.Template:
			AddNodeHead(doc, box, "template", n.Start, n.End)
			AddComplexAttribute(doc, box, "name", n.Name)
			for _, param := range n.Parameters {
				pbox := doc.CreateElement("div", NodeClass)
				AddNodeHead(doc, pbox, "parameter", param.Start, param.End)
				if param.Name != nil {
					AddComplexAttribute(doc, pbox, "name", param.Name)
				}
				AddComplexAttribute(doc, pbox, "value", param.Value)
				box.AppendElement(pbox)
			}
		case *ast.UnorderedList:
			AddNodeHead(doc, box, "unordered list", n.Start, n.End)
			for _, item := range n.Items {
				addItem(doc, box, "item", item.Pos, item.Nodes)
			}
		default:
			panic(&UnknownNodeError{Node: node})
		}
		container.AppendElement(box)
	}
}

// addItem appends a box for a list item with its nodes inline.
func addItem(doc dom.Document, parent dom.Element, label string, pos ast.Pos, nodes []ast.Node) {
	box := doc.CreateElement("div", NodeClass)
	AddNodeHead(doc, box, label, pos.Start, pos.End)
	AddNodes(doc, box, nodes)
	parent.AppendElement(box)
}

func addTable(doc dom.Document, box dom.Element, t *ast.Table) {
	if len(t.Attributes) > 0 {
		AddComplexAttribute(doc, box, "attributes", t.Attributes)
	}
	for _, c := range t.Captions {
		cbox := doc.CreateElement("div", NodeClass)
		AddNodeHead(doc, cbox, "caption", c.Start, c.End)
		if c.Attributes != nil {
			AddComplexAttribute(doc, cbox, "attributes", c.Attributes)
		}
		AddComplexAttribute(doc, cbox, "content", c.Content)
		box.AppendElement(cbox)
	}
	for _, r := range t.Rows {
		rbox := doc.CreateElement("div", NodeClass)
		AddNodeHead(doc, rbox, "row", r.Start, r.End)
		if len(r.Attributes) > 0 {
			AddComplexAttribute(doc, rbox, "attributes", r.Attributes)
		}
		for _, c := range r.Cells {
			label := "cell"
			if c.Type == ast.HeadingCell {
				label = "heading"
			}
			cbox := doc.CreateElement("div", NodeClass)
			AddNodeHead(doc, cbox, label, c.Start, c.End)
			if c.Attributes != nil {
				AddComplexAttribute(doc, cbox, "attributes", c.Attributes)
			}
			AddComplexAttribute(doc, cbox, "content", c.Content)
			rbox.AppendElement(cbox)
		}
		box.AppendElement(rbox)
	}
}
