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

// Package inspect renders a wiki-text syntax tree as a tree of DOM
// elements.
//
// Every node becomes a node box, an element with class "node" that opens
// with a header: a "name" span holding the kind of the node and a
// "position" span holding its source span. Attribute rows follow the
// header. Each row is itself a node box, holding either a label and a
// debug-formatted value, or a label and further node boxes.
//
// AST nodes correspond to the following headers and rows:
// 	Bold                        bold
// 	BoldItalic                  bold italic
// 	Category                    category, target: "…", ordinal: […]
// 	CharacterEntity             character entity, character: "…"
// 	Comment                     comment
// 	DefinitionList              definition list, then a term or details box per item
// 	EndTag                      end tag, name: "…"
// 	ExternalLink                external link, then its nodes
// 	Heading                     heading, level: n, then its nodes
// 	HorizontalDivider           horizontal divider
// 	Image                       image, target: "…", text: […]
// 	Italic                      italic
// 	Link                        link, target: "…", text: […]
// 	MagicWord                   magic word
// 	OrderedList                 ordered list, then an item box per item
// 	ParagraphBreak              paragraph break
// 	Parameter                   parameter, name […], default […]
// 	Preformatted                preformatted, then its nodes
// 	Redirect                    redirect, target: "…"
// 	StartTag                    start tag, name: "…"
// 	Table                       table, attributes […], caption and row boxes
// 	Tag                         tag, name: "…", then its nodes
// 	Text                        text, value: "…"
// 	Template                    template, name […], a parameter box per parameter
// 	UnorderedList               unordered list, then an item box per item
package inspect // import "akhil.cc/wikiscope/inspect"

import (
	"context"
	"fmt"
	"strconv"

	"akhil.cc/wikiscope/ast"
	"akhil.cc/wikiscope/dom"
	"akhil.cc/wikiscope/logger"
	"akhil.cc/wikiscope/parser"
	"github.com/sanity-io/litter"
)

// Class names used in the rendered tree.
const (
	NodeClass     = "node"
	NameClass     = "name"
	PositionClass = "position"
	ResultClass   = "result"
)

// UnknownNodeError is the panic value raised for a node type the walker
// does not know about.
type UnknownNodeError struct {
	Node ast.Node
}

func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("inspect: unknown node type %T", e.Node)
}

// Char is a character value rendered as a character literal.
type Char rune

var debugOptions = litter.Options{
	Compact:           true,
	StripPackageNames: true,
}

// Debug formats a scalar the way an attribute row shows it: strings as
// double-quoted Go literals, integers in decimal and Chars as
// single-quoted Go literals.
func Debug(v interface{}) string {
	if c, ok := v.(Char); ok {
		return strconv.QuoteRune(rune(c))
	}
	return debugOptions.Sdump(v)
}

// Render clears result, parses text and fills result with one box per
// warning followed by one box per top-level node. A nil configuration
// parses with the defaults.
func Render(ctx context.Context, doc dom.Document, cfg *parser.Configuration, text string, result dom.Element) *ast.Output {
	result.SetTextContent("")
	out := cfg.Parse(text)
	for _, w := range out.Warnings {
		box := doc.CreateElement("div", NodeClass)
		AddNodeHead(doc, box, w.Message.Message(), w.Start, w.End)
		result.AppendElement(box)
	}
	AddNodes(doc, result, out.Nodes)
	logger.FromContext(ctx).V(1).Info("render",
		"bytes", len(text),
		"warnings", len(out.Warnings),
		"nodes", ast.Count(out.Nodes),
	)
	return out
}

// AddNodeHead appends the header of a node box.
func AddNodeHead(doc dom.Document, box dom.Element, label string, start, end int) {
	name := doc.CreateElement("span", NameClass)
	name.AppendText(label)
	box.AppendElement(name)
	position := doc.CreateElement("span", PositionClass)
	position.AppendText(" " + strconv.Itoa(start) + ":" + strconv.Itoa(end))
	box.AppendElement(position)
}

// AddTextAttribute appends a row holding label and the debug-formatted
// value.
func AddTextAttribute(doc dom.Document, parent dom.Element, label string, value interface{}) {
	row := doc.CreateElement("div", NodeClass)
	row.AppendText(label)
	row.AppendText(Debug(value))
	parent.AppendElement(row)
}

// AddComplexAttribute appends a row holding label and a box per node.
func AddComplexAttribute(doc dom.Document, parent dom.Element, label string, nodes []ast.Node) {
	row := doc.CreateElement("div", NodeClass)
	row.AppendText(label)
	AddNodes(doc, row, nodes)
	parent.AppendElement(row)
}
