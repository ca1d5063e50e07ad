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

package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// MemoryDocument is a Document kept in memory as a tree of *html.Node.
// Element values and input handlers are properties, so they never show up
// in the rendered markup.
type MemoryDocument struct {
	root    *html.Node
	body    *MemoryElement
	focused *MemoryElement
	elems   map[*html.Node]*MemoryElement
}

// NewDocument returns an empty document holding an html element with a
// head and a body.
func NewDocument() *MemoryDocument {
	d := &MemoryDocument{
		root:  &html.Node{Type: html.DocumentNode},
		elems: make(map[*html.Node]*MemoryElement),
	}
	d.root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	htmlEl := newElementNode("html")
	d.root.AppendChild(htmlEl)
	htmlEl.AppendChild(newElementNode("head"))
	body := newElementNode("body")
	htmlEl.AppendChild(body)
	d.body = d.wrap(body)
	return d
}

// wrap returns the element for n, so that properties stick to a node no
// matter how it was reached.
func (d *MemoryDocument) wrap(n *html.Node) *MemoryElement {
	e, ok := d.elems[n]
	if !ok {
		e = &MemoryElement{doc: d, node: n}
		d.elems[n] = e
	}
	return e
}

func newElementNode(tag string) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
}

// forget drops the elements of a detached subtree.
func (d *MemoryDocument) forget(n *html.Node) {
	delete(d.elems, n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.forget(c)
	}
}

func (d *MemoryDocument) CreateElement(tag string, classes ...string) Element {
	n := newElementNode(tag)
	if len(classes) > 0 {
		n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: strings.Join(classes, " ")})
	}
	return d.wrap(n)
}

func (d *MemoryDocument) Body() Element { return d.body }

// Focused returns the element focused last, or nil.
func (d *MemoryDocument) Focused() *MemoryElement { return d.focused }

// Head returns the head element.
func (d *MemoryDocument) Head() *MemoryElement {
	return d.wrap(d.body.node.Parent.FirstChild)
}

// Render writes the whole document as HTML.
func (d *MemoryDocument) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// MemoryElement is an Element of a MemoryDocument.
type MemoryElement struct {
	doc     *MemoryDocument
	node    *html.Node
	value   string
	onInput func()
}

func (e *MemoryElement) AppendElement(child Element) {
	c, ok := child.(*MemoryElement)
	if !ok || c.doc != e.doc {
		panic(fmt.Sprintf("dom: cannot append %T from another document", child))
	}
	if c.node.Parent != nil {
		c.node.Parent.RemoveChild(c.node)
	}
	e.node.AppendChild(c.node)
}

func (e *MemoryElement) AppendText(text string) {
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

func (e *MemoryElement) SetTextContent(text string) {
	for c := e.node.FirstChild; c != nil; c = e.node.FirstChild {
		e.node.RemoveChild(c)
		e.doc.forget(c)
	}
	if text != "" {
		e.AppendText(text)
	}
}

func (e *MemoryElement) SetValue(v string) { e.value = v }

func (e *MemoryElement) Value() string { return e.value }

func (e *MemoryElement) OnInput(handler func()) { e.onInput = handler }

func (e *MemoryElement) Focus() { e.doc.focused = e }

// DispatchInput sets the element's value as a user edit would and dispatches an
// input event to its handler. The handler runs to completion before Input
// returns.
func (e *MemoryElement) DispatchInput(value string) {
	e.value = value
	if e.onInput != nil {
		e.onInput()
	}
}

// Node returns the underlying node.
func (e *MemoryElement) Node() *html.Node { return e.node }

// Tag returns the element's tag name.
func (e *MemoryElement) Tag() string { return e.node.Data }

// ClassName returns the value of the class attribute.
func (e *MemoryElement) ClassName() string {
	for _, a := range e.node.Attr {
		if a.Key == "class" {
			return a.Val
		}
	}
	return ""
}

// Children returns the element children in order. Text nodes are skipped.
func (e *MemoryElement) Children() []*MemoryElement {
	var out []*MemoryElement
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, e.doc.wrap(c))
		}
	}
	return out
}

// ChildCount returns the number of child nodes, text nodes included.
func (e *MemoryElement) ChildCount() int {
	n := 0
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		n++
	}
	return n
}

// TextContent returns the concatenated text of all descendants.
func (e *MemoryElement) TextContent() string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.node)
	return b.String()
}

// OuterHTML renders the element and its descendants.
func (e *MemoryElement) OuterHTML() string {
	var buf bytes.Buffer
	if err := html.Render(&buf, e.node); err != nil {
		return ""
	}
	return buf.String()
}
