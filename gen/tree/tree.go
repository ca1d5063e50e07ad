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

// Package tree prints the inspection tree of wiki text as an indented text
// tree.
//
// Node boxes become branches labelled with their kind and span, text
// attribute rows become leaves, and complex attribute rows become branches
// labelled with the row's label:
//
//	.
//	├── text 0:7
//	│   └── value: "Hello, "
//	├── link 7:16
//	│   ├── target: "World"
//	│   └── text:
//	│       └── text 9:14
//	│           └── value: "World"
//	└── text 16:17
//	    └── value: "!"
package tree // import "akhil.cc/wikiscope/gen/tree"

import (
	"context"
	"strings"

	"akhil.cc/wikiscope/dom"
	"akhil.cc/wikiscope/inspect"
	"akhil.cc/wikiscope/parser"
	"github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// Gen parses text, renders it into a fresh in-memory document and returns
// the printed tree. A nil configuration parses with the defaults.
func Gen(ctx context.Context, cfg *parser.Configuration, text string) string {
	doc := dom.NewDocument()
	result := doc.CreateElement("div", inspect.ResultClass).(*dom.MemoryElement)
	inspect.Render(ctx, doc, cfg, text, result)
	return String(result.Node())
}

// String prints the boxes inside result.
func String(result *html.Node) string {
	return Build(result).String()
}

// Build returns a tree holding the boxes inside result.
func Build(result *html.Node) treeprint.Tree {
	t := treeprint.New()
	addChildren(t, result)
	return t
}

func addChildren(branch treeprint.Tree, n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			addBox(branch, c)
		}
	}
}

func addBox(branch treeprint.Tree, box *html.Node) {
	head := firstElement(box)
	if head != nil && hasClass(head, inspect.NameClass) {
		label := textContent(head)
		rest := nextElement(head)
		if rest != nil && hasClass(rest, inspect.PositionClass) {
			label += textContent(rest)
			rest = nextElement(rest)
		}
		child := branch.AddBranch(label)
		for c := rest; c != nil; c = nextElement(c) {
			addBox(child, c)
		}
		return
	}
	if head == nil {
		branch.AddNode(textContent(box))
		return
	}
	child := branch.AddBranch(strings.TrimSpace(ownText(box)))
	addChildren(child, box)
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key == "class" {
			for _, f := range strings.Fields(a.Val) {
				if f == class {
					return true
				}
			}
		}
	}
	return false
}

func firstElement(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

func nextElement(n *html.Node) *html.Node {
	for c := n.NextSibling; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

// ownText returns the text children of n, skipping descendants.
func ownText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textContent(c))
	}
	return b.String()
}
