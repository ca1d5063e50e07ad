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

package parser

import "akhil.cc/wikiscope/ast"

type listLine struct {
	start  int
	eol    int
	prefix string
}

type listKind int

const (
	unordered listKind = iota
	ordered
	definition
)

func kindOf(c byte) listKind {
	switch c {
	case '*':
		return unordered
	case '#':
		return ordered
	}
	return definition
}

// list = list_line { newline list_line } .
// list_line = list_char { list_char } text .
func (p *parser) list() []ast.Node {
	var lines []listLine
	for p.pos < p.end && isListChar(p.text[p.pos]) {
		eol := p.lineEnd(p.pos)
		n := 0
		for p.pos+n < eol && isListChar(p.text[p.pos+n]) {
			n++
		}
		lines = append(lines, listLine{start: p.pos, eol: eol, prefix: p.text[p.pos : p.pos+n]})
		p.nextLine(eol)
	}
	return p.lists(lines, 0)
}

// lists groups lines by the kind of their marker at depth. Every line has
// a prefix longer than depth.
func (p *parser) lists(lines []listLine, depth int) []ast.Node {
	var nodes []ast.Node
	for i := 0; i < len(lines); {
		kind := kindOf(lines[i].prefix[depth])
		j := i + 1
		for j < len(lines) && kindOf(lines[j].prefix[depth]) == kind {
			j++
		}
		nodes = append(nodes, p.listNode(kind, lines[i:j], depth))
		i = j
	}
	return nodes
}

type listItem struct {
	ast.Pos
	term  bool
	nodes []ast.Node
}

func (p *parser) listNode(kind listKind, lines []listLine, depth int) ast.Node {
	pos := ast.Pos{Start: lines[0].start + depth, End: lines[len(lines)-1].eol}
	items := p.listItems(lines, depth)
	switch kind {
	case unordered:
		return &ast.UnorderedList{Pos: pos, Items: listItems(items)}
	case ordered:
		return &ast.OrderedList{Pos: pos, Items: listItems(items)}
	}
	dl := &ast.DefinitionList{Pos: pos}
	for _, it := range items {
		typ := ast.DetailsItem
		if it.term {
			typ = ast.TermItem
		}
		dl.Items = append(dl.Items, ast.DefinitionListItem{Pos: it.Pos, Type: typ, Nodes: it.nodes})
	}
	return dl
}

func listItems(items []listItem) []ast.ListItem {
	out := make([]ast.ListItem, len(items))
	for i, it := range items {
		out[i] = ast.ListItem{Pos: it.Pos, Nodes: it.nodes}
	}
	return out
}

// listItems turns lines ending at depth into items. Deeper lines become
// nested lists inside the item before them.
func (p *parser) listItems(lines []listLine, depth int) []listItem {
	var items []listItem
	for i := 0; i < len(lines); {
		l := lines[i]
		if len(l.prefix) == depth+1 {
			items = append(items, p.itemLine(l, depth)...)
			i++
			continue
		}
		j := i + 1
		for j < len(lines) && len(lines[j].prefix) > depth+1 {
			j++
		}
		nested := p.lists(lines[i:j], depth+1)
		if len(items) == 0 {
			at := l.start + depth + 1
			items = append(items, listItem{Pos: ast.Pos{Start: at, End: at}, term: l.prefix[depth] == ';'})
		}
		last := &items[len(items)-1]
		last.nodes = append(last.nodes, nested...)
		last.End = lines[j-1].eol
		i = j
	}
	return items
}

// itemLine parses the content of a single item line. A term line may
// carry its details after a colon, in which case two items are returned.
func (p *parser) itemLine(l listLine, depth int) []listItem {
	start := l.start + depth + 1
	term := l.prefix[depth] == ';'
	if term {
		if colon := p.termColon(start, l.eol); colon >= 0 {
			return []listItem{
				p.item(start, colon, true),
				p.item(colon+1, l.eol, false),
			}
		}
	}
	return []listItem{p.item(start, l.eol, term)}
}

func (p *parser) item(start, end int, term bool) listItem {
	cs, ce := p.trim(start, end)
	it := listItem{Pos: ast.Pos{Start: start, End: end}, term: term}
	p.within(cs, ce, func() {
		it.nodes = p.inline(nil)
	})
	return it
}

// termColon returns the index of the first colon outside brackets in
// text[start:end], or -1.
func (p *parser) termColon(start, end int) int {
	depth := 0
	for i := start; i < end; i++ {
		switch p.text[i] {
		case '[', '{', '<':
			depth++
		case ']', '}', '>':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
