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

import (
	"strings"

	"akhil.cc/wikiscope/ast"
)

// table = "{|" attributes newline { table_line newline } "|}" .
// table_line = "|+" caption | "|-" attributes | "!" cells | "|" cells | text .
func (p *parser) table() ast.Node {
	t := &ast.Table{Pos: ast.Pos{Start: p.pos}}
	eol := p.lineEnd(p.pos)
	t.Attributes = p.section(p.pos+2, eol)
	t.End = eol
	p.nextLine(eol)

	// extend appends continuation lines to the caption or cell opened last.
	var extend func(nodes []ast.Node, end int)
	row := func() *ast.TableRow { return &t.Rows[len(t.Rows)-1] }
	closed := false
	for p.pos < p.end && !closed {
		eol := p.lineEnd(p.pos)
		ls, _ := p.trim(p.pos, eol)
		line := p.text[ls:eol]
		switch {
		case strings.HasPrefix(line, "|}"):
			t.End = ls + 2
			closed = true
			if strings.TrimSpace(p.text[ls+2:eol]) != "" {
				// text after the table continues as a paragraph
				p.pos = ls + 2
				continue
			}
		case strings.HasPrefix(line, "|+"):
			c := p.caption(ls, eol)
			t.Captions = append(t.Captions, c)
			i := len(t.Captions) - 1
			extend = func(nodes []ast.Node, end int) {
				t.Captions[i].Content = append(t.Captions[i].Content, nodes...)
				t.Captions[i].End = end
			}
			t.End = eol
		case strings.HasPrefix(line, "|-"):
			as := ls + 2
			for as < eol && p.text[as] == '-' {
				as++
			}
			t.Rows = append(t.Rows, ast.TableRow{
				Pos:        ast.Pos{Start: ls, End: eol},
				Attributes: p.section(as, eol),
			})
			extend = nil
			t.End = eol
		case line != "" && (line[0] == '|' || line[0] == '!'):
			if len(t.Rows) == 0 {
				t.Rows = append(t.Rows, ast.TableRow{Pos: ast.Pos{Start: ls}, Attributes: []ast.Node{}})
			}
			r := row()
			r.Cells = append(r.Cells, p.cells(ls, eol, line[0] == '!')...)
			r.End = eol
			ri, ci := len(t.Rows)-1, len(r.Cells)-1
			extend = func(nodes []ast.Node, end int) {
				c := &t.Rows[ri].Cells[ci]
				c.Content = append(c.Content, nodes...)
				c.End = end
				t.Rows[ri].End = end
			}
			t.End = eol
		case line == "":
		default:
			if extend == nil {
				p.warn(ast.StrayTextInTable, ls, eol)
				break
			}
			nodes := []ast.Node{p.textNode(p.pos-1, p.pos)}
			extend(append(nodes, p.section(ls, eol)...), eol)
			t.End = eol
		}
		p.nextLine(eol)
	}
	if !closed {
		p.warn(ast.UnterminatedTable, t.Start, t.Start+2)
	}
	return t
}

func (p *parser) caption(ls, eol int) ast.TableCaption {
	c := ast.TableCaption{Pos: ast.Pos{Start: ls, End: eol}}
	start := ls + 2
	if bar := p.attributeBar(start, eol); bar >= 0 {
		c.Attributes = p.section(start, bar)
		start = bar + 1
	}
	c.Content = p.section(start, eol)
	return c
}

// cells splits a cell line at "||" (and "!!" on heading lines) outside
// brackets. Each cell may open with attributes ended by a single "|".
func (p *parser) cells(ls, eol int, heading bool) []ast.TableCell {
	typ := ast.OrdinaryCell
	if heading {
		typ = ast.HeadingCell
	}
	var cells []ast.TableCell
	mark, start := ls, ls+1
	add := func(end int) {
		c := ast.TableCell{Pos: ast.Pos{Start: mark, End: end}, Type: typ}
		cs := start
		if bar := p.attributeBar(start, end); bar >= 0 {
			c.Attributes = p.section(start, bar)
			cs = bar + 1
		}
		c.Content = p.section(cs, end)
		cells = append(cells, c)
	}
	depth := 0
	for i := start; i < eol; i++ {
		switch {
		case strings.HasPrefix(p.text[i:eol], "[[") || strings.HasPrefix(p.text[i:eol], "{{"):
			depth++
			i++
		case strings.HasPrefix(p.text[i:eol], "]]") || strings.HasPrefix(p.text[i:eol], "}}"):
			if depth > 0 {
				depth--
			}
			i++
		case depth == 0 && (strings.HasPrefix(p.text[i:eol], "||") || heading && strings.HasPrefix(p.text[i:eol], "!!")):
			add(i)
			mark, start = i, i+2
			i++
		}
	}
	add(eol)
	return cells
}

// attributeBar returns the index of a lone "|" outside brackets separating
// attributes from content, or -1.
func (p *parser) attributeBar(start, end int) int {
	depth := 0
	for i := start; i < end; i++ {
		switch {
		case strings.HasPrefix(p.text[i:end], "[[") || strings.HasPrefix(p.text[i:end], "{{"):
			depth++
			i++
		case strings.HasPrefix(p.text[i:end], "]]") || strings.HasPrefix(p.text[i:end], "}}"):
			if depth > 0 {
				depth--
			}
			i++
		case depth == 0 && p.text[i] == '|':
			return i
		}
	}
	return -1
}
