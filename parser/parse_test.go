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

// Tests for parse.go
package parser_test

import (
	"reflect"
	"strings"
	"testing"

	"akhil.cc/wikiscope/ast"
	"akhil.cc/wikiscope/parser"
	"github.com/sanity-io/litter"
)

type smallcase struct {
	in   string
	want ast.Output
}

var litCfg = litter.Options{
	Compact:           true,
	StripPackageNames: false,
	HidePrivateFields: false,
	Separator:         " ",
}

func pos(start, end int) ast.Pos { return ast.Pos{Start: start, End: end} }

func text(start, end int, v string) *ast.Text {
	return &ast.Text{Pos: pos(start, end), Value: v}
}

func check(t *testing.T, cases []smallcase) {
	t.Helper()
	for i, test := range cases {
		got := parser.MustParse(strings.NewReader(test.in))
		if !reflect.DeepEqual(test.want, *got) {
			t.Errorf("case %d, in %q,\nwant %s,\ngot %s", i, test.in, litCfg.Sdump(test.want), litCfg.Sdump(*got))
		}
	}
}

var inlineSmall = []smallcase{
	{"", ast.Output{}},
	{"Hello, [[World]]!", ast.Output{Nodes: []ast.Node{
		text(0, 7, "Hello, "),
		&ast.Link{Pos: pos(7, 16), Target: "World", Text: []ast.Node{text(9, 14, "World")}},
		text(16, 17, "!"),
	}}},
	{"[[a|b c]]", ast.Output{Nodes: []ast.Node{
		&ast.Link{Pos: pos(0, 9), Target: "a", Text: []ast.Node{text(4, 7, "b c")}},
	}}},
	{"''a'' '''b'''", ast.Output{Nodes: []ast.Node{
		&ast.Italic{Pos: pos(0, 2)},
		text(2, 3, "a"),
		&ast.Italic{Pos: pos(3, 5)},
		text(5, 6, " "),
		&ast.Bold{Pos: pos(6, 9)},
		text(9, 10, "b"),
		&ast.Bold{Pos: pos(10, 13)},
	}}},
	{"'''''x", ast.Output{Nodes: []ast.Node{
		&ast.BoldItalic{Pos: pos(0, 5)},
		text(5, 6, "x"),
	}}},
	{"&amp;&#65;&bogus;", ast.Output{Nodes: []ast.Node{
		&ast.CharacterEntity{Pos: pos(0, 5), Character: '&'},
		&ast.CharacterEntity{Pos: pos(5, 10), Character: 'A'},
		text(10, 17, "&bogus;"),
	}}},
	{"a<!-- c -->b", ast.Output{Nodes: []ast.Node{
		text(0, 1, "a"),
		&ast.Comment{Pos: pos(1, 11)},
		text(11, 12, "b"),
	}}},
	{"__TOC__", ast.Output{Nodes: []ast.Node{&ast.MagicWord{Pos: pos(0, 7)}}}},
	{"__NOPE__", ast.Output{Nodes: []ast.Node{text(0, 8, "__NOPE__")}}},
	{"[http://x.org ex]", ast.Output{Nodes: []ast.Node{
		&ast.ExternalLink{Pos: pos(0, 17), Nodes: []ast.Node{text(1, 16, "http://x.org ex")}},
	}}},
	{"[[Category:Birds|x]]", ast.Output{Nodes: []ast.Node{
		&ast.Category{Pos: pos(0, 20), Target: "Birds", Ordinal: []ast.Node{text(17, 18, "x")}},
	}}},
	{"[[File:A.png|thumb]]", ast.Output{Nodes: []ast.Node{
		&ast.Image{Pos: pos(0, 20), Target: "File:A.png", Text: []ast.Node{text(13, 18, "thumb")}},
	}}},
	{"[[:Category:Birds]]", ast.Output{Nodes: []ast.Node{
		&ast.Link{Pos: pos(0, 19), Target: ":Category:Birds", Text: []ast.Node{text(2, 17, ":Category:Birds")}},
	}}},
	{"{{tpl|a|k=v}}", ast.Output{Nodes: []ast.Node{
		&ast.Template{Pos: pos(0, 13), Name: []ast.Node{text(2, 5, "tpl")}, Parameters: []ast.TemplateParameter{
			{Pos: pos(6, 7), Value: []ast.Node{text(6, 7, "a")}},
			{Pos: pos(8, 11), Name: []ast.Node{text(8, 9, "k")}, Value: []ast.Node{text(10, 11, "v")}},
		}},
	}}},
	{"{{{p|d}}}", ast.Output{Nodes: []ast.Node{
		&ast.Parameter{Pos: pos(0, 9), Name: []ast.Node{text(3, 4, "p")}, Default: []ast.Node{text(5, 6, "d")}},
	}}},
	{"{{{p}}}", ast.Output{Nodes: []ast.Node{
		&ast.Parameter{Pos: pos(0, 7), Name: []ast.Node{text(3, 4, "p")}},
	}}},
}

func TestInline(t *testing.T) { check(t, inlineSmall) }

var tagSmall = []smallcase{
	{"<ref>note</ref>", ast.Output{Nodes: []ast.Node{
		&ast.Tag{Pos: pos(0, 15), Name: "ref", Nodes: []ast.Node{text(5, 9, "note")}},
	}}},
	{"<nowiki>''x''</nowiki>", ast.Output{Nodes: []ast.Node{
		&ast.Tag{Pos: pos(0, 22), Name: "nowiki", Nodes: []ast.Node{text(8, 13, "''x''")}},
	}}},
	{"<references />", ast.Output{Nodes: []ast.Node{
		&ast.Tag{Pos: pos(0, 14), Name: "references"},
	}}},
	{"<b>x</b>", ast.Output{Nodes: []ast.Node{
		&ast.StartTag{Pos: pos(0, 3), Name: "b"},
		text(3, 4, "x"),
		&ast.EndTag{Pos: pos(4, 8), Name: "b"},
	}}},
	{"<ref>open", ast.Output{
		Nodes: []ast.Node{
			&ast.StartTag{Pos: pos(0, 5), Name: "ref"},
			text(5, 9, "open"),
		},
		Warnings: []ast.Warning{{Message: ast.MissingEndTag, Start: 0, End: 5}},
	}},
	{"</ref>", ast.Output{
		Nodes:    []ast.Node{&ast.EndTag{Pos: pos(0, 6), Name: "ref"}},
		Warnings: []ast.Warning{{Message: ast.UnexpectedEndTag, Start: 0, End: 6}},
	}},
	{"<foo>", ast.Output{
		Nodes:    []ast.Node{text(0, 5, "<foo>")},
		Warnings: []ast.Warning{{Message: ast.UnrecognizedTagName, Start: 0, End: 4}},
	}},
}

func TestTags(t *testing.T) { check(t, tagSmall) }

var blockSmall = []smallcase{
	{"== Hi ==\n", ast.Output{Nodes: []ast.Node{
		&ast.Heading{Pos: pos(0, 8), Level: 2, Nodes: []ast.Node{text(3, 5, "Hi")}},
	}}},
	{"=x==", ast.Output{Nodes: []ast.Node{
		&ast.Heading{Pos: pos(0, 4), Level: 1, Nodes: []ast.Node{text(1, 3, "x=")}},
	}}},
	{"#REDIRECT [[Target]]", ast.Output{Nodes: []ast.Node{
		&ast.Redirect{Pos: pos(0, 20), Target: "Target"},
	}}},
	{"a\n\n\nb", ast.Output{
		Nodes: []ast.Node{
			text(0, 1, "a"),
			&ast.ParagraphBreak{Pos: pos(2, 4)},
			text(4, 5, "b"),
		},
		Warnings: []ast.Warning{{Message: ast.RepeatedEmptyLine, Start: 2, End: 4}},
	}},
	{"a\nb", ast.Output{Nodes: []ast.Node{text(0, 3, "a\nb")}}},
	{"----\n", ast.Output{Nodes: []ast.Node{&ast.HorizontalDivider{Pos: pos(0, 4)}}}},
	{" pre\n", ast.Output{Nodes: []ast.Node{
		&ast.Preformatted{Pos: pos(0, 4), Nodes: []ast.Node{text(1, 4, "pre")}},
	}}},
	{"* a\n* b\n", ast.Output{Nodes: []ast.Node{
		&ast.UnorderedList{Pos: pos(0, 7), Items: []ast.ListItem{
			{Pos: pos(1, 3), Nodes: []ast.Node{text(2, 3, "a")}},
			{Pos: pos(5, 7), Nodes: []ast.Node{text(6, 7, "b")}},
		}},
	}}},
	{"# a", ast.Output{Nodes: []ast.Node{
		&ast.OrderedList{Pos: pos(0, 3), Items: []ast.ListItem{
			{Pos: pos(1, 3), Nodes: []ast.Node{text(2, 3, "a")}},
		}},
	}}},
	{"*a\n**b", ast.Output{Nodes: []ast.Node{
		&ast.UnorderedList{Pos: pos(0, 6), Items: []ast.ListItem{
			{Pos: pos(1, 6), Nodes: []ast.Node{
				text(1, 2, "a"),
				&ast.UnorderedList{Pos: pos(4, 6), Items: []ast.ListItem{
					{Pos: pos(5, 6), Nodes: []ast.Node{text(5, 6, "b")}},
				}},
			}},
		}},
	}}},
	{";t:d", ast.Output{Nodes: []ast.Node{
		&ast.DefinitionList{Pos: pos(0, 4), Items: []ast.DefinitionListItem{
			{Pos: pos(1, 2), Type: ast.TermItem, Nodes: []ast.Node{text(1, 2, "t")}},
			{Pos: pos(3, 4), Type: ast.DetailsItem, Nodes: []ast.Node{text(3, 4, "d")}},
		}},
	}}},
}

func TestBlocks(t *testing.T) { check(t, blockSmall) }

var tableSmall = []smallcase{
	{"{|\n|a||b\n|}", ast.Output{Nodes: []ast.Node{
		&ast.Table{Pos: pos(0, 11), Attributes: []ast.Node{}, Rows: []ast.TableRow{{
			Pos:        pos(3, 8),
			Attributes: []ast.Node{},
			Cells: []ast.TableCell{
				{Pos: pos(3, 5), Type: ast.OrdinaryCell, Content: []ast.Node{text(4, 5, "a")}},
				{Pos: pos(5, 8), Type: ast.OrdinaryCell, Content: []ast.Node{text(7, 8, "b")}},
			},
		}}},
	}}},
	{"{|\n|+c\n|-\n!h\n|}", ast.Output{Nodes: []ast.Node{
		&ast.Table{
			Pos:        pos(0, 15),
			Attributes: []ast.Node{},
			Captions:   []ast.TableCaption{{Pos: pos(3, 6), Content: []ast.Node{text(5, 6, "c")}}},
			Rows: []ast.TableRow{{
				Pos:        pos(7, 12),
				Attributes: []ast.Node{},
				Cells: []ast.TableCell{
					{Pos: pos(10, 12), Type: ast.HeadingCell, Content: []ast.Node{text(11, 12, "h")}},
				},
			}},
		},
	}}},
	{"{|\nx", ast.Output{
		Nodes: []ast.Node{&ast.Table{Pos: pos(0, 2), Attributes: []ast.Node{}}},
		Warnings: []ast.Warning{
			{Message: ast.UnterminatedTable, Start: 0, End: 2},
			{Message: ast.StrayTextInTable, Start: 3, End: 4},
		},
	}},
}

func TestTables(t *testing.T) { check(t, tableSmall) }

var warningSmall = []smallcase{
	{"[[", ast.Output{
		Nodes:    []ast.Node{text(0, 2, "[[")},
		Warnings: []ast.Warning{{Message: ast.InvalidLinkSyntax, Start: 0, End: 2}},
	}},
	{"{{x", ast.Output{
		Nodes:    []ast.Node{text(0, 3, "{{x")},
		Warnings: []ast.Warning{{Message: ast.UnterminatedTemplate, Start: 0, End: 2}},
	}},
	{"<!-- x", ast.Output{
		Nodes:    []ast.Node{&ast.Comment{Pos: pos(0, 6)}},
		Warnings: []ast.Warning{{Message: ast.UnterminatedComment, Start: 0, End: 4}},
	}},
	{"#REDIRECT [[T]] x", ast.Output{
		Nodes:    []ast.Node{&ast.Redirect{Pos: pos(0, 15), Target: "T"}},
		Warnings: []ast.Warning{{Message: ast.UselessTextInRedirect, Start: 15, End: 17}},
	}},
}

func TestWarnings(t *testing.T) { check(t, warningSmall) }

// TestSpans checks that every node of a mixed document lies within the
// input and that spans never run backwards.
func TestSpans(t *testing.T) {
	in := "#REDIRECT [[Main]]\n== a ==\n* ''b'' [[c|d]]\n#: e\n{| x\n|+ f\n|-\n! g !! h\n| i || [[j|k]]\n|}\n l\n----\n{{m|n=o}} &nbsp; <ref>p</ref>"
	out := parser.MustParse(strings.NewReader(in))
	ast.Walk(out.Nodes, func(n ast.Node) bool {
		start, end := n.Span()
		if start < 0 || start > end || end > len(in) {
			t.Errorf("bad span %d:%d for %s", start, end, litCfg.Sdump(n))
		}
		return true
	})
	for _, w := range out.Warnings {
		if w.Start < 0 || w.Start > w.End || w.End > len(in) {
			t.Errorf("bad warning %v", w)
		}
	}
}

func TestConfiguration(t *testing.T) {
	var cfg *parser.Configuration
	if got := cfg.Parse("__TOC__"); len(got.Nodes) != 1 {
		t.Errorf("nil configuration: got %s", litCfg.Sdump(got))
	}
	empty := &parser.Configuration{}
	got := empty.Parse("__TOC__ [[Category:x]]")
	want := []ast.Node{
		text(0, 8, "__TOC__ "),
		&ast.Link{Pos: pos(8, 22), Target: "Category:x", Text: []ast.Node{text(10, 20, "Category:x")}},
	}
	if !reflect.DeepEqual(want, got.Nodes) {
		t.Errorf("empty configuration,\nwant %s,\ngot %s", litCfg.Sdump(want), litCfg.Sdump(got.Nodes))
	}
}
