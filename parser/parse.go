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

// Package parser implements a parser for wiki text. It takes in a string
// and outputs an *ast.Output holding the top-level nodes and the warnings
// collected along the way.
//
// Parsing never fails. Markup that cannot be recognized falls back to
// text, and a warning records the span that was given up on.
//
// Block structure is recognized at the start of a line:
//
//      #REDIRECT [[target]]        redirect (first line only)
//      == text ==                  heading
//      * # ; :                     unordered, ordered and definition lists
//      ----                        horizontal divider
//      {| ... |}                   table
//      <space>text                 preformatted text
//      <empty line>                paragraph break
//
// Inline markup is recognized anywhere:
//
//      '' ''' '''''                italic, bold and bold italic toggles
//      [[target|text]]             link, image or category
//      [http://url text]           external link
//      {{name|param|key=value}}    template
//      {{{name|default}}}          parameter
//      <tag>...</tag>, <br />      extension tags, start and end tags
//      <!-- ... -->                comment
//      &amp; &#38; &#x26;          character entity
//      __TOC__                     magic word
package parser // import "akhil.cc/wikiscope/parser"

import (
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"akhil.cc/wikiscope/ast"
)

// MustParse is like Parse but panics if the source cannot be read.
func MustParse(src io.Reader) *ast.Output {
	out, err := Parse(src)
	if err != nil {
		panic("Parse error: " + err.Error())
	}
	return out
}

// Parse reads the source and parses it with the default configuration.
// The only errors returned are those from reading src.
func Parse(src io.Reader) (*ast.Output, error) {
	b, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	return Default().Parse(string(b)), nil
}

// Parse parses wiki text. A nil configuration behaves like Default.
func (c *Configuration) Parse(text string) *ast.Output {
	if c == nil {
		c = Default()
	}
	p := &parser{cfg: c, text: text, end: len(text)}
	out := &ast.Output{Nodes: p.blocks()}
	sort.SliceStable(p.warnings, func(i, j int) bool {
		return p.warnings[i].Start < p.warnings[j].Start
	})
	out.Warnings = p.warnings
	return out
}

type parser struct {
	cfg      *Configuration
	text     string
	pos      int
	end      int
	warnings []ast.Warning
}

func (p *parser) warn(m ast.WarningMessage, start, end int) {
	p.warnings = append(p.warnings, ast.Warning{Message: m, Start: start, End: end})
}

func (p *parser) at(s string) bool {
	return strings.HasPrefix(p.text[p.pos:p.end], s)
}

// lineEnd returns the index of the newline ending the line containing i,
// or the end of the region.
func (p *parser) lineEnd(i int) int {
	if j := strings.IndexByte(p.text[i:p.end], '\n'); j >= 0 {
		return i + j
	}
	return p.end
}

// nextLine moves past the newline at eol.
func (p *parser) nextLine(eol int) {
	p.pos = eol
	if p.pos < p.end {
		p.pos++
	}
}

func (p *parser) blankLine(i int) bool {
	return strings.TrimLeft(p.text[i:p.lineEnd(i)], " \t\r") == ""
}

// within restricts parsing to text[start:end] while f runs.
func (p *parser) within(start, end int, f func()) {
	pos, limit := p.pos, p.end
	p.pos, p.end = start, end
	f()
	p.pos, p.end = pos, limit
}

func (p *parser) textNode(start, end int) *ast.Text {
	return &ast.Text{Pos: ast.Pos{Start: start, End: end}, Value: p.text[start:end]}
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\r' }

func isListChar(c byte) bool { return c == '*' || c == '#' || c == ';' || c == ':' }

func isAlnum(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

// trim narrows [start, end) to exclude surrounding whitespace.
func (p *parser) trim(start, end int) (int, int) {
	for start < end && isSpace(p.text[start]) {
		start++
	}
	for end > start && isSpace(p.text[end-1]) {
		end--
	}
	return start, end
}

// section parses the trimmed region as inline text. The result is never
// nil, so present-but-empty sections can be told apart from absent ones.
func (p *parser) section(start, end int) []ast.Node {
	start, end = p.trim(start, end)
	nodes := []ast.Node{}
	p.within(start, end, func() {
		nodes = append(nodes, p.inline(nil)...)
	})
	return nodes
}

func nonNil(nodes []ast.Node) []ast.Node {
	if nodes == nil {
		return []ast.Node{}
	}
	return nodes
}

func (p *parser) blocks() []ast.Node {
	var nodes []ast.Node
	if r := p.redirect(); r != nil {
		nodes = append(nodes, r)
	}
	for p.pos < p.end {
		switch c := p.text[p.pos]; {
		case p.blankLine(p.pos):
			if n := p.paragraphBreak(); n != nil {
				nodes = append(nodes, n)
			}
		case c == '=':
			if h := p.heading(); h != nil {
				nodes = append(nodes, h)
			} else {
				nodes = append(nodes, p.paragraph()...)
			}
		case isListChar(c):
			nodes = append(nodes, p.list()...)
		case p.at("----"):
			nodes = append(nodes, p.divider()...)
		case p.at("{|"):
			nodes = append(nodes, p.table())
		case c == ' ':
			nodes = append(nodes, p.preformatted())
		default:
			nodes = append(nodes, p.paragraph()...)
		}
	}
	return nodes
}

// blockStart reports whether the line starting at i opens a block, which
// ends the paragraph before it.
func (p *parser) blockStart(i int) bool {
	if p.blankLine(i) {
		return true
	}
	rest := p.text[i:p.end]
	switch c := rest[0]; {
	case c == ' ' || isListChar(c):
		return true
	case c == '=':
		_, ok := p.headingLine(i)
		return ok
	}
	return strings.HasPrefix(rest, "----") || strings.HasPrefix(rest, "{|")
}

// redirect = redirect_word [ ":" ] "[[" target [ "|" text ] "]]" .
func (p *parser) redirect() ast.Node {
	for _, word := range p.cfg.RedirectMagicWords {
		if !hasPrefixFold(p.text, word) {
			continue
		}
		eol := p.lineEnd(0)
		i := len(word)
		for i < eol && (isSpace(p.text[i]) || p.text[i] == ':') {
			i++
		}
		if !strings.HasPrefix(p.text[i:eol], "[[") {
			return nil
		}
		rb := strings.Index(p.text[i:eol], "]]")
		if rb < 0 {
			return nil
		}
		rb += i
		target := p.text[i+2 : rb]
		if bar := strings.IndexByte(target, '|'); bar >= 0 {
			target = target[:bar]
		}
		target = strings.TrimSpace(target)
		if target == "" || strings.ContainsAny(target, "[]{}<>") {
			return nil
		}
		end := rb + 2
		if strings.TrimSpace(p.text[end:eol]) != "" {
			p.warn(ast.UselessTextInRedirect, end, eol)
		}
		p.nextLine(eol)
		return &ast.Redirect{Pos: ast.Pos{Start: 0, End: end}, Target: target}
	}
	return nil
}

func (p *parser) paragraph() []ast.Node {
	nodes := p.inline(p.paragraphEnds)
	if p.pos < p.end && p.text[p.pos] == '\n' {
		p.pos++
	}
	return nodes
}

// paragraphEnds stops a paragraph at a newline followed by a block start
// or the end of the text. Other newlines are part of the paragraph text.
func (p *parser) paragraphEnds() bool {
	if p.text[p.pos] != '\n' {
		return false
	}
	next := p.pos + 1
	return next >= p.end || p.blockStart(next)
}

func (p *parser) paragraphBreak() ast.Node {
	start := p.pos
	lines := 0
	for p.pos < p.end && p.blankLine(p.pos) {
		p.nextLine(p.lineEnd(p.pos))
		lines++
	}
	if p.pos >= p.end {
		return nil
	}
	if lines > 1 {
		p.warn(ast.RepeatedEmptyLine, start, p.pos)
	}
	return &ast.ParagraphBreak{Pos: ast.Pos{Start: start, End: p.pos}}
}

type headingLine struct {
	level      int
	start, end int
	inner      [2]int
	eol        int
}

func (p *parser) headingLine(i int) (h headingLine, ok bool) {
	eol := p.lineEnd(i)
	line := strings.TrimRight(p.text[i:eol], " \t\r")
	open := 0
	for open < len(line) && line[open] == '=' {
		open++
	}
	closing := 0
	for closing < len(line) && line[len(line)-1-closing] == '=' {
		closing++
	}
	level := open
	if closing < level {
		level = closing
	}
	if level > 6 {
		level = 6
	}
	for level > 0 && 2*level > len(line) {
		level--
	}
	if level == 0 {
		return h, false
	}
	return headingLine{
		level: level,
		start: i,
		end:   i + len(line),
		inner: [2]int{i + level, i + len(line) - level},
		eol:   eol,
	}, true
}

// heading = "=" { "=" } text "=" { "=" } .
func (p *parser) heading() ast.Node {
	h, ok := p.headingLine(p.pos)
	if !ok {
		p.warn(ast.InvalidHeadingSyntax, p.pos, p.lineEnd(p.pos))
		return nil
	}
	start, end := p.trim(h.inner[0], h.inner[1])
	var nodes []ast.Node
	p.within(start, end, func() {
		nodes = p.inline(nil)
	})
	p.nextLine(h.eol)
	return &ast.Heading{Pos: ast.Pos{Start: h.start, End: h.end}, Level: h.level, Nodes: nodes}
}

func (p *parser) divider() []ast.Node {
	start := p.pos
	for p.pos < p.end && p.text[p.pos] == '-' {
		p.pos++
	}
	nodes := []ast.Node{&ast.HorizontalDivider{Pos: ast.Pos{Start: start, End: p.pos}}}
	eol := p.lineEnd(p.pos)
	if strings.TrimSpace(p.text[p.pos:eol]) == "" {
		p.nextLine(eol)
		return nodes
	}
	for isSpace(p.text[p.pos]) {
		p.pos++
	}
	return append(nodes, p.paragraph()...)
}

func (p *parser) preformatted() ast.Node {
	start := p.pos
	end := p.pos
	var nodes []ast.Node
	for p.pos < p.end && p.text[p.pos] == ' ' && !p.blankLine(p.pos) {
		eol := p.lineEnd(p.pos)
		if len(nodes) > 0 {
			nodes = append(nodes, p.textNode(p.pos-1, p.pos))
		}
		p.within(p.pos+1, eol, func() {
			nodes = append(nodes, p.inline(nil)...)
		})
		end = eol
		p.nextLine(eol)
	}
	return &ast.Preformatted{Pos: ast.Pos{Start: start, End: end}, Nodes: nodes}
}

// inline parses inline markup from the current position until stop
// reports true or the region ends. Text between recognized constructs is
// emitted as *ast.Text holding the source verbatim.
func (p *parser) inline(stop func() bool) []ast.Node {
	var nodes []ast.Node
	text := p.pos
	for p.pos < p.end {
		if stop != nil && stop() {
			break
		}
		start := p.pos
		n := p.construct()
		if n == nil {
			// constructs that fall back to text may skip past their opening
			if p.pos == start {
				p.pos++
			}
			continue
		}
		if start > text {
			nodes = append(nodes, p.textNode(text, start))
		}
		nodes = append(nodes, n)
		text = p.pos
	}
	if p.pos > text {
		nodes = append(nodes, p.textNode(text, p.pos))
	}
	return nodes
}

func (p *parser) construct() ast.Node {
	switch p.text[p.pos] {
	case '<':
		if p.at("<!--") {
			return p.comment()
		}
		return p.tag()
	case '&':
		return p.entity()
	case '\'':
		return p.quotes()
	case '{':
		if p.at("{{{") {
			if n := p.parameter(); n != nil {
				return n
			}
		}
		if p.at("{{") {
			return p.template()
		}
	case '[':
		if p.at("[[") {
			return p.link()
		}
		return p.externalLink()
	case '_':
		if p.at("__") {
			return p.magicWord()
		}
	}
	return nil
}

func (p *parser) comment() ast.Node {
	start := p.pos
	if i := strings.Index(p.text[start+4:p.end], "-->"); i >= 0 {
		p.pos = start + 4 + i + 3
	} else {
		p.warn(ast.UnterminatedComment, start, start+4)
		p.pos = p.end
	}
	return &ast.Comment{Pos: ast.Pos{Start: start, End: p.pos}}
}

func (p *parser) entity() ast.Node {
	start := p.pos
	limit := start + 34
	if limit > p.end {
		limit = p.end
	}
	semi := strings.IndexByte(p.text[start:limit], ';')
	if semi < 2 {
		return nil
	}
	name := p.text[start+1 : start+semi]
	var r rune
	if name[0] == '#' {
		digits, base := name[1:], 10
		if len(digits) > 0 && (digits[0] == 'x' || digits[0] == 'X') {
			digits, base = digits[1:], 16
		}
		n, err := strconv.ParseUint(digits, base, 32)
		if err != nil || n == 0 || !utf8.ValidRune(rune(n)) {
			return nil
		}
		r = rune(n)
	} else {
		var ok bool
		if r, ok = entities[name]; !ok {
			return nil
		}
	}
	p.pos = start + semi + 1
	return &ast.CharacterEntity{Pos: ast.Pos{Start: start, End: p.pos}, Character: r}
}

func (p *parser) quotes() ast.Node {
	start := p.pos
	n := 0
	for start+n < p.end && p.text[start+n] == '\'' {
		n++
	}
	switch {
	case n < 2:
		return nil
	case n == 4:
		// the first apostrophe is text, the rest toggles bold
		p.pos = start + 1
		return nil
	case n > 5:
		p.pos = start + n - 5
		return nil
	}
	p.pos = start + n
	pos := ast.Pos{Start: start, End: p.pos}
	switch n {
	case 2:
		return &ast.Italic{Pos: pos}
	case 3:
		return &ast.Bold{Pos: pos}
	}
	return &ast.BoldItalic{Pos: pos}
}

func (p *parser) magicWord() ast.Node {
	start := p.pos
	rest := p.text[start+2 : p.end]
	i := strings.Index(rest, "__")
	if i <= 0 || !containsFold(p.cfg.MagicWords, rest[:i]) {
		return nil
	}
	p.pos = start + 2 + i + 2
	return &ast.MagicWord{Pos: ast.Pos{Start: start, End: p.pos}}
}

// parameter = "{{{" text [ "|" text ] "}}}" .
func (p *parser) parameter() ast.Node {
	start, mark := p.pos, len(p.warnings)
	p.pos += 3
	name := p.inline(func() bool { return p.at("|") || p.at("}}}") })
	var def []ast.Node
	if p.at("|") {
		p.pos++
		def = nonNil(p.inline(func() bool { return p.at("}}}") }))
	}
	if !p.at("}}}") {
		// the caller retries the opening as a template
		p.warnings = p.warnings[:mark]
		p.pos = start
		return nil
	}
	p.pos += 3
	return &ast.Parameter{Pos: ast.Pos{Start: start, End: p.pos}, Name: nonNil(name), Default: def}
}

// template = "{{" text { "|" [ text "=" ] text } "}}" .
func (p *parser) template() ast.Node {
	start, mark := p.pos, len(p.warnings)
	p.pos += 2
	t := &ast.Template{
		Name: nonNil(p.inline(func() bool { return p.at("|") || p.at("}}") })),
	}
	for p.pos < p.end && p.text[p.pos] == '|' {
		p.pos++
		param := ast.TemplateParameter{Pos: ast.Pos{Start: p.pos}}
		value := p.inline(func() bool { return p.at("|") || p.at("}}") || p.at("=") })
		if p.at("=") {
			p.pos++
			param.Name = nonNil(value)
			value = p.inline(func() bool { return p.at("|") || p.at("}}") })
		}
		param.Value = nonNil(value)
		param.End = p.pos
		t.Parameters = append(t.Parameters, param)
	}
	if !p.at("}}") {
		p.warnings = p.warnings[:mark]
		p.warn(ast.UnterminatedTemplate, start, start+2)
		p.pos = start + 2
		return nil
	}
	p.pos += 2
	t.Pos = ast.Pos{Start: start, End: p.pos}
	return t
}

// link = "[[" target [ "|" text ] "]]" .
func (p *parser) link() ast.Node {
	start := p.pos
	invalid := func() ast.Node {
		p.warn(ast.InvalidLinkSyntax, start, start+2)
		p.pos = start + 2
		return nil
	}
	i := start + 2
	for i < p.end && !strings.ContainsRune("|]\n[{}<>", rune(p.text[i])) {
		i++
	}
	if i >= p.end || p.text[i] != '|' && !strings.HasPrefix(p.text[i:p.end], "]]") {
		return invalid()
	}
	ts, te := p.trim(start+2, i)
	target := p.text[ts:te]
	if target == "" {
		return invalid()
	}
	var text []ast.Node
	p.pos = i
	if p.text[i] == '|' {
		mark := len(p.warnings)
		p.pos++
		text = nonNil(p.inline(func() bool { return p.at("]]") || p.text[p.pos] == '\n' }))
		if !p.at("]]") {
			p.warnings = p.warnings[:mark]
			return invalid()
		}
	}
	p.pos += 2
	pos := ast.Pos{Start: start, End: p.pos}
	ns, rest := namespace(target)
	switch {
	case target[0] != ':' && containsFold(p.cfg.CategoryNamespaces, ns):
		return &ast.Category{Pos: pos, Target: rest, Ordinal: nonNil(text)}
	case target[0] != ':' && containsFold(p.cfg.FileNamespaces, ns):
		return &ast.Image{Pos: pos, Target: target, Text: nonNil(text)}
	}
	if text == nil {
		text = []ast.Node{p.textNode(ts, te)}
	}
	return &ast.Link{Pos: pos, Target: target, Text: text}
}

// external_link = "[" protocol text "]" .
func (p *parser) externalLink() ast.Node {
	start := p.pos
	rest := p.text[start+1 : p.end]
	known := false
	for _, proto := range p.cfg.Protocols {
		if hasPrefixFold(rest, proto) {
			known = true
			break
		}
	}
	if !known {
		return nil
	}
	mark := len(p.warnings)
	p.pos++
	nodes := p.inline(func() bool { c := p.text[p.pos]; return c == ']' || c == '\n' })
	if !p.at("]") {
		p.warnings = p.warnings[:mark]
		p.pos = start + 1
		return nil
	}
	p.pos++
	return &ast.ExternalLink{Pos: ast.Pos{Start: start, End: p.pos}, Nodes: nonNil(nodes)}
}

// tag = "<" [ "/" ] name { attribute } [ "/" ] ">" .
func (p *parser) tag() ast.Node {
	start := p.pos
	i := start + 1
	closing := i < p.end && p.text[i] == '/'
	if closing {
		i++
	}
	nameStart := i
	for i < p.end && isAlnum(p.text[i]) {
		i++
	}
	if i == nameStart {
		return nil
	}
	name := strings.ToLower(p.text[nameStart:i])
	raw, extension := p.cfg.ExtensionTags[name]
	if !extension && !containsFold(p.cfg.HTMLTags, name) {
		p.warn(ast.UnrecognizedTagName, start, i)
		p.pos = i
		return nil
	}
	gt := strings.IndexAny(p.text[i:p.end], "<>")
	if gt < 0 || p.text[i+gt] != '>' {
		p.warn(ast.InvalidTagSyntax, start, i)
		p.pos = i
		return nil
	}
	end := i + gt + 1
	pos := ast.Pos{Start: start, End: end}
	p.pos = end
	switch {
	case closing:
		if extension {
			p.warn(ast.UnexpectedEndTag, start, end)
		}
		return &ast.EndTag{Pos: pos, Name: name}
	case !extension:
		return &ast.StartTag{Pos: pos, Name: name}
	case p.text[end-2] == '/':
		return &ast.Tag{Pos: pos, Name: name}
	}
	closeStart, closeEnd := p.endTag(name, end)
	if closeStart < 0 {
		p.warn(ast.MissingEndTag, start, end)
		return &ast.StartTag{Pos: pos, Name: name}
	}
	var nodes []ast.Node
	if raw {
		if closeStart > end {
			nodes = []ast.Node{p.textNode(end, closeStart)}
		}
	} else {
		p.within(end, closeStart, func() {
			nodes = p.inline(nil)
		})
	}
	p.pos = closeEnd
	return &ast.Tag{Pos: ast.Pos{Start: start, End: closeEnd}, Name: name, Nodes: nodes}
}

// endTag finds the end tag closing name at or after from.
func (p *parser) endTag(name string, from int) (start, end int) {
	lower := strings.ToLower(p.text[from:p.end])
	needle := "</" + name
	for off := 0; ; {
		j := strings.Index(lower[off:], needle)
		if j < 0 {
			return -1, -1
		}
		s := from + off + j
		k := s + len(needle)
		for k < p.end && isSpace(p.text[k]) {
			k++
		}
		if k < p.end && p.text[k] == '>' {
			return s, k + 1
		}
		off += j + len(needle)
	}
}
