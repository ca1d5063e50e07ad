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

import "strings"

// Configuration holds the site-specific vocabulary the parser recognizes.
// The zero value recognizes nothing beyond the core markup; use Default
// for the vocabulary of a stock MediaWiki installation.
type Configuration struct {
	// CategoryNamespaces and FileNamespaces are matched case-insensitively
	// against the part of a link target before the first colon.
	CategoryNamespaces []string
	FileNamespaces     []string

	// ExtensionTags maps a tag name to whether its content is raw text
	// (true) or parsed as wiki text (false).
	ExtensionTags map[string]bool

	// HTMLTags are rendered as standalone start and end tags.
	HTMLTags []string

	// MagicWords are the names allowed between double underscores.
	MagicWords []string

	// Protocols are the URL prefixes that open an external link.
	Protocols []string

	// RedirectMagicWords open a redirect at the start of the text.
	RedirectMagicWords []string
}

// Default returns the configuration of a stock MediaWiki installation.
func Default() *Configuration {
	return &Configuration{
		CategoryNamespaces: []string{"category"},
		FileNamespaces:     []string{"file", "image"},
		ExtensionTags: map[string]bool{
			"gallery":         true,
			"includeonly":     false,
			"math":            true,
			"noinclude":       false,
			"nowiki":          true,
			"onlyinclude":     false,
			"poem":            false,
			"pre":             true,
			"ref":             false,
			"references":      false,
			"score":           true,
			"source":          true,
			"syntaxhighlight": true,
		},
		HTMLTags: []string{
			"abbr", "b", "bdi", "big", "blockquote", "br", "center", "cite", "code",
			"dd", "del", "dfn", "div", "dl", "dt", "em", "font", "h1", "h2", "h3",
			"h4", "h5", "h6", "hr", "i", "ins", "kbd", "li", "mark", "ol", "p", "q",
			"rp", "rt", "ruby", "s", "samp", "small", "span", "strike", "strong",
			"sub", "sup", "table", "td", "th", "tr", "tt", "u", "ul", "var", "wbr",
		},
		MagicWords: []string{
			"DISAMBIG", "EXPECTUNUSEDCATEGORY", "FORCETOC", "HIDDENCAT", "INDEX",
			"NEWSECTIONLINK", "NOCC", "NOCONTENTCONVERT", "NOEDITSECTION",
			"NOGALLERY", "NOINDEX", "NONEWSECTIONLINK", "NOTC", "NOTITLECONVERT",
			"NOTOC", "STATICREDIRECT", "TOC",
		},
		Protocols: []string{
			"//", "ftp://", "git://", "http://", "https://", "irc://", "ircs://",
			"mailto:", "news:", "sftp://", "ssh://",
		},
		RedirectMagicWords: []string{"#REDIRECT"},
	}
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// namespace splits a link target at its first colon and reports the
// lowercased namespace.
func namespace(target string) (ns, rest string) {
	i := strings.IndexByte(target, ':')
	if i < 0 {
		return "", target
	}
	return strings.ToLower(strings.TrimSpace(target[:i])), strings.TrimSpace(target[i+1:])
}

var entities = map[string]rune{
	"amp":    '&',
	"apos":   '\'',
	"bull":   '•',
	"cent":   '¢',
	"copy":   '©',
	"deg":    '°',
	"euro":   '€',
	"gt":     '>',
	"hellip": '…',
	"laquo":  '«',
	"larr":   '←',
	"ldquo":  '“',
	"lsquo":  '‘',
	"lt":     '<',
	"mdash":  '—',
	"middot": '·',
	"nbsp":   '\u00a0',
	"ndash":  '–',
	"para":   '¶',
	"pound":  '£',
	"quot":   '"',
	"raquo":  '»',
	"rarr":   '→',
	"rdquo":  '”',
	"reg":    '®',
	"rsquo":  '’',
	"sect":   '§',
	"shy":    '\u00ad',
	"thinsp": '\u2009',
	"times":  '×',
	"trade":  '™',
	"yen":    '¥',
}
