// Package ast declares the types used to represent the syntax tree of
// wiki text.
//
// Every node carries the byte offsets of the source text it was parsed
// from. Optional node lists use nil to mean absent; a present but empty
// list is a non-nil slice of length zero.
package ast // import "akhil.cc/wikiscope/ast"

//go:generate sumgen Node = *Bold | *BoldItalic | *Category | *CharacterEntity | *Comment | *DefinitionList | *EndTag | *ExternalLink | *Heading | *HorizontalDivider | *Image | *Italic | *Link | *MagicWord | *OrderedList | *ParagraphBreak | *Parameter | *Preformatted | *Redirect | *StartTag | *Table | *Tag | *Text | *Template | *UnorderedList
type Node interface {
	Span() (start, end int)
	node()
}

// Output is the result of parsing a wiki text.
type Output struct {
	Nodes    []Node
	Warnings []Warning
}

// Pos is the byte span shared by every node and sub-record.
type Pos struct {
	Start int
	End   int
}

func (p Pos) Span() (start, end int) { return p.Start, p.End }

type Bold struct{ Pos }

type BoldItalic struct{ Pos }

type Category struct {
	Pos
	Target  string
	Ordinal []Node
}

type CharacterEntity struct {
	Pos
	Character rune
}

type Comment struct{ Pos }

type DefinitionList struct {
	Pos
	Items []DefinitionListItem
}

type EndTag struct {
	Pos
	Name string
}

type ExternalLink struct {
	Pos
	Nodes []Node
}

type Heading struct {
	Pos
	Level int
	Nodes []Node
}

type HorizontalDivider struct{ Pos }

type Image struct {
	Pos
	Target string
	Text   []Node
}

type Italic struct{ Pos }

type Link struct {
	Pos
	Target string
	Text   []Node
}

type MagicWord struct{ Pos }

type OrderedList struct {
	Pos
	Items []ListItem
}

type ParagraphBreak struct{ Pos }

type Parameter struct {
	Pos
	Name []Node
	// Default is nil when the parameter has no default.
	Default []Node
}

type Preformatted struct {
	Pos
	Nodes []Node
}

type Redirect struct {
	Pos
	Target string
}

type StartTag struct {
	Pos
	Name string
}

type Table struct {
	Pos
	Attributes []Node
	Captions   []TableCaption
	Rows       []TableRow
}

type Tag struct {
	Pos
	Name  string
	Nodes []Node
}

type Text struct {
	Pos
	Value string
}

type Template struct {
	Pos
	Name       []Node
	Parameters []TemplateParameter
}

type UnorderedList struct {
	Pos
	Items []ListItem
}

func (*Bold) node()              {}
func (*BoldItalic) node()        {}
func (*Category) node()          {}
func (*CharacterEntity) node()   {}
func (*Comment) node()           {}
func (*DefinitionList) node()    {}
func (*EndTag) node()            {}
func (*ExternalLink) node()      {}
func (*Heading) node()           {}
func (*HorizontalDivider) node() {}
func (*Image) node()             {}
func (*Italic) node()            {}
func (*Link) node()              {}
func (*MagicWord) node()         {}
func (*OrderedList) node()       {}
func (*ParagraphBreak) node()    {}
func (*Parameter) node()         {}
func (*Preformatted) node()      {}
func (*Redirect) node()          {}
func (*StartTag) node()          {}
func (*Table) node()             {}
func (*Tag) node()               {}
func (*Text) node()              {}
func (*Template) node()          {}
func (*UnorderedList) node()     {}

type DefinitionListItemType int

const (
	DetailsItem DefinitionListItemType = iota
	TermItem
)

type DefinitionListItem struct {
	Pos
	Type  DefinitionListItemType
	Nodes []Node
}

type ListItem struct {
	Pos
	Nodes []Node
}

type TableCaption struct {
	Pos
	// Attributes is nil when the caption has no attribute section.
	Attributes []Node
	Content    []Node
}

type TableRow struct {
	Pos
	Attributes []Node
	Cells      []TableCell
}

type TableCellType int

const (
	OrdinaryCell TableCellType = iota
	HeadingCell
)

type TableCell struct {
	Pos
	Type TableCellType
	// Attributes is nil when the cell has no attribute section.
	Attributes []Node
	Content    []Node
}

type TemplateParameter struct {
	Pos
	// Name is nil for positional parameters.
	Name  []Node
	Value []Node
}
