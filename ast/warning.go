package ast

import "fmt"

// Warning is a recoverable problem found while parsing. The span covers
// the source text the parser gave up on.
type Warning struct {
	Message WarningMessage
	Start   int
	End     int
}

func (w Warning) String() string {
	return fmt.Sprintf("%d:%d: %s", w.Start, w.End, w.Message.Message())
}

type WarningMessage int

const (
	InvalidCharacter WarningMessage = iota
	InvalidHeadingSyntax
	InvalidLinkSyntax
	InvalidParameterSyntax
	InvalidTagSyntax
	MissingEndTag
	RepeatedEmptyLine
	StrayTextInTable
	UnexpectedEndTag
	UnrecognizedTagName
	UnterminatedComment
	UnterminatedTable
	UnterminatedTemplate
	UselessTextInRedirect
)

var warningText = [...]string{
	InvalidCharacter:       "Invalid character.",
	InvalidHeadingSyntax:   "Invalid heading syntax.",
	InvalidLinkSyntax:      "Invalid link syntax.",
	InvalidParameterSyntax: "Invalid parameter syntax.",
	InvalidTagSyntax:       "Invalid tag syntax.",
	MissingEndTag:          "Missing end tag.",
	RepeatedEmptyLine:      "Repeated empty line.",
	StrayTextInTable:       "Stray text in table.",
	UnexpectedEndTag:       "Unexpected end tag.",
	UnrecognizedTagName:    "Unrecognized tag name.",
	UnterminatedComment:    "Comment is not terminated.",
	UnterminatedTable:      "Table is not terminated.",
	UnterminatedTemplate:   "Template is not terminated.",
	UselessTextInRedirect:  "Useless text in redirect.",
}

// Message returns the human-readable description of the warning.
func (m WarningMessage) Message() string {
	if m < 0 || int(m) >= len(warningText) {
		return fmt.Sprintf("WarningMessage(%d)", int(m))
	}
	return warningText[m]
}
