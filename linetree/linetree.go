// Package linetree holds the data model shared by the line classifier
// (C4), the indent-to-tree builder (C5), and the grammar engine (C6):
// LineToken/LineType and the LineContainer sum type.
package linetree

import (
	"strings"

	lextoken "github.com/txxt-lang/lex/token"
)

// LineType classifies one logical line.
type LineType int

const (
	ParagraphLine LineType = iota
	SubjectLine
	ListLine
	SubjectOrListItemLine
	DialogLine
	AnnotationStartLine
	AnnotationEndLine
	BlankLineType
	IndentType
	DedentType
	DocumentStart
	DataLine
)

var lineTypeNames = [...]string{
	"paragraph-line", "subject-line", "list-line", "subject-or-list-item-line",
	"dialog-line", "annotation-start-line", "annotation-end-line", "blank-line",
	"indent", "dedent", "document-start", "data-line",
}

// Symbol returns the grammar alphabet's angle-bracketed spelling for this
// line type, e.g. "<subject-line>".
func (lt LineType) Symbol() string {
	if int(lt) < 0 || int(lt) >= len(lineTypeNames) {
		return "<unknown>"
	}
	return "<" + lineTypeNames[lt] + ">"
}

func (lt LineType) String() string { return lt.Symbol() }

// LineToken groups the tokens of one logical line with its classification.
type LineToken struct {
	Type   LineType
	Tokens []lextoken.Token
	Loc    lextoken.Location
}

// Text concatenates this line's tokens' literal text, in order.
func (lt LineToken) Text() string {
	var b strings.Builder
	for _, t := range lt.Tokens {
		b.WriteString(t.Text)
	}
	return b.String()
}

// ContainerSymbol is the alphabet literal a nested Container contributes.
const ContainerSymbol = "<container>"

// LineContainer is a sum type: either a flat LineToken or a Container
// wrapping the lines one indentation level deeper.
type LineContainer struct {
	Token     *LineToken       // non-nil for a flat line
	Container []LineContainer  // non-nil (possibly empty) for a container
}

// IsContainer reports whether this node wraps nested children.
func (lc LineContainer) IsContainer() bool { return lc.Token == nil }

// Symbol returns the alphabet symbol this node contributes to its parent's
// matched sequence.
func (lc LineContainer) Symbol() string {
	if lc.IsContainer() {
		return ContainerSymbol
	}
	return lc.Token.Type.Symbol()
}

// Line wraps a LineToken as a LineContainer leaf.
func Line(lt LineToken) LineContainer {
	t := lt
	return LineContainer{Token: &t}
}

// Nested wraps children as a Container node.
func Nested(children []LineContainer) LineContainer {
	if children == nil {
		children = []LineContainer{}
	}
	return LineContainer{Container: children}
}

// Alphabet concatenates the symbols of a sequence of children into the
// string the grammar engine's patterns are matched against.
func Alphabet(children []LineContainer) string {
	out := make([]byte, 0, len(children)*12)
	for _, c := range children {
		out = append(out, c.Symbol()...)
	}
	return string(out)
}
