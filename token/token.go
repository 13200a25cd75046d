// Package token defines the lexical alphabet shared by every pipeline stage:
// byte ranges, source positions, and the tagged Token variant produced by
// the tokenizer (lexer package) and reshaped by the transform stages.
package token

import "fmt"

// Position is a 0-based (line, column) pair.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Location is a half-open [Start, End) span of Positions.
type Location struct {
	Start Position
	End   Position
}

// Range is a half-open [Start, End) span of byte offsets into the source.
type Range struct {
	Start int
	End   int
}

// Len reports the number of bytes the range covers.
func (r Range) Len() int { return r.End - r.Start }

// Kind tags the variant a Token holds.
type Kind int

const (
	Text Kind = iota
	Number
	Whitespace
	Indentation
	Newline
	BlankLine
	Indent
	Dedent
	Dash
	Period
	Colon
	Comma
	Quote
	Equals
	OpenParen
	CloseParen
	LexMarker
)

var kindNames = [...]string{
	"Text", "Number", "Whitespace", "Indentation", "Newline", "BlankLine",
	"Indent", "Dedent", "Dash", "Period", "Colon", "Comma", "Quote",
	"Equals", "OpenParen", "CloseParen", "LexMarker",
}

func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// Token is the tagged variant each pipeline stage reshapes. Text and Number
// carry their literal value in Text. BlankLine, Indent, and Dedent are
// synthetic markers: their own Range is empty, but Children carries the raw
// tokens they were built from so later stages can recover accurate byte
// ranges without re-scanning the source.
type Token struct {
	Kind     Kind
	Text     string
	Range    Range
	Loc      Location
	Children []Token
}

// New builds a plain (non-synthetic) token.
func New(kind Kind, text string, rng Range, loc Location) Token {
	return Token{Kind: kind, Text: text, Range: rng, Loc: loc}
}

// NewBlankLine builds a BlankLine marker carrying the Newline tokens of the
// run it replaces (everything past the first, which passes through
// unchanged).
func NewBlankLine(children []Token) Token {
	return Token{Kind: BlankLine, Children: children}
}

// NewIndent builds an Indent marker carrying the source Indentation token
// whose step it represents.
func NewIndent(children []Token) Token {
	return Token{Kind: Indent, Children: children}
}

// NewDedent builds a Dedent marker. Dedents have no source backing unless a
// caller has tokens to attribute the pop to (none currently do; Children
// stays nil in that case).
func NewDedent(children []Token) Token {
	return Token{Kind: Dedent, Children: children}
}

// IsStructural reports whether the token is a synthetic marker rather than
// a direct product of the tokenizer.
func (t Token) IsStructural() bool {
	switch t.Kind {
	case BlankLine, Indent, Dedent:
		return true
	default:
		return false
	}
}
