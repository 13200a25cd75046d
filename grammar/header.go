package grammar

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// headerLexer tokenizes one annotation-start line's raw text: a label
// followed by zero or more ordered name=value or name="value" parameters,
// bracketed by the "::" marker on both ends — exactly the kind of small
// declarative token grammar Participle is suited for.
var headerLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Marker", Pattern: `::`},
	{Name: "String", Pattern: `"[^"]*"`},
	{Name: "Equals", Pattern: `=`},
	{Name: "Ident", Pattern: `[^\s=":]+`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

// Header is the parsed shape of an annotation-start line's content, e.g.
// ::note style=warning title="Watch out"::
type Header struct {
	Pos    lexer.Position
	Label  string   `"::" @Ident`
	Params []*Param `@@* "::"`
}

// Param is one name=value or name="value" pair; quotes are stripped from
// Value by the parser, not the grammar.
type Param struct {
	Pos   lexer.Position
	Name  string `@Ident "="`
	Value string `@String | @Ident`
}

var headerParser = participle.MustBuild[Header](
	participle.Lexer(headerLexer),
	participle.Elide("Whitespace"),
	participle.Unquote("String"),
)

// ParseHeader parses one annotation-start line's text (with or without
// leading/trailing whitespace) into a Header. A line that merely looks like
// an annotation start (isAnnotationStart in the classifier only checks for
// two LexMarker tokens) can still fail this stricter grammar — callers
// should fall back to treating the line as an annotation with an empty
// label and no params rather than rejecting it outright, since no input is
// ever supposed to be unparseable.
func ParseHeader(text string) (*Header, error) {
	return headerParser.ParseString("", text)
}
