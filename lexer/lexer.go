// Package lexer implements the character-level tokenizer: a single pass
// over the source producing a flat stream of token.Token values with byte
// ranges. No input is ever rejected.
//
// The raw scan is built on participle's lexer.MustSimple, driven directly
// through the lexer.Definition/lexer.Lexer interfaces instead of through a
// participle.Parser, since here the flat token stream itself is the
// product, not a parsed struct.
package lexer

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	lextoken "github.com/txxt-lang/lex/token"
)

// rawRules cover the token alphabet. Order matters: participle's simple
// lexer tries rules in order and takes the first match, so the
// two-character LexMarker must precede the single Colon rule.
var rawRules = []lexer.SimpleRule{
	{Name: "Newline", Pattern: `\r\n|\n`},
	{Name: "LexMarker", Pattern: `::`},
	{Name: "Number", Pattern: `[0-9]+`},
	{Name: "Dash", Pattern: `-`},
	{Name: "Period", Pattern: `\.`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Quote", Pattern: `"`},
	{Name: "Equals", Pattern: `=`},
	{Name: "OpenParen", Pattern: `\(`},
	{Name: "CloseParen", Pattern: `\)`},
	{Name: "HSpace", Pattern: `[ \t]+`},
	{Name: "Text", Pattern: `[^ \t\n0-9\-.:,"=(),]+`},
}

var rawLexer = lexer.MustSimple(rawRules)

var rawKindToTokenKind = map[string]lextoken.Kind{
	"Newline":    lextoken.Newline,
	"LexMarker":  lextoken.LexMarker,
	"Number":     lextoken.Number,
	"Dash":       lextoken.Dash,
	"Period":     lextoken.Period,
	"Colon":      lextoken.Colon,
	"Comma":      lextoken.Comma,
	"Quote":      lextoken.Quote,
	"Equals":     lextoken.Equals,
	"OpenParen":  lextoken.OpenParen,
	"CloseParen": lextoken.CloseParen,
	"Text":       lextoken.Text,
}

// indentUnit is the fixed width of one indentation step: four spaces or one
// tab.
const indentUnit = 4

// Tokenize scans source into a flat token stream. CR is discarded ahead of
// scanning (CRLF and LF both normalize to a single Newline token). Every
// byte of that CR-stripped text is covered by exactly one non-synthetic
// token's Range, and Range offsets index into it (for CRLF input they are
// not offsets into source); no synthetic markers are produced here (those
// come from later normalization passes).
func Tokenize(source string) []lextoken.Token {
	normalized := strings.ReplaceAll(source, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "")

	symbols := rawLexer.Symbols()
	names := make(map[lexer.TokenType]string, len(symbols))
	for name, tt := range symbols {
		names[tt] = name
	}

	lex, err := rawLexer.Lex("", strings.NewReader(normalized))
	if err != nil {
		// MustSimple's lexer never fails to start a scan over valid UTF-8
		// text; a failure here means the source isn't UTF-8, which the
		// tokenizer still must not reject. Fall back to a single Text
		// token covering everything.
		return []lextoken.Token{textToken(normalized, 0, line0())}
	}

	var out []lextoken.Token
	line, col := 0, 0
	offset := 0

	for {
		tok, err := lex.Next()
		if err != nil || tok.EOF() {
			break
		}
		name := names[tok.Type]
		startLine, startCol := line, col
		rng := lextoken.Range{Start: offset, End: offset + len(tok.Value)}

		switch name {
		case "Newline":
			out = append(out, lextoken.New(lextoken.Newline, tok.Value, rng, span(startLine, startCol, startLine+1, 0)))
			line, col = startLine+1, 0
		case "HSpace":
			out = append(out, expandIndentationOrWhitespace(tok.Value, offset, startLine, startCol, col == 0)...)
			col += len([]rune(tok.Value))
		default:
			kind, ok := rawKindToTokenKind[name]
			if !ok {
				kind = lextoken.Text
			}
			width := len([]rune(tok.Value))
			out = append(out, lextoken.New(kind, tok.Value, rng, span(startLine, startCol, startLine, startCol+width)))
			col += width
		}
		offset += len(tok.Value)
	}

	return out
}

// expandIndentationOrWhitespace splits a run of spaces/tabs at the start of
// a line into Indentation tokens, one per four-space or one-tab step,
// stopping at the first point where neither a tab nor four spaces follow;
// the rest of the run (which may still contain a tab, as in "  \t") becomes
// a single Whitespace token. A run not at the start of a line is always
// Whitespace.
func expandIndentationOrWhitespace(value string, startOffset, line, col int, atLineStart bool) []lextoken.Token {
	if !atLineStart {
		width := len([]rune(value))
		rng := lextoken.Range{Start: startOffset, End: startOffset + len(value)}
		return []lextoken.Token{lextoken.New(lextoken.Whitespace, value, rng, span(line, col, line, col+width))}
	}

	var out []lextoken.Token
	runes := []rune(value)
	i := 0
	offset := startOffset
	curCol := col
	for i < len(runes) {
		if runes[i] == '\t' {
			rng := lextoken.Range{Start: offset, End: offset + 1}
			out = append(out, lextoken.New(lextoken.Indentation, "\t", rng, span(line, curCol, line, curCol+1)))
			i++
			offset++
			curCol++
			continue
		}
		if i+indentUnit <= len(runes) && allSpaces(runes[i:i+indentUnit]) {
			rng := lextoken.Range{Start: offset, End: offset + indentUnit}
			out = append(out, lextoken.New(lextoken.Indentation, string(runes[i:i+indentUnit]), rng, span(line, curCol, line, curCol+indentUnit)))
			i += indentUnit
			offset += indentUnit
			curCol += indentUnit
			continue
		}
		break
	}

	if i < len(runes) {
		rest := string(runes[i:])
		rng := lextoken.Range{Start: offset, End: offset + len(rest)}
		out = append(out, lextoken.New(lextoken.Whitespace, rest, rng, span(line, curCol, line, curCol+len(runes)-i)))
	}

	return out
}

func allSpaces(rs []rune) bool {
	for _, r := range rs {
		if r != ' ' {
			return false
		}
	}
	return true
}

func span(startLine, startCol, endLine, endCol int) lextoken.Location {
	return lextoken.Location{
		Start: lextoken.Position{Line: startLine, Column: startCol},
		End:   lextoken.Position{Line: endLine, Column: endCol},
	}
}

func line0() lextoken.Location {
	return span(0, 0, 0, 0)
}

func textToken(value string, offset int, loc lextoken.Location) lextoken.Token {
	return lextoken.New(lextoken.Text, value, lextoken.Range{Start: offset, End: offset + len(value)}, loc)
}
