package transform

import (
	"unicode"

	"github.com/txxt-lang/lex/linetree"
	lextoken "github.com/txxt-lang/lex/token"
)

// Classify groups the tokens of a normalized stream (post-Indentation,
// post-BlankLines) into LineTokens, flushing on every Newline and on every
// structural marker (Indent/Dedent/BlankLine), which become standalone
// LineTokens of their own.
func Classify(tokens []lextoken.Token) []linetree.LineToken {
	var out []linetree.LineToken
	var pending []lextoken.Token

	flush := func() {
		if len(pending) == 0 {
			return
		}
		out = append(out, classifyLine(pending))
		pending = nil
	}

	for _, tok := range tokens {
		switch tok.Kind {
		case lextoken.Newline:
			flush()
		case lextoken.Indent:
			flush()
			out = append(out, linetree.LineToken{Type: linetree.IndentType, Tokens: []lextoken.Token{tok}, Loc: tok.Loc})
		case lextoken.Dedent:
			flush()
			out = append(out, linetree.LineToken{Type: linetree.DedentType, Tokens: []lextoken.Token{tok}, Loc: tok.Loc})
		case lextoken.BlankLine:
			flush()
			out = append(out, linetree.LineToken{Type: linetree.BlankLineType, Tokens: []lextoken.Token{tok}, Loc: tok.Loc})
		default:
			pending = append(pending, tok)
		}
	}
	flush()

	promoteDialogLines(out)
	return out
}

func classifyLine(tokens []lextoken.Token) linetree.LineToken {
	loc := lextoken.Location{}
	if len(tokens) > 0 {
		loc = lextoken.Location{Start: tokens[0].Loc.Start, End: tokens[len(tokens)-1].Loc.End}
	}

	lt := linetree.LineToken{Tokens: tokens, Loc: loc}

	if onlyWhitespace(tokens) {
		lt.Type = linetree.BlankLineType
		return lt
	}

	if isLoneAnnotationMarker(tokens) {
		lt.Type = linetree.AnnotationEndLine
		return lt
	}

	if isAnnotationStart(tokens) {
		lt.Type = linetree.AnnotationStartLine
		return lt
	}

	hasListMarker := startsWithListMarker(tokens)
	endsColon := endsWithColon(tokens)

	switch {
	case hasListMarker && endsColon:
		lt.Type = linetree.SubjectOrListItemLine
	case hasListMarker:
		lt.Type = linetree.ListLine
	case endsColon:
		lt.Type = linetree.SubjectLine
	default:
		lt.Type = linetree.ParagraphLine
	}
	return lt
}

func onlyWhitespace(tokens []lextoken.Token) bool {
	for _, t := range tokens {
		if t.Kind != lextoken.Whitespace {
			return false
		}
	}
	return true
}

func isLoneAnnotationMarker(tokens []lextoken.Token) bool {
	n := nonWhitespace(tokens)
	return len(n) == 1 && n[0].Kind == lextoken.LexMarker
}

func isAnnotationStart(tokens []lextoken.Token) bool {
	n := nonWhitespace(tokens)
	if len(n) < 2 {
		return false
	}
	if n[0].Kind != lextoken.LexMarker {
		return false
	}
	for _, t := range n[1:] {
		if t.Kind == lextoken.LexMarker {
			return true
		}
	}
	return false
}

// startsWithListMarker reports whether the line opens with a list marker:
// Dash WS | Number (Period|CloseParen) WS | single-letter Text
// (Period|CloseParen) WS | Roman-numeral Text (Period|CloseParen) WS, after
// skipping any leading Whitespace.
func startsWithListMarker(tokens []lextoken.Token) bool {
	i := skipLeadingWhitespace(tokens)
	if i >= len(tokens) {
		return false
	}

	if tokens[i].Kind == lextoken.Dash {
		return followedByWhitespace(tokens, i+1)
	}

	if tokens[i].Kind == lextoken.Number || tokens[i].Kind == lextoken.Text {
		if i+1 >= len(tokens) {
			return false
		}
		if tokens[i+1].Kind != lextoken.Period && tokens[i+1].Kind != lextoken.CloseParen {
			return false
		}
		if tokens[i].Kind == lextoken.Number {
			return followedByWhitespace(tokens, i+2)
		}
		text := tokens[i].Text
		if isRomanNumeral(text) || isSingleLetter(text) {
			return followedByWhitespace(tokens, i+2)
		}
	}

	return false
}

func endsWithColon(tokens []lextoken.Token) bool {
	n := nonWhitespace(tokens)
	if len(n) == 0 {
		return false
	}
	return n[len(n)-1].Kind == lextoken.Colon
}

func nonWhitespace(tokens []lextoken.Token) []lextoken.Token {
	out := make([]lextoken.Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Kind != lextoken.Whitespace {
			out = append(out, t)
		}
	}
	return out
}

func skipLeadingWhitespace(tokens []lextoken.Token) int {
	i := 0
	for i < len(tokens) && tokens[i].Kind == lextoken.Whitespace {
		i++
	}
	return i
}

// followedByWhitespace reports whether index i is either past the end of
// the line (marker is the whole line) or a Whitespace token.
func followedByWhitespace(tokens []lextoken.Token, i int) bool {
	if i >= len(tokens) {
		return true
	}
	return tokens[i].Kind == lextoken.Whitespace
}

func isSingleLetter(s string) bool {
	r := []rune(s)
	return len(r) == 1 && unicode.IsLetter(r[0])
}

var romanDigits = map[rune]bool{'I': true, 'V': true, 'X': true, 'L': true, 'C': true, 'D': true, 'M': true}

// isRomanNumeral reports whether s is a roman numeral: made up only of
// {I,V,X,L,C,D,M}, first character uppercase. A single roman letter (e.g.
// "I") is always treated as a roman numeral rather than the ambiguous
// single-letter-marker case.
func isRomanNumeral(s string) bool {
	if s == "" {
		return false
	}
	r := []rune(s)
	if !unicode.IsUpper(r[0]) {
		return false
	}
	for _, c := range r {
		if !romanDigits[c] {
			return false
		}
	}
	return true
}

// promoteDialogLines is the dialog post-pass: a ListLine with two trailing
// end-punctuation tokens starts a dialog run that promotes it and every
// following ListLine to DialogLine, until a non-ListLine resets the run.
func promoteDialogLines(lines []linetree.LineToken) {
	inDialog := false
	for i := range lines {
		if lines[i].Type != linetree.ListLine {
			if lines[i].Type != linetree.DialogLine {
				inDialog = false
			}
			continue
		}
		if inDialog || endsWithDoublePunctuation(lines[i].Tokens) {
			lines[i].Type = linetree.DialogLine
			inDialog = true
		}
	}
}

// endsWithDoublePunctuation looks at the line's trailing text rather than
// individual token kinds: '?' and '!' have no dedicated token kind, so the
// tokenizer folds them into surrounding Text runs, meaning "two trailing
// end-punctuation tokens" has to be read as two adjacent sentence-ending
// runes — '.', '?', or '!' — at the end of the line's text, ignoring
// trailing whitespace. Mixed markers (e.g. "?!" ) count same as matching
// ones; only the last two runes matter.
func endsWithDoublePunctuation(tokens []lextoken.Token) bool {
	text := lineText(tokens)
	i := len(text)
	for i > 0 && (text[i-1] == ' ' || text[i-1] == '\t') {
		i--
	}
	if i < 2 {
		return false
	}
	return isSentenceEnd(rune(text[i-1])) && isSentenceEnd(rune(text[i-2]))
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '?' || r == '!'
}

func lineText(tokens []lextoken.Token) string {
	out := make([]byte, 0, len(tokens)*4)
	for _, t := range tokens {
		out = append(out, t.Text...)
	}
	return string(out)
}
