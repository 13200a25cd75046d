// Package transform holds the token-stream transformations between raw
// lexing and tree assembly: the whitespace/indentation normalizer, the
// blank-line mapper, the line classifier, and the indent-to-tree builder.
// Each is a pure function over its input slice; none of them can fail.
package transform

import lextoken "github.com/txxt-lang/lex/token"

// Indentation walks the flat token stream line by line and replaces each
// line's leading Indentation tokens with Indent/Dedent events relative to
// the running indentation level.
//
// Blank lines (only whitespace/newline tokens) never change the level.
// Indent tokens carry the Indentation token whose step they represent, so
// later stages can still recover source byte ranges; Dedent tokens carry
// nothing since nothing in the source introduced them.
func Indentation(tokens []lextoken.Token) []lextoken.Token {
	out := make([]lextoken.Token, 0, len(tokens))
	level := 0
	i := 0

	for i < len(tokens) {
		lineStart := i
		leading := 0
		j := i
		for j < len(tokens) && tokens[j].Kind == lextoken.Indentation {
			leading++
			j++
		}

		if isBlankLine(tokens, j) {
			// Blank line: pass its tokens through untouched, no level change.
			out = append(out, tokens[lineStart:j]...)
			for j < len(tokens) && tokens[j].Kind != lextoken.Newline {
				j++
			}
			if j < len(tokens) {
				out = append(out, tokens[j])
				j++
			}
			i = j
			continue
		}

		switch {
		case leading > level:
			for n := level; n < leading; n++ {
				out = append(out, lextoken.NewIndent([]lextoken.Token{tokens[lineStart+n]}))
			}
		case leading < level:
			for n := level; n > leading; n-- {
				out = append(out, lextoken.NewDedent(nil))
			}
		}
		level = leading

		// Emit the rest of the line (everything after its leading
		// Indentation tokens) unchanged, up to and including the Newline.
		end := j
		for end < len(tokens) && tokens[end].Kind != lextoken.Newline {
			end++
		}
		if end < len(tokens) {
			end++ // include the Newline itself
		}
		out = append(out, tokens[j:end]...)
		i = end
	}

	for ; level > 0; level-- {
		out = append(out, lextoken.NewDedent(nil))
	}

	return out
}

// isBlankLine reports whether the line starting at index i (after any
// leading Indentation tokens have been skipped) contains only whitespace
// before its terminating Newline, or runs to EOF with no other tokens.
func isBlankLine(tokens []lextoken.Token, i int) bool {
	for k := i; k < len(tokens); k++ {
		switch tokens[k].Kind {
		case lextoken.Whitespace:
			continue
		case lextoken.Newline:
			return true
		default:
			return false
		}
	}
	return true
}
