package transform

import lextoken "github.com/txxt-lang/lex/token"

// BlankLines rewrites any run of 2+ consecutive Newline tokens into: the
// first Newline unchanged, followed by a single BlankLine marker carrying
// the remaining Newlines of the run. A lone Newline is unchanged.
// Non-Newline tokens (including Indent/Dedent, which Indentation has
// already interleaved) pass through untouched.
func BlankLines(tokens []lextoken.Token) []lextoken.Token {
	out := make([]lextoken.Token, 0, len(tokens))

	for i := 0; i < len(tokens); {
		if tokens[i].Kind != lextoken.Newline {
			out = append(out, tokens[i])
			i++
			continue
		}

		run := i
		for run < len(tokens) && tokens[run].Kind == lextoken.Newline {
			run++
		}

		out = append(out, tokens[i]) // first Newline passes through
		if run-i >= 2 {
			rest := append([]lextoken.Token(nil), tokens[i+1:run]...)
			out = append(out, lextoken.NewBlankLine(rest))
		}
		i = run
	}

	return out
}
