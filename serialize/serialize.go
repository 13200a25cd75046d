// Package serialize renders a parsed Document back to a string. Each
// serializer is a narrow "takes an immutable Document, returns a string,
// never mutates its input" collaborator — none of them hold state across
// calls.
package serialize

import "github.com/txxt-lang/lex/ast"

// Formats lists every format name Render accepts, in the order the
// pipeline package registers their "lex-to-<format>" Configs.
var Formats = []string{"tag", "treeviz", "markdown"}

// Render dispatches to the named serializer.
func Render(format string, doc ast.ContentItem) (string, error) {
	switch format {
	case "tag":
		return Tag(doc), nil
	case "treeviz":
		return Treeviz(doc), nil
	case "markdown":
		return Markdown(doc), nil
	default:
		return "", &UnknownFormatError{Format: format}
	}
}

// UnknownFormatError reports a format name Render doesn't recognize.
type UnknownFormatError struct {
	Format string
}

func (e *UnknownFormatError) Error() string {
	return "serialize: unknown format " + e.Format
}
