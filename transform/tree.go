package transform

import "github.com/txxt-lang/lex/linetree"

// Tree converts a flat LineToken stream plus its Indent/Dedent events into a
// LineContainer tree. It maintains a stack of per-level child lists,
// starting with the root level, and pushes a new level on Indent; a Dedent
// pops the current level and appends it as a Container sibling at the
// parent level, positioned right after whatever line opened it.
func Tree(lines []linetree.LineToken) []linetree.LineContainer {
	stack := [][]linetree.LineContainer{{}}

	for _, lt := range lines {
		switch lt.Type {
		case linetree.IndentType:
			stack = append(stack, []linetree.LineContainer{})
		case linetree.DedentType:
			closed := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			top := len(stack) - 1
			// Attachment is positional, not a parent/child fusion: the
			// container is just the next sibling in sequence. The grammar
			// engine reads the adjacency back out of the alphabet string.
			stack[top] = append(stack[top], linetree.Nested(closed))
		default:
			top := len(stack) - 1
			line := lt
			stack[top] = append(stack[top], linetree.Line(line))
		}
	}

	// Close any levels left open (shouldn't happen — Indent/Dedent events
	// are balanced upstream — but this keeps Tree total over malformed
	// input rather than silently dropping lines).
	for len(stack) > 1 {
		closed := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		parent := stack[len(stack)-1]
		parent = append(parent, linetree.Nested(closed))
		stack[len(stack)-1] = parent
	}

	return stack[0]
}
