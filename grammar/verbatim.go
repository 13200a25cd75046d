package grammar

import "github.com/txxt-lang/lex/linetree"

// VerbatimGroup records one (subject-line, raw content) pair inside a
// verbatim block match. ContentStart/ContentEnd index into the matched
// children slice, half-open, and may be empty (a subject with no body
// before the next subject or the closing line).
type VerbatimGroup struct {
	SubjectIndex int
	ContentStart int
	ContentEnd   int
}

// VerbatimMatch is the detailed result of a successful verbatim-block
// match: a leading subject line, one or more (subject, optional raw
// content) groups, and a closing annotation-start line at the same level.
type VerbatimMatch struct {
	Groups       []VerbatimGroup
	ClosingIndex int
	Consumed     int
}

// matchVerbatim implements the imperative verbatim-block rule: unlike every
// other pattern in the table, its shape can't be expressed as a flat
// regexp because group boundaries depend on which of two possible closers
// (a nested container or a run of flat lines) appears next, and because the
// block's raw content is read, not classified further.
//
// Because verbatim blocks open and close within a single level (the
// indented payload between a subject and its close is itself a nested
// Container sibling, not a deeper scan), indentation matching falls out for
// free: the subject line and the closing line are simply adjacent entries
// in the same children slice.
func matchVerbatim(children []linetree.LineContainer) (*VerbatimMatch, bool) {
	i := 0
	for i < len(children) && isBlankChild(children[i]) {
		i++
	}
	if i >= len(children) || !isLineOfType(children[i], linetree.SubjectLine) {
		return nil, false
	}

	var groups []VerbatimGroup

	for {
		if i >= len(children) || !isLineOfType(children[i], linetree.SubjectLine) {
			return nil, false
		}
		subjectIndex := i
		i++

		for i < len(children) && isBlankChild(children[i]) {
			i++
		}

		contentStart := i
		if i < len(children) && children[i].IsContainer() {
			i++
		} else {
			for i < len(children) && !children[i].IsContainer() &&
				!isLineOfType(children[i], linetree.SubjectLine) &&
				!isClosingLine(children[i]) {
				i++
			}
		}
		contentEnd := i

		groups = append(groups, VerbatimGroup{
			SubjectIndex: subjectIndex,
			ContentStart: contentStart,
			ContentEnd:   contentEnd,
		})

		if i >= len(children) {
			return nil, false
		}
		if isClosingLine(children[i]) {
			closing := i
			return &VerbatimMatch{
				Groups:       groups,
				ClosingIndex: closing,
				Consumed:     closing + 1,
			}, true
		}
		if isLineOfType(children[i], linetree.SubjectLine) {
			continue
		}
		return nil, false
	}
}

func isBlankChild(c linetree.LineContainer) bool {
	return !c.IsContainer() && c.Token.Type == linetree.BlankLineType
}

func isLineOfType(c linetree.LineContainer, t linetree.LineType) bool {
	return !c.IsContainer() && c.Token.Type == t
}

// isClosingLine recognizes the line that ends a verbatim block. Only an
// annotation-start line has ever been observed closing one in practice; a
// plain data line closing a fullwidth block is accepted for structural
// completeness but DataLine is never produced by the classifier today, so
// this branch is currently dead and documented as such.
func isClosingLine(c linetree.LineContainer) bool {
	if c.IsContainer() {
		return false
	}
	return c.Token.Type == linetree.AnnotationStartLine || c.Token.Type == linetree.DataLine
}
