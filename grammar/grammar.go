// Package grammar is the declarative grammar engine: a small ordered table
// of patterns compiled once over an alphabet of angle-bracketed line-type
// symbols plus the literal <container>, matched against the string a
// level's children spell out.
//
// This plays the role the original .lift grammar package played for Go AST
// patterns — a declarative, compiled-once grammar driving structural
// matching — but the alphabet here is line types, not Go struct shapes, so
// the natural implementation runs Go's own regexp package against the
// synthesized alphabet string rather than a struct-tag grammar. Participle
// is still put to work one layer down, on the annotation-header and
// verbatim-closing mini-grammars (header.go), which are exactly the kind of
// small declarative token grammar it was built for.
package grammar

import (
	"regexp"

	"github.com/txxt-lang/lex/linetree"
)

// Pattern names one rule of the pattern table, in rank order: earlier
// patterns are tried first.
type Pattern int

const (
	VerbatimBlock Pattern = iota
	AnnotationBlockWithEnd
	AnnotationBlockPattern
	AnnotationSingle
	ListNoBlank
	List
	Session
	Definition
	Paragraph
	BlankLineGroup
)

func (p Pattern) String() string {
	names := [...]string{
		"verbatim_block", "annotation_block_with_end", "annotation_block",
		"annotation_single", "list_no_blank", "list", "session",
		"definition", "paragraph", "blank_line_group",
	}
	if int(p) < 0 || int(p) >= len(names) {
		return "unknown"
	}
	return names[p]
}

var (
	symParagraph     = linetree.ParagraphLine.Symbol()
	symSubject       = linetree.SubjectLine.Symbol()
	symList          = linetree.ListLine.Symbol()
	symSubjectOrList = linetree.SubjectOrListItemLine.Symbol()
	symDialog        = linetree.DialogLine.Symbol()
	symAnnoStart     = linetree.AnnotationStartLine.Symbol()
	symBlank         = linetree.BlankLineType.Symbol()
	symContainer     = linetree.ContainerSymbol

	contentLine = "(?:" + symParagraph + "|" + symSubject + "|" + symList + "|" + symSubjectOrList + ")"
	itemLine    = "(?:" + symList + "|" + symSubjectOrList + ")"
	itemGroup   = itemLine + "(?:" + symContainer + ")?"
)

type compiledPattern struct {
	name Pattern
	re   *regexp.Regexp
}

var patternTable = []compiledPattern{
	{AnnotationBlockWithEnd, regexp.MustCompile("^" + symAnnoStart + symContainer + linetree.AnnotationEndLine.Symbol())},
	{AnnotationBlockPattern, regexp.MustCompile("^" + symAnnoStart + symContainer)},
	{AnnotationSingle, regexp.MustCompile("^" + symAnnoStart)},
	{ListNoBlank, regexp.MustCompile("^(?:" + itemGroup + "){2,}(?:" + symBlank + ")?")},
	{List, regexp.MustCompile("^(?:" + symBlank + ")+(?:" + itemGroup + "){2,}(?:" + symBlank + ")?")},
	{Session, regexp.MustCompile("^" + contentLine + "(?:" + symBlank + ")+" + symContainer)},
	{Definition, regexp.MustCompile("^" + contentLine + symContainer)},
	{Paragraph, regexp.MustCompile("^(?:" + contentLine + "|" + symDialog + ")+")},
	{BlankLineGroup, regexp.MustCompile("^(?:" + symBlank + ")+")},
}

// SessionGate carries the boundary information needed to decide whether a
// session may even be attempted at the current position: sessions need
// breathing room (the level just started, or the thing before them was a
// blank run, another session, or a container close); definitions don't.
type SessionGate struct {
	First           bool // first item in the whole document
	LevelStart      bool // start of the current level
	PrevBlank       bool // previous sibling was a BlankLineGroup
	PrevSession     bool // previous sibling was itself a session
	PrevHadChildren bool // previous sibling's container just closed
}

// Allowed reports whether the session pattern may be attempted here.
func (g SessionGate) Allowed() bool {
	return g.First || g.LevelStart || g.PrevBlank || g.PrevSession || g.PrevHadChildren
}

// Match is the result of one engine step: which pattern fired and how many
// children of the level it consumed. Verbatim carries the extra detail a
// single regexp can't express.
type Match struct {
	Pattern  Pattern
	Consumed int
	Verbatim *VerbatimMatch
}

// Step attempts each pattern in rank order against children, matching only
// at index 0 of the slice — callers re-slice as they advance through a
// level. allowSessions gates whether the session pattern is even
// candidate-eligible (false while recursing into a body that may not itself
// host a session, e.g. inside a list item); gate further restricts it by
// the immediate boundary context.
//
// Step never errors: if nothing in the table matches, ok is false and the
// caller falls back by advancing past or flattening the offending child.
func Step(children []linetree.LineContainer, allowSessions bool, gate SessionGate) (Match, bool) {
	if vm, ok := matchVerbatim(children); ok {
		return Match{Pattern: VerbatimBlock, Consumed: vm.Consumed, Verbatim: vm}, true
	}

	alphabet, boundaries := alphabetOf(children)

	for _, p := range patternTable {
		if p.name == Session && !(allowSessions && gate.Allowed()) {
			continue
		}
		loc := p.re.FindStringIndex(alphabet)
		if loc == nil || loc[0] != 0 || loc[1] == 0 {
			continue
		}
		count := childCountForOffset(boundaries, loc[1])
		if count <= 0 {
			continue
		}
		return Match{Pattern: p.name, Consumed: count}, true
	}

	return Match{}, false
}

// alphabetOf concatenates each child's symbol and records the cumulative
// byte offset after each one, so a regexp match length can be translated
// back into a count of consumed children.
func alphabetOf(children []linetree.LineContainer) (string, []int) {
	var b []byte
	boundaries := make([]int, len(children))
	for i, c := range children {
		b = append(b, c.Symbol()...)
		boundaries[i] = len(b)
	}
	return string(b), boundaries
}

func childCountForOffset(boundaries []int, offset int) int {
	for i, bound := range boundaries {
		if bound == offset {
			return i + 1
		}
		if bound > offset {
			return -1 // offset fell inside a symbol; symbols are atomic so this shouldn't happen
		}
	}
	return -1
}
