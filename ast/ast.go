// Package ast builds the typed document tree from a matched LineContainer
// tree: the grammar engine decides what a run of siblings means, and this
// package turns that decision into a ContentItem, recursing into any
// container the match captured.
//
// ContentItem follows the same tagged-variant-via-nilable-fields shape as
// token.Token and linetree.LineContainer rather than an interface type, so
// a caller pattern-matches on Kind the same way throughout the pipeline.
package ast

import (
	"strings"

	"github.com/txxt-lang/lex/grammar"
	"github.com/txxt-lang/lex/inline"
	"github.com/txxt-lang/lex/linetree"
	lextoken "github.com/txxt-lang/lex/token"
)

// Kind tags the ContentItem variant.
type Kind int

const (
	Document Kind = iota
	Paragraph
	Session
	Definition
	List
	ListItem
	Annotation
	VerbatimBlock
	BlankLineGroup
)

func (k Kind) String() string {
	names := [...]string{
		"Document", "Paragraph", "Session", "Definition", "List", "ListItem",
		"Annotation", "VerbatimBlock", "BlankLineGroup",
	}
	if int(k) < 0 || int(k) >= len(names) {
		return "Unknown"
	}
	return names[k]
}

// VerbatimMode distinguishes a verbatim group whose content is a nested
// container (Inflow, laid out at an indented level) from one whose content
// is a flat run of lines at the same level as the subject (Fullwidth).
type VerbatimMode int

const (
	Inflow VerbatimMode = iota
	Fullwidth
)

// VerbatimGroup is one subject-line/raw-content pair inside a verbatim
// block. Raw lines are kept as their original tokens, never reclassified or
// run through the inline parser — that's the point of a verbatim block.
type VerbatimGroup struct {
	Subject linetree.LineToken
	Raw     []linetree.LineToken
	Mode    VerbatimMode
}

// ContentItem is the node type of the document tree.
type ContentItem struct {
	Kind Kind

	// Paragraph, Session's/Definition's/ListItem's/Annotation's own
	// subject/content line(s). Populated with raw line tokens; the inline
	// parser attaches parsed inline content to these lines in a later pass.
	Lines []linetree.LineToken

	// Session, Definition, Annotation (with a body), ListItem (with a
	// nested container), Document: the parsed children one level deeper.
	Body []ContentItem

	// List: its items (each Kind == ListItem).
	Items []ContentItem

	// List (from either list pattern): whether the match consumed a blank
	// line immediately after this item, absorbed rather than re-emitted as
	// its own BlankLineGroup sibling.
	TrailingBlank bool
	LeadingBlank  bool

	// ListItem: whether it had a nested container (vs. a bare list line).
	HasBody bool

	// Annotation.
	Label  string
	Params map[string]string
	HasEnd bool

	// VerbatimBlock.
	Groups []VerbatimGroup

	// Attached by the annotation-attachment pass (attach package): zero or
	// more annotations bound to this node.
	Annotations []ContentItem

	// Inline is the parsed inline content of Lines' joined text, filled in
	// by ParseInline as the pipeline's last stage. Nil until then.
	Inline []inline.Node
}

// ParseInline walks the tree and fills in Inline for every node that carries
// its own text (Lines is non-empty): Paragraph, Session/Definition/
// Annotation subject lines, ListItem lines. VerbatimBlock content is left
// untouched — its raw lines are never run through the inline parser.
func ParseInline(item *ContentItem) {
	Walk(item, inlineVisitor{})
}

type inlineVisitor struct{ BaseVisitor }

func (inlineVisitor) visit(item *ContentItem) {
	if item.Kind == VerbatimBlock || len(item.Lines) == 0 {
		return
	}
	var b strings.Builder
	for i, l := range item.Lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(lineText(l.Tokens))
	}
	item.Inline = inline.Parse(b.String())
}

func (v inlineVisitor) VisitDocument(item *ContentItem)   { v.visit(item) }
func (v inlineVisitor) VisitParagraph(item *ContentItem)  { v.visit(item) }
func (v inlineVisitor) VisitSession(item *ContentItem)    { v.visit(item) }
func (v inlineVisitor) VisitDefinition(item *ContentItem) { v.visit(item) }
func (v inlineVisitor) VisitList(item *ContentItem)       { v.visit(item) }
func (v inlineVisitor) VisitListItem(item *ContentItem)   { v.visit(item) }
func (v inlineVisitor) VisitAnnotation(item *ContentItem) { v.visit(item) }

// Text joins this node's own line tokens into a single string, without any
// inline markup resolved. Session/Definition/Annotation use it for their
// subject line; Paragraph/ListItem for their full (possibly multi-line)
// text; VerbatimBlock its closing annotation line. Nodes with no Lines
// (Document, List, BlankLineGroup) return "".
func (c ContentItem) Text() string {
	var b strings.Builder
	for i, l := range c.Lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(l.Text())
	}
	return b.String()
}

// Build turns a level-0 LineContainer tree (as produced by transform.Tree)
// into the document root.
func Build(children []linetree.LineContainer) ContentItem {
	return ContentItem{Kind: Document, Body: buildLevel(children, true, true)}
}

func buildLevel(children []linetree.LineContainer, allowSessions, isDocStart bool) []ContentItem {
	var out []ContentItem
	gate := grammar.SessionGate{First: isDocStart, LevelStart: true}
	pos := 0

	for pos < len(children) {
		remaining := children[pos:]
		m, ok := grammar.Step(remaining, allowSessions, gate)
		if !ok {
			if remaining[0].IsContainer() {
				// Nothing recognized a bare container at this position:
				// flatten it into the current level and retry.
				flattened := append([]linetree.LineContainer{}, remaining[0].Container...)
				flattened = append(flattened, remaining[1:]...)
				rebuilt := append([]linetree.LineContainer{}, children[:pos]...)
				children = append(rebuilt, flattened...)
				continue
			}
			out = append(out, ContentItem{Kind: Paragraph, Lines: cloneLine(remaining[0])})
			pos++
			gate = grammar.SessionGate{}
			continue
		}

		item := buildFromMatch(m, remaining[:m.Consumed])
		out = append(out, item)
		pos += m.Consumed
		gate = nextGate(item)
	}

	return out
}

func nextGate(item ContentItem) grammar.SessionGate {
	return grammar.SessionGate{
		PrevBlank:       item.Kind == BlankLineGroup || item.TrailingBlank,
		PrevSession:     item.Kind == Session,
		PrevHadChildren: len(item.Body) > 0 || len(item.Items) > 0,
	}
}

func buildFromMatch(m grammar.Match, consumed []linetree.LineContainer) ContentItem {
	switch m.Pattern {
	case grammar.AnnotationBlockWithEnd:
		return buildAnnotation(consumed[0], consumed[1].Container, true)
	case grammar.AnnotationBlockPattern:
		return buildAnnotation(consumed[0], consumed[1].Container, false)
	case grammar.AnnotationSingle:
		return buildAnnotation(consumed[0], nil, false)
	case grammar.ListNoBlank:
		items, trailing := buildListItems(consumed)
		return ContentItem{Kind: List, Items: items, TrailingBlank: trailing}
	case grammar.List:
		i := 0
		for i < len(consumed) && isBlankLine(consumed[i]) {
			i++
		}
		items, trailing := buildListItems(consumed[i:])
		return ContentItem{Kind: List, Items: items, TrailingBlank: trailing, LeadingBlank: true}
	case grammar.Session:
		subject := consumed[0]
		i := 1
		for i < len(consumed) && isBlankLine(consumed[i]) {
			i++
		}
		body := buildLevel(consumed[i].Container, true, false)
		return ContentItem{Kind: Session, Lines: cloneLine(subject), Body: body}
	case grammar.Definition:
		subject := consumed[0]
		body := buildLevel(consumed[1].Container, true, false)
		return ContentItem{Kind: Definition, Lines: cloneLine(subject), Body: body}
	case grammar.Paragraph:
		var lines []linetree.LineToken
		for _, c := range consumed {
			lines = append(lines, *c.Token)
		}
		return ContentItem{Kind: Paragraph, Lines: lines}
	case grammar.BlankLineGroup:
		return ContentItem{Kind: BlankLineGroup}
	case grammar.VerbatimBlock:
		return buildVerbatim(consumed, m.Verbatim)
	default:
		var lines []linetree.LineToken
		for _, c := range consumed {
			if !c.IsContainer() {
				lines = append(lines, *c.Token)
			}
		}
		return ContentItem{Kind: Paragraph, Lines: lines}
	}
}

func buildListItems(children []linetree.LineContainer) ([]ContentItem, bool) {
	var items []ContentItem
	trailing := false
	pos := 0
	for pos < len(children) {
		if isBlankLine(children[pos]) {
			trailing = true
			pos++
			continue
		}
		subject := children[pos]
		pos++
		item := ContentItem{Kind: ListItem, Lines: cloneLine(subject)}
		if pos < len(children) && children[pos].IsContainer() {
			// Not every nested list item hosts a session of its own: the
			// gating question of whether a list body may itself contain a
			// loose session is left conservative (no) until a concrete
			// counter-example turns up.
			item.Body = buildLevel(children[pos].Container, false, false)
			item.HasBody = true
			pos++
		}
		items = append(items, item)
	}
	return items, trailing
}

func buildAnnotation(startChild linetree.LineContainer, bodyContainer []linetree.LineContainer, hasEnd bool) ContentItem {
	text := strings.TrimSpace(lineText(startChild.Token.Tokens))
	label, params := "", map[string]string{}
	if h, err := grammar.ParseHeader(text); err == nil {
		label = h.Label
		for _, p := range h.Params {
			params[p.Name] = p.Value
		}
	}

	var body []ContentItem
	if bodyContainer != nil {
		body = buildLevel(bodyContainer, true, false)
	}

	return ContentItem{
		Kind:   Annotation,
		Lines:  cloneLine(startChild),
		Label:  label,
		Params: params,
		HasEnd: hasEnd,
		Body:   body,
	}
}

func buildVerbatim(consumed []linetree.LineContainer, vm *grammar.VerbatimMatch) ContentItem {
	groups := make([]VerbatimGroup, 0, len(vm.Groups))
	for _, g := range vm.Groups {
		subject := consumed[g.SubjectIndex]
		mode := Fullwidth
		var raw []linetree.LineToken
		for k := g.ContentStart; k < g.ContentEnd; k++ {
			c := consumed[k]
			if c.IsContainer() {
				mode = Inflow
				raw = append(raw, flattenLines(c)...)
			} else {
				raw = append(raw, *c.Token)
			}
		}
		groups = append(groups, VerbatimGroup{Subject: *subject.Token, Raw: raw, Mode: mode})
	}
	closing := consumed[vm.ClosingIndex]
	label, params := "", map[string]string{}
	text := strings.TrimSpace(lineText(closing.Token.Tokens))
	if h, err := grammar.ParseHeader(text); err == nil {
		label = h.Label
		for _, p := range h.Params {
			params[p.Name] = p.Value
		}
	}
	return ContentItem{Kind: VerbatimBlock, Groups: groups, Lines: cloneLine(closing), Label: label, Params: params}
}

// flattenLines collects every flat line inside a container, depth-first.
// Verbatim content is taken literally, so a container nested inside a
// verbatim group's body is read for its raw lines rather than re-parsed.
func flattenLines(c linetree.LineContainer) []linetree.LineToken {
	var out []linetree.LineToken
	if !c.IsContainer() {
		return []linetree.LineToken{*c.Token}
	}
	for _, child := range c.Container {
		out = append(out, flattenLines(child)...)
	}
	return out
}

func isBlankLine(c linetree.LineContainer) bool {
	return !c.IsContainer() && c.Token.Type == linetree.BlankLineType
}

func cloneLine(c linetree.LineContainer) []linetree.LineToken {
	return []linetree.LineToken{*c.Token}
}

func lineText(tokens []lextoken.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Text)
	}
	return b.String()
}
