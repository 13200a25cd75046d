// Package attach implements the annotation-attachment pass: after the AST
// builder produces a tree with every Annotation sitting as an ordinary
// sibling, this pass binds each one to the nearest eligible sibling (or, if
// none is closer, the enclosing container itself) by line distance, and
// removes it from the sibling list, leaving it reachable only through its
// target's Annotations field.
package attach

import "github.com/txxt-lang/lex/ast"

// Attach walks items depth-first (so each level's own annotations are
// resolved only after its children's levels are already settled) and
// returns the sibling list with every attachable Annotation folded into
// its target. Called with no enclosing container to fall back to — use
// AttachDocument for the Document's own body, which additionally has the
// document-root special case and the Document itself as a fallback target.
func Attach(items []ast.ContentItem) []ast.ContentItem {
	return attachChildren(items, nil)
}

// AttachDocument runs the attachment pass over doc's body in place. Two
// things make the Document's own level different from any other
// container: an Annotation at body index 0 followed directly by a blank
// line attaches as metadata on the Document itself (rather than competing
// by distance against a following sibling), and, for any other orphaned
// annotation at this level with no following sibling, the Document itself
// is the enclosing-container fallback target.
func AttachDocument(doc *ast.ContentItem) {
	items := doc.Body
	for i := range items {
		if items[i].Kind == ast.Annotation {
			continue
		}
		items[i].Body = attachChildren(items[i].Body, &items[i])
		items[i].Items = attachChildren(items[i].Items, &items[i])
	}

	if len(items) > 1 && items[0].Kind == ast.Annotation && items[1].Kind == ast.BlankLineGroup {
		doc.Annotations = append(doc.Annotations, items[0])
		items = items[1:]
	}

	doc.Body = attachLevel(items, doc)
}

// attachChildren recurses into one level's children before resolving that
// level's own annotations, passing each non-annotation child as the owner
// for its own nested level. Annotations are sealed: their Body/Items are
// never descended into, so an annotation can never host a nested
// attachment pass of its own.
func attachChildren(items []ast.ContentItem, owner *ast.ContentItem) []ast.ContentItem {
	for i := range items {
		if items[i].Kind == ast.Annotation {
			continue
		}
		items[i].Body = attachChildren(items[i].Body, &items[i])
		items[i].Items = attachChildren(items[i].Items, &items[i])
	}
	return attachLevel(items, owner)
}

func attachLevel(items []ast.ContentItem, owner *ast.ContentItem) []ast.ContentItem {
	consumed := make([]bool, len(items))

	for i, item := range items {
		if item.Kind != ast.Annotation {
			continue
		}
		prevIdx := previousValidTarget(items, i)
		nextIdx := nextValidTarget(items, i)
		idx, toOwner, ok := chooseTarget(items, i, prevIdx, nextIdx, owner)
		if !ok {
			continue
		}
		if toOwner {
			owner.Annotations = append(owner.Annotations, item)
		} else {
			items[idx].Annotations = append(items[idx].Annotations, item)
		}
		consumed[i] = true
	}

	out := make([]ast.ContentItem, 0, len(items))
	for i, item := range items {
		if consumed[i] || item.Kind == ast.BlankLineGroup {
			continue
		}
		out = append(out, item)
	}
	return out
}

// isValidTarget excludes the two kinds an annotation can never bind to: a
// blank run carries no content to annotate, and one annotation can't host
// another (it attaches to the same target as its neighbor would).
func isValidTarget(item ast.ContentItem) bool {
	return item.Kind != ast.BlankLineGroup && item.Kind != ast.Annotation
}

func previousValidTarget(items []ast.ContentItem, i int) int {
	for j := i - 1; j >= 0; j-- {
		if isValidTarget(items[j]) {
			return j
		}
	}
	return -1
}

func nextValidTarget(items []ast.ContentItem, i int) int {
	for j := i + 1; j < len(items); j++ {
		if isValidTarget(items[j]) {
			return j
		}
	}
	return -1
}

// chooseTarget picks the closer of the previous-sibling candidate and the
// next-or-container candidate by line distance; a tie favors next-or-
// container (the "next element wins" tiebreak). next-or-container is the
// next sibling when one exists, otherwise the enclosing container itself
// (owner), at zero distance — there is nothing left in the container past
// this annotation to measure against, so the gap to the container's
// closing boundary is zero by construction. Returns ok=false only when
// there is no previous sibling, no next sibling, and no owner to fall back
// to (an annotation evaluated with Attach rather than AttachDocument, with
// no other content beside it).
func chooseTarget(items []ast.ContentItem, i, prevIdx, nextIdx int, owner *ast.ContentItem) (idx int, toOwner bool, ok bool) {
	haveNextOrContainer := nextIdx != -1 || owner != nil

	if prevIdx == -1 && !haveNextOrContainer {
		return 0, false, false
	}
	if prevIdx == -1 {
		if nextIdx != -1 {
			return nextIdx, false, true
		}
		return 0, true, true
	}
	if !haveNextOrContainer {
		return prevIdx, false, true
	}

	annoStart, annoEnd := span(items[i])
	_, prevEnd := span(items[prevIdx])
	prevDist := annoStart - prevEnd

	nextDist := 0
	if nextIdx != -1 {
		nextStart, _ := span(items[nextIdx])
		nextDist = nextStart - annoEnd
	}

	if nextDist <= prevDist {
		if nextIdx != -1 {
			return nextIdx, false, true
		}
		return 0, true, true
	}
	return prevIdx, false, true
}

// span reports the first and last source line a node (and everything
// nested under it) touches, used only as a distance metric — it doesn't
// need to be exact once ranges overlap, only ordered.
func span(item ast.ContentItem) (start, end int) {
	start, end = -1, -1
	note := func(line int) {
		if start == -1 || line < start {
			start = line
		}
		if end == -1 || line > end {
			end = line
		}
	}

	for _, l := range item.Lines {
		note(l.Loc.Start.Line)
		note(l.Loc.End.Line)
	}
	for _, b := range item.Body {
		if s, e := span(b); s != -1 {
			note(s)
			note(e)
		}
	}
	for _, it := range item.Items {
		if s, e := span(it); s != -1 {
			note(s)
			note(e)
		}
	}
	return
}
