// Package matcher queries a parsed document tree: find every node of a
// given Kind, every annotation with a given label, or any node satisfying
// an arbitrary predicate — a predicate walked depth-first over an
// ast.ContentItem tree, collecting every match.
package matcher

import "github.com/txxt-lang/lex/ast"

// Predicate reports whether item is a match.
type Predicate func(item *ast.ContentItem) bool

// Find walks root depth-first (root itself included) and returns every
// node, in document order, for which pred returns true.
func Find(root *ast.ContentItem, pred Predicate) []*ast.ContentItem {
	var out []*ast.ContentItem
	walk(root, pred, &out)
	return out
}

func walk(item *ast.ContentItem, pred Predicate, out *[]*ast.ContentItem) {
	if pred(item) {
		*out = append(*out, item)
	}
	for i := range item.Body {
		walk(&item.Body[i], pred, out)
	}
	for i := range item.Items {
		walk(&item.Items[i], pred, out)
	}
	for i := range item.Annotations {
		walk(&item.Annotations[i], pred, out)
	}
}

// FindByKind returns every node of the given Kind.
func FindByKind(root *ast.ContentItem, kind ast.Kind) []*ast.ContentItem {
	return Find(root, func(item *ast.ContentItem) bool { return item.Kind == kind })
}

// FindByLabel returns every Annotation with the given Label.
func FindByLabel(root *ast.ContentItem, label string) []*ast.ContentItem {
	return Find(root, func(item *ast.ContentItem) bool {
		return item.Kind == ast.Annotation && item.Label == label
	})
}

// FindByParam returns every Annotation carrying a Params[name] == value
// entry.
func FindByParam(root *ast.ContentItem, name, value string) []*ast.ContentItem {
	return Find(root, func(item *ast.ContentItem) bool {
		if item.Kind != ast.Annotation || item.Params == nil {
			return false
		}
		v, ok := item.Params[name]
		return ok && v == value
	})
}

// First returns the first match for pred, or nil if there isn't one.
func First(root *ast.ContentItem, pred Predicate) *ast.ContentItem {
	matches := Find(root, pred)
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}
