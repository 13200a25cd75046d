package attach

import (
	"testing"

	"github.com/txxt-lang/lex/ast"
	"github.com/txxt-lang/lex/linetree"
	lextoken "github.com/txxt-lang/lex/token"
)

func lineAt(line int) []linetree.LineToken {
	return []linetree.LineToken{{Loc: lextoken.Location{
		Start: lextoken.Position{Line: line},
		End:   lextoken.Position{Line: line},
	}}}
}

func paragraphAt(line int) ast.ContentItem {
	return ast.ContentItem{Kind: ast.Paragraph, Lines: lineAt(line)}
}

func annotationAt(line int) ast.ContentItem {
	return ast.ContentItem{Kind: ast.Annotation, Label: "note", Lines: lineAt(line)}
}

func TestAttachBindsToCloserNeighbor(t *testing.T) {
	items := []ast.ContentItem{
		paragraphAt(0),
		annotationAt(1), // one line after paragraph 0, three before paragraph 4
		paragraphAt(4),
	}

	out := Attach(items)
	if len(out) != 2 {
		t.Fatalf("expected annotation folded away, got %d items", len(out))
	}
	if len(out[0].Annotations) != 1 {
		t.Fatalf("expected the earlier paragraph to receive the annotation, got %+v", out)
	}
}

func TestAttachTiebreakFavorsNext(t *testing.T) {
	items := []ast.ContentItem{
		paragraphAt(0),
		annotationAt(1),
		paragraphAt(2),
	}

	out := Attach(items)
	if len(out) != 2 {
		t.Fatalf("expected annotation folded away, got %d items", len(out))
	}
	if len(out[0].Annotations) != 0 || len(out[1].Annotations) != 1 {
		t.Fatalf("expected a tie to favor the next sibling, got %+v", out)
	}
}

func TestAttachSkipsOverBlankLineGroup(t *testing.T) {
	items := []ast.ContentItem{
		paragraphAt(0),
		{Kind: ast.BlankLineGroup},
		annotationAt(2),
		paragraphAt(5),
	}

	out := Attach(items)
	var gotAnnotation bool
	for _, item := range out {
		if len(item.Annotations) == 1 {
			gotAnnotation = true
			if item.Kind != ast.Paragraph {
				t.Errorf("annotation attached to non-paragraph %v", item.Kind)
			}
		}
	}
	if !gotAnnotation {
		t.Fatalf("expected the annotation to attach past the blank-line group, got %+v", out)
	}
}

func TestAttachLeavesOrphanStandalone(t *testing.T) {
	items := []ast.ContentItem{
		annotationAt(0),
	}
	out := Attach(items)
	if len(out) != 1 || out[0].Kind != ast.Annotation {
		t.Fatalf("orphan annotation should remain standalone, got %+v", out)
	}
}

func TestAttachDocumentBindsFirstEntryAsMetadata(t *testing.T) {
	doc := ast.ContentItem{
		Kind: ast.Document,
		Body: []ast.ContentItem{
			annotationAt(0),
			{Kind: ast.BlankLineGroup},
			paragraphAt(2),
		},
	}

	AttachDocument(&doc)

	if len(doc.Annotations) != 1 || doc.Annotations[0].Label != "note" {
		t.Fatalf("expected the document itself to receive the annotation, got %+v", doc.Annotations)
	}
	if len(doc.Body) != 1 || doc.Body[0].Kind != ast.Paragraph {
		t.Fatalf("expected only the paragraph left in the document body, got %+v", doc.Body)
	}
}

func TestAttachDocumentWithoutBlankFallsBackToNormalRules(t *testing.T) {
	doc := ast.ContentItem{
		Kind: ast.Document,
		Body: []ast.ContentItem{
			annotationAt(0),
			paragraphAt(1),
		},
	}

	AttachDocument(&doc)

	if len(doc.Annotations) != 0 {
		t.Fatalf("expected no document-level metadata without a following blank line, got %+v", doc.Annotations)
	}
	if len(doc.Body) != 1 || len(doc.Body[0].Annotations) != 1 {
		t.Fatalf("expected the annotation to attach to the following paragraph instead, got %+v", doc.Body)
	}
}

func TestAttachTrailingOrphanFallsBackToEnclosingContainer(t *testing.T) {
	session := ast.ContentItem{
		Kind: ast.Session,
		Body: []ast.ContentItem{
			paragraphAt(0),
			annotationAt(5),
		},
	}

	out := attachChildren(session.Body, &session)

	if len(out) != 1 || out[0].Kind != ast.Paragraph {
		t.Fatalf("expected the trailing annotation folded away, got %+v", out)
	}
	if len(out[0].Annotations) != 0 {
		t.Fatalf("expected the paragraph to NOT receive the trailing annotation, got %+v", out[0])
	}
	if len(session.Annotations) != 1 || session.Annotations[0].Label != "note" {
		t.Fatalf("expected the enclosing session to receive the trailing annotation as metadata, got %+v", session.Annotations)
	}
}
