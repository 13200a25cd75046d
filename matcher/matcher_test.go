package matcher

import (
	"testing"

	"github.com/txxt-lang/lex/ast"
	"github.com/txxt-lang/lex/pipeline"
)

func TestFindByKind(t *testing.T) {
	doc, err := pipeline.Parse("Term:\n    body text\n\nanother paragraph\n")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	paragraphs := FindByKind(&doc, ast.Paragraph)
	if len(paragraphs) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d: %+v", len(paragraphs), paragraphs)
	}

	definitions := FindByKind(&doc, ast.Definition)
	if len(definitions) != 1 {
		t.Fatalf("expected 1 definition, got %d", len(definitions))
	}
}

func TestFindByLabel(t *testing.T) {
	doc, err := pipeline.Parse("a paragraph\n::note style=warning::\n")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	notes := FindByLabel(&doc, "note")
	if len(notes) != 1 {
		t.Fatalf("expected 1 note annotation reachable, got %d", len(notes))
	}
}

func TestFindByParam(t *testing.T) {
	doc, err := pipeline.Parse("a paragraph\n::note style=warning::\n")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	matches := FindByParam(&doc, "style", "warning")
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
}

func TestFirstReturnsNilWhenNoMatch(t *testing.T) {
	doc, err := pipeline.Parse("just a paragraph\n")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	got := First(&doc, func(item *ast.ContentItem) bool { return item.Kind == ast.VerbatimBlock })
	if got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}
