package serialize

import (
	"strings"
	"testing"

	"github.com/txxt-lang/lex/pipeline"
)

func TestRenderUnknownFormat(t *testing.T) {
	doc, err := pipeline.Parse("a paragraph\n")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if _, err := Render("nonsense", doc); err == nil {
		t.Fatalf("expected an error for an unknown format")
	}
}

func TestTagRendersParagraph(t *testing.T) {
	doc, err := pipeline.Parse("a paragraph\n")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	out := Tag(doc)
	if !strings.Contains(out, "<paragraph>") || !strings.Contains(out, "a paragraph") {
		t.Fatalf("got %q", out)
	}
}

func TestTagRendersAnnotationAttrs(t *testing.T) {
	doc, err := pipeline.Parse("a paragraph\n::note style=warning::\n")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	out := Tag(doc)
	if !strings.Contains(out, `label="note"`) || !strings.Contains(out, `style="warning"`) {
		t.Fatalf("got %q", out)
	}
}

func TestTreevizRendersKindNames(t *testing.T) {
	doc, err := pipeline.Parse("Term:\n    body text\n")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	out := Treeviz(doc)
	if !strings.Contains(out, "Definition") || !strings.Contains(out, "Paragraph") {
		t.Fatalf("got %q", out)
	}
}

func TestMarkdownRendersHeadingAndParagraph(t *testing.T) {
	doc, err := pipeline.Parse("Term:\n    body text\n")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	out := Markdown(doc)
	if !strings.Contains(out, "### Term:") || !strings.Contains(out, "body text") {
		t.Fatalf("got %q", out)
	}
}

func TestMarkdownRendersList(t *testing.T) {
	doc, err := pipeline.Parse("\n- one\n- two\n")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	out := Markdown(doc)
	if !strings.Contains(out, "- one") || !strings.Contains(out, "- two") {
		t.Fatalf("got %q", out)
	}
}

func TestMarkdownRendersStrongInline(t *testing.T) {
	doc, err := pipeline.Parse("a *bold* word\n")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	out := Markdown(doc)
	if !strings.Contains(out, "**bold**") {
		t.Fatalf("got %q", out)
	}
}

func TestMarkdownRendersVerbatimAsCodeFence(t *testing.T) {
	doc, err := pipeline.Parse("Example:\n    raw content here\n::end::\n")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	out := Markdown(doc)
	if !strings.Contains(out, "```") {
		t.Fatalf("got %q", out)
	}
}
