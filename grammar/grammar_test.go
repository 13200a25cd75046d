package grammar

import (
	"testing"

	"github.com/txxt-lang/lex/linetree"
)

func line(t linetree.LineType) linetree.LineContainer {
	return linetree.Line(linetree.LineToken{Type: t})
}

func container(children ...linetree.LineContainer) linetree.LineContainer {
	return linetree.Nested(children)
}

func TestStepDefinition(t *testing.T) {
	children := []linetree.LineContainer{
		line(linetree.SubjectLine),
		container(line(linetree.ParagraphLine)),
		line(linetree.ParagraphLine),
	}

	m, ok := Step(children, true, SessionGate{First: true})
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Pattern != Definition {
		t.Errorf("pattern = %v, want Definition", m.Pattern)
	}
	if m.Consumed != 2 {
		t.Errorf("consumed = %d, want 2", m.Consumed)
	}
}

func TestStepSessionRequiresGate(t *testing.T) {
	children := []linetree.LineContainer{
		line(linetree.SubjectLine),
		line(linetree.BlankLineType),
		container(line(linetree.ParagraphLine)),
	}

	m, ok := Step(children, true, SessionGate{First: true})
	if !ok || m.Pattern != Session {
		t.Fatalf("expected Session match with gate allowed, got %v ok=%v", m.Pattern, ok)
	}
	if m.Consumed != 3 {
		t.Errorf("consumed = %d, want 3", m.Consumed)
	}

	// With sessions disallowed the subject line falls through to the
	// Paragraph pattern on its own (Definition needs the container to
	// follow directly, with no blank line in between).
	m, ok = Step(children, false, SessionGate{})
	if !ok || m.Pattern != Paragraph || m.Consumed != 1 {
		t.Fatalf("session pattern should not fire when disallowed; want Paragraph consuming 1, got %v consumed=%d ok=%v", m.Pattern, m.Consumed, ok)
	}
}

func TestStepListRequiresTwoItems(t *testing.T) {
	single := []linetree.LineContainer{
		line(linetree.ListLine),
	}
	m, ok := Step(single, true, SessionGate{First: true})
	if !ok || m.Pattern != Paragraph {
		t.Fatalf("single list line should fall back to Paragraph, got %v ok=%v", m.Pattern, ok)
	}

	multi := []linetree.LineContainer{
		line(linetree.BlankLineType),
		line(linetree.ListLine),
		line(linetree.ListLine),
		line(linetree.ListLine),
	}
	m, ok = Step(multi, true, SessionGate{First: true})
	if !ok || m.Pattern != List {
		t.Fatalf("3-item blank-prefixed list should match List, got %v ok=%v", m.Pattern, ok)
	}
	if m.Consumed != 4 {
		t.Errorf("consumed = %d, want 4", m.Consumed)
	}
}

func TestStepAnnotationBlockWithEnd(t *testing.T) {
	children := []linetree.LineContainer{
		line(linetree.AnnotationStartLine),
		container(line(linetree.ParagraphLine)),
		line(linetree.AnnotationEndLine),
		line(linetree.ParagraphLine),
	}
	m, ok := Step(children, true, SessionGate{First: true})
	if !ok || m.Pattern != AnnotationBlockWithEnd {
		t.Fatalf("expected AnnotationBlockWithEnd, got %v ok=%v", m.Pattern, ok)
	}
	if m.Consumed != 3 {
		t.Errorf("consumed = %d, want 3", m.Consumed)
	}
}

func TestStepVerbatimBlock(t *testing.T) {
	children := []linetree.LineContainer{
		line(linetree.SubjectLine),
		container(line(linetree.ParagraphLine), line(linetree.ParagraphLine)),
		line(linetree.AnnotationStartLine),
		line(linetree.ParagraphLine),
	}
	m, ok := Step(children, true, SessionGate{First: true})
	if !ok || m.Pattern != VerbatimBlock {
		t.Fatalf("expected VerbatimBlock, got %v ok=%v", m.Pattern, ok)
	}
	if m.Consumed != 3 {
		t.Errorf("consumed = %d, want 3", m.Consumed)
	}
	if m.Verbatim == nil || len(m.Verbatim.Groups) != 1 {
		t.Fatalf("expected 1 verbatim group, got %+v", m.Verbatim)
	}
}

func TestStepBlankLineGroup(t *testing.T) {
	children := []linetree.LineContainer{
		line(linetree.BlankLineType),
		line(linetree.BlankLineType),
		line(linetree.ParagraphLine),
	}
	m, ok := Step(children, true, SessionGate{First: true})
	if !ok || m.Pattern != BlankLineGroup {
		t.Fatalf("expected BlankLineGroup, got %v ok=%v", m.Pattern, ok)
	}
	if m.Consumed != 2 {
		t.Errorf("consumed = %d, want 2", m.Consumed)
	}
}

func TestSessionGateAllowed(t *testing.T) {
	cases := []struct {
		name string
		gate SessionGate
		want bool
	}{
		{"first", SessionGate{First: true}, true},
		{"level start", SessionGate{LevelStart: true}, true},
		{"prev blank", SessionGate{PrevBlank: true}, true},
		{"prev session", SessionGate{PrevSession: true}, true},
		{"prev had children", SessionGate{PrevHadChildren: true}, true},
		{"none", SessionGate{}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.gate.Allowed(); got != c.want {
				t.Errorf("Allowed() = %v, want %v", got, c.want)
			}
		})
	}
}
