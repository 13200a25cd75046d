package serialize

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/txxt-lang/lex/ast"
)

var kindStyles = map[ast.Kind]lipgloss.Style{
	ast.Document:       lipgloss.NewStyle().Bold(true),
	ast.Paragraph:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	ast.Session:        lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
	ast.Definition:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	ast.List:           lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	ast.ListItem:       lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	ast.Annotation:     lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Italic(true),
	ast.VerbatimBlock:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	ast.BlankLineGroup: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Faint(true),
}

const (
	branchMid  = "├─ "
	branchLast = "└─ "
	branchGap  = "   "
	branchBar  = "│  "
)

// Treeviz renders doc as an indentation-guided tree, each node's Kind
// colored per kindStyles, summary text truncated to one line. Meant for
// terminal inspection of a document's shape, not round-tripping.
func Treeviz(doc ast.ContentItem) string {
	var b strings.Builder
	b.WriteString(styleLabel(doc))
	b.WriteString("\n")
	writeTreeviz(&b, children(doc), "")
	return b.String()
}

// children flattens a node's Body/Items/Annotations into one ordered list
// of labeled sub-trees for rendering purposes only — the underlying
// ContentItem slices stay untouched. A VerbatimBlock's Groups are not
// rendered as sub-trees.
func children(item ast.ContentItem) []ast.ContentItem {
	out := make([]ast.ContentItem, 0, len(item.Body)+len(item.Items)+len(item.Annotations))
	out = append(out, item.Body...)
	out = append(out, item.Items...)
	out = append(out, item.Annotations...)
	return out
}

func writeTreeviz(b *strings.Builder, items []ast.ContentItem, prefix string) {
	for i, item := range items {
		last := i == len(items)-1
		branch := branchMid
		nextPrefix := prefix + branchBar
		if last {
			branch = branchLast
			nextPrefix = prefix + branchGap
		}
		b.WriteString(prefix)
		b.WriteString(branch)
		b.WriteString(styleLabel(item))
		b.WriteString("\n")
		writeTreeviz(b, children(item), nextPrefix)
	}
}

func styleLabel(item ast.ContentItem) string {
	style, ok := kindStyles[item.Kind]
	if !ok {
		style = lipgloss.NewStyle()
	}
	label := item.Kind.String()
	if summary := summaryText(item); summary != "" {
		label += ": " + summary
	}
	return style.Render(label)
}

func summaryText(item ast.ContentItem) string {
	switch item.Kind {
	case ast.Annotation:
		return item.Label
	default:
		text := strings.TrimSpace(firstLine(item.Text()))
		return truncate(text, 60)
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
