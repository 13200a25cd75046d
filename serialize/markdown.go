package serialize

import (
	"strings"

	"github.com/txxt-lang/lex/ast"
	"github.com/txxt-lang/lex/executor"
	"github.com/txxt-lang/lex/inline"
)

// Markdown renders doc as GitHub-flavored markdown: Session/Definition
// become headings, List/ListItem become a bullet list (nested bodies
// indented two spaces per level), Annotation becomes a blockquote, and
// VerbatimBlock becomes a fenced code block. It is a lossy, best-effort
// rendering — markdown has no native concept of a Session/Definition
// distinction or of attached annotations, so both collapse into their
// nearest markdown equivalent.
func Markdown(doc ast.ContentItem) string {
	var b strings.Builder
	writeMarkdownBody(&b, doc.Body, 0)
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeMarkdownBody(b *strings.Builder, items []ast.ContentItem, depth int) {
	for _, item := range items {
		writeMarkdownNode(b, item, depth)
	}
}

func writeMarkdownNode(b *strings.Builder, item ast.ContentItem, depth int) {
	switch item.Kind {
	case ast.Paragraph:
		b.WriteString(renderInline(item))
		b.WriteString("\n\n")
	case ast.Session, ast.Definition:
		b.WriteString("### " + renderInline(item) + "\n\n")
		writeMarkdownBody(b, item.Body, depth)
	case ast.List:
		for _, li := range item.Items {
			writeMarkdownListItem(b, li, depth)
		}
		b.WriteString("\n")
	case ast.Annotation:
		b.WriteString("> " + annotationLine(item) + "\n\n")
		writeMarkdownBody(b, item.Body, depth)
	case ast.VerbatimBlock:
		writeMarkdownVerbatim(b, item)
	case ast.BlankLineGroup:
		// No markdown equivalent needed: paragraph spacing already carries it.
	default:
		writeMarkdownBody(b, item.Body, depth)
	}
	for _, a := range item.Annotations {
		writeMarkdownNode(b, a, depth)
	}
}

func writeMarkdownListItem(b *strings.Builder, li ast.ContentItem, depth int) {
	indent := strings.Repeat("  ", depth)
	b.WriteString(indent + "- " + renderInline(li) + "\n")
	if li.HasBody {
		var nested strings.Builder
		writeMarkdownBody(&nested, li.Body, depth+1)
		b.WriteString(nested.String())
	}
}

func annotationLine(item ast.ContentItem) string {
	vars := map[string]string{"label": item.Label}
	line := executor.Interpolate("::${label}", vars)
	for _, name := range sortedKeys(item.Params) {
		line += " " + name + "=" + item.Params[name]
	}
	return line + "::"
}

func writeMarkdownVerbatim(b *strings.Builder, item ast.ContentItem) {
	for _, g := range item.Groups {
		b.WriteString("```\n")
		b.WriteString(g.Subject.Text())
		b.WriteString("\n")
		for _, raw := range g.Raw {
			b.WriteString(raw.Text())
			b.WriteString("\n")
		}
		b.WriteString("```\n\n")
	}
}

// renderInline re-flattens an already-parsed Inline tree back to markdown
// syntax; if Inline hasn't been filled in yet (the "linebased" Config
// skips StepInline), it falls back to the node's raw Text.
func renderInline(item ast.ContentItem) string {
	if item.Inline == nil {
		return item.Text()
	}
	var b strings.Builder
	for _, n := range item.Inline {
		b.WriteString(renderInlineNode(n))
	}
	return b.String()
}

func renderInlineNode(n inline.Node) string {
	switch n.Kind {
	case inline.TextNode:
		return n.Text
	case inline.StrongNode:
		return "**" + renderInlineChildren(n.Children) + "**"
	case inline.EmphasisNode:
		return "_" + renderInlineChildren(n.Children) + "_"
	case inline.CodeNode:
		return "`" + n.Text + "`"
	case inline.MathNode:
		return "$" + n.Text + "$"
	case inline.ReferenceNode:
		return renderReference(n)
	default:
		return n.Text
	}
}

func renderInlineChildren(nodes []inline.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		b.WriteString(renderInlineNode(n))
	}
	return b.String()
}

func renderReference(n inline.Node) string {
	switch n.RefKind {
	case inline.RefUrl:
		return "<" + n.RefTarget + ">"
	case inline.RefFootnoteLabeled, inline.RefFootnoteNumber:
		return "[^" + n.RefTarget + "]"
	default:
		return "[" + n.RefTarget + "]"
	}
}
