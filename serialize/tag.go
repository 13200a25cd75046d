package serialize

import (
	"sort"
	"strconv"
	"strings"

	"github.com/txxt-lang/lex/ast"
	"github.com/txxt-lang/lex/executor"
)

// Tag renders doc as a nested bracket-tag tree, one tag per node, attributes
// drawn from an Annotation's Label/Params/HasEnd (other kinds carry none),
// and each VerbatimBlock group written as a nested <group> element — the
// most literal serialization, closest to a debug dump of the tree shape
// itself.
func Tag(doc ast.ContentItem) string {
	var b strings.Builder
	writeTag(&b, doc, 0)
	return b.String()
}

func writeTag(b *strings.Builder, item ast.ContentItem, depth int) {
	indent := strings.Repeat("  ", depth)
	name := tagName(item.Kind)

	b.WriteString(indent)
	b.WriteString("<")
	b.WriteString(name)
	b.WriteString(tagAttrs(item))
	b.WriteString(">")

	text := item.Text()
	hasBlockChildren := len(item.Body) > 0 || len(item.Items) > 0 || len(item.Groups) > 0

	if text != "" {
		b.WriteString(escapeTagText(text))
	}
	if hasBlockChildren {
		b.WriteString("\n")
		for _, c := range item.Body {
			writeTag(b, c, depth+1)
		}
		for _, c := range item.Items {
			writeTag(b, c, depth+1)
		}
		for _, g := range item.Groups {
			writeVerbatimGroupTag(b, g, depth+1)
		}
		b.WriteString(indent)
	}

	b.WriteString("</")
	b.WriteString(name)
	b.WriteString(">\n")

	for _, a := range item.Annotations {
		writeTag(b, a, depth)
	}
}

func writeVerbatimGroupTag(b *strings.Builder, g ast.VerbatimGroup, depth int) {
	indent := strings.Repeat("  ", depth)
	mode := "inflow"
	if g.Mode == ast.Fullwidth {
		mode = "fullwidth"
	}
	b.WriteString(indent)
	b.WriteString(`<group mode="` + mode + `">`)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("  ", depth+1))
	b.WriteString("<subject>" + escapeTagText(g.Subject.Text()) + "</subject>\n")
	for _, raw := range g.Raw {
		b.WriteString(strings.Repeat("  ", depth+1))
		b.WriteString(escapeTagText(raw.Text()))
		b.WriteString("\n")
	}
	b.WriteString(indent)
	b.WriteString("</group>\n")
}

func tagName(k ast.Kind) string {
	name := k.String()
	return strings.ToLower(name[:1]) + name[1:]
}

// tagAttrs renders an Annotation's label, its Params (sorted by name for
// deterministic output), and HasEnd as tag attributes.
func tagAttrs(item ast.ContentItem) string {
	if item.Kind != ast.Annotation {
		return ""
	}
	var b strings.Builder
	vars := map[string]string{"label": item.Label}
	b.WriteString(executor.Interpolate(` label="${label}"`, vars))
	for _, name := range sortedKeys(item.Params) {
		b.WriteString(" " + name + `="` + item.Params[name] + `"`)
	}
	b.WriteString(` hasEnd="` + strconv.FormatBool(item.HasEnd) + `"`)
	return b.String()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func escapeTagText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
