package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/txxt-lang/lex/inline"
)

func TestParseInlineFillsParagraphText(t *testing.T) {
	doc := pipeline("a *bold* word\n")
	require.Len(t, doc.Body, 1)

	ParseInline(&doc)

	para := doc.Body[0]
	require.NotNil(t, para.Inline)
	require.Len(t, para.Inline, 3)
	assert.Equal(t, inline.TextNode, para.Inline[0].Kind)
	assert.Equal(t, inline.StrongNode, para.Inline[1].Kind)
	assert.Equal(t, inline.TextNode, para.Inline[2].Kind)
}

func TestParseInlineSkipsVerbatimBlock(t *testing.T) {
	doc := pipeline("Example:\n    raw *not bold* here\n::end::\n")
	require.Len(t, doc.Body, 1)
	require.Equal(t, VerbatimBlock, doc.Body[0].Kind)

	ParseInline(&doc)

	assert.Nil(t, doc.Body[0].Inline)
}

func TestParseInlineFillsAnnotationLabelLine(t *testing.T) {
	doc := pipeline("::note style=warning::\n")
	require.Len(t, doc.Body, 1)

	ParseInline(&doc)

	assert.NotNil(t, doc.Body[0].Inline)
}
