package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/txxt-lang/lex/ast"
)

func TestExecuteDefaultReturnsDocument(t *testing.T) {
	result, err := Execute("default", "Term:\n    body text\n")
	require.NoError(t, err)
	require.Equal(t, DocumentOutput, result.Kind)
	require.Len(t, result.Document.Body, 1)
	assert.Equal(t, ast.Definition, result.Document.Body[0].Kind)
	assert.NotNil(t, result.Document.Body[0].Body[0].Inline)
}

func TestExecuteTokensIndentationReturnsTokens(t *testing.T) {
	result, err := Execute("tokens-indentation", "a paragraph\n")
	require.NoError(t, err)
	require.Equal(t, TokensOutput, result.Kind)
	assert.NotEmpty(t, result.Tokens)
}

func TestExecuteLinebasedSkipsInlineParsing(t *testing.T) {
	result, err := Execute("linebased", "a *bold* word\n")
	require.NoError(t, err)
	require.Equal(t, DocumentOutput, result.Kind)
	assert.Nil(t, result.Document.Body[0].Inline)
}

func TestExecuteUnknownConfigErrors(t *testing.T) {
	_, err := Execute("nonsense", "a paragraph\n")
	assert.ErrorIs(t, err, ErrUnknownConfig)
}

func TestExecuteSerializeFormats(t *testing.T) {
	for _, format := range []string{"tag", "treeviz", "markdown"} {
		result, err := Execute("lex-to-"+format, "a paragraph\n")
		require.NoError(t, err, "format %s", format)
		require.Equal(t, SerializedOutput, result.Kind)
		assert.NotEmpty(t, result.Serialized)
	}
}

func TestExecuteAttachesLeadingAnnotationToDocument(t *testing.T) {
	doc, err := Parse(":: note ::\n\nImportant point.\n")
	require.NoError(t, err)

	require.Len(t, doc.Annotations, 1)
	assert.Equal(t, "note", doc.Annotations[0].Label)
	require.Len(t, doc.Body, 1)
	assert.Equal(t, ast.Paragraph, doc.Body[0].Kind)
}

func TestParseAndConvertHelpers(t *testing.T) {
	doc, err := Parse("a paragraph\n")
	require.NoError(t, err)
	assert.Len(t, doc.Body, 1)

	out, err := Convert("a paragraph\n", "tag")
	require.NoError(t, err)
	assert.Contains(t, out, "<paragraph>")

	toks := Tokenize("a paragraph\n")
	assert.NotEmpty(t, toks)
}
