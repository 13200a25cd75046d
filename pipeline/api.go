package pipeline

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/txxt-lang/lex/ast"
	lextoken "github.com/txxt-lang/lex/token"
)

// Parse runs the "default" Config and returns its Document.
func Parse(source string) (ast.ContentItem, error) {
	return ParseWith(source, "default")
}

// ParseWith runs the named Config and returns its Document, failing with
// ErrUnexpectedOutput if that Config doesn't end in a Document.
func ParseWith(source, configName string) (ast.ContentItem, error) {
	result, err := Execute(configName, source)
	if err != nil {
		return ast.ContentItem{}, err
	}
	if result.Kind != DocumentOutput {
		return ast.ContentItem{}, fmt.Errorf("%w: config %q produced %s", ErrUnexpectedOutput, configName, result.Kind)
	}
	return result.Document, nil
}

// Tokenize runs the "tokens-indentation" Config: the raw tokenizer (C1)
// followed by the indentation normalizer (C2), so leading Indentation
// tokens are replaced by Indent/Dedent markers. No later transformation is
// applied.
func Tokenize(source string) []lextoken.Token {
	result, err := Execute("tokens-indentation", source)
	if err != nil {
		// "tokens-indentation" is a built-in Config; this cannot fail.
		panic(err)
	}
	return result.Tokens
}

// TokenizeWith runs the named Config and returns its Tokens, failing with
// ErrUnexpectedOutput if that Config doesn't end in Tokens.
func TokenizeWith(source, configName string) ([]lextoken.Token, error) {
	result, err := Execute(configName, source)
	if err != nil {
		return nil, err
	}
	if result.Kind != TokensOutput {
		return nil, fmt.Errorf("%w: config %q produced %s", ErrUnexpectedOutput, configName, result.Kind)
	}
	return result.Tokens, nil
}

// Convert runs parse + the named serializer format ("tag", "treeviz",
// "markdown") and returns the rendered string.
func Convert(source, format string) (string, error) {
	result, err := Execute("lex-to-"+format, source)
	if err != nil {
		return "", err
	}
	if result.Kind != SerializedOutput {
		return "", fmt.Errorf("%w: format %q produced %s", ErrUnexpectedOutput, format, result.Kind)
	}
	return result.Serialized, nil
}

// ParseFile reads path through fs and parses it with the "default" Config.
func ParseFile(fs afero.Fs, path string) (ast.ContentItem, error) {
	source, err := readFile(fs, path)
	if err != nil {
		return ast.ContentItem{}, err
	}
	return Parse(source)
}

// TokenizeFile reads path through fs and tokenizes it.
func TokenizeFile(fs afero.Fs, path string) ([]lextoken.Token, error) {
	source, err := readFile(fs, path)
	if err != nil {
		return nil, err
	}
	return Tokenize(source), nil
}

// ConvertFile reads path through fs, parses it, and renders it with the
// named serializer format.
func ConvertFile(fs afero.Fs, path, format string) (string, error) {
	source, err := readFile(fs, path)
	if err != nil {
		return "", err
	}
	return Convert(source, format)
}

// ExecuteFile reads path through fs and runs the named Config over it.
func ExecuteFile(fs afero.Fs, configName, path string) (Result, error) {
	source, err := readFile(fs, path)
	if err != nil {
		return Result{}, err
	}
	return Execute(configName, source)
}

func readFile(fs afero.Fs, path string) (string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", fmt.Errorf("pipeline: reading %s: %w", path, err)
	}
	return string(data), nil
}
