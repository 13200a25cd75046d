// Package pipeline is the orchestrator: a registry of named Configs, each
// an ordered list of stages, executed over a source string to produce a
// tagged Tokens | Document | Serialized result — the single entry point
// the rest of the module (and cmd/lex) drives the parser through.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/txxt-lang/lex/ast"
	"github.com/txxt-lang/lex/attach"
	"github.com/txxt-lang/lex/lexer"
	"github.com/txxt-lang/lex/linetree"
	"github.com/txxt-lang/lex/serialize"
	lextoken "github.com/txxt-lang/lex/token"
	"github.com/txxt-lang/lex/transform"
)

// ErrUnknownConfig is returned when Execute is asked for a Config name the
// Registry doesn't carry.
var ErrUnknownConfig = errors.New("pipeline: unknown config")

// ErrUnexpectedOutput is returned when a caller asks for a specific output
// shape (Parse wants a Document, Tokenize wants Tokens) but the named
// Config produces a different one.
var ErrUnexpectedOutput = errors.New("pipeline: unexpected output kind")

// OutputKind tags Result's variant.
type OutputKind int

const (
	TokensOutput OutputKind = iota
	DocumentOutput
	SerializedOutput
)

func (k OutputKind) String() string {
	switch k {
	case TokensOutput:
		return "Tokens"
	case DocumentOutput:
		return "Document"
	case SerializedOutput:
		return "Serialized"
	default:
		return "Unknown"
	}
}

// Result is the orchestrator's tagged return value: exactly one of its
// payload fields is meaningful, selected by Kind.
type Result struct {
	Kind       OutputKind
	Tokens     []lextoken.Token
	Document   ast.ContentItem
	Serialized string
}

// Step names one stage a Config can run, in the fixed dependency order the
// pipeline always respects — a Config is a prefix/selection of this order,
// never a reordering of it.
type Step int

const (
	StepTokenize Step = iota
	StepIndentation
	StepBlankLines
	StepClassify
	StepTree
	StepDocument // grammar engine (C6) + AST builder (C7)
	StepAttach   // annotation attachment (C8)
	StepInline   // inline parser (C9)
	StepSerialize
)

// Config is one named pipeline configuration: the steps to run, and, for a
// Config ending in StepSerialize, which serializer format to hand the
// Document to.
type Config struct {
	Name   string
	Steps  []Step
	Format string
}

// Registry holds the named Configs Execute can run by name.
type Registry struct {
	configs map[string]Config
}

// NewRegistry builds a Registry seeded with the built-in Configs: "default",
// "tokens-indentation", "linebased", and a "lex-to-<format>" entry for
// every format serialize.Formats lists.
func NewRegistry() *Registry {
	r := &Registry{configs: make(map[string]Config)}
	r.Register(Config{
		Name:  "default",
		Steps: []Step{StepTokenize, StepIndentation, StepBlankLines, StepClassify, StepTree, StepDocument, StepAttach, StepInline},
	})
	r.Register(Config{
		Name:  "tokens-indentation",
		Steps: []Step{StepTokenize, StepIndentation},
	})
	r.Register(Config{
		Name:  "linebased",
		Steps: []Step{StepTokenize, StepIndentation, StepBlankLines, StepClassify, StepTree, StepDocument},
	})
	for _, format := range serialize.Formats {
		r.Register(Config{
			Name:   "lex-to-" + format,
			Steps:  []Step{StepTokenize, StepIndentation, StepBlankLines, StepClassify, StepTree, StepDocument, StepAttach, StepInline, StepSerialize},
			Format: format,
		})
	}
	return r
}

// Register adds or replaces a Config.
func (r *Registry) Register(cfg Config) {
	r.configs[cfg.Name] = cfg
}

// Default is the Registry every top-level function (Execute/Parse/
// Tokenize/Convert and their *With/*File variants) runs against, a single
// package-constructed value reused across every command instead of each
// one building its own.
var Default = NewRegistry()

// Execute runs the named Config over source against the Default registry.
func Execute(configName, source string) (Result, error) {
	return Default.Execute(configName, source)
}

// Execute runs a Config from this Registry over source.
func (r *Registry) Execute(configName, source string) (Result, error) {
	cfg, ok := r.configs[configName]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownConfig, configName)
	}
	return runConfig(cfg, source)
}

// runConfig threads source through cfg.Steps in order. The AST builder is
// documented as total (every grammar match has a matching builder case),
// so the recover here is a safety net for the pipeline boundary rather
// than an expected path — see ast.InvariantError.
func runConfig(cfg Config, source string) (result Result, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			if ierr, ok := rec.(*ast.InvariantError); ok {
				err = ierr
				return
			}
			err = fmt.Errorf("pipeline: panic building document: %v", rec)
		}
	}()

	var (
		tokens     []lextoken.Token
		lineTokens []linetree.LineToken
		containers []linetree.LineContainer
		doc        ast.ContentItem
		haveDoc    bool
	)

	for _, step := range cfg.Steps {
		switch step {
		case StepTokenize:
			tokens = lexer.Tokenize(source)
		case StepIndentation:
			tokens = transform.Indentation(tokens)
		case StepBlankLines:
			tokens = transform.BlankLines(tokens)
		case StepClassify:
			lineTokens = transform.Classify(tokens)
		case StepTree:
			containers = transform.Tree(lineTokens)
		case StepDocument:
			doc = ast.Build(containers)
			haveDoc = true
		case StepAttach:
			attach.AttachDocument(&doc)
		case StepInline:
			ast.ParseInline(&doc)
		case StepSerialize:
			serialized, serr := serialize.Render(cfg.Format, doc)
			if serr != nil {
				return Result{}, serr
			}
			return Result{Kind: SerializedOutput, Serialized: serialized}, nil
		}
	}

	if haveDoc {
		return Result{Kind: DocumentOutput, Document: doc}, nil
	}
	return Result{Kind: TokensOutput, Tokens: tokens}, nil
}
