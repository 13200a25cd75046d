// Command lex parses and converts .lex documents.
//
// Usage:
//
//	lex parse    <file.lex>...            Parse and print the document tree
//	lex tokenize <file.lex>...            Print the raw token stream
//	lex convert  FMT <file.lex>           Convert to tag, treeviz, or markdown
//	lex version                            Show version
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/spf13/afero"

	"github.com/txxt-lang/lex/pipeline"
)

const version = "0.1.0"

// CLI is the root command structure for Kong.
type CLI struct {
	Parse    ParseCmd    `cmd:"" help:"Parse .lex files and print their document tree."`
	Tokenize TokenizeCmd `cmd:"" help:"Print the raw token stream for .lex files."`
	Convert  ConvertCmd  `cmd:"" help:"Convert .lex files to tag, treeviz, or markdown."`
	Version  VersionCmd  `cmd:"" help:"Show version."`
}

// ParseCmd parses one or more files with the default Config and prints the
// resulting tree using the named serializer format.
type ParseCmd struct {
	Format string   `help:"Serializer format." enum:"tag,treeviz,markdown" default:"tag"`
	Files  []string `arg:"" type:"existingfile" help:"Files to parse."`
}

func (c *ParseCmd) Run() error {
	fs := afero.NewOsFs()
	for _, path := range c.Files {
		out, err := pipeline.ConvertFile(fs, path, c.Format)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		fmt.Printf("--- %s ---\n%s\n", path, out)
	}
	return nil
}

// TokenizeCmd prints the raw token stream for one or more files.
type TokenizeCmd struct {
	Files []string `arg:"" type:"existingfile" help:"Files to tokenize."`
}

func (c *TokenizeCmd) Run() error {
	fs := afero.NewOsFs()
	for _, path := range c.Files {
		tokens, err := pipeline.TokenizeFile(fs, path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		fmt.Printf("--- %s ---\n", path)
		for _, tok := range tokens {
			fmt.Printf("%-12s %-8s %q\n", tok.Kind, tok.Loc.Start, tok.Text)
		}
	}
	return nil
}

// ConvertCmd converts one file to the named format and prints it.
type ConvertCmd struct {
	Format string `arg:"" help:"Output format: tag, treeviz, or markdown." enum:"tag,treeviz,markdown"`
	File   string `arg:"" type:"existingfile" help:"File to convert."`
}

func (c *ConvertCmd) Run() error {
	fs := afero.NewOsFs()
	out, err := pipeline.ConvertFile(fs, c.File, c.Format)
	if err != nil {
		return fmt.Errorf("%s: %w", c.File, err)
	}
	fmt.Println(out)
	return nil
}

// VersionCmd prints the CLI version.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("lex v%s\n", version)
	return nil
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("lex"),
		kong.Description("lex — an indentation-sensitive document markup parser."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
