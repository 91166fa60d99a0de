package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/metaphox/tinyc/ast"
	"github.com/metaphox/tinyc/lexer"
	"github.com/metaphox/tinyc/parser"
)

func newParseCmd(a *app) *cobra.Command {
	var fromTokens bool
	cmd := &cobra.Command{
		Use:   "parse FILE...",
		Short: "Write the AST dump of each source file",
		Long: `Parse each FILE and write its AST in pre-order, one node per line.

With --tokens each FILE is a token dump as written by "tinyc lex" instead of
source text.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.emit(cmd.OutOrStdout(), args, ".par", func(path string, w io.Writer) error {
				return a.parseFile(path, fromTokens, w)
			})
		},
	}
	cmd.Flags().BoolVar(&fromTokens, "tokens", false, "inputs are token dumps")
	return cmd
}

func (a *app) parseFile(path string, fromTokens bool, w io.Writer) error {
	opts := a.cfg.ParserOptions()
	opts.Logger = a.log.With("file", path)

	var tree *ast.Tree
	if fromTokens {
		toks, err := readTokenDump(path)
		if err != nil {
			return err
		}
		if tree, err = parser.ParseTokens(toks, opts); err != nil {
			return err
		}
	} else {
		src, err := readSource(path)
		if err != nil {
			return err
		}
		if tree, err = parser.ParseString(src, a.cfg.LexerOptions(), opts); err != nil {
			return err
		}
	}
	return ast.Fprint(w, tree)
}

func readTokenDump(path string) ([]ast.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return lexer.ReadTokens(f)
}
