package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/metaphox/tinyc/lexer"
)

func newLexCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lex FILE...",
		Short: "Write the token dump of each source file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.emit(cmd.OutOrStdout(), args, ".lex", a.lexFile)
		},
	}
}

func (a *app) lexFile(path string, w io.Writer) error {
	src, err := readSource(path)
	if err != nil {
		return err
	}
	a.log.Debug("lexing", "file", path, "bytes", len(src))
	return lexer.WriteTokens(w, lexer.NewWithOptions(src, a.cfg.LexerOptions()))
}
