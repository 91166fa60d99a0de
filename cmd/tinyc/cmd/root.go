// Package cmd implements the tinyc command line: lexing source files into
// token dumps and parsing source files or token dumps into AST dumps.
package cmd

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/metaphox/tinyc/config"
	"github.com/metaphox/tinyc/logging"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	cfgFile string
	verbose bool
	outDir  string

	cfg *config.Config
	log *slog.Logger
}

// Execute runs the command line with os.Args.
func Execute() error {
	return NewRootCmd(os.Stderr).Execute()
}

// NewRootCmd builds the command tree. Log records go to logOut.
func NewRootCmd(logOut io.Writer) *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "tinyc",
		Short: "Front end for the tiny imperative language",
		Long: `tinyc turns source text into a token stream and an abstract syntax tree.

Commands:
  lex      - write the token dump of each source file
  parse    - write the AST dump of each source file or token dump
  version  - print version information`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(logOut)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (.toml, .yaml); default $"+config.EnvPath)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().StringVarP(&a.outDir, "output", "o", "", "write one output file per input into this directory")

	root.AddCommand(newLexCmd(a), newParseCmd(a), newVersionCmd())
	return root
}

func (a *app) init(logOut io.Writer) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		a.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}
	if a.verbose {
		a.cfg.Log.Level = "debug"
	}
	a.log, _ = logging.WithRun(logging.New(logOut, a.cfg.Log))
	return nil
}

// emit renders each input with render and writes the result either to out or,
// when an output directory is set, to <dir>/<base><ext>. The first failure
// aborts the remaining inputs.
func (a *app) emit(out io.Writer, inputs []string, ext string, render func(path string, w io.Writer) error) error {
	for _, path := range inputs {
		var buf bytes.Buffer
		if err := render(path, &buf); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		if a.outDir == "" {
			if _, err := out.Write(buf.Bytes()); err != nil {
				return err
			}
			continue
		}

		dest := outputPath(a.outDir, path, ext)
		if err := os.WriteFile(dest, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", dest, err)
		}
		a.log.Info("wrote output", "input", path, "output", dest)
	}
	return nil
}

// outputPath replaces the extension of in's base name with ext inside dir.
func outputPath(dir, in, ext string) string {
	base := filepath.Base(in)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, base+ext)
}

func readSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
