package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/metaphox/tinyc/config"
)

const program = "x = 5;\nputc(x)\n"

// run executes the command line with args and returns stdout and the log output.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvPath, "")
	var out, logs bytes.Buffer
	root := NewRootCmd(&logs)
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), logs.String(), err
}

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLexCommand(t *testing.T) {
	in := writeInput(t, t.TempDir(), "prog.c", program)
	out, _, err := run(t, "lex", in)
	if err != nil {
		t.Fatalf("lex: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 9 {
		t.Fatalf("got %d lines, want 9:\n%s", len(lines), out)
	}
	if lines[0] != "1     1     Identifier     x" {
		t.Errorf("first line: got %q", lines[0])
	}
	if !strings.HasSuffix(lines[len(lines)-1], "End_of_input") {
		t.Errorf("last line: got %q", lines[len(lines)-1])
	}
}

func TestParseCommand(t *testing.T) {
	in := writeInput(t, t.TempDir(), "prog.c", program)
	out, _, err := run(t, "parse", in)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := "Sequence\n" +
		"Sequence\n" +
		";\n" +
		"Assign\n" +
		"Identifier     x\n" +
		"Integer        5\n" +
		"Prtc\n" +
		"Identifier     x\n" +
		";\n"
	if out != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}

// TestLexThenParseTokens drives the full pipeline through files: lex into an
// output directory, then parse the token dump.
func TestLexThenParseTokens(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "prog.c", program)
	outDir := t.TempDir()

	if _, logs, err := run(t, "lex", "-o", outDir, in); err != nil {
		t.Fatalf("lex: %v", err)
	} else if !strings.Contains(logs, "run_id=") {
		t.Errorf("log lines should carry a run id: %q", logs)
	}

	dump := filepath.Join(outDir, "prog.lex")
	fromTokens, _, err := run(t, "parse", "--tokens", dump)
	if err != nil {
		t.Fatalf("parse --tokens: %v", err)
	}
	fromSource, _, err := run(t, "parse", in)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if fromTokens != fromSource {
		t.Errorf("dumps differ:\nfrom tokens:\n%s\nfrom source:\n%s", fromTokens, fromSource)
	}
}

func TestParseCommand_StrictConfig(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "prog.c", program)
	cfg := writeInput(t, dir, "tinyc.toml", "[parser]\nstrict_putc = true\n")

	_, _, err := run(t, "--config", cfg, "parse", in)
	if err == nil || !strings.Contains(err.Error(), "Putc: Expecting 'Semicolon'") {
		t.Fatalf("got %v, want a strict putc error", err)
	}
}

func TestParseCommand_ErrorNamesFile(t *testing.T) {
	in := writeInput(t, t.TempDir(), "bad.c", "x = 1 | 2;")
	_, _, err := run(t, "parse", in)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "bad.c") || !strings.Contains(err.Error(), "in line 1, pos 7") {
		t.Errorf("error %q should name the file and position", err)
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, "version")
	if err != nil || !strings.HasPrefix(out, "tinyc v"+Version) {
		t.Errorf("got %q, %v", out, err)
	}
}

func TestOutputPath(t *testing.T) {
	if got := outputPath("out", "src/fizz.buzz.c", ".lex"); got != filepath.Join("out", "fizz.buzz.lex") {
		t.Errorf("got %q", got)
	}
}
