package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/term"
	"github.com/cottand/lamb/internal/config"
	"github.com/cottand/lamb/internal/log"
	"github.com/cottand/lamb/lamb"
	"github.com/cottand/lamb/util"
	"github.com/kr/pretty"
	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var ReplCmd = &cobra.Command{
	Use:          "repl",
	Short:        "Read and evaluate expressions interactively",
	Long:         "Read and evaluate expressions interactively.\nA line ending in ; continues on the next one. Commands: :ast <expr>, :go <expr>, :q",
	RunE:         runRepl,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
}

var replLogger = log.DefaultLogger.With("section", log.SectionRepl)

const historyFile = ".lamb_history"

// lineReader reads one line after showing prompt. It returns io.EOF when
// input ends, and liner.ErrPromptAborted when the current input is abandoned
type lineReader interface {
	Prompt(prompt string) (string, error)
}

type historyRecorder interface {
	AppendHistory(item string)
}

func runRepl(cmd *cobra.Command, _ []string) error {
	stdin, isFile := cmd.InOrStdin().(*os.File)
	if !isFile || !term.IsTerminal(stdin.Fd()) || !liner.TerminalSupported() {
		return Repl(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), settings)
	}
	return terminalRepl(cmd.Context(), cmd.OutOrStdout(), settings)
}

// terminalRepl is Repl with line editing and history, reading from the terminal
func terminalRepl(ctx context.Context, out io.Writer, cfg config.Config) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	err := newRepl(cfg, out).loop(ctx, ln)

	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
	return err
}

type repl struct {
	cfg    config.Config
	out    io.Writer
	styles styles
}

func newRepl(cfg config.Config, out io.Writer) repl {
	return repl{cfg: cfg, out: out, styles: newStyles(cfg.Color)}
}

// Repl reads programs from in until :q or the end of input, and
// writes their results to out. Errors in programs do not stop the loop
func Repl(ctx context.Context, in io.Reader, out io.Writer, cfg config.Config) error {
	r := newRepl(cfg, out)
	return r.loop(ctx, scannerReader{
		scanner: bufio.NewScanner(in),
		out:     out,
		style:   r.styles.prompt,
	})
}

func (r repl) loop(ctx context.Context, lines lineReader) error {
	for {
		input, err := r.read(lines)
		switch {
		case errors.Is(err, io.EOF):
			r.handle(ctx, input)
			_, _ = fmt.Fprintln(r.out)
			return nil
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case err != nil:
			return errors.Wrap(err, "could not read input")
		}

		if recorder, ok := lines.(historyRecorder); ok && strings.TrimSpace(input) != "" {
			recorder.AppendHistory(strings.ReplaceAll(input, "\n", " "))
		}
		if quit := r.handle(ctx, input); quit {
			return nil
		}
	}
}

// read reads lines until one does not end in ;, and returns them joined.
// On error it returns what was read so far
func (r repl) read(lines lineReader) (string, error) {
	var pending []string
	for {
		prompt := r.cfg.Prompt
		if len(pending) > 0 {
			prompt = r.cfg.ContinuationPrompt
		}
		line, err := lines.Prompt(prompt)
		if err != nil {
			return strings.Join(pending, "\n"), err
		}
		pending = append(pending, line)
		if !strings.HasSuffix(strings.TrimSpace(line), ";") {
			return strings.Join(pending, "\n"), nil
		}
	}
}

// scannerReader reads lines from input that is not a terminal,
// writing styled prompts to out
type scannerReader struct {
	scanner *bufio.Scanner
	out     io.Writer
	style   lipgloss.Style
}

func (s scannerReader) Prompt(prompt string) (string, error) {
	_, _ = fmt.Fprint(s.out, s.style.Render(prompt))
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// handle runs one input, which is either a command or a program
func (r repl) handle(ctx context.Context, input string) (quit bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return false
	}
	replLogger.Debug("read input", "input", trimmed)

	if !strings.HasPrefix(trimmed, ":") {
		r.runProgram(ctx, input)
		return false
	}

	command, rest := util.StringTakeUntil(trimmed, ' ')
	switch command {
	case ":q", ":quit":
		return true
	case ":ast":
		p, err := lamb.NewProgram(rest)
		if err != nil {
			r.styles.writeError(r.out, rest, err)
			return false
		}
		_, _ = fmt.Fprintln(r.out, r.styles.dim.Render(fmt.Sprintf("%# v", pretty.Formatter(p.Expr()))))
	case ":go":
		p, err := lamb.NewProgram(rest)
		if err != nil {
			r.styles.writeError(r.out, rest, err)
			return false
		}
		goSrc, err := p.GoSource()
		if err != nil {
			r.styles.writeError(r.out, rest, err)
			return false
		}
		_, _ = fmt.Fprint(r.out, goSrc)
	default:
		_, _ = fmt.Fprintln(r.out, r.styles.err.Render(fmt.Sprintf("unknown command %s, expected :ast, :go or :q", command)))
	}
	return false
}

func (r repl) runProgram(ctx context.Context, input string) {
	p, err := lamb.NewProgram(input)
	if err != nil {
		r.styles.writeError(r.out, input, err)
		return
	}
	r.styles.writeResult(r.out, p, p.Check(ctx, showOf(r.cfg)))
}
