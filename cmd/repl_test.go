package cmd

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/cottand/lamb/internal/config"
	"github.com/peterh/liner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainConfig() config.Config {
	cfg := config.Default()
	cfg.Color = false
	return cfg
}

func runReplOn(t *testing.T, cfg config.Config, input string) string {
	t.Helper()
	out := bytes.Buffer{}
	require.NoError(t, Repl(context.Background(), strings.NewReader(input), &out, cfg))
	return out.String()
}

func TestReplPrintsValueAndType(t *testing.T) {
	out := runReplOn(t, plainConfig(), "let m = mult 21 in m 2\n")
	assert.Contains(t, out, "> 42 : Int\n")
}

func TestReplKeepsGoingAfterErrors(t *testing.T) {
	out := runReplOn(t, plainConfig(), "1 2\nundefinedName\nlet x in x\nintToString 4\n")

	assert.Contains(t, out, "(E003)")
	assert.Contains(t, out, "(E002) unbound variable 'undefinedName'")
	// ill-typed programs are not evaluated
	assert.NotContains(t, out, "(E006)")
	assert.NotContains(t, out, "(E005)")
	assert.Contains(t, out, "(E001)")
	assert.Contains(t, out, `"4" : String`)
}

func TestReplContinuation(t *testing.T) {
	out := runReplOn(t, plainConfig(), "let x = 1;\n  let y = add x 1;\ny\n")
	assert.Contains(t, out, "> | | 2 : Int\n")
}

func TestReplDisplayFlags(t *testing.T) {
	cfg := plainConfig()
	require.NoError(t, cfg.SetShow("types"))
	assert.Contains(t, runReplOn(t, cfg, `\x -> x`+"\n"), "> 'a -> 'a\n")

	require.NoError(t, cfg.SetShow("values"))
	assert.Contains(t, runReplOn(t, cfg, `\x -> x`+"\n"), "> <function>\n")

	// programs are type-checked even when types are not shown
	out := runReplOn(t, cfg, `let f = \x -> 1; let a = f 1; f true`+"\n")
	assert.Contains(t, out, "(E003)")
	assert.NotContains(t, out, "> 1\n")
}

func TestReplSurvivesNonTerminatingPrograms(t *testing.T) {
	out := runReplOn(t, plainConfig(), "(x -> x x) (x -> x x)\nlet w = \\x -> x x; w w\n1\n")
	assert.Contains(t, out, "(E004) occurs check failed: `'a` occurs in `'a -> 'b`")
	assert.Contains(t, out, "> 1 : Int\n")
}

func TestReplCommands(t *testing.T) {
	out := runReplOn(t, plainConfig(), ":ast add 1\n:go intToString 3\n:what\n:q\n1\n")

	assert.Contains(t, out, "ast.Call")
	assert.Contains(t, out, "func Main() any")
	assert.Contains(t, out, "unknown command :what")
	// nothing is evaluated after :q
	assert.NotContains(t, out, "1 : Int")
}

func TestReplPrompts(t *testing.T) {
	cfg := plainConfig()
	cfg.Prompt = "λ "
	out := runReplOn(t, cfg, "true\n")
	assert.True(t, strings.HasPrefix(out, "λ true : Bool\n"), out)
}

// scriptedLines stands in for a terminal, replaying one answer per prompt
type scriptedLines struct {
	answers []any
	prompts []string
	history []string
}

func (s *scriptedLines) Prompt(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.answers) == 0 {
		return "", io.EOF
	}
	next := s.answers[0]
	s.answers = s.answers[1:]
	if err, ok := next.(error); ok {
		return "", err
	}
	return next.(string), nil
}

func (s *scriptedLines) AppendHistory(item string) {
	s.history = append(s.history, item)
}

func TestReplOverTerminalLines(t *testing.T) {
	cfg := plainConfig()
	lines := &scriptedLines{answers: []any{
		"let x = 1;",
		liner.ErrPromptAborted,
		"let y = 2;",
		"add y 1",
		":q",
		"never read",
	}}
	out := bytes.Buffer{}

	require.NoError(t, newRepl(cfg, &out).loop(context.Background(), lines))

	// the aborted line drops what was pending and starts a fresh input
	assert.Equal(t, []string{"> ", "| ", "> ", "| ", "> "}, lines.prompts)
	assert.Equal(t, []string{"let y = 2; add y 1", ":q"}, lines.history)
	// prompts are drawn by the terminal, not written to out
	assert.Equal(t, "3 : Int\n", out.String())
}

func TestReplEndsWithNewlineAtEOF(t *testing.T) {
	lines := &scriptedLines{answers: []any{"let x = 5;", "x"}}
	out := bytes.Buffer{}
	require.NoError(t, newRepl(plainConfig(), &out).loop(context.Background(), lines))
	assert.Equal(t, "5 : Int\n\n", out.String())
}

func TestReplReportsReadFailures(t *testing.T) {
	lines := &scriptedLines{answers: []any{"1", liner.ErrInvalidPrompt}}
	out := bytes.Buffer{}
	err := newRepl(plainConfig(), &out).loop(context.Background(), lines)
	require.ErrorIs(t, err, liner.ErrInvalidPrompt)
	assert.Contains(t, out.String(), "1 : Int\n")
}
