package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/cottand/lamb/eval"
	"github.com/cottand/lamb/frontend/lamberr"
	"github.com/cottand/lamb/internal/config"
	"github.com/cottand/lamb/lamb"
	"github.com/pkg/errors"
)

type styles struct {
	prompt lipgloss.Style
	value  lipgloss.Style
	typ    lipgloss.Style
	err    lipgloss.Style
	dim    lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{prompt: plain, value: plain, typ: plain, err: plain, dim: plain}
	}
	return styles{
		prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
		value:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		typ:    lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
		err:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

func showOf(cfg config.Config) lamb.Show {
	return lamb.Show{Types: cfg.ShowTypes, Values: cfg.ShowValues}
}

// writeResult prints the value and type in res as value : Type, or just
// one of them. It reports whether there were errors, which are printed instead
func (s styles) writeResult(out io.Writer, p *lamb.Program, res lamb.Result) (hadErrors bool) {
	if res.Errors.HasError() {
		s.writeErrors(out, p, res.Errors)
		return true
	}

	var parts []string
	if res.Value != nil {
		parts = append(parts, s.value.Render(eval.Show(res.Value)))
	}
	if res.Type != nil {
		parts = append(parts, s.typ.Render(res.Type.String()))
	}
	if len(parts) > 0 {
		_, _ = fmt.Fprintln(out, strings.Join(parts, s.dim.Render(" : ")))
	}
	return false
}

func (s styles) writeErrors(out io.Writer, p *lamb.Program, errs *lamberr.Errors) {
	formatted := strings.TrimSuffix(p.FormatErrors(errs), "\n")
	_, _ = fmt.Fprintln(out, s.err.Render(formatted))
}

// writeError prints err, against src if it is a LamError
func (s styles) writeError(out io.Writer, src string, err error) {
	var lamErr lamberr.LamError
	if errors.As(err, &lamErr) {
		_, _ = fmt.Fprintln(out, s.err.Render(lamberr.FormatWithCodeAndSource(lamErr, src)))
		return
	}
	_, _ = fmt.Fprintln(out, s.err.Render(err.Error()))
}

func readProgram(path string) (*lamb.Program, string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, "", errors.Wrapf(err, "could not read %s", path)
	}
	p, err := lamb.NewProgram(string(src))
	return p, string(src), err
}
