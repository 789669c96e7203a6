package lamberr

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cottand/lamb/frontend/ast"
)

// Errors collects the errors of independent passes over the same program,
// for example type inference and evaluation
type Errors struct {
	errs []LamError
}

func (r *Errors) With(err ...LamError) *Errors {
	if r == nil {
		return &Errors{errs: err}
	}
	r.errs = append(r.errs, err...)
	return r
}

// Add records err, classifying it as Unclassified if it is not a LamError
func (r *Errors) Add(err error) *Errors {
	if err == nil {
		return r
	}
	var lamErr LamError
	if !errors.As(err, &lamErr) {
		lamErr = New(Unclassified{From: err, Positioner: ast.Range{}})
	}
	return r.With(lamErr)
}

func (r *Errors) Errors() []LamError {
	if r == nil {
		return nil
	}
	return r.errs
}

func (r *Errors) HasError() bool {
	if r == nil {
		return false
	}
	return len(r.errs) > 0
}

// Error joins all messages, so that *Errors can be returned as an error
func (r *Errors) Error() string {
	msgs := make([]string, len(r.Errors()))
	for i, e := range r.Errors() {
		msgs[i] = FormatWithCode(e)
	}
	return strings.Join(msgs, "\n")
}

func (r *Errors) LogValue() slog.Value {
	var vals []slog.Attr
	for i, v := range r.Errors() {
		vals = append(vals, slog.Attr{
			Key: fmt.Sprint("e", i),
			Value: slog.GroupValue(
				slog.String("msg", FormatWithCode(v)),
				slog.String("at", ast.RangeOf(v).String()),
			),
		})
	}
	return slog.GroupValue(vals...)
}

// FormatWithCodeAndSource renders e like FormatWithCode, followed by the
// line of source it points at and a caret underline of its range.
//
// Positions are 1-based byte offsets into source; errors without a
// position are rendered without the source excerpt.
func FormatWithCodeAndSource(e LamError, source string) string {
	header := FormatWithCode(e)
	r := ast.RangeOf(e)
	if !r.IsValid() || int(r.PosStart) > len(source)+1 {
		return header
	}
	start := int(r.PosStart) - 1
	end := int(r.PosEnd) - 1
	if end <= start {
		end = start + 1
	}

	lineStart := strings.LastIndexByte(source[:start], '\n') + 1
	lineEnd := len(source)
	if i := strings.IndexByte(source[start:], '\n'); i >= 0 {
		lineEnd = start + i
	}
	if end > lineEnd {
		end = max(lineEnd, start+1)
	}
	lineNo := strings.Count(source[:lineStart], "\n") + 1

	gutter := fmt.Sprintf("%4d | ", lineNo)
	sb := strings.Builder{}
	sb.WriteString(header)
	sb.WriteString("\n")
	sb.WriteString(gutter)
	sb.WriteString(source[lineStart:lineEnd])
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat(" ", len(gutter)+start-lineStart))
	sb.WriteString(strings.Repeat("^", end-start))
	return sb.String()
}
