//go:build js && wasm

package lamb

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"go/build"
	"strings"
	"syscall/js"

	"github.com/cottand/lamb/eval"
	"github.com/cottand/lamb/frontend/lamberr"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

func describeErrors(p *Program, errs *lamberr.Errors) string {
	sb := strings.Builder{}
	sb.WriteString("the program has the following errors:\n")
	sb.WriteString(p.FormatErrors(errs))
	return sb.String()
}

func parseFailure(src string, err error) string {
	var lamErr lamberr.LamError
	if errors.As(err, &lamErr) {
		return "the program does not parse:\n" + lamberr.FormatWithCodeAndSource(lamErr, src)
	}
	return fmt.Sprintf("the compiler encountered a failure:\n\n%s", err)
}

// CheckAndShowTypes infers the type of program and returns it
// as a string, or alternatively displays errors messages if the
// program does not parse or type-check
func CheckAndShowTypes(_ js.Value, args []js.Value) (ret any) {
	defer func() {
		if r := recover(); r != nil {
			ret = "compiler panicked: " + fmt.Sprint(r)
		}
	}()

	src := args[0].String()
	p, err := NewProgram(src)
	if err != nil {
		return parseFailure(src, err)
	}
	res := p.Check(context.Background(), Show{Types: true})
	if res.Errors.HasError() {
		return describeErrors(p, res.Errors)
	}
	return res.Type.String()
}

// EvaluateAndShow type-checks and evaluates program.
//
// output: { error: string } | { type: string, value: string }
func EvaluateAndShow(_ js.Value, args []js.Value) (ret any) {
	defer func() {
		if r := recover(); r != nil {
			ret = errorObj("evaluator panicked: " + fmt.Sprint(r))
		}
	}()

	src := args[0].String()
	p, err := NewProgram(src)
	if err != nil {
		return errorObj(parseFailure(src, err))
	}
	res := p.Check(context.Background(), Show{Types: true, Values: true})
	if res.Errors.HasError() {
		return errorObj(describeErrors(p, res.Errors))
	}
	return js.ValueOf(map[string]any{
		"type":  res.Type.String(),
		"value": eval.Show(res.Value),
	})
}

// CompileAndShowGoOutput infers the type of program and returns it
// together with the Go source it transpiles to, or alternatively
// displays errors messages if the program does not parse or type-check.
//
// output: { error: string } | { types: string, goOutput: string }
func CompileAndShowGoOutput(_ js.Value, args []js.Value) (ret any) {
	defer func() {
		if r := recover(); r != nil {
			ret = errorObj("compiler panicked: " + fmt.Sprint(r))
		}
	}()

	src := args[0].String()
	p, err := NewProgram(src)
	if err != nil {
		return errorObj(parseFailure(src, err))
	}
	res := p.Check(context.Background(), Show{Types: true})
	if res.Errors.HasError() {
		return errorObj(describeErrors(p, res.Errors))
	}
	goSrc, err := p.GoMainSource()
	if err != nil {
		return errorObj(fmt.Sprintf("the compiler encountered a failure:\n%s", err))
	}
	return js.ValueOf(map[string]any{
		"types":    res.Type.String(),
		"goOutput": goSrc,
	})
}

func errorObj(err string) any {
	return js.ValueOf(map[string]any{
		"error": err,
	})
}

// interpretGo takes a Go program as a string and returns the stdout, if any
func interpretGo(_ js.Value, args []js.Value) (ret any, err error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected 1 argument, got %d", len(args))
	}
	goSource := args[0].String()
	stdout := bytes.NewBuffer(nil)

	i := interp.New(interp.Options{GoPath: build.Default.GOPATH, Stdout: stdout, Stderr: stdout})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("error loading Go interpreter: %w", err)
	}

	prog, err := i.Compile(goSource)
	if err != nil {
		return nil, fmt.Errorf("error during evaluation: %w", err)
	}
	if _, err = i.Execute(prog); err != nil {
		return nil, fmt.Errorf("error during execution: %w", err)
	}
	return stdout.String(), nil
}

// asPromise takes a JS-API function that also returns an error, and returns
// a function that returns a promise, which completes when the function
// completes and rejects with its error, if any
func asPromise(function func(js.Value, []js.Value) (any, error)) any {
	return js.FuncOf(func(this js.Value, args []js.Value) any {
		handler := js.FuncOf(func(_ js.Value, promiseArgs []js.Value) any {
			resolve := promiseArgs[0]
			reject := promiseArgs[1]

			go func() {
				defer func() {
					if r := recover(); r != nil {
						errorConstructor := js.Global().Get("Error")
						reject.Invoke(errorConstructor.New(fmt.Sprintf("%s", r)))
					}
				}()

				data, err := function(this, args)
				if err != nil {
					errorConstructor := js.Global().Get("Error")
					reject.Invoke(errorConstructor.New(err.Error()))
				} else {
					resolve.Invoke(js.ValueOf(data))
				}
			}()

			return nil
		})
		promiseConstructor := js.Global().Get("Promise")
		return promiseConstructor.New(handler)
	})
}

// InterpretGo runs the output of CompileAndShowGoOutput
var InterpretGo = asPromise(interpretGo)
