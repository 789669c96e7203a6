//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cottand/lamb/lamb"
)

func main() {
	js.Global().Set("CheckAndShowTypes", js.FuncOf(lamb.CheckAndShowTypes))
	js.Global().Set("EvaluateAndShow", js.FuncOf(lamb.EvaluateAndShow))
	js.Global().Set("CompileAndShowGoOutput", js.FuncOf(lamb.CompileAndShowGoOutput))
	js.Global().Set("InterpretGo", lamb.InterpretGo)

	// wait indefinitely so that Go does not terminate execution
	// and the function remains available
	<-make(chan struct{})
}
