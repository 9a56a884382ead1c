//go:build js && wasm

// Command hsml-wasm exposes the HSML compiler to JavaScript hosts. The
// build registers a global compileContent(source) function backed by
// hsml.CompileContent and then parks forever; the embedding page drives
// everything through that export.
package main

import (
	"syscall/js"

	"github.com/hsml-lab/hsml/hsml"
)

func main() {
	js.Global().Set("compileContent", js.FuncOf(compileContent))
	select {}
}

func compileContent(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return js.Global().Get("Error").New("compileContent expects one argument")
	}
	html, err := hsml.CompileContent(args[0].String())
	if err != nil {
		return js.Global().Get("Error").New(err.Error())
	}
	return html
}
