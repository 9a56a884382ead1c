// Package options contains compile options for HSML output.
package options

// CompileOpts is the extensible options record accepted by the compiler.
// No options are recognized at the moment; the struct keeps the compile
// signature stable for when they arrive.
type CompileOpts struct{}
