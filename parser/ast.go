// Package parser turns HSML source text into an abstract syntax tree.
// HSML is an indentation-sensitive template syntax in the Pug/Slim family;
// the parser is a recursive descent over the raw input, carrying a small
// per-parse context that tracks the unit indent string and the current
// nesting level. The resulting tree is consumed read-only by the hsml
// package, which lowers it to an HTML string.
package parser

// Node is implemented by every HSML AST node kind.
type Node interface {
	node()
}

// RootNode is the top of every parsed document. Its children are TagNode
// and CommentNode values in source order.
type RootNode struct {
	Nodes []Node
}

// TagNode is a single element: its header parts, optional text (inline
// text or a piped text block), and optional child nodes. Text and
// children can both be present.
//
// Empty collections are represented as nil, never as empty slices, so
// presence checks double as non-emptiness checks.
type TagNode struct {
	Tag        string
	ID         *IdNode
	Classes    []ClassNode
	Attributes []Node // AttributeNode entries and dev CommentNode entries, in source order
	Text       *TextNode
	Children   []Node // TagNode and CommentNode children, in source order
}

// IdNode is the `#name` selector of a tag header. A tag has at most one.
type IdNode struct {
	ID string
}

// ClassNode is a single `.name` selector. The name may contain the extended
// character set used by utility CSS frameworks (`md:flex`, `text-[#af05c9]`,
// `dark:bg-slate-800/10`).
type ClassNode struct {
	Name string
}

// AttributeNode is one entry of a parenthesized attribute list. Key holds
// the exact source characters including any bracket or paren groups and
// framework sigils. Value is nil for boolean attributes; otherwise it holds
// the quoted value with the surrounding quotes stripped and everything
// between them, embedded newlines included, kept verbatim.
type AttributeNode struct {
	Key   string
	Value *string
}

// TextNode holds inline text or a piped text block. The text is verbatim;
// interpolation markers such as `{{ name }}` pass through untouched.
type TextNode struct {
	Text string
}

// CommentNode is a `//` or `//!` comment. IsDev marks developer comments,
// which the compiler drops; native comments become HTML comments.
type CommentNode struct {
	Text  string
	IsDev bool
}

func (*RootNode) node()      {}
func (*TagNode) node()       {}
func (*IdNode) node()        {}
func (*ClassNode) node()     {}
func (*AttributeNode) node() {}
func (*TextNode) node()      {}
func (*CommentNode) node()   {}
