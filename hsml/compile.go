// Package hsml lowers a parsed HSML tree to an HTML string and offers the
// CompileContent convenience for embedding hosts. The lowering is a pure
// recursive walk: no whitespace is introduced between elements, attribute
// and class order follow the source, values are emitted verbatim between
// double quotes, and a tag with neither children nor inline text
// self-closes.
package hsml

import (
	"fmt"
	"strings"

	"github.com/hsml-lab/hsml/hsml/debug"
	"github.com/hsml-lab/hsml/hsml/html"
	"github.com/hsml-lab/hsml/hsml/options"
	"github.com/hsml-lab/hsml/parser"
)

// RootNode is an alias for convenience.
type RootNode = parser.RootNode

// Parse re-exports the parser entry point for convenience.
var Parse = parser.Parse

// CompileOpts is an alias for convenience.
type CompileOpts = options.CompileOpts

// CompileOption is a functional option for configuring compilation.
type CompileOption func(*compileConfig)

type compileConfig struct {
	opts     options.CompileOpts
	useCache bool
}

// WithCompileOpts supplies an explicit options record.
func WithCompileOpts(o options.CompileOpts) CompileOption {
	return func(c *compileConfig) {
		c.opts = o
	}
}

// WithCache enables the process-wide AST cache for CompileContent. Repeated
// compilation of the same source skips the parse entirely; see
// SetASTCacheTTLOnce for expiry configuration.
func WithCache() CompileOption {
	return func(c *compileConfig) {
		c.useCache = true
	}
}

// Compile lowers an AST produced by parser.Parse to an HTML string. The
// tree is read but never mutated, so a cached AST can be compiled from
// multiple goroutines at once.
func Compile(root *parser.RootNode, copts ...CompileOption) (string, error) {
	var cfg compileConfig
	for _, opt := range copts {
		opt(&cfg)
	}

	var sb strings.Builder
	for _, node := range root.Nodes {
		if err := compileNode(&sb, node, &cfg.opts); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

// CompileContent parses source and compiles the result in one step. The
// entire document must be consumed by the parser.
func CompileContent(source string, copts ...CompileOption) (string, error) {
	var cfg compileConfig
	for _, opt := range copts {
		opt(&cfg)
	}

	root, err := parseAST(source, cfg.useCache)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, node := range root.Nodes {
		if err := compileNode(&sb, node, &cfg.opts); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

func compileNode(sb *strings.Builder, node parser.Node, opts *options.CompileOpts) error {
	switch n := node.(type) {
	case *parser.TagNode:
		return compileTagNode(sb, n, opts)
	case *parser.CommentNode:
		compileCommentNode(sb, n)
		return nil
	default:
		return &UnsupportedNodeError{Node: node}
	}
}

func compileTagNode(sb *strings.Builder, tagNode *parser.TagNode, opts *options.CompileOpts) error {
	tag := html.NewTag(tagNode.Tag)

	if tagNode.ID != nil {
		tag.SetID(tagNode.ID.ID)
	}
	for _, class := range tagNode.Classes {
		tag.AddClass(class.Name)
	}
	for _, entry := range tagNode.Attributes {
		switch a := entry.(type) {
		case *parser.AttributeNode:
			tag.AddAttribute(a.Key, a.Value)
		case *parser.CommentNode:
			if !a.IsDev {
				return &UnsupportedNodeError{Node: entry}
			}
			// developer comments inside attribute lists never reach the output
		default:
			return &UnsupportedNodeError{Node: entry}
		}
	}

	// no children and no text, not even empty text, means self-closing
	if tagNode.Children == nil && tagNode.Text == nil {
		return tag.RenderSelfClosing(sb)
	}

	if err := tag.RenderOpen(sb); err != nil {
		return err
	}
	if tagNode.Text != nil {
		sb.WriteString(tagNode.Text.Text)
	}
	for _, child := range tagNode.Children {
		switch c := child.(type) {
		case *parser.TagNode:
			if err := compileTagNode(sb, c, opts); err != nil {
				return err
			}
		case *parser.CommentNode:
			compileCommentNode(sb, c)
		default:
			return &UnsupportedNodeError{Node: child}
		}
	}
	return tag.RenderClose(sb)
}

func compileCommentNode(sb *strings.Builder, comment *parser.CommentNode) {
	if comment.IsDev {
		return
	}
	sb.WriteString("<!--")
	sb.WriteString(comment.Text)
	sb.WriteString(" -->")
}

// parseSource parses source and enforces the full-consumption contract.
func parseSource(source string) (*parser.RootNode, error) {
	debug.DebugLog("hsml", "parse-start", "Starting HSML parsing")
	rest, root, err := parser.Parse(source)
	if err != nil {
		debug.DebugLogError("hsml", "parse-error", "Failed to parse HSML", err)
		return nil, fmt.Errorf("failed to parse HSML: %w", err)
	}
	if rest != "" {
		return nil, fmt.Errorf("failed to parse HSML: unconsumed input at offset %d", len(source)-len(rest))
	}
	debug.DebugLog("hsml", "parse-complete", "HSML parsing completed")
	return root, nil
}
