package hsml

import (
	"fmt"

	"github.com/hsml-lab/hsml/parser"
)

// UnsupportedNodeError reports an AST node kind the compiler cannot lower
// at the position it appeared, such as a bare text node at the root or a
// native comment inside an attribute list. Hand-built trees are the only
// way to produce one; parser output never does.
type UnsupportedNodeError struct {
	Node parser.Node
}

func (e *UnsupportedNodeError) Error() string {
	return fmt.Sprintf("unsupported node type %s", nodeKindName(e.Node))
}

func nodeKindName(node parser.Node) string {
	switch node.(type) {
	case *parser.RootNode:
		return "root"
	case *parser.TagNode:
		return "tag"
	case *parser.IdNode:
		return "id"
	case *parser.ClassNode:
		return "class"
	case *parser.AttributeNode:
		return "attribute"
	case *parser.TextNode:
		return "text"
	case *parser.CommentNode:
		return "comment"
	default:
		return fmt.Sprintf("%T", node)
	}
}
