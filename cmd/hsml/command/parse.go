package command

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/hsml-lab/hsml/parser"
	"github.com/spf13/cobra"
)

// NewParseCommand creates the parse command
func NewParseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [input]",
		Short: "Parse HSML and print the AST as JSON",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			source, err := readInput(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
				os.Exit(1)
			}

			_, root, err := parser.Parse(string(source))
			if err != nil {
				reportParseError(args[0], string(source), err)
				os.Exit(1)
			}

			out, err := json.MarshalIndent(astJSON(root), "", "  ")
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error encoding AST: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(string(out))
		},
	}
	return cmd
}

// reportParseError prints a parse failure as file:line:col followed by the
// error message.
func reportParseError(path, source string, err error) {
	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		line, col := parseErr.Position(source)
		fmt.Fprintf(os.Stderr, "%s:%d:%d: %s\n", path, line, col, parseErr.Kind)
		return
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
}

// astJSON converts an AST node into a JSON-friendly value with a "type"
// discriminator per node kind.
func astJSON(node parser.Node) map[string]interface{} {
	switch n := node.(type) {
	case *parser.RootNode:
		return map[string]interface{}{
			"type":  "root",
			"nodes": astListJSON(n.Nodes),
		}
	case *parser.TagNode:
		out := map[string]interface{}{
			"type": "tag",
			"tag":  n.Tag,
		}
		if n.ID != nil {
			out["id"] = n.ID.ID
		}
		if len(n.Classes) > 0 {
			classes := make([]string, len(n.Classes))
			for i, class := range n.Classes {
				classes[i] = class.Name
			}
			out["classes"] = classes
		}
		if len(n.Attributes) > 0 {
			out["attributes"] = astListJSON(n.Attributes)
		}
		if n.Text != nil {
			out["text"] = n.Text.Text
		}
		if len(n.Children) > 0 {
			out["children"] = astListJSON(n.Children)
		}
		return out
	case *parser.AttributeNode:
		out := map[string]interface{}{
			"type": "attribute",
			"key":  n.Key,
		}
		if n.Value != nil {
			out["value"] = *n.Value
		}
		return out
	case *parser.CommentNode:
		return map[string]interface{}{
			"type": "comment",
			"text": n.Text,
			"dev":  n.IsDev,
		}
	case *parser.TextNode:
		return map[string]interface{}{
			"type": "text",
			"text": n.Text,
		}
	case *parser.IdNode:
		return map[string]interface{}{
			"type": "id",
			"id":   n.ID,
		}
	case *parser.ClassNode:
		return map[string]interface{}{
			"type": "class",
			"name": n.Name,
		}
	default:
		return map[string]interface{}{
			"type": fmt.Sprintf("%T", node),
		}
	}
}

func astListJSON(nodes []parser.Node) []interface{} {
	out := make([]interface{}, len(nodes))
	for i, node := range nodes {
		out[i] = astJSON(node)
	}
	return out
}
