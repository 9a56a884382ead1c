// Package format reprints HSML source in its canonical form: two-space
// unit indent, one node per line, header parts in tag#id.class(attrs)
// order, div shorthand for selector-only headers, and multi-line
// attribute lists only where a comment or an embedded newline forces them.
// Formatting canonical input returns it unchanged.
package format

import (
	"fmt"
	"strings"

	"github.com/hsml-lab/hsml/parser"
)

// UnitIndent is the canonical indentation unit.
const UnitIndent = "  "

// Format parses source and reprints it canonically.
func Format(source string) (string, error) {
	rest, root, err := parser.Parse(source)
	if err != nil {
		return "", fmt.Errorf("failed to parse HSML: %w", err)
	}
	if rest != "" {
		return "", fmt.Errorf("unconsumed input at offset %d", len(source)-len(rest))
	}

	var sb strings.Builder
	for _, node := range root.Nodes {
		if err := printNode(&sb, node, 0); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

func printNode(sb *strings.Builder, node parser.Node, level int) error {
	switch n := node.(type) {
	case *parser.TagNode:
		return printTagNode(sb, n, level)
	case *parser.CommentNode:
		printCommentLine(sb, n, level)
		return nil
	default:
		return fmt.Errorf("unsupported node type %T", node)
	}
}

func printTagNode(sb *strings.Builder, tag *parser.TagNode, level int) error {
	indent := strings.Repeat(UnitIndent, level)
	sb.WriteString(indent)

	// selector-only headers use the div shorthand
	if tag.Tag != "div" || (tag.ID == nil && len(tag.Classes) == 0) {
		sb.WriteString(tag.Tag)
	}
	if tag.ID != nil {
		sb.WriteString("#")
		sb.WriteString(tag.ID.ID)
	}
	for _, class := range tag.Classes {
		sb.WriteString(".")
		sb.WriteString(class.Name)
	}

	if len(tag.Attributes) > 0 {
		printAttributes(sb, tag.Attributes, indent)
	}

	switch {
	case tag.Text != nil && tag.Text.Text == "":
		sb.WriteString(".\n")
	case tag.Text != nil && strings.Contains(tag.Text.Text, "\n"):
		sb.WriteString(".\n")
		for _, line := range strings.Split(tag.Text.Text, "\n") {
			if line == "" {
				sb.WriteString("\n")
				continue
			}
			sb.WriteString(indent)
			sb.WriteString(UnitIndent)
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	case tag.Text != nil:
		sb.WriteString(" ")
		sb.WriteString(tag.Text.Text)
		sb.WriteString("\n")
	default:
		sb.WriteString("\n")
	}

	for _, child := range tag.Children {
		if err := printNode(sb, child, level+1); err != nil {
			return err
		}
	}
	return nil
}

func printAttributes(sb *strings.Builder, entries []parser.Node, indent string) {
	multiline := false
	for _, entry := range entries {
		switch e := entry.(type) {
		case *parser.CommentNode:
			multiline = true
		case *parser.AttributeNode:
			if e.Value != nil && strings.Contains(*e.Value, "\n") {
				multiline = true
			}
		}
	}

	if !multiline {
		parts := make([]string, 0, len(entries))
		for _, entry := range entries {
			if a, ok := entry.(*parser.AttributeNode); ok {
				parts = append(parts, attributeString(a))
			}
		}
		sb.WriteString("(")
		sb.WriteString(strings.Join(parts, " "))
		sb.WriteString(")")
		return
	}

	sb.WriteString("(\n")
	for _, entry := range entries {
		sb.WriteString(indent)
		sb.WriteString(UnitIndent)
		switch e := entry.(type) {
		case *parser.CommentNode:
			sb.WriteString("//")
			sb.WriteString(e.Text)
		case *parser.AttributeNode:
			sb.WriteString(attributeString(e))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(indent)
	sb.WriteString(")")
}

func attributeString(attr *parser.AttributeNode) string {
	if attr.Value == nil {
		return attr.Key
	}
	quote := `"`
	if strings.Contains(*attr.Value, `"`) && !strings.Contains(*attr.Value, `\"`) {
		quote = "'"
	}
	return attr.Key + "=" + quote + *attr.Value + quote
}

func printCommentLine(sb *strings.Builder, comment *parser.CommentNode, level int) {
	sb.WriteString(strings.Repeat(UnitIndent, level))
	if comment.IsDev {
		sb.WriteString("//")
	} else {
		sb.WriteString("//!")
	}
	sb.WriteString(comment.Text)
	sb.WriteString("\n")
}
