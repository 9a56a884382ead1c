package parser

import "strings"

// scanTagNode parses one tag: the shorthand header (tag name, id, classes,
// attribute lists, inline text or piped text block) and, guided by the
// indentation context, its children.
func scanTagNode(src string, pos int, ctx *processContext) (int, *TagNode, error) {
	if pos >= len(src) {
		return pos, nil, errAt(pos, ErrIncompleteInput)
	}

	// a header starting with `.` or `#` is shorthand for a div
	i := pos
	tagName := "div"
	if src[pos] != '.' && src[pos] != '#' {
		var err error
		i, tagName, err = scanTagName(src, pos)
		if err != nil {
			return pos, nil, err
		}
	}

	node := &TagNode{Tag: tagName}
	var classes []ClassNode
	var attrs []Node
	var children []Node

header:
	for i < len(src) {
		switch c := src[i]; {
		case c == '#':
			if node.ID != nil {
				return pos, nil, errAt(i, ErrDuplicateId)
			}
			next, id, err := scanIdNode(src, i)
			if err != nil {
				return pos, nil, err
			}
			node.ID = id
			i = next

		case c == '.':
			if _, ok := lineTerminatorAt(src, i+1); ok {
				next, text, err := scanTextBlock(src, i, ctx)
				if err != nil {
					return pos, nil, err
				}
				node.Text = text
				i = next
				continue
			}
			next, class, err := scanClassNode(src, i)
			if err != nil {
				return pos, nil, err
			}
			classes = append(classes, *class)
			i = next

		case c == '(':
			next, nodes, err := scanAttributeNodes(src, i)
			if err != nil {
				return pos, nil, err
			}
			attrs = append(attrs, nodes...)
			i = next

		case c == ' ':
			next, text, err := scanInlineText(src, i)
			if err != nil {
				return pos, nil, err
			}
			node.Text = text
			i = next

		case c == '\n' || c == '\r':
			// the header ended; decide whether the following line opens a
			// child list. Runs of line terminators (blank lines) are
			// skipped as a group.
			nl := i
			for nl < len(src) && (src[nl] == '\n' || src[nl] == '\r') {
				nl++
			}
			ws := nl
			for ws < len(src) && (src[ws] == ' ' || src[ws] == '\t') {
				ws++
			}
			if ws >= len(src) {
				break header
			}
			if src[ws] == '\n' || src[ws] == '\r' {
				// whitespace-only line, same as blank
				i = ws
				continue
			}
			indent := src[nl:ws]
			if indent == "" {
				break header
			}
			if strings.ContainsRune(indent, '\t') && strings.ContainsRune(indent, ' ') {
				return pos, nil, errAt(nl, ErrInconsistentIndent)
			}
			if ctx.unitIndent == "" {
				ctx.unitIndent = indent
			}
			expected := strings.Repeat(ctx.unitIndent, ctx.indentLevel+1)
			if indent != expected {
				if len(indent) < len(expected) {
					// shallower line: pop back to the matching ancestor
					break header
				}
				return pos, nil, errAt(nl, ErrInconsistentIndent)
			}

			if next, comment, ok := scanComment(src, ws); ok {
				children = append(children, comment)
				i = next
				continue
			}
			ctx.indentLevel++
			next, child, err := scanTagNode(src, ws, ctx)
			ctx.indentLevel--
			if err != nil {
				return pos, nil, err
			}
			children = append(children, child)
			i = next

		default:
			break header
		}
	}

	if len(classes) > 0 {
		node.Classes = classes
	}
	if len(attrs) > 0 {
		node.Attributes = attrs
	}
	if len(children) > 0 {
		node.Children = children
	}
	return i, node, nil
}
