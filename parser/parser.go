package parser

// Parse consumes an entire HSML document and returns the remaining input
// together with the AST. A successful parse always consumes everything, so
// rest is empty whenever err is nil; it is returned so callers can assert
// that contract. Errors are *ParseError values carrying the byte offset
// and kind of the first failure; there is no recovery.
func Parse(source string) (rest string, root *RootNode, err error) {
	ctx := &processContext{}
	node := &RootNode{}

	pos := 0
	for pos < len(source) {
		if w, ok := lineTerminatorAt(source, pos); ok {
			pos += w
			continue
		}
		c := source[pos]
		if c == ' ' || c == '\t' {
			ws := pos
			for ws < len(source) && (source[ws] == ' ' || source[ws] == '\t') {
				ws++
			}
			if ws >= len(source) {
				// trailing whitespace at end of input
				pos = ws
				continue
			}
			if w, ok := lineTerminatorAt(source, ws); ok {
				// whitespace-only line
				pos = ws + w
				continue
			}
			// a top-level line starts at column zero; leftover indentation
			// here means the document skipped or mismatched a level
			return source[pos:], nil, errAt(pos, ErrInconsistentIndent)
		}
		if next, comment, ok := scanComment(source, pos); ok {
			node.Nodes = append(node.Nodes, comment)
			pos = next
			continue
		}
		next, tag, err := scanTagNode(source, pos, ctx)
		if err != nil {
			return source[pos:], nil, err
		}
		node.Nodes = append(node.Nodes, tag)
		pos = next
	}

	return source[pos:], node, nil
}
