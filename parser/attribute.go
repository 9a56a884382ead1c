package parser

// scanAttributeNodes consumes a parenthesized attribute group starting at
// the `(` and ending at the matching `)`. Entries are attribute keys with
// optional quoted values; developer comments inside the group are kept as
// CommentNode entries so the formatter can reproduce them, though the
// compiler drops them. Separators between entries are runs of whitespace,
// commas, and line terminators.
func scanAttributeNodes(src string, pos int) (int, []Node, error) {
	if pos >= len(src) || src[pos] != '(' {
		return pos, nil, errAt(pos, ErrUnexpectedInput)
	}
	i := pos + 1

	var nodes []Node
	for {
		for i < len(src) {
			c := src[i]
			if c == ' ' || c == '\t' || c == ',' || c == '\r' || c == '\n' {
				i++
				continue
			}
			break
		}
		if i >= len(src) {
			return pos, nil, errAt(i, ErrIncompleteInput)
		}
		if src[i] == ')' {
			return i + 1, nodes, nil
		}
		if src[i] == '/' && i+1 < len(src) && src[i+1] == '/' {
			text, end := restOfLine(src, i+2)
			nodes = append(nodes, &CommentNode{Text: text, IsDev: true})
			i = end
			continue
		}

		next, attr, err := scanAttribute(src, i)
		if err != nil {
			return pos, nil, err
		}
		nodes = append(nodes, attr)
		i = next
	}
}

// scanAttribute consumes one attribute entry: a key, optionally followed by
// `=` and a quoted value.
func scanAttribute(src string, pos int) (int, *AttributeNode, error) {
	i, key, err := scanAttributeKey(src, pos)
	if err != nil {
		return pos, nil, err
	}

	if i < len(src) && src[i] == '=' {
		next, value, err := scanAttributeValue(src, i+1)
		if err != nil {
			return pos, nil, err
		}
		return next, &AttributeNode{Key: key, Value: &value}, nil
	}

	return i, &AttributeNode{Key: key}, nil
}

// scanAttributeKey consumes an attribute key. The key runs until one of the
// terminators `)`, `,`, `=`, space, or a line terminator is seen at nesting
// depth zero. A `[` or `(` opens a group whose contents, escaped closers
// aside, belong to the key; this is what keeps framework keys such as
// `[(ngModel)]`, `(click)`, and `:src` intact.
//
// The scanner advances a single absolute index over the input, so multiple
// groups in one key cannot skew the key bounds.
func scanAttributeKey(src string, pos int) (int, string, error) {
	if pos >= len(src) {
		return pos, "", errAt(pos, ErrIncompleteInput)
	}
	c := src[pos]
	if isDigit(c) {
		return pos, "", errAt(pos, ErrInvalidAttributeKeyStart)
	}
	if !isLetter(c) && c != ':' && c != '#' && c != '@' && c != '[' && c != '(' {
		return pos, "", errAt(pos, ErrInvalidAttributeKeyStart)
	}

	i := pos
	for {
		if i >= len(src) {
			return pos, "", errAt(i, ErrIncompleteInput)
		}
		c := src[i]
		if c == ')' || c == ',' || c == '=' || c == ' ' || c == '\n' {
			break
		}
		if c == '\r' && i+1 < len(src) && src[i+1] == '\n' {
			break
		}
		if c == '[' {
			closer, err := findGroupCloser(src, i, ']', ErrUnterminatedBracketGroup)
			if err != nil {
				return pos, "", err
			}
			i = closer + 1
			continue
		}
		if c == '(' {
			closer, err := findGroupCloser(src, i, ')', ErrUnterminatedParenGroup)
			if err != nil {
				return pos, "", err
			}
			i = closer + 1
			continue
		}
		i++
	}

	return i, src[pos:i], nil
}

// findGroupCloser returns the index of the first unescaped closer after the
// group opener at pos.
func findGroupCloser(src string, pos int, closer byte, kind ErrorKind) (int, error) {
	escaped := false
	for i := pos + 1; i < len(src); i++ {
		c := src[i]
		if escaped {
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		if c == closer {
			return i, nil
		}
	}
	return 0, errAt(pos, kind)
}

// scanAttributeValue consumes a quoted value after `=`. The stored value is
// everything between the quotes, verbatim: embedded newlines, braces, and
// interpolation markers survive. An unquoted value is a parse failure.
func scanAttributeValue(src string, pos int) (int, string, error) {
	if pos >= len(src) {
		return pos, "", errAt(pos, ErrIncompleteInput)
	}
	quote := src[pos]
	if quote != '"' && quote != '\'' {
		return pos, "", errAt(pos, ErrUnquotedAttributeValue)
	}

	escaped := false
	for i := pos + 1; i < len(src); i++ {
		c := src[i]
		if escaped {
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		if c == quote {
			return i + 1, src[pos+1 : i], nil
		}
	}
	return pos, "", errAt(pos, ErrUnterminatedQuotedValue)
}
