package parser

// Lexical micro-parsers. Each consumes exactly one token starting at pos
// and returns the position after it. They never consume trailing
// whitespace unless it is part of the token itself.

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// isTagNameChar matches the characters valid inside an HTML element name.
func isTagNameChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '-'
}

// isClassChar matches the characters valid inside a class name outside of
// bracket groups. The set is wide enough for utility CSS class names such
// as `md:flex` and `dark:bg-slate-800/10`.
func isClassChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == ':' || c == '/' || c == '#' || c == '-' || c == '_'
}

// lineTerminatorAt reports whether a line terminator starts at pos and how
// many bytes it spans (`\n` or `\r\n`).
func lineTerminatorAt(src string, pos int) (width int, ok bool) {
	if pos < len(src) && src[pos] == '\n' {
		return 1, true
	}
	if pos+1 < len(src) && src[pos] == '\r' && src[pos+1] == '\n' {
		return 2, true
	}
	return 0, false
}

// restOfLine returns the text from pos up to (not including) the next line
// terminator, plus the position of that terminator (or end of input).
func restOfLine(src string, pos int) (text string, end int) {
	end = pos
	for end < len(src) && src[end] != '\n' {
		end++
	}
	text = src[pos:end]
	if len(text) > 0 && text[len(text)-1] == '\r' {
		text = text[:len(text)-1]
		end--
	}
	return text, end
}

// scanTagName consumes an element name: a letter followed by letters,
// digits, and dashes.
func scanTagName(src string, pos int) (int, string, error) {
	if pos >= len(src) {
		return pos, "", errAt(pos, ErrIncompleteInput)
	}
	if !isLetter(src[pos]) {
		return pos, "", errAt(pos, ErrUnexpectedInput)
	}
	end := pos
	for end < len(src) && isTagNameChar(src[end]) {
		end++
	}
	return end, src[pos:end], nil
}

// scanIdNode consumes `#` plus a tag-name-like identifier.
func scanIdNode(src string, pos int) (int, *IdNode, error) {
	if pos >= len(src) || src[pos] != '#' {
		return pos, nil, errAt(pos, ErrUnexpectedInput)
	}
	end, name, err := scanTagName(src, pos+1)
	if err != nil {
		return pos, nil, errAt(pos+1, ErrUnexpectedInput)
	}
	return end, &IdNode{ID: name}, nil
}

// scanClassNode consumes `.` plus a class identifier. A `[` opens a bracket
// group whose contents, up to the matching `]`, belong to the name, which
// is how arbitrary-value utility classes like `w-[calc(100vw-5rem)]` stay
// intact.
func scanClassNode(src string, pos int) (int, *ClassNode, error) {
	if pos >= len(src) || src[pos] != '.' {
		return pos, nil, errAt(pos, ErrUnexpectedInput)
	}
	i := pos + 1
	for i < len(src) {
		c := src[i]
		if c == '[' {
			closer := i + 1
			for closer < len(src) && src[closer] != ']' {
				closer++
			}
			if closer >= len(src) {
				return pos, nil, errAt(i, ErrUnterminatedBracketGroup)
			}
			i = closer + 1
			continue
		}
		if !isClassChar(c) {
			break
		}
		i++
	}
	if i == pos+1 {
		return pos, nil, errAt(pos+1, ErrUnexpectedInput)
	}
	return i, &ClassNode{Name: src[pos+1 : i]}, nil
}
