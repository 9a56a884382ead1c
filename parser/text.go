package parser

import "strings"

// scanInlineText consumes a single space plus the rest of the line. Empty
// text is a failure; a tag header that ends in a space carries no meaning.
func scanInlineText(src string, pos int) (int, *TextNode, error) {
	if pos >= len(src) || src[pos] != ' ' {
		return pos, nil, errAt(pos, ErrUnexpectedInput)
	}
	if pos+1 >= len(src) {
		return pos, nil, errAt(pos+1, ErrIncompleteInput)
	}
	text, end := restOfLine(src, pos+1)
	if text == "" {
		return pos, nil, errAt(pos+1, ErrUnexpectedInput)
	}
	return end, &TextNode{Text: text}, nil
}

// scanTextBlock consumes a piped text block: the `.` ending a tag header,
// its line terminator, and every following line indented strictly deeper
// than the enclosing tag. Interior blank lines belong to the block
// verbatim; trailing blank lines separate the block from what follows and
// are trimmed back out.
//
// The block's base indentation (the prefix of its first non-blank line) is
// stripped from every line; deeper relative indentation survives. The line
// terminator after the last block line is left unconsumed so the caller
// sees the boundary the same way it would after inline text.
func scanTextBlock(src string, pos int, ctx *processContext) (int, *TextNode, error) {
	if pos >= len(src) || src[pos] != '.' {
		return pos, nil, errAt(pos, ErrUnexpectedInput)
	}
	w, ok := lineTerminatorAt(src, pos+1)
	if !ok {
		return pos, nil, errAt(pos+1, ErrUnexpectedInput)
	}

	tagIndent := len(ctx.unitIndent) * ctx.indentLevel

	type blockLine struct {
		text string
		end  int // position of the terminator (or end of input) after the line
	}
	var lines []blockLine

	lineStart := pos + 1 + w
	for lineStart < len(src) {
		line, tEnd := restOfLine(src, lineStart)
		blank := strings.TrimLeft(line, " \t") == ""
		if !blank && indentWidth(line) <= tagIndent {
			break
		}
		lines = append(lines, blockLine{text: line, end: tEnd})
		tw, term := lineTerminatorAt(src, tEnd)
		if !term {
			lineStart = len(src)
			break
		}
		lineStart = tEnd + tw
	}

	for len(lines) > 0 && strings.TrimLeft(lines[len(lines)-1].text, " \t") == "" {
		lines = lines[:len(lines)-1]
	}

	end := pos + 1
	if len(lines) > 0 {
		end = lines[len(lines)-1].end
	}

	base := ""
	for _, l := range lines {
		if strings.TrimLeft(l.text, " \t") != "" {
			base = l.text[:indentWidth(l.text)]
			break
		}
	}

	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = strings.TrimPrefix(l.text, base)
	}

	return end, &TextNode{Text: strings.Join(out, "\n")}, nil
}

func indentWidth(line string) int {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return i
}
