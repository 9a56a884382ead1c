package parser

import "strings"

// scanComment consumes a `//!` native or `//` developer comment at pos.
// The comment text is everything after the marker up to the line
// terminator, leading space included; ok is false when pos does not start
// a comment.
func scanComment(src string, pos int) (int, *CommentNode, bool) {
	if !strings.HasPrefix(src[pos:], "//") {
		return pos, nil, false
	}
	if strings.HasPrefix(src[pos:], "//!") {
		text, end := restOfLine(src, pos+3)
		return end, &CommentNode{Text: text}, true
	}
	text, end := restOfLine(src, pos+2)
	return end, &CommentNode{Text: text, IsDev: true}, true
}
