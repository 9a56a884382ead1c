package parser

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func strPtr(s string) *string {
	return &s
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *RootNode
	}{
		{
			name:  "empty input",
			input: "",
			want:  &RootNode{},
		},
		{
			name:  "single tag with inline text",
			input: "h1.text-red Vite CJS Faker Demo\n",
			want: &RootNode{Nodes: []Node{
				&TagNode{
					Tag:     "h1",
					Classes: []ClassNode{{Name: "text-red"}},
					Text:    &TextNode{Text: "Vite CJS Faker Demo"},
				},
			}},
		},
		{
			name:  "div shorthand with nested child",
			input: ".card\n  .card__body content\n",
			want: &RootNode{Nodes: []Node{
				&TagNode{
					Tag:     "div",
					Classes: []ClassNode{{Name: "card"}},
					Children: []Node{
						&TagNode{
							Tag:     "div",
							Classes: []ClassNode{{Name: "card__body"}},
							Text:    &TextNode{Text: "content"},
						},
					},
				},
			}},
		},
		{
			name:  "id shorthand",
			input: "#app\n",
			want: &RootNode{Nodes: []Node{
				&TagNode{Tag: "div", ID: &IdNode{ID: "app"}},
			}},
		},
		{
			name:  "attributes with values and booleans",
			input: `input(type="text" disabled required)`,
			want: &RootNode{Nodes: []Node{
				&TagNode{
					Tag: "input",
					Attributes: []Node{
						&AttributeNode{Key: "type", Value: strPtr("text")},
						&AttributeNode{Key: "disabled"},
						&AttributeNode{Key: "required"},
					},
				},
			}},
		},
		{
			name:  "root comments",
			input: "//! hello\n// internal\nh1 x\n",
			want: &RootNode{Nodes: []Node{
				&CommentNode{Text: " hello"},
				&CommentNode{Text: " internal", IsDev: true},
				&TagNode{Tag: "h1", Text: &TextNode{Text: "x"}},
			}},
		},
		{
			name:  "comment child between tags",
			input: "section\n  //! inside\n  p hi\n",
			want: &RootNode{Nodes: []Node{
				&TagNode{
					Tag: "section",
					Children: []Node{
						&CommentNode{Text: " inside"},
						&TagNode{Tag: "p", Text: &TextNode{Text: "hi"}},
					},
				},
			}},
		},
		{
			name:  "crlf line terminators",
			input: ".card\r\n  p hi\r\n",
			want: &RootNode{Nodes: []Node{
				&TagNode{
					Tag:     "div",
					Classes: []ClassNode{{Name: "card"}},
					Children: []Node{
						&TagNode{Tag: "p", Text: &TextNode{Text: "hi"}},
					},
				},
			}},
		},
		{
			name:  "blank lines between siblings",
			input: "div\n\n  p one\n\n  p two\n",
			want: &RootNode{Nodes: []Node{
				&TagNode{
					Tag: "div",
					Children: []Node{
						&TagNode{Tag: "p", Text: &TextNode{Text: "one"}},
						&TagNode{Tag: "p", Text: &TextNode{Text: "two"}},
					},
				},
			}},
		},
		{
			name:  "utility class names",
			input: "figure.md:flex.dark:bg-slate-800/10.text-[#af05c9]\n",
			want: &RootNode{Nodes: []Node{
				&TagNode{
					Tag: "figure",
					Classes: []ClassNode{
						{Name: "md:flex"},
						{Name: "dark:bg-slate-800/10"},
						{Name: "text-[#af05c9]"},
					},
				},
			}},
		},
		{
			name:  "deep pop back to root",
			input: "div\n  div\n    p deep\nspan flat\n",
			want: &RootNode{Nodes: []Node{
				&TagNode{
					Tag: "div",
					Children: []Node{
						&TagNode{
							Tag: "div",
							Children: []Node{
								&TagNode{Tag: "p", Text: &TextNode{Text: "deep"}},
							},
						},
					},
				},
				&TagNode{Tag: "span", Text: &TextNode{Text: "flat"}},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rest, root, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if rest != "" {
				t.Fatalf("Parse() rest = %q, want empty", rest)
			}
			if diff := cmp.Diff(tt.want, root); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind ErrorKind
	}{
		{
			name:     "duplicate id",
			input:    "h1#a#b",
			wantKind: ErrDuplicateId,
		},
		{
			name:     "mixed tabs and spaces in prefix",
			input:    "div\n\t  span x\n",
			wantKind: ErrInconsistentIndent,
		},
		{
			name:     "indent deeper than one level",
			input:    "div\n  a\n      b\n",
			wantKind: ErrInconsistentIndent,
		},
		{
			name:     "tab indent after space unit",
			input:    "div\n  a\nsection\n\tb\n",
			wantKind: ErrInconsistentIndent,
		},
		{
			name:     "top-level line indented",
			input:    "  div\n",
			wantKind: ErrInconsistentIndent,
		},
		{
			name:     "unquoted attribute value",
			input:    `img(src=imgSrc)`,
			wantKind: ErrUnquotedAttributeValue,
		},
		{
			name:     "attribute list never closed",
			input:    `img(src="/a.jpg"`,
			wantKind: ErrIncompleteInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse(tt.input)
			if err == nil {
				t.Fatal("Parse() expected error but got none")
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("Parse() error = %T, want *ParseError", err)
			}
			if parseErr.Kind != tt.wantKind {
				t.Errorf("Parse() error kind = %v, want %v", parseErr.Kind, tt.wantKind)
			}
		})
	}
}

func TestParseDuplicateIdOffset(t *testing.T) {
	_, _, err := Parse("h1#a#b")

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Parse() error = %T, want *ParseError", err)
	}
	if parseErr.Offset != 4 {
		t.Errorf("Parse() error offset = %d, want 4 (the second #)", parseErr.Offset)
	}
}

func TestParseErrorPosition(t *testing.T) {
	source := "div\n  a\n      b\n"
	_, _, err := Parse(source)

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Parse() error = %T, want *ParseError", err)
	}
	line, col := parseErr.Position(source)
	if line != 3 || col != 1 {
		t.Errorf("Position() = %d:%d, want 3:1", line, col)
	}
}

func TestParseEstablishesUnitFromFirstIndent(t *testing.T) {
	// four-space unit, established by the first indented line
	input := "div\n    p one\n    p two\n"

	rest, root, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if rest != "" {
		t.Fatalf("Parse() rest = %q, want empty", rest)
	}

	tag := root.Nodes[0].(*TagNode)
	if len(tag.Children) != 2 {
		t.Fatalf("Parse() children = %d, want 2", len(tag.Children))
	}
}
