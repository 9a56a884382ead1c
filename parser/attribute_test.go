package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScanAttributeKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKey  string
		wantRest string
	}{
		{"plain key", "src=", "src", "="},
		{"stops at paren", "#spoiler)", "#spoiler", ")"},
		{"stops at comma", "disabled, required", "disabled", ", required"},
		{"stops at space", "disabled required", "disabled", " required"},
		{"vue binding", `:src="image"`, ":src", `="image"`},
		{"vue event", `@click="setValue()"`, "@click", `="setValue()"`},
		{"vue slot", `#header="slot"`, "#header", `="slot"`},
		{"angular event", `(click)="setValue()"`, "(click)", `="setValue()"`},
		{"angular banana box", `[(ngModel)]="name"`, "[(ngModel)]", `="name"`},
		{"bracket with escaped closer", `[a\]b]=`, `[a\]b]`, "="},
		{"two groups in one key", `[a][b]=`, "[a][b]", "="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, key, err := scanAttributeKey(tt.input, 0)
			if err != nil {
				t.Fatalf("scanAttributeKey() error = %v", err)
			}
			if key != tt.wantKey {
				t.Errorf("scanAttributeKey() key = %q, want %q", key, tt.wantKey)
			}
			if rest := tt.input[next:]; rest != tt.wantRest {
				t.Errorf("scanAttributeKey() rest = %q, want %q", rest, tt.wantRest)
			}
		})
	}
}

func TestScanAttributeKeyErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind ErrorKind
	}{
		{"digit start", `1src="x"`, ErrInvalidAttributeKeyStart},
		{"whitespace start", ` src="x"`, ErrInvalidAttributeKeyStart},
		{"dot start", `.src="x"`, ErrInvalidAttributeKeyStart},
		{"comma start", `,src="x"`, ErrInvalidAttributeKeyStart},
		{"newline start", "\nsrc=\"x\"", ErrInvalidAttributeKeyStart},
		{"unterminated bracket group", "[abc", ErrUnterminatedBracketGroup},
		{"unterminated paren group", "(abc", ErrUnterminatedParenGroup},
		{"end of input", "abc", ErrIncompleteInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := scanAttributeKey(tt.input, 0)
			parseErr, ok := err.(*ParseError)
			if !ok {
				t.Fatalf("scanAttributeKey() error = %v, want *ParseError", err)
			}
			if parseErr.Kind != tt.wantKind {
				t.Errorf("scanAttributeKey() error kind = %v, want %v", parseErr.Kind, tt.wantKind)
			}
		})
	}
}

func TestScanAttributeValue(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValue string
		wantRest  string
	}{
		{"double quoted", `"https://github.com/"`, "https://github.com/", ""},
		{"single quoted", `'hello world' next`, "hello world", " next"},
		{"interpolation marker", `"{{ color }}", required`, "{{ color }}", ", required"},
		{"embedded other quote", `"it's fine"`, "it's fine", ""},
		{"empty value", `""`, "", ""},
		{
			name: "multiline value",
			input: `"{
    'is-active': isActive,
}" rest`,
			wantValue: "{\n    'is-active': isActive,\n}",
			wantRest:  " rest",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, value, err := scanAttributeValue(tt.input, 0)
			if err != nil {
				t.Fatalf("scanAttributeValue() error = %v", err)
			}
			if value != tt.wantValue {
				t.Errorf("scanAttributeValue() value = %q, want %q", value, tt.wantValue)
			}
			if rest := tt.input[next:]; rest != tt.wantRest {
				t.Errorf("scanAttributeValue() rest = %q, want %q", rest, tt.wantRest)
			}
		})
	}
}

func TestScanAttributeValueErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind ErrorKind
	}{
		{"unquoted value", "imgSrc", ErrUnquotedAttributeValue},
		{"unterminated quote", `"abc`, ErrUnterminatedQuotedValue},
		{"end of input", "", ErrIncompleteInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := scanAttributeValue(tt.input, 0)
			parseErr, ok := err.(*ParseError)
			if !ok {
				t.Fatalf("scanAttributeValue() error = %v, want *ParseError", err)
			}
			if parseErr.Kind != tt.wantKind {
				t.Errorf("scanAttributeValue() error kind = %v, want %v", parseErr.Kind, tt.wantKind)
			}
		})
	}
}

func TestScanAttributeNodes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Node
	}{
		{
			name:  "space separated",
			input: `(src="/a.jpg" alt="")`,
			want: []Node{
				&AttributeNode{Key: "src", Value: strPtr("/a.jpg")},
				&AttributeNode{Key: "alt", Value: strPtr("")},
			},
		},
		{
			name:  "comma separated booleans",
			input: "(disabled, required)",
			want: []Node{
				&AttributeNode{Key: "disabled"},
				&AttributeNode{Key: "required"},
			},
		},
		{
			name:  "empty list",
			input: "()",
			want:  nil,
		},
		{
			name: "multiline with dev comment",
			input: `(
    // supports attribute inline comments
    src="/fancy-avatar.jpg"
    width="384"
)`,
			want: []Node{
				&CommentNode{Text: " supports attribute inline comments", IsDev: true},
				&AttributeNode{Key: "src", Value: strPtr("/fancy-avatar.jpg")},
				&AttributeNode{Key: "width", Value: strPtr("384")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, nodes, err := scanAttributeNodes(tt.input, 0)
			if err != nil {
				t.Fatalf("scanAttributeNodes() error = %v", err)
			}
			if next != len(tt.input) {
				t.Errorf("scanAttributeNodes() consumed %d bytes, want %d", next, len(tt.input))
			}
			if diff := cmp.Diff(tt.want, nodes); diff != "" {
				t.Errorf("scanAttributeNodes() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScanAttribute(t *testing.T) {
	value := "https://github.com/"
	next, attr, err := scanAttribute(`src="https://github.com/"`, 0)
	if err != nil {
		t.Fatalf("scanAttribute() error = %v", err)
	}
	if next != len(`src="https://github.com/"`) {
		t.Errorf("scanAttribute() consumed %d bytes", next)
	}
	if diff := cmp.Diff(&AttributeNode{Key: "src", Value: &value}, attr); diff != "" {
		t.Errorf("scanAttribute() mismatch (-want +got):\n%s", diff)
	}
}
