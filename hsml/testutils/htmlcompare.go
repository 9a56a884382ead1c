// Package testutils provides HTML comparison helpers for tests. The
// compiler's contract is an exact string, but several tests only care
// about structure; these helpers compare at the DOM level and render
// readable diffs when strings do have to match.
package testutils

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sergi/go-diff/diffmatchpatch"
	"golang.org/x/net/html"
)

// CompareDOMTrees reports whether two HTML fragments describe the same DOM:
// same elements, same attributes regardless of order, same text content.
func CompareDOMTrees(expected, actual string) bool {
	expectedDoc, err := goquery.NewDocumentFromReader(strings.NewReader(expected))
	if err != nil {
		return false
	}
	actualDoc, err := goquery.NewDocumentFromReader(strings.NewReader(actual))
	if err != nil {
		return false
	}
	return compareNodes(expectedDoc.Selection, actualDoc.Selection)
}

func compareNodes(expected, actual *goquery.Selection) bool {
	if expected.Length() != actual.Length() {
		return false
	}

	equal := true
	expected.Each(func(i int, expectedNode *goquery.Selection) {
		if !equal {
			return
		}
		actualNode := actual.Eq(i)

		if goquery.NodeName(expectedNode) != goquery.NodeName(actualNode) {
			equal = false
			return
		}
		if !compareAttributes(expectedNode, actualNode) {
			equal = false
			return
		}
		if !compareNodes(expectedNode.Children(), actualNode.Children()) {
			equal = false
			return
		}

		expectedText := strings.TrimSpace(expectedNode.Contents().Not("*").Text())
		actualText := strings.TrimSpace(actualNode.Contents().Not("*").Text())
		if expectedText != actualText {
			equal = false
		}
	})
	return equal
}

func compareAttributes(expected, actual *goquery.Selection) bool {
	expectedAttrs := attributeMap(expected)
	actualAttrs := attributeMap(actual)

	if len(expectedAttrs) != len(actualAttrs) {
		return false
	}
	for key, value := range expectedAttrs {
		if actualAttrs[key] != value {
			return false
		}
	}
	return true
}

func attributeMap(sel *goquery.Selection) map[string]string {
	attrs := make(map[string]string)
	if sel.Length() == 0 {
		return attrs
	}
	for _, attr := range sel.Get(0).Attr {
		attrs[attr.Key] = attr.Val
	}
	return attrs
}

// DiffStrings renders a readable character diff between expected and
// actual, for test failure messages.
func DiffStrings(expected, actual string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(expected, actual, false)
	return dmp.DiffPrettyText(diffs)
}

// BalancedTags checks that every opening tag in the fragment has a
// matching closing tag with the same name. Self-closing tags (`<img/>`)
// need no closer; a void element written without the slash (`<br>`)
// counts as unclosed.
func BalancedTags(fragment string) error {
	tokenizer := html.NewTokenizer(strings.NewReader(fragment))

	var stack []string
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			if len(stack) > 0 {
				return fmt.Errorf("unclosed tags: %s", strings.Join(stack, ", "))
			}
			return nil
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			stack = append(stack, string(name))
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if len(stack) == 0 {
				return fmt.Errorf("closing </%s> without opener", name)
			}
			top := stack[len(stack)-1]
			if top != string(name) {
				return fmt.Errorf("closing </%s> while <%s> is open", name, top)
			}
			stack = stack[:len(stack)-1]
		}
	}
}
