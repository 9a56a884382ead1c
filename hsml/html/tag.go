// Package html provides an order-preserving HTML tag writer used by the
// HSML compiler. A Tag carries an element name, an optional id, class
// names, and attribute entries; everything renders in the fixed order
// id, class, attributes, with attribute and class order matching insertion
// order, which in turn matches source order.
package html

import (
	"io"
	"strings"
)

// Tag represents an HTML element under construction.
type Tag struct {
	name       string
	id         string
	classes    []string
	attributes []Attribute
}

// Attribute is a single HTML attribute. Value is nil for boolean
// attributes, which render as the bare key.
type Attribute struct {
	Key   string
	Value *string
}

// NewTag creates a Tag with the given element name.
func NewTag(name string) *Tag {
	return &Tag{name: name}
}

// SetID sets the id attribute. Returns the Tag to enable method chaining.
func (t *Tag) SetID(id string) *Tag {
	t.id = id
	return t
}

// AddClass appends a class name. Classes are joined with spaces in the
// rendered class attribute, in the order they were added.
func (t *Tag) AddClass(class string) *Tag {
	t.classes = append(t.classes, class)
	return t
}

// AddAttribute appends an attribute entry. A nil value renders as a
// boolean attribute. Duplicate keys are kept; the compiler emits exactly
// what the source said.
func (t *Tag) AddAttribute(key string, value *string) *Tag {
	t.attributes = append(t.attributes, Attribute{Key: key, Value: value})
	return t
}

// RenderOpen writes the opening tag including all attributes.
//
// Example output:
//
//	<div id="main" class="card card--wide" disabled data-x="1">
func (t *Tag) RenderOpen(w io.StringWriter) error {
	if _, err := w.WriteString("<"); err != nil {
		return err
	}
	if _, err := w.WriteString(t.name); err != nil {
		return err
	}
	if err := t.renderAttributes(w); err != nil {
		return err
	}
	if _, err := w.WriteString(">"); err != nil {
		return err
	}
	return nil
}

// RenderClose writes the closing tag.
func (t *Tag) RenderClose(w io.StringWriter) error {
	if _, err := w.WriteString("</"); err != nil {
		return err
	}
	if _, err := w.WriteString(t.name); err != nil {
		return err
	}
	if _, err := w.WriteString(">"); err != nil {
		return err
	}
	return nil
}

// RenderSelfClosing writes the tag in self-closing form, used when an
// element has neither children nor inline text.
//
// Example output:
//
//	<img src="/a.jpg" alt=""/>
func (t *Tag) RenderSelfClosing(w io.StringWriter) error {
	if _, err := w.WriteString("<"); err != nil {
		return err
	}
	if _, err := w.WriteString(t.name); err != nil {
		return err
	}
	if err := t.renderAttributes(w); err != nil {
		return err
	}
	if _, err := w.WriteString("/>"); err != nil {
		return err
	}
	return nil
}

func (t *Tag) renderAttributes(w io.StringWriter) error {
	if t.id != "" {
		if _, err := w.WriteString(` id="`); err != nil {
			return err
		}
		if _, err := w.WriteString(t.id); err != nil {
			return err
		}
		if _, err := w.WriteString(`"`); err != nil {
			return err
		}
	}

	if len(t.classes) > 0 {
		if _, err := w.WriteString(` class="`); err != nil {
			return err
		}
		if _, err := w.WriteString(strings.Join(t.classes, " ")); err != nil {
			return err
		}
		if _, err := w.WriteString(`"`); err != nil {
			return err
		}
	}

	for _, attr := range t.attributes {
		if _, err := w.WriteString(" "); err != nil {
			return err
		}
		if _, err := w.WriteString(attr.Key); err != nil {
			return err
		}
		if attr.Value == nil {
			continue
		}
		if _, err := w.WriteString(`="`); err != nil {
			return err
		}
		if _, err := w.WriteString(*attr.Value); err != nil {
			return err
		}
		if _, err := w.WriteString(`"`); err != nil {
			return err
		}
	}
	return nil
}
