// Package html provides the small set of markup helpers the menu renderer needs:
// entity encoding, tag emission and class-attribute merging.
package html

import (
	"html"
	"slices"
	"sort"
	"strings"

	"github.com/spf13/cast"
)

// Attributes maps attribute names to values.
//
// Value rendering rules:
//   - true renders the bare attribute name (e.g. "disabled")
//   - false and nil omit the attribute
//   - []string joins its elements with a space
//   - anything else is stringified and encoded
type Attributes map[string]any

// attributeOrder lists the attributes emitted first, in this order.
// Remaining attributes follow in alphabetical order.
var attributeOrder = []string{
	"type", "id", "class", "name", "value", "href", "src", "srcset",
	"form", "action", "method", "selected", "checked", "readonly",
	"disabled", "multiple", "size", "maxlength", "width", "height",
	"rows", "cols", "alt", "title", "rel", "media",
}

// voidElements never take content or a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// Encode converts special characters into HTML entities.
func Encode(text string) string {
	return html.EscapeString(text)
}

// EncodeAttribute encodes a value for use inside a double-quoted attribute.
func EncodeAttribute(value string) string {
	return html.EscapeString(value)
}

// Tag renders an element with the given name, inner HTML and attributes.
// An empty name emits the content alone without a wrapping element.
// Content is not encoded.
func Tag(name, content string, attrs Attributes) string {
	if name == "" {
		return content
	}

	var b strings.Builder
	b.WriteString("<")
	b.WriteString(name)
	b.WriteString(RenderAttributes(attrs))
	b.WriteString(">")

	if voidElements[strings.ToLower(name)] {
		return b.String()
	}

	b.WriteString(content)
	b.WriteString("</")
	b.WriteString(name)
	b.WriteString(">")

	return b.String()
}

// RenderAttributes renders attrs as a string with a leading space per attribute.
func RenderAttributes(attrs Attributes) string {
	if len(attrs) == 0 {
		return ""
	}

	var b strings.Builder
	for _, name := range orderedNames(attrs) {
		switch v := attrs[name].(type) {
		case nil:
		case bool:
			if v {
				b.WriteString(" ")
				b.WriteString(name)
			}
		case []string:
			if len(v) == 0 {
				continue
			}
			b.WriteString(" ")
			b.WriteString(name)
			b.WriteString(`="`)
			b.WriteString(EncodeAttribute(strings.Join(v, " ")))
			b.WriteString(`"`)
		default:
			b.WriteString(" ")
			b.WriteString(name)
			b.WriteString(`="`)
			b.WriteString(EncodeAttribute(cast.ToString(v)))
			b.WriteString(`"`)
		}
	}

	return b.String()
}

func orderedNames(attrs Attributes) []string {
	names := make([]string, 0, len(attrs))
	for _, name := range attributeOrder {
		if _, ok := attrs[name]; ok {
			names = append(names, name)
		}
	}

	rest := make([]string, 0, len(attrs)-len(names))
	for name := range attrs {
		if !slices.Contains(attributeOrder, name) {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)

	return append(names, rest...)
}

// AddClass merges classes into the "class" attribute of attrs.
// Existing classes are kept in order, duplicates and empty names are skipped.
// When the resulting class list is empty, attrs is left untouched.
func AddClass(attrs Attributes, classes ...string) {
	merged := classList(attrs["class"])
	for _, c := range classes {
		if c == "" || slices.Contains(merged, c) {
			continue
		}
		merged = append(merged, c)
	}

	if len(merged) == 0 {
		return
	}

	attrs["class"] = strings.Join(merged, " ")
}

func classList(v any) []string {
	var raw []string
	switch c := v.(type) {
	case nil:
		return nil
	case string:
		raw = strings.Fields(c)
	case []string:
		for _, s := range c {
			raw = append(raw, strings.Fields(s)...)
		}
	default:
		raw = strings.Fields(cast.ToString(c))
	}

	out := make([]string, 0, len(raw))
	for _, c := range raw {
		if !slices.Contains(out, c) {
			out = append(out, c)
		}
	}

	return out
}
