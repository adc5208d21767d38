package vdom

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
)

// RenderHTML renders a VNode tree to an HTML string. Components are
// expanded by calling Render, text nodes are escaped.
func RenderHTML(node *VNode) string {
	var buf bytes.Buffer
	RenderTo(&buf, node)
	return buf.String()
}

// RenderTo streams a VNode tree to the given writer.
func RenderTo(w io.Writer, node *VNode) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case KindElement:
		return renderElement(w, node)
	case KindText:
		_, err := io.WriteString(w, escapeHTML(node.Text))
		return err
	case KindFragment:
		for _, child := range node.Children {
			if err := RenderTo(w, child); err != nil {
				return err
			}
		}
		return nil
	case KindComponent:
		if node.Comp == nil {
			return nil
		}
		return RenderTo(w, node.Comp.Render())
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

func renderElement(w io.Writer, node *VNode) error {
	if _, err := fmt.Fprintf(w, "<%s", node.Tag); err != nil {
		return err
	}
	if err := renderAttributes(w, node.Props); err != nil {
		return err
	}
	if isVoidElement(node.Tag) {
		_, err := io.WriteString(w, ">")
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	for _, child := range node.Children {
		if err := RenderTo(w, child); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "</%s>", node.Tag)
	return err
}

// renderAttributes writes attributes sorted by key for deterministic
// output. Event handlers and other non-scalar values are skipped.
func renderAttributes(w io.Writer, props Props) error {
	if len(props) == 0 {
		return nil
	}

	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if strings.HasPrefix(key, "on") {
			continue
		}
		switch v := props[key].(type) {
		case bool:
			if v {
				if _, err := fmt.Fprintf(w, " %s", key); err != nil {
					return err
				}
			}
		case string:
			if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(v)); err != nil {
				return err
			}
		case int, int64, uint, uint64, float64:
			if _, err := fmt.Fprintf(w, ` %s="%v"`, key, v); err != nil {
				return err
			}
		}
	}
	return nil
}

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

func isVoidElement(tag string) bool {
	return voidElements[tag]
}

// escapeHTML escapes text for safe inclusion in HTML content.
func escapeHTML(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}

// escapeAttr escapes text for attribute values. It additionally escapes
// whitespace characters that could break attribute parsing.
func escapeAttr(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		case '\n':
			buf.WriteString("&#10;")
		case '\r':
			buf.WriteString("&#13;")
		case '\t':
			buf.WriteString("&#9;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
