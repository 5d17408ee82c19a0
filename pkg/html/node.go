package html

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-markup/pkg/value"
)

// AttrKey is the reserved node key holding the attribute set.
const AttrKey = "."

// Entry is one key/content pair of a declarative node.
type Entry struct {
	Key   string
	Value any
}

// Node is an ordered declarative mapping from tag to content. Content may be
// a string, a nested Node, a func() Node, a slice of those, a number, a
// Fragment or any other evaluator. Keys may repeat.
type Node []Entry

var _ value.Node = Node(nil)

// N builds a node from alternating key/content arguments. A trailing key
// without content is ignored.
func N(pairs ...any) Node {
	node := make(Node, 0, len(pairs)/2)
	for idx := 0; idx+1 < len(pairs); idx += 2 {
		node = append(node, Entry{Key: fmt.Sprint(pairs[idx]), Value: pairs[idx+1]})
	}
	return node
}

// El builds a single-entry node.
func El(tag string, content any) Node {
	return Node{{Key: tag, Value: content}}
}

// Lazy defers building a node until it is evaluated.
type Lazy func() Node

// Eval builds the node and evaluates it.
func (l Lazy) Eval(acc string) (string, error) {
	if l == nil {
		return "", nil
	}
	return l().Eval(acc)
}

// Len reports the number of entries, including the attribute entry.
func (n Node) Len() int { return len(n) }

// Eval serialises the node. Each child element receives the output built so
// far at this level as its accumulator.
func (n Node) Eval(_ string) (string, error) {
	var inner strings.Builder
	for _, entry := range n {
		if entry.Key == AttrKey {
			continue
		}
		if err := writeContent(&inner, entry.Key, entry.Value); err != nil {
			return "", err
		}
	}
	return inner.String(), nil
}

// Attrs serialises the node's own attribute entry. ok is false when there is
// no entry or it produced nothing.
func (n Node) Attrs() (attrs string, ok bool) {
	for _, entry := range n {
		if entry.Key != AttrKey {
			continue
		}
		attrs = formatAttrs(entry.Value)
		return attrs, attrs != ""
	}
	return "", false
}

func writeContent(inner *strings.Builder, tag string, content any) error {
	switch typed := content.(type) {
	case string:
		writeElement(inner, tag, "", Escape(typed))
		return nil
	case Node:
		return writeChild(inner, tag, typed)
	case func() Node:
		if typed == nil {
			writeElement(inner, tag, "", "")
			return nil
		}
		return writeChild(inner, tag, typed())
	case Lazy:
		if typed == nil {
			writeElement(inner, tag, "", "")
			return nil
		}
		return writeChild(inner, tag, typed())
	case []Node:
		for _, item := range typed {
			if err := writeChild(inner, tag, item); err != nil {
				return err
			}
		}
		return nil
	case []any:
		for _, item := range typed {
			if err := writeContent(inner, tag, item); err != nil {
				return err
			}
		}
		return nil
	}

	resolved := value.Of(content)
	switch resolved.Kind() {
	case value.KindAbsent:
		writeElement(inner, tag, "", "")
	case value.KindText, value.KindNumber:
		writeElement(inner, tag, "", Escape(resolved.String()))
	case value.KindSequence:
		for _, item := range resolved.Items() {
			if err := writeContent(inner, tag, valueContent(item)); err != nil {
				return err
			}
		}
	default:
		out, err := value.Resolver{Escape: Escape}.Resolve(resolved, inner.String())
		if err != nil {
			return err
		}
		writeElement(inner, tag, "", out)
	}
	return nil
}

func writeChild(inner *strings.Builder, tag string, child Node) error {
	attrs, _ := child.Attrs()
	out, err := child.Eval(inner.String())
	if err != nil {
		return err
	}
	writeElement(inner, tag, attrs, out)
	return nil
}

func writeElement(inner *strings.Builder, tag, attrs, body string) {
	inner.WriteString("<")
	inner.WriteString(tag)
	if attrs != "" {
		inner.WriteString(" ")
		inner.WriteString(attrs)
	}
	inner.WriteString(">")
	inner.WriteString(body)
	inner.WriteString("</")
	inner.WriteString(tag)
	inner.WriteString(">")
}

// valueContent unwraps text and number values so sequence items take the
// same path as direct content.
func valueContent(v value.Value) any {
	switch v.Kind() {
	case value.KindAbsent:
		return nil
	case value.KindText, value.KindNumber:
		return v.String()
	default:
		return v
	}
}

// Attr is one attribute of an ordered attribute set. A nil Value omits the
// attribute.
type Attr struct {
	Name  string
	Value any
}

// Attrs is an ordered attribute set for the "." entry.
type Attrs []Attr

// A builds an attribute set from alternating name/value arguments.
func A(pairs ...any) Attrs {
	attrs := make(Attrs, 0, len(pairs)/2)
	for idx := 0; idx+1 < len(pairs); idx += 2 {
		attrs = append(attrs, Attr{Name: fmt.Sprint(pairs[idx]), Value: pairs[idx+1]})
	}
	return attrs
}

// joinTokens renders a list attribute such as a class list.
func joinTokens(items []value.Value) string {
	tokens := make([]string, 0, len(items))
	for _, item := range items {
		switch item.Kind() {
		case value.KindText, value.KindNumber:
			if text := strings.TrimSpace(item.String()); text != "" {
				tokens = append(tokens, text)
			}
		}
	}
	return strings.Join(tokens, " ")
}

// formatAttrs serialises the "." entry. Evaluators and nested nodes are not
// valid attribute values and are dropped.
func formatAttrs(raw any) string {
	switch typed := raw.(type) {
	case nil:
		return ""
	case string:
		return `class="` + Escape(typed) + `"`
	case Attrs:
		return joinAttrs(typed)
	case []Attr:
		return joinAttrs(typed)
	case map[string]any:
		return joinAttrs(sortedAttrs(typed))
	case map[string]string:
		converted := make(map[string]any, len(typed))
		for key, val := range typed {
			converted[key] = val
		}
		return joinAttrs(sortedAttrs(converted))
	default:
		return ""
	}
}

func sortedAttrs(m map[string]any) Attrs {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	attrs := make(Attrs, 0, len(names))
	for _, name := range names {
		attrs = append(attrs, Attr{Name: name, Value: m[name]})
	}
	return attrs
}

func joinAttrs(attrs []Attr) string {
	parts := make([]string, 0, len(attrs))
	for _, attr := range attrs {
		resolved := value.Of(attr.Value)
		switch resolved.Kind() {
		case value.KindAbsent:
			continue
		case value.KindText, value.KindNumber:
			parts = append(parts, Escape(attr.Name)+`="`+Escape(resolved.String())+`"`)
		case value.KindSequence:
			parts = append(parts, Escape(attr.Name)+`="`+Escape(joinTokens(resolved.Items()))+`"`)
		}
	}
	return strings.Join(parts, " ")
}
