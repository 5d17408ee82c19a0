// Package document loads declarative HTML nodes and CSS declaration objects
// from YAML or JSON files, keeping key order, and binds context references in
// them at render time.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-markup/pkg/css"
	"github.com/goliatone/go-markup/pkg/html"
)

// RefTag marks a scalar as a context reference: `title: !ctx pageTitle`.
const RefTag = "!ctx"

// Ref is a context reference resolved against props when the document renders.
type Ref string

// ParseNode decodes a YAML/JSON mapping into an ordered html.Node. A "."
// mapping becomes an ordered attribute set.
func ParseNode(data []byte) (html.Node, error) {
	root, err := rootMapping(data)
	if err != nil {
		return nil, err
	}
	return nodeFromMapping(root)
}

// ParseDecls decodes a YAML/JSON mapping into ordered css.Decls.
func ParseDecls(data []byte) (css.Decls, error) {
	root, err := rootMapping(data)
	if err != nil {
		return nil, err
	}
	return declsFromMapping(root)
}

func rootMapping(data []byte) (*yaml.Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("document: empty document")
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("document: parse: %w", err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, errors.New("document: empty document")
		}
		root = root.Content[0]
	}
	root = resolveAlias(root)
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("document: line %d: top level must be a mapping", root.Line)
	}
	return root, nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

func nodeFromMapping(m *yaml.Node) (html.Node, error) {
	node := make(html.Node, 0, len(m.Content)/2)
	for idx := 0; idx+1 < len(m.Content); idx += 2 {
		key := resolveAlias(m.Content[idx])
		val := resolveAlias(m.Content[idx+1])
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("document: line %d: keys must be scalars", key.Line)
		}

		if key.Value == html.AttrKey {
			attrs, err := attrsFromNode(val)
			if err != nil {
				return nil, err
			}
			node = append(node, html.Entry{Key: html.AttrKey, Value: attrs})
			continue
		}

		content, err := htmlContent(val)
		if err != nil {
			return nil, err
		}
		node = append(node, html.Entry{Key: key.Value, Value: content})
	}
	return node, nil
}

func htmlContent(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.MappingNode:
		return nodeFromMapping(n)
	case yaml.SequenceNode:
		items := make([]any, 0, len(n.Content))
		for _, child := range n.Content {
			item, err := htmlContent(resolveAlias(child))
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return items, nil
	case yaml.ScalarNode:
		return scalar(n)
	default:
		return nil, fmt.Errorf("document: line %d: unsupported node", n.Line)
	}
}

func attrsFromNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return scalar(n)
	case yaml.MappingNode:
		attrs := make(html.Attrs, 0, len(n.Content)/2)
		for idx := 0; idx+1 < len(n.Content); idx += 2 {
			key := resolveAlias(n.Content[idx])
			val := resolveAlias(n.Content[idx+1])
			var (
				v   any
				err error
			)
			if val.Kind == yaml.SequenceNode {
				v, err = htmlContent(val)
			} else {
				v, err = scalar(val)
			}
			if err != nil {
				return nil, err
			}
			attrs = append(attrs, html.Attr{Name: key.Value, Value: v})
		}
		return attrs, nil
	default:
		return nil, fmt.Errorf("document: line %d: attributes must be a string or mapping", n.Line)
	}
}

func declsFromMapping(m *yaml.Node) (css.Decls, error) {
	decls := make(css.Decls, 0, len(m.Content)/2)
	for idx := 0; idx+1 < len(m.Content); idx += 2 {
		key := resolveAlias(m.Content[idx])
		val := resolveAlias(m.Content[idx+1])
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("document: line %d: keys must be scalars", key.Line)
		}

		var (
			v   any
			err error
		)
		switch val.Kind {
		case yaml.MappingNode:
			v, err = declsFromMapping(val)
		case yaml.ScalarNode:
			v, err = scalar(val)
		default:
			err = fmt.Errorf("document: line %d: %q must be a scalar or mapping", val.Line, key.Value)
		}
		if err != nil {
			return nil, err
		}
		decls = append(decls, css.Decl{Key: key.Value, Value: v})
	}
	return decls, nil
}

func scalar(n *yaml.Node) (any, error) {
	switch n.Tag {
	case RefTag:
		name := strings.TrimSpace(n.Value)
		if name == "" {
			return nil, fmt.Errorf("document: line %d: %s needs a context name", n.Line, RefTag)
		}
		return Ref(name), nil
	case "!!null":
		return nil, nil
	case "!!int":
		parsed, err := strconv.ParseInt(n.Value, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("document: line %d: %w", n.Line, err)
		}
		return parsed, nil
	case "!!float":
		var parsed float64
		if err := n.Decode(&parsed); err != nil {
			return nil, fmt.Errorf("document: line %d: %w", n.Line, err)
		}
		return parsed, nil
	case "!!bool":
		var parsed bool
		if err := n.Decode(&parsed); err != nil {
			return nil, fmt.Errorf("document: line %d: %w", n.Line, err)
		}
		return parsed, nil
	default:
		return n.Value, nil
	}
}
