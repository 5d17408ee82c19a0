package document

import (
	"github.com/goliatone/go-markup/pkg/css"
	"github.com/goliatone/go-markup/pkg/html"
	"github.com/goliatone/go-markup/pkg/scope"
)

// Resolver returns the value bound to a context reference.
type Resolver func(name string) (any, error)

// PropsFirst resolves references from props, falling back to ambient (which
// may be nil). Names found nowhere resolve to nil and render as absent.
func PropsFirst(props scope.Props, ambient Resolver) Resolver {
	return func(name string) (any, error) {
		if v, ok := props[name]; ok {
			return v, nil
		}
		if ambient == nil {
			return nil, nil
		}
		return ambient(name)
	}
}

// BindNode returns a copy of node with every Ref replaced by its resolved
// value.
func BindNode(node html.Node, resolve Resolver) (html.Node, error) {
	out := make(html.Node, 0, len(node))
	for _, entry := range node {
		v, err := bindHTML(entry.Value, resolve)
		if err != nil {
			return nil, err
		}
		out = append(out, html.Entry{Key: entry.Key, Value: v})
	}
	return out, nil
}

func bindHTML(v any, resolve Resolver) (any, error) {
	switch typed := v.(type) {
	case Ref:
		return resolve(string(typed))
	case html.Node:
		return BindNode(typed, resolve)
	case html.Attrs:
		attrs := make(html.Attrs, 0, len(typed))
		for _, attr := range typed {
			bound, err := bindHTML(attr.Value, resolve)
			if err != nil {
				return nil, err
			}
			attrs = append(attrs, html.Attr{Name: attr.Name, Value: bound})
		}
		return attrs, nil
	case []any:
		items := make([]any, 0, len(typed))
		for _, item := range typed {
			bound, err := bindHTML(item, resolve)
			if err != nil {
				return nil, err
			}
			items = append(items, bound)
		}
		return items, nil
	default:
		return v, nil
	}
}

// BindDecls returns a copy of decls with every Ref replaced by its resolved
// value.
func BindDecls(decls css.Decls, resolve Resolver) (css.Decls, error) {
	out := make(css.Decls, 0, len(decls))
	for _, decl := range decls {
		v := decl.Value
		switch typed := v.(type) {
		case Ref:
			resolved, err := resolve(string(typed))
			if err != nil {
				return nil, err
			}
			v = resolved
		case css.Decls:
			nested, err := BindDecls(typed, resolve)
			if err != nil {
				return nil, err
			}
			v = nested
		}
		out = append(out, css.Decl{Key: decl.Key, Value: v})
	}
	return out, nil
}

// HTMLComponent turns a parsed node into a component. References resolve from
// props first, then from the ambient context of e.
func HTMLComponent(e *html.Engine, node html.Node) html.Component {
	return func(props html.Props) (html.Fragment, error) {
		bound, err := BindNode(node, PropsFirst(props, e.Lookup))
		if err != nil {
			return nil, err
		}
		return e.Node(bound), nil
	}
}

// CSSComponent turns parsed declarations into a component rendered as a sealed
// sheet on e.
func CSSComponent(e *css.Engine, decls css.Decls) css.Component {
	return func(props css.Props) (css.Fragment, error) {
		bound, err := BindDecls(decls, PropsFirst(props, e.Lookup))
		if err != nil {
			return nil, err
		}
		return e.Sheet(bound), nil
	}
}
