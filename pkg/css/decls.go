package css

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-markup/pkg/value"
)

// Decl is one property or nested selector of a declaration object.
type Decl struct {
	Key   string
	Value any
}

// Decls is an ordered declaration object. Values may be strings (emitted as
// "key: value;"), numbers ("key: value"), nested Decls or maps (emitted as
// "key {…}") or functions of the key returning one of those.
type Decls []Decl

var _ value.Node = Decls(nil)

// D builds declarations from alternating key/value arguments.
func D(pairs ...any) Decls {
	decls := make(Decls, 0, len(pairs)/2)
	for idx := 0; idx+1 < len(pairs); idx += 2 {
		decls = append(decls, Decl{Key: fmt.Sprint(pairs[idx]), Value: pairs[idx+1]})
	}
	return decls
}

// FromMap converts an unordered map into declarations sorted by key. Nested
// maps are converted as well.
func FromMap(m map[string]any) Decls {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	decls := make(Decls, 0, len(keys))
	for _, key := range keys {
		decls = append(decls, Decl{Key: key, Value: m[key]})
	}
	return decls
}

// Len reports the number of declarations.
func (d Decls) Len() int { return len(d) }

// Eval renders the declarations. A nested block receives the output built so
// far at its level as accumulator. Values that resolve to anything other than
// text, a number or a nested block emit nothing.
func (d Decls) Eval(_ string) (string, error) {
	var out strings.Builder
	for _, decl := range d {
		effective, err := effectiveValue(decl)
		if err != nil {
			return "", err
		}

		switch typed := effective.(type) {
		case Decls:
			if err := writeBlock(&out, decl.Key, typed); err != nil {
				return "", err
			}
			continue
		case map[string]any:
			if err := writeBlock(&out, decl.Key, FromMap(typed)); err != nil {
				return "", err
			}
			continue
		case string:
			out.WriteString(decl.Key)
			out.WriteString(": ")
			out.WriteString(typed)
			out.WriteString(";")
			continue
		}

		if resolved := value.Of(effective); resolved.Kind() == value.KindNumber {
			out.WriteString(decl.Key)
			out.WriteString(": ")
			out.WriteString(resolved.String())
		}
	}
	return out.String(), nil
}

func writeBlock(out *strings.Builder, key string, nested Decls) error {
	inner, err := nested.Eval(out.String())
	if err != nil {
		return err
	}
	out.WriteString(key)
	out.WriteString(" {")
	out.WriteString(inner)
	out.WriteString("}")
	return nil
}

// effectiveValue calls function values with their key.
func effectiveValue(decl Decl) (any, error) {
	switch fn := decl.Value.(type) {
	case func(string) any:
		return fn(decl.Key), nil
	case func(string) string:
		return fn(decl.Key), nil
	case func(string) (any, error):
		got, err := fn(decl.Key)
		if err != nil {
			return nil, fmt.Errorf("css: value for %q: %w", decl.Key, err)
		}
		return got, nil
	default:
		return decl.Value, nil
	}
}
