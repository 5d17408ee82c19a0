package value

import (
	"fmt"
	"strings"
)

// Resolver turns values into text. Escape is applied to Text and Number values
// at the top level of a template; nil means text passes through untouched.
type Resolver struct {
	Escape func(string) string
}

// Resolve renders v given the text accumulated before it.
func (r Resolver) Resolve(v Value, acc string) (string, error) {
	switch v.kind {
	case KindAbsent:
		return "", nil
	case KindText, KindNumber:
		if r.Escape != nil {
			return r.Escape(v.text), nil
		}
		return v.text, nil
	case KindThunk:
		return v.thunk.Eval(acc)
	case KindNode:
		return v.node.Eval(acc)
	case KindSequence:
		return r.resolveItems(v.items, acc)
	default:
		return "", fmt.Errorf("value: unknown kind %s", v.kind)
	}
}

// resolveItems joins sequence elements. Every element sees the same
// accumulator and text elements are used as-is.
func (r Resolver) resolveItems(items []Value, acc string) (string, error) {
	var builder strings.Builder
	for _, item := range items {
		switch item.kind {
		case KindAbsent:
		case KindText, KindNumber:
			builder.WriteString(item.text)
		case KindSequence:
			out, err := r.resolveItems(item.items, acc)
			if err != nil {
				return "", err
			}
			builder.WriteString(out)
		default:
			out, err := r.Resolve(item, acc)
			if err != nil {
				return "", err
			}
			builder.WriteString(out)
		}
	}
	return builder.String(), nil
}

// Fold renders chunks interleaved with values. The value at index i is
// resolved against everything produced through chunks[i], including earlier
// resolved values, and never sees later chunks. A trailing value (as many
// values as chunks) is resolved after the last chunk.
func (r Resolver) Fold(chunks []string, values []Value) (string, error) {
	if len(values) != len(chunks)-1 && len(values) != len(chunks) {
		return "", fmt.Errorf("value: %w (chunks=%d values=%d)", ErrTemplateShape, len(chunks), len(values))
	}

	var builder strings.Builder
	for idx, chunk := range chunks {
		builder.WriteString(chunk)
		if idx >= len(values) {
			break
		}
		out, err := r.Resolve(values[idx], builder.String())
		if err != nil {
			return "", err
		}
		builder.WriteString(out)
	}
	return builder.String(), nil
}
