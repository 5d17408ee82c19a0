// Package value defines the tagged value interpolated into templates and the
// fold that resolves a literal template against its accumulated output.
package value

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
)

// ErrTemplateShape reports a literal template whose value count is neither
// one less than nor equal to its chunk count.
var ErrTemplateShape = errors.New("template values must match chunks")

// Kind enumerates the shapes an interpolated value can take.
type Kind uint8

const (
	KindAbsent Kind = iota
	KindText
	KindNumber
	KindThunk
	KindSequence
	KindNode
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindThunk:
		return "thunk"
	case KindSequence:
		return "sequence"
	case KindNode:
		return "node"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Evaluator is anything that renders itself given the text produced before it.
type Evaluator interface {
	Eval(acc string) (string, error)
}

// Node is a declarative mapping (HTML node or CSS declaration block).
type Node interface {
	Evaluator
	Len() int
}

// EvalFunc adapts a plain function to Evaluator.
type EvalFunc func(acc string) (string, error)

// Eval calls f.
func (f EvalFunc) Eval(acc string) (string, error) {
	return f(acc)
}

// Value is one interpolated template value. Build it with the constructors or
// Of; the zero Value is Absent.
type Value struct {
	kind  Kind
	text  string
	thunk Evaluator
	items []Value
	node  Node
}

func Absent() Value { return Value{} }

func Text(s string) Value { return Value{kind: KindText, text: s} }

// Number records the textual form of a numeric value.
func Number(n float64) Value {
	return Value{kind: KindNumber, text: FormatNumber(n)}
}

func Int(n int64) Value {
	return Value{kind: KindNumber, text: strconv.FormatInt(n, 10)}
}

func Thunk(fn Evaluator) Value {
	if fn == nil {
		return Absent()
	}
	return Value{kind: KindThunk, thunk: fn}
}

func Sequence(items ...Value) Value {
	return Value{kind: KindSequence, items: items}
}

func NodeOf(n Node) Value {
	if n == nil {
		return Absent()
	}
	return Value{kind: KindNode, node: n}
}

func (v Value) Kind() Kind { return v.kind }

// String returns the text of Text and Number values and "" otherwise.
func (v Value) String() string { return v.text }

// Items returns the elements of a Sequence.
func (v Value) Items() []Value { return v.items }

// FormatNumber renders floats without exponent or trailing zeros, so 1 is "1"
// and 1.5 is "1.5".
func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// Of classifies an arbitrary Go value. Values that fit no other shape are
// coerced to their fmt text.
func Of(v any) Value {
	switch typed := v.(type) {
	case nil:
		return Absent()
	case Value:
		return typed
	case []Value:
		return Sequence(typed...)
	case string:
		return Text(typed)
	case Node:
		if isNilPointer(typed) {
			return Absent()
		}
		return NodeOf(typed)
	case Evaluator:
		if isNilPointer(typed) {
			return Absent()
		}
		return Thunk(typed)
	case func(string) (string, error):
		if typed == nil {
			return Absent()
		}
		return Thunk(EvalFunc(typed))
	case func(string) string:
		if typed == nil {
			return Absent()
		}
		return Thunk(EvalFunc(func(acc string) (string, error) {
			return typed(acc), nil
		}))
	case int:
		return Int(int64(typed))
	case int8:
		return Int(int64(typed))
	case int16:
		return Int(int64(typed))
	case int32:
		return Int(int64(typed))
	case int64:
		return Int(typed)
	case uint:
		return Value{kind: KindNumber, text: strconv.FormatUint(uint64(typed), 10)}
	case uint8:
		return Int(int64(typed))
	case uint16:
		return Int(int64(typed))
	case uint32:
		return Int(int64(typed))
	case uint64:
		return Value{kind: KindNumber, text: strconv.FormatUint(typed, 10)}
	case float32:
		return Value{kind: KindNumber, text: strconv.FormatFloat(float64(typed), 'f', -1, 32)}
	case float64:
		return Number(typed)
	case []any:
		items := make([]Value, len(typed))
		for idx, item := range typed {
			items[idx] = Of(item)
		}
		return Sequence(items...)
	case []string:
		items := make([]Value, len(typed))
		for idx, item := range typed {
			items[idx] = Text(item)
		}
		return Sequence(items...)
	case fmt.Stringer:
		if isNilPointer(typed) {
			return Absent()
		}
		return Text(typed.String())
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice {
		items := make([]Value, rv.Len())
		for idx := range items {
			items[idx] = Of(rv.Index(idx).Interface())
		}
		return Sequence(items...)
	}
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return Absent()
	}
	return Text(fmt.Sprint(v))
}

// OfAll classifies every element of values.
func OfAll(values []any) []Value {
	out := make([]Value, len(values))
	for idx, v := range values {
		out[idx] = Of(v)
	}
	return out
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
