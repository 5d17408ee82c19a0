package render

import (
	"reflect"
	"runtime"
	"strings"
	"unicode"
)

// Target is a named unit of output: a component bound to its props and
// context, ready to be rendered by its engine.
type Target interface {
	Name() string
	// Extension includes the leading dot (".html", ".css").
	Extension() string
	Render() (string, error)
}

// DefaultName is used when a component has no usable function name.
const DefaultName = "index"

// ComponentName derives a file-friendly name from a Go function value.
// Package-level functions yield their identifier; closures and nil yield
// DefaultName.
func ComponentName(fn any) string {
	if fn == nil {
		return DefaultName
	}
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return DefaultName
	}
	info := runtime.FuncForPC(rv.Pointer())
	if info == nil {
		return DefaultName
	}

	full := info.Name()
	if slash := strings.LastIndex(full, "/"); slash >= 0 {
		full = full[slash+1:]
	}
	parts := strings.Split(full, ".")
	if len(parts) < 2 {
		return DefaultName
	}
	// pkg.Func, or a method value pkg.T.Method-fm; anything deeper is a
	// closure.
	last := parts[len(parts)-1]
	method := strings.HasSuffix(last, "-fm")
	if len(parts) > 2 && !method {
		return DefaultName
	}
	name := strings.TrimSuffix(last, "-fm")
	if isAnonymous(name) {
		return DefaultName
	}
	return name
}

func isAnonymous(name string) bool {
	if name == "" {
		return true
	}
	if strings.HasPrefix(name, "func") || strings.HasPrefix(name, "gowrap") {
		rest := strings.TrimLeft(strings.TrimPrefix(strings.TrimPrefix(name, "func"), "gowrap"), "0123456789")
		return rest == ""
	}
	for _, r := range name {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// DefaultPath returns "./<name><ext>" for a component.
func DefaultPath(fn any, ext string) string {
	return "./" + ComponentName(fn) + ext
}
