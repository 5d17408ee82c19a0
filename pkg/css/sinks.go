package css

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/goliatone/go-markup/pkg/html"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Collapse replaces every run of whitespace with a single space.
func Collapse(css string) string {
	return whitespaceRun.ReplaceAllString(css, " ")
}

// ModuleResult pairs a generated class name with the style block scoped to it.
type ModuleResult struct {
	ClassName string
	Style     string
}

func (e *Engine) renderCollapsed(c Component, props Props, ctx Context) (string, error) {
	if ctx == nil {
		ctx = Context{}
	}
	out, err := e.Render(c, props, ctx)
	if err != nil {
		return "", err
	}
	return Collapse(out), nil
}

// Inner renders c into a <style> element.
func (e *Engine) Inner(c Component, props Props, ctx Context) (string, error) {
	out, err := e.renderCollapsed(c, props, ctx)
	if err != nil {
		return "", err
	}
	return "<style>" + out + "</style>", nil
}

// Inline renders c as a quoted style attribute. Quotes and markup characters
// in the rules are escaped so the attribute stays well formed.
func (e *Engine) Inline(c Component, props Props, ctx Context) (string, error) {
	out, err := e.renderCollapsed(c, props, ctx)
	if err != nil {
		return "", err
	}
	return `style="` + html.Escape(out) + `"`, nil
}

// Module renders c under a freshly generated class selector.
func (e *Engine) Module(c Component, props Props, ctx Context) (ModuleResult, error) {
	className, err := e.namer.ClassName()
	if err != nil {
		return ModuleResult{}, err
	}
	if strings.TrimSpace(className) == "" {
		return ModuleResult{}, fmt.Errorf("css: class namer returned an empty name")
	}

	out, err := e.renderCollapsed(c, props, ctx)
	if err != nil {
		return ModuleResult{}, err
	}
	return ModuleResult{
		ClassName: className,
		Style:     "<style>." + className + "{" + out + "}</style>",
	}, nil
}

// FileLink writes c like File and returns a stylesheet <link> to the path.
func (e *Engine) FileLink(c Component, props Props, ctx Context, path string) (string, error) {
	written, err := e.File(c, props, ctx, path)
	if err != nil {
		return "", err
	}
	return Link(written), nil
}

// Link returns a stylesheet <link> element for href.
func Link(href string) string {
	return `<link rel="stylesheet" href="` + html.Escape(href) + `">`
}
