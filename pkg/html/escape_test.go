package html_test

import (
	"testing"

	"github.com/goliatone/go-markup/pkg/html"
)

func TestEscape(t *testing.T) {
	cases := map[string]string{
		"":                 "",
		"plain":            "plain",
		"<b>":              "&lt;b&gt;",
		`a & "b" 'c'`:      "a &amp; &quot;b&quot; &apos;c&apos;",
		"&lt;":             "&amp;lt;",
		"Tom & Jerry's <>": "Tom &amp; Jerry&apos;s &lt;&gt;",
	}
	for in, want := range cases {
		if got := html.Escape(in); got != want {
			t.Fatalf("Escape(%q): want %q got %q", in, want, got)
		}
	}
}

func TestUnescape_AppliesEntitiesInOrder(t *testing.T) {
	cases := map[string]string{
		"&lt;p&gt;":     "<p>",
		"&quot;x&quot;": `"x"`,
		"&apos;":        "'",
		"&amp;lt;":      "<",
		"no entities":   "no entities",
		"&amp;&amp;":    "&&",
	}
	for in, want := range cases {
		if got := html.Unescape(in); got != want {
			t.Fatalf("Unescape(%q): want %q got %q", in, want, got)
		}
	}
}

func TestEscape_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"hello",
		`<a href="x">it's</a>`,
		"& & &",
		"'\"<>&",
		"unicode ✓ <ok>",
	}
	for _, in := range inputs {
		if got := html.Unescape(html.Escape(in)); got != in {
			t.Fatalf("round trip of %q produced %q", in, got)
		}
	}
}
