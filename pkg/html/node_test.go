package html_test

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-markup/pkg/html"
	"github.com/goliatone/go-markup/pkg/testsupport"
)

func samplePage() html.Node {
	return html.N(
		"header", html.N(".", "site-header", "h1", "Hello & welcome"),
		"main", html.N(
			".", html.A("id", "content", "data-empty", nil, "role", "main"),
			"p", "Tom's <b>",
			"ul", html.N("li", []any{"one", "two"}),
		),
		"footer", "© 2026",
	)
}

func TestNode_RendersGoldenPage(t *testing.T) {
	out, err := samplePage().Eval("")
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	testsupport.AssertGolden(t, filepath.Join("testdata", "page.golden"), out)

	nodes := testsupport.ParseFragment(t, out)
	want := []string{"header", "h1", "main", "p", "ul", "li", "li", "footer"}
	if diff := cmp.Diff(want, testsupport.ElementTags(nodes)); diff != "" {
		t.Fatalf("parsed structure mismatch (-want +got):\n%s", diff)
	}
	if got := testsupport.TextContent(nodes); got != "Hello & welcomeTom's <b>onetwo© 2026" {
		t.Fatalf("decoded text mismatch: %q", got)
	}
}

func TestNode_OmitsAttributeBlockWithoutDotEntry(t *testing.T) {
	cases := []struct {
		name string
		node html.Node
		want string
	}{
		{"no dot entry", html.N("div", html.N("p", "x")), "<div><p>x</p></div>"},
		{"only nil attributes", html.N("div", html.N(".", html.A("hidden", nil), "p", "x")), "<div><p>x</p></div>"},
		{"class shorthand", html.N("div", html.N(".", "card", "p", "x")), `<div class="card"><p>x</p></div>`},
		{"escaped attribute", html.N("a", html.N(".", html.A("title", `"q" & <r>`), "span", "x")), `<a title="&quot;q&quot; &amp; &lt;r&gt;"><span>x</span></a>`},
		{"sorted map attributes", html.N("i", html.N(".", map[string]any{"b": "2", "a": 1})), `<i a="1" b="2"></i>`},
		{"class list", html.N("i", html.N(".", html.A("class", []string{"a", " ", "b"}))), `<i class="a b"></i>`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.node.Eval("")
			if err != nil {
				t.Fatalf("eval: %v", err)
			}
			if got != tc.want {
				t.Fatalf("want %q got %q", tc.want, got)
			}
		})
	}
}

func TestNode_ContentShapes(t *testing.T) {
	lazy := html.Lazy(func() html.Node { return html.N("b", "lazy") })
	cases := []struct {
		name string
		node html.Node
		want string
	}{
		{"number", html.N("span", 3), "<span>3</span>"},
		{"nil", html.N("span", nil), "<span></span>"},
		{"lazy node", html.N("p", lazy), "<p><b>lazy</b></p>"},
		{"func node", html.N("p", func() html.Node { return html.N("i", "f") }), "<p><i>f</i></p>"},
		{"list of strings", html.N("li", []any{"a", "b"}), "<li>a</li><li>b</li>"},
		{"escaped list items", html.N("li", []any{"<x>", 2}), "<li>&lt;x&gt;</li><li>2</li>"},
		{"node list", html.N("li", []html.Node{html.N("a", "1"), html.N("a", "2")}), "<li><a>1</a></li><li><a>2</a></li>"},
		{"repeated keys", html.Node{{Key: "p", Value: "a"}, {Key: "p", Value: "b"}}, "<p>a</p><p>b</p>"},
		{"raw fragment", html.N("div", html.Raw("<hr>")), "<div><hr></div>"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.node.Eval("")
			if err != nil {
				t.Fatalf("eval: %v", err)
			}
			if got != tc.want {
				t.Fatalf("want %q got %q", tc.want, got)
			}
		})
	}
}

func TestNode_EvaluatorSeesPriorSiblings(t *testing.T) {
	var seen string
	counter := html.Fragment(func(acc string) (string, error) {
		seen = acc
		return strconv.Itoa(len(acc)), nil
	})

	out, err := html.N("a", "x", "b", counter, "c", "y").Eval("ignored")
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	if seen != "<a>x</a>" {
		t.Fatalf("evaluator saw %q", seen)
	}
	if out != "<a>x</a><b>8</b><c>y</c>" {
		t.Fatalf("output mismatch: %q", out)
	}
}

func TestNode_AttrsReportsPresence(t *testing.T) {
	if _, ok := html.N("p", "x").Attrs(); ok {
		t.Fatalf("node without dot entry must not report attributes")
	}
	attrs, ok := html.N(".", "wide").Attrs()
	if !ok || attrs != `class="wide"` {
		t.Fatalf("unexpected attrs %q (%v)", attrs, ok)
	}
	if html.El("p", "x").Len() != 1 {
		t.Fatalf("El must build a single entry node")
	}
}
