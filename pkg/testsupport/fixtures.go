package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/google/go-cmp/cmp"
	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// AssertGolden compares got with the golden file at path, rewriting the file
// instead when UPDATE_GOLDENS is set.
func AssertGolden(t *testing.T, path, got string) {
	t.Helper()
	if WriteMaybeGolden(t, path, []byte(got)) {
		return
	}
	want := MustReadGoldenString(t, path)
	if diff := CompareGolden(strings.TrimRight(want, "\n"), strings.TrimRight(got, "\n")); diff != "" {
		t.Fatalf("golden %s mismatch (-want +got):\n%s", path, diff)
	}
}

// ParseFragment parses rendered markup as children of a <body> element and
// returns the top-level nodes.
func ParseFragment(t *testing.T, markup string) []*xhtml.Node {
	t.Helper()
	body := &xhtml.Node{Type: xhtml.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := xhtml.ParseFragment(strings.NewReader(markup), body)
	if err != nil {
		t.Fatalf("parse html fragment: %v", err)
	}
	return nodes
}

// ElementTags lists element names of nodes and their descendants in document
// order.
func ElementTags(nodes []*xhtml.Node) []string {
	var tags []string
	var walk func(*xhtml.Node)
	walk = func(n *xhtml.Node) {
		if n.Type == xhtml.ElementNode {
			tags = append(tags, n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	for _, node := range nodes {
		walk(node)
	}
	return tags
}

// TextContent concatenates the decoded text of nodes.
func TextContent(nodes []*xhtml.Node) string {
	var builder strings.Builder
	var walk func(*xhtml.Node)
	walk = func(n *xhtml.Node) {
		if n.Type == xhtml.TextNode {
			builder.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	for _, node := range nodes {
		walk(node)
	}
	return builder.String()
}

// ParseStylesheet parses rendered CSS, failing the test on syntax errors.
func ParseStylesheet(t *testing.T, source string) *css.Stylesheet {
	t.Helper()
	sheet, err := parser.Parse(source)
	if err != nil {
		t.Fatalf("parse stylesheet: %v", err)
	}
	return sheet
}

// Declarations flattens the declarations of a rule into property/value pairs.
func Declarations(rule *css.Rule) [][2]string {
	out := make([][2]string, 0, len(rule.Declarations))
	for _, decl := range rule.Declarations {
		out = append(out, [2]string{decl.Property, decl.Value})
	}
	return out
}
