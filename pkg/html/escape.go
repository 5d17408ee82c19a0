package html

import "strings"

var (
	escapeSteps = [][2]string{
		{"&", "&amp;"},
		{"<", "&lt;"},
		{">", "&gt;"},
		{`"`, "&quot;"},
		{"'", "&apos;"},
	}
	unescapeSteps = [][2]string{
		{"&amp;", "&"},
		{"&lt;", "<"},
		{"&gt;", ">"},
		{"&quot;", `"`},
		{"&apos;", "'"},
	}
)

// Escape replaces the five markup-significant characters with entities. The
// ampersand goes first so entities produced later are not escaped twice.
func Escape(s string) string {
	if !strings.ContainsAny(s, `&<>"'`) {
		return s
	}
	for _, step := range escapeSteps {
		s = strings.ReplaceAll(s, step[0], step[1])
	}
	return s
}

// Unescape reverses Escape, one entity at a time in the same order.
func Unescape(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	for _, step := range unescapeSteps {
		s = strings.ReplaceAll(s, step[0], step[1])
	}
	return s
}
