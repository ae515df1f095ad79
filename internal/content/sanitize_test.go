package content

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSanitizeHTML_StripsScripts(t *testing.T) {
	in := `<p>Great role</p><script>alert("x")</script>`
	out := SanitizeHTML(in)
	if strings.Contains(out, "script") || strings.Contains(out, "alert") {
		t.Fatalf("script survived sanitization: %s", out)
	}
	if !strings.Contains(out, "<p>Great role</p>") {
		t.Fatalf("benign markup was lost: %s", out)
	}
}

func TestSanitizeHTML_KeepsLinksAndLists(t *testing.T) {
	in := `<ul><li><a href="https://example.com">apply</a></li></ul>`
	out := SanitizeHTML(in)
	if !strings.Contains(out, "<li>") || !strings.Contains(out, "href") {
		t.Fatalf("expected lists and links to survive: %s", out)
	}
}

func TestHTMLToText_CollapsesWhitespace(t *testing.T) {
	in := "<div><p>Work   on\n\npayments</p><p>in Go</p></div>"
	got := HTMLToText(in)
	want := "Work on paymentsin Go"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestExcerpt(t *testing.T) {
	html := "<p>" + strings.Repeat("a", 100) + "</p>"

	got := Excerpt(html, 20)
	if len(got) != 20 || !strings.HasSuffix(got, "...") {
		t.Fatalf("expected 20-char excerpt with ellipsis, got %q (%d)", got, len(got))
	}

	short := Excerpt("<p>hi</p>", 20)
	if short != "hi" {
		t.Fatalf("short text must pass through untouched, got %q", short)
	}
}

func TestExcerpt_CutsOnRuneBoundary(t *testing.T) {
	html := "<p>" + strings.Repeat("ळ", 50) + "</p>"

	got := Excerpt(html, 10)
	if !utf8.ValidString(got) {
		t.Fatalf("excerpt is not valid UTF-8: %q", got)
	}
	if got != strings.Repeat("ळ", 7)+"..." {
		t.Fatalf("expected 7 runes plus ellipsis, got %q", got)
	}
}
