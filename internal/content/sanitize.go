// Package content cleans the rich-text fields faculty submit with a
// posting before they reach storage or a list payload.
package content

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

var descriptionPolicy = bluemonday.UGCPolicy()

// SanitizeHTML strips unsafe tags and attributes from a submitted
// description. UGCPolicy keeps links, lists and basic formatting but
// removes scripts and iframes.
func SanitizeHTML(s string) string {
	return descriptionPolicy.Sanitize(toValidUTF8(s))
}

// HTMLToText converts HTML to plain text, collapsing whitespace.
func HTMLToText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html // Fallback to original if parsing fails
	}
	return normalizeSpace(doc.Text())
}

// Excerpt returns a plain-text summary of an HTML description, cut to
// maxLen runes with an ellipsis. Used for card payloads where the full
// description would be wasted bytes. Cutting on runes keeps a multibyte
// character at the boundary intact.
func Excerpt(html string, maxLen int) string {
	text := HTMLToText(html)
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	if maxLen > 3 {
		return string(runes[:maxLen-3]) + "..."
	}
	return string(runes[:maxLen])
}

// normalizeSpace collapses runs of whitespace into single spaces and
// trims the string.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// toValidUTF8 removes invalid byte sequences that upset PostgreSQL.
func toValidUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, "")
}
