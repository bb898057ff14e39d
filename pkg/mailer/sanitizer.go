package mailer

import "github.com/microcosm-cc/bluemonday"

// emailPolicy is the whitelist applied to every HTML body before it leaves
// the dispatcher. Structural and text-level tags only; script, style,
// iframe, form and input-like elements are stripped with their markup while
// text content is preserved. The policy is idempotent: sanitizing already
// sanitized output yields the same output.
var emailPolicy = buildEmailPolicy()

func buildEmailPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.AllowElements(
		"h1", "h2", "h3", "h4", "h5", "h6",
		"p", "br", "hr", "div", "span", "blockquote", "pre",
		"strong", "em", "b", "i", "u", "small", "sub", "sup",
		"ul", "ol", "li",
		"table", "thead", "tbody", "tfoot", "tr", "td", "th",
	)

	p.AllowAttrs("style", "class").Globally()
	p.AllowAttrs("href", "target", "rel", "style", "class").OnElements("a")

	// Link targets: common contact schemes plus scheme-less (relative) values
	p.AllowURLSchemes("http", "https", "mailto", "tel", "callto", "sms", "maps")
	p.AllowRelativeURLs(true)
	p.RequireParseableURLs(true)

	return p
}

// SanitizeHTML strips disallowed markup from an HTML fragment. Disallowed
// constructs are removed, not escaped.
func SanitizeHTML(html string) string {
	return emailPolicy.Sanitize(html)
}
