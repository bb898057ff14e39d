package mailer

import "strings"

// Template is an immutable HTML/text source pair with {{key}} placeholders.
// One instance exists per message type for the process lifetime.
type Template struct {
	HTML string
	Text string
}

// Render substitutes every literal {{key}} occurrence in both sources with
// the corresponding value. Unmatched placeholders are left verbatim. This is
// deliberately not a templating language: no escaping, conditionals, loops
// or nested keys. Injection in the rendered HTML is handled downstream by
// the sanitizer, never here.
func (t Template) Render(data map[string]string) (html, text string) {
	html, text = t.HTML, t.Text
	for key, value := range data {
		placeholder := "{{" + key + "}}"
		html = strings.ReplaceAll(html, placeholder, value)
		text = strings.ReplaceAll(text, placeholder, value)
	}
	return html, text
}
