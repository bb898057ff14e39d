package mailer

import (
	"regexp"
	"strings"
)

// Attachment is a file carried with an outbound message.
type Attachment struct {
	Filename string
	Content  []byte
	MimeType string
}

// Message is a single outbound email. It lives for the duration of one
// Send call and is never persisted.
type Message struct {
	To          []string
	Cc          []string
	Bcc         []string
	ReplyTo     string
	Subject     string
	Text        string
	HTML        string
	Attachments []Attachment
	Headers     map[string]string
}

// Strict address syntax: constrained local-part charset, labels that start
// and end with an alphanumeric, and at least two domain labels.
var addressRegex = regexp.MustCompile(
	`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9](?:[a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?)+$`)

// NormalizeAddress lower-cases and trims an email address for validation
// and comparison.
func NormalizeAddress(addr string) string {
	return strings.ToLower(strings.TrimSpace(addr))
}

// ValidAddress reports whether addr passes the strict address pattern.
// The address is normalized before matching.
func ValidAddress(addr string) bool {
	return addressRegex.MatchString(NormalizeAddress(addr))
}

// recipients returns every address the message will be delivered to.
func (m *Message) recipients() []string {
	out := make([]string, 0, len(m.To)+len(m.Cc)+len(m.Bcc))
	out = append(out, m.To...)
	out = append(out, m.Cc...)
	out = append(out, m.Bcc...)
	return out
}
