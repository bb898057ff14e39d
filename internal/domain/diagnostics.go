package domain

import (
	"errors"
	"time"
)

// ErrBotDetected marks a submission whose honeypot field was filled in.
// The caller drops the submission silently and answers with a generic
// rejection; no email is sent.
var ErrBotDetected = errors.New("honeypot field triggered")

// DiagnosticInfo is captured once at request entry and attached to every
// log line for that request. Read-only after creation.
type DiagnosticInfo struct {
	StartTime time.Time
	ClientIP  string // "unknown" when no address could be determined
	UserAgent string
}
