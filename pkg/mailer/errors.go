package mailer

import "errors"

var (
	// ErrNotConfigured is returned on production send paths when the SMTP
	// transport settings are incomplete.
	ErrNotConfigured = errors.New("mailer: smtp transport is not configured")

	// ErrInvalidRecipient is returned when any recipient address fails the
	// strict syntax check. No send is attempted.
	ErrInvalidRecipient = errors.New("mailer: invalid recipient address")

	// ErrNoRecipients is returned for a message with an empty To list.
	ErrNoRecipients = errors.New("mailer: message has no recipients")
)
