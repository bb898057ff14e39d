package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidAddress(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@example.co.uk",
		"user+tag@sub.example.org",
		"USER@EXAMPLE.COM", // normalized before matching
		" padded@example.com ",
		"x_1%y@a1.example.io",
	}
	for _, addr := range valid {
		assert.True(t, ValidAddress(addr), "expected valid: %q", addr)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@localhost",    // single-label domain
		"user@-example.com", // label starts with hyphen
		"user@example-.com", // label ends with hyphen
		"user@example..com",
		"user name@example.com",
		"user@exam ple.com",
		"user@example.com>",
	}
	for _, addr := range invalid {
		assert.False(t, ValidAddress(addr), "expected invalid: %q", addr)
	}
}

func TestNormalizeAddress(t *testing.T) {
	assert.Equal(t, "user@example.com", NormalizeAddress("  User@Example.COM "))
}

func TestMessageRecipients(t *testing.T) {
	msg := &Message{
		To:  []string{"a@example.com"},
		Cc:  []string{"b@example.com"},
		Bcc: []string{"c@example.com"},
	}
	assert.Equal(t, []string{"a@example.com", "b@example.com", "c@example.com"}, msg.recipients())
}
