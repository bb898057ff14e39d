package mailer

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"net/textproto"
	"strconv"
	"strings"
	"time"

	"github.com/jordan-wright/email"

	"go-consulting-backend/config"
	"go-consulting-backend/pkg/logger"
)

const (
	maxRetries = 3
	retryDelay = 1000 * time.Millisecond

	dialTimeout = 10 * time.Second
)

// transport abstracts the pooled SMTP connection so tests can substitute a
// fake. *email.Pool satisfies it.
type transport interface {
	Send(e *email.Email, timeout time.Duration) error
}

// Result aggregates the outcome of the operational self-test.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Mailer is the single point of outbound email: it owns address validation,
// template rendering, HTML sanitization and retried delivery over a pooled
// SMTP transport. Safe for concurrent use; each Send holds at most one
// in-flight delivery and retries sequentially.
type Mailer struct {
	cfg         *config.Config
	transport   transport
	sendTimeout time.Duration

	// sleep is injectable so retry tests run without real delays
	sleep func(time.Duration)
}

// New builds a Mailer from the loaded configuration. When the SMTP settings
// are incomplete the Mailer stays in log-only mode: sends are simulated in
// development and rejected in production.
func New(cfg *config.Config) *Mailer {
	m := &Mailer{
		cfg:         cfg,
		sendTimeout: time.Duration(cfg.SMTPSendTimeoutSeconds) * time.Second,
		sleep:       time.Sleep,
	}

	if cfg.IsEmailConfigured() {
		addr := fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort)
		auth := smtp.PlainAuth("", cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPHost)
		pool, err := email.NewPool(addr, cfg.SMTPPoolSize, auth)
		if err != nil {
			logger.Log.Error("Failed to initialize SMTP pool, falling back to log-only mode", "error", err)
		} else {
			m.transport = pool
		}
	}

	return m
}

// IsConfigured reports whether a live transport is available.
func (m *Mailer) IsConfigured() bool {
	return m.transport != nil
}

// Send validates, renders, sanitizes and delivers one message. When tmpl is
// non-nil it is rendered with data and the result overrides any directly
// supplied bodies. The error is nil on simulated sends: in non-production
// environments the message is logged instead of delivered.
func (m *Mailer) Send(ctx context.Context, msg *Message, tmpl *Template, data map[string]string) error {
	if len(msg.To) == 0 {
		logger.Log.ErrorContext(ctx, "Rejected email with no recipients", "subject", msg.Subject)
		return ErrNoRecipients
	}

	for _, addr := range msg.recipients() {
		if !ValidAddress(addr) {
			logger.Log.ErrorContext(ctx, "Rejected email with invalid recipient", "recipient", addr, "subject", msg.Subject)
			return fmt.Errorf("%w: %q", ErrInvalidRecipient, addr)
		}
	}

	// Simulation policy, not a failure path: outside production the
	// would-be email is logged and reported as sent.
	if !m.cfg.IsProduction() || !m.IsConfigured() {
		if m.cfg.IsProduction() {
			logger.Log.ErrorContext(ctx, "Cannot send email: transport not configured", "subject", msg.Subject)
			return ErrNotConfigured
		}
		logger.Log.InfoContext(ctx, "Simulated email send",
			"simulated", true,
			"to", msg.To,
			"subject", msg.Subject,
			"attachments", len(msg.Attachments),
		)
		return nil
	}

	if tmpl != nil {
		msg.HTML, msg.Text = tmpl.Render(data)
	}

	// Sanitization is mandatory at this boundary; no caller can opt out.
	msg.HTML = SanitizeHTML(msg.HTML)

	e := m.buildEmail(msg)
	if err := m.sendWithRetry(ctx, e); err != nil {
		logger.Log.ErrorContext(ctx, "Email delivery failed", "to", msg.To, "subject", msg.Subject, "error", err)
		return err
	}

	logger.Log.InfoContext(ctx, "Email delivered", "to", msg.To, "subject", msg.Subject)
	return nil
}

// buildEmail maps a Message onto the wire representation and attaches the
// fixed sender display name plus the de-duplication and unsubscribe headers.
func (m *Mailer) buildEmail(msg *Message) *email.Email {
	e := email.NewEmail()
	e.From = fmt.Sprintf("%s <%s>", m.cfg.SMTPFromName, m.cfg.SMTPFromEmail)
	e.To = msg.To
	e.Cc = msg.Cc
	e.Bcc = msg.Bcc
	if msg.ReplyTo != "" {
		e.ReplyTo = []string{msg.ReplyTo}
	}
	e.Subject = msg.Subject
	e.Text = []byte(msg.Text)
	e.HTML = []byte(msg.HTML)

	e.Headers = textproto.MIMEHeader{}
	for key, value := range msg.Headers {
		e.Headers.Set(key, value)
	}
	e.Headers.Set("X-Entity-Ref-ID", strconv.FormatInt(time.Now().UnixNano(), 10))
	if at := strings.LastIndex(m.cfg.SMTPFromEmail, "@"); at >= 0 {
		senderDomain := m.cfg.SMTPFromEmail[at+1:]
		e.Headers.Set("List-Unsubscribe", fmt.Sprintf("<mailto:unsubscribe@%s>", senderDomain))
	}

	for _, att := range msg.Attachments {
		// Attach only fails on read errors; bytes.Reader cannot produce one
		_, _ = e.Attach(bytes.NewReader(att.Content), att.Filename, att.MimeType)
	}

	return e
}

// sendWithRetry attempts delivery with a fixed-delay, sequential retry
// policy. Exhausting the attempt budget surfaces the last transport error.
func (m *Mailer) sendWithRetry(ctx context.Context, e *email.Email) error {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			logger.Log.WarnContext(ctx, "Retrying email send",
				"attempt", attempt+1,
				"max_attempts", maxRetries+1,
				"to", e.To,
			)
			m.sleep(retryDelay)
		}
		lastErr = m.transport.Send(e, m.sendTimeout)
		if lastErr == nil {
			return nil
		}
	}
	return fmt.Errorf("delivery failed after %d attempts: %w", maxRetries+1, lastErr)
}

// VerifyConnection performs an SMTP handshake against the configured relay.
// Any failure is logged and returned; it never panics.
func (m *Mailer) VerifyConnection(ctx context.Context) error {
	if !m.cfg.IsEmailConfigured() {
		return ErrNotConfigured
	}

	addr := fmt.Sprintf("%s:%d", m.cfg.SMTPHost, m.cfg.SMTPPort)
	dialer := net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		logger.Log.ErrorContext(ctx, "SMTP connection failed", "addr", addr, "error", err)
		return fmt.Errorf("smtp dial: %w", err)
	}

	client, err := smtp.NewClient(conn, m.cfg.SMTPHost)
	if err != nil {
		conn.Close()
		logger.Log.ErrorContext(ctx, "SMTP handshake failed", "addr", addr, "error", err)
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: m.cfg.SMTPHost, MinVersion: tls.VersionTLS12}); err != nil {
			logger.Log.ErrorContext(ctx, "SMTP STARTTLS failed", "addr", addr, "error", err)
			return fmt.Errorf("smtp starttls: %w", err)
		}
	}

	auth := smtp.PlainAuth("", m.cfg.SMTPUsername, m.cfg.SMTPPassword, m.cfg.SMTPHost)
	if err := client.Auth(auth); err != nil {
		logger.Log.ErrorContext(ctx, "SMTP authentication failed", "addr", addr, "error", err)
		return fmt.Errorf("smtp auth: %w", err)
	}

	if err := client.Noop(); err != nil {
		return fmt.Errorf("smtp noop: %w", err)
	}
	return client.Quit()
}

// TestConnection is the operational self-test: handshake plus one canned
// message to the configured inbox, aggregated into a human-readable result.
// It never panics out to the caller.
func (m *Mailer) TestConnection(ctx context.Context) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = Result{Success: false, Message: fmt.Sprintf("self-test panicked: %v", r)}
		}
	}()

	if err := m.VerifyConnection(ctx); err != nil {
		return Result{Success: false, Message: "connection check failed: " + err.Error()}
	}

	err := m.Send(ctx, &Message{
		To:      []string{m.cfg.ContactEmailTo},
		Subject: "Email self-test",
		Text:    "This is an automated self-test message. No action is required.",
		HTML:    "<p>This is an automated self-test message. No action is required.</p>",
	}, nil, nil)
	if err != nil {
		return Result{Success: false, Message: "connection verified but test send failed: " + err.Error()}
	}

	return Result{Success: true, Message: "connection verified and test email sent"}
}
