package usecase

import (
	"context"
	"time"

	"go-consulting-backend/internal/domain"
	"go-consulting-backend/pkg/mailer"
)

// EmailDispatcher is the outbound-mail dependency of the form usecases.
// *mailer.Mailer satisfies it; tests substitute a mock.
type EmailDispatcher interface {
	Send(ctx context.Context, msg *mailer.Message, tmpl *mailer.Template, data map[string]string) error
}

// templateData merges the validated form fields with the per-request
// diagnostics every notification template expects.
func templateData(diag domain.DiagnosticInfo, fields map[string]string) map[string]string {
	fields["timestamp"] = diag.StartTime.UTC().Format(time.RFC3339)
	fields["ip"] = diag.ClientIP
	fields["userAgent"] = diag.UserAgent
	return fields
}
