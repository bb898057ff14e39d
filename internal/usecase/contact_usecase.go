package usecase

import (
	"context"
	"fmt"
	"strings"

	"go-consulting-backend/internal/domain"
	"go-consulting-backend/pkg/logger"
	"go-consulting-backend/pkg/mailer"
)

type contactUsecase struct {
	dispatcher EmailDispatcher
	toEmail    string
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(dispatcher EmailDispatcher, toEmail string) domain.ContactUsecase {
	return &contactUsecase{
		dispatcher: dispatcher,
		toEmail:    toEmail,
	}
}

// SubmitContact screens the honeypot, normalizes the payload and dispatches
// the notification email. Schema validation has already happened at binding.
func (uc *contactUsecase) SubmitContact(ctx context.Context, req *domain.ContactRequest, diag domain.DiagnosticInfo) error {
	if strings.TrimSpace(req.Website) != "" {
		logger.Log.WarnContext(ctx, "Honeypot triggered on contact form",
			"ip", diag.ClientIP,
			"user_agent", diag.UserAgent,
		)
		return domain.ErrBotDetected
	}

	name := strings.TrimSpace(req.Name)
	senderEmail := mailer.NormalizeAddress(req.Email)

	data := templateData(diag, map[string]string{
		"name":    name,
		"email":   senderEmail,
		"message": strings.TrimSpace(req.Message),
	})

	msg := &mailer.Message{
		To:      []string{uc.toEmail},
		ReplyTo: senderEmail,
		Subject: fmt.Sprintf("Contact Inquiry: %s", name),
	}

	if err := uc.dispatcher.Send(ctx, msg, &mailer.ContactTemplate, data); err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}
	return nil
}
