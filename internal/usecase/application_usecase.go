package usecase

import (
	"context"
	"fmt"
	"strings"

	"go-consulting-backend/internal/domain"
	"go-consulting-backend/pkg/logger"
	"go-consulting-backend/pkg/mailer"
)

type applicationUsecase struct {
	dispatcher EmailDispatcher
	toEmail    string
}

// NewApplicationUsecase creates a new job application usecase
func NewApplicationUsecase(dispatcher EmailDispatcher, toEmail string) domain.ApplicationUsecase {
	return &applicationUsecase{
		dispatcher: dispatcher,
		toEmail:    toEmail,
	}
}

func (uc *applicationUsecase) SubmitApplication(ctx context.Context, req *domain.ApplicationRequest, resume domain.Resume, diag domain.DiagnosticInfo) error {
	if strings.TrimSpace(req.Website) != "" {
		logger.Log.WarnContext(ctx, "Honeypot triggered on application form",
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
		"phone":   strings.TrimSpace(req.Phone),
		"message": strings.TrimSpace(req.Message),
	})

	msg := &mailer.Message{
		To:      []string{uc.toEmail},
		ReplyTo: senderEmail,
		Subject: fmt.Sprintf("Job Application: %s", name),
		Attachments: []mailer.Attachment{{
			Filename: resume.Filename,
			Content:  resume.Content,
			MimeType: resume.MimeType,
		}},
	}

	if err := uc.dispatcher.Send(ctx, msg, &mailer.ApplicationTemplate, data); err != nil {
		return fmt.Errorf("failed to send application email: %w", err)
	}
	return nil
}
