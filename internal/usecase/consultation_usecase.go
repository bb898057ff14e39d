package usecase

import (
	"context"
	"fmt"
	"strings"

	"go-consulting-backend/internal/domain"
	"go-consulting-backend/pkg/logger"
	"go-consulting-backend/pkg/mailer"
)

type consultationUsecase struct {
	dispatcher EmailDispatcher
	toEmail    string
}

// NewConsultationUsecase creates a new consultation booking usecase
func NewConsultationUsecase(dispatcher EmailDispatcher, toEmail string) domain.ConsultationUsecase {
	return &consultationUsecase{
		dispatcher: dispatcher,
		toEmail:    toEmail,
	}
}

func (uc *consultationUsecase) SubmitConsultation(ctx context.Context, req *domain.ConsultationRequest, diag domain.DiagnosticInfo) error {
	if strings.TrimSpace(req.Website) != "" {
		logger.Log.WarnContext(ctx, "Honeypot triggered on consultation form",
			"ip", diag.ClientIP,
			"user_agent", diag.UserAgent,
		)
		return domain.ErrBotDetected
	}

	name := strings.TrimSpace(req.Name)
	senderEmail := mailer.NormalizeAddress(req.Email)
	company := strings.TrimSpace(req.Company)

	preferredDate := strings.TrimSpace(req.PreferredDate)
	if preferredDate == "" {
		preferredDate = "not specified"
	}

	data := templateData(diag, map[string]string{
		"name":             name,
		"email":            senderEmail,
		"company":          company,
		"industry":         req.Industry,
		"companySize":      req.CompanySize,
		"consultationType": req.ConsultationType,
		"preferredDate":    preferredDate,
		"message":          strings.TrimSpace(req.Message),
	})

	msg := &mailer.Message{
		To:      []string{uc.toEmail},
		ReplyTo: senderEmail,
		Subject: fmt.Sprintf("Consultation Request: %s (%s)", name, company),
	}

	if err := uc.dispatcher.Send(ctx, msg, &mailer.ConsultationTemplate, data); err != nil {
		return fmt.Errorf("failed to send consultation email: %w", err)
	}
	return nil
}
