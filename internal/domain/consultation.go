package domain

import "context"

// Enum values accepted by the consultation booking form. The frontend
// renders these as fixed select options; anything else is rejected.
const (
	Industries        = "technology finance healthcare manufacturing retail energy other"
	CompanySizes      = "1-10 11-50 51-200 201-1000 1000+"
	ConsultationTypes = "strategy operations digital-transformation market-entry due-diligence other"
)

// ConsultationRequest represents a consultation booking submission.
type ConsultationRequest struct {
	Name             string `json:"name" binding:"required,min=2,max=100,valid_name,no_emoji"`
	Email            string `json:"email" binding:"required,email,max=254"`
	Company          string `json:"company" binding:"required,min=2,max=200,no_emoji"`
	Industry         string `json:"industry" binding:"required,oneof=technology finance healthcare manufacturing retail energy other"`
	CompanySize      string `json:"companySize" binding:"required,oneof=1-10 11-50 51-200 201-1000 1000+"`
	ConsultationType string `json:"consultationType" binding:"required,oneof=strategy operations digital-transformation market-entry due-diligence other"`
	Message          string `json:"message" binding:"required,min=10,max=5000"`
	PreferredDate    string `json:"preferredDate" binding:"omitempty,future_date"`
	Website          string `json:"website" binding:"omitempty"` // honeypot
}

// ConsultationUsecase defines the interface for consultation booking operations
type ConsultationUsecase interface {
	SubmitConsultation(ctx context.Context, req *ConsultationRequest, diag DiagnosticInfo) error
}
