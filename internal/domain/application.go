package domain

import "context"

// ApplicationRequest represents a job application submitted via multipart
// form. The resume file itself is validated at the delivery layer and passed
// alongside as a Resume.
type ApplicationRequest struct {
	Name    string `form:"name" binding:"required,min=2,max=100,valid_name,no_emoji"`
	Email   string `form:"email" binding:"required,email,max=254"`
	Phone   string `form:"phone" binding:"required,valid_phone"`
	Message string `form:"message" binding:"required,min=10,max=5000"`
	Website string `form:"website" binding:"omitempty"` // honeypot
}

// Resume is the validated PDF attachment of an application.
type Resume struct {
	Filename string
	Content  []byte
	MimeType string
}

// ApplicationUsecase defines the interface for job application operations
type ApplicationUsecase interface {
	SubmitApplication(ctx context.Context, req *ApplicationRequest, resume Resume, diag DiagnosticInfo) error
}
