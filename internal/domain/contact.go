package domain

import "context"

// ContactRequest represents a contact form submission. Website is the
// honeypot field: humans never see it, so any non-empty value marks the
// submission as automated.
type ContactRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100,valid_name,no_emoji"`
	Email   string `json:"email" binding:"required,email,max=254"`
	Message string `json:"message" binding:"required,min=10,max=5000"`
	Website string `json:"website" binding:"omitempty"`
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SubmitContact normalizes, screens and dispatches a contact inquiry
	SubmitContact(ctx context.Context, req *ContactRequest, diag DiagnosticInfo) error
}
