package v1

import (
	"errors"
	"net/http"
	"time"

	"go-consulting-backend/internal/delivery/http/response"
	"go-consulting-backend/internal/domain"
	"go-consulting-backend/pkg/apperror"
	"go-consulting-backend/pkg/logger"
	"go-consulting-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, formLimit gin.HandlerFunc, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", formLimit, handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Send a message through the contact form. This is a public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	diag := captureDiagnostics(c)

	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		details := validation.FormatFieldErrors(err)
		logger.Log.Error("Contact form validation failed",
			"ip", diag.ClientIP,
			"user_agent", diag.UserAgent,
			"details", details,
		)
		c.Error(apperror.ValidationFailed(msgValidationFailed, details))
		return
	}

	if err := h.contactUC.SubmitContact(c.Request.Context(), &req, diag); err != nil {
		if errors.Is(err, domain.ErrBotDetected) {
			c.Error(apperror.BadRequest(msgBotRejected))
			return
		}
		c.Error(apperror.Internal(msgSendFailed, err))
		return
	}

	logger.Log.Info("Contact form submitted",
		"ip", diag.ClientIP,
		"user_agent", diag.UserAgent,
		"duration_ms", time.Since(diag.StartTime).Milliseconds(),
	)
	response.Success(c, http.StatusOK, msgContactSent, nil)
}
