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

type ConsultationHandler struct {
	consultationUC domain.ConsultationUsecase
}

// NewConsultationHandler registers the consultation booking routes
func NewConsultationHandler(public *gin.RouterGroup, formLimit gin.HandlerFunc, consultationUC domain.ConsultationUsecase) {
	handler := &ConsultationHandler{
		consultationUC: consultationUC,
	}

	public.POST("/consultations", formLimit, handler.SubmitConsultation)
}

// SubmitConsultation godoc
// @Summary      Book a Consultation
// @Description  Request a consultation with company and scheduling details. This is a public endpoint.
// @Tags         consultation
// @Accept       json
// @Produce      json
// @Param        consultation  body      domain.ConsultationRequest  true  "Consultation Booking Data"
// @Success      200           {object}  response.Response
// @Failure      400           {object}  response.Response
// @Failure      429           {object}  response.Response
// @Failure      500           {object}  response.Response
// @Router       /consultations [post]
func (h *ConsultationHandler) SubmitConsultation(c *gin.Context) {
	diag := captureDiagnostics(c)

	var req domain.ConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		details := validation.FormatFieldErrors(err)
		logger.Log.Error("Consultation form validation failed",
			"ip", diag.ClientIP,
			"user_agent", diag.UserAgent,
			"details", details,
		)
		c.Error(apperror.ValidationFailed(msgValidationFailed, details))
		return
	}

	if err := h.consultationUC.SubmitConsultation(c.Request.Context(), &req, diag); err != nil {
		if errors.Is(err, domain.ErrBotDetected) {
			c.Error(apperror.BadRequest(msgBotRejected))
			return
		}
		c.Error(apperror.Internal(msgSendFailed, err))
		return
	}

	logger.Log.Info("Consultation request submitted",
		"ip", diag.ClientIP,
		"user_agent", diag.UserAgent,
		"consultation_type", req.ConsultationType,
		"duration_ms", time.Since(diag.StartTime).Milliseconds(),
	)
	response.Success(c, http.StatusOK, msgConsultationSent, nil)
}
