package v1

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go-consulting-backend/internal/delivery/http/response"
	"go-consulting-backend/internal/domain"
	"go-consulting-backend/pkg/apperror"
	"go-consulting-backend/pkg/logger"
	"go-consulting-backend/pkg/security"
	"go-consulting-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
	uploadDir     string
}

// NewApplicationHandler registers the job application routes
func NewApplicationHandler(public *gin.RouterGroup, formLimit gin.HandlerFunc, applicationUC domain.ApplicationUsecase, uploadDir string) {
	handler := &ApplicationHandler{
		applicationUC: applicationUC,
		uploadDir:     uploadDir,
	}

	public.POST("/applications", formLimit, handler.SubmitApplication)
}

// SubmitApplication godoc
// @Summary      Submit a Job Application
// @Description  Apply with a PDF resume (max 5 MB). This is a public endpoint.
// @Tags         application
// @Accept       multipart/form-data
// @Produce      json
// @Param        name     formData  string  true  "Applicant name"
// @Param        email    formData  string  true  "Applicant email"
// @Param        phone    formData  string  true  "Applicant phone"
// @Param        message  formData  string  true  "Cover message"
// @Param        resume   formData  file    true  "Resume (PDF, max 5 MB)"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /applications [post]
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	diag := captureDiagnostics(c)

	var req domain.ApplicationRequest
	if err := c.ShouldBind(&req); err != nil {
		details := validation.FormatFieldErrors(err)
		logger.Log.Error("Application form validation failed",
			"ip", diag.ClientIP,
			"user_agent", diag.UserAgent,
			"details", details,
		)
		c.Error(apperror.ValidationFailed(msgValidationFailed, details))
		return
	}

	resume, tmpPath, fieldErr := h.readResume(c)
	if fieldErr != nil {
		logger.Log.Error("Application resume rejected",
			"ip", diag.ClientIP,
			"user_agent", diag.UserAgent,
			"reason", fieldErr.Message,
		)
		c.Error(apperror.ValidationFailed(msgValidationFailed, []validation.FieldError{*fieldErr}))
		return
	}

	if err := h.applicationUC.SubmitApplication(c.Request.Context(), &req, resume, diag); err != nil {
		if errors.Is(err, domain.ErrBotDetected) {
			c.Error(apperror.BadRequest(msgBotRejected))
			return
		}
		c.Error(apperror.Internal(msgSendFailed, err))
		return
	}

	// The staged upload is transient; clear it once the email is out.
	if tmpPath != "" {
		if err := os.Remove(tmpPath); err != nil {
			logger.Log.Warn("Failed to remove staged resume", "path", tmpPath, "error", err)
		}
	}

	logger.Log.Info("Application submitted",
		"ip", diag.ClientIP,
		"user_agent", diag.UserAgent,
		"resume_bytes", len(resume.Content),
		"duration_ms", time.Since(diag.StartTime).Milliseconds(),
	)
	response.Success(c, http.StatusOK, msgApplicationSent, nil)
}

// readResume extracts, validates and stages the uploaded PDF. It returns the
// validated resume, the staged file path (empty when staging failed, which
// is non-fatal) and a field error for any rejection.
func (h *ApplicationHandler) readResume(c *gin.Context) (domain.Resume, string, *validation.FieldError) {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return domain.Resume{}, "", &validation.FieldError{Field: "resume", Message: "Resume PDF is required"}
	}

	if fileHeader.Size > security.MaxResumeSize {
		return domain.Resume{}, "", &validation.FieldError{Field: "resume", Message: "Resume exceeds the 5 MB size limit"}
	}

	src, err := fileHeader.Open()
	if err != nil {
		return domain.Resume{}, "", &validation.FieldError{Field: "resume", Message: "Uploaded file could not be read"}
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, security.MaxResumeSize+1))
	if err != nil || len(data) > security.MaxResumeSize {
		return domain.Resume{}, "", &validation.FieldError{Field: "resume", Message: "Resume exceeds the 5 MB size limit"}
	}

	result := security.ValidateResume(fileHeader.Filename, data, http.DetectContentType(data))
	if !result.Valid {
		return domain.Resume{}, "", &validation.FieldError{Field: "resume", Message: result.Error}
	}

	// Stage under the upload dir with a generated name. Staging failure is
	// logged but does not block the submission; the bytes are in hand.
	tmpPath := filepath.Join(h.uploadDir, uuid.NewString()+".pdf")
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		logger.Log.Warn("Failed to stage resume upload", "path", tmpPath, "error", err)
		tmpPath = ""
	}

	return domain.Resume{
		Filename: filepath.Base(fileHeader.Filename),
		Content:  data,
		MimeType: "application/pdf",
	}, tmpPath, nil
}
