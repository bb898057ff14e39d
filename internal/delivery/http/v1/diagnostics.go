package v1

import (
	"strings"
	"time"

	"go-consulting-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// User-facing messages. Failure messages are deliberately generic; detail
// only ever goes to the logs.
const (
	msgContactSent      = "Your message has been sent successfully!"
	msgConsultationSent = "Your consultation request has been received. We will be in touch shortly."
	msgApplicationSent  = "Your application has been submitted successfully!"
	msgValidationFailed = "Validation failed"
	msgBotRejected      = "Unable to process your submission."
	msgSendFailed       = "We're experiencing technical difficulties. Please try again later."
)

// captureDiagnostics records request entry metadata used in every log line
// for the request. The first x-forwarded-for hop wins; a request with no
// determinable address is logged as "unknown".
func captureDiagnostics(c *gin.Context) domain.DiagnosticInfo {
	ip := strings.TrimSpace(strings.SplitN(c.GetHeader("X-Forwarded-For"), ",", 2)[0])
	if ip == "" {
		ip = c.ClientIP()
	}
	if ip == "" {
		ip = "unknown"
	}

	return domain.DiagnosticInfo{
		StartTime: time.Now(),
		ClientIP:  ip,
		UserAgent: c.GetHeader("User-Agent"),
	}
}
