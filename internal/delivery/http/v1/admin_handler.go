package v1

import (
	"context"
	"crypto/subtle"
	"net/http"

	"go-consulting-backend/config"
	"go-consulting-backend/internal/delivery/http/response"
	"go-consulting-backend/pkg/apperror"
	"go-consulting-backend/pkg/mailer"

	"github.com/gin-gonic/gin"
)

// MailTester runs the operational email self-test.
type MailTester interface {
	TestConnection(ctx context.Context) mailer.Result
}

type AdminHandler struct {
	mailTester MailTester
	cfg        *config.Config
}

// NewAdminHandler registers operational routes guarded by the admin key
func NewAdminHandler(public *gin.RouterGroup, mailTester MailTester, cfg *config.Config) {
	handler := &AdminHandler{
		mailTester: mailTester,
		cfg:        cfg,
	}

	public.POST("/admin/email/test", handler.TestEmail)
}

// TestEmail godoc
// @Summary      Email Self-Test
// @Description  Verifies the SMTP connection and sends one canned test message. Requires the X-Admin-Key header.
// @Tags         admin
// @Produce      json
// @Param        X-Admin-Key  header    string  true  "Admin API key"
// @Success      200          {object}  response.Response{data=mailer.Result}
// @Failure      401          {object}  response.Response
// @Failure      503          {object}  response.Response
// @Router       /admin/email/test [post]
func (h *AdminHandler) TestEmail(c *gin.Context) {
	if h.cfg.AdminAPIKey == "" {
		c.Error(apperror.ServiceUnavailable("Self-test endpoint is disabled"))
		return
	}

	key := c.GetHeader("X-Admin-Key")
	if subtle.ConstantTimeCompare([]byte(key), []byte(h.cfg.AdminAPIKey)) != 1 {
		c.Error(apperror.New(http.StatusUnauthorized, "Invalid admin key", nil))
		return
	}

	result := h.mailTester.TestConnection(c.Request.Context())
	if !result.Success {
		response.Error(c, http.StatusServiceUnavailable, result.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, result.Message, result)
}
