package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"go-consulting-backend/config"
	"go-consulting-backend/internal/delivery/http/middleware"
	"go-consulting-backend/internal/delivery/http/response"
	"go-consulting-backend/internal/domain"
	"go-consulting-backend/pkg/logger"
	"go-consulting-backend/pkg/mailer"
	"go-consulting-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var setupOnce sync.Once

func setup() {
	setupOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		logger.Init()
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			validation.RegisterValidators(v)
		}
	})
}

func newTestRouter(register func(g *gin.RouterGroup)) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	g := r.Group("/v1")
	register(g)
	return r
}

func noopLimit(c *gin.Context) { c.Next() }

func doJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "test-agent/1.0")
	req.RemoteAddr = "203.0.113.9:52000"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var env response.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

// Mock Usecases

type MockContactUC struct {
	mock.Mock
}

func (m *MockContactUC) SubmitContact(ctx context.Context, req *domain.ContactRequest, diag domain.DiagnosticInfo) error {
	return m.Called(ctx, req, diag).Error(0)
}

type MockApplicationUC struct {
	mock.Mock
}

func (m *MockApplicationUC) SubmitApplication(ctx context.Context, req *domain.ApplicationRequest, resume domain.Resume, diag domain.DiagnosticInfo) error {
	return m.Called(ctx, req, resume, diag).Error(0)
}

type MockMailTester struct {
	mock.Mock
}

func (m *MockMailTester) TestConnection(ctx context.Context) mailer.Result {
	return m.Called(ctx).Get(0).(mailer.Result)
}

func validContactBody() map[string]string {
	return map[string]string{
		"name":    "Ann Example",
		"email":   "ann@example.com",
		"message": "I would like to discuss a project.",
	}
}

func TestContactEndpoint(t *testing.T) {
	setup()

	t.Run("Should return 200 and invoke the usecase once for a valid payload", func(t *testing.T) {
		uc := new(MockContactUC)
		uc.On("SubmitContact", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		r := newTestRouter(func(g *gin.RouterGroup) { NewContactHandler(g, noopLimit, uc) })

		w := doJSON(r, "/v1/contact", validContactBody())

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w)
		assert.True(t, env.Success)
		assert.Equal(t, msgContactSent, env.Message)
		uc.AssertExpectations(t)
	})

	t.Run("Should return 400 with field details for an invalid payload", func(t *testing.T) {
		uc := new(MockContactUC)
		r := newTestRouter(func(g *gin.RouterGroup) { NewContactHandler(g, noopLimit, uc) })

		w := doJSON(r, "/v1/contact", map[string]string{
			"name":    "A",
			"email":   "not-an-email",
			"message": "short",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w)
		assert.False(t, env.Success)
		assert.Equal(t, msgValidationFailed, env.Message)
		assert.NotNil(t, env.Error, "field details must be returned")
		uc.AssertNotCalled(t, "SubmitContact", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should return 400 with a generic message for bot submissions", func(t *testing.T) {
		uc := new(MockContactUC)
		uc.On("SubmitContact", mock.Anything, mock.Anything, mock.Anything).Return(domain.ErrBotDetected).Once()
		r := newTestRouter(func(g *gin.RouterGroup) { NewContactHandler(g, noopLimit, uc) })

		body := validContactBody()
		body["website"] = "https://spam.example"
		w := doJSON(r, "/v1/contact", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w)
		assert.Equal(t, msgBotRejected, env.Message)
		assert.Nil(t, env.Error, "bot rejection carries no detail")
	})

	t.Run("Should return 500 with a generic message when dispatch fails", func(t *testing.T) {
		uc := new(MockContactUC)
		uc.On("SubmitContact", mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("smtp: connection refused")).Once()
		r := newTestRouter(func(g *gin.RouterGroup) { NewContactHandler(g, noopLimit, uc) })

		w := doJSON(r, "/v1/contact", validContactBody())

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		env := decodeEnvelope(t, w)
		assert.Equal(t, msgSendFailed, env.Message)
		assert.NotContains(t, w.Body.String(), "connection refused", "internal detail must not leak")
	})

	t.Run("Should capture diagnostics from forwarding headers", func(t *testing.T) {
		uc := new(MockContactUC)
		var gotDiag domain.DiagnosticInfo
		uc.On("SubmitContact", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				gotDiag = args.Get(2).(domain.DiagnosticInfo)
			}).
			Return(nil).Once()
		r := newTestRouter(func(g *gin.RouterGroup) { NewContactHandler(g, noopLimit, uc) })

		raw, _ := json.Marshal(validContactBody())
		req := httptest.NewRequest(http.MethodPost, "/v1/contact", bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Forwarded-For", "198.51.100.4, 10.0.0.1")
		req.Header.Set("User-Agent", "probe/2.0")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "198.51.100.4", gotDiag.ClientIP)
		assert.Equal(t, "probe/2.0", gotDiag.UserAgent)
		assert.False(t, gotDiag.StartTime.IsZero())
	})
}

func TestRateLimitShortCircuitsValidation(t *testing.T) {
	setup()

	uc := new(MockContactUC)
	limit := middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		Limit:     1,
		Window:    time.Minute,
		KeyPrefix: "rl:test:short-circuit:",
		KeyFunc:   func(c *gin.Context) string { return c.ClientIP() },
	})
	r := newTestRouter(func(g *gin.RouterGroup) { NewContactHandler(g, limit, uc) })

	invalid := map[string]string{"name": "", "email": "nope", "message": ""}

	// First request consumes the window and fails validation
	w := doJSON(r, "/v1/contact", invalid)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Second request is rate limited before the payload is even parsed
	w = doJSON(r, "/v1/contact", invalid)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	uc.AssertNotCalled(t, "SubmitContact", mock.Anything, mock.Anything, mock.Anything)
}

func applicationForm(t *testing.T, resumeName string, resumeContent []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	assert.NoError(t, mw.WriteField("name", "Ann Example"))
	assert.NoError(t, mw.WriteField("email", "ann@example.com"))
	assert.NoError(t, mw.WriteField("phone", "+4915123456789"))
	assert.NoError(t, mw.WriteField("message", "Please consider my application."))
	if resumeName != "" {
		fw, err := mw.CreateFormFile("resume", resumeName)
		assert.NoError(t, err)
		_, err = fw.Write(resumeContent)
		assert.NoError(t, err)
	}
	assert.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func TestApplicationEndpoint(t *testing.T) {
	setup()

	pdf := []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\n")

	t.Run("Should accept a valid application with PDF resume", func(t *testing.T) {
		uc := new(MockApplicationUC)
		var gotResume domain.Resume
		uc.On("SubmitApplication", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				gotResume = args.Get(2).(domain.Resume)
			}).
			Return(nil).Once()
		r := newTestRouter(func(g *gin.RouterGroup) {
			NewApplicationHandler(g, noopLimit, uc, t.TempDir())
		})

		body, contentType := applicationForm(t, "resume.pdf", pdf)
		req := httptest.NewRequest(http.MethodPost, "/v1/applications", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w)
		assert.Equal(t, msgApplicationSent, env.Message)
		assert.Equal(t, "resume.pdf", gotResume.Filename)
		assert.Equal(t, pdf, gotResume.Content)
		uc.AssertExpectations(t)
	})

	t.Run("Should reject a missing resume", func(t *testing.T) {
		uc := new(MockApplicationUC)
		r := newTestRouter(func(g *gin.RouterGroup) {
			NewApplicationHandler(g, noopLimit, uc, t.TempDir())
		})

		body, contentType := applicationForm(t, "", nil)
		req := httptest.NewRequest(http.MethodPost, "/v1/applications", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		uc.AssertNotCalled(t, "SubmitApplication", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should reject a non-PDF resume", func(t *testing.T) {
		uc := new(MockApplicationUC)
		r := newTestRouter(func(g *gin.RouterGroup) {
			NewApplicationHandler(g, noopLimit, uc, t.TempDir())
		})

		body, contentType := applicationForm(t, "resume.pdf", []byte("just text, not a pdf"))
		req := httptest.NewRequest(http.MethodPost, "/v1/applications", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "resume")
		uc.AssertNotCalled(t, "SubmitApplication", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAdminEmailTest(t *testing.T) {
	setup()

	newAdminRouter := func(tester MailTester, cfg *config.Config) *gin.Engine {
		return newTestRouter(func(g *gin.RouterGroup) { NewAdminHandler(g, tester, cfg) })
	}

	t.Run("Should return 503 when the endpoint is disabled", func(t *testing.T) {
		tester := new(MockMailTester)
		r := newAdminRouter(tester, &config.Config{})

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/email/test", strings.NewReader(""))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("Should return 401 for a wrong admin key", func(t *testing.T) {
		tester := new(MockMailTester)
		r := newAdminRouter(tester, &config.Config{AdminAPIKey: "secret"})

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/email/test", strings.NewReader(""))
		req.Header.Set("X-Admin-Key", "wrong")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		tester.AssertNotCalled(t, "TestConnection", mock.Anything)
	})

	t.Run("Should run the self-test with a valid key", func(t *testing.T) {
		tester := new(MockMailTester)
		tester.On("TestConnection", mock.Anything).
			Return(mailer.Result{Success: true, Message: "connection verified and test email sent"}).Once()
		r := newAdminRouter(tester, &config.Config{AdminAPIKey: "secret"})

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/email/test", strings.NewReader(""))
		req.Header.Set("X-Admin-Key", "secret")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		tester.AssertExpectations(t)
	})
}

func TestSiteConfigEndpoint(t *testing.T) {
	setup()

	cfg := &config.Config{
		MapboxPublicToken: "pk.test-token",
		ContactEmailTo:    "inquiries@example.com",
	}
	r := newTestRouter(func(g *gin.RouterGroup) { NewSiteConfigHandler(g, cfg) })

	req := httptest.NewRequest(http.MethodGet, "/v1/site-config", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pk.test-token")
	assert.Contains(t, w.Body.String(), "inquiries@example.com")
}
