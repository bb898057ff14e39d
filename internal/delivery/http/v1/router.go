package v1

import (
	"net/http"
	"time"

	"go-consulting-backend/config"
	"go-consulting-backend/internal/delivery/http/middleware"
	"go-consulting-backend/internal/delivery/http/response"
	"go-consulting-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC      domain.ContactUsecase
	ConsultationUC domain.ConsultationUsecase
	ApplicationUC  domain.ApplicationUsecase
	HealthUC       domain.HealthUsecase
	MailTester     MailTester
	Config         *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	v1 := r.Group("/v1")
	v1.Use(middleware.RateLimitMiddleware(
		middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	// Form submissions trigger outbound email; they get the strict limit
	// on top of the global one.
	formLimit := middleware.RateLimitMiddleware(
		middleware.FormRateLimitConfig(deps.Config.RateLimitFormThreshold, window))

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", deps.HealthUC.Check(c.Request.Context()))
	})

	// Public routes (no auth required)
	NewContactHandler(v1, formLimit, deps.ContactUC)
	NewConsultationHandler(v1, formLimit, deps.ConsultationUC)
	NewApplicationHandler(v1, formLimit, deps.ApplicationUC, deps.Config.UploadDir)
	NewSiteConfigHandler(v1, deps.Config)

	// Operational routes (guarded by the admin key, not by the strict
	// form limit)
	NewAdminHandler(v1, deps.MailTester, deps.Config)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
