package v1

import (
	"context"
	"net/http"
	"time"

	"go-publishing-backend/config"
	"go-publishing-backend/internal/delivery/http/middleware"
	"go-publishing-backend/internal/delivery/http/response"
	"go-publishing-backend/internal/domain"
	"go-publishing-backend/internal/formsession"
	"go-publishing-backend/pkg/auth"
	"go-publishing-backend/pkg/redis"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	NewsUC    domain.NewsUsecase
	AuthUC    domain.AuthUsecase
	ChatUC    domain.ChatUsecase
	AuthorUC  domain.AuthorUsecase
	Tokens    *auth.TokenManager
	SlotCfg   formsession.Config
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(
		deps.Config.RateLimitGlobalThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	)))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		redisStatus := "ok"
		if err := redis.HealthCheck(c.Request.Context()); err != nil {
			redisStatus = "unavailable"
		}
		response.Success(c, http.StatusOK, "System operational", gin.H{
			"redis": redisStatus,
		})
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Admin routes
	admin := v1.Group("")
	admin.Use(middleware.AuthMiddleware(deps.Tokens, deps.AuthUC))
	admin.Use(middleware.AdminOnly())

	// Public intake gets its own stricter limiter
	public := v1.Group("")
	public.Use(middleware.RateLimitMiddleware(middleware.ContactRateLimitConfig(
		deps.Config.RateLimitContactThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	)))

	NewContactHandler(public, admin, deps.ContactUC, deps.SlotCfg)
	NewChatHandler(v1, deps.ChatUC)
	NewAuthorHandler(v1, deps.AuthorUC)
	NewNewsHandler(v1, admin, deps.NewsUC)
	NewAuthHandler(v1, admin, deps.AuthUC, middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig()))

	return r
}

// contextWithAdmin copies the gin admin flag into a plain context for
// usecases that enforce privileges themselves.
func contextWithAdmin(ctx context.Context, isAdmin interface{}) context.Context {
	admin, _ := isAdmin.(bool)
	return context.WithValue(ctx, domain.KeyIsAdmin, admin)
}
