package v1

import (
	"net/http"

	"portfolio-backend/config"
	"portfolio-backend/internal/delivery/http/middleware"
	"portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	HealthUC  domain.HealthUsecase
	StatsUC   domain.StatsUsecase
	AdminUC   domain.AdminUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORS(cfg.AllowedOrigin, cfg.IsProduction())) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.ErrorHandler(!cfg.IsProduction()))

	api := r.Group("/api")
	api.Use(middleware.VisitCounter(deps.StatsUC))
	api.Use(middleware.RateLimit(middleware.GlobalRateLimitConfig(cfg)))

	// Public routes
	NewHealthHandler(api, deps.HealthUC)
	NewStatsHandler(api, deps.StatsUC)
	NewContactHandler(api, deps.ContactUC, middleware.RateLimit(middleware.SubmissionRateLimitConfig(cfg)))

	// Admin routes (static bearer secret)
	admin := api.Group("/admin")
	admin.Use(middleware.AdminAuth(cfg.AdminToken))
	{
		NewAdminHandler(admin, deps.AdminUC)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "route not found",
			"path":  c.Request.URL.Path,
		})
	})

	return r
}
