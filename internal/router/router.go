package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/nutridash/backend/config"
	"github.com/nutridash/backend/internal/api"
	"github.com/nutridash/backend/internal/database"
	"github.com/nutridash/backend/internal/middleware"
	"github.com/nutridash/backend/internal/service"
)

// Deps carries everything the route tree needs. The redis client and the
// image service are optional; the routes that use them degrade gracefully
// when they are nil.
type Deps struct {
	DB           *gorm.DB
	Redis        *redis.Client
	AuthService  *service.AuthService
	ImageService *service.ImageService
}

// New builds the full route tree. Catalog writes sit behind the admin role,
// meals behind plain authentication; mutations share a per-user rate limit
// when redis is available.
func New(cfg *config.Config, deps Deps) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.ErrorHandler())

	router.GET("/health", func(c *gin.Context) {
		if err := database.HealthCheck(c.Request.Context(), deps.DB); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	api.NewAuthHandler(deps.AuthService).RegisterRoutes(v1)

	authed := v1.Group("")
	authed.Use(middleware.AuthMiddleware(deps.AuthService))
	if deps.Redis != nil {
		authed.Use(middleware.NewMutationRateLimiter(deps.Redis).RateLimitMiddleware())
	}

	api.NewCategoryHandler(service.NewCategoryService(deps.DB)).RegisterRoutes(authed)
	api.NewServingUnitHandler(service.NewServingUnitService(deps.DB)).RegisterRoutes(authed)
	api.NewFoodHandler(service.NewFoodService(deps.DB), deps.ImageService).RegisterRoutes(authed)
	api.NewMealHandler(service.NewMealService(deps.DB)).RegisterRoutes(authed)

	return router
}
