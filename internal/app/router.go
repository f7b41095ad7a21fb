package app

import (
	"finlit_backend/docs"
	"finlit_backend/internal/config"
	"finlit_backend/internal/middleware"
	"finlit_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/", c.health.Root)
	router.GET("/health", c.health.HealthCheck)

	auth := router.Group("/auth")
	{
		auth.POST("/signup", c.auth.Signup)
		auth.POST("/login", c.auth.Login)
	}

	// Catalog and ranking data carry no per-user state.
	router.GET("/learning_path/topics", c.learningPath.Topics)
	router.GET("/progress/leaderboard", c.progress.Leaderboard)
	router.GET("/rewards/catalog", c.reward.Catalog)

	owner := router.Group("/")
	if cfg.JWT.Enforce {
		owner.Use(middleware.AuthMiddleware(cfg.JWT.Secret), middleware.OwnerMiddleware())
	}
	a.registerUserRoutes(owner, c)
}

func (a *App) registerUserRoutes(r *gin.RouterGroup, c *controllers) {
	paths := r.Group("/learning_path")
	{
		paths.POST("/generate/:user_id", c.learningPath.Generate)
		paths.GET("/my_paths/:user_id", c.learningPath.MyPaths)
	}

	progress := r.Group("/progress")
	{
		progress.POST("/complete_chapter/:user_id/:path_id/:step/:chapter", c.progress.CompleteChapter)
		progress.GET("/badges/:user_id", c.progress.Badges)
		progress.GET("/completed/:user_id", c.progress.Completed)
		progress.GET("/:user_id", c.progress.GetProgress)
	}

	rewards := r.Group("/rewards")
	{
		rewards.POST("/claim_gift/:user_id", c.reward.ClaimGift)
		rewards.POST("/claim_big_motivator/:user_id", c.reward.ClaimBigMotivator)
		rewards.GET("/my_rewards/:user_id", c.reward.MyRewards)
	}

	users := r.Group("/users")
	{
		users.GET("/:user_id", c.user.GetUser)
		users.POST("/:user_id/avatar", c.user.UploadAvatar)
	}
}
