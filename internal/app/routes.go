package app

import (
	"github.com/kokafor1/capstone-backend/internal/auth"
	"github.com/kokafor1/capstone-backend/internal/config"
	"github.com/kokafor1/capstone-backend/internal/handlers"
	"github.com/kokafor1/capstone-backend/internal/repo"
	"github.com/kokafor1/capstone-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	userRepo := repo.NewPGUserRepo(db)
	userSvc := service.NewUserService(userRepo, cfg.Auth.TokenTTL.Duration())
	factRepo := repo.NewPGFactRepo(db)
	factSvc := service.NewFactService(factRepo)
	commentSvc := service.NewCommentService(repo.NewPGCommentRepo(db), factRepo)

	authHandler := handlers.NewAuthHandler(userSvc)
	factHandler := handlers.NewFactHandler(factSvc)
	commentHandler := handlers.NewCommentHandler(commentSvc)

	r.POST("/users", authHandler.Register)
	r.GET("/token", auth.RequireBasic(userSvc), authHandler.GetToken)
	r.GET("/users/me", auth.RequireToken(userSvc), authHandler.Me)

	r.GET("/dog_facts", factHandler.List)
	r.GET("/dog_facts/:id", factHandler.GetByID)

	protected := r.Group("", auth.RequireToken(userSvc))
	protected.POST("/dog_facts", factHandler.Create)
	protected.PUT("/dog_facts/:id", factHandler.Update)
	protected.DELETE("/dog_facts/:id", factHandler.Delete)
	protected.POST("/dog_facts/:id/comments", commentHandler.Create)
	protected.DELETE("/dog_facts/:id/comments/:comment_id", commentHandler.Delete)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Dog Facts API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}
