package api

import (
	"time"

	"blogapi/internal/auth"
	"blogapi/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID tags every request with an X-Request-ID so a response can be
// matched against the server log.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// NewRouter wires middleware and routes onto a gin engine.
func NewRouter(cfg *config.Config, h *Handler) *gin.Engine {
	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(RequestID())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Identity is resolved once here; individual routes gate on RequireAuth.
	router.Use(auth.Middleware(cfg.JWTSecret))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	accounts := router.Group("/accounts")
	accounts.POST("/create", h.Signup)
	accounts.POST("/login", h.Login)
	accounts.GET("/me", auth.RequireAuth(), h.Dashboard)

	posts := router.Group("/posts")
	posts.GET("", h.ListPosts)
	posts.POST("", auth.RequireAuth(), h.CreatePost)
	posts.GET("/:id", h.GetPost)
	posts.PUT("/:id", auth.RequireAuth(), h.UpdatePost)
	posts.DELETE("/:id", auth.RequireAuth(), h.DeletePost)

	posts.GET("/:id/comments", h.ListComments)
	posts.POST("/:id/comments", auth.RequireAuth(), h.CreateComment)
	posts.GET("/:id/comments/:comment_id", h.GetComment)
	posts.PUT("/:id/comments/:comment_id", auth.RequireAuth(), h.UpdateComment)
	posts.DELETE("/:id/comments/:comment_id", auth.RequireAuth(), h.DeleteComment)

	posts.POST("/:id/like", auth.RequireAuth(), h.ToggleLike)

	return router
}
