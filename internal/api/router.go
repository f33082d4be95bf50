package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mahanteshk/foliochat/internal/api/middleware"
	"github.com/mahanteshk/foliochat/internal/api/site"
)

// RouterConfig holds configuration for the router
type RouterConfig struct {
	AllowOrigins []string
	DocumentsDir string
}

// SetupRouter sets up the Gin router
func SetupRouter(siteHandler *site.Handler, log *zap.Logger, cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.RequestLogger(log))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public site API
	apiGroup := r.Group("/api")
	siteHandler.RegisterRoutes(apiGroup)

	// Downloadable documents
	RegisterDocumentRoutes(r, cfg.DocumentsDir)

	return r
}
