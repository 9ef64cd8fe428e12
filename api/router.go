package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ytmeta/middleware"
	"ytmeta/youtube"
)

func Setup(fetcher *youtube.Fetcher) *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		ExposeHeaders:    []string{"Content-Length", "X-Not-Found"},
		AllowCredentials: true,
	}))
	r.Use(middleware.PrometheusMiddleware("ytmeta"))

	h := NewHandler(fetcher)
	r.GET("/api/videos", h.GetVideos)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check endpoints
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "ytmeta"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "ytmeta"})
	})

	return r
}
