package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title GitHub Commit Graph API
// @version 1.0
// @description Collects GitHub users' commits, counts them per day and plots them as a heatmap
// @contact.name API Support
// @contact.url http://github.com/Kamar-Folarin
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @host localhost:8080
// @BasePath /
// @schemes http https

// SetupRouter configures the API routes
func SetupRouter(h *Handler, logger *logrus.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(logger))

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/", h.Root)
	r.POST("/commit_data/", h.CommitData)
	r.POST("/commit_counter/", h.CommitCounter)
	r.POST("/daily_commit_count/", h.DailyCommitCount)
	r.POST("/plot_commit_graph/", h.PlotCommitGraph)

	return r
}

// WithCORS wraps the router so browsers on any origin can call the API.
func WithCORS(handler http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{requestIDHeader, "Content-Disposition"},
	}).Handler(handler)
}
