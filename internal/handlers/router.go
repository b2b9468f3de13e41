package handlers

import (
	"net/http"

	_ "github.com/epeers/deficits/docs"
	"github.com/epeers/deficits/internal/app"
	"github.com/epeers/deficits/internal/chart"
	"github.com/epeers/deficits/internal/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter sets up the viewer routes for a completed run
func NewRouter(result *app.Result, renderer *chart.Renderer) *gin.Engine {
	chartHandler := NewChartHandler(result, renderer)

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RunID(result.RunID), middleware.RequestLogger())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/", chartHandler.Index)
	router.GET("/chart.png", chartHandler.Chart)

	api := router.Group("/api")
	api.GET("/years", chartHandler.Years)
	api.GET("/averages", chartHandler.Averages)
	api.GET("/attributions", chartHandler.Attributions)
	api.GET("/warnings", chartHandler.Warnings)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
