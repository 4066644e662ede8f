package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// City autocomplete
	app.router.GET("/cities", app.handleSearchCities)

	// Weather endpoints
	app.router.GET("/weather", app.handleGetSnapshot)
	app.router.POST("/weather/city", app.handleSelectCity)
	app.router.POST("/weather/coordinates", app.handleUseCoordinates)

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
