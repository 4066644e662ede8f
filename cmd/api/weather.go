package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"weatherify/internal/orchestrator"
	"weatherify/internal/types"
	apperrors "weatherify/pkg/errors"
)

// SnapshotResponse wraps the orchestrator snapshot with the day/night
// classification for the active location.
type SnapshotResponse struct {
	orchestrator.Snapshot
	IsNight bool `json:"is_night"`
}

// SelectCityInput defines the body for the city selection endpoint
type SelectCityInput struct {
	Name string `json:"name" binding:"required" example:"Adelaide"` // City name to resolve
}

// UseCoordinatesInput defines the body for the device-coordinate endpoint
type UseCoordinatesInput struct {
	Latitude  *float64 `json:"latitude" binding:"required"`  // Latitude in decimal degrees
	Longitude *float64 `json:"longitude" binding:"required"` // Longitude in decimal degrees
}

// handleGetSnapshot godoc
// @Summary Get the current weather snapshot
// @Description Retrieve the aggregate view for the active location: current conditions, hourly and daily series, and day/night classification
// @Tags weather
// @Produce json
// @Success 200 {object} SnapshotResponse
// @Router /weather [get]
func (app *App) handleGetSnapshot(c *gin.Context) {
	c.JSON(http.StatusOK, SnapshotResponse{
		Snapshot: app.orchestrator.Snapshot(),
		IsNight:  app.orchestrator.IsNight(time.Now()),
	})
}

// handleSelectCity godoc
// @Summary Select a city by name
// @Description Resolve a city name and refresh the snapshot for it; forecast sections fill in as fetches complete
// @Tags weather
// @Accept json
// @Produce json
// @Param input body SelectCityInput true "City selection"
// @Success 202 {object} SnapshotResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /weather/city [post]
func (app *App) handleSelectCity(c *gin.Context) {
	var input SelectCityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := app.orchestrator.SelectCity(c.Request.Context(), input.Name); err != nil {
		if apperrors.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "city not found"})
			return
		}
		app.logger.Error("failed to select city", "city", input.Name, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to resolve city"})
		return
	}

	c.JSON(http.StatusAccepted, SnapshotResponse{
		Snapshot: app.orchestrator.Snapshot(),
		IsNight:  app.orchestrator.IsNight(time.Now()),
	})
}

// handleUseCoordinates godoc
// @Summary Use a device coordinate
// @Description Refresh the snapshot for a device-supplied coordinate; the city name is reverse-geocoded
// @Tags weather
// @Accept json
// @Produce json
// @Param input body UseCoordinatesInput true "Device coordinate fix"
// @Success 202 {object} SnapshotResponse
// @Failure 400 {object} map[string]string
// @Router /weather/coordinates [post]
func (app *App) handleUseCoordinates(c *gin.Context) {
	var input UseCoordinatesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app.orchestrator.UseCoordinate(c.Request.Context(), types.NewCoords(*input.Latitude, *input.Longitude))

	c.JSON(http.StatusAccepted, SnapshotResponse{
		Snapshot: app.orchestrator.Snapshot(),
		IsNight:  app.orchestrator.IsNight(time.Now()),
	})
}

// handleSearchCities godoc
// @Summary Filter the city autocomplete list
// @Description Case-insensitive substring filter over the static city reference list; an empty query returns the full list
// @Tags cities
// @Produce json
// @Param query query string false "Substring to match against city names"
// @Success 200 {array} types.City
// @Router /cities [get]
func (app *App) handleSearchCities(c *gin.Context) {
	matched := app.orchestrator.Search(c.Query("query"))
	if matched == nil {
		matched = []types.City{}
	}
	c.JSON(http.StatusOK, matched)
}
