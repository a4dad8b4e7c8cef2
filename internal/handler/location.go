package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"postcode-api/internal/geo"
	"postcode-api/internal/models"
	"postcode-api/internal/service"
)

// LocationHandler handles coordinate, distance and bearing requests
type LocationHandler struct {
	service LocationService
}

// Service interface for dependency injection
type LocationService interface {
	Coordinates(ctx context.Context, raw string) (*models.Location, error)
	Distance(ctx context.Context, from, to string, unit geo.Unit) (*models.Distance, error)
	Bearing(ctx context.Context, from, to string) (*models.Bearing, error)
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(svc LocationService) *LocationHandler {
	return &LocationHandler{service: svc}
}

// Coordinates handles GET /coordinates requests
//
// @Summary      Resolve a postcode to coordinates
// @Description  Looks the postcode up at unit, sector, district and area resolution and returns the first match.
// @Tags         locations
// @Produce      json
// @Param        postcode  query  string  true  "Postcode to resolve"
// @Success      200  {object}  models.Location
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /coordinates [get]
func (h *LocationHandler) Coordinates(c *gin.Context) {
	raw := c.Query("postcode")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'postcode'"})
		return
	}

	location, err := h.service.Coordinates(c.Request.Context(), raw)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if location == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no location found for postcode"})
		return
	}

	c.JSON(http.StatusOK, location)
}

// Distance handles GET /distance requests
//
// @Summary      Distance between two postcodes
// @Description  Resolves both postcodes and returns the great-circle distance between them.
// @Tags         locations
// @Produce      json
// @Param        from  query  string  true   "Origin postcode"
// @Param        to    query  string  true   "Destination postcode"
// @Param        unit  query  string  false  "Distance unit: km, m or miles"  default(km)
// @Success      200  {object}  models.Distance
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /distance [get]
func (h *LocationHandler) Distance(c *gin.Context) {
	from, to, ok := endpointParams(c)
	if !ok {
		return
	}

	unit, err := geo.ParseUnit(c.Query("unit"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported unit; use km, m or miles"})
		return
	}

	result, err := h.service.Distance(c.Request.Context(), from, to, unit)
	if err != nil {
		respondLocationError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Bearing handles GET /bearing requests
//
// @Summary      Bearing between two postcodes
// @Description  Resolves both postcodes and returns the initial bearing from the first to the second, with its compass point.
// @Tags         locations
// @Produce      json
// @Param        from  query  string  true  "Origin postcode"
// @Param        to    query  string  true  "Destination postcode"
// @Success      200  {object}  models.Bearing
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /bearing [get]
func (h *LocationHandler) Bearing(c *gin.Context) {
	from, to, ok := endpointParams(c)
	if !ok {
		return
	}

	result, err := h.service.Bearing(c.Request.Context(), from, to)
	if err != nil {
		respondLocationError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func endpointParams(c *gin.Context) (from, to string, ok bool) {
	from = c.Query("from")
	to = c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'from' and 'to'"})
		return "", "", false
	}
	return from, to, true
}

func respondLocationError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNoLocation) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no location found for one or both postcodes"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
