package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"postcode-api/internal/models"
)

// AnalyseHandler handles postcode decomposition requests
type AnalyseHandler struct {
	service PostcodeAnalyser
}

// Service interface for dependency injection
type PostcodeAnalyser interface {
	Analyse(raw string) models.Analysis
}

// NewAnalyseHandler creates a new analyse handler
func NewAnalyseHandler(svc PostcodeAnalyser) *AnalyseHandler {
	return &AnalyseHandler{service: svc}
}

// Analyse handles GET /analyse requests
//
// @Summary      Decompose a postcode
// @Description  Splits a postcode into its area, district, sector and unit fragments and lists its forms from most to least specific.
// @Tags         postcodes
// @Produce      json
// @Param        postcode  query  string  true  "Postcode or fragment to decompose"
// @Success      200  {object}  models.Analysis
// @Failure      400  {object}  map[string]string
// @Router       /analyse [get]
func (h *AnalyseHandler) Analyse(c *gin.Context) {
	raw := c.Query("postcode")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'postcode'"})
		return
	}

	c.JSON(http.StatusOK, h.service.Analyse(raw))
}
