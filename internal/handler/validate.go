package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"postcode-api/internal/models"
)

// ValidateHandler handles postcode validation requests
type ValidateHandler struct {
	service PostcodeValidator
}

// Service interface for dependency injection
type PostcodeValidator interface {
	Validate(raw string) models.Validation
}

// NewValidateHandler creates a new validate handler
func NewValidateHandler(svc PostcodeValidator) *ValidateHandler {
	return &ValidateHandler{service: svc}
}

// Validate handles GET /validate requests
//
// @Summary      Validate a postcode
// @Description  Checks a postcode against the BS 7666 structural rules and returns its canonical form when valid.
// @Tags         postcodes
// @Produce      json
// @Param        postcode  query  string  true  "Postcode to validate"
// @Success      200  {object}  models.Validation
// @Failure      400  {object}  map[string]string
// @Router       /validate [get]
func (h *ValidateHandler) Validate(c *gin.Context) {
	raw := c.Query("postcode")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'postcode'"})
		return
	}

	c.JSON(http.StatusOK, h.service.Validate(raw))
}
