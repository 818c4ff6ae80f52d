package controllers

import (
	"github.com/franciscosanchezn/gin-resto-api/internal/models"
	"github.com/gin-gonic/gin"
)

// respondWithError sends the standard APIError envelope
func respondWithError(c *gin.Context, status int, code, message string) {
	c.JSON(status, models.NewAPIError(code, message))
}
