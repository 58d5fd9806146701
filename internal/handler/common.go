package handler

import (
	"net/http"

	"linkup/backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// internalError logs the underlying cause and returns a generic 500.
// No internal detail reaches the client.
func internalError(c *gin.Context, msg string, err error) {
	logger.Error(msg, "error", err, "path", c.FullPath())
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
