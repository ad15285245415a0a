package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Ping handles the health check endpoint
//
//	@Summary		Health check
//	@Description	Check if the service is up and running
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	map[string]bool	"API is healthy"
//	@Router			/ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok": true,
	})
}
