package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health handles GET /health.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

// Index handles GET / with the service identity.
func Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "Account REST API Service",
		"version": "1.0",
	})
}
