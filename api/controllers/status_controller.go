package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandleStatus is the health check endpoint.
func HandleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
