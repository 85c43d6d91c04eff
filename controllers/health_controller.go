package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func APIRunning(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "API is running"})
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
