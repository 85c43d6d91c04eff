package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"GuardianMobile/models"
)

var telemetryService TelemetryServiceInterface

func SetTelemetryService(service TelemetryServiceInterface) {
	telemetryService = service
}

func SyncLocation(c *gin.Context) {
	var input models.Location
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	loc, err := telemetryService.SyncLocation(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Location synced", "data": loc})
}

func GetLocation(c *gin.Context) {
	deviceID := c.Param("device_id")
	loc, err := telemetryService.GetLocation(c.Request.Context(), deviceID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": loc})
}

func SyncCallLog(c *gin.Context) {
	var input struct {
		DeviceID string                `json:"deviceId" binding:"required"`
		Entries  []models.CallLogEntry `json:"entries" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	saved, err := telemetryService.SyncCallLog(c.Request.Context(), input.DeviceID, input.Entries)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Call log synced", "savedCount": saved})
}

func GetCallLog(c *gin.Context) {
	deviceID := c.Param("device_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	entries, err := telemetryService.GetCallLog(c.Request.Context(), deviceID, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": entries, "count": len(entries)})
}

func SyncMessages(c *gin.Context) {
	var input struct {
		DeviceID string                   `json:"deviceId" binding:"required"`
		Entries  []models.MessageLogEntry `json:"entries" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	saved, err := telemetryService.SyncMessages(c.Request.Context(), input.DeviceID, input.Entries)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Messages synced", "savedCount": saved})
}

func GetMessages(c *gin.Context) {
	deviceID := c.Param("device_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	entries, err := telemetryService.GetMessages(c.Request.Context(), deviceID, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": entries, "count": len(entries)})
}
