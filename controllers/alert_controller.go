package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"GuardianMobile/models"
)

// Направленные уведомления: /alerts шлет ребенок родителю,
// /commands шлет родитель ребенку. Обе стороны разрешаются через
// привязку, получателя в запросе нет.

func SendSOSAlert(c *gin.Context) {
	var input struct {
		ChildID   string  `json:"childId" binding:"required"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		// Позиция опциональна: SOS без координат все равно уходит.
		HasLocation bool `json:"hasLocation"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	var loc *models.Location
	if input.HasLocation {
		loc = &models.Location{Latitude: input.Latitude, Longitude: input.Longitude}
	}

	result, err := notificationService.SendSOS(c.Request.Context(), input.ChildID, loc)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "SOS alert sent", "data": result})
}

func SendGeofenceAlert(c *gin.Context) {
	var input struct {
		ChildID     string  `json:"childId" binding:"required"`
		ZoneName    string  `json:"zoneName" binding:"required"`
		Event       string  `json:"event" binding:"required"`
		Latitude    float64 `json:"latitude"`
		Longitude   float64 `json:"longitude"`
		HasLocation bool    `json:"hasLocation"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	var loc *models.Location
	if input.HasLocation {
		loc = &models.Location{Latitude: input.Latitude, Longitude: input.Longitude}
	}

	result, err := notificationService.SendGeofenceAlert(c.Request.Context(), input.ChildID, input.ZoneName, input.Event, loc)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Geofence alert sent", "data": result})
}

func SendBatteryAlert(c *gin.Context) {
	var input struct {
		ChildID string `json:"childId" binding:"required"`
		Level   int    `json:"level"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	result, err := notificationService.SendBatteryLow(c.Request.Context(), input.ChildID, input.Level)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Battery alert sent", "data": result})
}

func SendAppInstalledAlert(c *gin.Context) {
	var input struct {
		ChildID     string `json:"childId" binding:"required"`
		AppName     string `json:"appName" binding:"required"`
		PackageName string `json:"packageName"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	result, err := notificationService.SendAppInstalled(c.Request.Context(), input.ChildID, input.AppName, input.PackageName)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "App installed alert sent", "data": result})
}

func SendLimitSetCommand(c *gin.Context) {
	var input struct {
		ParentID     string `json:"parentId" binding:"required"`
		AppName      string `json:"appName" binding:"required"`
		LimitMinutes *int   `json:"limitMinutes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	result, err := notificationService.SendLimitSet(c.Request.Context(), input.ParentID, input.AppName, input.LimitMinutes)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Limit notification sent", "data": result})
}

func SendAppBlockedCommand(c *gin.Context) {
	var input struct {
		ParentID string `json:"parentId" binding:"required"`
		AppName  string `json:"appName" binding:"required"`
		Blocked  *bool  `json:"blocked" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	result, err := notificationService.SendAppBlocked(c.Request.Context(), input.ParentID, input.AppName, *input.Blocked)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "App block command sent", "data": result})
}

func SendDeviceLockCommand(c *gin.Context) {
	var input struct {
		ParentID string `json:"parentId" binding:"required"`
		Lock     *bool  `json:"lock" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	result, err := notificationService.SendDeviceLock(c.Request.Context(), input.ParentID, *input.Lock)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Device lock command sent", "data": result})
}
