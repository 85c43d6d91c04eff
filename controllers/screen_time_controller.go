package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"GuardianMobile/models"
)

var screenTimeService ScreenTimeServiceInterface

func SetScreenTimeService(service ScreenTimeServiceInterface) {
	screenTimeService = service
}

func SetAppLimit(c *gin.Context) {
	var input struct {
		DeviceID     string `json:"deviceId" binding:"required"`
		AppName      string `json:"appName" binding:"required"`
		LimitMinutes *int   `json:"limitMinutes"`
		PackageName  string `json:"packageName"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	entry, err := screenTimeService.SetAppLimit(c.Request.Context(), input.DeviceID, input.AppName, input.LimitMinutes, input.PackageName)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "App limit updated", "data": entry})
}

func SetScreenTimeLimit(c *gin.Context) {
	var input struct {
		DeviceID     string `json:"deviceId" binding:"required"`
		LimitMinutes *int   `json:"limitMinutes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	screenTime, err := screenTimeService.SetScreenTimeLimit(c.Request.Context(), input.DeviceID, input.LimitMinutes)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Screen time limit updated", "data": screenTime})
}

func GetDeviceUsage(c *gin.Context) {
	deviceID := c.Param("device_id")
	usage, err := screenTimeService.GetUsage(c.Request.Context(), deviceID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": usage})
}

func RecordAppUsage(c *gin.Context) {
	deviceID := c.Param("device_id")
	var input struct {
		Samples []models.AppUsageSample `json:"samples" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	usage, err := screenTimeService.RecordAppUsage(c.Request.Context(), deviceID, input.Samples)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Usage recorded", "data": usage})
}

func GetAppLimits(c *gin.Context) {
	deviceID := c.Param("device_id")
	limits, err := screenTimeService.GetPullLimits(c.Request.Context(), deviceID)
	if err != nil {
		respondError(c, err)
		return
	}

	// Отсутствие документа лимитов отдается как пустая карта,
	// для клиента это "все приложения без ограничений".
	c.JSON(http.StatusOK, gin.H{"deviceId": deviceID, "limits": limits})
}

func SetAppLimitByPackage(c *gin.Context) {
	deviceID := c.Param("device_id")
	packageName := c.Param("package_name")
	var input struct {
		LimitMinutes *int `json:"limitMinutes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	limits, err := screenTimeService.SetPullLimit(c.Request.Context(), deviceID, packageName, input.LimitMinutes)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "App limit updated", "data": limits})
}

func ReplaceAppLimits(c *gin.Context) {
	deviceID := c.Param("device_id")
	var input struct {
		Limits map[string]int `json:"limits" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	limits, err := screenTimeService.BatchSetPullLimits(c.Request.Context(), deviceID, input.Limits)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "App limits replaced", "data": limits})
}

func ClearAppLimits(c *gin.Context) {
	deviceID := c.Param("device_id")
	if err := screenTimeService.ClearAllPullLimits(c.Request.Context(), deviceID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "App limits cleared"})
}
