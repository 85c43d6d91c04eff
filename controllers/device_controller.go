package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"GuardianMobile/services"
)

var deviceService DeviceServiceInterface

func SetDeviceService(service DeviceServiceInterface) {
	deviceService = service
}

func RegisterDevice(c *gin.Context) {
	var input struct {
		DeviceID   string `json:"deviceId" binding:"required"`
		DeviceType string `json:"deviceType"`
		PushToken  string `json:"pushToken"`
		FamilyID   string `json:"familyId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	device, err := deviceService.Register(c.Request.Context(), services.RegisterInput{
		DeviceID:   input.DeviceID,
		DeviceType: input.DeviceType,
		PushToken:  input.PushToken,
		FamilyID:   input.FamilyID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Device registered successfully", "data": device})
}

func LinkDevices(c *gin.Context) {
	var input struct {
		ParentID string `json:"parentId" binding:"required"`
		ChildID  string `json:"childId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	link, err := deviceService.Link(c.Request.Context(), input.ParentID, input.ChildID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Devices linked successfully", "data": link})
}

func UnlinkDevices(c *gin.Context) {
	var input struct {
		ParentID string `json:"parentId" binding:"required"`
		ChildID  string `json:"childId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	if err := deviceService.Unlink(c.Request.Context(), input.ParentID, input.ChildID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Devices unlinked successfully"})
}

func GetDevice(c *gin.Context) {
	deviceID := c.Param("device_id")
	device, err := deviceService.GetDevice(c.Request.Context(), deviceID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": device})
}

func GetPeer(c *gin.Context) {
	deviceID := c.Param("device_id")
	peerID, err := deviceService.ResolvePeer(c.Request.Context(), deviceID)
	if err != nil {
		respondError(c, err)
		return
	}

	// Незалинкованное устройство это не ошибка: клиент по пустому
	// peerId показывает экран привязки.
	c.JSON(http.StatusOK, gin.H{"deviceId": deviceID, "peerId": peerID, "linked": peerID != ""})
}

func RecordDeviceLogin(c *gin.Context) {
	deviceID := c.Param("device_id")
	var input struct {
		Platform   string `json:"platform"`
		AppVersion string `json:"appVersion"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	login, err := deviceService.RecordLogin(c.Request.Context(), deviceID, input.Platform, input.AppVersion)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login recorded", "data": login})
}
