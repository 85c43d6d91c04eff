package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"GuardianMobile/models"
	"GuardianMobile/services"
)

var notificationService NotificationServiceInterface

func SetNotificationService(service NotificationServiceInterface) {
	notificationService = service
}

// parseAudience разбирает сегмент :audience маршрута. Допустимы
// только "parent" и "child", все остальное это ошибка клиента.
func parseAudience(c *gin.Context) (models.Audience, bool) {
	audience, err := models.ParseAudience(c.Param("audience"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "audience must be 'parent' or 'child'"})
		return "", false
	}
	return audience, true
}

func SendNotification(c *gin.Context) {
	var input struct {
		TargetID string            `json:"targetId" binding:"required"`
		Title    string            `json:"title" binding:"required"`
		Body     string            `json:"body" binding:"required"`
		Type     string            `json:"type" binding:"required"`
		Data     map[string]string `json:"data"`
		Priority string            `json:"priority"`
		FromID   string            `json:"fromId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	result, err := notificationService.Send(c.Request.Context(), services.SendInput{
		TargetID: input.TargetID,
		Title:    input.Title,
		Body:     input.Body,
		Type:     input.Type,
		Data:     input.Data,
		Priority: input.Priority,
		FromID:   input.FromID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification sent", "data": result})
}

func MarkNotificationRead(c *gin.Context) {
	audience, ok := parseAudience(c)
	if !ok {
		return
	}
	notificationID := c.Param("notification_id")

	if err := notificationService.MarkRead(c.Request.Context(), audience, notificationID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

func MarkAllNotificationsRead(c *gin.Context) {
	audience, ok := parseAudience(c)
	if !ok {
		return
	}
	userID := c.Param("user_id")

	count, err := notificationService.MarkAllRead(c.Request.Context(), audience, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read", "count": count})
}

func GetUnreadCount(c *gin.Context) {
	audience, ok := parseAudience(c)
	if !ok {
		return
	}
	userID := c.Param("user_id")

	count, err := notificationService.UnreadCount(c.Request.Context(), audience, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"userId": userID, "unreadCount": count})
}

func ListNotifications(c *gin.Context) {
	audience, ok := parseAudience(c)
	if !ok {
		return
	}
	userID := c.Param("user_id")

	notifications, err := notificationService.ListNotifications(c.Request.Context(), audience, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": notifications, "count": len(notifications)})
}

func CleanupNotifications(c *gin.Context) {
	audience, ok := parseAudience(c)
	if !ok {
		return
	}
	userID := c.Param("user_id")

	deleted, err := notificationService.Cleanup(c.Request.Context(), audience, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Old notifications cleaned up", "deletedCount": deleted})
}
