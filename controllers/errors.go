package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"GuardianMobile/models"
	"GuardianMobile/services"
)

// respondError сопоставляет сервисные ошибки с HTTP-статусами.
// Сопоставление идет через errors.Is, тексты ошибок не разбираются.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrDeviceNotFound),
		errors.Is(err, services.ErrPeerNotLinked),
		errors.Is(err, services.ErrNotificationNotFound),
		errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrLocationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrDeviceIDRequired),
		errors.Is(err, services.ErrSelfLink),
		errors.Is(err, services.ErrAppNameRequired),
		errors.Is(err, services.ErrPackageNameRequired),
		errors.Is(err, services.ErrInvalidLimit),
		errors.Is(err, services.ErrTaskTitleRequired),
		errors.Is(err, models.ErrInvalidDeviceType),
		errors.Is(err, models.ErrUnknownAudience):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrTaskNotOwned):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
