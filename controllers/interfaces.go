package controllers

import (
	"context"

	"GuardianMobile/models"
	"GuardianMobile/services"
)

// DeviceServiceInterface определяет методы регистрации и связывания устройств
type DeviceServiceInterface interface {
	Register(ctx context.Context, input services.RegisterInput) (models.Device, error)
	Link(ctx context.Context, parentID, childID string) (models.DeviceLink, error)
	Unlink(ctx context.Context, parentID, childID string) error
	ResolvePeer(ctx context.Context, deviceID string) (string, error)
	GetDevice(ctx context.Context, deviceID string) (models.Device, error)
	RecordLogin(ctx context.Context, deviceID, platform, appVersion string) (models.DeviceLogin, error)
}

// NotificationServiceInterface определяет методы диспетчера уведомлений
type NotificationServiceInterface interface {
	Send(ctx context.Context, input services.SendInput) (services.SendResult, error)
	SendSOS(ctx context.Context, childID string, loc *models.Location) (services.SendResult, error)
	SendGeofenceAlert(ctx context.Context, childID, zoneName, event string, loc *models.Location) (services.SendResult, error)
	SendBatteryLow(ctx context.Context, childID string, level int) (services.SendResult, error)
	SendAppInstalled(ctx context.Context, childID, appName, packageName string) (services.SendResult, error)
	SendLimitSet(ctx context.Context, parentID, appName string, limitMinutes *int) (services.SendResult, error)
	SendAppBlocked(ctx context.Context, parentID, appName string, blocked bool) (services.SendResult, error)
	SendDeviceLock(ctx context.Context, parentID string, lock bool) (services.SendResult, error)
	MarkRead(ctx context.Context, audience models.Audience, notificationID string) error
	MarkAllRead(ctx context.Context, audience models.Audience, userID string) (int, error)
	UnreadCount(ctx context.Context, audience models.Audience, userID string) (int, error)
	ListNotifications(ctx context.Context, audience models.Audience, userID string) ([]models.Notification, error)
	Cleanup(ctx context.Context, audience models.Audience, userID string) (int, error)
}

// ScreenTimeServiceInterface определяет методы трекера экранного времени
type ScreenTimeServiceInterface interface {
	SetAppLimit(ctx context.Context, deviceID, appName string, limitMinutes *int, packageName string) (models.AppUsageEntry, error)
	SetScreenTimeLimit(ctx context.Context, deviceID string, limitMinutes *int) (models.AggregateScreenTime, error)
	SetPullLimit(ctx context.Context, deviceID, packageName string, limitMinutes *int) (models.AppLimits, error)
	BatchSetPullLimits(ctx context.Context, deviceID string, newLimits map[string]int) (models.AppLimits, error)
	ClearAllPullLimits(ctx context.Context, deviceID string) error
	GetPullLimits(ctx context.Context, deviceID string) (map[string]int, error)
	GetUsage(ctx context.Context, deviceID string) (models.DeviceUsage, error)
	RecordAppUsage(ctx context.Context, deviceID string, samples []models.AppUsageSample) (models.DeviceUsage, error)
}

// TaskServiceInterface определяет методы для работы с задачами
type TaskServiceInterface interface {
	Create(ctx context.Context, parentID, title, description, reward string) (models.Task, error)
	Complete(ctx context.Context, childID, taskID string) (models.Task, error)
	ListForChild(ctx context.Context, childID string) ([]models.Task, error)
	ListForParent(ctx context.Context, parentID string) ([]models.Task, error)
	Delete(ctx context.Context, parentID, taskID string) error
}

// TelemetryServiceInterface определяет методы синхронизации телеметрии
type TelemetryServiceInterface interface {
	SyncLocation(ctx context.Context, loc models.Location) (models.Location, error)
	GetLocation(ctx context.Context, deviceID string) (models.Location, error)
	SyncCallLog(ctx context.Context, deviceID string, entries []models.CallLogEntry) (int, error)
	GetCallLog(ctx context.Context, deviceID string, limit int) ([]models.CallLogEntry, error)
	SyncMessages(ctx context.Context, deviceID string, entries []models.MessageLogEntry) (int, error)
	GetMessages(ctx context.Context, deviceID string, limit int) ([]models.MessageLogEntry, error)
}
