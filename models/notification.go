package models

import (
	"errors"
	"time"
)

// Audience определяет, в какую коллекцию попадает уведомление.
type Audience string

const (
	AudienceParent Audience = "parent"
	AudienceChild  Audience = "child"
)

var ErrUnknownAudience = errors.New("device type does not map to a notification audience")

// AudienceForDeviceType вычисляет аудиторию по типу устройства-получателя.
// Для unknown устройств аудитория не определена, маршрутизация невозможна.
func AudienceForDeviceType(t DeviceType) (Audience, error) {
	switch t {
	case DeviceTypeParent:
		return AudienceParent, nil
	case DeviceTypeChild:
		return AudienceChild, nil
	default:
		return "", ErrUnknownAudience
	}
}

func ParseAudience(s string) (Audience, error) {
	switch Audience(s) {
	case AudienceParent:
		return AudienceParent, nil
	case AudienceChild:
		return AudienceChild, nil
	default:
		return "", ErrUnknownAudience
	}
}

const (
	PriorityNormal = "normal"
	PriorityHigh   = "high"
)

// NormalizePriority приводит приоритет к допустимому значению.
func NormalizePriority(p string) string {
	if p == PriorityHigh {
		return PriorityHigh
	}
	return PriorityNormal
}

// Типы уведомлений, которые понимают мобильные клиенты.
const (
	NotificationTypeSOS                    = "sos"
	NotificationTypeGeofenceAlert          = "geofence_alert"
	NotificationTypeBatteryLow             = "battery_low"
	NotificationTypeAppInstalled           = "app_installed"
	NotificationTypeAppLimitExceeded       = "app_limit_exceeded"
	NotificationTypeScreenTimeExceeded     = "screen_time_limit_exceeded"
	NotificationTypeLimitSet               = "limit_set"
	NotificationTypeScreenTimeLimitSet     = "screen_time_limit_set"
	NotificationTypeAppBlocked             = "app_blocked"
	NotificationTypeAppUnblocked           = "app_unblocked"
	NotificationTypeTaskAssigned           = "task_assigned"
	NotificationTypeTaskCompleted          = "task_completed"
	NotificationTypeDeviceLock             = "device_lock"
	NotificationTypeDeviceUnlock           = "device_unlock"
)

type Notification struct {
	NotificationID string            `json:"notificationId" firestore:"notificationId"`
	UserID         string            `json:"userId" firestore:"userId"`
	Title          string            `json:"title" firestore:"title"`
	Body           string            `json:"body" firestore:"body"`
	Type           string            `json:"type" firestore:"type"`
	Read           bool              `json:"read" firestore:"read"`
	Priority       string            `json:"priority" firestore:"priority"`
	Data           map[string]string `json:"data,omitempty" firestore:"data,omitempty"`
	FromParentID   string            `json:"fromParentId,omitempty" firestore:"fromParentId,omitempty"`
	FromChildID    string            `json:"fromChildId,omitempty" firestore:"fromChildId,omitempty"`
	Timestamp      time.Time         `json:"timestamp" firestore:"timestamp"`
	ReadAt         *time.Time        `json:"readAt,omitempty" firestore:"readAt,omitempty"`
}
