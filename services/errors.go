package services

import "errors"

// Ошибки уровня сервисов. Контроллеры сопоставляют их с HTTP-статусами
// через errors.Is, поэтому тексты не разбираются нигде выше.
var (
	ErrDeviceIDRequired     = errors.New("device id is required")
	ErrDeviceNotFound       = errors.New("device not found")
	ErrPeerNotLinked        = errors.New("device has no linked peer")
	ErrSelfLink             = errors.New("cannot link a device to itself")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrTaskNotFound         = errors.New("task not found")
	ErrTaskNotOwned         = errors.New("task belongs to another family")
	ErrPushThrottled        = errors.New("push channel is throttled")
	ErrAppNameRequired      = errors.New("app name is required")
	ErrPackageNameRequired  = errors.New("package name is required")
	ErrInvalidLimit         = errors.New("limit minutes must be positive")
	ErrTaskTitleRequired    = errors.New("task title is required")
	ErrLocationNotFound     = errors.New("no location recorded for device")
)
