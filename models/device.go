package models

import (
	"errors"
	"time"
)

type DeviceType string

const (
	DeviceTypeParent  DeviceType = "parent"
	DeviceTypeChild   DeviceType = "child"
	DeviceTypeUnknown DeviceType = "unknown"
)

var ErrInvalidDeviceType = errors.New("invalid device type")

// ParseDeviceType нормализует тип устройства из запроса.
// Пустое значение допустимо: устройство регистрируется как unknown
// и уточняет тип при следующей регистрации.
func ParseDeviceType(s string) (DeviceType, error) {
	switch DeviceType(s) {
	case DeviceTypeParent:
		return DeviceTypeParent, nil
	case DeviceTypeChild:
		return DeviceTypeChild, nil
	case DeviceTypeUnknown, "":
		return DeviceTypeUnknown, nil
	default:
		return "", ErrInvalidDeviceType
	}
}

type Device struct {
	DeviceID     string     `json:"deviceId" firestore:"deviceId"`
	DeviceType   DeviceType `json:"deviceType" firestore:"deviceType"`
	PushToken    string     `json:"pushToken,omitempty" firestore:"pushToken,omitempty"`
	FamilyID     string     `json:"familyId,omitempty" firestore:"familyId,omitempty"`
	LinkedTo     string     `json:"linkedTo,omitempty" firestore:"linkedTo,omitempty"`
	RegisteredAt time.Time  `json:"registeredAt" firestore:"registeredAt"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty" firestore:"lastLoginAt,omitempty"`
	UpdatedAt    time.Time  `json:"updatedAt" firestore:"updatedAt"`
}

type DeviceLink struct {
	LinkID   string    `json:"linkId" firestore:"linkId"`
	ParentID string    `json:"parentId" firestore:"parentId"`
	ChildID  string    `json:"childId" firestore:"childId"`
	LinkedAt time.Time `json:"linkedAt" firestore:"linkedAt"`
}

type DeviceLogin struct {
	LoginID    string    `json:"loginId" firestore:"loginId"`
	DeviceID   string    `json:"deviceId" firestore:"deviceId"`
	Platform   string    `json:"platform,omitempty" firestore:"platform,omitempty"`
	AppVersion string    `json:"appVersion,omitempty" firestore:"appVersion,omitempty"`
	LoginAt    time.Time `json:"loginAt" firestore:"loginAt"`
}
