package models

import "time"

const (
	UsageStatusActive  = "active"
	UsageStatusBlocked = "blocked"

	TimePeriodDaily = "daily"
)

// AppUsageEntry хранит дневной счетчик и лимит одного приложения.
// LimitMinutes == nil означает "без ограничений".
type AppUsageEntry struct {
	Name          string `json:"name" firestore:"name"`
	PackageName   string `json:"packageName,omitempty" firestore:"packageName,omitempty"`
	LimitMinutes  *int   `json:"limitMinutes" firestore:"limitMinutes,omitempty"`
	UsageMinutes  int    `json:"usageMinutes" firestore:"usageMinutes"`
	Blocked       bool   `json:"blocked" firestore:"blocked"`
	LastResetDate string `json:"lastResetDate" firestore:"lastResetDate"`
	Status        string `json:"status" firestore:"status"`
	TimePeriod    string `json:"timePeriod" firestore:"timePeriod"`
}

type AggregateScreenTime struct {
	LimitMinutes  *int   `json:"limitMinutes" firestore:"limitMinutes,omitempty"`
	TotalMinutes  int    `json:"totalMinutes" firestore:"totalMinutes"`
	LastResetDate string `json:"lastResetDate" firestore:"lastResetDate"`
	Status        string `json:"status" firestore:"status"`
	TimePeriod    string `json:"timePeriod" firestore:"timePeriod"`
}

// DeviceUsage документ экранного времени устройства, одна запись на устройство.
type DeviceUsage struct {
	DeviceID   string              `json:"deviceId" firestore:"deviceId"`
	Apps       []AppUsageEntry     `json:"apps" firestore:"apps"`
	ScreenTime AggregateScreenTime `json:"screenTime" firestore:"screenTime"`
	UpdatedAt  time.Time           `json:"updatedAt" firestore:"updatedAt"`
}

// AppUsageSample порция использования, которую ребенок присылает при синхронизации.
type AppUsageSample struct {
	AppName     string `json:"appName" binding:"required"`
	PackageName string `json:"packageName"`
	Minutes     int    `json:"minutes"`
}
