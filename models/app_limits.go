package models

import "time"

// AppLimits pull-модель лимитов: карта package -> минуты в день.
// Детское устройство забирает ее целиком при синхронизации.
type AppLimits struct {
	DeviceID  string         `json:"deviceId" firestore:"deviceId"`
	Limits    map[string]int `json:"limits" firestore:"limits"`
	UpdatedAt time.Time      `json:"updatedAt" firestore:"updatedAt"`
}
