package models

import "time"

// Location последняя известная позиция устройства, документ перезаписывается.
type Location struct {
	DeviceID     string    `json:"deviceId" firestore:"deviceId"`
	Latitude     float64   `json:"latitude" firestore:"latitude"`
	Longitude    float64   `json:"longitude" firestore:"longitude"`
	Accuracy     *float64  `json:"accuracy,omitempty" firestore:"accuracy,omitempty"`
	BatteryLevel *int      `json:"batteryLevel,omitempty" firestore:"batteryLevel,omitempty"`
	RecordedAt   time.Time `json:"recordedAt" firestore:"recordedAt"`
	UpdatedAt    time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// CallLogEntry ключом служит entryId, который генерирует клиент,
// поэтому повторная синхронизация не создает дубликатов.
type CallLogEntry struct {
	EntryID         string    `json:"entryId" firestore:"entryId" binding:"required"`
	DeviceID        string    `json:"deviceId" firestore:"deviceId"`
	Number          string    `json:"number" firestore:"number"`
	ContactName     string    `json:"contactName,omitempty" firestore:"contactName,omitempty"`
	CallType        string    `json:"callType" firestore:"callType"`
	DurationSeconds int       `json:"durationSeconds" firestore:"durationSeconds"`
	OccurredAt      time.Time `json:"occurredAt" firestore:"occurredAt"`
}

type MessageLogEntry struct {
	EntryID     string    `json:"entryId" firestore:"entryId" binding:"required"`
	DeviceID    string    `json:"deviceId" firestore:"deviceId"`
	Number      string    `json:"number" firestore:"number"`
	ContactName string    `json:"contactName,omitempty" firestore:"contactName,omitempty"`
	Direction   string    `json:"direction" firestore:"direction"`
	Preview     string    `json:"preview,omitempty" firestore:"preview,omitempty"`
	OccurredAt  time.Time `json:"occurredAt" firestore:"occurredAt"`
}
