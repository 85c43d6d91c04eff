package repositories

import (
	"context"

	"GuardianMobile/models"
)

type TelemetryRepository interface {
	SaveLocation(ctx context.Context, loc models.Location) error
	FindLocation(ctx context.Context, deviceID string) (models.Location, error)
	SaveCallLog(ctx context.Context, entries []models.CallLogEntry) error
	FindCallLog(ctx context.Context, deviceID string, limit int) ([]models.CallLogEntry, error)
	SaveMessages(ctx context.Context, entries []models.MessageLogEntry) error
	FindMessages(ctx context.Context, deviceID string, limit int) ([]models.MessageLogEntry, error)
}
