package repositories

import (
	"context"

	"GuardianMobile/models"
)

// UsageRepository хранит документ экранного времени и pull-карту лимитов.
// Парные Save* методы пишут оба документа одним атомарным батчем, чтобы
// встроенные лимиты и карта не могли разойтись.
type UsageRepository interface {
	FindUsage(ctx context.Context, deviceID string) (models.DeviceUsage, error)
	SaveUsage(ctx context.Context, usage models.DeviceUsage) error
	FindLimits(ctx context.Context, deviceID string) (models.AppLimits, error)
	SaveLimits(ctx context.Context, limits models.AppLimits) error
	DeleteLimits(ctx context.Context, deviceID string) error
	SaveUsageAndLimits(ctx context.Context, usage models.DeviceUsage, limits models.AppLimits) error
	SaveUsageDeleteLimits(ctx context.Context, usage models.DeviceUsage) error
}
