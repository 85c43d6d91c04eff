package repositories

import (
	"context"

	"GuardianMobile/models"
)

type DeviceRepository interface {
	FindByID(ctx context.Context, deviceID string) (models.Device, error)
	// Merge дописывает только перечисленные поля, не трогая остальные.
	Merge(ctx context.Context, deviceID string, fields map[string]interface{}) error
	// SetLinks атомарно проставляет linkedTo на обоих устройствах
	// и создает документ связи.
	SetLinks(ctx context.Context, link models.DeviceLink) error
	// ClearLinks атомарно снимает linkedTo с обоих устройств
	// и удаляет документы связи.
	ClearLinks(ctx context.Context, parentID, childID string, linkIDs []string) error
	FindLinksBetween(ctx context.Context, parentID, childID string) ([]models.DeviceLink, error)
	SaveLogin(ctx context.Context, login models.DeviceLogin) error
}
