package impl

import (
	"context"
	"time"

	"GuardianMobile/models"
	"GuardianMobile/repositories"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	devicesCollection = "devices"
	linksCollection   = "links"
	loginsCollection  = "device_logins"
)

type DeviceRepositoryImpl struct {
	Client *firestore.Client
}

func NewDeviceRepository(client *firestore.Client) repositories.DeviceRepository {
	return &DeviceRepositoryImpl{Client: client}
}

func (r *DeviceRepositoryImpl) FindByID(ctx context.Context, deviceID string) (models.Device, error) {
	doc, err := r.Client.Collection(devicesCollection).Doc(deviceID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return models.Device{}, repositories.ErrNotFound
		}
		return models.Device{}, err
	}

	var device models.Device
	if err := doc.DataTo(&device); err != nil {
		return models.Device{}, err
	}
	return device, nil
}

func (r *DeviceRepositoryImpl) Merge(ctx context.Context, deviceID string, fields map[string]interface{}) error {
	_, err := r.Client.Collection(devicesCollection).Doc(deviceID).Set(ctx, fields, firestore.MergeAll)
	return err
}

func (r *DeviceRepositoryImpl) SetLinks(ctx context.Context, link models.DeviceLink) error {
	// Обе обратные ссылки и документ связи уходят одним батчем,
	// полусвязанное состояние невозможно.
	batch := r.Client.Batch()
	batch.Set(r.Client.Collection(devicesCollection).Doc(link.ParentID), map[string]interface{}{
		"linkedTo":  link.ChildID,
		"updatedAt": link.LinkedAt,
	}, firestore.MergeAll)
	batch.Set(r.Client.Collection(devicesCollection).Doc(link.ChildID), map[string]interface{}{
		"linkedTo":  link.ParentID,
		"updatedAt": link.LinkedAt,
	}, firestore.MergeAll)
	batch.Set(r.Client.Collection(linksCollection).Doc(link.LinkID), link)

	_, err := batch.Commit(ctx)
	return err
}

func (r *DeviceRepositoryImpl) ClearLinks(ctx context.Context, parentID, childID string, linkIDs []string) error {
	now := time.Now()

	batch := r.Client.Batch()
	batch.Set(r.Client.Collection(devicesCollection).Doc(parentID), map[string]interface{}{
		"linkedTo":  firestore.Delete,
		"updatedAt": now,
	}, firestore.MergeAll)
	batch.Set(r.Client.Collection(devicesCollection).Doc(childID), map[string]interface{}{
		"linkedTo":  firestore.Delete,
		"updatedAt": now,
	}, firestore.MergeAll)
	for _, linkID := range linkIDs {
		batch.Delete(r.Client.Collection(linksCollection).Doc(linkID))
	}

	_, err := batch.Commit(ctx)
	return err
}

func (r *DeviceRepositoryImpl) FindLinksBetween(ctx context.Context, parentID, childID string) ([]models.DeviceLink, error) {
	docs, err := r.Client.Collection(linksCollection).
		Where("parentId", "==", parentID).
		Where("childId", "==", childID).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	links := make([]models.DeviceLink, 0, len(docs))
	for _, doc := range docs {
		var link models.DeviceLink
		if err := doc.DataTo(&link); err != nil {
			return nil, err
		}
		links = append(links, link)
	}
	return links, nil
}

func (r *DeviceRepositoryImpl) SaveLogin(ctx context.Context, login models.DeviceLogin) error {
	batch := r.Client.Batch()
	batch.Set(r.Client.Collection(loginsCollection).Doc(login.LoginID), login)
	batch.Set(r.Client.Collection(devicesCollection).Doc(login.DeviceID), map[string]interface{}{
		"lastLoginAt": login.LoginAt,
		"updatedAt":   login.LoginAt,
	}, firestore.MergeAll)

	_, err := batch.Commit(ctx)
	return err
}
