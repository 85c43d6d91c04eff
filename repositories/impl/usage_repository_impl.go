package impl

import (
	"context"

	"GuardianMobile/models"
	"GuardianMobile/repositories"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	screenTimeCollection = "screen_time"
	appLimitsCollection  = "app_limits"
)

type UsageRepositoryImpl struct {
	Client *firestore.Client
}

func NewUsageRepository(client *firestore.Client) repositories.UsageRepository {
	return &UsageRepositoryImpl{Client: client}
}

func (r *UsageRepositoryImpl) FindUsage(ctx context.Context, deviceID string) (models.DeviceUsage, error) {
	doc, err := r.Client.Collection(screenTimeCollection).Doc(deviceID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return models.DeviceUsage{}, repositories.ErrNotFound
		}
		return models.DeviceUsage{}, err
	}

	var usage models.DeviceUsage
	if err := doc.DataTo(&usage); err != nil {
		return models.DeviceUsage{}, err
	}
	return usage, nil
}

// SaveUsage пишет документ целиком. Merge здесь не годится: снятый
// лимит должен исчезнуть из документа, а не пережить запись.
func (r *UsageRepositoryImpl) SaveUsage(ctx context.Context, usage models.DeviceUsage) error {
	_, err := r.Client.Collection(screenTimeCollection).Doc(usage.DeviceID).Set(ctx, usage)
	return err
}

func (r *UsageRepositoryImpl) FindLimits(ctx context.Context, deviceID string) (models.AppLimits, error) {
	doc, err := r.Client.Collection(appLimitsCollection).Doc(deviceID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return models.AppLimits{}, repositories.ErrNotFound
		}
		return models.AppLimits{}, err
	}

	var limits models.AppLimits
	if err := doc.DataTo(&limits); err != nil {
		return models.AppLimits{}, err
	}
	return limits, nil
}

func (r *UsageRepositoryImpl) SaveLimits(ctx context.Context, limits models.AppLimits) error {
	_, err := r.Client.Collection(appLimitsCollection).Doc(limits.DeviceID).Set(ctx, limits)
	return err
}

func (r *UsageRepositoryImpl) DeleteLimits(ctx context.Context, deviceID string) error {
	_, err := r.Client.Collection(appLimitsCollection).Doc(deviceID).Delete(ctx)
	return err
}

func (r *UsageRepositoryImpl) SaveUsageAndLimits(ctx context.Context, usage models.DeviceUsage, limits models.AppLimits) error {
	batch := r.Client.Batch()
	batch.Set(r.Client.Collection(screenTimeCollection).Doc(usage.DeviceID), usage)
	batch.Set(r.Client.Collection(appLimitsCollection).Doc(limits.DeviceID), limits)
	_, err := batch.Commit(ctx)
	return err
}

func (r *UsageRepositoryImpl) SaveUsageDeleteLimits(ctx context.Context, usage models.DeviceUsage) error {
	batch := r.Client.Batch()
	batch.Set(r.Client.Collection(screenTimeCollection).Doc(usage.DeviceID), usage)
	batch.Delete(r.Client.Collection(appLimitsCollection).Doc(usage.DeviceID))
	_, err := batch.Commit(ctx)
	return err
}
