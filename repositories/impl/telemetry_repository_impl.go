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
	locationsCollection   = "locations"
	callLogsCollection    = "call_logs"
	messageLogsCollection = "message_logs"
)

type TelemetryRepositoryImpl struct {
	Client *firestore.Client
}

func NewTelemetryRepository(client *firestore.Client) repositories.TelemetryRepository {
	return &TelemetryRepositoryImpl{Client: client}
}

func (r *TelemetryRepositoryImpl) SaveLocation(ctx context.Context, loc models.Location) error {
	// Храним только последнюю позицию, документ перезаписывается.
	_, err := r.Client.Collection(locationsCollection).Doc(loc.DeviceID).Set(ctx, loc)
	return err
}

func (r *TelemetryRepositoryImpl) FindLocation(ctx context.Context, deviceID string) (models.Location, error) {
	doc, err := r.Client.Collection(locationsCollection).Doc(deviceID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return models.Location{}, repositories.ErrNotFound
		}
		return models.Location{}, err
	}

	var loc models.Location
	if err := doc.DataTo(&loc); err != nil {
		return models.Location{}, err
	}
	return loc, nil
}

func (r *TelemetryRepositoryImpl) SaveCallLog(ctx context.Context, entries []models.CallLogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	// Ключ документа = entryId клиента, поэтому повторная
	// синхронизация перезаписывает те же документы.
	batch := r.Client.Batch()
	for _, entry := range entries {
		batch.Set(r.Client.Collection(callLogsCollection).Doc(entry.EntryID), entry)
	}
	_, err := batch.Commit(ctx)
	return err
}

func (r *TelemetryRepositoryImpl) FindCallLog(ctx context.Context, deviceID string, limit int) ([]models.CallLogEntry, error) {
	query := r.Client.Collection(callLogsCollection).Where("deviceId", "==", deviceID)
	if limit > 0 {
		query = query.Limit(limit)
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	entries := make([]models.CallLogEntry, 0, len(docs))
	for _, doc := range docs {
		var entry models.CallLogEntry
		if err := doc.DataTo(&entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *TelemetryRepositoryImpl) SaveMessages(ctx context.Context, entries []models.MessageLogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	batch := r.Client.Batch()
	for _, entry := range entries {
		batch.Set(r.Client.Collection(messageLogsCollection).Doc(entry.EntryID), entry)
	}
	_, err := batch.Commit(ctx)
	return err
}

func (r *TelemetryRepositoryImpl) FindMessages(ctx context.Context, deviceID string, limit int) ([]models.MessageLogEntry, error) {
	query := r.Client.Collection(messageLogsCollection).Where("deviceId", "==", deviceID)
	if limit > 0 {
		query = query.Limit(limit)
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	entries := make([]models.MessageLogEntry, 0, len(docs))
	for _, doc := range docs {
		var entry models.MessageLogEntry
		if err := doc.DataTo(&entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
