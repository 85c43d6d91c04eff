package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"GuardianMobile/models"
	"GuardianMobile/repositories"
)

// TelemetryService принимает синхронизацию позиции, звонков и сообщений
// с детского устройства. Идентификатору устройства здесь верим: проверка
// регистрации на каждом событии синхронизации была бы лишним чтением.
type TelemetryService struct {
	TelemetryRepo repositories.TelemetryRepository
}

func NewTelemetryService(telemetryRepo repositories.TelemetryRepository) *TelemetryService {
	return &TelemetryService{TelemetryRepo: telemetryRepo}
}

func (s *TelemetryService) SyncLocation(ctx context.Context, loc models.Location) (models.Location, error) {
	if loc.DeviceID == "" {
		return models.Location{}, ErrDeviceIDRequired
	}

	if loc.RecordedAt.IsZero() {
		loc.RecordedAt = time.Now()
	}
	loc.UpdatedAt = time.Now()

	if err := s.TelemetryRepo.SaveLocation(ctx, loc); err != nil {
		return models.Location{}, fmt.Errorf("saving location for %s: %w", loc.DeviceID, err)
	}
	return loc, nil
}

func (s *TelemetryService) GetLocation(ctx context.Context, deviceID string) (models.Location, error) {
	loc, err := s.TelemetryRepo.FindLocation(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.Location{}, fmt.Errorf("device %s: %w", deviceID, ErrLocationNotFound)
		}
		return models.Location{}, fmt.Errorf("reading location for %s: %w", deviceID, err)
	}
	return loc, nil
}

// SyncCallLog идемпотентен: ключ документа это entryId клиента,
// повторная синхронизация перезаписывает те же записи.
func (s *TelemetryService) SyncCallLog(ctx context.Context, deviceID string, entries []models.CallLogEntry) (int, error) {
	if deviceID == "" {
		return 0, ErrDeviceIDRequired
	}

	saved := make([]models.CallLogEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.EntryID == "" {
			continue
		}
		entry.DeviceID = deviceID
		saved = append(saved, entry)
	}

	if err := s.TelemetryRepo.SaveCallLog(ctx, saved); err != nil {
		return 0, fmt.Errorf("saving call log for %s: %w", deviceID, err)
	}
	return len(saved), nil
}

func (s *TelemetryService) GetCallLog(ctx context.Context, deviceID string, limit int) ([]models.CallLogEntry, error) {
	entries, err := s.TelemetryRepo.FindCallLog(ctx, deviceID, limit)
	if err != nil {
		return nil, fmt.Errorf("reading call log for %s: %w", deviceID, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].OccurredAt.After(entries[j].OccurredAt)
	})
	return entries, nil
}

func (s *TelemetryService) SyncMessages(ctx context.Context, deviceID string, entries []models.MessageLogEntry) (int, error) {
	if deviceID == "" {
		return 0, ErrDeviceIDRequired
	}

	saved := make([]models.MessageLogEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.EntryID == "" {
			continue
		}
		entry.DeviceID = deviceID
		saved = append(saved, entry)
	}

	if err := s.TelemetryRepo.SaveMessages(ctx, saved); err != nil {
		return 0, fmt.Errorf("saving messages for %s: %w", deviceID, err)
	}
	return len(saved), nil
}

func (s *TelemetryService) GetMessages(ctx context.Context, deviceID string, limit int) ([]models.MessageLogEntry, error) {
	entries, err := s.TelemetryRepo.FindMessages(ctx, deviceID, limit)
	if err != nil {
		return nil, fmt.Errorf("reading messages for %s: %w", deviceID, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].OccurredAt.After(entries[j].OccurredAt)
	})
	return entries, nil
}
