package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"GuardianMobile/models"
	"GuardianMobile/repositories"
)

type DeviceService struct {
	DeviceRepo repositories.DeviceRepository
}

func NewDeviceService(deviceRepo repositories.DeviceRepository) *DeviceService {
	return &DeviceService{DeviceRepo: deviceRepo}
}

type RegisterInput struct {
	DeviceID   string
	DeviceType string
	PushToken  string
	FamilyID   string
}

// Register регистрирует устройство или обновляет существующую регистрацию.
// Пишутся только переданные поля: пропущенный familyId сохраняется,
// linkedTo регистрация не трогает никогда. Повторная регистрация это
// штатный путь обновления push-токена.
func (s *DeviceService) Register(ctx context.Context, input RegisterInput) (models.Device, error) {
	if input.DeviceID == "" {
		return models.Device{}, ErrDeviceIDRequired
	}

	deviceType, err := models.ParseDeviceType(input.DeviceType)
	if err != nil {
		return models.Device{}, err
	}

	existing, err := s.DeviceRepo.FindByID(ctx, input.DeviceID)
	isNew := false
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return models.Device{}, fmt.Errorf("reading device %s: %w", input.DeviceID, err)
		}
		isNew = true
	}

	now := time.Now()
	fields := map[string]interface{}{
		"deviceId":  input.DeviceID,
		"updatedAt": now,
	}

	device := existing
	device.DeviceID = input.DeviceID
	device.UpdatedAt = now

	if isNew {
		fields["registeredAt"] = now
		fields["deviceType"] = deviceType
		device.RegisteredAt = now
		device.DeviceType = deviceType
	} else if input.DeviceType != "" {
		// Тип перезаписываем только когда клиент прислал его явно,
		// иначе повторная регистрация не должна сбрасывать parent в unknown.
		fields["deviceType"] = deviceType
		device.DeviceType = deviceType
	}
	if input.PushToken != "" {
		fields["pushToken"] = input.PushToken
		device.PushToken = input.PushToken
	}
	if input.FamilyID != "" {
		fields["familyId"] = input.FamilyID
		device.FamilyID = input.FamilyID
	}

	if err := s.DeviceRepo.Merge(ctx, input.DeviceID, fields); err != nil {
		return models.Device{}, fmt.Errorf("saving device %s: %w", input.DeviceID, err)
	}

	return device, nil
}

// Link связывает родителя и ребенка. Обе обратные ссылки и документ
// связи пишутся одним батчем после проверки, что обе регистрации
// существуют.
func (s *DeviceService) Link(ctx context.Context, parentID, childID string) (models.DeviceLink, error) {
	if parentID == "" || childID == "" {
		return models.DeviceLink{}, ErrDeviceIDRequired
	}
	if parentID == childID {
		return models.DeviceLink{}, ErrSelfLink
	}

	if _, err := s.requireDevice(ctx, parentID); err != nil {
		return models.DeviceLink{}, err
	}
	if _, err := s.requireDevice(ctx, childID); err != nil {
		return models.DeviceLink{}, err
	}

	link := models.DeviceLink{
		LinkID:   uuid.New().String(),
		ParentID: parentID,
		ChildID:  childID,
		LinkedAt: time.Now(),
	}

	if err := s.DeviceRepo.SetLinks(ctx, link); err != nil {
		return models.DeviceLink{}, fmt.Errorf("linking %s and %s: %w", parentID, childID, err)
	}

	return link, nil
}

func (s *DeviceService) Unlink(ctx context.Context, parentID, childID string) error {
	if _, err := s.requireDevice(ctx, parentID); err != nil {
		return err
	}
	if _, err := s.requireDevice(ctx, childID); err != nil {
		return err
	}

	links, err := s.DeviceRepo.FindLinksBetween(ctx, parentID, childID)
	if err != nil {
		return fmt.Errorf("looking up links between %s and %s: %w", parentID, childID, err)
	}

	linkIDs := make([]string, 0, len(links))
	for _, link := range links {
		linkIDs = append(linkIDs, link.LinkID)
	}

	if err := s.DeviceRepo.ClearLinks(ctx, parentID, childID, linkIDs); err != nil {
		return fmt.Errorf("unlinking %s and %s: %w", parentID, childID, err)
	}
	return nil
}

// ResolvePeer возвращает идентификатор связанного устройства.
// Пустая строка означает "зарегистрировано, но не связано".
func (s *DeviceService) ResolvePeer(ctx context.Context, deviceID string) (string, error) {
	device, err := s.requireDevice(ctx, deviceID)
	if err != nil {
		return "", err
	}
	return device.LinkedTo, nil
}

func (s *DeviceService) ResolveDeviceType(ctx context.Context, deviceID string) (models.DeviceType, error) {
	device, err := s.requireDevice(ctx, deviceID)
	if err != nil {
		return "", err
	}
	return device.DeviceType, nil
}

func (s *DeviceService) GetDevice(ctx context.Context, deviceID string) (models.Device, error) {
	return s.requireDevice(ctx, deviceID)
}

func (s *DeviceService) RecordLogin(ctx context.Context, deviceID, platform, appVersion string) (models.DeviceLogin, error) {
	if _, err := s.requireDevice(ctx, deviceID); err != nil {
		return models.DeviceLogin{}, err
	}

	login := models.DeviceLogin{
		LoginID:    uuid.New().String(),
		DeviceID:   deviceID,
		Platform:   platform,
		AppVersion: appVersion,
		LoginAt:    time.Now(),
	}

	if err := s.DeviceRepo.SaveLogin(ctx, login); err != nil {
		return models.DeviceLogin{}, fmt.Errorf("recording login for %s: %w", deviceID, err)
	}
	return login, nil
}

func (s *DeviceService) requireDevice(ctx context.Context, deviceID string) (models.Device, error) {
	device, err := s.DeviceRepo.FindByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.Device{}, fmt.Errorf("device %s: %w", deviceID, ErrDeviceNotFound)
		}
		return models.Device{}, fmt.Errorf("reading device %s: %w", deviceID, err)
	}
	return device, nil
}
