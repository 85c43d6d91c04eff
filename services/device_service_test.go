package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"GuardianMobile/models"
	"GuardianMobile/repositories"
	"GuardianMobile/repositories/mocks"
)

func TestRegisterNewDevice(t *testing.T) {
	deviceRepo := new(mocks.DeviceRepository)
	service := NewDeviceService(deviceRepo)

	deviceRepo.On("FindByID", mock.Anything, "dev1").Return(models.Device{}, repositories.ErrNotFound)
	deviceRepo.On("Merge", mock.Anything, "dev1", mock.MatchedBy(func(fields map[string]interface{}) bool {
		// Новая регистрация штампует registeredAt и тип
		_, hasRegisteredAt := fields["registeredAt"]
		return hasRegisteredAt && fields["deviceType"] == models.DeviceTypeChild && fields["pushToken"] == "tok-1"
	})).Return(nil)

	device, err := service.Register(context.Background(), RegisterInput{
		DeviceID:   "dev1",
		DeviceType: "child",
		PushToken:  "tok-1",
	})

	assert.NoError(t, err)
	assert.Equal(t, models.DeviceTypeChild, device.DeviceType)
	assert.False(t, device.RegisteredAt.IsZero())
	deviceRepo.AssertExpectations(t)
}

func TestRegisterPreservesFamilyAndLink(t *testing.T) {
	deviceRepo := new(mocks.DeviceRepository)
	service := NewDeviceService(deviceRepo)

	existing := models.Device{
		DeviceID:     "dev1",
		DeviceType:   models.DeviceTypeParent,
		FamilyID:     "fam-7",
		LinkedTo:     "child-3",
		RegisteredAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	deviceRepo.On("FindByID", mock.Anything, "dev1").Return(existing, nil)
	deviceRepo.On("Merge", mock.Anything, "dev1", mock.MatchedBy(func(fields map[string]interface{}) bool {
		// Повторная регистрация без familyId не должна трогать
		// ни семью, ни привязку, ни дату регистрации
		_, hasFamily := fields["familyId"]
		_, hasLinked := fields["linkedTo"]
		_, hasRegisteredAt := fields["registeredAt"]
		return !hasFamily && !hasLinked && !hasRegisteredAt && fields["pushToken"] == "tok-new"
	})).Return(nil)

	device, err := service.Register(context.Background(), RegisterInput{
		DeviceID:  "dev1",
		PushToken: "tok-new",
	})

	assert.NoError(t, err)
	assert.Equal(t, "fam-7", device.FamilyID)
	assert.Equal(t, "child-3", device.LinkedTo)
	assert.Equal(t, models.DeviceTypeParent, device.DeviceType)
	deviceRepo.AssertExpectations(t)
}

func TestRegisterRequiresDeviceID(t *testing.T) {
	deviceRepo := new(mocks.DeviceRepository)
	service := NewDeviceService(deviceRepo)

	_, err := service.Register(context.Background(), RegisterInput{DeviceType: "parent"})

	assert.ErrorIs(t, err, ErrDeviceIDRequired)
	deviceRepo.AssertNotCalled(t, "Merge", mock.Anything, mock.Anything, mock.Anything)
}

func TestLinkWritesSymmetricEdgeAtomically(t *testing.T) {
	deviceRepo := new(mocks.DeviceRepository)
	service := NewDeviceService(deviceRepo)

	deviceRepo.On("FindByID", mock.Anything, "p1").Return(models.Device{DeviceID: "p1", DeviceType: models.DeviceTypeParent}, nil)
	deviceRepo.On("FindByID", mock.Anything, "c1").Return(models.Device{DeviceID: "c1", DeviceType: models.DeviceTypeChild}, nil)
	deviceRepo.On("SetLinks", mock.Anything, mock.MatchedBy(func(link models.DeviceLink) bool {
		return link.ParentID == "p1" && link.ChildID == "c1" && link.LinkID != ""
	})).Return(nil)

	link, err := service.Link(context.Background(), "p1", "c1")

	assert.NoError(t, err)
	assert.Equal(t, "p1", link.ParentID)
	assert.Equal(t, "c1", link.ChildID)
	deviceRepo.AssertExpectations(t)
}

func TestLinkFailsWhenDeviceMissing(t *testing.T) {
	deviceRepo := new(mocks.DeviceRepository)
	service := NewDeviceService(deviceRepo)

	deviceRepo.On("FindByID", mock.Anything, "p1").Return(models.Device{DeviceID: "p1"}, nil)
	deviceRepo.On("FindByID", mock.Anything, "ghost").Return(models.Device{}, repositories.ErrNotFound)

	_, err := service.Link(context.Background(), "p1", "ghost")

	assert.ErrorIs(t, err, ErrDeviceNotFound)
	deviceRepo.AssertNotCalled(t, "SetLinks", mock.Anything, mock.Anything)
}

func TestLinkRejectsSelfLink(t *testing.T) {
	deviceRepo := new(mocks.DeviceRepository)
	service := NewDeviceService(deviceRepo)

	_, err := service.Link(context.Background(), "dev1", "dev1")

	assert.ErrorIs(t, err, ErrSelfLink)
}

func TestResolvePeer(t *testing.T) {
	deviceRepo := new(mocks.DeviceRepository)
	service := NewDeviceService(deviceRepo)

	deviceRepo.On("FindByID", mock.Anything, "p1").Return(models.Device{DeviceID: "p1", LinkedTo: "c1"}, nil)
	deviceRepo.On("FindByID", mock.Anything, "solo").Return(models.Device{DeviceID: "solo"}, nil)
	deviceRepo.On("FindByID", mock.Anything, "ghost").Return(models.Device{}, repositories.ErrNotFound)

	peer, err := service.ResolvePeer(context.Background(), "p1")
	assert.NoError(t, err)
	assert.Equal(t, "c1", peer)

	// Зарегистрированное, но не связанное устройство это не ошибка
	peer, err = service.ResolvePeer(context.Background(), "solo")
	assert.NoError(t, err)
	assert.Empty(t, peer)

	_, err = service.ResolvePeer(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrDeviceNotFound)
}
