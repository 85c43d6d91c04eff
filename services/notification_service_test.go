package services

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"GuardianMobile/models"
	"GuardianMobile/repositories"
	"GuardianMobile/repositories/mocks"
)

// MockPushSender реализует интерфейс PushSender для тестирования
type MockPushSender struct {
	mock.Mock
}

func (m *MockPushSender) Send(ctx context.Context, token, title, body string, data map[string]string, priority string) (string, error) {
	args := m.Called(ctx, token, title, body, data, priority)
	return args.String(0), args.Error(1)
}

func newNotificationServiceForTest() (*NotificationService, *mocks.DeviceRepository, *mocks.NotificationRepository, *MockPushSender) {
	deviceRepo := new(mocks.DeviceRepository)
	notificationRepo := new(mocks.NotificationRepository)
	push := new(MockPushSender)
	return NewNotificationService(deviceRepo, notificationRepo, push), deviceRepo, notificationRepo, push
}

func TestSendPersistsAndPushes(t *testing.T) {
	service, deviceRepo, notificationRepo, push := newNotificationServiceForTest()

	// Ребенок зарегистрирован и имеет push-токен
	deviceRepo.On("FindByID", mock.Anything, "child1").Return(models.Device{
		DeviceID:   "child1",
		DeviceType: models.DeviceTypeChild,
		PushToken:  "token-abc",
	}, nil)

	var saved models.Notification
	notificationRepo.On("Save", mock.Anything, models.AudienceChild, mock.MatchedBy(func(n models.Notification) bool {
		saved = n
		return n.UserID == "child1" && !n.Read && n.FromParentID == "parent1" && n.FromChildID == ""
	})).Return(nil)

	push.On("Send", mock.Anything, "token-abc", "⏱ Limit", "TikTok capped", mock.MatchedBy(func(data map[string]string) bool {
		// Служебные ключи должны попасть в data-payload
		return data["type"] == models.NotificationTypeLimitSet && data["notificationId"] != ""
	}), models.PriorityNormal).Return("push-42", nil)

	result, err := service.Send(context.Background(), SendInput{
		TargetID: "child1",
		Title:    "⏱ Limit",
		Body:     "TikTok capped",
		Type:     models.NotificationTypeLimitSet,
		Data:     map[string]string{"app": "TikTok", "limit": "60"},
		Priority: models.PriorityNormal,
		FromID:   "parent1",
	})

	assert.NoError(t, err)
	assert.Equal(t, saved.NotificationID, result.NotificationID)
	assert.Equal(t, models.AudienceChild, result.Audience)
	assert.Equal(t, DeliveryDelivered, result.Delivery)
	assert.Equal(t, "push-42", result.PushID)
	deviceRepo.AssertExpectations(t)
	notificationRepo.AssertExpectations(t)
	push.AssertExpectations(t)
}

func TestSendWithoutPushTokenSkipsPush(t *testing.T) {
	service, deviceRepo, notificationRepo, push := newNotificationServiceForTest()

	// У получателя нет push-токена: запись в журнал остается
	// единственным каналом доставки
	deviceRepo.On("FindByID", mock.Anything, "child1").Return(models.Device{
		DeviceID:   "child1",
		DeviceType: models.DeviceTypeChild,
	}, nil)
	notificationRepo.On("Save", mock.Anything, models.AudienceChild, mock.Anything).Return(nil)

	result, err := service.Send(context.Background(), SendInput{
		TargetID: "child1",
		Title:    "⏱ Limit",
		Body:     "TikTok capped",
		Type:     models.NotificationTypeLimitSet,
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, result.NotificationID)
	assert.Equal(t, DeliverySkipped, result.Delivery)
	assert.Empty(t, result.PushID)
	push.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSendPushFailureDoesNotFailCall(t *testing.T) {
	service, deviceRepo, notificationRepo, push := newNotificationServiceForTest()

	deviceRepo.On("FindByID", mock.Anything, "parent1").Return(models.Device{
		DeviceID:   "parent1",
		DeviceType: models.DeviceTypeParent,
		PushToken:  "token-p",
	}, nil)
	notificationRepo.On("Save", mock.Anything, models.AudienceParent, mock.Anything).Return(nil)
	push.On("Send", mock.Anything, "token-p", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("fcm unavailable"))

	result, err := service.Send(context.Background(), SendInput{
		TargetID: "parent1",
		Title:    "SOS Alert",
		Body:     "help",
		Type:     models.NotificationTypeSOS,
		Priority: models.PriorityHigh,
	})

	// Ошибка push не должна отменять успешную запись в журнал
	assert.NoError(t, err)
	assert.NotEmpty(t, result.NotificationID)
	assert.Equal(t, DeliveryFailed, result.Delivery)
	assert.Contains(t, result.Reason, "fcm unavailable")
}

func TestSendPersistenceFailureFailsCall(t *testing.T) {
	service, deviceRepo, notificationRepo, push := newNotificationServiceForTest()

	deviceRepo.On("FindByID", mock.Anything, "child1").Return(models.Device{
		DeviceID:   "child1",
		DeviceType: models.DeviceTypeChild,
		PushToken:  "token-abc",
	}, nil)
	notificationRepo.On("Save", mock.Anything, models.AudienceChild, mock.Anything).
		Return(errors.New("firestore write failed"))

	_, err := service.Send(context.Background(), SendInput{
		TargetID: "child1",
		Title:    "t",
		Body:     "b",
		Type:     models.NotificationTypeLimitSet,
	})

	// Журнал это источник истины, без записи push не отправляется
	assert.Error(t, err)
	push.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSendTargetNotFound(t *testing.T) {
	service, deviceRepo, _, _ := newNotificationServiceForTest()

	deviceRepo.On("FindByID", mock.Anything, "ghost").Return(models.Device{}, repositories.ErrNotFound)

	_, err := service.Send(context.Background(), SendInput{
		TargetID: "ghost",
		Title:    "t",
		Body:     "b",
		Type:     models.NotificationTypeLimitSet,
	})

	assert.ErrorIs(t, err, ErrDeviceNotFound)
}

func TestSendToUnknownDeviceTypeFailsRouting(t *testing.T) {
	service, deviceRepo, notificationRepo, _ := newNotificationServiceForTest()

	// Устройство без уточненного типа: маршрутизация должна упасть,
	// а не угадывать коллекцию
	deviceRepo.On("FindByID", mock.Anything, "dev1").Return(models.Device{
		DeviceID:   "dev1",
		DeviceType: models.DeviceTypeUnknown,
	}, nil)

	_, err := service.Send(context.Background(), SendInput{
		TargetID: "dev1",
		Title:    "t",
		Body:     "b",
		Type:     models.NotificationTypeLimitSet,
	})

	assert.ErrorIs(t, err, models.ErrUnknownAudience)
	notificationRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestSendSOSWithoutLocation(t *testing.T) {
	service, deviceRepo, notificationRepo, _ := newNotificationServiceForTest()

	deviceRepo.On("FindByID", mock.Anything, "c1").Return(models.Device{
		DeviceID:   "c1",
		DeviceType: models.DeviceTypeChild,
		LinkedTo:   "p1",
	}, nil)
	deviceRepo.On("FindByID", mock.Anything, "p1").Return(models.Device{
		DeviceID:   "p1",
		DeviceType: models.DeviceTypeParent,
	}, nil)

	notificationRepo.On("Save", mock.Anything, models.AudienceParent, mock.MatchedBy(func(n models.Notification) bool {
		// Без координат тело явно говорит, что позиции нет
		return n.UserID == "p1" && n.FromChildID == "c1" &&
			n.Type == models.NotificationTypeSOS && n.Body == "Your child needs help! Location unavailable."
	})).Return(nil)

	result, err := service.SendSOS(context.Background(), "c1", nil)

	assert.NoError(t, err)
	assert.Equal(t, models.AudienceParent, result.Audience)
	notificationRepo.AssertExpectations(t)
}

func TestSendSOSUnlinkedChild(t *testing.T) {
	service, deviceRepo, _, _ := newNotificationServiceForTest()

	deviceRepo.On("FindByID", mock.Anything, "c1").Return(models.Device{
		DeviceID:   "c1",
		DeviceType: models.DeviceTypeChild,
	}, nil)

	_, err := service.SendSOS(context.Background(), "c1", nil)

	assert.ErrorIs(t, err, ErrPeerNotLinked)
}

func TestUnreadCountQueriesLog(t *testing.T) {
	service, _, notificationRepo, _ := newNotificationServiceForTest()

	notificationRepo.On("CountUnread", mock.Anything, models.AudienceChild, "child1").Return(3, nil)

	count, err := service.UnreadCount(context.Background(), models.AudienceChild, "child1")

	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestMarkAllReadBatchesSnapshot(t *testing.T) {
	service, _, notificationRepo, _ := newNotificationServiceForTest()

	unread := []models.Notification{
		{NotificationID: "n1", UserID: "p1"},
		{NotificationID: "n2", UserID: "p1"},
	}
	notificationRepo.On("FindUnreadByUser", mock.Anything, models.AudienceParent, "p1").Return(unread, nil)
	notificationRepo.On("MarkManyRead", mock.Anything, models.AudienceParent, []string{"n1", "n2"}, mock.Anything).Return(nil)

	count, err := service.MarkAllRead(context.Background(), models.AudienceParent, "p1")

	assert.NoError(t, err)
	assert.Equal(t, 2, count)
	notificationRepo.AssertExpectations(t)
}

func TestCleanupKeepsThirtyNewest(t *testing.T) {
	service, _, notificationRepo, _ := newNotificationServiceForTest()

	// 35 уведомлений, самые старые в начале
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	all := make([]models.Notification, 0, 35)
	for i := 0; i < 35; i++ {
		all = append(all, models.Notification{
			NotificationID: "n" + strconv.Itoa(i),
			UserID:         "p1",
			Timestamp:      base.Add(time.Duration(i) * time.Minute),
		})
	}

	notificationRepo.On("FindByUser", mock.Anything, models.AudienceParent, "p1").Return(all, nil)
	notificationRepo.On("DeleteMany", mock.Anything, models.AudienceParent, mock.MatchedBy(func(ids []string) bool {
		if len(ids) != 5 {
			return false
		}
		// Удаляются ровно пять самых старых: n0..n4
		expected := map[string]bool{"n0": true, "n1": true, "n2": true, "n3": true, "n4": true}
		for _, id := range ids {
			if !expected[id] {
				return false
			}
		}
		return true
	})).Return(nil)

	deleted, err := service.Cleanup(context.Background(), models.AudienceParent, "p1")

	assert.NoError(t, err)
	assert.Equal(t, 5, deleted)
	notificationRepo.AssertExpectations(t)
}

func TestCleanupIsIdempotentBelowRetention(t *testing.T) {
	service, _, notificationRepo, _ := newNotificationServiceForTest()

	all := []models.Notification{
		{NotificationID: "n1", UserID: "p1", Timestamp: time.Now()},
	}
	notificationRepo.On("FindByUser", mock.Anything, models.AudienceParent, "p1").Return(all, nil)

	deleted, err := service.Cleanup(context.Background(), models.AudienceParent, "p1")

	assert.NoError(t, err)
	assert.Equal(t, 0, deleted)
	notificationRepo.AssertNotCalled(t, "DeleteMany", mock.Anything, mock.Anything, mock.Anything)
}
