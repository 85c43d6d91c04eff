package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"GuardianMobile/models"
	"GuardianMobile/services"
)

// MockNotificationService реализует интерфейс NotificationServiceInterface
// для тестирования
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Send(ctx context.Context, input services.SendInput) (services.SendResult, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(services.SendResult), args.Error(1)
}

func (m *MockNotificationService) SendSOS(ctx context.Context, childID string, loc *models.Location) (services.SendResult, error) {
	args := m.Called(ctx, childID, loc)
	return args.Get(0).(services.SendResult), args.Error(1)
}

func (m *MockNotificationService) SendGeofenceAlert(ctx context.Context, childID, zoneName, event string, loc *models.Location) (services.SendResult, error) {
	args := m.Called(ctx, childID, zoneName, event, loc)
	return args.Get(0).(services.SendResult), args.Error(1)
}

func (m *MockNotificationService) SendBatteryLow(ctx context.Context, childID string, level int) (services.SendResult, error) {
	args := m.Called(ctx, childID, level)
	return args.Get(0).(services.SendResult), args.Error(1)
}

func (m *MockNotificationService) SendAppInstalled(ctx context.Context, childID, appName, packageName string) (services.SendResult, error) {
	args := m.Called(ctx, childID, appName, packageName)
	return args.Get(0).(services.SendResult), args.Error(1)
}

func (m *MockNotificationService) SendLimitSet(ctx context.Context, parentID, appName string, limitMinutes *int) (services.SendResult, error) {
	args := m.Called(ctx, parentID, appName, limitMinutes)
	return args.Get(0).(services.SendResult), args.Error(1)
}

func (m *MockNotificationService) SendAppBlocked(ctx context.Context, parentID, appName string, blocked bool) (services.SendResult, error) {
	args := m.Called(ctx, parentID, appName, blocked)
	return args.Get(0).(services.SendResult), args.Error(1)
}

func (m *MockNotificationService) SendDeviceLock(ctx context.Context, parentID string, lock bool) (services.SendResult, error) {
	args := m.Called(ctx, parentID, lock)
	return args.Get(0).(services.SendResult), args.Error(1)
}

func (m *MockNotificationService) MarkRead(ctx context.Context, audience models.Audience, notificationID string) error {
	args := m.Called(ctx, audience, notificationID)
	return args.Error(0)
}

func (m *MockNotificationService) MarkAllRead(ctx context.Context, audience models.Audience, userID string) (int, error) {
	args := m.Called(ctx, audience, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationService) UnreadCount(ctx context.Context, audience models.Audience, userID string) (int, error) {
	args := m.Called(ctx, audience, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationService) ListNotifications(ctx context.Context, audience models.Audience, userID string) ([]models.Notification, error) {
	args := m.Called(ctx, audience, userID)
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MockNotificationService) Cleanup(ctx context.Context, audience models.Audience, userID string) (int, error) {
	args := m.Called(ctx, audience, userID)
	return args.Int(0), args.Error(1)
}

// Настройка роутера для тестов
func setupNotificationRouter(service *MockNotificationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	SetNotificationService(service)

	r := gin.New()
	r.POST("/notifications/send", SendNotification)
	r.POST("/alerts/sos", SendSOSAlert)
	r.GET("/notifications/:audience/user/:user_id/unread", GetUnreadCount)
	r.DELETE("/notifications/:audience/user/:user_id/cleanup", CleanupNotifications)
	return r
}

func TestSendNotificationEndpoint(t *testing.T) {
	mockService := new(MockNotificationService)
	r := setupNotificationRouter(mockService)

	mockService.On("Send", mock.Anything, mock.MatchedBy(func(input services.SendInput) bool {
		return input.TargetID == "child1" && input.Type == "limit_set" && input.FromID == "parent1"
	})).Return(services.SendResult{
		NotificationID: "n-1",
		Audience:       models.AudienceChild,
		Delivery:       services.DeliverySkipped,
	}, nil)

	body, _ := json.Marshal(gin.H{
		"targetId": "child1",
		"title":    "⏱ Limit",
		"body":     "TikTok capped",
		"type":     "limit_set",
		"data":     gin.H{"app": "TikTok", "limit": "60"},
		"priority": "normal",
		"fromId":   "parent1",
	})
	req := httptest.NewRequest(http.MethodPost, "/notifications/send", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data services.SendResult `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "n-1", response.Data.NotificationID)
	// Отсутствие push-токена не делает отправку ошибкой
	assert.Equal(t, services.DeliverySkipped, response.Data.Delivery)
	assert.Empty(t, response.Data.PushID)
}

func TestSendSOSAlertEndpoint(t *testing.T) {
	mockService := new(MockNotificationService)
	r := setupNotificationRouter(mockService)

	mockService.On("SendSOS", mock.Anything, "c1", (*models.Location)(nil)).Return(services.SendResult{
		NotificationID: "n-sos",
		Audience:       models.AudienceParent,
		Delivery:       services.DeliveryDelivered,
		PushID:         "push-1",
	}, nil)

	// SOS без координат: hasLocation не выставлен
	body, _ := json.Marshal(gin.H{"childId": "c1"})
	req := httptest.NewRequest(http.MethodPost, "/alerts/sos", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestSendSOSAlertUnlinkedChild(t *testing.T) {
	mockService := new(MockNotificationService)
	r := setupNotificationRouter(mockService)

	mockService.On("SendSOS", mock.Anything, "c1", (*models.Location)(nil)).
		Return(services.SendResult{}, services.ErrPeerNotLinked)

	body, _ := json.Marshal(gin.H{"childId": "c1"})
	req := httptest.NewRequest(http.MethodPost, "/alerts/sos", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetUnreadCountEndpoint(t *testing.T) {
	mockService := new(MockNotificationService)
	r := setupNotificationRouter(mockService)

	mockService.On("UnreadCount", mock.Anything, models.AudienceChild, "child1").Return(1, nil)

	req := httptest.NewRequest(http.MethodGet, "/notifications/child/user/child1/unread", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		UnreadCount int `json:"unreadCount"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 1, response.UnreadCount)
}

func TestInvalidAudienceRejected(t *testing.T) {
	mockService := new(MockNotificationService)
	r := setupNotificationRouter(mockService)

	req := httptest.NewRequest(http.MethodGet, "/notifications/unknown/user/u1/unread", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// Аудитория бывает только parent или child
	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "UnreadCount", mock.Anything, mock.Anything, mock.Anything)
}

func TestCleanupNotificationsEndpoint(t *testing.T) {
	mockService := new(MockNotificationService)
	r := setupNotificationRouter(mockService)

	mockService.On("Cleanup", mock.Anything, models.AudienceParent, "p1").Return(5, nil)

	req := httptest.NewRequest(http.MethodDelete, "/notifications/parent/user/p1/cleanup", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		DeletedCount int `json:"deletedCount"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 5, response.DeletedCount)
}
