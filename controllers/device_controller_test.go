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

// MockDeviceService реализует интерфейс DeviceServiceInterface для тестирования
type MockDeviceService struct {
	mock.Mock
}

func (m *MockDeviceService) Register(ctx context.Context, input services.RegisterInput) (models.Device, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(models.Device), args.Error(1)
}

func (m *MockDeviceService) Link(ctx context.Context, parentID, childID string) (models.DeviceLink, error) {
	args := m.Called(ctx, parentID, childID)
	return args.Get(0).(models.DeviceLink), args.Error(1)
}

func (m *MockDeviceService) Unlink(ctx context.Context, parentID, childID string) error {
	args := m.Called(ctx, parentID, childID)
	return args.Error(0)
}

func (m *MockDeviceService) ResolvePeer(ctx context.Context, deviceID string) (string, error) {
	args := m.Called(ctx, deviceID)
	return args.String(0), args.Error(1)
}

func (m *MockDeviceService) GetDevice(ctx context.Context, deviceID string) (models.Device, error) {
	args := m.Called(ctx, deviceID)
	return args.Get(0).(models.Device), args.Error(1)
}

func (m *MockDeviceService) RecordLogin(ctx context.Context, deviceID, platform, appVersion string) (models.DeviceLogin, error) {
	args := m.Called(ctx, deviceID, platform, appVersion)
	return args.Get(0).(models.DeviceLogin), args.Error(1)
}

// Настройка роутера для тестов
func setupDeviceRouter(service *MockDeviceService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	SetDeviceService(service)

	r := gin.New()
	r.POST("/devices/register", RegisterDevice)
	r.POST("/devices/link", LinkDevices)
	r.GET("/devices/:device_id/peer", GetPeer)
	return r
}

func TestRegisterDeviceEndpoint(t *testing.T) {
	mockService := new(MockDeviceService)
	r := setupDeviceRouter(mockService)

	mockService.On("Register", mock.Anything, services.RegisterInput{
		DeviceID:   "dev1",
		DeviceType: "child",
		PushToken:  "tok-1",
	}).Return(models.Device{DeviceID: "dev1", DeviceType: models.DeviceTypeChild}, nil)

	body, _ := json.Marshal(gin.H{"deviceId": "dev1", "deviceType": "child", "pushToken": "tok-1"})
	req := httptest.NewRequest(http.MethodPost, "/devices/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestRegisterDeviceMissingID(t *testing.T) {
	mockService := new(MockDeviceService)
	r := setupDeviceRouter(mockService)

	// Без deviceId биндинг падает еще до сервиса
	body, _ := json.Marshal(gin.H{"deviceType": "child"})
	req := httptest.NewRequest(http.MethodPost, "/devices/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestLinkDevicesEndpoint(t *testing.T) {
	mockService := new(MockDeviceService)
	r := setupDeviceRouter(mockService)

	mockService.On("Link", mock.Anything, "p1", "c1").Return(models.DeviceLink{
		LinkID:   "link-1",
		ParentID: "p1",
		ChildID:  "c1",
	}, nil)

	body, _ := json.Marshal(gin.H{"parentId": "p1", "childId": "c1"})
	req := httptest.NewRequest(http.MethodPost, "/devices/link", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data models.DeviceLink `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "p1", response.Data.ParentID)
	assert.Equal(t, "c1", response.Data.ChildID)
}

func TestGetPeerUnknownDevice(t *testing.T) {
	mockService := new(MockDeviceService)
	r := setupDeviceRouter(mockService)

	mockService.On("ResolvePeer", mock.Anything, "ghost").Return("", services.ErrDeviceNotFound)

	req := httptest.NewRequest(http.MethodGet, "/devices/ghost/peer", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
