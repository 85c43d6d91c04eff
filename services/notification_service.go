package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"GuardianMobile/models"
	"GuardianMobile/repositories"
)

// Журнал уведомлений храним ограниченным: при очистке остаются
// только последние notificationRetentionCount записей пользователя.
const notificationRetentionCount = 30

const (
	DeliveryDelivered = "delivered"
	DeliverySkipped   = "skipped"
	DeliveryFailed    = "failed"
)

type SendInput struct {
	TargetID string
	Title    string
	Body     string
	Type     string
	Data     map[string]string
	Priority string
	FromID   string
}

// SendResult два независимых исхода одной отправки: запись в журнал
// (обязательная) и push-доставка (негарантированная). Успех записи
// без push это не ошибка, а штатный исход.
type SendResult struct {
	NotificationID string          `json:"notificationId"`
	Audience       models.Audience `json:"audience"`
	Delivery       string          `json:"delivery"`
	PushID         string          `json:"pushId,omitempty"`
	Reason         string          `json:"reason,omitempty"`
}

// NotificationService сервис маршрутизации уведомлений между
// родительскими и детскими устройствами
type NotificationService struct {
	DeviceRepo       repositories.DeviceRepository
	NotificationRepo repositories.NotificationRepository
	Push             PushSender
}

// NewNotificationService создает новый сервис уведомлений
func NewNotificationService(
	deviceRepo repositories.DeviceRepository,
	notificationRepo repositories.NotificationRepository,
	push PushSender,
) *NotificationService {
	return &NotificationService{
		DeviceRepo:       deviceRepo,
		NotificationRepo: notificationRepo,
		Push:             push,
	}
}

// Send персистит уведомление в коллекцию получателя и после этого
// пытается доставить push. Ошибка записи фатальна, ошибка push нет:
// получатель прочитает уведомление из журнала при следующем опросе.
func (s *NotificationService) Send(ctx context.Context, input SendInput) (SendResult, error) {
	target, err := s.DeviceRepo.FindByID(ctx, input.TargetID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return SendResult{}, fmt.Errorf("send to %s: %w", input.TargetID, ErrDeviceNotFound)
		}
		return SendResult{}, fmt.Errorf("send to %s: %w", input.TargetID, err)
	}

	audience, err := models.AudienceForDeviceType(target.DeviceType)
	if err != nil {
		return SendResult{}, fmt.Errorf("send to %s: %w", input.TargetID, err)
	}

	notification := models.Notification{
		NotificationID: uuid.New().String(),
		UserID:         input.TargetID,
		Title:          input.Title,
		Body:           input.Body,
		Type:           input.Type,
		Read:           false,
		Priority:       models.NormalizePriority(input.Priority),
		Data:           input.Data,
		Timestamp:      time.Now(),
	}

	// Отправителя выводим из направления: уведомление ребенку может
	// прийти только от родителя и наоборот.
	switch audience {
	case models.AudienceChild:
		notification.FromParentID = input.FromID
	case models.AudienceParent:
		notification.FromChildID = input.FromID
	}

	if err := s.NotificationRepo.Save(ctx, audience, notification); err != nil {
		return SendResult{}, fmt.Errorf("persisting notification for %s: %w", input.TargetID, err)
	}

	result := SendResult{
		NotificationID: notification.NotificationID,
		Audience:       audience,
	}

	if target.PushToken == "" {
		result.Delivery = DeliverySkipped
		result.Reason = "no push token"
		return result, nil
	}

	pushID, err := s.Push.Send(ctx, target.PushToken, notification.Title, notification.Body, s.pushData(notification), notification.Priority)
	if err != nil {
		log.Printf("[Dispatch] Push не доставлен получателю %s: %v", input.TargetID, err)
		result.Delivery = DeliveryFailed
		result.Reason = err.Error()
		return result, nil
	}

	result.Delivery = DeliveryDelivered
	result.PushID = pushID
	return result, nil
}

// pushData собирает data-payload для FCM: пользовательские данные
// плюс служебные ключи, по которым клиент открывает нужный экран.
func (s *NotificationService) pushData(n models.Notification) map[string]string {
	data := make(map[string]string, len(n.Data)+3)
	for k, v := range n.Data {
		data[k] = v
	}
	data["notificationId"] = n.NotificationID
	data["type"] = n.Type
	data["priority"] = n.Priority
	return data
}

func (s *NotificationService) peerOf(ctx context.Context, deviceID string) (string, error) {
	device, err := s.DeviceRepo.FindByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", fmt.Errorf("device %s: %w", deviceID, ErrDeviceNotFound)
		}
		return "", fmt.Errorf("reading device %s: %w", deviceID, err)
	}
	if device.LinkedTo == "" {
		return "", fmt.Errorf("device %s: %w", deviceID, ErrPeerNotLinked)
	}
	return device.LinkedTo, nil
}

// SendSOS отправляет тревогу родителю. Если позиции нет, тело
// уведомления явно говорит об этом, а не остается пустым.
func (s *NotificationService) SendSOS(ctx context.Context, childID string, loc *models.Location) (SendResult, error) {
	parentID, err := s.peerOf(ctx, childID)
	if err != nil {
		return SendResult{}, err
	}

	body := "Your child needs help! Location unavailable."
	data := map[string]string{}
	if loc != nil {
		body = fmt.Sprintf("Your child needs help! Location: %.6f, %.6f", loc.Latitude, loc.Longitude)
		data["latitude"] = strconv.FormatFloat(loc.Latitude, 'f', 6, 64)
		data["longitude"] = strconv.FormatFloat(loc.Longitude, 'f', 6, 64)
	}

	return s.Send(ctx, SendInput{
		TargetID: parentID,
		Title:    "SOS Alert",
		Body:     body,
		Type:     models.NotificationTypeSOS,
		Data:     data,
		Priority: models.PriorityHigh,
		FromID:   childID,
	})
}

// SendGeofenceAlert уведомляет родителя о входе или выходе из геозоны.
func (s *NotificationService) SendGeofenceAlert(ctx context.Context, childID, zoneName, event string, loc *models.Location) (SendResult, error) {
	parentID, err := s.peerOf(ctx, childID)
	if err != nil {
		return SendResult{}, err
	}

	verb := "entered"
	if event == "exit" {
		verb = "left"
	}

	data := map[string]string{
		"zone":  zoneName,
		"event": event,
	}
	if loc != nil {
		data["latitude"] = strconv.FormatFloat(loc.Latitude, 'f', 6, 64)
		data["longitude"] = strconv.FormatFloat(loc.Longitude, 'f', 6, 64)
	}

	return s.Send(ctx, SendInput{
		TargetID: parentID,
		Title:    "Geofence Alert",
		Body:     fmt.Sprintf("Your child has %s the zone %q", verb, zoneName),
		Type:     models.NotificationTypeGeofenceAlert,
		Data:     data,
		Priority: models.PriorityHigh,
		FromID:   childID,
	})
}

// SendBatteryLow уведомляет родителя о низком заряде детского устройства.
func (s *NotificationService) SendBatteryLow(ctx context.Context, childID string, level int) (SendResult, error) {
	parentID, err := s.peerOf(ctx, childID)
	if err != nil {
		return SendResult{}, err
	}

	return s.Send(ctx, SendInput{
		TargetID: parentID,
		Title:    "Battery Low",
		Body:     fmt.Sprintf("Your child's phone battery is at %d%%", level),
		Type:     models.NotificationTypeBatteryLow,
		Data:     map[string]string{"batteryLevel": strconv.Itoa(level)},
		Priority: models.PriorityNormal,
		FromID:   childID,
	})
}

// SendAppInstalled уведомляет родителя об установке нового приложения.
func (s *NotificationService) SendAppInstalled(ctx context.Context, childID, appName, packageName string) (SendResult, error) {
	parentID, err := s.peerOf(ctx, childID)
	if err != nil {
		return SendResult{}, err
	}

	return s.Send(ctx, SendInput{
		TargetID: parentID,
		Title:    "New App Installed",
		Body:     fmt.Sprintf("%s was installed on your child's device", appName),
		Type:     models.NotificationTypeAppInstalled,
		Data: map[string]string{
			"appName":     appName,
			"packageName": packageName,
		},
		Priority: models.PriorityNormal,
		FromID:   childID,
	})
}

// SendAppLimitExceeded уведомляет родителя, что приложение уперлось
// в дневной лимит.
func (s *NotificationService) SendAppLimitExceeded(ctx context.Context, childID, appName string, usedMinutes, limitMinutes int) (SendResult, error) {
	parentID, err := s.peerOf(ctx, childID)
	if err != nil {
		return SendResult{}, err
	}

	return s.Send(ctx, SendInput{
		TargetID: parentID,
		Title:    "App Limit Reached",
		Body:     fmt.Sprintf("%s exceeded its daily limit (%d of %d minutes)", appName, usedMinutes, limitMinutes),
		Type:     models.NotificationTypeAppLimitExceeded,
		Data: map[string]string{
			"appName":      appName,
			"usedMinutes":  strconv.Itoa(usedMinutes),
			"limitMinutes": strconv.Itoa(limitMinutes),
		},
		Priority: models.PriorityNormal,
		FromID:   childID,
	})
}

// SendScreenTimeExceeded уведомляет родителя о превышении общего
// экранного времени за день.
func (s *NotificationService) SendScreenTimeExceeded(ctx context.Context, childID string, totalMinutes, limitMinutes int) (SendResult, error) {
	parentID, err := s.peerOf(ctx, childID)
	if err != nil {
		return SendResult{}, err
	}

	return s.Send(ctx, SendInput{
		TargetID: parentID,
		Title:    "Screen Time Limit Reached",
		Body:     fmt.Sprintf("Daily screen time exceeded (%d of %d minutes)", totalMinutes, limitMinutes),
		Type:     models.NotificationTypeScreenTimeExceeded,
		Data: map[string]string{
			"totalMinutes": strconv.Itoa(totalMinutes),
			"limitMinutes": strconv.Itoa(limitMinutes),
		},
		Priority: models.PriorityNormal,
		FromID:   childID,
	})
}

// SendLimitSet сообщает ребенку о новом лимите приложения.
func (s *NotificationService) SendLimitSet(ctx context.Context, parentID, appName string, limitMinutes *int) (SendResult, error) {
	childID, err := s.peerOf(ctx, parentID)
	if err != nil {
		return SendResult{}, err
	}
	return s.sendLimitSet(ctx, childID, parentID, appName, limitMinutes)
}

func (s *NotificationService) sendLimitSet(ctx context.Context, childID, parentID, appName string, limitMinutes *int) (SendResult, error) {
	body := fmt.Sprintf("Daily limit for %s removed", appName)
	data := map[string]string{"appName": appName}
	if limitMinutes != nil {
		body = fmt.Sprintf("Daily limit for %s is now %d minutes", appName, *limitMinutes)
		data["limitMinutes"] = strconv.Itoa(*limitMinutes)
	}

	return s.Send(ctx, SendInput{
		TargetID: childID,
		Title:    "App Limit Updated",
		Body:     body,
		Type:     models.NotificationTypeLimitSet,
		Data:     data,
		Priority: models.PriorityNormal,
		FromID:   parentID,
	})
}

// SendAppBlocked сообщает ребенку о блокировке или разблокировке приложения.
func (s *NotificationService) SendAppBlocked(ctx context.Context, parentID, appName string, blocked bool) (SendResult, error) {
	childID, err := s.peerOf(ctx, parentID)
	if err != nil {
		return SendResult{}, err
	}

	title := "App Blocked"
	body := fmt.Sprintf("%s is now blocked", appName)
	notificationType := models.NotificationTypeAppBlocked
	if !blocked {
		title = "App Unblocked"
		body = fmt.Sprintf("%s is available again", appName)
		notificationType = models.NotificationTypeAppUnblocked
	}

	return s.Send(ctx, SendInput{
		TargetID: childID,
		Title:    title,
		Body:     body,
		Type:     notificationType,
		Data:     map[string]string{"appName": appName},
		Priority: models.PriorityNormal,
		FromID:   parentID,
	})
}

// SendTaskAssigned сообщает ребенку о новой задаче.
func (s *NotificationService) SendTaskAssigned(ctx context.Context, parentID, taskID, title string) (SendResult, error) {
	childID, err := s.peerOf(ctx, parentID)
	if err != nil {
		return SendResult{}, err
	}

	return s.Send(ctx, SendInput{
		TargetID: childID,
		Title:    "New Task",
		Body:     fmt.Sprintf("You have a new task: %s", title),
		Type:     models.NotificationTypeTaskAssigned,
		Data:     map[string]string{"taskId": taskID},
		Priority: models.PriorityNormal,
		FromID:   parentID,
	})
}

// SendTaskCompleted сообщает родителю о выполненной задаче.
func (s *NotificationService) SendTaskCompleted(ctx context.Context, childID, taskID, title string) (SendResult, error) {
	parentID, err := s.peerOf(ctx, childID)
	if err != nil {
		return SendResult{}, err
	}

	return s.Send(ctx, SendInput{
		TargetID: parentID,
		Title:    "Task Completed",
		Body:     fmt.Sprintf("Task %q is completed", title),
		Type:     models.NotificationTypeTaskCompleted,
		Data:     map[string]string{"taskId": taskID},
		Priority: models.PriorityNormal,
		FromID:   childID,
	})
}

// SendDeviceLock отправляет ребенку команду блокировки или
// разблокировки устройства.
func (s *NotificationService) SendDeviceLock(ctx context.Context, parentID string, lock bool) (SendResult, error) {
	childID, err := s.peerOf(ctx, parentID)
	if err != nil {
		return SendResult{}, err
	}

	title := "Device Locked"
	body := "Your device has been locked by your parent"
	notificationType := models.NotificationTypeDeviceLock
	if !lock {
		title = "Device Unlocked"
		body = "Your device has been unlocked"
		notificationType = models.NotificationTypeDeviceUnlock
	}

	return s.Send(ctx, SendInput{
		TargetID: childID,
		Title:    title,
		Body:     body,
		Type:     notificationType,
		Priority: models.PriorityHigh,
		FromID:   parentID,
	})
}

// MarkRead помечает уведомление прочитанным.
func (s *NotificationService) MarkRead(ctx context.Context, audience models.Audience, notificationID string) error {
	if err := s.NotificationRepo.MarkRead(ctx, audience, notificationID, time.Now()); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("notification %s: %w", notificationID, ErrNotificationNotFound)
		}
		return fmt.Errorf("marking notification %s read: %w", notificationID, err)
	}
	return nil
}

// MarkAllRead помечает прочитанными все непрочитанные уведомления
// пользователя одним батчем и возвращает их количество.
func (s *NotificationService) MarkAllRead(ctx context.Context, audience models.Audience, userID string) (int, error) {
	unread, err := s.NotificationRepo.FindUnreadByUser(ctx, audience, userID)
	if err != nil {
		return 0, fmt.Errorf("listing unread for %s: %w", userID, err)
	}
	if len(unread) == 0 {
		return 0, nil
	}

	ids := make([]string, 0, len(unread))
	for _, n := range unread {
		ids = append(ids, n.NotificationID)
	}

	if err := s.NotificationRepo.MarkManyRead(ctx, audience, ids, time.Now()); err != nil {
		return 0, fmt.Errorf("marking all read for %s: %w", userID, err)
	}
	return len(ids), nil
}

// UnreadCount счетчик для бейджа, каждый раз пересчитывается по журналу.
func (s *NotificationService) UnreadCount(ctx context.Context, audience models.Audience, userID string) (int, error) {
	count, err := s.NotificationRepo.CountUnread(ctx, audience, userID)
	if err != nil {
		return 0, fmt.Errorf("counting unread for %s: %w", userID, err)
	}
	return count, nil
}

// ListNotifications возвращает журнал пользователя, новые первыми.
func (s *NotificationService) ListNotifications(ctx context.Context, audience models.Audience, userID string) ([]models.Notification, error) {
	notifications, err := s.NotificationRepo.FindByUser(ctx, audience, userID)
	if err != nil {
		return nil, fmt.Errorf("listing notifications for %s: %w", userID, err)
	}

	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].Timestamp.After(notifications[j].Timestamp)
	})
	return notifications, nil
}

// Cleanup удаляет все уведомления пользователя за пределами последних
// тридцати. Повторный вызов ничего не находит и ничего не удаляет.
func (s *NotificationService) Cleanup(ctx context.Context, audience models.Audience, userID string) (int, error) {
	notifications, err := s.NotificationRepo.FindByUser(ctx, audience, userID)
	if err != nil {
		return 0, fmt.Errorf("listing notifications for %s: %w", userID, err)
	}
	if len(notifications) <= notificationRetentionCount {
		return 0, nil
	}

	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].Timestamp.After(notifications[j].Timestamp)
	})

	victims := notifications[notificationRetentionCount:]
	ids := make([]string, 0, len(victims))
	for _, n := range victims {
		ids = append(ids, n.NotificationID)
	}

	if err := s.NotificationRepo.DeleteMany(ctx, audience, ids); err != nil {
		return 0, fmt.Errorf("cleaning up notifications for %s: %w", userID, err)
	}

	log.Printf("[Dispatch] Очистка журнала %s/%s: удалено %d уведомлений", audience, userID, len(ids))
	return len(ids), nil
}

// NotifyAppLimitChanged уведомляет устройство об изменении лимита.
// Вызывается трекером экранного времени как побочный эффект записи,
// поэтому любые ошибки проглатываются: лимит уже сохранен.
func (s *NotificationService) NotifyAppLimitChanged(ctx context.Context, deviceID, appName string, limitMinutes *int) {
	parentID, err := s.peerOf(ctx, deviceID)
	if err != nil {
		// Несвязанное устройство получает уведомление без отправителя.
		parentID = ""
	}

	if _, err := s.sendLimitSet(ctx, deviceID, parentID, appName, limitMinutes); err != nil {
		log.Printf("[Dispatch] Не удалось уведомить %s о лимите %s: %v", deviceID, appName, err)
	}
}

// NotifyScreenTimeLimitChanged уведомляет устройство об изменении
// общего лимита экранного времени.
func (s *NotificationService) NotifyScreenTimeLimitChanged(ctx context.Context, deviceID string, limitMinutes *int) {
	parentID, err := s.peerOf(ctx, deviceID)
	if err != nil {
		parentID = ""
	}

	body := "Daily screen time limit removed"
	data := map[string]string{}
	if limitMinutes != nil {
		body = fmt.Sprintf("Daily screen time limit is now %d minutes", *limitMinutes)
		data["limitMinutes"] = strconv.Itoa(*limitMinutes)
	}

	if _, err := s.Send(ctx, SendInput{
		TargetID: deviceID,
		Title:    "Screen Time Limit Updated",
		Body:     body,
		Type:     models.NotificationTypeScreenTimeLimitSet,
		Data:     data,
		Priority: models.PriorityNormal,
		FromID:   parentID,
	}); err != nil {
		log.Printf("[Dispatch] Не удалось уведомить %s об общем лимите: %v", deviceID, err)
	}
}

// NotifyAppLimitExceeded пересылает родителю факт превышения лимита.
func (s *NotificationService) NotifyAppLimitExceeded(ctx context.Context, childID, appName string, usedMinutes, limitMinutes int) {
	if _, err := s.SendAppLimitExceeded(ctx, childID, appName, usedMinutes, limitMinutes); err != nil {
		log.Printf("[Dispatch] Не удалось уведомить о превышении лимита %s на %s: %v", appName, childID, err)
	}
}

// NotifyScreenTimeExceeded пересылает родителю факт превышения
// общего экранного времени.
func (s *NotificationService) NotifyScreenTimeExceeded(ctx context.Context, childID string, totalMinutes, limitMinutes int) {
	if _, err := s.SendScreenTimeExceeded(ctx, childID, totalMinutes, limitMinutes); err != nil {
		log.Printf("[Dispatch] Не удалось уведомить о превышении экранного времени на %s: %v", childID, err)
	}
}

// NotifyTaskAssigned уведомляет ребенка о новой задаче, ошибки
// проглатываются: задача уже создана.
func (s *NotificationService) NotifyTaskAssigned(ctx context.Context, task models.Task) {
	if _, err := s.Send(ctx, SendInput{
		TargetID: task.ChildID,
		Title:    "New Task",
		Body:     fmt.Sprintf("You have a new task: %s", task.Title),
		Type:     models.NotificationTypeTaskAssigned,
		Data:     map[string]string{"taskId": task.TaskID},
		Priority: models.PriorityNormal,
		FromID:   task.ParentID,
	}); err != nil {
		log.Printf("[Dispatch] Не удалось уведомить о задаче %s: %v", task.TaskID, err)
	}
}

// NotifyTaskCompleted уведомляет родителя о выполненной задаче.
func (s *NotificationService) NotifyTaskCompleted(ctx context.Context, task models.Task) {
	if _, err := s.Send(ctx, SendInput{
		TargetID: task.ParentID,
		Title:    "Task Completed",
		Body:     fmt.Sprintf("Task %q is completed", task.Title),
		Type:     models.NotificationTypeTaskCompleted,
		Data:     map[string]string{"taskId": task.TaskID},
		Priority: models.PriorityNormal,
		FromID:   task.ChildID,
	}); err != nil {
		log.Printf("[Dispatch] Не удалось уведомить о выполнении задачи %s: %v", task.TaskID, err)
	}
}
