package services

import (
	"context"
	"fmt"
	"log"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"golang.org/x/time/rate"

	"GuardianMobile/models"
)

// PushSender канал доставки push-уведомлений. Единственная реализация
// ходит в FCM, в тестах подменяется моком.
type PushSender interface {
	Send(ctx context.Context, token, title, body string, data map[string]string, priority string) (string, error)
}

// PushService сервис отправки push-уведомлений через FCM
type PushService struct {
	FCMClient *messaging.Client
	Limiter   *rate.Limiter
}

// NewPushService создает новый push-сервис
func NewPushService(app *firebase.App, rps float64, burst int) (*PushService, error) {
	// Инициализация клиента Firebase Cloud Messaging
	ctx := context.Background()
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("error initializing FCM client: %w", err)
	}

	return &PushService{
		FCMClient: client,
		Limiter:   rate.NewLimiter(rate.Limit(rps), burst),
	}, nil
}

// Send отправляет push-уведомление на устройство.
// Лимитер не ждет свободного слота: доставка негарантированная,
// лишние сообщения дешевле отбросить, чем блокировать запись.
func (s *PushService) Send(ctx context.Context, token, title, body string, data map[string]string, priority string) (string, error) {
	if token == "" {
		return "", fmt.Errorf("device token is empty")
	}

	if !s.Limiter.Allow() {
		log.Printf("[FCM] Превышен лимит отправки, уведомление отброшено. Title: %s", title)
		return "", ErrPushThrottled
	}

	log.Printf("[FCM] Отправка уведомления. Title: %s, Priority: %s", title, priority)

	message := &messaging.Message{
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data:  data,
		Token: token,
		Android: &messaging.AndroidConfig{
			Priority: androidPriority(priority),
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority": apnsPriority(priority),
			},
		},
	}

	resp, err := s.FCMClient.Send(ctx, message)
	if err != nil {
		// Временные ошибки FCM логируем отдельно, ретраев здесь нет:
		// получатель все равно увидит уведомление из журнала.
		if messaging.IsUnavailable(err) || messaging.IsInternal(err) || messaging.IsQuotaExceeded(err) {
			log.Printf("[FCM] Временная ошибка доставки: %v", err)
		} else {
			log.Printf("[FCM] Ошибка отправки уведомления: %v", err)
		}
		return "", err
	}

	log.Printf("[FCM] Уведомление успешно отправлено. ID: %s, Title: %s", resp, title)
	return resp, nil
}

func androidPriority(priority string) string {
	if priority == models.PriorityHigh {
		return "high"
	}
	return "normal"
}

func apnsPriority(priority string) string {
	if priority == models.PriorityHigh {
		return "10"
	}
	return "5"
}
