package repositories

import (
	"context"
	"time"

	"GuardianMobile/models"
)

type NotificationRepository interface {
	Save(ctx context.Context, audience models.Audience, n models.Notification) error
	FindByID(ctx context.Context, audience models.Audience, notificationID string) (models.Notification, error)
	FindByUser(ctx context.Context, audience models.Audience, userID string) ([]models.Notification, error)
	FindUnreadByUser(ctx context.Context, audience models.Audience, userID string) ([]models.Notification, error)
	CountUnread(ctx context.Context, audience models.Audience, userID string) (int, error)
	MarkRead(ctx context.Context, audience models.Audience, notificationID string, readAt time.Time) error
	MarkManyRead(ctx context.Context, audience models.Audience, notificationIDs []string, readAt time.Time) error
	DeleteMany(ctx context.Context, audience models.Audience, notificationIDs []string) error
}
