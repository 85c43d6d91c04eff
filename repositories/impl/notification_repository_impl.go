package impl

import (
	"context"
	"time"

	"GuardianMobile/models"
	"GuardianMobile/repositories"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	parentNotificationsCollection = "parent_notifications"
	childNotificationsCollection  = "child_notifications"
)

type NotificationRepositoryImpl struct {
	Client *firestore.Client
}

func NewNotificationRepository(client *firestore.Client) repositories.NotificationRepository {
	return &NotificationRepositoryImpl{Client: client}
}

// collectionFor единственное место, где аудитория превращается в имя коллекции.
func (r *NotificationRepositoryImpl) collectionFor(audience models.Audience) *firestore.CollectionRef {
	if audience == models.AudienceParent {
		return r.Client.Collection(parentNotificationsCollection)
	}
	return r.Client.Collection(childNotificationsCollection)
}

func (r *NotificationRepositoryImpl) Save(ctx context.Context, audience models.Audience, n models.Notification) error {
	_, err := r.collectionFor(audience).Doc(n.NotificationID).Set(ctx, n)
	return err
}

func (r *NotificationRepositoryImpl) FindByID(ctx context.Context, audience models.Audience, notificationID string) (models.Notification, error) {
	doc, err := r.collectionFor(audience).Doc(notificationID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return models.Notification{}, repositories.ErrNotFound
		}
		return models.Notification{}, err
	}

	var n models.Notification
	if err := doc.DataTo(&n); err != nil {
		return models.Notification{}, err
	}
	return n, nil
}

func (r *NotificationRepositoryImpl) FindByUser(ctx context.Context, audience models.Audience, userID string) ([]models.Notification, error) {
	docs, err := r.collectionFor(audience).
		Where("userId", "==", userID).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	return decodeNotifications(docs)
}

func (r *NotificationRepositoryImpl) FindUnreadByUser(ctx context.Context, audience models.Audience, userID string) ([]models.Notification, error) {
	docs, err := r.collectionFor(audience).
		Where("userId", "==", userID).
		Where("read", "==", false).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	return decodeNotifications(docs)
}

func (r *NotificationRepositoryImpl) CountUnread(ctx context.Context, audience models.Audience, userID string) (int, error) {
	docs, err := r.collectionFor(audience).
		Where("userId", "==", userID).
		Where("read", "==", false).
		Documents(ctx).GetAll()
	if err != nil {
		return 0, err
	}
	return len(docs), nil
}

func (r *NotificationRepositoryImpl) MarkRead(ctx context.Context, audience models.Audience, notificationID string, readAt time.Time) error {
	// Update падает с NotFound на отсутствующем документе,
	// в отличие от Set с merge, который молча создал бы его.
	_, err := r.collectionFor(audience).Doc(notificationID).Update(ctx, []firestore.Update{
		{Path: "read", Value: true},
		{Path: "readAt", Value: readAt},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repositories.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *NotificationRepositoryImpl) MarkManyRead(ctx context.Context, audience models.Audience, notificationIDs []string, readAt time.Time) error {
	if len(notificationIDs) == 0 {
		return nil
	}

	batch := r.Client.Batch()
	for _, id := range notificationIDs {
		batch.Set(r.collectionFor(audience).Doc(id), map[string]interface{}{
			"read":   true,
			"readAt": readAt,
		}, firestore.MergeAll)
	}
	_, err := batch.Commit(ctx)
	return err
}

func (r *NotificationRepositoryImpl) DeleteMany(ctx context.Context, audience models.Audience, notificationIDs []string) error {
	if len(notificationIDs) == 0 {
		return nil
	}

	batch := r.Client.Batch()
	for _, id := range notificationIDs {
		batch.Delete(r.collectionFor(audience).Doc(id))
	}
	_, err := batch.Commit(ctx)
	return err
}

func decodeNotifications(docs []*firestore.DocumentSnapshot) ([]models.Notification, error) {
	notifications := make([]models.Notification, 0, len(docs))
	for _, doc := range docs {
		var n models.Notification
		if err := doc.DataTo(&n); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}
