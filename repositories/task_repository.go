package repositories

import (
	"context"

	"GuardianMobile/models"
)

type TaskRepository interface {
	Save(ctx context.Context, task models.Task) error
	FindByID(ctx context.Context, taskID string) (models.Task, error)
	FindByChild(ctx context.Context, childID string) ([]models.Task, error)
	FindByParent(ctx context.Context, parentID string) ([]models.Task, error)
	Delete(ctx context.Context, taskID string) error
}
