package impl

import (
	"context"

	"GuardianMobile/models"
	"GuardianMobile/repositories"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const tasksCollection = "tasks"

type TaskRepositoryImpl struct {
	Client *firestore.Client
}

func NewTaskRepository(client *firestore.Client) repositories.TaskRepository {
	return &TaskRepositoryImpl{Client: client}
}

func (r *TaskRepositoryImpl) Save(ctx context.Context, task models.Task) error {
	_, err := r.Client.Collection(tasksCollection).Doc(task.TaskID).Set(ctx, task)
	return err
}

func (r *TaskRepositoryImpl) FindByID(ctx context.Context, taskID string) (models.Task, error) {
	doc, err := r.Client.Collection(tasksCollection).Doc(taskID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return models.Task{}, repositories.ErrNotFound
		}
		return models.Task{}, err
	}

	var task models.Task
	if err := doc.DataTo(&task); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (r *TaskRepositoryImpl) FindByChild(ctx context.Context, childID string) ([]models.Task, error) {
	return r.findTasks(ctx, "childId", childID)
}

func (r *TaskRepositoryImpl) FindByParent(ctx context.Context, parentID string) ([]models.Task, error) {
	return r.findTasks(ctx, "parentId", parentID)
}

func (r *TaskRepositoryImpl) findTasks(ctx context.Context, field, value string) ([]models.Task, error) {
	docs, err := r.Client.Collection(tasksCollection).
		Where(field, "==", value).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	tasks := make([]models.Task, 0, len(docs))
	for _, doc := range docs {
		var task models.Task
		if err := doc.DataTo(&task); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, taskID string) error {
	_, err := r.Client.Collection(tasksCollection).Doc(taskID).Delete(ctx)
	return err
}
