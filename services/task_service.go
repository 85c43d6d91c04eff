package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"GuardianMobile/models"
	"GuardianMobile/repositories"
)

// TaskNotifier уведомления о жизненном цикле задач, отправка
// негарантированная.
type TaskNotifier interface {
	NotifyTaskAssigned(ctx context.Context, task models.Task)
	NotifyTaskCompleted(ctx context.Context, task models.Task)
}

type TaskService struct {
	TaskRepo   repositories.TaskRepository
	DeviceRepo repositories.DeviceRepository
	Notifier   TaskNotifier
}

func NewTaskService(taskRepo repositories.TaskRepository, deviceRepo repositories.DeviceRepository, notifier TaskNotifier) *TaskService {
	return &TaskService{TaskRepo: taskRepo, DeviceRepo: deviceRepo, Notifier: notifier}
}

// Create создает задачу для связанного ребенка и уведомляет его.
// Задача сохраняется даже если уведомление не дошло.
func (s *TaskService) Create(ctx context.Context, parentID, title, description, reward string) (models.Task, error) {
	if title == "" {
		return models.Task{}, ErrTaskTitleRequired
	}

	parent, err := s.DeviceRepo.FindByID(ctx, parentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.Task{}, fmt.Errorf("device %s: %w", parentID, ErrDeviceNotFound)
		}
		return models.Task{}, fmt.Errorf("reading device %s: %w", parentID, err)
	}
	if parent.LinkedTo == "" {
		return models.Task{}, fmt.Errorf("device %s: %w", parentID, ErrPeerNotLinked)
	}

	task := models.Task{
		TaskID:      uuid.New().String(),
		ParentID:    parentID,
		ChildID:     parent.LinkedTo,
		Title:       title,
		Description: description,
		Reward:      reward,
		Status:      models.TaskStatusPending,
		CreatedAt:   time.Now(),
	}

	if err := s.TaskRepo.Save(ctx, task); err != nil {
		return models.Task{}, fmt.Errorf("saving task: %w", err)
	}

	s.Notifier.NotifyTaskAssigned(ctx, task)
	return task, nil
}

// Complete переводит задачу в completed. Переход односторонний,
// повторное выполнение уже выполненной задачи ничего не меняет.
func (s *TaskService) Complete(ctx context.Context, childID, taskID string) (models.Task, error) {
	task, err := s.requireTask(ctx, taskID)
	if err != nil {
		return models.Task{}, err
	}
	if task.ChildID != childID {
		return models.Task{}, fmt.Errorf("task %s: %w", taskID, ErrTaskNotOwned)
	}
	if task.Status == models.TaskStatusCompleted {
		return task, nil
	}

	now := time.Now()
	task.Status = models.TaskStatusCompleted
	task.CompletedAt = &now

	if err := s.TaskRepo.Save(ctx, task); err != nil {
		return models.Task{}, fmt.Errorf("saving task %s: %w", taskID, err)
	}

	s.Notifier.NotifyTaskCompleted(ctx, task)
	return task, nil
}

func (s *TaskService) ListForChild(ctx context.Context, childID string) ([]models.Task, error) {
	tasks, err := s.TaskRepo.FindByChild(ctx, childID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks for child %s: %w", childID, err)
	}
	sortTasks(tasks)
	return tasks, nil
}

func (s *TaskService) ListForParent(ctx context.Context, parentID string) ([]models.Task, error) {
	tasks, err := s.TaskRepo.FindByParent(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks for parent %s: %w", parentID, err)
	}
	sortTasks(tasks)
	return tasks, nil
}

// Delete удаляет задачу, только владелец-родитель может это сделать.
func (s *TaskService) Delete(ctx context.Context, parentID, taskID string) error {
	task, err := s.requireTask(ctx, taskID)
	if err != nil {
		return err
	}
	if task.ParentID != parentID {
		return fmt.Errorf("task %s: %w", taskID, ErrTaskNotOwned)
	}

	if err := s.TaskRepo.Delete(ctx, taskID); err != nil {
		return fmt.Errorf("deleting task %s: %w", taskID, err)
	}
	return nil
}

func (s *TaskService) requireTask(ctx context.Context, taskID string) (models.Task, error) {
	task, err := s.TaskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.Task{}, fmt.Errorf("task %s: %w", taskID, ErrTaskNotFound)
		}
		return models.Task{}, fmt.Errorf("reading task %s: %w", taskID, err)
	}
	return task, nil
}

func sortTasks(tasks []models.Task) {
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
}
