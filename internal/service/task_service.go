package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"taskboard/internal/model"
	"taskboard/internal/repository"
)

// TaskUpdate carries the optional fields of a partial task update. A nil
// field is left unchanged; assignment cannot be cleared through update.
type TaskUpdate struct {
	Title       *string
	Description *string
	ColumnID    *uint
	AssigneeID  *uint
	Priority    *string
}

// TaskService exposes task operations including the per-column and per-board
// listings.
type TaskService interface {
	GetTask(ctx context.Context, id uint) (*model.Task, error)
	ListTasks(ctx context.Context) ([]model.Task, error)
	ListTasksByColumn(ctx context.Context, columnID uint) ([]model.Task, error)
	ListTasksByBoard(ctx context.Context, boardID uint) ([]model.Task, error)
	CreateTask(ctx context.Context, task *model.Task) (*model.Task, error)
	UpdateTask(ctx context.Context, id uint, update TaskUpdate) (*model.Task, error)
	DeleteTask(ctx context.Context, id uint) error
}

type taskService struct {
	repo repository.TaskRepository
}

// NewTaskService builds a TaskService.
func NewTaskService(repo repository.TaskRepository) TaskService {
	return &taskService{repo: repo}
}

func (s *taskService) GetTask(ctx context.Context, id uint) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return task, nil
}

func (s *taskService) ListTasks(ctx context.Context) ([]model.Task, error) {
	return s.repo.List(ctx)
}

func (s *taskService) ListTasksByColumn(ctx context.Context, columnID uint) ([]model.Task, error) {
	return s.repo.ListByColumn(ctx, columnID)
}

func (s *taskService) ListTasksByBoard(ctx context.Context, boardID uint) ([]model.Task, error) {
	return s.repo.ListByBoard(ctx, boardID)
}

func (s *taskService) CreateTask(ctx context.Context, task *model.Task) (*model.Task, error) {
	if task.Priority == "" {
		task.Priority = model.PriorityMedium
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// UpdateTask applies the provided fields. Returns nil when the task does not
// exist.
func (s *taskService) UpdateTask(ctx context.Context, id uint, update TaskUpdate) (*model.Task, error) {
	task, err := s.GetTask(ctx, id)
	if err != nil || task == nil {
		return nil, err
	}

	if update.Title != nil {
		task.Title = *update.Title
	}
	if update.Description != nil {
		task.Description = *update.Description
	}
	if update.ColumnID != nil {
		task.ColumnID = *update.ColumnID
	}
	if update.AssigneeID != nil {
		task.AssigneeID = update.AssigneeID
	}
	if update.Priority != nil {
		task.Priority = *update.Priority
	}

	// Save would write the preloaded associations back; update columns only.
	task.Column = nil
	task.Assignee = nil
	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
