package service

import (
	"context"
	"errors"

	"bbdap/backend/internal/api/models"
	"bbdap/backend/internal/api/repository"
)

// ErrTaskNotFound is returned when a task does not exist for the requesting
// user. Tasks owned by other users are deliberately reported the same way.
var ErrTaskNotFound = errors.New("task not found")

// TaskService defines the task CRUD business logic, scoped to the
// authenticated user on every operation.
type TaskService interface {
	Create(ctx context.Context, ownerID int64, req *models.CreateTaskRequest) (int64, error)
	List(ctx context.Context, ownerID int64) ([]models.Task, error)
	Update(ctx context.Context, ownerID, id int64, req *models.UpdateTaskRequest) error
	Delete(ctx context.Context, ownerID, id int64) error
}

type taskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository) TaskService {
	return &taskService{taskRepo: taskRepo}
}

func (s *taskService) Create(ctx context.Context, ownerID int64, req *models.CreateTaskRequest) (int64, error) {
	return s.taskRepo.Create(ctx, ownerID, req.Title)
}

func (s *taskService) List(ctx context.Context, ownerID int64) ([]models.Task, error) {
	return s.taskRepo.ListByOwner(ctx, ownerID)
}

func (s *taskService) Update(ctx context.Context, ownerID, id int64, req *models.UpdateTaskRequest) error {
	updated, err := s.taskRepo.UpdateTitle(ctx, ownerID, id, req.Title)
	if err != nil {
		return err
	}
	if !updated {
		return ErrTaskNotFound
	}
	return nil
}

func (s *taskService) Delete(ctx context.Context, ownerID, id int64) error {
	deleted, err := s.taskRepo.Delete(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTaskNotFound
	}
	return nil
}
