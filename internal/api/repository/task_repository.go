package repository

import (
	"context"
	"fmt"

	"bbdap/backend/internal/api/models"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel"
)

var taskTracer = otel.Tracer("repository.task")

// TaskRepository defines CRUD over tasks. Every operation is scoped to an
// owner; a task belonging to someone else behaves exactly like a missing one.
type TaskRepository interface {
	Create(ctx context.Context, ownerID int64, title string) (int64, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]models.Task, error)
	UpdateTitle(ctx context.Context, ownerID, id int64, title string) (bool, error)
	Delete(ctx context.Context, ownerID, id int64) (bool, error)
}

type sqliteTaskRepository struct {
	db *sqlx.DB
}

// NewTaskRepository creates a new SQLite-based TaskRepository.
func NewTaskRepository(db *sqlx.DB) TaskRepository {
	return &sqliteTaskRepository{db: db}
}

// Create inserts a task for ownerID and returns its id.
func (r *sqliteTaskRepository) Create(ctx context.Context, ownerID int64, title string) (int64, error) {
	ctx, span := taskTracer.Start(ctx, "TaskRepository.Create")
	defer span.End()

	res, err := r.db.ExecContext(ctx, `INSERT INTO tasks (title, owner_id) VALUES (?, ?)`, title, ownerID)
	if err != nil {
		return 0, fmt.Errorf("failed to create task: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new task id: %w", err)
	}
	return id, nil
}

// ListByOwner returns the owner's tasks in insertion order.
func (r *sqliteTaskRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.Task, error) {
	ctx, span := taskTracer.Start(ctx, "TaskRepository.ListByOwner")
	defer span.End()

	tasks := []models.Task{}
	err := r.db.SelectContext(ctx, &tasks,
		`SELECT id, title, owner_id FROM tasks WHERE owner_id = ? ORDER BY id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTitle renames the owner's task. The second return reports whether a
// row was actually touched.
func (r *sqliteTaskRepository) UpdateTitle(ctx context.Context, ownerID, id int64, title string) (bool, error) {
	ctx, span := taskTracer.Start(ctx, "TaskRepository.UpdateTitle")
	defer span.End()

	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET title = ? WHERE id = ? AND owner_id = ?`, title, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("failed to update task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected > 0, nil
}

// Delete removes the owner's task. The second return reports whether a row
// was actually deleted.
func (r *sqliteTaskRepository) Delete(ctx context.Context, ownerID, id int64) (bool, error) {
	ctx, span := taskTracer.Start(ctx, "TaskRepository.Delete")
	defer span.End()

	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ? AND owner_id = ?`, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("failed to delete task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected > 0, nil
}
