package models

// Task is a to-do item owned by a single user.
type Task struct {
	ID      int64  `db:"id" json:"id"`
	Title   string `db:"title" json:"title"`
	OwnerID int64  `db:"owner_id" json:"-"`
}

// CreateTaskRequest defines the body for creating a task.
type CreateTaskRequest struct {
	Title string `json:"title" binding:"required,max=200"`
}

// UpdateTaskRequest defines the body for renaming a task.
type UpdateTaskRequest struct {
	Title string `json:"title" binding:"required,max=200"`
}
