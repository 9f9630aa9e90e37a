package controller

import (
	"net/http"
	"strconv"

	"bbdap/backend/internal/api/middleware"
	"bbdap/backend/internal/api/models"
	"bbdap/backend/internal/api/response"
	"bbdap/backend/internal/api/service"

	"github.com/gin-gonic/gin"
)

// TaskController handles the task CRUD endpoints. Every handler runs behind
// RequireAuth, so the owner id is always present in the context.
type TaskController struct {
	taskService service.TaskService
}

// NewTaskController creates a new TaskController.
func NewTaskController(taskService service.TaskService) *TaskController {
	return &TaskController{
		taskService: taskService,
	}
}

// Create handles POST /tasks.
func (tc *TaskController) Create(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		response.ErrorResponse(c, http.StatusUnauthorized, "token missing")
		return
	}

	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := tc.taskService.Create(c.Request.Context(), ownerID, &req); err != nil {
		response.FromError(c, err)
		return
	}

	response.Message(c, http.StatusCreated, "Task created")
}

// List handles GET /tasks.
func (tc *TaskController) List(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		response.ErrorResponse(c, http.StatusUnauthorized, "token missing")
		return
	}

	tasks, err := tc.taskService.List(c.Request.Context(), ownerID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, tasks)
}

// Update handles PUT /tasks/:id.
func (tc *TaskController) Update(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		response.ErrorResponse(c, http.StatusUnauthorized, "token missing")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "task id must be an integer")
		return
	}

	var req models.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := tc.taskService.Update(c.Request.Context(), ownerID, id, &req); err != nil {
		response.FromError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Task updated")
}

// Delete handles DELETE /tasks/:id.
func (tc *TaskController) Delete(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		response.ErrorResponse(c, http.StatusUnauthorized, "token missing")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "task id must be an integer")
		return
	}

	if err := tc.taskService.Delete(c.Request.Context(), ownerID, id); err != nil {
		response.FromError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Task deleted")
}
