package handler

import (
	"weekplanner/dto"
	"weekplanner/middleware"
	"weekplanner/usecase"
	"weekplanner/utils"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	tasks *usecase.TaskService
}

func NewTaskHandler(tasks *usecase.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// Create adds a task to one day of a week.
func (h *TaskHandler) Create(c *gin.Context) {
	weekID, ok := pathInt64(c, "weekId")
	if !ok {
		return
	}
	dayIndex, ok := pathInt(c, "dayIndex")
	if !ok {
		return
	}
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	task, err := h.tasks.CreateTask(weekID, dayIndex, req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	middleware.TrackPlannerOperation("task_create")
	utils.Created(c, task)
}

func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := pathInt64(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	task, err := h.tasks.UpdateTask(id, req.ToPatch())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, task)
}

func (h *TaskHandler) Toggle(c *gin.Context) {
	id, ok := pathInt64(c, "id")
	if !ok {
		return
	}
	task, err := h.tasks.ToggleTask(id)
	if err != nil {
		respondError(c, err)
		return
	}
	middleware.TrackPlannerOperation("task_toggle")
	utils.Success(c, task)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := pathInt64(c, "id")
	if !ok {
		return
	}
	if err := h.tasks.DeleteTask(id); err != nil {
		respondError(c, err)
		return
	}
	middleware.TrackPlannerOperation("task_delete")
	utils.Success(c, gin.H{"deleted": id})
}

// Reorder rewrites task ordering for one day from a drag-and-drop payload.
func (h *TaskHandler) Reorder(c *gin.Context) {
	var req dto.ReorderTasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	if err := h.tasks.ReorderTasks(req.WeekID, *req.DayIndex, req.TaskIDs); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"reordered": len(req.TaskIDs)})
}

func (h *TaskHandler) ListTemplates(c *gin.Context) {
	utils.Success(c, h.tasks.GetTaskTemplates())
}

func (h *TaskHandler) CreateTemplate(c *gin.Context) {
	var req dto.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	tpl, err := h.tasks.CreateTaskTemplate(req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, tpl)
}

func (h *TaskHandler) DeleteTemplate(c *gin.Context) {
	id, ok := pathInt64(c, "id")
	if !ok {
		return
	}
	if err := h.tasks.DeleteTaskTemplate(id); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"deleted": id})
}
