package usecase

import (
	"log/slog"
	"time"

	"weekplanner/model"
	"weekplanner/storage"
	"weekplanner/utils"
)

// TaskService manages tasks within the current week and the template
// library they can be cloned from.
type TaskService struct {
	store storage.Store
	now   func() time.Time
}

func NewTaskService(store storage.Store) *TaskService {
	return &TaskService{store: store, now: time.Now}
}

// CreateTask appends a task to the given day of a week. The new task's
// order is the current count of tasks on that (week, day).
func (s *TaskService) CreateTask(weekID int64, dayIndex int, in model.TaskInput) (*model.Task, error) {
	if err := utils.ValidateDayIndex(dayIndex); err != nil {
		return nil, err
	}
	if err := utils.ValidateAndSanitizeTask(&in); err != nil {
		return nil, err
	}
	if in.Category == "" {
		in.Category = model.CategoryGeneral
	}

	var task model.Task
	err := s.store.Update(func(d *model.Document) error {
		if findWeek(d, weekID) == nil {
			return ErrWeekNotFound
		}
		now := s.now().UTC()
		task = model.Task{
			ID:               utils.GenerateID(),
			WeekID:           weekID,
			DayIndex:         dayIndex,
			Time:             in.Time,
			Name:             in.Name,
			Category:         in.Category,
			EstimatedMinutes: in.EstimatedMinutes,
			Notes:            in.Notes,
			Order:            countDayTasks(d, weekID, dayIndex),
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		d.Tasks = append(d.Tasks, task)
		return nil
	})
	if err != nil {
		return nil, err
	}
	slog.Info("task created", "taskId", task.ID, "dayIndex", dayIndex)
	return &task, nil
}

// UpdateTask applies a partial update. Nil patch fields leave the stored
// value untouched.
func (s *TaskService) UpdateTask(id int64, patch model.TaskPatch) (*model.Task, error) {
	if err := utils.ValidateAndSanitizeTaskPatch(&patch); err != nil {
		return nil, err
	}

	var updated model.Task
	err := s.store.Update(func(d *model.Document) error {
		for i := range d.Tasks {
			if d.Tasks[i].ID != id {
				continue
			}
			t := &d.Tasks[i]
			if patch.Name != nil {
				t.Name = *patch.Name
			}
			if patch.Time != nil {
				t.Time = *patch.Time
			}
			if patch.Category != nil {
				t.Category = *patch.Category
			}
			if patch.EstimatedMinutes != nil {
				t.EstimatedMinutes = patch.EstimatedMinutes
			}
			if patch.Notes != nil {
				t.Notes = patch.Notes
			}
			if patch.IsCompleted != nil {
				t.IsCompleted = *patch.IsCompleted
			}
			if patch.Order != nil {
				t.Order = *patch.Order
			}
			t.UpdatedAt = s.now().UTC()
			updated = *t
			return nil
		}
		return ErrTaskNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// ToggleTask flips completion and returns the new state.
func (s *TaskService) ToggleTask(id int64) (*model.Task, error) {
	var toggled model.Task
	err := s.store.Update(func(d *model.Document) error {
		for i := range d.Tasks {
			if d.Tasks[i].ID == id {
				d.Tasks[i].IsCompleted = !d.Tasks[i].IsCompleted
				d.Tasks[i].UpdatedAt = s.now().UTC()
				toggled = d.Tasks[i]
				return nil
			}
		}
		return ErrTaskNotFound
	})
	if err != nil {
		return nil, err
	}
	return &toggled, nil
}

// DeleteTask removes a task. Remaining orders on the day are left as-is,
// so gaps in the sequence are expected after deletion.
func (s *TaskService) DeleteTask(id int64) error {
	err := s.store.Update(func(d *model.Document) error {
		for i := range d.Tasks {
			if d.Tasks[i].ID == id {
				d.Tasks = append(d.Tasks[:i], d.Tasks[i+1:]...)
				return nil
			}
		}
		return ErrTaskNotFound
	})
	if err == nil {
		slog.Info("task deleted", "taskId", id)
	}
	return err
}

// ReorderTasks rewrites the order of tasks on one day of one week to match
// the given id sequence. Ids that do not belong to that day are skipped,
// so a stale drag-and-drop payload cannot corrupt other days.
func (s *TaskService) ReorderTasks(weekID int64, dayIndex int, taskIDs []int64) error {
	if err := utils.ValidateDayIndex(dayIndex); err != nil {
		return err
	}
	return s.store.Update(func(d *model.Document) error {
		byID := make(map[int64]*model.Task, len(d.Tasks))
		for i := range d.Tasks {
			if d.Tasks[i].WeekID == weekID && d.Tasks[i].DayIndex == dayIndex {
				byID[d.Tasks[i].ID] = &d.Tasks[i]
			}
		}
		order := 0
		now := s.now().UTC()
		for _, id := range taskIDs {
			t, ok := byID[id]
			if !ok {
				continue
			}
			t.Order = order
			t.UpdatedAt = now
			order++
		}
		return nil
	})
}

// GetTaskTemplates returns the whole template library.
func (s *TaskService) GetTaskTemplates() []model.TaskTemplate {
	doc := s.store.Document()
	return doc.TaskTemplates
}

// CreateTaskTemplate adds a template. Default templates are cloned into
// every new week, one task per day.
func (s *TaskService) CreateTaskTemplate(in model.TaskTemplateInput) (*model.TaskTemplate, error) {
	if err := utils.ValidateAndSanitizeTaskTemplate(&in); err != nil {
		return nil, err
	}
	if in.Category == "" {
		in.Category = model.CategoryGeneral
	}

	var tpl model.TaskTemplate
	err := s.store.Update(func(d *model.Document) error {
		tpl = model.TaskTemplate{
			ID:               utils.GenerateID(),
			Name:             in.Name,
			Time:             in.Time,
			Category:         in.Category,
			EstimatedMinutes: in.EstimatedMinutes,
			IsDefault:        in.IsDefault,
			CreatedAt:        s.now().UTC(),
		}
		d.TaskTemplates = append(d.TaskTemplates, tpl)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

// DeleteTaskTemplate removes a template. Tasks already cloned from it are
// unaffected.
func (s *TaskService) DeleteTaskTemplate(id int64) error {
	return s.store.Update(func(d *model.Document) error {
		for i := range d.TaskTemplates {
			if d.TaskTemplates[i].ID == id {
				d.TaskTemplates = append(d.TaskTemplates[:i], d.TaskTemplates[i+1:]...)
				return nil
			}
		}
		return ErrTemplateNotFound
	})
}
