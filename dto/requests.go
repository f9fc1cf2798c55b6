package dto

import "weekplanner/model"

// Request bodies bind loosely: numeric fields accept strings via FlexInt
// and detailed validation happens in the usecase layer so every violation
// is reported at once.

type CreateTaskRequest struct {
	Name             string   `json:"name"`
	Time             string   `json:"time"`
	Category         string   `json:"category"`
	EstimatedMinutes *FlexInt `json:"estimatedMinutes"`
	Notes            *string  `json:"notes"`
}

func (r *CreateTaskRequest) ToInput() model.TaskInput {
	return model.TaskInput{
		Name:             r.Name,
		Time:             r.Time,
		Category:         model.Category(r.Category),
		EstimatedMinutes: flexIntPtr(r.EstimatedMinutes),
		Notes:            r.Notes,
	}
}

type UpdateTaskRequest struct {
	Name             *string  `json:"name"`
	Time             *string  `json:"time"`
	Category         *string  `json:"category"`
	EstimatedMinutes *FlexInt `json:"estimatedMinutes"`
	Notes            *string  `json:"notes"`
	IsCompleted      *bool    `json:"isCompleted"`
	Order            *FlexInt `json:"order"`
}

func (r *UpdateTaskRequest) ToPatch() model.TaskPatch {
	p := model.TaskPatch{
		Name:             r.Name,
		Time:             r.Time,
		EstimatedMinutes: flexIntPtr(r.EstimatedMinutes),
		Notes:            r.Notes,
		IsCompleted:      r.IsCompleted,
		Order:            flexIntPtr(r.Order),
	}
	if r.Category != nil {
		c := model.Category(*r.Category)
		p.Category = &c
	}
	return p
}

type ReorderTasksRequest struct {
	WeekID   int64   `json:"weekId" binding:"required"`
	DayIndex *int    `json:"dayIndex" binding:"required,min=0,max=6"`
	TaskIDs  []int64 `json:"taskIds" binding:"required"`
}

type CreateMealRequest struct {
	MealType string  `json:"mealType"`
	Time     string  `json:"time"`
	FoodName string  `json:"foodName"`
	Calories FlexInt `json:"calories"`
	Notes    *string `json:"notes"`
}

func (r *CreateMealRequest) ToInput() model.MealInput {
	return model.MealInput{
		MealType: model.MealType(r.MealType),
		Time:     r.Time,
		FoodName: r.FoodName,
		Calories: r.Calories.Int(),
		Notes:    r.Notes,
	}
}

type UpdateMealRequest struct {
	MealType *string  `json:"mealType"`
	Time     *string  `json:"time"`
	FoodName *string  `json:"foodName"`
	Calories *FlexInt `json:"calories"`
	Notes    *string  `json:"notes"`
}

func (r *UpdateMealRequest) ToPatch() model.MealPatch {
	p := model.MealPatch{
		Time:     r.Time,
		FoodName: r.FoodName,
		Calories: flexIntPtr(r.Calories),
		Notes:    r.Notes,
	}
	if r.MealType != nil {
		m := model.MealType(*r.MealType)
		p.MealType = &m
	}
	return p
}

type UpdateDailyDataRequest struct {
	WaterGlasses *FlexInt `json:"waterGlasses"`
	Notes        *string  `json:"notes"`
}

func (r *UpdateDailyDataRequest) ToPatch() model.DailyDataPatch {
	return model.DailyDataPatch{
		WaterGlasses: flexIntPtr(r.WaterGlasses),
		Notes:        r.Notes,
	}
}

type CreateTemplateRequest struct {
	Name             string   `json:"name"`
	Time             string   `json:"time" binding:"omitempty,plannertime"`
	Category         string   `json:"category"`
	EstimatedMinutes *FlexInt `json:"estimatedMinutes"`
	IsDefault        bool     `json:"isDefault"`
}

func (r *CreateTemplateRequest) ToInput() model.TaskTemplateInput {
	return model.TaskTemplateInput{
		Name:             r.Name,
		Time:             r.Time,
		Category:         model.Category(r.Category),
		EstimatedMinutes: flexIntPtr(r.EstimatedMinutes),
		IsDefault:        r.IsDefault,
	}
}

type UpdateSummaryRequest struct {
	Summary string `json:"summary"`
}

func flexIntPtr(f *FlexInt) *int {
	if f == nil {
		return nil
	}
	v := f.Int()
	return &v
}
