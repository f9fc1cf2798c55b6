package model

import "time"

type Category string

const (
	CategoryWork      Category = "work"
	CategoryPersonal  Category = "personal"
	CategoryHealth    Category = "health"
	CategoryLearning  Category = "learning"
	CategorySocial    Category = "social"
	CategoryHousehold Category = "household"
	CategoryFinance   Category = "finance"
	CategoryHobby     Category = "hobby"
	CategoryGeneral   Category = "general"
)

var Categories = []Category{
	CategoryWork,
	CategoryPersonal,
	CategoryHealth,
	CategoryLearning,
	CategorySocial,
	CategoryHousehold,
	CategoryFinance,
	CategoryHobby,
	CategoryGeneral,
}

func IsValidCategory(c Category) bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

type Task struct {
	ID               int64     `json:"id"`
	WeekID           int64     `json:"weekId"`
	DayIndex         int       `json:"dayIndex"`
	Time             string    `json:"time"`
	Name             string    `json:"name"`
	IsCompleted      bool      `json:"isCompleted"`
	Order            int       `json:"order"`
	Category         Category  `json:"category"`
	EstimatedMinutes *int      `json:"estimatedMinutes"`
	Notes            *string   `json:"notes"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// TaskTemplate is not owned by any week; default templates are cloned into
// every newly created week, one task per day.
type TaskTemplate struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Time             string    `json:"time"`
	Category         Category  `json:"category"`
	EstimatedMinutes *int      `json:"estimatedMinutes"`
	IsDefault        bool      `json:"isDefault"`
	CreatedAt        time.Time `json:"createdAt"`
}

// TaskInput carries the caller-supplied fields for a new task.
type TaskInput struct {
	Name             string
	Time             string
	Category         Category
	EstimatedMinutes *int
	Notes            *string
}

// TaskPatch is a partial update: nil fields are left untouched.
type TaskPatch struct {
	Name             *string
	Time             *string
	Category         *Category
	EstimatedMinutes *int
	Notes            *string
	IsCompleted      *bool
	Order            *int
}

type TaskTemplateInput struct {
	Name             string
	Time             string
	Category         Category
	EstimatedMinutes *int
	IsDefault        bool
}
