package model

import "time"

type Week struct {
	ID         int64      `json:"id"`
	WeekID     string     `json:"weekId"`
	Summary    string     `json:"summary"`
	IsCurrent  bool       `json:"isCurrent"`
	CreatedAt  time.Time  `json:"createdAt"`
	ArchivedAt *time.Time `json:"archivedAt"`
}

// CurrentWeek is the denormalized read view of the active week: the week
// record merged with everything it owns.
type CurrentWeek struct {
	Week
	Tasks     []Task      `json:"tasks"`
	Meals     []Meal      `json:"meals"`
	DailyData []DailyData `json:"dailyData"`
}

type WeekStats struct {
	TotalTasks          int     `json:"totalTasks"`
	CompletedTasks      int     `json:"completedTasks"`
	CompletionRate      float64 `json:"completionRate"`
	AvgWaterGlasses     float64 `json:"avgWaterGlasses"`
	AvgCalories         float64 `json:"avgCalories"`
	TotalMinutesPlanned int     `json:"totalMinutesPlanned"`
}
