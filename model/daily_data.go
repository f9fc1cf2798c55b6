package model

import "time"

// DailyData tracks per-day hydration and notes. Exactly one row exists per
// (weekId, dayIndex) pair; rows are seeded when the week is created.
type DailyData struct {
	ID           int64     `json:"id"`
	WeekID       int64     `json:"weekId"`
	DayIndex     int       `json:"dayIndex"`
	WaterGlasses int       `json:"waterGlasses"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// DailyDataPatch is a partial update: nil fields are left untouched.
type DailyDataPatch struct {
	WaterGlasses *int
	Notes        *string
}
