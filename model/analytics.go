package model

import "time"

type ReportSummary struct {
	TotalTasks            int     `json:"totalTasks"`
	CompletedTasks        int     `json:"completedTasks"`
	CompletionRate        float64 `json:"completionRate"`
	TotalMinutesPlanned   int     `json:"totalMinutesPlanned"`
	TotalMinutesCompleted int     `json:"totalMinutesCompleted"`
}

type NutritionStats struct {
	TotalCalories     int     `json:"totalCalories"`
	AvgCaloriesPerDay float64 `json:"avgCaloriesPerDay"`
	TotalMeals        int     `json:"totalMeals"`
	AvgMealsPerDay    float64 `json:"avgMealsPerDay"`
}

type HydrationStats struct {
	TotalWaterGlasses int     `json:"totalWaterGlasses"`
	AvgWaterPerDay    float64 `json:"avgWaterPerDay"`
	DaysMetGoal       int     `json:"daysMetGoal"`
}

type CategoryStats struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	CompletionRate float64 `json:"completionRate"`
	TotalMinutes   int     `json:"totalMinutes"`
}

type DayCompletion struct {
	DayIndex       int     `json:"dayIndex"`
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	CompletionRate float64 `json:"completionRate"`
}

type TimeBucket struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// TimeDistribution buckets tasks by the hour parsed from their time field:
// morning 5-12, afternoon 12-17, evening 17-22.
type TimeDistribution struct {
	Morning   TimeBucket `json:"morning"`
	Afternoon TimeBucket `json:"afternoon"`
	Evening   TimeBucket `json:"evening"`
}

// WeekReport is the full per-week aggregation.
type WeekReport struct {
	Summary          ReportSummary              `json:"summary"`
	Nutrition        NutritionStats             `json:"nutrition"`
	Hydration        HydrationStats             `json:"hydration"`
	Categories       map[Category]CategoryStats `json:"categories"`
	DailyCompletion  []DayCompletion            `json:"dailyCompletion"`
	TimeDistribution TimeDistribution           `json:"timeDistribution"`
}

type WeekBreakdown struct {
	WeekID string `json:"weekId"`
	ReportSummary
}

type MonthSummary struct {
	TotalTasks     int     `json:"totalTasks"`
	CompletedTasks int     `json:"completedTasks"`
	TotalCalories  int     `json:"totalCalories"`
	TotalWater     int     `json:"totalWater"`
	CompletionRate float64 `json:"completionRate"`
}

type Trend struct {
	Trend  string `json:"trend"` // improving, declining or stable
	Change int    `json:"change"`
}

type MonthReport struct {
	Weeks           int             `json:"weeks"`
	Summary         MonthSummary    `json:"summary"`
	WeeklyBreakdown []WeekBreakdown `json:"weeklyBreakdown"`
	Trends          Trend           `json:"trends"`
}

type CompletionTrendPoint struct {
	WeekID         string    `json:"weekId"`
	CompletionRate float64   `json:"completionRate"`
	TotalTasks     int       `json:"totalTasks"`
	CompletedTasks int       `json:"completedTasks"`
	Date           time.Time `json:"date"`
}

type Insight struct {
	Type    string `json:"type"` // success, warning, tip or info
	Message string `json:"message"`
	Icon    string `json:"icon"`
}
