package model

// Field limits shared by validation and sanitization.
const (
	TaskNameMax    = 200
	TaskNotesMax   = 1000
	TaskMinutesMin = 1
	TaskMinutesMax = 1440

	MealNameMax  = 100
	MealNotesMax = 500
	CaloriesMin  = 0
	CaloriesMax  = 10000

	WaterMin      = 0
	WaterMax      = 50
	DailyNotesMax = 2000

	WeekSummaryMax  = 5000
	TemplateNameMax = 100

	TimeFieldMax = 50
)
