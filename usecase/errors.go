package usecase

import "errors"

var (
	ErrCurrentWeekNotFound = errors.New("no current week")
	ErrWeekNotFound        = errors.New("week not found")
	ErrTaskNotFound        = errors.New("task not found")
	ErrMealNotFound        = errors.New("meal not found")
	ErrDailyDataNotFound   = errors.New("daily data not found")
	ErrTemplateNotFound    = errors.New("task template not found")
)
