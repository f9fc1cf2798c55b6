package utils

import (
	"fmt"
	"regexp"
	"strings"

	"weekplanner/model"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Violation describes a single rejected field.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// ValidationError collects every violation found in one call. The first
// violation is the primary error; the rest stay accessible on Violations.
type ValidationError struct {
	Violations []Violation
}

func NewValidationError(field, message string, value any) *ValidationError {
	return &ValidationError{Violations: []Violation{{Field: field, Message: message, Value: value}}}
}

func (e *ValidationError) Add(field, message string, value any) *ValidationError {
	e.Violations = append(e.Violations, Violation{Field: field, Message: message, Value: value})
	return e
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	v := e.Violations[0]
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// Field returns the primary offending field.
func (e *ValidationError) Field() string {
	if len(e.Violations) == 0 {
		return ""
	}
	return e.Violations[0].Field
}

// collector gathers violations so one call reports them all at once.
type collector struct {
	violations []Violation
}

func (c *collector) add(field, message string, value any) {
	c.violations = append(c.violations, Violation{Field: field, Message: message, Value: value})
}

func (c *collector) err() error {
	if len(c.violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: c.violations}
}

// Accepted formats: "9:00", "09:00", "9:00 AM" and a range of two such
// tokens separated by "-".
var (
	timePattern      = regexp.MustCompile(`(?i)^\d{1,2}:\d{2}\s?(AM|PM)?$`)
	timeRangePattern = regexp.MustCompile(`(?i)^\d{1,2}:\d{2}\s?(AM|PM)?\s?-\s?\d{1,2}:\d{2}\s?(AM|PM)?$`)
)

const timeFormatMessage = `Invalid time format. Use formats like "9:00 AM" or "09:00"`

func IsValidTime(value string) bool {
	value = strings.TrimSpace(value)
	return timePattern.MatchString(value) || timeRangePattern.MatchString(value)
}

// InitValidator registers the custom time rule with gin's binding engine so
// DTOs can declare `binding:"plannertime"`.
func InitValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("plannertime", ValidateTimeRule)
	}
}

func ValidateTimeRule(fl validator.FieldLevel) bool {
	return IsValidTime(fl.Field().String())
}

// SanitizeString trims and truncates to maxLength runes (0 means no
// limit). Counting runes keeps multi-byte characters intact.
func SanitizeString(value string, maxLength int) string {
	value = strings.TrimSpace(value)
	if maxLength > 0 {
		if runes := []rune(value); len(runes) > maxLength {
			value = string(runes[:maxLength])
		}
	}
	return value
}

// ClampInt clamps value into [min, max].
func ClampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func ValidateDayIndex(dayIndex int) error {
	if dayIndex < 0 || dayIndex > 6 {
		return NewValidationError("dayIndex", "Day index must be between 0 and 6", dayIndex)
	}
	return nil
}

// ValidateAndSanitizeTask validates a new task's fields, collecting every
// violation, then trims and truncates the accepted values in place.
func ValidateAndSanitizeTask(in *model.TaskInput) error {
	var c collector

	name := strings.TrimSpace(in.Name)
	if name == "" {
		c.add("name", "Task name is required", in.Name)
	} else if len(name) > model.TaskNameMax {
		c.add("name", fmt.Sprintf("Task name must not exceed %d characters", model.TaskNameMax), in.Name)
	}

	if strings.TrimSpace(in.Time) == "" {
		c.add("time", "Task time is required", in.Time)
	} else if !IsValidTime(in.Time) {
		c.add("time", timeFormatMessage, in.Time)
	}

	if in.Category != "" && !model.IsValidCategory(in.Category) {
		c.add("category", "Invalid category", in.Category)
	}

	if in.EstimatedMinutes != nil {
		if *in.EstimatedMinutes < model.TaskMinutesMin || *in.EstimatedMinutes > model.TaskMinutesMax {
			c.add("estimatedMinutes",
				fmt.Sprintf("Estimated minutes must be between %d and %d", model.TaskMinutesMin, model.TaskMinutesMax),
				*in.EstimatedMinutes)
		}
	}

	if in.Notes != nil && len(*in.Notes) > model.TaskNotesMax {
		c.add("notes", fmt.Sprintf("Notes must not exceed %d characters", model.TaskNotesMax), *in.Notes)
	}

	if err := c.err(); err != nil {
		return err
	}

	in.Name = SanitizeString(in.Name, model.TaskNameMax)
	in.Time = SanitizeString(in.Time, model.TimeFieldMax)
	if in.Notes != nil {
		n := SanitizeString(*in.Notes, model.TaskNotesMax)
		in.Notes = &n
	}
	return nil
}

// ValidateAndSanitizeTaskPatch validates only the fields present.
func ValidateAndSanitizeTaskPatch(p *model.TaskPatch) error {
	var c collector

	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			c.add("name", "Task name is required", *p.Name)
		} else if len(name) > model.TaskNameMax {
			c.add("name", fmt.Sprintf("Task name must not exceed %d characters", model.TaskNameMax), *p.Name)
		}
	}

	if p.Time != nil && !IsValidTime(*p.Time) {
		c.add("time", timeFormatMessage, *p.Time)
	}

	if p.Category != nil && !model.IsValidCategory(*p.Category) {
		c.add("category", "Invalid category", *p.Category)
	}

	if p.EstimatedMinutes != nil {
		if *p.EstimatedMinutes < model.TaskMinutesMin || *p.EstimatedMinutes > model.TaskMinutesMax {
			c.add("estimatedMinutes",
				fmt.Sprintf("Estimated minutes must be between %d and %d", model.TaskMinutesMin, model.TaskMinutesMax),
				*p.EstimatedMinutes)
		}
	}

	if p.Notes != nil && len(*p.Notes) > model.TaskNotesMax {
		c.add("notes", fmt.Sprintf("Notes must not exceed %d characters", model.TaskNotesMax), *p.Notes)
	}

	if p.Order != nil && *p.Order < 0 {
		c.add("order", "Order must be a non-negative integer", *p.Order)
	}

	if err := c.err(); err != nil {
		return err
	}

	if p.Name != nil {
		n := SanitizeString(*p.Name, model.TaskNameMax)
		p.Name = &n
	}
	if p.Time != nil {
		t := SanitizeString(*p.Time, model.TimeFieldMax)
		p.Time = &t
	}
	if p.Notes != nil {
		n := SanitizeString(*p.Notes, model.TaskNotesMax)
		p.Notes = &n
	}
	return nil
}

func ValidateAndSanitizeMeal(in *model.MealInput) error {
	var c collector

	foodName := strings.TrimSpace(in.FoodName)
	if foodName == "" {
		c.add("foodName", "Food name is required", in.FoodName)
	} else if len(foodName) > model.MealNameMax {
		c.add("foodName", fmt.Sprintf("Food name must not exceed %d characters", model.MealNameMax), in.FoodName)
	}

	if in.Calories < model.CaloriesMin || in.Calories > model.CaloriesMax {
		c.add("calories",
			fmt.Sprintf("Calories must be between %d and %d", model.CaloriesMin, model.CaloriesMax),
			in.Calories)
	}

	if in.MealType == "" {
		c.add("mealType", "Meal type is required", in.MealType)
	} else if !model.IsValidMealType(in.MealType) {
		c.add("mealType", "Invalid meal type", in.MealType)
	}

	if strings.TrimSpace(in.Time) == "" {
		c.add("time", "Meal time is required", in.Time)
	} else if !IsValidTime(in.Time) {
		c.add("time", timeFormatMessage, in.Time)
	}

	if in.Notes != nil && len(*in.Notes) > model.MealNotesMax {
		c.add("notes", fmt.Sprintf("Notes must not exceed %d characters", model.MealNotesMax), *in.Notes)
	}

	if err := c.err(); err != nil {
		return err
	}

	in.FoodName = SanitizeString(in.FoodName, model.MealNameMax)
	in.Time = SanitizeString(in.Time, model.TimeFieldMax)
	if in.Notes != nil {
		n := SanitizeString(*in.Notes, model.MealNotesMax)
		in.Notes = &n
	}
	return nil
}

func ValidateAndSanitizeMealPatch(p *model.MealPatch) error {
	var c collector

	if p.FoodName != nil {
		foodName := strings.TrimSpace(*p.FoodName)
		if foodName == "" {
			c.add("foodName", "Food name is required", *p.FoodName)
		} else if len(foodName) > model.MealNameMax {
			c.add("foodName", fmt.Sprintf("Food name must not exceed %d characters", model.MealNameMax), *p.FoodName)
		}
	}

	if p.Calories != nil {
		if *p.Calories < model.CaloriesMin || *p.Calories > model.CaloriesMax {
			c.add("calories",
				fmt.Sprintf("Calories must be between %d and %d", model.CaloriesMin, model.CaloriesMax),
				*p.Calories)
		}
	}

	if p.MealType != nil && !model.IsValidMealType(*p.MealType) {
		c.add("mealType", "Invalid meal type", *p.MealType)
	}

	if p.Time != nil && !IsValidTime(*p.Time) {
		c.add("time", timeFormatMessage, *p.Time)
	}

	if p.Notes != nil && len(*p.Notes) > model.MealNotesMax {
		c.add("notes", fmt.Sprintf("Notes must not exceed %d characters", model.MealNotesMax), *p.Notes)
	}

	if err := c.err(); err != nil {
		return err
	}

	if p.FoodName != nil {
		n := SanitizeString(*p.FoodName, model.MealNameMax)
		p.FoodName = &n
	}
	if p.Time != nil {
		t := SanitizeString(*p.Time, model.TimeFieldMax)
		p.Time = &t
	}
	if p.Notes != nil {
		n := SanitizeString(*p.Notes, model.MealNotesMax)
		p.Notes = &n
	}
	return nil
}

func ValidateAndSanitizeDailyDataPatch(p *model.DailyDataPatch) error {
	var c collector

	if p.WaterGlasses != nil {
		if *p.WaterGlasses < model.WaterMin || *p.WaterGlasses > model.WaterMax {
			c.add("waterGlasses",
				fmt.Sprintf("Water glasses must be between %d and %d", model.WaterMin, model.WaterMax),
				*p.WaterGlasses)
		}
	}

	if p.Notes != nil && len(*p.Notes) > model.DailyNotesMax {
		c.add("notes", fmt.Sprintf("Notes must not exceed %d characters", model.DailyNotesMax), *p.Notes)
	}

	if err := c.err(); err != nil {
		return err
	}

	if p.Notes != nil {
		n := SanitizeString(*p.Notes, model.DailyNotesMax)
		p.Notes = &n
	}
	return nil
}

func ValidateAndSanitizeTaskTemplate(in *model.TaskTemplateInput) error {
	var c collector

	name := strings.TrimSpace(in.Name)
	if name == "" {
		c.add("name", "Template name is required", in.Name)
	} else if len(name) > model.TemplateNameMax {
		c.add("name", fmt.Sprintf("Template name must not exceed %d characters", model.TemplateNameMax), in.Name)
	}

	if strings.TrimSpace(in.Time) == "" {
		c.add("time", "Time is required", in.Time)
	} else if !IsValidTime(in.Time) {
		c.add("time", timeFormatMessage, in.Time)
	}

	if in.Category != "" && !model.IsValidCategory(in.Category) {
		c.add("category", "Invalid category", in.Category)
	}

	if in.EstimatedMinutes != nil {
		if *in.EstimatedMinutes < model.TaskMinutesMin || *in.EstimatedMinutes > model.TaskMinutesMax {
			c.add("estimatedMinutes",
				fmt.Sprintf("Estimated minutes must be between %d and %d", model.TaskMinutesMin, model.TaskMinutesMax),
				*in.EstimatedMinutes)
		}
	}

	if err := c.err(); err != nil {
		return err
	}

	in.Name = SanitizeString(in.Name, model.TemplateNameMax)
	in.Time = SanitizeString(in.Time, model.TimeFieldMax)
	return nil
}

// ValidateWeekSummary trims a week summary; an over-long summary is a
// violation rather than a silent cut.
func ValidateWeekSummary(summary string) (string, error) {
	if len(summary) > model.WeekSummaryMax {
		return "", NewValidationError("summary",
			fmt.Sprintf("Summary must not exceed %d characters", model.WeekSummaryMax), summary)
	}
	return strings.TrimSpace(summary), nil
}
