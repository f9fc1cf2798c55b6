package usecase

import (
	"time"

	"weekplanner/model"
	"weekplanner/storage"
	"weekplanner/utils"
)

// MealService manages the meals logged against days of the current week.
type MealService struct {
	store storage.Store
	now   func() time.Time
}

func NewMealService(store storage.Store) *MealService {
	return &MealService{store: store, now: time.Now}
}

// CreateMeal logs a meal on the given day of a week.
func (s *MealService) CreateMeal(weekID int64, dayIndex int, in model.MealInput) (*model.Meal, error) {
	if err := utils.ValidateDayIndex(dayIndex); err != nil {
		return nil, err
	}
	if err := utils.ValidateAndSanitizeMeal(&in); err != nil {
		return nil, err
	}

	var meal model.Meal
	err := s.store.Update(func(d *model.Document) error {
		if findWeek(d, weekID) == nil {
			return ErrWeekNotFound
		}
		meal = model.Meal{
			ID:        utils.GenerateID(),
			WeekID:    weekID,
			DayIndex:  dayIndex,
			MealType:  in.MealType,
			Time:      in.Time,
			FoodName:  in.FoodName,
			Calories:  in.Calories,
			Notes:     in.Notes,
			CreatedAt: s.now().UTC(),
		}
		d.Meals = append(d.Meals, meal)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

// UpdateMeal applies a partial update. Nil patch fields leave the stored
// value untouched.
func (s *MealService) UpdateMeal(id int64, patch model.MealPatch) (*model.Meal, error) {
	if err := utils.ValidateAndSanitizeMealPatch(&patch); err != nil {
		return nil, err
	}

	var updated model.Meal
	err := s.store.Update(func(d *model.Document) error {
		for i := range d.Meals {
			if d.Meals[i].ID != id {
				continue
			}
			m := &d.Meals[i]
			if patch.MealType != nil {
				m.MealType = *patch.MealType
			}
			if patch.Time != nil {
				m.Time = *patch.Time
			}
			if patch.FoodName != nil {
				m.FoodName = *patch.FoodName
			}
			if patch.Calories != nil {
				m.Calories = *patch.Calories
			}
			if patch.Notes != nil {
				m.Notes = patch.Notes
			}
			updated = *m
			return nil
		}
		return ErrMealNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *MealService) DeleteMeal(id int64) error {
	return s.store.Update(func(d *model.Document) error {
		for i := range d.Meals {
			if d.Meals[i].ID == id {
				d.Meals = append(d.Meals[:i], d.Meals[i+1:]...)
				return nil
			}
		}
		return ErrMealNotFound
	})
}

// GetDayCalories sums calories logged for one day of a week.
func (s *MealService) GetDayCalories(weekID int64, dayIndex int) (int, error) {
	if err := utils.ValidateDayIndex(dayIndex); err != nil {
		return 0, err
	}
	doc := s.store.Document()
	total := 0
	for _, m := range doc.Meals {
		if m.WeekID == weekID && m.DayIndex == dayIndex {
			total += m.Calories
		}
	}
	return total, nil
}
