package model

import "time"

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

func IsValidMealType(m MealType) bool {
	for _, v := range MealTypes {
		if m == v {
			return true
		}
	}
	return false
}

type Meal struct {
	ID        int64     `json:"id"`
	WeekID    int64     `json:"weekId"`
	DayIndex  int       `json:"dayIndex"`
	MealType  MealType  `json:"mealType"`
	Time      string    `json:"time"`
	FoodName  string    `json:"foodName"`
	Calories  int       `json:"calories"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

type MealInput struct {
	MealType MealType
	Time     string
	FoodName string
	Calories int
	Notes    *string
}

// MealPatch is a partial update: nil fields are left untouched.
type MealPatch struct {
	MealType *MealType
	Time     *string
	FoodName *string
	Calories *int
	Notes    *string
}
