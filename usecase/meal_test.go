package usecase

import (
	"errors"
	"testing"

	"weekplanner/model"
)

func TestCreateAndUpdateMeal(t *testing.T) {
	store := newTestStore(t)
	weeks := NewWeekService(store)
	meals := NewMealService(store)

	cw, err := weeks.GetCurrentWeek()
	if err != nil {
		t.Fatal(err)
	}

	meal, err := meals.CreateMeal(cw.ID, 2, model.MealInput{
		MealType: model.MealBreakfast, Time: "8:00 AM", FoodName: "Oatmeal", Calories: 350,
	})
	if err != nil {
		t.Fatalf("CreateMeal failed: %v", err)
	}
	if meal.DayIndex != 2 || meal.Calories != 350 {
		t.Errorf("meal = %+v", meal)
	}

	calories := 400
	updated, err := meals.UpdateMeal(meal.ID, model.MealPatch{Calories: &calories})
	if err != nil {
		t.Fatalf("UpdateMeal failed: %v", err)
	}
	if updated.Calories != 400 {
		t.Errorf("calories = %d, want 400", updated.Calories)
	}
	if updated.FoodName != "Oatmeal" {
		t.Errorf("untouched foodName changed: %q", updated.FoodName)
	}

	if _, err := meals.UpdateMeal(99999, model.MealPatch{Calories: &calories}); !errors.Is(err, ErrMealNotFound) {
		t.Errorf("got %v, want ErrMealNotFound", err)
	}
}

func TestCreateMealUnknownWeek(t *testing.T) {
	store := newTestStore(t)
	meals := NewMealService(store)

	_, err := meals.CreateMeal(12345, 0, model.MealInput{
		MealType: model.MealLunch, Time: "12:00", FoodName: "Salad", Calories: 300,
	})
	if !errors.Is(err, ErrWeekNotFound) {
		t.Errorf("got %v, want ErrWeekNotFound", err)
	}
}

func TestDeleteMeal(t *testing.T) {
	store := newTestStore(t)
	weeks := NewWeekService(store)
	meals := NewMealService(store)

	cw, err := weeks.GetCurrentWeek()
	if err != nil {
		t.Fatal(err)
	}
	meal, err := meals.CreateMeal(cw.ID, 0, model.MealInput{
		MealType: model.MealSnack, Time: "15:00", FoodName: "Apple", Calories: 90,
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := meals.DeleteMeal(meal.ID); err != nil {
		t.Fatal(err)
	}
	if err := meals.DeleteMeal(meal.ID); !errors.Is(err, ErrMealNotFound) {
		t.Errorf("got %v, want ErrMealNotFound", err)
	}
}

func TestGetDayCalories(t *testing.T) {
	store := newTestStore(t)
	weeks := NewWeekService(store)
	meals := NewMealService(store)

	cw, err := weeks.GetCurrentWeek()
	if err != nil {
		t.Fatal(err)
	}

	for _, c := range []int{350, 650} {
		if _, err := meals.CreateMeal(cw.ID, 4, model.MealInput{
			MealType: model.MealLunch, Time: "12:00", FoodName: "Food", Calories: c,
		}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := meals.CreateMeal(cw.ID, 5, model.MealInput{
		MealType: model.MealDinner, Time: "19:00", FoodName: "Food", Calories: 800,
	}); err != nil {
		t.Fatal(err)
	}

	total, err := meals.GetDayCalories(cw.ID, 4)
	if err != nil {
		t.Fatal(err)
	}
	if total != 1000 {
		t.Errorf("day 4 calories = %d, want 1000", total)
	}

	total, err = meals.GetDayCalories(cw.ID, 6)
	if err != nil {
		t.Fatal(err)
	}
	if total != 0 {
		t.Errorf("empty day calories = %d, want 0", total)
	}
}
