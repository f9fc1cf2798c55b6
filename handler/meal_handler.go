package handler

import (
	"weekplanner/dto"
	"weekplanner/middleware"
	"weekplanner/usecase"
	"weekplanner/utils"

	"github.com/gin-gonic/gin"
)

type MealHandler struct {
	meals *usecase.MealService
}

func NewMealHandler(meals *usecase.MealService) *MealHandler {
	return &MealHandler{meals: meals}
}

// Create logs a meal on one day of a week.
func (h *MealHandler) Create(c *gin.Context) {
	weekID, ok := pathInt64(c, "weekId")
	if !ok {
		return
	}
	dayIndex, ok := pathInt(c, "dayIndex")
	if !ok {
		return
	}
	var req dto.CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	meal, err := h.meals.CreateMeal(weekID, dayIndex, req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	middleware.TrackPlannerOperation("meal_create")
	utils.Created(c, meal)
}

func (h *MealHandler) Update(c *gin.Context) {
	id, ok := pathInt64(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	meal, err := h.meals.UpdateMeal(id, req.ToPatch())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, meal)
}

func (h *MealHandler) Delete(c *gin.Context) {
	id, ok := pathInt64(c, "id")
	if !ok {
		return
	}
	if err := h.meals.DeleteMeal(id); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"deleted": id})
}

// GetDayCalories returns the calorie total for one day of a week.
func (h *MealHandler) GetDayCalories(c *gin.Context) {
	weekID, ok := pathInt64(c, "weekId")
	if !ok {
		return
	}
	dayIndex, ok := pathInt(c, "dayIndex")
	if !ok {
		return
	}
	total, err := h.meals.GetDayCalories(weekID, dayIndex)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"totalCalories": total})
}
