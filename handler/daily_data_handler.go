package handler

import (
	"weekplanner/dto"
	"weekplanner/usecase"
	"weekplanner/utils"

	"github.com/gin-gonic/gin"
)

type DailyDataHandler struct {
	dailyData *usecase.DailyDataService
}

func NewDailyDataHandler(dailyData *usecase.DailyDataService) *DailyDataHandler {
	return &DailyDataHandler{dailyData: dailyData}
}

func (h *DailyDataHandler) Get(c *gin.Context) {
	weekID, ok := pathInt64(c, "weekId")
	if !ok {
		return
	}
	dayIndex, ok := pathInt(c, "dayIndex")
	if !ok {
		return
	}
	row, err := h.dailyData.GetDailyData(weekID, dayIndex)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, row)
}

// Update patches water intake and notes for one day.
func (h *DailyDataHandler) Update(c *gin.Context) {
	weekID, ok := pathInt64(c, "weekId")
	if !ok {
		return
	}
	dayIndex, ok := pathInt(c, "dayIndex")
	if !ok {
		return
	}
	var req dto.UpdateDailyDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	row, err := h.dailyData.UpdateDailyData(weekID, dayIndex, req.ToPatch())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, row)
}
