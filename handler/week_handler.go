package handler

import (
	"weekplanner/dto"
	"weekplanner/middleware"
	"weekplanner/usecase"
	"weekplanner/utils"

	"github.com/gin-gonic/gin"
)

type WeekHandler struct {
	weeks *usecase.WeekService
}

func NewWeekHandler(weeks *usecase.WeekService) *WeekHandler {
	return &WeekHandler{weeks: weeks}
}

// GetCurrent returns the active week with its tasks, meals and daily data,
// creating the first week if none exists yet.
func (h *WeekHandler) GetCurrent(c *gin.Context) {
	week, err := h.weeks.GetCurrentWeek()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, week)
}

// Archive closes the current week and returns its freshly created
// replacement.
func (h *WeekHandler) Archive(c *gin.Context) {
	week, err := h.weeks.ArchiveCurrentWeek()
	if err != nil {
		respondError(c, err)
		return
	}
	middleware.TrackPlannerOperation("week_archive")
	utils.Success(c, week)
}

func (h *WeekHandler) UpdateSummary(c *gin.Context) {
	weekID, ok := pathInt64(c, "weekId")
	if !ok {
		return
	}
	var req dto.UpdateSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	week, err := h.weeks.UpdateWeekSummary(weekID, req.Summary)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, week)
}

func (h *WeekHandler) GetArchived(c *gin.Context) {
	utils.Success(c, h.weeks.GetArchivedWeeks())
}

func (h *WeekHandler) GetStats(c *gin.Context) {
	weekID, ok := pathInt64(c, "weekId")
	if !ok {
		return
	}
	stats, err := h.weeks.GetWeekStats(weekID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, stats)
}
