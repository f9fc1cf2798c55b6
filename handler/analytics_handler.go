package handler

import (
	"strconv"
	"time"

	"weekplanner/usecase"
	"weekplanner/utils"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analytics *usecase.AnalyticsService
}

func NewAnalyticsHandler(analytics *usecase.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

func (h *AnalyticsHandler) WeekReport(c *gin.Context) {
	weekID, ok := pathInt64(c, "weekId")
	if !ok {
		return
	}
	report, err := h.analytics.GetWeekReport(weekID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, report)
}

// MonthReport aggregates the weeks of ?year=&month=, defaulting to the
// current month.
func (h *AnalyticsHandler) MonthReport(c *gin.Context) {
	now := time.Now()
	year := now.Year()
	month := now.Month()
	if v := c.Query("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			utils.BadRequest(c, "Invalid year parameter")
			return
		}
		year = y
	}
	if v := c.Query("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m < 1 || m > 12 {
			utils.BadRequest(c, "Invalid month parameter")
			return
		}
		month = time.Month(m)
	}
	report, err := h.analytics.GetMonthReport(year, month)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, report)
}

func (h *AnalyticsHandler) CompletionTrends(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			utils.BadRequest(c, "Invalid limit parameter")
			return
		}
		limit = n
	}
	utils.Success(c, h.analytics.GetCompletionTrends(limit))
}

func (h *AnalyticsHandler) ProductivityScore(c *gin.Context) {
	weekID, ok := pathInt64(c, "weekId")
	if !ok {
		return
	}
	score, err := h.analytics.GetProductivityScore(weekID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"score": score})
}

func (h *AnalyticsHandler) Insights(c *gin.Context) {
	weekID, ok := pathInt64(c, "weekId")
	if !ok {
		return
	}
	insights, err := h.analytics.GetInsights(weekID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, insights)
}
