package usecase

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"weekplanner/model"
	"weekplanner/storage"
)

// AnalyticsService computes read-only reports over the stored document. It
// never writes, so every method works from one snapshot.
type AnalyticsService struct {
	store storage.Store
}

func NewAnalyticsService(store storage.Store) *AnalyticsService {
	return &AnalyticsService{store: store}
}

// GetWeekReport aggregates one week: task summary, nutrition, hydration,
// per-category and per-day breakdowns, and the time-of-day distribution.
// Averages always divide by seven days.
func (s *AnalyticsService) GetWeekReport(weekID int64) (*model.WeekReport, error) {
	doc := s.store.Document()
	if findWeek(&doc, weekID) == nil {
		return nil, ErrWeekNotFound
	}

	report := model.WeekReport{
		Categories:      map[model.Category]model.CategoryStats{},
		DailyCompletion: make([]model.DayCompletion, 7),
	}
	for day := 0; day < 7; day++ {
		report.DailyCompletion[day].DayIndex = day
	}

	for _, t := range doc.Tasks {
		if t.WeekID != weekID {
			continue
		}
		report.Summary.TotalTasks++
		minutes := 0
		if t.EstimatedMinutes != nil {
			minutes = *t.EstimatedMinutes
		}
		report.Summary.TotalMinutesPlanned += minutes
		if t.IsCompleted {
			report.Summary.CompletedTasks++
			report.Summary.TotalMinutesCompleted += minutes
		}

		cat := t.Category
		if cat == "" {
			cat = model.CategoryGeneral
		}
		cs := report.Categories[cat]
		cs.Total++
		cs.TotalMinutes += minutes
		if t.IsCompleted {
			cs.Completed++
		}
		report.Categories[cat] = cs

		if t.DayIndex >= 0 && t.DayIndex < 7 {
			dc := &report.DailyCompletion[t.DayIndex]
			dc.Total++
			if t.IsCompleted {
				dc.Completed++
			}
		}

		if b := bucketForHour(&report.TimeDistribution, extractHour(t.Time)); b != nil {
			b.Total++
			if t.IsCompleted {
				b.Completed++
			}
		}
	}

	report.Summary.CompletionRate = rate(report.Summary.CompletedTasks, report.Summary.TotalTasks)
	for cat, cs := range report.Categories {
		cs.CompletionRate = rate(cs.Completed, cs.Total)
		report.Categories[cat] = cs
	}
	for day := range report.DailyCompletion {
		dc := &report.DailyCompletion[day]
		dc.CompletionRate = rate(dc.Completed, dc.Total)
	}

	waterGoal := doc.Settings.DefaultWaterGoal
	for _, m := range doc.Meals {
		if m.WeekID != weekID {
			continue
		}
		report.Nutrition.TotalMeals++
		report.Nutrition.TotalCalories += m.Calories
	}
	report.Nutrition.AvgCaloriesPerDay = float64(report.Nutrition.TotalCalories) / 7
	report.Nutrition.AvgMealsPerDay = float64(report.Nutrition.TotalMeals) / 7

	for _, dd := range doc.DailyData {
		if dd.WeekID != weekID {
			continue
		}
		report.Hydration.TotalWaterGlasses += dd.WaterGlasses
		if waterGoal > 0 && dd.WaterGlasses >= waterGoal {
			report.Hydration.DaysMetGoal++
		}
	}
	report.Hydration.AvgWaterPerDay = float64(report.Hydration.TotalWaterGlasses) / 7

	return &report, nil
}

// GetMonthReport aggregates every week created in the given month and
// compares the newest week against the oldest to call the trend.
func (s *AnalyticsService) GetMonthReport(year int, month time.Month) (*model.MonthReport, error) {
	doc := s.store.Document()

	weeks := make([]model.Week, 0, len(doc.Weeks))
	for _, w := range doc.Weeks {
		if w.CreatedAt.Year() == year && w.CreatedAt.Month() == month {
			weeks = append(weeks, w)
		}
	}
	sort.Slice(weeks, func(i, j int) bool {
		return weeks[i].CreatedAt.Before(weeks[j].CreatedAt)
	})

	report := model.MonthReport{
		Weeks:           len(weeks),
		WeeklyBreakdown: make([]model.WeekBreakdown, 0, len(weeks)),
		Trends:          model.Trend{Trend: "stable"},
	}

	for _, w := range weeks {
		bd := model.WeekBreakdown{WeekID: w.WeekID}
		for _, t := range doc.Tasks {
			if t.WeekID != w.ID {
				continue
			}
			bd.TotalTasks++
			minutes := 0
			if t.EstimatedMinutes != nil {
				minutes = *t.EstimatedMinutes
			}
			bd.TotalMinutesPlanned += minutes
			if t.IsCompleted {
				bd.CompletedTasks++
				bd.TotalMinutesCompleted += minutes
			}
		}
		bd.CompletionRate = rate(bd.CompletedTasks, bd.TotalTasks)
		report.WeeklyBreakdown = append(report.WeeklyBreakdown, bd)

		report.Summary.TotalTasks += bd.TotalTasks
		report.Summary.CompletedTasks += bd.CompletedTasks

		for _, m := range doc.Meals {
			if m.WeekID == w.ID {
				report.Summary.TotalCalories += m.Calories
			}
		}
		for _, dd := range doc.DailyData {
			if dd.WeekID == w.ID {
				report.Summary.TotalWater += dd.WaterGlasses
			}
		}
	}
	report.Summary.CompletionRate = rate(report.Summary.CompletedTasks, report.Summary.TotalTasks)

	if n := len(report.WeeklyBreakdown); n >= 2 {
		first := report.WeeklyBreakdown[0].CompletionRate
		last := report.WeeklyBreakdown[n-1].CompletionRate
		// The threshold applies to the raw change; rounding is for the
		// payload only.
		change := last - first
		report.Trends.Change = int(math.Round(change))
		switch {
		case change > 5:
			report.Trends.Trend = "improving"
		case change < -5:
			report.Trends.Trend = "declining"
		}
	}

	return &report, nil
}

// GetCompletionTrends returns per-week completion for the most recent
// archived weeks, oldest first so the points chart left to right. Limit
// caps how many weeks are considered; zero or negative means all.
func (s *AnalyticsService) GetCompletionTrends(limit int) []model.CompletionTrendPoint {
	doc := s.store.Document()

	archived := make([]model.Week, 0, len(doc.Weeks))
	for _, w := range doc.Weeks {
		if w.ArchivedAt != nil {
			archived = append(archived, w)
		}
	}
	sort.Slice(archived, func(i, j int) bool {
		return archived[i].ArchivedAt.Before(*archived[j].ArchivedAt)
	})
	if limit > 0 && len(archived) > limit {
		archived = archived[len(archived)-limit:]
	}

	points := make([]model.CompletionTrendPoint, 0, len(archived))
	for _, w := range archived {
		p := model.CompletionTrendPoint{WeekID: w.WeekID, Date: *w.ArchivedAt}
		for _, t := range doc.Tasks {
			if t.WeekID != w.ID {
				continue
			}
			p.TotalTasks++
			if t.IsCompleted {
				p.CompletedTasks++
			}
		}
		p.CompletionRate = rate(p.CompletedTasks, p.TotalTasks)
		points = append(points, p)
	}
	return points
}

// GetProductivityScore blends completion, hydration and day-to-day
// consistency for one week into a 0-100 score.
func (s *AnalyticsService) GetProductivityScore(weekID int64) (float64, error) {
	report, err := s.GetWeekReport(weekID)
	if err != nil {
		return 0, err
	}

	completion := report.Summary.CompletionRate
	hydration := float64(report.Hydration.DaysMetGoal) / 7 * 100

	// All seven days feed the consistency score; a task-less day counts
	// as 0% rather than being skipped, so front-loading the week costs
	// consistency.
	dailyRates := make([]float64, 0, 7)
	for _, dc := range report.DailyCompletion {
		dailyRates = append(dailyRates, dc.CompletionRate)
	}
	consistency := math.Max(0, 100-stddev(dailyRates))

	score := completion*0.4 + hydration*0.2 + consistency*0.4
	return math.Round(score*10) / 10, nil
}

// GetInsights turns one week's report into short human-readable callouts.
func (s *AnalyticsService) GetInsights(weekID int64) ([]model.Insight, error) {
	report, err := s.GetWeekReport(weekID)
	if err != nil {
		return nil, err
	}

	insights := []model.Insight{}

	switch {
	case report.Summary.TotalTasks == 0:
		insights = append(insights, model.Insight{
			Type:    "info",
			Message: "No tasks planned this week yet. Add a few to get started.",
			Icon:    "📝",
		})
	case report.Summary.CompletionRate >= 80:
		insights = append(insights, model.Insight{
			Type:    "success",
			Message: fmt.Sprintf("Great week: %d of %d tasks done.", report.Summary.CompletedTasks, report.Summary.TotalTasks),
			Icon:    "🎉",
		})
	case report.Summary.CompletionRate < 40:
		insights = append(insights, model.Insight{
			Type:    "warning",
			Message: "Less than half of planned tasks were completed. Consider planning fewer tasks.",
			Icon:    "⚠️",
		})
	}

	if report.Hydration.DaysMetGoal >= 5 {
		insights = append(insights, model.Insight{
			Type:    "success",
			Message: fmt.Sprintf("Water goal met on %d days.", report.Hydration.DaysMetGoal),
			Icon:    "💧",
		})
	} else if report.Hydration.TotalWaterGlasses > 0 && report.Hydration.DaysMetGoal <= 1 {
		insights = append(insights, model.Insight{
			Type:    "tip",
			Message: "Hydration is lagging. Try keeping a glass of water at your desk.",
			Icon:    "💧",
		})
	}

	if best := bestCategory(report.Categories); best != "" {
		insights = append(insights, model.Insight{
			Type:    "info",
			Message: fmt.Sprintf("Strongest category this week: %s.", best),
			Icon:    "🏆",
		})
	}

	morning := report.TimeDistribution.Morning
	evening := report.TimeDistribution.Evening
	if morning.Total > 0 && evening.Total > 0 {
		if rate(morning.Completed, morning.Total) > rate(evening.Completed, evening.Total)+20 {
			insights = append(insights, model.Insight{
				Type:    "tip",
				Message: "You finish more in the morning. Schedule important tasks earlier.",
				Icon:    "🌅",
			})
		}
	}

	return insights, nil
}

func bestCategory(categories map[model.Category]model.CategoryStats) model.Category {
	var best model.Category
	bestRate := -1.0
	// Deterministic order so ties do not flap between calls.
	for _, cat := range model.Categories {
		cs, ok := categories[cat]
		if !ok || cs.Total < 2 {
			continue
		}
		if cs.CompletionRate > bestRate {
			bestRate = cs.CompletionRate
			best = cat
		}
	}
	return best
}

// extractHour parses the leading digits of a time field like "9:00 AM" or
// "14:30-15:00" into a 24-hour value. Unparsable input lands at noon.
func extractHour(value string) int {
	value = strings.TrimSpace(value)
	i := 0
	for i < len(value) && value[i] >= '0' && value[i] <= '9' {
		i++
	}
	if i == 0 {
		return 12
	}
	hour, err := strconv.Atoi(value[:i])
	if err != nil || hour < 0 || hour > 23 {
		return 12
	}
	upper := strings.ToUpper(value)
	if strings.Contains(upper, "PM") && hour < 12 {
		hour += 12
	} else if strings.Contains(upper, "AM") && hour == 12 {
		hour = 0
	}
	return hour
}

// bucketForHour maps an hour onto the matching distribution bucket. Hours
// outside 5-22 belong to no bucket.
func bucketForHour(dist *model.TimeDistribution, hour int) *model.TimeBucket {
	switch {
	case hour >= 5 && hour < 12:
		return &dist.Morning
	case hour >= 12 && hour < 17:
		return &dist.Afternoon
	case hour >= 17 && hour < 22:
		return &dist.Evening
	}
	return nil
}

func rate(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}

// stddev is the population standard deviation.
func stddev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(values))
	return math.Sqrt(variance)
}
