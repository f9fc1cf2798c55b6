package usecase

import (
	"errors"
	"testing"

	"weekplanner/model"
)

func TestExtractHour(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{"9:00", 9},
		{"9:00 AM", 9},
		{"9:00 PM", 21},
		{"12:00 AM", 0},
		{"12:30 PM", 12},
		{"14:00-15:00", 14},
		{"07:15", 7},
		{"", 12},
		{"morning", 12},
		{"99:00", 12},
	}
	for _, tt := range tests {
		if got := extractHour(tt.value); got != tt.want {
			t.Errorf("extractHour(%q) = %d, want %d", tt.value, got, tt.want)
		}
	}
}

func TestStddev(t *testing.T) {
	if got := stddev(nil); got != 0 {
		t.Errorf("stddev(nil) = %v", got)
	}
	if got := stddev([]float64{50, 50, 50}); got != 0 {
		t.Errorf("stddev of equal values = %v, want 0", got)
	}
	// Population stddev of {0, 100} is 50.
	if got := stddev([]float64{0, 100}); got != 50 {
		t.Errorf("stddev({0,100}) = %v, want 50", got)
	}
}

func TestGetWeekReport(t *testing.T) {
	store := newTestStore(t)
	weeks := NewWeekService(store)
	tasks := NewTaskService(store)
	meals := NewMealService(store)
	daily := NewDailyDataService(store)
	analytics := NewAnalyticsService(store)

	cw, err := weeks.GetCurrentWeek()
	if err != nil {
		t.Fatal(err)
	}

	minutes := 60
	morning, err := tasks.CreateTask(cw.ID, 0, model.TaskInput{
		Name: "Run", Time: "7:00 AM", Category: model.CategoryHealth, EstimatedMinutes: &minutes,
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tasks.ToggleTask(morning.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := tasks.CreateTask(cw.ID, 1, model.TaskInput{
		Name: "Review budget", Time: "6:00 PM", Category: model.CategoryFinance,
	}); err != nil {
		t.Fatal(err)
	}
	// 2:00 AM falls outside every bucket.
	if _, err := tasks.CreateTask(cw.ID, 2, model.TaskInput{Name: "Night owl", Time: "2:00 AM"}); err != nil {
		t.Fatal(err)
	}

	if _, err := meals.CreateMeal(cw.ID, 0, model.MealInput{
		MealType: model.MealLunch, Time: "12:00", FoodName: "Salad", Calories: 1400,
	}); err != nil {
		t.Fatal(err)
	}

	// Default water goal is 8; only day 0 meets it.
	for day, glasses := range map[int]int{0: 8, 1: 3} {
		g := glasses
		if _, err := daily.UpdateDailyData(cw.ID, day, model.DailyDataPatch{WaterGlasses: &g}); err != nil {
			t.Fatal(err)
		}
	}

	report, err := analytics.GetWeekReport(cw.ID)
	if err != nil {
		t.Fatalf("GetWeekReport failed: %v", err)
	}

	if report.Summary.TotalTasks != 3 || report.Summary.CompletedTasks != 1 {
		t.Errorf("summary = %+v", report.Summary)
	}
	if report.Summary.TotalMinutesPlanned != 60 || report.Summary.TotalMinutesCompleted != 60 {
		t.Errorf("minutes = %d planned, %d completed", report.Summary.TotalMinutesPlanned, report.Summary.TotalMinutesCompleted)
	}

	health := report.Categories[model.CategoryHealth]
	if health.Total != 1 || health.Completed != 1 || health.CompletionRate != 100 {
		t.Errorf("health category = %+v", health)
	}
	general := report.Categories[model.CategoryGeneral]
	if general.Total != 1 {
		t.Errorf("general category = %+v", general)
	}

	if len(report.DailyCompletion) != 7 {
		t.Fatalf("got %d daily completion rows, want 7", len(report.DailyCompletion))
	}
	if day0 := report.DailyCompletion[0]; day0.Total != 1 || day0.CompletionRate != 100 {
		t.Errorf("day 0 = %+v", day0)
	}

	td := report.TimeDistribution
	if td.Morning.Total != 1 || td.Morning.Completed != 1 {
		t.Errorf("morning bucket = %+v", td.Morning)
	}
	if td.Evening.Total != 1 || td.Evening.Completed != 0 {
		t.Errorf("evening bucket = %+v", td.Evening)
	}
	if td.Afternoon.Total != 0 {
		t.Errorf("afternoon bucket = %+v", td.Afternoon)
	}

	if report.Nutrition.TotalCalories != 1400 || report.Nutrition.AvgCaloriesPerDay != 200 {
		t.Errorf("nutrition = %+v", report.Nutrition)
	}
	if report.Hydration.DaysMetGoal != 1 || report.Hydration.TotalWaterGlasses != 11 {
		t.Errorf("hydration = %+v", report.Hydration)
	}

	if _, err := analytics.GetWeekReport(99999); !errors.Is(err, ErrWeekNotFound) {
		t.Errorf("got %v, want ErrWeekNotFound", err)
	}
}

func TestGetWeekReportEmptyWeek(t *testing.T) {
	store := newTestStore(t)
	weeks := NewWeekService(store)
	analytics := NewAnalyticsService(store)

	cw, err := weeks.GetCurrentWeek()
	if err != nil {
		t.Fatal(err)
	}

	report, err := analytics.GetWeekReport(cw.ID)
	if err != nil {
		t.Fatal(err)
	}
	if report.Summary.CompletionRate != 0 {
		t.Errorf("empty week completion rate = %v, want 0", report.Summary.CompletionRate)
	}
	if len(report.Categories) != 0 {
		t.Errorf("empty week has %d categories", len(report.Categories))
	}
}

func TestGetCompletionTrends(t *testing.T) {
	store := newTestStore(t)
	weeks := NewWeekService(store)
	tasks := NewTaskService(store)
	analytics := NewAnalyticsService(store)

	// Three archived weeks with rising completion: 0%, 50%, 100%.
	for i := 0; i < 3; i++ {
		cw, err := weeks.GetCurrentWeek()
		if err != nil {
			t.Fatal(err)
		}
		t1, err := tasks.CreateTask(cw.ID, 0, model.TaskInput{Name: "A", Time: "9:00"})
		if err != nil {
			t.Fatal(err)
		}
		t2, err := tasks.CreateTask(cw.ID, 0, model.TaskInput{Name: "B", Time: "10:00"})
		if err != nil {
			t.Fatal(err)
		}
		if i >= 1 {
			if _, err := tasks.ToggleTask(t1.ID); err != nil {
				t.Fatal(err)
			}
		}
		if i >= 2 {
			if _, err := tasks.ToggleTask(t2.ID); err != nil {
				t.Fatal(err)
			}
		}
		if _, err := weeks.ArchiveCurrentWeek(); err != nil {
			t.Fatal(err)
		}
	}

	points := analytics.GetCompletionTrends(0)
	if len(points) != 3 {
		t.Fatalf("got %d points, want 3", len(points))
	}
	wantRates := []float64{0, 50, 100}
	for i, p := range points {
		if p.CompletionRate != wantRates[i] {
			t.Errorf("point %d rate = %v, want %v", i, p.CompletionRate, wantRates[i])
		}
	}

	// Points are ordered and dated by when the week was archived.
	archivedWeeks := weeks.GetArchivedWeeks()
	if !points[len(points)-1].Date.Equal(*archivedWeeks[0].ArchivedAt) {
		t.Errorf("last point date = %v, want archive time %v", points[len(points)-1].Date, *archivedWeeks[0].ArchivedAt)
	}
	for i := 1; i < len(points); i++ {
		if points[i].Date.Before(points[i-1].Date) {
			t.Error("trend points not in archive order")
		}
	}

	limited := analytics.GetCompletionTrends(2)
	if len(limited) != 2 {
		t.Fatalf("got %d limited points, want 2", len(limited))
	}
	if limited[0].CompletionRate != 50 || limited[1].CompletionRate != 100 {
		t.Errorf("limit should keep the most recent weeks: %+v", limited)
	}
}

func TestGetMonthReport(t *testing.T) {
	store := newTestStore(t)
	weeks := NewWeekService(store)
	tasks := NewTaskService(store)
	analytics := NewAnalyticsService(store)

	cw, err := weeks.GetCurrentWeek()
	if err != nil {
		t.Fatal(err)
	}
	task, err := tasks.CreateTask(cw.ID, 0, model.TaskInput{Name: "A", Time: "9:00"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tasks.ToggleTask(task.ID); err != nil {
		t.Fatal(err)
	}

	report, err := analytics.GetMonthReport(cw.CreatedAt.Year(), cw.CreatedAt.Month())
	if err != nil {
		t.Fatalf("GetMonthReport failed: %v", err)
	}
	if report.Weeks != 1 {
		t.Fatalf("got %d weeks, want 1", report.Weeks)
	}
	if report.Summary.TotalTasks != 1 || report.Summary.CompletedTasks != 1 {
		t.Errorf("summary = %+v", report.Summary)
	}
	if report.Summary.CompletionRate != 100 {
		t.Errorf("completionRate = %v, want 100", report.Summary.CompletionRate)
	}
	// A single week cannot establish a trend.
	if report.Trends.Trend != "stable" || report.Trends.Change != 0 {
		t.Errorf("trends = %+v, want stable", report.Trends)
	}

	empty, err := analytics.GetMonthReport(1999, 1)
	if err != nil {
		t.Fatal(err)
	}
	if empty.Weeks != 0 || len(empty.WeeklyBreakdown) != 0 {
		t.Errorf("empty month = %+v", empty)
	}
}

func TestGetMonthReportTrendThreshold(t *testing.T) {
	store := newTestStore(t)
	weeks := NewWeekService(store)
	tasks := NewTaskService(store)
	analytics := NewAnalyticsService(store)

	// Week 1: one task, nothing done (0%).
	w1, err := weeks.GetCurrentWeek()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tasks.CreateTask(w1.ID, 0, model.TaskInput{Name: "A", Time: "9:00"}); err != nil {
		t.Fatal(err)
	}
	w2, err := weeks.ArchiveCurrentWeek()
	if err != nil {
		t.Fatal(err)
	}

	// Week 2: 1 of 19 done (5.26%). The raw change crosses the 5-point
	// threshold even though it rounds down to 5.
	for i := 0; i < 19; i++ {
		task, err := tasks.CreateTask(w2.ID, i%7, model.TaskInput{Name: "B", Time: "9:00"})
		if err != nil {
			t.Fatal(err)
		}
		if i == 0 {
			if _, err := tasks.ToggleTask(task.ID); err != nil {
				t.Fatal(err)
			}
		}
	}

	report, err := analytics.GetMonthReport(w1.CreatedAt.Year(), w1.CreatedAt.Month())
	if err != nil {
		t.Fatalf("GetMonthReport failed: %v", err)
	}
	if report.Trends.Trend != "improving" {
		t.Errorf("trend = %q, want improving", report.Trends.Trend)
	}
	if report.Trends.Change != 5 {
		t.Errorf("change = %d, want 5", report.Trends.Change)
	}
}

func TestGetProductivityScore(t *testing.T) {
	store := newTestStore(t)
	weeks := NewWeekService(store)
	tasks := NewTaskService(store)
	daily := NewDailyDataService(store)
	analytics := NewAnalyticsService(store)

	cw, err := weeks.GetCurrentWeek()
	if err != nil {
		t.Fatal(err)
	}

	// Perfect week: all tasks done, water goal met daily, uniform days.
	for day := 0; day < 7; day++ {
		task, err := tasks.CreateTask(cw.ID, day, model.TaskInput{Name: "Task", Time: "9:00"})
		if err != nil {
			t.Fatal(err)
		}
		if _, err := tasks.ToggleTask(task.ID); err != nil {
			t.Fatal(err)
		}
		water := 8
		if _, err := daily.UpdateDailyData(cw.ID, day, model.DailyDataPatch{WaterGlasses: &water}); err != nil {
			t.Fatal(err)
		}
	}

	score, err := analytics.GetProductivityScore(cw.ID)
	if err != nil {
		t.Fatalf("GetProductivityScore failed: %v", err)
	}
	if score != 100 {
		t.Errorf("perfect week score = %v, want 100", score)
	}
}

func TestGetProductivityScoreCountsEmptyDays(t *testing.T) {
	store := newTestStore(t)
	weeks := NewWeekService(store)
	tasks := NewTaskService(store)
	analytics := NewAnalyticsService(store)

	cw, err := weeks.GetCurrentWeek()
	if err != nil {
		t.Fatal(err)
	}

	// Everything done, but all of it on day 0. The six task-less days
	// count as 0% toward consistency, they are not skipped.
	for i := 0; i < 2; i++ {
		task, err := tasks.CreateTask(cw.ID, 0, model.TaskInput{Name: "Task", Time: "9:00"})
		if err != nil {
			t.Fatal(err)
		}
		if _, err := tasks.ToggleTask(task.ID); err != nil {
			t.Fatal(err)
		}
	}

	score, err := analytics.GetProductivityScore(cw.ID)
	if err != nil {
		t.Fatalf("GetProductivityScore failed: %v", err)
	}
	// completion 100 * 0.4, hydration 0, consistency (100 - stddev of
	// one 100 and six 0s, about 65.0) * 0.4: 66.0 after rounding.
	if score != 66 {
		t.Errorf("front-loaded week score = %v, want 66", score)
	}
}

func TestGetInsights(t *testing.T) {
	store := newTestStore(t)
	weeks := NewWeekService(store)
	analytics := NewAnalyticsService(store)

	cw, err := weeks.GetCurrentWeek()
	if err != nil {
		t.Fatal(err)
	}

	insights, err := analytics.GetInsights(cw.ID)
	if err != nil {
		t.Fatalf("GetInsights failed: %v", err)
	}
	if len(insights) == 0 {
		t.Fatal("empty week should produce at least the no-tasks insight")
	}
	if insights[0].Type != "info" {
		t.Errorf("insight type = %q, want info", insights[0].Type)
	}
}
