package usecase

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"weekplanner/model"
	"weekplanner/storage"
	"weekplanner/utils"
)

// WeekService owns the week lifecycle: exactly one week is current at any
// time, and archiving the current week immediately starts a fresh one.
type WeekService struct {
	store storage.Store
	now   func() time.Time
}

func NewWeekService(store storage.Store) *WeekService {
	return &WeekService{store: store, now: time.Now}
}

// GetCurrentWeek returns the active week with everything it owns, creating
// the first week on demand.
func (s *WeekService) GetCurrentWeek() (*model.CurrentWeek, error) {
	doc := s.store.Document()
	if w := findCurrentWeek(&doc); w != nil {
		return assembleCurrentWeek(&doc, w), nil
	}

	if err := s.store.Update(func(d *model.Document) error {
		s.createWeekLocked(d)
		return nil
	}); err != nil {
		return nil, err
	}

	doc = s.store.Document()
	w := findCurrentWeek(&doc)
	if w == nil {
		return nil, ErrCurrentWeekNotFound
	}
	return assembleCurrentWeek(&doc, w), nil
}

// ArchiveCurrentWeek stamps the active week as archived and creates its
// replacement in the same write.
func (s *WeekService) ArchiveCurrentWeek() (*model.CurrentWeek, error) {
	var archivedID int64
	err := s.store.Update(func(d *model.Document) error {
		w := findCurrentWeek(d)
		if w == nil {
			return ErrCurrentWeekNotFound
		}
		archivedAt := s.now().UTC()
		w.ArchivedAt = &archivedAt
		w.IsCurrent = false
		archivedID = w.ID
		d.CurrentWeekID = nil
		s.createWeekLocked(d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	slog.Info("week archived", "weekId", archivedID)
	return s.GetCurrentWeek()
}

// UpdateWeekSummary sets the free-text summary on any week, current or
// archived.
func (s *WeekService) UpdateWeekSummary(weekID int64, summary string) (*model.Week, error) {
	clean, err := utils.ValidateWeekSummary(summary)
	if err != nil {
		return nil, err
	}

	var updated model.Week
	err = s.store.Update(func(d *model.Document) error {
		for i := range d.Weeks {
			if d.Weeks[i].ID == weekID {
				d.Weeks[i].Summary = clean
				updated = d.Weeks[i]
				return nil
			}
		}
		return ErrWeekNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// GetArchivedWeeks returns archived weeks newest first.
func (s *WeekService) GetArchivedWeeks() []model.Week {
	doc := s.store.Document()
	archived := make([]model.Week, 0, len(doc.Weeks))
	for _, w := range doc.Weeks {
		if w.ArchivedAt != nil {
			archived = append(archived, w)
		}
	}
	sort.Slice(archived, func(i, j int) bool {
		return archived[i].ArchivedAt.After(*archived[j].ArchivedAt)
	})
	return archived
}

// GetWeekStats aggregates tasks, meals and hydration for one week.
func (s *WeekService) GetWeekStats(weekID int64) (*model.WeekStats, error) {
	doc := s.store.Document()
	if findWeek(&doc, weekID) == nil {
		return nil, ErrWeekNotFound
	}

	stats := model.WeekStats{}
	for _, t := range doc.Tasks {
		if t.WeekID != weekID {
			continue
		}
		stats.TotalTasks++
		if t.IsCompleted {
			stats.CompletedTasks++
		}
		if t.EstimatedMinutes != nil {
			stats.TotalMinutesPlanned += *t.EstimatedMinutes
		}
	}
	if stats.TotalTasks > 0 {
		stats.CompletionRate = float64(stats.CompletedTasks) / float64(stats.TotalTasks) * 100
	}

	totalCalories := 0
	for _, m := range doc.Meals {
		if m.WeekID == weekID {
			totalCalories += m.Calories
		}
	}
	totalWater := 0
	for _, dd := range doc.DailyData {
		if dd.WeekID == weekID {
			totalWater += dd.WaterGlasses
		}
	}
	// Weeks always span seven days regardless of how many rows have data.
	stats.AvgWaterGlasses = float64(totalWater) / 7
	stats.AvgCalories = float64(totalCalories) / 7

	return &stats, nil
}

// createWeekLocked appends a new current week inside an Update callback,
// seeding seven daily data rows and cloning default templates one task per
// day.
func (s *WeekService) createWeekLocked(d *model.Document) *model.Week {
	now := s.now().UTC()
	week := model.Week{
		ID:        utils.GenerateID(),
		WeekID:    generateWeekID(now),
		IsCurrent: true,
		CreatedAt: now,
	}
	d.Weeks = append(d.Weeks, week)
	id := week.ID
	d.CurrentWeekID = &id

	for day := 0; day < 7; day++ {
		d.DailyData = append(d.DailyData, model.DailyData{
			ID:        utils.GenerateID(),
			WeekID:    week.ID,
			DayIndex:  day,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	for _, tpl := range d.TaskTemplates {
		if !tpl.IsDefault {
			continue
		}
		for day := 0; day < 7; day++ {
			d.Tasks = append(d.Tasks, model.Task{
				ID:               utils.GenerateID(),
				WeekID:           week.ID,
				DayIndex:         day,
				Time:             tpl.Time,
				Name:             tpl.Name,
				Category:         tpl.Category,
				EstimatedMinutes: tpl.EstimatedMinutes,
				Order:            countDayTasks(d, week.ID, day),
				CreatedAt:        now,
				UpdatedAt:        now,
			})
		}
	}

	slog.Info("week created", "weekId", week.ID, "label", week.WeekID)
	return &d.Weeks[len(d.Weeks)-1]
}

// generateWeekID renders labels like "2026-W35". The week number counts
// seven-day blocks from January 1st offset by that day's weekday, so week 1
// is the partial week containing January 1st.
func generateWeekID(t time.Time) string {
	jan1 := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	days := int(t.Sub(jan1).Hours() / 24)
	week := (days+int(jan1.Weekday())+1+6) / 7
	return fmt.Sprintf("%d-W%02d", t.Year(), week)
}

func findCurrentWeek(d *model.Document) *model.Week {
	if d.CurrentWeekID != nil {
		if w := findWeek(d, *d.CurrentWeekID); w != nil {
			return w
		}
	}
	for i := range d.Weeks {
		if d.Weeks[i].IsCurrent {
			return &d.Weeks[i]
		}
	}
	return nil
}

func findWeek(d *model.Document, id int64) *model.Week {
	for i := range d.Weeks {
		if d.Weeks[i].ID == id {
			return &d.Weeks[i]
		}
	}
	return nil
}

func countDayTasks(d *model.Document, weekID int64, dayIndex int) int {
	n := 0
	for _, t := range d.Tasks {
		if t.WeekID == weekID && t.DayIndex == dayIndex {
			n++
		}
	}
	return n
}

func assembleCurrentWeek(d *model.Document, w *model.Week) *model.CurrentWeek {
	cw := model.CurrentWeek{
		Week:      *w,
		Tasks:     []model.Task{},
		Meals:     []model.Meal{},
		DailyData: []model.DailyData{},
	}
	for _, t := range d.Tasks {
		if t.WeekID == w.ID {
			cw.Tasks = append(cw.Tasks, t)
		}
	}
	sort.Slice(cw.Tasks, func(i, j int) bool {
		if cw.Tasks[i].DayIndex != cw.Tasks[j].DayIndex {
			return cw.Tasks[i].DayIndex < cw.Tasks[j].DayIndex
		}
		return cw.Tasks[i].Order < cw.Tasks[j].Order
	})
	for _, m := range d.Meals {
		if m.WeekID == w.ID {
			cw.Meals = append(cw.Meals, m)
		}
	}
	for _, dd := range d.DailyData {
		if dd.WeekID == w.ID {
			cw.DailyData = append(cw.DailyData, dd)
		}
	}
	sort.Slice(cw.DailyData, func(i, j int) bool {
		return cw.DailyData[i].DayIndex < cw.DailyData[j].DayIndex
	})
	return &cw
}
