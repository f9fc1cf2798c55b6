package usecase

import (
	"time"

	"weekplanner/model"
	"weekplanner/storage"
	"weekplanner/utils"
)

// DailyDataService updates the per-day hydration and notes rows that are
// seeded when a week is created. It never creates rows itself.
type DailyDataService struct {
	store storage.Store
	now   func() time.Time
}

func NewDailyDataService(store storage.Store) *DailyDataService {
	return &DailyDataService{store: store, now: time.Now}
}

// GetDailyData returns the row for one day of a week.
func (s *DailyDataService) GetDailyData(weekID int64, dayIndex int) (*model.DailyData, error) {
	if err := utils.ValidateDayIndex(dayIndex); err != nil {
		return nil, err
	}
	doc := s.store.Document()
	for _, dd := range doc.DailyData {
		if dd.WeekID == weekID && dd.DayIndex == dayIndex {
			return &dd, nil
		}
	}
	return nil, ErrDailyDataNotFound
}

// UpdateDailyData patches the existing row for the day. A missing row means
// the week was never properly seeded, which is an error, not an upsert.
func (s *DailyDataService) UpdateDailyData(weekID int64, dayIndex int, patch model.DailyDataPatch) (*model.DailyData, error) {
	if err := utils.ValidateDayIndex(dayIndex); err != nil {
		return nil, err
	}
	if err := utils.ValidateAndSanitizeDailyDataPatch(&patch); err != nil {
		return nil, err
	}

	var updated model.DailyData
	err := s.store.Update(func(d *model.Document) error {
		for i := range d.DailyData {
			if d.DailyData[i].WeekID != weekID || d.DailyData[i].DayIndex != dayIndex {
				continue
			}
			row := &d.DailyData[i]
			if patch.WaterGlasses != nil {
				row.WaterGlasses = *patch.WaterGlasses
			}
			if patch.Notes != nil {
				row.Notes = *patch.Notes
			}
			row.UpdatedAt = s.now().UTC()
			updated = *row
			return nil
		}
		return ErrDailyDataNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
