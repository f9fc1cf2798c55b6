package usecase

import (
	"errors"
	"testing"

	"weekplanner/model"
)

func TestUpdateDailyData(t *testing.T) {
	store := newTestStore(t)
	weeks := NewWeekService(store)
	daily := NewDailyDataService(store)

	cw, err := weeks.GetCurrentWeek()
	if err != nil {
		t.Fatal(err)
	}

	water := 6
	notes := "felt great"
	row, err := daily.UpdateDailyData(cw.ID, 3, model.DailyDataPatch{WaterGlasses: &water, Notes: &notes})
	if err != nil {
		t.Fatalf("UpdateDailyData failed: %v", err)
	}
	if row.WaterGlasses != 6 || row.Notes != "felt great" {
		t.Errorf("row = %+v", row)
	}

	// A water-only patch must not clear the notes.
	water = 8
	row, err = daily.UpdateDailyData(cw.ID, 3, model.DailyDataPatch{WaterGlasses: &water})
	if err != nil {
		t.Fatal(err)
	}
	if row.WaterGlasses != 8 || row.Notes != "felt great" {
		t.Errorf("partial patch clobbered fields: %+v", row)
	}
}

func TestUpdateDailyDataMissingRow(t *testing.T) {
	store := newTestStore(t)
	daily := NewDailyDataService(store)

	water := 5
	_, err := daily.UpdateDailyData(12345, 0, model.DailyDataPatch{WaterGlasses: &water})
	if !errors.Is(err, ErrDailyDataNotFound) {
		t.Errorf("got %v, want ErrDailyDataNotFound", err)
	}
}

func TestGetDailyData(t *testing.T) {
	store := newTestStore(t)
	weeks := NewWeekService(store)
	daily := NewDailyDataService(store)

	cw, err := weeks.GetCurrentWeek()
	if err != nil {
		t.Fatal(err)
	}

	row, err := daily.GetDailyData(cw.ID, 0)
	if err != nil {
		t.Fatalf("GetDailyData failed: %v", err)
	}
	if row.WeekID != cw.ID || row.DayIndex != 0 {
		t.Errorf("row = %+v", row)
	}

	if _, err := daily.GetDailyData(cw.ID, 9); err == nil {
		t.Error("day index 9 should be rejected")
	}
}
