package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "2.0.0", -1},
		{"2.0.0", "1.0.0", 1},
		{"2.0.0", "2.0.0", 0},
		{"2", "2.0.0", 0},
		{"1.10.0", "1.9.0", 1},
		{"1.0.1", "1.0", 1},
		{"", "1.0.0", -1},
	}
	for _, tt := range tests {
		if got := CompareVersions(tt.a, tt.b); got != tt.want {
			t.Errorf("CompareVersions(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func writeV1File(t *testing.T, path string, raw string) *FileStore {
	t.Helper()
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}
	store := NewFileStore(path)
	if err := store.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	return store
}

func TestMigrationV1ToV2(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner-data.json")
	raw := `{
		"version": "1.0.0",
		"currentWeekId": 100,
		"weeks": [{"id": 100, "weekId": "2026-W01", "isCurrent": true, "createdAt": "2026-01-01T00:00:00Z", "archivedAt": null}],
		"tasks": [],
		"meals": [],
		"dailyData": [{"id": 1, "weekId": 100, "dayIndex": 0, "waterGlasses": 5, "notes": "", "createdAt": "2026-01-01T00:00:00Z", "updatedAt": "2026-01-01T00:00:00Z"}],
		"taskTemplates": [],
		"settings": {"startOfWeek": 0, "defaultWaterGoal": 0, "defaultCalorieGoal": 0, "notifications": false, "theme": ""}
	}`
	store := writeV1File(t, path, raw)

	runner := NewMigrationRunner(store, nil)
	result, err := runner.Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !result.Migrated {
		t.Fatal("expected migration to run")
	}
	if result.From != "1.0.0" || result.To != "2.0.0" || result.Count != 1 {
		t.Errorf("result = %+v, want from 1.0.0 to 2.0.0 count 1", result)
	}

	doc := store.Document()
	if doc.Version != "2.0.0" {
		t.Errorf("version = %q, want 2.0.0", doc.Version)
	}
	if doc.MigratedFrom != "1.0.0" {
		t.Errorf("migratedFrom = %q, want 1.0.0", doc.MigratedFrom)
	}
	if doc.MigratedAt == "" {
		t.Error("migratedAt should be set")
	}

	s := doc.Settings
	if s.StartOfWeek != 1 || s.DefaultWaterGoal != 8 || s.DefaultCalorieGoal != 2000 || s.Theme != "light" {
		t.Errorf("settings not defaulted: %+v", s)
	}

	// One pre-existing row plus six backfilled ones.
	if len(doc.DailyData) != 7 {
		t.Fatalf("got %d daily data rows, want 7", len(doc.DailyData))
	}
	for _, dd := range doc.DailyData {
		if dd.DayIndex == 0 && dd.WaterGlasses != 5 {
			t.Errorf("existing row was overwritten: %+v", dd)
		}
	}
}

func TestMigrationMissingVersionTreatedAsV1(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner-data.json")
	raw := `{"weeks": [], "tasks": [], "meals": [], "dailyData": [], "taskTemplates": [], "settings": {}}`
	store := writeV1File(t, path, raw)

	runner := NewMigrationRunner(store, nil)
	result, err := runner.Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !result.Migrated || result.From != "1.0.0" {
		t.Errorf("result = %+v, want migration from 1.0.0", result)
	}
}

func TestMigrationUpToDateIsNoOp(t *testing.T) {
	store := newTestStore(t)

	runner := NewMigrationRunner(store, nil)
	result, err := runner.Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Migrated {
		t.Errorf("fresh document should not migrate: %+v", result)
	}

	doc := store.Document()
	if doc.MigratedAt != "" {
		t.Error("no-op run must not stamp migratedAt")
	}
}

func TestMigrationCreatesBackupFirst(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner-data.json")
	raw := `{"version": "1.0.0", "weeks": [], "tasks": [], "meals": [], "dailyData": [], "taskTemplates": [], "settings": {}}`
	store := writeV1File(t, path, raw)
	bm := newTestBackupManager(t, store, 10)

	runner := NewMigrationRunner(store, bm)
	if _, err := runner.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	backups := bm.ListBackups()
	if len(backups) != 1 {
		t.Fatalf("got %d backups, want 1 pre-migration backup", len(backups))
	}

	// The backup must hold the unmigrated document.
	reloaded := NewFileStore(backups[0].Path)
	if err := reloaded.Initialize(); err != nil {
		t.Fatal(err)
	}
	if v := reloaded.Document().Version; v != "1.0.0" {
		t.Errorf("backup version = %q, want the pre-migration 1.0.0", v)
	}
}

func TestMigrationIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner-data.json")
	raw := `{
		"version": "1.0.0",
		"weeks": [{"id": 100, "weekId": "2026-W01", "isCurrent": true, "createdAt": "2026-01-01T00:00:00Z", "archivedAt": null}],
		"tasks": [], "meals": [], "dailyData": [], "taskTemplates": [], "settings": {}
	}`
	store := writeV1File(t, path, raw)

	runner := NewMigrationRunner(store, nil)
	if _, err := runner.Run(); err != nil {
		t.Fatal(err)
	}
	first := store.Document()

	result, err := runner.Run()
	if err != nil {
		t.Fatal(err)
	}
	if result.Migrated {
		t.Error("second run should be a no-op")
	}
	if got := store.Document(); len(got.DailyData) != len(first.DailyData) {
		t.Errorf("second run changed daily data: %d vs %d", len(got.DailyData), len(first.DailyData))
	}
}
