package storage

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"weekplanner/model"
	"weekplanner/utils"
)

// Migration upgrades a document in place from the version below it. Run
// receives a mutable document and must be idempotent: re-running against
// already-upgraded data is a no-op.
type Migration struct {
	Version string
	Name    string
	Run     func(doc *model.Document) error
}

type MigrationResult struct {
	Migrated bool   `json:"migrated"`
	From     string `json:"from"`
	To       string `json:"to"`
	Count    int    `json:"count"`
}

// MigrationRunner applies every registered migration above the document's
// stored version, in ascending version order.
type MigrationRunner struct {
	store      Store
	backups    *BackupManager
	migrations []Migration
}

func NewMigrationRunner(store Store, backups *BackupManager) *MigrationRunner {
	return &MigrationRunner{
		store:   store,
		backups: backups,
		migrations: []Migration{
			{
				Version: "2.0.0",
				Name:    "settings defaults and daily data backfill",
				Run:     migrateV1ToV2,
			},
		},
	}
}

// Run applies pending migrations. A pre-migration backup is attempted but
// its failure does not block the upgrade; a failed migration does.
func (r *MigrationRunner) Run() (*MigrationResult, error) {
	doc := r.store.Document()
	from := doc.Version
	if from == "" {
		from = "1.0.0"
	}

	pending := make([]Migration, 0, len(r.migrations))
	for _, m := range r.migrations {
		if CompareVersions(m.Version, from) > 0 {
			pending = append(pending, m)
		}
	}
	if len(pending) == 0 {
		return &MigrationResult{Migrated: false, From: from, To: from}, nil
	}

	if r.backups != nil {
		if _, err := r.backups.CreateBackup(); err != nil {
			slog.Warn("pre-migration backup failed", "error", err)
		}
	}

	to := pending[len(pending)-1].Version
	err := r.store.Update(func(d *model.Document) error {
		for _, m := range pending {
			slog.Info("applying migration", "version", m.Version, "name", m.Name)
			if err := m.Run(d); err != nil {
				return fmt.Errorf("migration %s (%s): %w", m.Version, m.Name, err)
			}
			d.Version = m.Version
		}
		d.MigratedAt = time.Now().UTC().Format(time.RFC3339)
		d.MigratedFrom = from
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("migrations complete", "from", from, "to", to, "count", len(pending))
	return &MigrationResult{Migrated: true, From: from, To: to, Count: len(pending)}, nil
}

// CompareVersions orders dot-separated numeric versions. Missing segments
// count as zero, so "2" equals "2.0.0".
func CompareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	n := len(as)
	if len(bs) > n {
		n = len(bs)
	}
	for i := 0; i < n; i++ {
		var av, bv int
		if i < len(as) {
			av, _ = strconv.Atoi(as[i])
		}
		if i < len(bs) {
			bv, _ = strconv.Atoi(bs[i])
		}
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}
	return 0
}

// migrateV1ToV2 fills in settings that v1 files never carried and backfills
// a daily data row per week day. Zero-valued settings are treated as absent,
// matching how older files omitted them entirely.
func migrateV1ToV2(doc *model.Document) error {
	if doc.Settings.StartOfWeek == 0 {
		doc.Settings.StartOfWeek = 1
	}
	if doc.Settings.DefaultWaterGoal == 0 {
		doc.Settings.DefaultWaterGoal = 8
	}
	if doc.Settings.DefaultCalorieGoal == 0 {
		doc.Settings.DefaultCalorieGoal = 2000
	}
	if doc.Settings.Theme == "" {
		doc.Settings.Theme = "light"
	}

	have := make(map[[2]int64]bool, len(doc.DailyData))
	for _, dd := range doc.DailyData {
		have[[2]int64{dd.WeekID, int64(dd.DayIndex)}] = true
	}
	now := time.Now().UTC()
	for _, w := range doc.Weeks {
		for day := 0; day < 7; day++ {
			if have[[2]int64{w.ID, int64(day)}] {
				continue
			}
			doc.DailyData = append(doc.DailyData, model.DailyData{
				ID:        utils.GenerateID(),
				WeekID:    w.ID,
				DayIndex:  day,
				CreatedAt: now,
				UpdatedAt: now,
			})
		}
	}
	return nil
}
