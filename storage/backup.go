package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"weekplanner/model"
)

const (
	backupPrefix = "backup-"
	backupSuffix = ".json"
)

// backup filenames must stay lexicographically sortable, so the UTC
// timestamp keeps its fixed-width layout with ":" and "." swapped for "-".
var backupNameSanitizer = strings.NewReplacer(":", "-", ".", "-")

type BackupInfo struct {
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	SizeBytes int64     `json:"sizeBytes"`
	CreatedAt time.Time `json:"createdAt"`
}

// BackupManager snapshots the storage document into timestamped files and
// prunes the oldest ones past the retention limit.
type BackupManager struct {
	store      Store
	dir        string
	maxBackups int
	now        func() time.Time
}

func NewBackupManager(store Store, dir string, maxBackups int) *BackupManager {
	if maxBackups <= 0 {
		maxBackups = 10
	}
	return &BackupManager{
		store:      store,
		dir:        dir,
		maxBackups: maxBackups,
		now:        time.Now,
	}
}

func (b *BackupManager) Initialize() error {
	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return fmt.Errorf("create backup directory: %w", err)
	}
	return nil
}

// CreateBackup writes the current document to a new timestamped file and
// prunes old backups. Pruning failures are logged, not returned.
func (b *BackupManager) CreateBackup() (*BackupInfo, error) {
	timer := trackOperation("backup", "document")
	defer timer.ObserveDuration()

	doc := b.store.Document()
	data, err := json.MarshalIndent(&doc, "", "  ")
	if err != nil {
		trackFailure("backup")
		return nil, fmt.Errorf("encode backup: %w", err)
	}

	stamp := b.now().UTC().Format("2006-01-02T15:04:05.000Z")
	name := backupPrefix + backupNameSanitizer.Replace(stamp) + backupSuffix
	path := filepath.Join(b.dir, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		trackFailure("backup")
		return nil, fmt.Errorf("write backup %s: %w", name, err)
	}
	backupsTotal.Inc()
	slog.Info("backup created", "name", name, "bytes", len(data))

	if err := b.pruneOldBackups(); err != nil {
		slog.Warn("failed to prune old backups", "error", err)
	}

	return &BackupInfo{
		Name:      name,
		Path:      path,
		SizeBytes: int64(len(data)),
		CreatedAt: b.now().UTC(),
	}, nil
}

// ListBackups returns backups newest first. Errors degrade to an empty
// list so callers rendering the backup picker never fail outright.
func (b *BackupManager) ListBackups() []BackupInfo {
	entries, err := os.ReadDir(b.dir)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("failed to list backups", "dir", b.dir, "error", err)
		}
		return []BackupInfo{}
	}

	backups := make([]BackupInfo, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, backupPrefix) || !strings.HasSuffix(name, backupSuffix) {
			continue
		}
		info := BackupInfo{Name: name, Path: filepath.Join(b.dir, name)}
		if fi, err := entry.Info(); err == nil {
			info.SizeBytes = fi.Size()
			info.CreatedAt = fi.ModTime().UTC()
		}
		backups = append(backups, info)
	}

	// The sanitized timestamp sorts lexicographically in time order.
	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Name > backups[j].Name
	})
	return backups
}

// RestoreBackup replaces the whole document with the named backup's
// contents. The current state is backed up first so a restore is never a
// one-way door.
func (b *BackupManager) RestoreBackup(name string) error {
	if name != filepath.Base(name) || !strings.HasPrefix(name, backupPrefix) || !strings.HasSuffix(name, backupSuffix) {
		return fmt.Errorf("invalid backup name %q", name)
	}

	raw, err := os.ReadFile(filepath.Join(b.dir, name))
	if err != nil {
		return fmt.Errorf("read backup %s: %w", name, err)
	}

	var doc model.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("backup %s is not a valid document: %w", name, err)
	}
	normalize(&doc)

	if _, err := b.CreateBackup(); err != nil {
		slog.Warn("failed to back up current state before restore", "error", err)
	}

	if err := b.store.Update(func(d *model.Document) error {
		*d = doc
		return nil
	}); err != nil {
		return fmt.Errorf("restore backup %s: %w", name, err)
	}
	slog.Info("backup restored", "name", name)
	return nil
}

func (b *BackupManager) pruneOldBackups() error {
	backups := b.ListBackups()
	if len(backups) <= b.maxBackups {
		return nil
	}
	for _, old := range backups[b.maxBackups:] {
		if err := os.Remove(old.Path); err != nil {
			return fmt.Errorf("remove backup %s: %w", old.Name, err)
		}
		slog.Info("pruned old backup", "name", old.Name)
	}
	return nil
}
