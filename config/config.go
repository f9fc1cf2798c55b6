package config

import (
	"path/filepath"
	"time"

	"weekplanner/utils"
)

type LogConfig struct {
	Level      string
	File       string
	Console    bool
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type Config struct {
	Port           string
	DataDir        string
	DataPath       string
	BackupDir      string
	MaxBackups     int
	BackupInterval time.Duration
	Log            LogConfig
}

// Load assembles the runtime configuration from the environment. Every
// value has a default so the planner runs with no configuration at all.
func Load() *Config {
	dataDir := utils.GetEnvAsString("PLANNER_DATA_DIR", "data")

	return &Config{
		Port:           utils.GetEnvAsString("PORT", "8080"),
		DataDir:        dataDir,
		DataPath:       utils.GetEnvAsString("PLANNER_DATA_FILE", filepath.Join(dataDir, "planner-data.json")),
		BackupDir:      utils.GetEnvAsString("PLANNER_BACKUP_DIR", filepath.Join(dataDir, "backups")),
		MaxBackups:     utils.GetEnvAsInt("PLANNER_MAX_BACKUPS", 10),
		BackupInterval: utils.GetEnvAsDuration("PLANNER_BACKUP_INTERVAL", time.Hour),
		Log: LogConfig{
			Level:      utils.GetEnvAsString("LOG_LEVEL", "info"),
			File:       utils.GetEnvAsString("LOG_FILE", ""),
			Console:    utils.GetEnvAsBool("LOG_CONSOLE", true),
			MaxSizeMB:  utils.GetEnvAsInt("LOG_MAX_SIZE_MB", 10),
			MaxBackups: utils.GetEnvAsInt("LOG_MAX_BACKUPS", 5),
			MaxAgeDays: utils.GetEnvAsInt("LOG_MAX_AGE_DAYS", 30),
		},
	}
}
