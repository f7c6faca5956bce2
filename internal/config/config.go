// Package config holds process configuration read from the environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/emopath/internal/persist"
)

// JournalOff disables the check-in journal when used as EMOPATH_JOURNAL_DB.
const JournalOff = "off"

// Config holds all runtime settings for emopath.
type Config struct {
	DataFile        string
	JournalDB       string
	JournalEnabled  bool
	LogUseCases     bool
	CheckpointEvery int // autosave after this many map changes; 0 disables
	HistoryFile     string
}

// Default returns the configuration used when no environment overrides are
// set. Paths under the home directory fall back to the working directory
// when the home directory cannot be resolved.
func Default() Config {
	return Config{
		DataFile:        persist.DefaultFile,
		JournalDB:       homePath("journal.db"),
		JournalEnabled:  true,
		LogUseCases:     false,
		CheckpointEvery: 5,
		HistoryFile:     homePath("shell_history"),
	}
}

// Load reads configuration from environment variables,
// falling back to defaults for any unset or invalid values.
func Load() Config {
	cfg := Default()

	if v := os.Getenv("EMOPATH_DATA_FILE"); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv("EMOPATH_JOURNAL_DB"); v != "" {
		if strings.EqualFold(v, JournalOff) {
			cfg.JournalEnabled = false
		} else {
			cfg.JournalDB = v
		}
	}
	if v := os.Getenv("EMOPATH_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("EMOPATH_CHECKPOINT_EVERY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.CheckpointEvery = n
		}
	}
	if v := os.Getenv("EMOPATH_HISTORY_FILE"); v != "" {
		cfg.HistoryFile = v
	}

	return cfg
}

func homePath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".emopath", name)
	}
	return filepath.Join(home, ".emopath", name)
}
