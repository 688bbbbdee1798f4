package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	envDirectory     = "MKVDEFAULT_DIRECTORY"
	envExtension     = "MKVDEFAULT_EXTENSION"
	envAudioLanguage = "MKVDEFAULT_AUDIO_LANGUAGE"
	envSubtitleTitle = "MKVDEFAULT_SUBTITLE_TITLE"
	envDryRun        = "MKVDEFAULT_DRY_RUN"
	dotEnvFile       = ".env"
)

// loadDotEnv populates the process environment from ./.env when present.
// Variables already set in the environment win.
func loadDotEnv() error {
	if _, err := os.Stat(dotEnvFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat %s: %w", dotEnvFile, err)
	}
	if err := godotenv.Load(dotEnvFile); err != nil {
		return fmt.Errorf("load %s: %w", dotEnvFile, err)
	}
	return nil
}

// applyEnv overrides file values with MKVDEFAULT_* variables. A variable that
// is set but empty still counts, since an empty subtitle title is meaningful.
func (c *Config) applyEnv() error {
	if value, ok := os.LookupEnv(envDirectory); ok && strings.TrimSpace(value) != "" {
		c.Scan.Directory = value
	}
	if value, ok := os.LookupEnv(envExtension); ok && strings.TrimSpace(value) != "" {
		c.Scan.Extension = value
	}
	if value, ok := os.LookupEnv(envAudioLanguage); ok {
		c.Selection.AudioLanguage = value
	}
	if value, ok := os.LookupEnv(envSubtitleTitle); ok {
		c.Selection.SubtitleTitle = value
	}
	if value, ok := os.LookupEnv(envDryRun); ok && strings.TrimSpace(value) != "" {
		parsed, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%s: %w", envDryRun, err)
		}
		c.Run.DryRun = parsed
	}
	return nil
}
