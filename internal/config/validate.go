package config

import (
	"errors"
	"fmt"
	"strings"

	"mkvdefault/internal/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateScan(); err != nil {
		return err
	}
	if err := c.validateTools(); err != nil {
		return err
	}
	return c.validateLogging()
}

// Warnings reports settings that are legal but probably not what the user
// meant. They never block a run.
func (c *Config) Warnings() []string {
	var warnings []string
	lang := c.Selection.AudioLanguage
	switch {
	case lang == "":
		warnings = append(warnings, "selection.audio_language is empty; only audio tracks without a language tag can become default")
	case !language.Known(lang):
		warnings = append(warnings, fmt.Sprintf("selection.audio_language %q is not a recognised ISO 639 code", lang))
	case lang != strings.ToLower(lang):
		warnings = append(warnings, fmt.Sprintf("selection.audio_language %q is not lower-case; matching is exact and mkvmerge reports %q", lang, strings.ToLower(lang)))
	case len(lang) != 3:
		warnings = append(warnings, fmt.Sprintf("selection.audio_language %q is not a 3-letter code; mkvmerge reports ISO 639-2 codes such as %q", lang, language.ToISO3(lang)))
	}
	return warnings
}

func (c *Config) validateScan() error {
	if strings.TrimSpace(c.Scan.Directory) == "" {
		return errors.New("scan.directory must be set")
	}
	if strings.TrimSpace(c.Scan.Extension) == "" || c.Scan.Extension == "." {
		return errors.New("scan.extension must be set (e.g. \".mkv\")")
	}
	return nil
}

func (c *Config) validateTools() error {
	if strings.TrimSpace(c.Tools.Mkvmerge) == "" {
		return errors.New("tools.mkvmerge must be set")
	}
	if strings.TrimSpace(c.Tools.Mkvpropedit) == "" {
		return errors.New("tools.mkvpropedit must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q must be one of debug, info, warn, error", c.Logging.Level)
	}
	return nil
}
