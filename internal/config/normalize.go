package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeScan(); err != nil {
		return err
	}
	c.normalizeSelection()
	c.normalizeTools()
	return c.normalizeLogging()
}

func (c *Config) normalizeScan() error {
	var err error
	if strings.TrimSpace(c.Scan.Directory) == "" {
		c.Scan.Directory = defaultDirectory
	}
	if c.Scan.Directory, err = expandPath(strings.TrimSpace(c.Scan.Directory)); err != nil {
		return fmt.Errorf("scan.directory: %w", err)
	}
	ext := strings.TrimSpace(c.Scan.Extension)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	c.Scan.Extension = ext
	return nil
}

// The subtitle title is kept verbatim: surrounding whitespace is part of the
// track name mkvmerge reports.
func (c *Config) normalizeSelection() {
	c.Selection.AudioLanguage = strings.TrimSpace(c.Selection.AudioLanguage)
}

func (c *Config) normalizeTools() {
	c.Tools.Mkvmerge = strings.TrimSpace(c.Tools.Mkvmerge)
	if c.Tools.Mkvmerge == "" {
		c.Tools.Mkvmerge = defaultMkvmergeBinary
	}
	c.Tools.Mkvpropedit = strings.TrimSpace(c.Tools.Mkvpropedit)
	if c.Tools.Mkvpropedit == "" {
		c.Tools.Mkvpropedit = defaultMkvpropeditBinary
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.File) != "" {
		var err error
		if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
	}
	if c.Logging.MaxSizeMB <= 0 {
		c.Logging.MaxSizeMB = defaultLogMaxSizeMB
	}
	if c.Logging.MaxBackups < 0 {
		c.Logging.MaxBackups = 0
	}
	if c.Logging.MaxAgeDays < 0 {
		c.Logging.MaxAgeDays = 0
	}
	return nil
}
