package config

const (
	defaultConfigPath        = "~/.config/mkvdefault/config.toml"
	projectConfigName        = "mkvdefault.toml"
	defaultDirectory         = "."
	defaultExtension         = ".mkv"
	defaultAudioLanguage     = "jpn"
	defaultSubtitleTitle     = ""
	defaultDryRun            = true
	defaultMkvmergeBinary    = "mkvmerge"
	defaultMkvpropeditBinary = "mkvpropedit"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
	defaultLogMaxSizeMB      = 10
	defaultLogMaxBackups     = 3
	defaultLogMaxAgeDays     = 28
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Scan: Scan{
			Directory: defaultDirectory,
			Extension: defaultExtension,
		},
		Selection: Selection{
			AudioLanguage: defaultAudioLanguage,
			SubtitleTitle: defaultSubtitleTitle,
		},
		Run: Run{
			DryRun: defaultDryRun,
		},
		Tools: Tools{
			Mkvmerge:    defaultMkvmergeBinary,
			Mkvpropedit: defaultMkvpropeditBinary,
		},
		Logging: Logging{
			Format:     defaultLogFormat,
			Level:      defaultLogLevel,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
			MaxAgeDays: defaultLogMaxAgeDays,
		},
	}
}
