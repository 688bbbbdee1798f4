// Package language wraps golang.org/x/text for the ISO 639 codes mkvmerge
// reports. It is used for warnings and log labels only; track matching stays
// exact-string.
package language

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

func parse(code string) (language.Base, bool) {
	normalized := strings.ToLower(strings.TrimSpace(code))
	if normalized == "" {
		return language.Base{}, false
	}
	base, err := language.ParseBase(normalized)
	if err != nil {
		return language.Base{}, false
	}
	return base, true
}

// Known reports whether code is a recognised ISO 639-1 or 639-2 language.
func Known(code string) bool {
	_, ok := parse(code)
	return ok
}

// ToISO3 returns the 3-letter form of code, or code unchanged when unknown.
func ToISO3(code string) string {
	base, ok := parse(code)
	if !ok {
		return code
	}
	return base.ISO3()
}

// DisplayName returns the English name for code ("jpn" -> "Japanese"), or an
// empty string when the code is unknown.
func DisplayName(code string) string {
	base, ok := parse(code)
	if !ok {
		return ""
	}
	return display.English.Languages().Name(base)
}
