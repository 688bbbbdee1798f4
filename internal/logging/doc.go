// Package logging assembles structured slog loggers and formatting helpers used
// across mkvdefault.
//
// It owns the console/JSON handlers, routes output to stderr and an optional
// size-rotated log file, and exposes context-aware helpers so each line can be
// tagged with the run identifier and the media file being processed. Logs never
// go to stdout, which is reserved for the per-file report.
package logging
