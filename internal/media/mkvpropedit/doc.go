// Package mkvpropedit applies default-flag edits to Matroska tracks.
//
// mkvpropedit addresses tracks by 1-based position (track:@N) while mkvmerge
// reports 0-based IDs; SelectorIndex performs that translation and is the
// only place it happens.
//
// In dry-run mode the editor prints each command and the intended change
// without executing anything. In live mode it prints a confirmation and runs
// mkvpropedit once per track, returning a result for each call.
package mkvpropedit
