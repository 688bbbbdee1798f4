// Package batch drives the per-file loop: list the configured directory,
// inspect each file with mkvmerge, decide which audio and subtitle tracks
// should be default, and hand the resulting edits to mkvpropedit.
//
// Files are processed one at a time. A failure on one file is reported on the
// console and in the Summary, and the loop moves on; only an unreadable
// directory or cancellation ends the run early. Cancellation is observed
// between files.
package batch
