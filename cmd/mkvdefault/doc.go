// Package main hosts the mkvdefault CLI entrypoint and command graph.
//
// The Cobra-based command tree resolves configuration once, applies flag
// overrides, and hands the result to the batch runner. "run" processes a
// directory, "check" reports tool and directory readiness, and "config"
// scaffolds or validates the TOML file.
//
// Keep this package lean: behavior lives in the internal packages and is
// surfaced here through commands and flags.
package main
