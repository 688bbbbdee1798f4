// Package mkvmerge provides a typed wrapper around `mkvmerge --identify`
// JSON output.
//
// Key types:
//   - Identification: parsed output (container metadata and tracks)
//   - Inspection: tagged outcome of one identify call
//
// Primary entry point:
//   - Client.Inspect: runs mkvmerge for one file and classifies the outcome
//     as OK, inspection failed, parse failed, or other failure
package mkvmerge
