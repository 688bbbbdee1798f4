// Package preflight provides readiness checks for the external tools and
// the scan directory that mkvdefault depends on.
//
// These checks run in two contexts:
//   - "mkvdefault run" calls RunAll before touching any file and aborts when
//     a check fails, so a missing tool is reported once instead of per file.
//   - "mkvdefault check" renders every result as a status line.
//
// mkvpropedit is only required for live runs; dry runs never execute it.
package preflight
