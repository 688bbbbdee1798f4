package preflight

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"mkvdefault/internal/config"
	"mkvdefault/internal/deps"
)

// CheckDirectoryAccess verifies that the directory exists and can be listed.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read ok)", path)}
}

// Requirements lists the tools a run with cfg needs. mkvpropedit is marked
// optional for dry runs.
func Requirements(cfg *config.Config) []deps.Requirement {
	return []deps.Requirement{
		{
			Name:        "mkvmerge",
			Command:     cfg.MkvmergeBinary(),
			Description: "Required for track inspection",
		},
		{
			Name:        "mkvpropedit",
			Command:     cfg.MkvpropeditBinary(),
			Description: "Required for live flag edits",
			Optional:    cfg.Run.DryRun,
		},
	}
}

// CheckTools evaluates the external tools for cfg.
func CheckTools(cfg *config.Config) []deps.Status {
	return deps.CheckBinaries(Requirements(cfg))
}

func toolResult(status deps.Status) Result {
	result := Result{Name: status.Name, Optional: status.Optional}
	if status.Available {
		result.Passed = true
		result.Detail = status.Path
		return result
	}
	result.Detail = status.Detail
	if status.Optional {
		result.Detail += " (not needed for dry run)"
	}
	return result
}
