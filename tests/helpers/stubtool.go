// Package helpers provides test utilities for the go-pin-check test suite.
package helpers

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// StubTool describes the behavior of a fake version-manager binary.
// Build renders it as a shell script so scenario tests can run the
// full pin/upgrade/run sequence without a real tool installed.
type StubTool struct {
	// BinaryVersion is printed for "<tool> --version".
	BinaryVersion string
	// MarkerFile is the pin marker the stub reads and writes.
	MarkerFile string
	// PinWrites overrides the marker content written by the pin
	// subcommand; empty means "write the requested version".
	PinWrites string
	// PinExitCode, when nonzero, makes the pin subcommand fail
	// without touching the marker.
	PinExitCode int
	// UpgradeWrites is the marker content written by the upgrade
	// subcommand; empty leaves the marker unchanged.
	UpgradeWrites string
	// UpgradeExitCode, when nonzero, makes upgrade fail.
	UpgradeExitCode int
	// UpgradeRequiresMarker makes upgrade fail when the marker is
	// absent, the way a real tool refuses to upgrade an unpinned dir.
	UpgradeRequiresMarker bool
	// UpgradeDeletesMarker makes upgrade remove the marker, standing
	// in for outside interference between the pin and upgrade steps.
	UpgradeDeletesMarker bool
	// RunPrints is the output of "<tool> run <runtime> --version".
	RunPrints string
	// RunExitCode, when nonzero, makes the run subcommand fail.
	RunExitCode int
}

// Build writes the stub as an executable script in its own temp
// directory and returns the script path.
func (s StubTool) Build(t *testing.T) string {
	t.Helper()

	if s.BinaryVersion == "" {
		s.BinaryVersion = "stub-uv 0.0.1"
	}
	if s.MarkerFile == "" {
		s.MarkerFile = ".python-version"
	}
	if s.RunPrints == "" {
		s.RunPrints = "Python 3.12.4"
	}

	script := fmt.Sprintf(`#!/bin/sh
marker=%q
case "$1" in
--version)
    echo %q
    exit 0
    ;;
run)
    echo %q
    exit %d
    ;;
esac
case "$2" in
pin)
    if [ %d -ne 0 ]; then
        echo "error: no interpreter found for $3" >&2
        exit %d
    fi
    want=%q
    if [ -z "$want" ]; then
        want="$3"
    fi
    printf '%%s\n' "$want" > "$marker"
    exit 0
    ;;
upgrade)
    if [ %q = "true" ] && [ ! -f "$marker" ]; then
        echo "error: no pinned version to upgrade" >&2
        exit 1
    fi
    if [ %d -ne 0 ]; then
        echo "error: upgrade failed" >&2
        exit %d
    fi
    if [ %q = "true" ]; then
        rm -f "$marker"
        exit 0
    fi
    if [ -n %q ]; then
        printf '%%s\n' %q > "$marker"
    fi
    exit 0
    ;;
esac
echo "unknown subcommand: $*" >&2
exit 64
`,
		s.MarkerFile,
		s.BinaryVersion,
		s.RunPrints, s.RunExitCode,
		s.PinExitCode, s.PinExitCode,
		s.PinWrites,
		fmt.Sprintf("%t", s.UpgradeRequiresMarker),
		s.UpgradeExitCode, s.UpgradeExitCode,
		fmt.Sprintf("%t", s.UpgradeDeletesMarker),
		s.UpgradeWrites, s.UpgradeWrites,
	)

	dir := t.TempDir()
	path := filepath.Join(dir, "stub-uv")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil { // #nosec G306 -- test binary must be executable
		t.Fatalf("Failed to write stub tool: %v", err)
	}
	return path
}
