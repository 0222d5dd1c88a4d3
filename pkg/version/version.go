// Package version provides loose version matching for pin verification.
//
// Matching is deliberately loose: the upgrade regression being guarded
// against is major.minor drift, not patch-level exactness, so callers
// compare by prefix rather than by parsed equality.
package version

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
	goversion "github.com/hashicorp/go-version"
)

// versionPattern matches a dotted version number embedded in command
// output, e.g. the "3.12.4" in "Python 3.12.4".
var versionPattern = regexp2.MustCompile(`\d+(?:\.\d+)+(?:[a-z]+\d*)?`, regexp2.None)

// Extract pulls the first dotted version number out of command output.
// Returns an error when the output contains nothing version-shaped.
func Extract(output string) (string, error) {
	m, err := versionPattern.FindStringMatch(output)
	if err != nil {
		return "", fmt.Errorf("scanning output for version: %w", err)
	}
	if m == nil {
		return "", fmt.Errorf("no version number found in output: %q", strings.TrimSpace(output))
	}
	return m.String(), nil
}

// MatchesPrefix reports whether actual begins with the version prefix
// want. The comparison is component aware: want "3.1" does not match
// actual "3.12", but does match "3.1", "3.1.9" and "3.1rc1".
func MatchesPrefix(actual, want string) bool {
	actual = strings.TrimSpace(actual)
	want = strings.TrimSpace(want)
	if !strings.HasPrefix(actual, want) {
		return false
	}
	if len(actual) == len(want) {
		return true
	}
	next := actual[len(want)]
	return next < '0' || next > '9'
}

// Contains reports whether command output mentions the wanted version.
// Plain substring semantics, matching the scenario's original intent.
func Contains(output, want string) bool {
	return strings.Contains(output, strings.TrimSpace(want))
}

// Validate checks that a requested pin version is something a version
// manager could plausibly accept ("3", "3.12", "3.12.4", ...).
func Validate(want string) error {
	want = strings.TrimSpace(want)
	if want == "" {
		return fmt.Errorf("version must not be empty")
	}
	if _, err := goversion.NewVersion(want); err != nil {
		return fmt.Errorf("invalid version %q: %w", want, err)
	}
	return nil
}

// MajorMinor reduces a version string to its major.minor prefix.
// Versions with fewer than two components are returned unchanged.
func MajorMinor(v string) string {
	parts := strings.SplitN(strings.TrimSpace(v), ".", 3)
	if len(parts) < 2 {
		return strings.TrimSpace(v)
	}
	return parts[0] + "." + parts[1]
}
