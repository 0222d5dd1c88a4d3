package scenario

import (
	"fmt"
	"time"
)

// FailureKind classifies the ways a scenario can fail.
type FailureKind string

const (
	// ToolUnavailable means the tool under test could not be
	// launched at all.
	ToolUnavailable FailureKind = "tool-unavailable"
	// CommandFailure means an invocation exited with a nonzero
	// status.
	CommandFailure FailureKind = "command-failure"
	// MissingArtifact means the pin marker file was absent after the
	// pin step.
	MissingArtifact FailureKind = "missing-artifact"
	// AssertionMismatch means the marker content or runtime output
	// did not reflect the pinned version after the upgrade.
	AssertionMismatch FailureKind = "assertion-mismatch"
)

// Failure describes the first violated expectation of a scenario run.
// Every kind is handled identically: the message is printed, remaining
// steps are skipped, and the overall result fails.
type Failure struct {
	Kind    FailureKind
	Step    string
	Message string
}

// Error implements the error interface.
func (f *Failure) Error() string {
	return fmt.Sprintf("%s [%s]: %s", f.Step, f.Kind, f.Message)
}

func newFailure(kind FailureKind, step, format string, args ...any) *Failure {
	return &Failure{
		Kind:    kind,
		Step:    step,
		Message: fmt.Sprintf(format, args...),
	}
}

// Result holds the outcome of one scenario run.
type Result struct {
	PinnedVersion   string
	UpgradedVersion string
	RuntimeOutput   string
	Failure         *Failure
	Duration        time.Duration
	Passed          bool
}
