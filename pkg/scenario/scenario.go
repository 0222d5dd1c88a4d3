// Package scenario drives the upgrade-pin verification scenario
// against an external version-manager tool.
//
// The scenario reproduces the regression class where pinning a runtime
// version and then running the tool's upgrade command silently moves
// the pin to a different minor version. Every step is echoed so a
// failing run can be diagnosed from the transcript alone.
package scenario

import (
	"io"
	"time"

	"github.com/blairham/go-pin-check/pkg/command"
	"github.com/blairham/go-pin-check/pkg/config"
	"github.com/blairham/go-pin-check/pkg/version"
	"github.com/blairham/go-pin-check/pkg/workspace"
)

// Verifier runs the upgrade-pin scenario described by its config.
type Verifier struct {
	cfg       *config.Config
	runner    *command.Runner
	formatter *Formatter
}

// NewVerifier creates a verifier reporting to the process streams.
func NewVerifier(cfg *config.Config) *Verifier {
	return &Verifier{
		cfg:       cfg,
		runner:    command.NewRunner(),
		formatter: NewFormatter(),
	}
}

// NewVerifierWithOutput creates a verifier bound to the given writers.
func NewVerifierWithOutput(cfg *config.Config, stdout, stderr io.Writer) *Verifier {
	return &Verifier{
		cfg:       cfg,
		runner:    command.NewRunnerWithOutput(stdout, stderr),
		formatter: NewFormatterWithOutput(stdout),
	}
}

// Preflight probes that the tool under test can be launched at all.
// Returns the probe result on success and a tool-unavailable failure
// otherwise. Runs before any scenario step so a missing binary is
// reported distinctly and no workspace is created.
func (v *Verifier) Preflight() (*command.Result, *Failure) {
	if _, err := command.Resolve(v.cfg.Tool); err != nil {
		return nil, newFailure(ToolUnavailable, "preflight", "%v", err)
	}

	result, err := v.runner.Run("", v.cfg.Tool, "--version")
	if err != nil {
		return nil, newFailure(ToolUnavailable, "preflight", "%v", err)
	}
	return result, nil
}

// Run executes the full scenario: pin, upgrade, marker assertion, and
// the independent runtime-version cross-check. The workspace is
// removed on every exit path.
func (v *Verifier) Run() *Result {
	start := time.Now()
	result := &Result{}

	failure := v.runSteps(result)
	result.Duration = time.Since(start)
	result.Failure = failure
	result.Passed = failure == nil

	if failure != nil {
		v.formatter.Failure(failure)
	}
	v.formatter.Summary(result)
	return result
}

func (v *Verifier) runSteps(result *Result) *Failure {
	cfg := v.cfg

	ws, err := workspace.New()
	if err != nil {
		return newFailure(CommandFailure, "setup", "%v", err)
	}
	defer ws.Cleanup() //nolint:errcheck // best-effort workspace removal

	if cfg.Verbose {
		v.formatter.Info("Workspace: %s", ws.Path())
	}

	// Step 1: pin the requested version
	v.formatter.StepBanner(1, "Pin to "+cfg.Runtime+" "+cfg.PinVersion)
	pin, err := v.runner.Run(ws.Path(), cfg.Tool, cfg.Runtime, "pin", cfg.PinVersion)
	if err != nil {
		return newFailure(ToolUnavailable, "pin", "%v", err)
	}
	if !pin.Ok() {
		return newFailure(CommandFailure, "pin",
			"%s %s pin %s failed with code %d", cfg.Tool, cfg.Runtime, cfg.PinVersion, pin.ExitCode)
	}

	if !ws.MarkerExists(cfg.MarkerFile) {
		return newFailure(MissingArtifact, "pin", "%s file was not created", cfg.MarkerFile)
	}

	pinned, err := ws.ReadMarker(cfg.MarkerFile)
	if err != nil {
		return newFailure(MissingArtifact, "pin", "%v", err)
	}
	result.PinnedVersion = pinned
	v.formatter.Info("Pinned version in %s: %s", cfg.MarkerFile, pinned)

	// Step 2: run the upgrade
	v.formatter.StepBanner(2, "Run "+cfg.Tool+" "+cfg.Runtime+" upgrade")
	upgrade, err := v.runner.Run(ws.Path(), cfg.Tool, cfg.Runtime, "upgrade")
	if err != nil {
		return newFailure(ToolUnavailable, "upgrade", "%v", err)
	}
	if !upgrade.Ok() {
		return newFailure(CommandFailure, "upgrade",
			"%s %s upgrade failed with code %d", cfg.Tool, cfg.Runtime, upgrade.ExitCode)
	}

	// Step 3: the marker must still carry the pinned prefix
	v.formatter.StepBanner(3, "Verify "+cfg.Runtime+" version")
	upgraded, err := ws.ReadMarker(cfg.MarkerFile)
	if err != nil {
		return newFailure(MissingArtifact, "verify", "%v", err)
	}
	result.UpgradedVersion = upgraded
	v.formatter.Info("Version after upgrade: %s", upgraded)

	if !version.MatchesPrefix(upgraded, cfg.PinVersion) {
		return newFailure(AssertionMismatch, "verify",
			"expected %s %s.x but got %s", cfg.Runtime, cfg.PinVersion, upgraded)
	}

	// Step 4: cross-check via the runtime itself, not just the marker
	v.formatter.StepBanner(4, "Verify with "+cfg.Tool+" run "+cfg.Runtime+" --version")
	run, err := v.runner.Run(ws.Path(), cfg.Tool, "run", cfg.Runtime, "--version")
	if err != nil {
		return newFailure(ToolUnavailable, "runtime-query", "%v", err)
	}
	if !run.Ok() {
		return newFailure(CommandFailure, "runtime-query",
			"%s run %s --version failed with code %d", cfg.Tool, cfg.Runtime, run.ExitCode)
	}

	result.RuntimeOutput = run.Stdout
	if reported, err := version.Extract(run.Stdout); err == nil {
		v.formatter.Info("%s version output: %s", cfg.Runtime, reported)
	}

	if !version.Contains(run.Stdout, cfg.PinVersion) {
		return newFailure(AssertionMismatch, "runtime-query",
			"expected %s %s.x in output but got: %s", cfg.Runtime, cfg.PinVersion, run.Stdout)
	}

	return nil
}
