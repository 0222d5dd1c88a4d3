// Package command runs external commands and captures their outcomes.
package command

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Result holds the outcome of one external command invocation.
type Result struct {
	Command  string        `json:"command"`
	Dir      string        `json:"dir"`
	Stdout   string        `json:"stdout"`
	Stderr   string        `json:"stderr"`
	Start    time.Time     `json:"start"`
	Duration time.Duration `json:"duration"`
	ExitCode int           `json:"exit_code"`
}

// Ok reports whether the command exited with status zero.
func (r *Result) Ok() bool {
	return r.ExitCode == 0
}

// Runner executes external commands, echoing the command line before
// execution and the captured streams after, so a failing scenario can
// be diagnosed from the transcript alone.
type Runner struct {
	stdout io.Writer
	stderr io.Writer
	echo   bool
}

// NewRunner creates a runner that echoes to the process's own streams.
func NewRunner() *Runner {
	return &Runner{stdout: os.Stdout, stderr: os.Stderr, echo: true}
}

// NewQuietRunner creates a runner that captures without echoing.
func NewQuietRunner() *Runner {
	return &Runner{stdout: io.Discard, stderr: io.Discard}
}

// NewRunnerWithOutput creates an echoing runner bound to the given
// writers instead of the process streams.
func NewRunnerWithOutput(stdout, stderr io.Writer) *Runner {
	return &Runner{stdout: stdout, stderr: stderr, echo: true}
}

// Run executes name with args in dir, blocking until completion.
// A nonzero exit status is not an error: it is reported through
// Result.ExitCode. The returned error is reserved for commands that
// could not be launched at all.
func (r *Runner) Run(dir, name string, args ...string) (*Result, error) {
	cmdline := strings.Join(append([]string{name}, args...), " ")
	if r.echo {
		fmt.Fprintf(r.stdout, "$ %s\n", cmdline)
	}

	cmd := exec.Command(name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	result := &Result{
		Command:  cmdline,
		Dir:      dir,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Start:    start,
		Duration: time.Since(start),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("failed to launch command '%s': %w", cmdline, err)
		}
		result.ExitCode = exitErr.ExitCode()
	}

	if r.echo {
		if result.Stdout != "" {
			fmt.Fprint(r.stdout, result.Stdout)
		}
		if result.Stderr != "" {
			fmt.Fprint(r.stderr, result.Stderr)
		}
	}

	return result, nil
}

// Resolve looks up name on PATH, returning the absolute path of the
// binary. Used as the availability probe before running a scenario.
func Resolve(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("tool %q is not installed or not in PATH: %w", name, err)
	}
	return path, nil
}
