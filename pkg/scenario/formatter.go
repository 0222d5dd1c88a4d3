package scenario

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

const timeRounding = time.Millisecond

// Color definitions for scenario output
var (
	passColor = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
	stepColor = color.New(color.FgCyan, color.Bold)
)

var summaryStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

// Formatter prints the human-readable scenario narrative: step
// banners, per-step diagnostics, and the final verdict block.
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a formatter writing to stdout.
func NewFormatter() *Formatter {
	return &Formatter{out: os.Stdout}
}

// NewFormatterWithOutput creates a formatter bound to the given writer.
func NewFormatterWithOutput(out io.Writer) *Formatter {
	return &Formatter{out: out}
}

// StepBanner prints the banner introducing a scenario step.
func (f *Formatter) StepBanner(number int, title string) {
	fmt.Fprintf(f.out, "\n%s\n", stepColor.Sprintf("=== Step %d: %s ===", number, title))
}

// Info prints a diagnostic line.
func (f *Formatter) Info(format string, args ...any) {
	fmt.Fprintf(f.out, format+"\n", args...)
}

// Failure prints the first violated expectation.
func (f *Formatter) Failure(failure *Failure) {
	fmt.Fprintf(f.out, "%s %s\n", failColor.Sprint("FAIL:"), failure.Message)
}

// Summary prints the final verdict block for a completed run.
func (f *Formatter) Summary(result *Result) {
	var verdict string
	if result.Passed {
		verdict = passColor.Sprintf("PASS: upgrade kept the pinned version %s", result.UpgradedVersion)
	} else {
		verdict = failColor.Sprintf("FAIL: %s", result.Failure.Message)
	}

	body := verdict
	if result.PinnedVersion != "" {
		body += fmt.Sprintf("\npinned:   %s", result.PinnedVersion)
	}
	if result.UpgradedVersion != "" {
		body += fmt.Sprintf("\nupgraded: %s", result.UpgradedVersion)
	}
	body += fmt.Sprintf("\nduration: %s", result.Duration.Round(timeRounding))

	fmt.Fprintln(f.out, summaryStyle.Render(body))
}
