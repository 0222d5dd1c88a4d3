// Package workspace manages the ephemeral working directory a
// verification scenario runs in.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
)

// Workspace is a temporary directory owned exclusively by one scenario
// run. It is created empty and removed on every exit path.
type Workspace struct {
	path    string
	cleaned bool
}

// New creates a fresh empty workspace under the system temp directory.
func New() (*Workspace, error) {
	dir, err := os.MkdirTemp("", "pin-check-")
	if err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}
	return &Workspace{path: dir}, nil
}

// Path returns the workspace directory.
func (w *Workspace) Path() string {
	return w.path
}

// Cleanup removes the workspace directory. Safe to call more than once.
func (w *Workspace) Cleanup() error {
	if w.cleaned {
		return nil
	}
	if err := os.RemoveAll(w.path); err != nil {
		return fmt.Errorf("failed to remove workspace %s: %w", w.path, err)
	}
	w.cleaned = true
	return nil
}

// MarkerPath returns the path of the named marker file inside the
// workspace.
func (w *Workspace) MarkerPath(name string) string {
	return filepath.Join(w.path, name)
}

// MarkerExists reports whether the named marker file is present.
func (w *Workspace) MarkerExists(name string) bool {
	info, err := os.Stat(w.MarkerPath(name))
	return err == nil && !info.IsDir()
}

// ReadMarker reads and trims the named marker file's content.
func (w *Workspace) ReadMarker(name string) (string, error) {
	data, err := os.ReadFile(w.MarkerPath(name))
	if err != nil {
		return "", fmt.Errorf("failed to read marker file %s: %w", name, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// EnclosingGitRoot walks upward from path looking for a containing git
// repository. Version managers resolve pins by searching parent
// directories, so a workspace nested under someone else's project can
// make a scenario observe the wrong pin.
func EnclosingGitRoot(path string) (string, bool) {
	dir, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}
	for {
		if _, err := git.PlainOpen(dir); err == nil {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// NestingHazards reports conditions around the workspace that could
// leak an unrelated pin into the scenario: an enclosing git repository
// or a marker file in a parent directory.
func (w *Workspace) NestingHazards(markerName string) []string {
	var hazards []string

	if root, ok := EnclosingGitRoot(filepath.Dir(w.path)); ok {
		hazards = append(hazards, fmt.Sprintf("workspace is nested inside git repository %s", root))
	}

	dir := filepath.Dir(w.path)
	for {
		candidate := filepath.Join(dir, markerName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			hazards = append(hazards, fmt.Sprintf("parent directory contains %s", candidate))
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return hazards
}
