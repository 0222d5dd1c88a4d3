package command

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_Run_CapturesStdout(t *testing.T) {
	runner := NewQuietRunner()

	result, err := runner.Run(t.TempDir(), "sh", "-c", "echo hello")
	require.NoError(t, err)

	assert.Equal(t, 0, result.ExitCode)
	assert.True(t, result.Ok())
	assert.Equal(t, "hello\n", result.Stdout)
	assert.Empty(t, result.Stderr)
}

func TestRunner_Run_CapturesStderr(t *testing.T) {
	runner := NewQuietRunner()

	result, err := runner.Run(t.TempDir(), "sh", "-c", "echo oops >&2")
	require.NoError(t, err)

	assert.Equal(t, "oops\n", result.Stderr)
	assert.Empty(t, result.Stdout)
}

func TestRunner_Run_NonzeroExitIsNotAnError(t *testing.T) {
	runner := NewQuietRunner()

	result, err := runner.Run(t.TempDir(), "sh", "-c", "exit 3")
	require.NoError(t, err)

	assert.Equal(t, 3, result.ExitCode)
	assert.False(t, result.Ok())
}

func TestRunner_Run_LaunchFailure(t *testing.T) {
	runner := NewQuietRunner()

	result, err := runner.Run(t.TempDir(), "definitely-not-a-real-binary-xyz")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to launch")
}

func TestRunner_Run_HonorsWorkingDirectory(t *testing.T) {
	runner := NewQuietRunner()
	dir := t.TempDir()

	result, err := runner.Run(dir, "pwd")
	require.NoError(t, err)

	// pwd may print a resolved symlink path; compare the trailing element
	assert.Contains(t, strings.TrimSpace(result.Stdout), trailingElement(dir))
}

func trailingElement(path string) string {
	parts := strings.Split(path, "/")
	return parts[len(parts)-1]
}

func TestRunner_Run_EchoesTranscript(t *testing.T) {
	var stdout, stderr bytes.Buffer
	runner := NewRunnerWithOutput(&stdout, &stderr)

	_, err := runner.Run(t.TempDir(), "sh", "-c", "echo out; echo err >&2")
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "$ sh -c echo out; echo err >&2")
	assert.Contains(t, stdout.String(), "out\n")
	assert.Contains(t, stderr.String(), "err\n")
}

func TestResolve(t *testing.T) {
	path, err := Resolve("sh")
	require.NoError(t, err)
	assert.NotEmpty(t, path)

	_, err = Resolve("definitely-not-a-real-binary-xyz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not installed or not in PATH")
}
