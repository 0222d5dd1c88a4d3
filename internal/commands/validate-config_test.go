package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestValidateConfigCommand_Help(t *testing.T) {
	cmd := &ValidateConfigCommand{}
	help := cmd.Help()

	expectedStrings := []string{
		"validate-config",
		".pin-check.yaml",
		"--config",
		"--help",
	}

	for _, expected := range expectedStrings {
		if !strings.Contains(help, expected) {
			t.Errorf("Help output should contain '%s', but got: %s", expected, help)
		}
	}
}

func TestValidateConfigCommand_Synopsis(t *testing.T) {
	cmd := &ValidateConfigCommand{}
	synopsis := cmd.Synopsis()

	expected := "Validate configuration file"
	if synopsis != expected {
		t.Errorf("Expected synopsis '%s', got '%s'", expected, synopsis)
	}
}

func TestValidateConfigCommand_Run_Help(t *testing.T) {
	cmd := &ValidateConfigCommand{}

	exitCode := cmd.Run([]string{"--help"})
	if exitCode != ExitPass {
		t.Errorf("Expected exit code 0 for --help, got %d", exitCode)
	}
}

func TestValidateConfigCommand_Run_ValidConfig(t *testing.T) {
	path := writeTempConfig(t, ValidScenarioConfig)

	cmd := &ValidateConfigCommand{}
	exitCode := cmd.Run([]string{"--config", path})
	if exitCode != ExitPass {
		t.Errorf("Expected exit code 0 for valid config, got %d", exitCode)
	}
}

func TestValidateConfigCommand_Run_InvalidYAML(t *testing.T) {
	path := writeTempConfig(t, "tool: [unclosed\n")

	cmd := &ValidateConfigCommand{}
	exitCode := cmd.Run([]string{"--config", path})
	if exitCode != ExitFail {
		t.Errorf("Expected exit code 1 for invalid YAML, got %d", exitCode)
	}
}

func TestValidateConfigCommand_Run_InvalidValues(t *testing.T) {
	path := writeTempConfig(t, "pin_version: latest\n")

	cmd := &ValidateConfigCommand{}
	exitCode := cmd.Run([]string{"--config", path})
	if exitCode != ExitFail {
		t.Errorf("Expected exit code 1 for invalid values, got %d", exitCode)
	}
}

func TestValidateConfigCommand_Run_MissingFile(t *testing.T) {
	cmd := &ValidateConfigCommand{}

	exitCode := cmd.Run([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml")})
	if exitCode != ExitFail {
		t.Errorf("Expected exit code 1 for missing file, got %d", exitCode)
	}
}
