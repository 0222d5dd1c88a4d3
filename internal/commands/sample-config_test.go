package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/blairham/go-pin-check/pkg/config"
)

func TestSampleConfigCommand_Help(t *testing.T) {
	cmd := &SampleConfigCommand{}
	help := cmd.Help()

	expectedStrings := []string{
		"sample-config",
		"Generate a sample .pin-check.yaml",
		"--force",
		"--help",
		"Overwrite existing configuration",
	}

	for _, expected := range expectedStrings {
		if !strings.Contains(help, expected) {
			t.Errorf("Help output should contain '%s', but got: %s", expected, help)
		}
	}
}

func TestSampleConfigCommand_Synopsis(t *testing.T) {
	cmd := &SampleConfigCommand{}
	synopsis := cmd.Synopsis()

	expected := "Generate a sample configuration file"
	if synopsis != expected {
		t.Errorf("Expected synopsis '%s', got '%s'", expected, synopsis)
	}
}

func TestSampleConfigCommand_Run_Help(t *testing.T) {
	cmd := &SampleConfigCommand{}

	exitCode := cmd.Run([]string{"--help"})
	if exitCode != ExitPass {
		t.Errorf("Expected exit code 0 for --help, got %d", exitCode)
	}

	exitCode = cmd.Run([]string{"-h"})
	if exitCode != ExitPass {
		t.Errorf("Expected exit code 0 for -h, got %d", exitCode)
	}
}

func TestSampleConfigCommand_Run_InvalidFlag(t *testing.T) {
	cmd := &SampleConfigCommand{}

	exitCode := cmd.Run([]string{"--invalid-flag"})
	if exitCode == ExitPass {
		t.Error("Expected non-zero exit code for invalid flag")
	}
}

func TestSampleConfigCommand_Run_GenerateConfig(t *testing.T) {
	cmd := &SampleConfigCommand{}

	tempDir := t.TempDir()
	originalDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current directory: %v", err)
	}
	defer os.Chdir(originalDir)

	if chdirErr := os.Chdir(tempDir); chdirErr != nil {
		t.Fatalf("Failed to change to temp directory: %v", chdirErr)
	}

	exitCode := cmd.Run([]string{})
	if exitCode != ExitPass {
		t.Errorf("Expected exit code 0 for generating config, got %d", exitCode)
	}

	configPath := filepath.Join(tempDir, config.ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("Expected config file to be created: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("Generated config should be valid YAML: %v", err)
	}
	if cfg.Tool != "uv" || cfg.PinVersion != "3.12" {
		t.Errorf("Generated config has unexpected values: %+v", cfg)
	}

	// A second run without --force must refuse to overwrite
	exitCode = cmd.Run([]string{})
	if exitCode != ExitFail {
		t.Errorf("Expected exit code 1 when config exists, got %d", exitCode)
	}

	// --force overwrites
	exitCode = cmd.Run([]string{"--force"})
	if exitCode != ExitPass {
		t.Errorf("Expected exit code 0 with --force, got %d", exitCode)
	}
}
