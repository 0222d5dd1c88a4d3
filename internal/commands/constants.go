package commands

// Common constants used across command implementations
const (
	// Command usage patterns
	OptionsUsage = "[OPTIONS]"

	// Configuration file names
	ConfigFileName = ".pin-check.yaml"

	// Test configuration templates
	ValidScenarioConfig = `tool: uv
runtime: python
pin_version: "3.12"
marker_file: .python-version
`
)

// Exit codes shared by all commands
const (
	ExitPass  = 0
	ExitFail  = 1
	ExitUsage = 2
)
