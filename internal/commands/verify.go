package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/mitchellh/cli"

	"github.com/blairham/go-pin-check/pkg/config"
	"github.com/blairham/go-pin-check/pkg/scenario"
)

// VerifyCommand handles the verify command functionality
type VerifyCommand struct{}

// VerifyOptions holds command-line options for the verify command
type VerifyOptions struct {
	Config  string `short:"c" long:"config"  description:"Path to config file"`
	Tool    string `short:"t" long:"tool"    description:"Override the tool binary under test"`
	Pin     string `short:"p" long:"pin"     description:"Override the version to pin"`
	Verbose bool   `short:"v" long:"verbose" description:"Verbose output"`
	Help    bool   `short:"h" long:"help"    description:"Show this help message"`
}

// Help returns the help text for the verify command
func (c *VerifyCommand) Help() string {
	var opts VerifyOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = OptionsUsage

	formatter := &HelpFormatter{
		Command:     "verify",
		Description: "Run the upgrade-pin regression scenario against the configured tool.",
		Examples: []Example{
			{Command: "pin-check verify", Description: "Run the default uv/python scenario"},
			{Command: "pin-check verify --pin 3.13", Description: "Pin a different version"},
			{
				Command:     "pin-check verify --config custom.yaml",
				Description: "Use a custom scenario config",
			},
		},
		Notes: []string{
			"The scenario pins a runtime version in a fresh temporary directory,",
			"runs the tool's upgrade command, and verifies the pin still points at",
			"the same minor version - both in the marker file and in the output of",
			"the runtime itself.",
			"",
			"Exit codes:",
			"  0: Scenario passed",
			"  1: Scenario failed or the tool is unavailable",
			"  2: Error parsing arguments or configuration",
		},
	}

	return formatter.FormatHelp(parser)
}

// Synopsis returns a short description of the verify command
func (c *VerifyCommand) Synopsis() string {
	return "Run the upgrade-pin regression scenario"
}

// Run executes the verify command with the given arguments
func (c *VerifyCommand) Run(args []string) int {
	var opts VerifyOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = OptionsUsage

	_, err := parser.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return ExitPass
		}
		fmt.Printf("Error parsing arguments: %v\n", err)
		return ExitUsage
	}

	cfg, err := config.LoadConfigOrDefault(opts.Config)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return ExitUsage
	}
	if opts.Tool != "" {
		cfg.Tool = opts.Tool
	}
	if opts.Pin != "" {
		cfg.PinVersion = opts.Pin
	}
	if opts.Verbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Error: invalid configuration: %v\n", err)
		return ExitUsage
	}

	verifier := scenario.NewVerifier(cfg)

	probe, failure := verifier.Preflight()
	if failure != nil {
		fmt.Printf("Error: %s\n", failure.Message)
		return ExitFail
	}
	fmt.Printf("Testing %s upgrade behavior (pin %s %s)\n", cfg.Tool, cfg.Runtime, cfg.PinVersion)
	if probe.Ok() {
		fmt.Printf("%s version: %s\n", cfg.Tool, firstLine(probe.Stdout))
	}

	result := verifier.Run()
	if !result.Passed {
		return ExitFail
	}
	return ExitPass
}

// firstLine returns the first line of command output, trimmed
func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// VerifyCommandFactory creates a new verify command instance
func VerifyCommandFactory() (cli.Command, error) {
	return &VerifyCommand{}, nil
}
