package commands

import (
	"errors"
	"fmt"

	"github.com/jessevdk/go-flags"
	"github.com/mitchellh/cli"

	"github.com/blairham/go-pin-check/pkg/command"
	"github.com/blairham/go-pin-check/pkg/config"
	"github.com/blairham/go-pin-check/pkg/workspace"
)

// DoctorCommand handles the doctor command functionality
type DoctorCommand struct{}

// DoctorOptions holds command-line options for the doctor command
type DoctorOptions struct {
	Config  string `short:"c" long:"config"  description:"Path to config file"`
	Verbose bool   `short:"v" long:"verbose" description:"Verbose output"`
	Help    bool   `short:"h" long:"help"    description:"Show this help message"`
}

// Help returns the help text for the doctor command
func (c *DoctorCommand) Help() string {
	var opts DoctorOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = OptionsUsage

	formatter := &HelpFormatter{
		Command:     "doctor",
		Description: "Check that the environment can run the verification scenario.",
		Examples: []Example{
			{Command: "pin-check doctor", Description: "Check scenario prerequisites"},
			{Command: "pin-check doctor --verbose", Description: "Show detailed diagnostic information"},
		},
		Notes: []string{
			"Checks that the tool under test is on PATH and answers --version,",
			"and that scenario workspaces are not nested under a project that",
			"could leak its own pin into the test.",
			"",
			"Exit codes:",
			"  0: No problems found",
			"  1: Problems found",
			"  2: Error running doctor command",
		},
	}

	return formatter.FormatHelp(parser)
}

// Synopsis returns a short description of the doctor command
func (c *DoctorCommand) Synopsis() string {
	return "Check scenario prerequisites"
}

// Run executes the doctor command with the given arguments
func (c *DoctorCommand) Run(args []string) int {
	var opts DoctorOptions
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
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Error: invalid configuration: %v\n", err)
		return ExitUsage
	}

	fmt.Printf("🔍 Checking pin-check prerequisites...\n\n")

	var problems []string
	var warnings []string

	problems = append(problems, c.checkTool(cfg, opts.Verbose)...)
	warnings = append(warnings, c.checkWorkspaceNesting(cfg, opts.Verbose)...)

	for _, warning := range warnings {
		fmt.Printf("⚠️  %s\n", warning)
	}
	if len(problems) > 0 {
		fmt.Printf("\nFound %d problem(s):\n", len(problems))
		for _, problem := range problems {
			fmt.Printf("  ❌ %s\n", problem)
		}
		return ExitFail
	}

	fmt.Println("✅ Environment is ready to run the scenario")
	return ExitPass
}

// checkTool verifies the tool under test can be resolved and launched
func (c *DoctorCommand) checkTool(cfg *config.Config, verbose bool) []string {
	var problems []string

	path, err := command.Resolve(cfg.Tool)
	if err != nil {
		return append(problems, err.Error())
	}
	if verbose {
		fmt.Printf("Found %s at %s\n", cfg.Tool, path)
	}

	result, err := command.NewQuietRunner().Run("", cfg.Tool, "--version")
	switch {
	case err != nil:
		problems = append(problems, fmt.Sprintf("failed to launch %s: %v", cfg.Tool, err))
	case !result.Ok():
		problems = append(problems,
			fmt.Sprintf("%s --version exited with code %d", cfg.Tool, result.ExitCode))
	default:
		fmt.Printf("%s version: %s\n", cfg.Tool, firstLine(result.Stdout))
	}

	return problems
}

// checkWorkspaceNesting warns when scenario workspaces would sit under
// an enclosing project whose pin could leak into the test
func (c *DoctorCommand) checkWorkspaceNesting(cfg *config.Config, verbose bool) []string {
	ws, err := workspace.New()
	if err != nil {
		return []string{fmt.Sprintf("failed to create probe workspace: %v", err)}
	}
	defer ws.Cleanup() //nolint:errcheck // best-effort workspace removal

	if verbose {
		fmt.Printf("Probe workspace: %s\n", ws.Path())
	}

	return ws.NestingHazards(cfg.MarkerFile)
}

// DoctorCommandFactory creates a new doctor command instance
func DoctorCommandFactory() (cli.Command, error) {
	return &DoctorCommand{}, nil
}
