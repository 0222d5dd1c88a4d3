package commands

import (
	"errors"
	"fmt"

	"github.com/jessevdk/go-flags"
	"github.com/mitchellh/cli"
)

// HelpCommand handles the help command functionality
type HelpCommand struct {
	UI cli.Ui // User interface for command output
}

// HelpOptions holds command-line options for the help command
type HelpOptions struct {
	Help bool `short:"h" long:"help" description:"Show this help message"`
}

// Help returns the help text for the help command
func (c *HelpCommand) Help() string {
	helpText := `
Show help for a specific command.

Usage: pin-check help [COMMAND]

If COMMAND is specified, shows detailed help for that command.
If no command is specified, shows general help.

Available commands:
  doctor              Check that the environment can run the verification scenario
  sample-config       Produce a sample .pin-check.yaml file
  validate-config     Validate .pin-check.yaml files
  verify              Run the upgrade-pin regression scenario

`
	return helpText
}

// Synopsis returns a short description of the help command
func (c *HelpCommand) Synopsis() string {
	return "Show help for a specific command"
}

// Run executes the help command
func (c *HelpCommand) Run(args []string) int {
	var opts HelpOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[COMMAND]"

	remaining, err := parser.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return ExitPass
		}
		fmt.Printf("Error parsing arguments: %v\n", err)
		return ExitFail
	}

	if len(remaining) == 0 {
		// Show general help
		fmt.Print(c.Help())
		return ExitPass
	}

	command := remaining[0]

	// Map of command descriptions
	commandHelp := map[string]string{
		"verify":          "Run the pin/upgrade/verify scenario in a fresh temporary directory.",
		"doctor":          "Check that the tool under test is available and the environment is sound.",
		"validate-config": "Check that your .pin-check.yaml file is valid.",
		"sample-config":   "Generate an example .pin-check.yaml file.",
		"help":            "Show help information for commands.",
	}

	if help, exists := commandHelp[command]; exists {
		fmt.Printf("Command: %s\n\n", command)
		fmt.Printf("Description: %s\n\n", help)
		fmt.Printf("For detailed usage information, run:\n")
		fmt.Printf("  pin-check %s --help\n", command)
	} else {
		fmt.Printf("Unknown command: %s\n\n", command)
		fmt.Println("Available commands:")
		for cmd := range commandHelp {
			fmt.Printf("  %s\n", cmd)
		}
		return ExitFail
	}

	return ExitPass
}

// HelpCommandFactory creates a new help command instance
func HelpCommandFactory() (cli.Command, error) {
	return &HelpCommand{}, nil
}
