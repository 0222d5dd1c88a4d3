package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/mitchellh/cli"
	"gopkg.in/yaml.v3"

	"github.com/blairham/go-pin-check/pkg/config"
)

// SampleConfigCommand handles the sample-config command functionality
type SampleConfigCommand struct{}

// SampleConfigOptions holds command-line options for the sample-config command
type SampleConfigOptions struct {
	Force bool `short:"f" long:"force" description:"Overwrite existing configuration file"`
	Help  bool `short:"h" long:"help"  description:"Show this help message"`
}

// Help returns the help text for the sample-config command
func (c *SampleConfigCommand) Help() string {
	var opts SampleConfigOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = OptionsUsage

	formatter := &HelpFormatter{
		Command:     "sample-config",
		Description: "Generate a sample .pin-check.yaml file.",
		Examples: []Example{
			{Command: "pin-check sample-config", Description: "Generate sample config"},
			{Command: "pin-check sample-config --force", Description: "Overwrite existing config"},
		},
		Notes: []string{
			"This creates a .pin-check.yaml describing the default uv/python scenario.",
			"Use --force to overwrite an existing configuration file.",
		},
	}

	return formatter.FormatHelp(parser)
}

// Synopsis returns a short description of the sample-config command
func (c *SampleConfigCommand) Synopsis() string {
	return "Generate a sample configuration file"
}

// Run executes the sample-config command
func (c *SampleConfigCommand) Run(args []string) int {
	var opts SampleConfigOptions

	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = OptionsUsage

	_, err := parser.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) {
			if flagsErr.Type == flags.ErrHelp {
				return ExitPass
			}
		}
		fmt.Printf("Error parsing flags: %v\n", err)
		return ExitFail
	}

	configPath := config.ConfigFileName

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		fmt.Printf("Error: failed to marshal configuration: %v\n", err)
		return ExitFail
	}

	configExists := false
	if _, statErr := os.Stat(configPath); statErr == nil {
		configExists = true
		if !opts.Force {
			fmt.Printf("Error: %s already exists. Use --force to overwrite.\n", configPath)
			return ExitFail
		}
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		fmt.Printf("Error: failed to write configuration file: %v\n", err)
		return ExitFail
	}

	if opts.Force && configExists {
		fmt.Printf("Sample configuration written to %s (overwrote existing file)\n", configPath)
	} else {
		fmt.Printf("Sample configuration written to %s\n", configPath)
	}
	fmt.Println("Edit the file to describe your tool, then run 'pin-check verify'")
	return ExitPass
}

// SampleConfigCommandFactory creates a new sample-config command instance
func SampleConfigCommandFactory() (cli.Command, error) {
	return &SampleConfigCommand{}, nil
}
