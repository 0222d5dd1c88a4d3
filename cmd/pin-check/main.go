// Package main provides the pin-check command-line tool.
// pin-check drives an external version-manager binary through a
// pin/upgrade/verify scenario to catch upgrades that silently move a
// pinned runtime version.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/mitchellh/cli"

	"github.com/blairham/go-pin-check/internal/commands"
)

// Version information set by GoReleaser
var (
	version = "dev"
	commit  = "none"    //nolint:unused // Set by GoReleaser
	date    = "unknown" //nolint:unused // Set by GoReleaser
	builtBy = "unknown" //nolint:unused // Set by GoReleaser
)

func main() {
	c := cli.NewCLI("pin-check", version)
	c.Args = os.Args[1:]
	c.HelpFunc = customHelpFunc
	c.Commands = map[string]cli.CommandFactory{
		"doctor":          commands.DoctorCommandFactory,
		"sample-config":   commands.SampleConfigCommandFactory,
		"validate-config": commands.ValidateConfigCommandFactory,
		"verify":          commands.VerifyCommandFactory,
		"help":            commands.HelpCommandFactory,
	}

	exitStatus, err := c.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(exitStatus)
}

// customHelpFunc provides the top-level help output
func customHelpFunc(cmdFactories map[string]cli.CommandFactory) string {
	var commandNames []string
	for name := range cmdFactories {
		if name != "help" {
			commandNames = append(commandNames, name)
		}
	}

	sort.Strings(commandNames)

	usageLine := "usage: pin-check [-h] [--version]\n"
	usageLine += "                 {"
	usageLine += strings.Join(commandNames, ",")
	usageLine += "}\n                 ...\n"

	helpText := usageLine + `
A regression checker for version-manager tools: verifies that pinning a
runtime version and then upgrading does not switch to a different version.

positional arguments:
  {` + strings.Join(commandNames, ",") + `}
    doctor              Check that the environment can run the verification scenario
    sample-config       Produce a sample .pin-check.yaml file
    validate-config     Validate .pin-check.yaml files
    verify              Run the upgrade-pin regression scenario

optional arguments:
  -h, --help            show this help message and exit
  --version             show program's version number and exit
`

	return helpText
}
