package cli

import (
	"fmt"
	"os"

	goflags "github.com/jessevdk/go-flags"
)

const appName = "promotimer"

// commands holds references to all subcommand structs for inspection/testing.
type commands struct {
	Run    *RunCommand
	Status *StatusCommand
	Clear  *ClearCommand
	Init   *InitCommand
}

// buildParser constructs the go-flags parser with all subcommands registered.
func buildParser(version string) (*goflags.Parser, *GlobalFlags, *commands) {
	var globals GlobalFlags

	parser := goflags.NewParser(&globals, goflags.Default)
	parser.Name = appName
	parser.LongDescription = "Countdown widget that opens a lead-capture form until the offer expires."

	cmds := &commands{
		Run:    &RunCommand{globals: &globals, version: version},
		Status: &StatusCommand{globals: &globals, version: version},
		Clear:  &ClearCommand{globals: &globals, version: version},
		Init:   &InitCommand{globals: &globals, version: version},
	}

	parser.AddCommand("run", "Show the countdown widget", "Show the countdown widget in a desktop window or the terminal.", cmds.Run)
	parser.AddCommand("status", "Print the countdown state", "Print mode, anchor, end moment and remaining time without starting the countdown.", cmds.Status)
	parser.AddCommand("clear", "Delete the stored anchor", "Delete the stored anchor so the next run starts a fresh relative window.", cmds.Clear)
	parser.AddCommand("init", "Write a config file", "Write a config file with the given countdown settings.", cmds.Init)

	return parser, &globals, cmds
}

// Run is the main entry point for the CLI using os.Args.
func Run(version string) error {
	return RunWithArgs(version, nil)
}

// RunWithArgs parses the given args (or os.Args if nil) and executes the matched subcommand.
func RunWithArgs(version string, args []string) error {
	checkArgs := args
	if checkArgs == nil {
		checkArgs = os.Args[1:]
	}
	for _, arg := range checkArgs {
		if arg == "--version" {
			fmt.Printf("%s %s\n", appName, version)
			return nil
		}
		if arg == "--" {
			break
		}
	}

	parser, _, _ := buildParser(version)

	var err error
	if args != nil {
		_, err = parser.ParseArgs(args)
	} else {
		_, err = parser.Parse()
	}

	if err != nil {
		if flagsErr, ok := err.(*goflags.Error); ok {
			if flagsErr.Type == goflags.ErrHelp {
				return nil
			}
		}
		return err
	}

	return nil
}
