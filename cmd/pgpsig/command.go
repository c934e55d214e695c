package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
)

var (
	// ErrPrintUsage marks errors caused by bad command line input. The usage
	// of the command which rejected the input is printed before returning.
	ErrPrintUsage = errors.New("bad command line")

	// ErrHelpShown is returned after usage was printed because the user asked
	// for it. It is not a failure.
	ErrHelpShown = errors.New("help shown")
)

// Runner is a command which can be dispatched to by name.
type Runner interface {
	Run(args []string) error
	Synopsis() string
}

// Command is a command line verb whose flags are parsed into Options. A
// command with Subcommands dispatches to one of them by its first
// positional argument when it has no Execute function of its own.
type Command[Options any] struct {
	Name          string
	Description   string
	UsageExamples []string
	Subcommands   map[string]Runner
	AddFlags      func(*flag.FlagSet, *Options)
	Execute       func(flagInput *Options, positionalArgs []string) error
}

// Synopsis returns the first sentence of the description.
func (cmd *Command[Options]) Synopsis() string {
	first, _, _ := strings.Cut(cmd.Description, ". ")
	return strings.TrimSuffix(first, ".")
}

func (cmd *Command[Options]) printUsage(out io.Writer, flags *flag.FlagSet) {
	examples := cmd.UsageExamples
	if len(examples) == 0 {
		examples = []string{cmd.Name + " [options]"}
	}
	fmt.Fprintf(out, "usage: %s\n", examples[0])
	for _, line := range examples[1:] {
		fmt.Fprintf(out, "       %s\n", line)
	}
	fmt.Fprintln(out)

	if cmd.Description != "" {
		fmt.Fprintf(out, "%s\n\n", justifyTerminalWidth(2, cmd.Description))
	}

	if len(cmd.Subcommands) > 0 {
		names := make([]string, 0, len(cmd.Subcommands))
		width := 0
		for name := range cmd.Subcommands {
			names = append(names, name)
			width = max(width, len(name))
		}
		slices.Sort(names)

		fmt.Fprintln(out, "commands:")
		for _, name := range names {
			fmt.Fprintf(out, "  %-*s  %s\n", width, name, cmd.Subcommands[name].Synopsis())
		}
		fmt.Fprintf(out, "\nRun '%s <command> help' for the options of a command.\n\n", cmd.Name)
	}

	hasFlags := false
	flags.VisitAll(func(*flag.Flag) { hasFlags = true })
	if hasFlags {
		fmt.Fprintln(out, "options:")
		flags.PrintDefaults()
		fmt.Fprintln(out)
	}
}

func (cmd *Command[Options]) dispatch(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: %s needs a command", ErrPrintUsage, cmd.Name)
	}
	subcmd, ok := cmd.Subcommands[args[0]]
	if !ok {
		return fmt.Errorf("%w: %s has no command %q", ErrPrintUsage, cmd.Name, args[0])
	}
	return subcmd.Run(args[1:])
}

// Run parses args and executes the command. Usage is printed to stderr when
// help is requested, or when the command fails with ErrPrintUsage.
func (cmd *Command[Options]) Run(args []string) error {
	flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)

	var input Options
	if cmd.AddFlags != nil {
		cmd.AddFlags(flags, &input)
	}
	flags.Usage = func() { cmd.printUsage(flags.Output(), flags) }

	if len(args) == 1 && (args[0] == "help" || args[0] == "-h" || args[0] == "--help") {
		flags.Usage()
		return ErrHelpShown
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ErrHelpShown
		}
		return err
	}

	var err error
	if cmd.Execute != nil {
		err = cmd.Execute(&input, flags.Args())
	} else {
		err = cmd.dispatch(flags.Args())
	}

	if errors.Is(err, ErrPrintUsage) {
		flags.Usage()

		// Strip the sentinel so enclosing commands don't print their usage too.
		return errors.New(err.Error())
	}
	return err
}
