package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// command is a subcommand handler and its flag set.
type command struct {
	// FlagSet is the flag set for the command.
	FlagSet *flag.FlagSet

	// ShortDescription is the short description for the command shown in the
	// top-level help message.
	ShortDescription string

	// LongDescription is the long description for the command shown in the
	// command's help message.
	LongDescription string

	// aliases for the command.
	aliases []string

	// handler is the function that is invoked to handle this command.
	handler func(args []string) error
}

func (c *command) NameAndAliases() string {
	v := make([]string, 1+len(c.aliases))
	v[0] = c.FlagSet.Name()
	copy(v[1:], c.aliases)
	return strings.Join(v, ",")
}

// matches tells if the given name matches this command or one of its aliases.
func (c *command) matches(name string) bool {
	if name == c.FlagSet.Name() {
		return true
	}
	for _, alias := range c.aliases {
		if name == alias {
			return true
		}
	}
	return false
}

// commander represents a top-level command with subcommands.
type commander []*command

// run runs the command.
func (c commander) run(flagSet *flag.FlagSet, cmdName string, usage *template.Template, args []string) {
	// Parse flags.
	flagSet.Usage = func() {
		data := struct {
			FlagUsage func() string
			Commands  []*command
		}{
			FlagUsage: func() string { flagSet.PrintDefaults(); return "" },
			Commands:  c,
		}
		if err := usage.Execute(flagSet.Output(), data); err != nil {
			log.Fatal().Err(err).Msg("render usage")
		}
	}
	if !flagSet.Parsed() {
		_ = flagSet.Parse(args)
	}

	if level, err := zerolog.ParseLevel(*logLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	// Print usage if the command is "help".
	if flagSet.Arg(0) == "help" || flagSet.NArg() == 0 {
		flagSet.Usage()
		os.Exit(0)
	}

	// Configure default usage funcs for commands.
	for _, cmd_ := range c {
		cmd := cmd_
		cmd.FlagSet.Usage = func() {
			fmt.Fprintln(flagSet.Output(), "Usage:")
			fmt.Fprintln(flagSet.Output())
			fmt.Fprintf(flagSet.Output(), "  %s [options] %s", cmdName, cmd.FlagSet.Name())
			if hasFlags(cmd.FlagSet) {
				fmt.Fprint(flagSet.Output(), " [command options]")
			}
			fmt.Fprintln(flagSet.Output())
			if cmd.LongDescription != "" {
				fmt.Fprintln(flagSet.Output())
				fmt.Fprintln(flagSet.Output(), cmd.LongDescription)
				fmt.Fprintln(flagSet.Output())
			}
			if hasFlags(cmd.FlagSet) {
				fmt.Fprintln(flagSet.Output(), "The command options are:")
				fmt.Fprintln(flagSet.Output())
				cmd.FlagSet.PrintDefaults()
			}
		}
	}

	// Find the subcommand to execute.
	name := flagSet.Arg(0)
	for _, cmd := range c {
		if !cmd.matches(name) {
			continue
		}

		// Execute the subcommand.
		if err := cmd.handler(flagSet.Args()[1:]); err != nil {
			if e, ok := err.(*exitCodeError); ok {
				if e.error != nil {
					log.Error().Msg(e.error.Error())
				}
				os.Exit(e.exitCode)
			}
			log.Fatal().Msg(err.Error())
		}
		os.Exit(0)
	}
	log.Error().Msgf("%s: unknown subcommand %q", cmdName, name)
	log.Fatal().Msgf("Run '%s help' for usage.", cmdName)
}

func hasFlags(flagSet *flag.FlagSet) bool {
	var ok bool
	flagSet.VisitAll(func(*flag.Flag) { ok = true })
	return ok
}

// exitCodeError wraps an optional error with the process exit code to use.
type exitCodeError struct {
	error
	exitCode int
}
