package main

import (
	"flag"
	"fmt"

	"github.com/rs/zerolog/log"
)

func init() {
	flagSet := flag.NewFlagSet("check", flag.ExitOnError)

	handler := func(args []string) error {
		_ = flagSet.Parse(args)
		site, _, err := siteFromFlags()
		if err != nil {
			return err
		}

		problems, err := site.Check()
		if err != nil {
			return err
		}
		if len(problems) > 0 {
			for _, problem := range problems {
				log.Error().Msg(problem)
			}
			return &exitCodeError{
				error:    fmt.Errorf("found %d problems", len(problems)),
				exitCode: 1,
			}
		}
		log.Info().Msg("no problems found")
		return nil
	}

	// Register the command.
	commands = append(commands, &command{
		FlagSet:          flagSet,
		ShortDescription: "check the site for problems",
		LongDescription:  "The check subcommand checks the site for broken links, disconnected chapters, and stale search index records.",
		handler:          handler,
	})
}
