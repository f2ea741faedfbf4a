package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/booklab/booksite/internal/search"
)

func init() {
	flagSet := flag.NewFlagSet("search", flag.ExitOnError)

	handler := func(args []string) error {
		_ = flagSet.Parse(args)
		site, _, err := siteFromFlags()
		if err != nil {
			return err
		}

		query := strings.Join(flagSet.Args(), " ")
		outcome := site.Search(query)
		switch outcome.State {
		case search.Prompt:
			return &exitCodeError{
				error:    fmt.Errorf("query too short: type at least %d characters", search.MinQueryLength),
				exitCode: 1,
			}
		case search.NoResults:
			return &exitCodeError{
				error:    fmt.Errorf("no results found for %q; try another query", query),
				exitCode: 1,
			}
		}
		for _, rec := range outcome.Matches {
			fmt.Printf("%s\t%s\n", rec.URL, rec.Title)
		}
		return nil
	}

	// Register the command.
	commands = append(commands, &command{
		FlagSet:          flagSet,
		ShortDescription: "search the site's index",
		LongDescription:  "The search subcommand matches a query against the search index and prints the matching pages in index order.",
		handler:          handler,
	})
}
