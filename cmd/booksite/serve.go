package main

import (
	"flag"
	"net"
	"net/http"

	"github.com/rs/zerolog/log"
)

func init() {
	flagSet := flag.NewFlagSet("serve", flag.ExitOnError)
	var (
		httpAddr = flagSet.String("http", getEnv("BOOKSITE_HTTP", ":5080"), "HTTP listen address")
	)

	handler := func(args []string) error {
		_ = flagSet.Parse(args)

		host, port, err := net.SplitHostPort(*httpAddr)
		if err != nil {
			return err
		}
		if host == "" {
			host = "0.0.0.0"
		}

		site, _, err := siteFromFlags()
		if err != nil {
			return err
		}
		if site.Index.Len() == 0 {
			log.Warn().Msg("search manifest is empty or missing; searches will find nothing (run 'booksite manifest' to generate one)")
		}

		log.Info().Msgf("book site available at http://%s:%s", host, port)
		return http.ListenAndServe(*httpAddr, site.Handler())
	}

	// Register the command.
	commands = append(commands, &command{
		FlagSet:          flagSet,
		ShortDescription: "start a web server to serve the book site",
		LongDescription:  "The serve subcommand starts a web server to serve the site over HTTP. After changing a chapter or template file, changes are immediately visible after reloading the page.",
		handler:          handler,
	})
}
