package main

import (
	"flag"
	"os"
	"text/template"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var usage = template.Must(template.New("").Parse(`booksite is a tool for serving a book's companion documentation site from Markdown chapters and HTML templates.

Usage:

  booksite [options] command [command options]

The options are:

{{call .FlagUsage }}
The commands are:
{{range .Commands}}
  {{printf "%- 15s" .NameAndAliases}} {{.ShortDescription}}
{{- end}}

Use "booksite [command] -h" for more information about a command.

`))

var (
	configPath = flag.String("config", "booksite.json", "path to the site configuration `file`")
	logLevel   = flag.String("log-level", getEnv("BOOKSITE_LOG_LEVEL", "info"), "log level (trace, debug, info, warn, error)")
)

// commands contains all registered subcommands.
var commands commander

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	commands.run(flag.CommandLine, "booksite", usage, os.Args[1:])
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
