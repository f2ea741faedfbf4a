package main

import (
	"flag"
	"os"

	"gopkg.in/yaml.v2"
)

func init() {
	flagSet := flag.NewFlagSet("manifest", flag.ExitOnError)
	var (
		outPath = flagSet.String("out", "", "write the manifest to `file` instead of stdout")
	)

	handler := func(args []string) error {
		_ = flagSet.Parse(args)
		site, _, err := siteFromFlags()
		if err != nil {
			return err
		}

		records, err := site.GenerateIndexRecords()
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(records)
		if err != nil {
			return err
		}
		if *outPath == "" {
			_, err = os.Stdout.Write(data)
			return err
		}
		return os.WriteFile(*outPath, data, 0o644)
	}

	// Register the command.
	commands = append(commands, &command{
		FlagSet:          flagSet,
		ShortDescription: "generate the search manifest from chapters",
		LongDescription:  "The manifest subcommand walks the site's chapters and writes a search manifest (title, url, keywords per chapter) in YAML.",
		handler:          handler,
	})
}
