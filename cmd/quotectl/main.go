// quotectl prices interior selections against the catalog without a server.
//
// Usage:
//
//	quotectl options --size "2 BHK"
//	quotectl price --size "1 BHK" --area 500 --select "LivingRoom=TV Unit"
//	quotectl catalog
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:                      "quotectl",
		Usage:                     "Inspect the interior catalog and price selections offline",
		Version:                   version,
		DisableSliceFlagSeparator: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "catalog",
				Usage:   "Path to a catalog YAML file (embedded catalog when empty)",
				EnvVars: []string{"CATALOG_FILE"},
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "table",
				Usage:   "Output format (table, json)",
			},
		},
		Commands: []*cli.Command{
			optionsCommand(),
			priceCommand(),
			catalogCommand(),
		},
	}
}
