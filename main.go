package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/Kim-dr/paper-explorer/internal/analyze"
	"github.com/Kim-dr/paper-explorer/internal/serve"
	"github.com/Kim-dr/paper-explorer/internal/stats"
)

func main() {
	app := &cli.App{
		Name:  "paper-explorer",
		Usage: "Explore CORD-19 research-paper metadata in the browser",
		Commands: []*cli.Command{
			serve.Command(),
			analyze.Command(),
			stats.Command(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
