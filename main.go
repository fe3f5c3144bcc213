package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/proposalworks/rfp-triage/internal/classify"
	"github.com/proposalworks/rfp-triage/internal/stats"
	taxonomyactions "github.com/proposalworks/rfp-triage/internal/taxonomy"
	"github.com/proposalworks/rfp-triage/models"
	"github.com/proposalworks/rfp-triage/pkg/taxonomy"
)

func main() {
	config, err := models.LoadConfig("rfp-triage.yaml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	pipelineFlags := []cli.Flag{
		&cli.StringFlag{
			Name:  "name",
			Usage: "original file name, used for format and type inference (required with stdin input)",
		},
		&cli.BoolFlag{
			Name:  "html",
			Usage: "treat input as HTML and extract the main content before classifying",
		},
		&cli.StringFlag{
			Name:  "url",
			Usage: "source URL of HTML input, used to resolve relative links",
		},
		&cli.IntFlag{
			Name:  "workers",
			Value: config.Workers,
			Usage: "number of concurrent classification workers",
		},
		&cli.StringFlag{
			Name:  "format",
			Value: config.Output,
			Usage: "output format: json or yaml",
		},
		&cli.BoolFlag{
			Name:  "save",
			Usage: "persist the run to the SQLite store",
		},
		&cli.StringFlag{
			Name:  "db",
			Value: config.DBPath,
			Usage: "path to the SQLite store (default: next to the binary)",
		},
		&cli.BoolFlag{
			Name:  "quiet",
			Usage: "suppress informational logging",
		},
	}

	app := &cli.App{
		Name:    "rfp-triage",
		Usage:   "classify RFP and proposal documents and route content to backend proposal sections",
		Version: taxonomy.Version,
		Commands: []*cli.Command{
			{
				Name:      "classify",
				Usage:     "classify a document's pages and infer its type",
				ArgsUsage: "<file | ->",
				Flags:     pipelineFlags,
				Action:    classify.ClassifyAction,
			},
			{
				Name:      "requirements",
				Usage:     "extract routed requirement clauses from a document",
				ArgsUsage: "<file | ->",
				Flags:     pipelineFlags,
				Action:    classify.RequirementsAction,
			},
			{
				Name:  "stats",
				Usage: "report label and section distributions across stored runs",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: config.Output,
						Usage: "output format: json or yaml",
					},
					&cli.StringFlag{
						Name:  "db",
						Value: config.DBPath,
						Usage: "path to the SQLite store (default: next to the binary)",
					},
					&cli.IntFlag{
						Name:  "limit",
						Value: 20,
						Usage: "number of recent documents to include",
					},
				},
				Action: stats.StatsAction,
			},
			{
				Name:  "taxonomy",
				Usage: "dump the active classification taxonomy",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: config.Output,
						Usage: "output format: json or yaml",
					},
				},
				Action: taxonomyactions.DumpAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
