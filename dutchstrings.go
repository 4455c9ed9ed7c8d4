package main

import (
	"log"
	"net/http"
	"os"

	"github.com/KingOfTheAce2/Belastingdienst-online-aangifte-simulatie/dutch"
	"github.com/urfave/cli/v2"

	_ "net/http/pprof"
)

func init() {
	go func() {
		panic(http.ListenAndServe(":6060", nil))
	}()
}

func main() {
	log.SetFlags(0)

	app := &cli.App{
		Name:  "dutchstrings",
		Usage: "Heuristic extraction of user-facing Dutch text from the aangifte JS bundles",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "min-length",
				Value: dutch.DefaultMinLength,
				Usage: "Minimum literal length, in characters, worth reporting",
			},
			&cli.StringFlag{
				Name:  "encoding",
				Value: "utf-8",
				Usage: "Bundle text encoding [utf-8|windows-1252|latin-1]. Broken bytes are substituted, never fatal",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "extract",
				Usage: "Scan a single bundle file and write a 'Line <n>: <text>' record per likely user-facing literal",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input",
						Required: true,
						Usage:    "bundle file to scan",
					},
					&cli.StringFlag{
						Name:  "output",
						Value: "-",
						Usage: "destination file, or '-' for stdout",
					},
				},
				Action: func(ctx *cli.Context) error {
					return extractCmd(ctx.String("input"), ctx.String("output"), ctx.String("encoding"), scanConfig(ctx))
				},
			},
			{
				Name:  "stats",
				Usage: "Provide a per-bundle table of literal counts and filter outcomes",
				Flags: treeFlags(),
				Action: func(ctx *cli.Context) error {
					return dutch.Stats(
						ctx.String("source-root"),
						ctx.String("ext"),
						ctx.String("encoding"),
						scanConfig(ctx),
						os.Stdout)
				},
			},
			{
				Name:  "lengths-image",
				Usage: "Save a histogram of matched literal lengths in a png/jpg/svg",
				Flags: append(treeFlags(),
					&cli.StringFlag{
						Name:  "cache-db",
						Value: defaultCacheName(),
						Usage: "match cache (empty to disable)",
					},
					&cli.StringFlag{
						Name:  "output",
						Value: defaultOutputName(),
						Usage: "output image for the length histogram",
					},
				),
				Action: func(ctx *cli.Context) error {
					return dutch.LengthsImage(
						ctx.String("source-root"),
						ctx.String("ext"),
						ctx.String("encoding"),
						scanConfig(ctx),
						ctx.String("cache-db"),
						ctx.String("output"))
				},
			},
			{
				Name:  "bq-upload",
				Usage: "Upload all match records to bigquery for the localisation team",
				Flags: append(treeFlags(),
					&cli.StringFlag{
						Name:  "cache-db",
						Value: defaultCacheName(),
						Usage: "match cache (empty to disable)",
					},
					&cli.StringFlag{
						Name:     "bq-project",
						Required: true,
						Usage:    "bigquery project id",
					},
					&cli.StringFlag{
						Name:  "bq-dataset",
						Value: "localisation",
						Usage: "bigquery dataset name",
					},
				),
				Action: func(ctx *cli.Context) error {
					return dutch.BQUpload(
						ctx.String("source-root"),
						ctx.String("ext"),
						ctx.String("encoding"),
						scanConfig(ctx),
						ctx.String("cache-db"),
						ctx.String("bq-project"),
						ctx.String("bq-dataset"))
				},
			},
			{
				Name:  "pg-load",
				Usage: "Insert all match records into a postgres dutch_strings table",
				Flags: append(treeFlags(),
					&cli.StringFlag{
						Name:  "cache-db",
						Value: defaultCacheName(),
						Usage: "match cache (empty to disable)",
					},
					&cli.StringFlag{
						Name:  "dsn",
						Value: "postgres://localhost:5432/localisation?sslmode=disable",
						Usage: "postgres data source name",
					},
				),
				Action: func(ctx *cli.Context) error {
					return dutch.PGLoad(
						ctx.String("source-root"),
						ctx.String("ext"),
						ctx.String("encoding"),
						scanConfig(ctx),
						ctx.String("cache-db"),
						ctx.String("dsn"))
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func scanConfig(ctx *cli.Context) dutch.Config {
	return dutch.Config{MinLength: ctx.Int("min-length")}
}

func treeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "source-root",
			Value: ".",
			Usage: "Root directory containing the downloaded bundle files",
		},
		&cli.StringFlag{
			Name:  "ext",
			Value: ".js",
			Usage: "Bundle file extension to scan",
		},
	}
}

func extractCmd(input, output, encName string, cfg dutch.Config) error {
	if output == "-" {
		return dutch.Extract(input, encName, cfg, os.Stdout)
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := dutch.Extract(input, encName, cfg, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
