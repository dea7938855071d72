// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// serveCommand runs the HTTP server.
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Usage: "Listen address; overrides server.host and server.port",
			},
		},
		Action: r.Serve,
	}
}

// setupCommand handles setup operations for configuration and the database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:   "config",
				Usage:  "Write the example configuration to --config",
				Action: r.SetupConfig,
			},
			{
				Name:  "database",
				Usage: "Initialize database and run migrations",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "rollback",
						Usage: "Roll back the most recent migration instead",
					},
				},
				Action: r.SetupDatabase,
			},
		},
	}
}

// tracksCommand handles catalogue operations.
func tracksCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tracks",
		Aliases: []string{"t"},
		Usage:   "List, add and browse tracks",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List tracks, seeds first",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "search",
						Aliases: []string{"s"},
						Usage:   "Case-insensitive match on song or user name",
					},
					&cli.StringFlag{
						Name:    "genre",
						Aliases: []string{"g"},
						Usage:   "Exact genre, or all",
						Value:   "all",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format (table, csv, markdown, json)",
						Value:   "table",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path; stdout when empty",
					},
				},
				Action: r.TracksList,
			},
			{
				Name:  "add",
				Usage: "Upload a local MP3 or WAV file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "song",
						Usage:    "Song name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "user",
						Usage:    "Uploader name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "file",
						Usage:    "Path to the audio file",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "genre",
						Usage: "Genre (default Unknown)",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output the stored record as JSON",
					},
				},
				Action: r.TracksAdd,
			},
			{
				Name:   "browse",
				Usage:  "Interactive track browser",
				Action: r.TracksBrowse,
			},
		},
	}
}

// paintCommand handles the paint canvas.
func paintCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "paint",
		Usage: "Paint canvas tools",
		Commands: []*cli.Command{
			{
				Name:  "render",
				Usage: "Replay a paint script and write the canvas as PNG or PDF",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "script",
						Usage:    "Script file; - reads stdin",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file; - writes PNG to stdout",
						Value:   "canvas.png",
					},
					&cli.BoolFlag{
						Name:  "pdf",
						Usage: "Write a PDF regardless of the output extension",
					},
					&cli.StringFlag{
						Name:  "color",
						Usage: "Initial color as hex or a color name",
					},
				},
				Action: r.PaintRender,
			},
			{
				Name:  "tui",
				Usage: "Interactive mouse-driven terminal canvas",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "cols",
						Usage: "Canvas width in terminal cells",
						Value: 64,
					},
					&cli.IntFlag{
						Name:  "rows",
						Usage: "Canvas height in terminal cells (two pixels per cell)",
						Value: 16,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "File written by the save key",
						Value:   "canvas.png",
					},
				},
				Action: r.PaintTUI,
			},
		},
	}
}
