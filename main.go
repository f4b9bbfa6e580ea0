//go:build !js

package main

import (
	"os"
	"time"

	"github.com/urfave/cli"

	"github.com/achilleasa/vista/cmd"
	"github.com/achilleasa/vista/log"
)

var logger = log.New("vista")

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "vista"
	app.Usage = "open a window and render a time-animated clear color"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "run",
			Usage: "open a window and enter the frame loop",
			Description: `
Create an OS window with an OpenGL 3.3 core profile context, optionally fetch
and upload a texture, and render a clear-color animation until the window is
closed.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 800,
					Usage: "window width in pixels",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 600,
					Usage: "window height in pixels",
				},
				cli.StringFlag{
					Name:  "title",
					Value: "vista",
					Usage: "window title",
				},
				cli.StringFlag{
					Name:  "texture, t",
					Usage: "url or path of a texture to load before the frame loop starts",
				},
				cli.DurationFlag{
					Name:  "fetch-timeout",
					Value: 30 * time.Second,
					Usage: "abort texture loading after this long",
				},
			},
			Action: cmd.RunView,
		},
		{
			Name:   "formats",
			Usage:  "list supported texture image formats",
			Action: cmd.ListFormats,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Errorf("%s", err)
		os.Exit(1)
	}
}
