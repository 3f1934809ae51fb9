// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OSM Kit Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/osmkit/osmkitd/configuration"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "osmkit-cli"
	// app.Usage = ""
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " configuration `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "parse",
			Usage:     "convert ISO-8601 times to seconds since epoch",
			ArgsUsage: "yyyy-mm-ddThh:mm:ssZ ...",
			Action:    runParse,
		},
		{
			Name:      "format",
			Usage:     "convert seconds since epoch to ISO-8601 times",
			ArgsUsage: "SECONDS ...",
			Action:    runFormat,
		},
		{
			Name:      "store",
			Usage:     "pack an entity from a JSON file and store it",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "type, t",
					Value: "",
					Usage: "*entity `TYPE` [node|way|relation|changeset]",
				},
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "*`FILE` of JSON entity data",
				},
			},
			Action: runStore,
		},
		{
			Name:      "fetch",
			Usage:     "fetch stored entities and display them as JSON",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "type, t",
					Value: "",
					Usage: "*entity `TYPE` [node|way|relation|changeset]",
				},
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " start from entity `ID`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runFetch,
		},
		{
			Name:  "version",
			Usage: "display osmkit-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file for pure conversion commands
		command := c.Args().Get(0)
		switch command {
		case "parse", "format", "version", "help", "":
			c.App.Metadata["config"] = &metadata{
				verbose: verbose,
				e:       e,
				w:       w,
			}
			return nil
		}

		file := c.GlobalString("config")
		if "" == file {
			return fmt.Errorf("missing configuration file argument")
		}

		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		configuration, err := configuration.GetConfiguration(file)
		if nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			file:    file,
			config:  configuration,
			verbose: verbose,
			e:       e,
			w:       w,
		}

		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
