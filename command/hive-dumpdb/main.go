// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/hivenode/hived/storage/leveldbstore"
)

type metadata struct {
	config  leveldbstore.StorageConfig
	verbose bool
	e       io.Writer
	w       io.Writer
}

var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "hive-dumpdb"
	app.Usage = "examine a node database without starting it"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "file, f",
			Value: "",
			Usage: "*database directory `PATH`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "info",
			Usage:     "display version, health, size and partitions",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "count, c",
					Usage: " count the entries of every partition",
				},
			},
			Action: runInfo,
		},
		{
			Name:      "partitions",
			Usage:     "display the partition catalog",
			ArgsUsage: "\n   (* = required)",
			Action:    runPartitions,
		},
		{
			Name:      "size",
			Usage:     "display on-disk size",
			ArgsUsage: "\n   (* = required)",
			Action:    runSize,
		},
		{
			Name:  "version",
			Usage: "display hive-dumpdb version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		command := c.Args().Get(0)
		if "version" == command || "" == command || "help" == command || "h" == command {
			return nil
		}

		file := c.GlobalString("file")
		if "" == file {
			return fmt.Errorf("database directory is required")
		}

		verbose := c.GlobalBool("verbose")
		if verbose {
			fmt.Fprintf(c.App.ErrWriter, "database: %q\n", file)
		}

		c.App.Metadata["config"] = &metadata{
			config:  leveldbstore.DefaultConfig(file),
			verbose: verbose,
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}
