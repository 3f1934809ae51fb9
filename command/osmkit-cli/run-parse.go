// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OSM Kit Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/osmkit/osmkitd/timestamp"
)

func runParse(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	args := c.Args()
	if 0 == len(args) {
		return fmt.Errorf("missing time argument")
	}

	for _, arg := range args {
		ts, err := timestamp.Parse(arg)
		if nil != err {
			return fmt.Errorf("time: %q error: %s", arg, err)
		}

		if m.verbose {
			fmt.Fprintf(m.w, "%s = %d\n", ts, ts.Seconds())
		} else {
			out := struct {
				ISO     string `json:"iso"`
				Seconds int64  `json:"seconds"`
			}{
				ISO:     ts.ToISO(),
				Seconds: ts.Seconds(),
			}
			printJson(m.w, out)
		}
	}
	return nil
}
