// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OSM Kit Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli"

	"github.com/osmkit/osmkitd/timestamp"
)

func runFormat(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	args := c.Args()
	if 0 == len(args) {
		return fmt.Errorf("missing seconds argument")
	}

	for _, arg := range args {
		seconds, err := strconv.ParseUint(arg, 10, 32)
		if nil != err {
			return fmt.Errorf("seconds: %q error: %s", arg, err)
		}

		ts := timestamp.FromSeconds(int64(seconds))
		if !ts.IsValid() {
			return fmt.Errorf("seconds: %q is not a valid time", arg)
		}

		if m.verbose {
			fmt.Fprintf(m.w, "%d = %s\n", ts.Seconds(), ts)
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
