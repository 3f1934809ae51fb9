// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OSM Kit Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/osmkit/osmkitd/entityrecord"
	"github.com/osmkit/osmkitd/storage"
	"github.com/osmkit/osmkitd/timestamp"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || 0 == len(arguments) || 1 != len(options["file"]) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--count=N] --file=DATABASE pool-name", program)
	}

	verbose := len(options["verbose"]) > 0

	count := 10
	if len(options["count"]) > 0 {
		count, err = strconv.Atoi(options["count"][0])
		if nil != err {
			exitwithstatus.Message("%s: convert count error: %s", program, err)
		}
		if count < 1 {
			exitwithstatus.Message("%s: invalid count: %d", program, count)
		}
	}

	filename := options["file"][0]
	poolName := arguments[0]
	if verbose {
		fmt.Printf("dump pool: %s from database: %q\n", poolName, filename)
	}

	logging := logger.Configuration{
		Directory: ".",
		File:      "osmkit-dumpdb.log",
		Size:      1048576,
		Count:     10,
		Console:   true,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// start of main processing
	err = storage.Initialise(filename, storage.ReadOnly)
	if nil != err {
		exitwithstatus.Message("%s: storage setup failed with error: %s", program, err)
	}
	defer storage.Finalise()

	pool, err := storage.PoolByName(poolName)
	if nil != err {
		exitwithstatus.Message("%s: invalid pool name: %q", program, poolName)
	}

	// dump records in key order, folding all timestamps so the
	// covered time span can be reported at the end
	timeRange := timestamp.NewRange()
	printed := 0

	cursor := pool.NewFetchCursor()
	for printed < count {
		remaining := count - printed
		elements, err := cursor.Fetch(remaining)
		if nil != err {
			exitwithstatus.Message("%s: fetch error: %s", program, err)
		}
		if 0 == len(elements) {
			break
		}
		for _, e := range elements {
			printElement(e, verbose, &timeRange)
			printed += 1
		}
	}

	fmt.Printf("records: %d\n", printed)
	if !timeRange.IsEmpty() {
		fmt.Printf("time range: %s .. %s\n", timeRange.Min(), timeRange.Max())
	}
}

// decode one element and print a line per record
func printElement(e storage.Element, verbose bool, timeRange *timestamp.Range) {

	id := uint64(0)
	if 8 == len(e.Key) {
		id = binary.BigEndian.Uint64(e.Key)
	}

	entity, _, err := entityrecord.Packed(e.Value).Unpack()
	if nil != err {
		fmt.Printf("%d: *** corrupt record: %x\n", id, e.Value)
		return
	}

	switch record := entity.(type) {
	case *entityrecord.Node:
		fmt.Printf("node %d v%d %s (%d, %d)\n", record.Id, record.Version, record.Timestamp, record.Lon, record.Lat)
		timeRange.Add(record.Timestamp)
		if verbose {
			printTags(record.Tags)
		}

	case *entityrecord.Way:
		fmt.Printf("way %d v%d %s nodes: %d\n", record.Id, record.Version, record.Timestamp, len(record.Nodes))
		timeRange.Add(record.Timestamp)
		if verbose {
			printTags(record.Tags)
		}

	case *entityrecord.Relation:
		fmt.Printf("relation %d v%d %s members: %d\n", record.Id, record.Version, record.Timestamp, len(record.Members))
		timeRange.Add(record.Timestamp)
		if verbose {
			printTags(record.Tags)
		}

	case *entityrecord.Changeset:
		fmt.Printf("changeset %d by %q %s .. %s changes: %d\n", record.Id, record.User, record.CreatedAt, record.ClosedAt, record.NumChanges)
		timeRange.Add(record.CreatedAt)
		timeRange.Add(record.ClosedAt)
		if verbose {
			printTags(record.Tags)
		}

	default:
		fmt.Printf("%d: *** unexpected record type: %T\n", id, entity)
	}
}

func printTags(tags entityrecord.Tags) {
	for _, tag := range tags {
		fmt.Printf("    %s = %q\n", tag.Key, tag.Value)
	}
}
