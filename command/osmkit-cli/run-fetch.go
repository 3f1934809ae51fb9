// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OSM Kit Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/osmkit/osmkitd/entityrecord"
	"github.com/osmkit/osmkitd/storage"
)

func runFetch(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	entityType, err := checkEntityType(c.String("type"))
	if nil != err {
		return err
	}

	start := c.Uint64("start")
	count := c.Int("count")
	if count < 1 {
		return fmt.Errorf("invalid count: %d", count)
	}

	cleanup, err := initialiseDatabase(m, storage.ReadOnly)
	if nil != err {
		return err
	}
	defer cleanup()

	pool, err := storage.PoolByName(entityType.String())
	if nil != err {
		return err
	}

	cursor := pool.NewFetchCursor()
	cursor.Seek(storage.Key(start))

	elements, err := cursor.Fetch(count)
	if nil != err {
		return err
	}

	entities := make([]entityrecord.Entity, 0, len(elements))
	for _, e := range elements {
		entity, _, err := entityrecord.Packed(e.Value).Unpack()
		if nil != err {
			return fmt.Errorf("corrupt record: %x error: %s", e.Key, err)
		}
		entities = append(entities, entity)
	}

	if m.verbose {
		fmt.Fprintf(m.e, "fetched %d records\n", len(entities))
	}

	out := struct {
		Type     string                `json:"type"`
		Entities []entityrecord.Entity `json:"entities"`
	}{
		Type:     entityType.String(),
		Entities: entities,
	}
	return printJson(m.w, out)
}
