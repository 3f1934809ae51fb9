// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OSM Kit Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/urfave/cli"

	"github.com/osmkit/osmkitd/entityrecord"
	"github.com/osmkit/osmkitd/storage"
)

func runStore(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	entityType, err := checkEntityType(c.String("type"))
	if nil != err {
		return err
	}

	fileName, err := checkFileName(c.String("file"))
	if nil != err {
		return err
	}

	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return err
	}

	var entity entityrecord.Entity
	var id uint64

	switch entityType {
	case entityrecord.NodeTag:
		record := &entityrecord.Node{}
		if err := json.Unmarshal(data, record); nil != err {
			return err
		}
		entity = record
		id = record.Id
	case entityrecord.WayTag:
		record := &entityrecord.Way{}
		if err := json.Unmarshal(data, record); nil != err {
			return err
		}
		entity = record
		id = record.Id
	case entityrecord.RelationTag:
		record := &entityrecord.Relation{}
		if err := json.Unmarshal(data, record); nil != err {
			return err
		}
		entity = record
		id = record.Id
	case entityrecord.ChangesetTag:
		record := &entityrecord.Changeset{}
		if err := json.Unmarshal(data, record); nil != err {
			return err
		}
		entity = record
		id = record.Id
	}

	packed, err := entity.Pack()
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "packed %s %d as %d bytes\n", entityType, id, len(packed))
	}

	cleanup, err := initialiseDatabase(m, storage.ReadWrite)
	if nil != err {
		return err
	}
	defer cleanup()

	pool, err := storage.PoolByName(entityType.String())
	if nil != err {
		return err
	}

	pool.Put(storage.Key(id), packed)

	out := struct {
		Type  string `json:"type"`
		Id    uint64 `json:"id"`
		Bytes int    `json:"bytes"`
	}{
		Type:  entityType.String(),
		Id:    id,
		Bytes: len(packed),
	}
	return printJson(m.w, out)
}
