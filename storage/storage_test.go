// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OSM Kit Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osmkit/osmkitd/entityrecord"
	"github.com/osmkit/osmkitd/fault"
	"github.com/osmkit/osmkitd/storage"
	"github.com/osmkit/osmkitd/timestamp"
)

func TestInitialiseTwice(t *testing.T) {
	setup(t)
	defer teardown(t)

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "missing already initialised error")
}

func TestPutGetDelete(t *testing.T) {
	setup(t)
	defer teardown(t)

	key := storage.Key(240001234)
	value := []byte{0x01, 0x02, 0x03}

	assert.False(t, storage.Pool.Nodes.Has(key), "unexpected key")

	storage.Pool.Nodes.Put(key, value)
	assert.True(t, storage.Pool.Nodes.Has(key), "missing key")
	assert.Equal(t, value, storage.Pool.Nodes.Get(key), "wrong value")

	// pools have separate key spaces
	assert.False(t, storage.Pool.Ways.Has(key), "key leaked between pools")

	storage.Pool.Nodes.Delete(key)
	assert.False(t, storage.Pool.Nodes.Has(key), "key not deleted")
	assert.Nil(t, storage.Pool.Nodes.Get(key), "deleted key has value")
}

func TestPoolByName(t *testing.T) {
	setup(t)
	defer teardown(t)

	for _, name := range []string{"node", "way", "relation", "changeset"} {
		pool, err := storage.PoolByName(name)
		assert.Nil(t, err, "pool lookup failed")
		assert.NotNil(t, pool, "nil pool for %s", name)
	}

	_, err := storage.PoolByName("area")
	assert.Equal(t, fault.ErrInvalidPoolName, err, "missing invalid pool error")
}

func TestCursorFetch(t *testing.T) {
	setup(t)
	defer teardown(t)

	// store out of order, expect key ordered iteration
	ids := []uint64{70, 10, 50, 30, 60, 20, 40}
	for _, id := range ids {
		storage.Pool.Ways.Put(storage.Key(id), []byte{byte(id)})
	}

	cursor := storage.Pool.Ways.NewFetchCursor()

	first, err := cursor.Fetch(3)
	assert.Nil(t, err, "fetch failed")
	assert.Equal(t, 3, len(first), "wrong element count")

	second, err := cursor.Fetch(10)
	assert.Nil(t, err, "fetch failed")
	assert.Equal(t, 4, len(second), "wrong element count")

	expected := uint64(10)
	for _, e := range append(first, second...) {
		assert.Equal(t, storage.Key(expected), e.Key, "wrong key order")
		assert.Equal(t, []byte{byte(expected)}, e.Value, "wrong value")
		expected += 10
	}

	third, err := cursor.Fetch(1)
	assert.Nil(t, err, "fetch failed")
	assert.Equal(t, 0, len(third), "cursor not exhausted")

	_, err = cursor.Fetch(0)
	assert.Equal(t, fault.ErrInvalidCount, err, "missing invalid count error")
}

func TestCursorMap(t *testing.T) {
	setup(t)
	defer teardown(t)

	for id := uint64(1); id <= 5; id += 1 {
		storage.Pool.Changesets.Put(storage.Key(id), []byte{byte(id)})
	}

	sum := 0
	err := storage.Pool.Changesets.NewFetchCursor().Map(func(key []byte, value []byte) error {
		sum += int(value[0])
		return nil
	})
	assert.Nil(t, err, "map failed")
	assert.Equal(t, 15, sum, "map missed elements")
}

// packed entities survive a trip through their pool
func TestEntityStorage(t *testing.T) {
	setup(t)
	defer teardown(t)

	when, err := timestamp.Parse("2016-07-25T09:30:00Z")
	assert.Nil(t, err, "timestamp parse failed")

	node := &entityrecord.Node{
		Id:        240001234,
		Version:   3,
		Changeset: 41290471,
		Uid:       1234,
		User:      "surveyor",
		Timestamp: when,
		Visible:   true,
		Lon:       83194160,
		Lat:       475000123,
		Tags:      entityrecord.Tags{{Key: "amenity", Value: "cafe"}},
	}

	packed, err := node.Pack()
	assert.Nil(t, err, "pack failed")

	storage.Pool.Nodes.Put(storage.Key(node.Id), packed)

	stored := storage.Pool.Nodes.Get(storage.Key(node.Id))
	assert.NotNil(t, stored, "missing stored node")

	entity, _, err := entityrecord.Packed(stored).Unpack()
	assert.Nil(t, err, "unpack failed")

	back, ok := entity.(*entityrecord.Node)
	assert.True(t, ok, "wrong entity type")
	assert.Equal(t, node, back, "node mismatch")
	assert.Equal(t, "2016-07-25T09:30:00Z", back.Timestamp.ToISO(), "timestamp mismatch")
}
