// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OSM Kit Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the key/value store of packed entities
//
// maintain a LevelDB database of key/value pairs, one prefixed pool
// per entity kind, each keyed by the big endian entity id
package storage
