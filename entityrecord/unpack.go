// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OSM Kit Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entityrecord

import (
	"github.com/osmkit/osmkitd/fault"
	"github.com/osmkit/osmkitd/timestamp"
	"github.com/osmkit/osmkitd/util"
)

// string lengths are limited in runes, allow the utf-8 worst case in bytes
const maxStringBytes = 4 * maxValueLength

// Unpack - turn a byte slice back into an entity record
//
// must cast result to the correct type
//
// e.g.
//   node, ok := result.(*entityrecord.Node)
// or:
//   switch entity := result.(type) {
//   case *entityrecord.Node:
func (record Packed) Unpack() (e Entity, n int, err error) {

	// a truncated or corrupt record trips a slice bounds panic
	// somewhere below, turn it into the parse failure
	defer func() {
		if r := recover(); nil != r {
			e = nil
			n = 0
			err = fault.ErrNotEntityPack
		}
	}()

	recordType, n := util.ClippedVarint64(record, 1, int(InvalidTag)-1)
	if 0 == n {
		return nil, 0, fault.ErrNotEntityPack
	}

unpack_switch:
	switch TagType(recordType) {

	case NodeTag:
		header, headerLength := unpackHeader(record[n:])
		if 0 == headerLength {
			break unpack_switch
		}
		n += headerLength

		lon, lonLength := unpackInt64(record[n:])
		if 0 == lonLength {
			break unpack_switch
		}
		n += lonLength

		lat, latLength := unpackInt64(record[n:])
		if 0 == latLength {
			break unpack_switch
		}
		n += latLength

		tags, tagsLength := unpackTags(record[n:])
		if 0 == tagsLength {
			break unpack_switch
		}
		n += tagsLength

		r := &Node{
			Id:        header.id,
			Version:   header.version,
			Changeset: header.changeset,
			Uid:       header.uid,
			User:      header.user,
			Timestamp: header.timestamp,
			Visible:   header.visible,
			Lon:       lon,
			Lat:       lat,
			Tags:      tags,
		}
		return r, n, nil

	case WayTag:
		header, headerLength := unpackHeader(record[n:])
		if 0 == headerLength {
			break unpack_switch
		}
		n += headerLength

		count, countLength := util.ClippedVarint64(record[n:], minNodeReferences, maxNodeReferences)
		if 0 == countLength {
			break unpack_switch
		}
		n += countLength

		nodes := make([]int64, count)
		previous := int64(0)
		for i := 0; i < count; i += 1 {
			delta, deltaLength := unpackInt64(record[n:])
			if 0 == deltaLength {
				break unpack_switch
			}
			n += deltaLength
			previous += delta
			nodes[i] = previous
		}

		tags, tagsLength := unpackTags(record[n:])
		if 0 == tagsLength {
			break unpack_switch
		}
		n += tagsLength

		r := &Way{
			Id:        header.id,
			Version:   header.version,
			Changeset: header.changeset,
			Uid:       header.uid,
			User:      header.user,
			Timestamp: header.timestamp,
			Visible:   header.visible,
			Nodes:     nodes,
			Tags:      tags,
		}
		return r, n, nil

	case RelationTag:
		header, headerLength := unpackHeader(record[n:])
		if 0 == headerLength {
			break unpack_switch
		}
		n += headerLength

		count, countLength := util.ClippedVarint64(record[n:], 0, maxMemberCount)
		if 0 == countLength {
			break unpack_switch
		}
		n += countLength

		var members []Member
		if count > 0 {
			members = make([]Member, count)
		}
		for i := 0; i < count; i += 1 {
			memberType, typeLength := util.FromVarint64(record[n:])
			if 0 == typeLength {
				break unpack_switch
			}
			switch TagType(memberType) {
			case NodeTag, WayTag, RelationTag:
			default:
				return nil, 0, fault.ErrInvalidMemberType
			}
			n += typeLength

			ref, refLength := unpackInt64(record[n:])
			if 0 == refLength {
				break unpack_switch
			}
			n += refLength

			role, roleLength := unpackString(record[n:])
			if 0 == roleLength {
				break unpack_switch
			}
			n += roleLength

			members[i] = Member{
				Type: TagType(memberType),
				Ref:  ref,
				Role: role,
			}
		}

		tags, tagsLength := unpackTags(record[n:])
		if 0 == tagsLength {
			break unpack_switch
		}
		n += tagsLength

		r := &Relation{
			Id:        header.id,
			Version:   header.version,
			Changeset: header.changeset,
			Uid:       header.uid,
			User:      header.user,
			Timestamp: header.timestamp,
			Visible:   header.visible,
			Members:   members,
			Tags:      tags,
		}
		return r, n, nil

	case ChangesetTag:
		id, idLength := util.FromVarint64(record[n:])
		if 0 == idLength {
			break unpack_switch
		}
		n += idLength

		uid, uidLength := util.FromVarint64(record[n:])
		if 0 == uidLength {
			break unpack_switch
		}
		n += uidLength

		user, userLength := unpackString(record[n:])
		if 0 == userLength {
			break unpack_switch
		}
		n += userLength

		createdAt, createdLength := unpackTimestamp(record[n:])
		if 0 == createdLength {
			break unpack_switch
		}
		n += createdLength

		closedAt, closedLength := unpackTimestamp(record[n:])
		if 0 == closedLength {
			break unpack_switch
		}
		n += closedLength

		open, openLength := unpackBool(record[n:])
		if 0 == openLength {
			break unpack_switch
		}
		n += openLength

		numChanges, numLength := util.FromVarint64(record[n:])
		if 0 == numLength {
			break unpack_switch
		}
		n += numLength

		tags, tagsLength := unpackTags(record[n:])
		if 0 == tagsLength {
			break unpack_switch
		}
		n += tagsLength

		r := &Changeset{
			Id:         id,
			Uid:        uid,
			User:       user,
			CreatedAt:  createdAt,
			ClosedAt:   closedAt,
			Open:       open,
			NumChanges: numChanges,
			Tags:       tags,
		}
		return r, n, nil
	}
	return nil, 0, fault.ErrNotEntityPack
}

// common leading fields of node, way and relation records
type header struct {
	id        uint64
	version   uint64
	changeset uint64
	uid       uint64
	user      string
	timestamp timestamp.Timestamp
	visible   bool
}

// returns 0 length on any truncation
func unpackHeader(record Packed) (header, int) {
	h := header{}
	n := 0

	id, idLength := util.FromVarint64(record[n:])
	if 0 == idLength {
		return h, 0
	}
	n += idLength
	h.id = id

	version, versionLength := util.FromVarint64(record[n:])
	if 0 == versionLength {
		return h, 0
	}
	n += versionLength
	h.version = version

	changeset, changesetLength := util.FromVarint64(record[n:])
	if 0 == changesetLength {
		return h, 0
	}
	n += changesetLength
	h.changeset = changeset

	uid, uidLength := util.FromVarint64(record[n:])
	if 0 == uidLength {
		return h, 0
	}
	n += uidLength
	h.uid = uid

	user, userLength := unpackString(record[n:])
	if 0 == userLength {
		return h, 0
	}
	n += userLength
	h.user = user

	ts, timestampLength := unpackTimestamp(record[n:])
	if 0 == timestampLength {
		return h, 0
	}
	n += timestampLength
	h.timestamp = ts

	visible, visibleLength := unpackBool(record[n:])
	if 0 == visibleLength {
		return h, 0
	}
	n += visibleLength
	h.visible = visible

	return h, n
}

// a length prefixed string
// may panic on truncated buffers, the caller recovers
func unpackString(record Packed) (string, int) {
	length, offset := util.ClippedVarint64(record, 0, maxStringBytes)
	if 0 == offset {
		return "", 0
	}
	s := string(record[offset : offset+length])
	return s, offset + length
}

func unpackInt64(record Packed) (int64, int) {
	value, length := util.FromVarint64(record)
	if 0 == length {
		return 0, 0
	}
	return util.FromZigzag64(value), length
}

func unpackBool(record Packed) (bool, int) {
	value, length := util.ClippedVarint64(record, 0, 1)
	if 0 == length {
		return false, 0
	}
	return 1 == value, length
}

func unpackTimestamp(record Packed) (timestamp.Timestamp, int) {
	value, length := util.FromVarint64(record)
	if 0 == length {
		return 0, 0
	}
	return timestamp.FromSeconds(int64(value)), length
}

// count prefixed key/value pairs
// returns 0 length on any truncation or limit violation
func unpackTags(record Packed) (Tags, int) {
	count, offset := util.ClippedVarint64(record, 0, maxTagCount)
	if 0 == offset {
		return nil, 0
	}
	if 0 == count {
		return nil, offset
	}
	n := offset

	tags := make(Tags, 0, count)
	for i := 0; i < count; i += 1 {
		key, keyLength := unpackString(record[n:])
		if 0 == keyLength || 0 == len(key) {
			return nil, 0
		}
		n += keyLength

		value, valueLength := unpackString(record[n:])
		if 0 == valueLength {
			return nil, 0
		}
		n += valueLength

		tags = append(tags, Tag{Key: key, Value: value})
	}
	return tags, n
}
