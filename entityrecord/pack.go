// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OSM Kit Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entityrecord

import (
	"unicode/utf8"

	"github.com/osmkit/osmkitd/fault"
	"github.com/osmkit/osmkitd/timestamp"
	"github.com/osmkit/osmkitd/util"
)

// Pack - pack a Node
//
// Pack Varint64(tag) followed by fields in order as struct above,
// coordinates are zigzag encoded, tags last
func (node *Node) Pack() (Packed, error) {
	if err := checkUser(node.User); nil != err {
		return nil, err
	}
	if err := checkTags(node.Tags); nil != err {
		return nil, err
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(NodeTag))
	message = appendUint64(message, node.Id)
	message = appendUint64(message, node.Version)
	message = appendUint64(message, node.Changeset)
	message = appendUint64(message, node.Uid)
	message = appendString(message, node.User)
	message = appendTimestamp(message, node.Timestamp)
	message = appendBool(message, node.Visible)
	message = appendInt64(message, node.Lon)
	message = appendInt64(message, node.Lat)
	return appendTags(message, node.Tags), nil
}

// Pack - pack a Way
//
// node references are stored as zigzag deltas preceded by their count,
// so long ways with adjacent ids stay compact
func (way *Way) Pack() (Packed, error) {
	if err := checkUser(way.User); nil != err {
		return nil, err
	}
	if err := checkTags(way.Tags); nil != err {
		return nil, err
	}
	if len(way.Nodes) < minNodeReferences {
		return nil, fault.ErrWayHasTooFewNodes
	}
	if len(way.Nodes) > maxNodeReferences {
		return nil, fault.ErrTooManyNodeReferences
	}

	message := util.ToVarint64(uint64(WayTag))
	message = appendUint64(message, way.Id)
	message = appendUint64(message, way.Version)
	message = appendUint64(message, way.Changeset)
	message = appendUint64(message, way.Uid)
	message = appendString(message, way.User)
	message = appendTimestamp(message, way.Timestamp)
	message = appendBool(message, way.Visible)

	message = appendUint64(message, uint64(len(way.Nodes)))
	previous := int64(0)
	for _, ref := range way.Nodes {
		message = appendInt64(message, ref-previous)
		previous = ref
	}
	return appendTags(message, way.Tags), nil
}

// Pack - pack a Relation
func (relation *Relation) Pack() (Packed, error) {
	if err := checkUser(relation.User); nil != err {
		return nil, err
	}
	if err := checkTags(relation.Tags); nil != err {
		return nil, err
	}
	if len(relation.Members) > maxMemberCount {
		return nil, fault.ErrTooManyMembers
	}

	message := util.ToVarint64(uint64(RelationTag))
	message = appendUint64(message, relation.Id)
	message = appendUint64(message, relation.Version)
	message = appendUint64(message, relation.Changeset)
	message = appendUint64(message, relation.Uid)
	message = appendString(message, relation.User)
	message = appendTimestamp(message, relation.Timestamp)
	message = appendBool(message, relation.Visible)

	message = appendUint64(message, uint64(len(relation.Members)))
	for _, member := range relation.Members {
		switch member.Type {
		case NodeTag, WayTag, RelationTag:
		default:
			return nil, fault.ErrInvalidMemberType
		}
		if utf8.RuneCountInString(member.Role) > maxRoleLength {
			return nil, fault.ErrRoleTooLong
		}
		message = appendUint64(message, uint64(member.Type))
		message = appendInt64(message, member.Ref)
		message = appendString(message, member.Role)
	}
	return appendTags(message, relation.Tags), nil
}

// Pack - pack a Changeset
//
// both timestamps travel as their raw representation value, an open
// changeset has an unset ClosedAt
func (changeset *Changeset) Pack() (Packed, error) {
	if err := checkUser(changeset.User); nil != err {
		return nil, err
	}
	if err := checkTags(changeset.Tags); nil != err {
		return nil, err
	}

	message := util.ToVarint64(uint64(ChangesetTag))
	message = appendUint64(message, changeset.Id)
	message = appendUint64(message, changeset.Uid)
	message = appendString(message, changeset.User)
	message = appendTimestamp(message, changeset.CreatedAt)
	message = appendTimestamp(message, changeset.ClosedAt)
	message = appendBool(message, changeset.Open)
	message = appendUint64(message, changeset.NumChanges)
	return appendTags(message, changeset.Tags), nil
}

// field checks shared by all records

func checkUser(user string) error {
	if utf8.RuneCountInString(user) > maxUserLength {
		return fault.ErrUserNameTooLong
	}
	return nil
}

func checkTags(tags Tags) error {
	if len(tags) > maxTagCount {
		return fault.ErrTooManyTags
	}
	for _, tag := range tags {
		if 0 == len(tag.Key) {
			return fault.ErrTagKeyEmpty
		}
		if utf8.RuneCountInString(tag.Key) > maxKeyLength {
			return fault.ErrTagKeyTooLong
		}
		if utf8.RuneCountInString(tag.Value) > maxValueLength {
			return fault.ErrTagValueTooLong
		}
	}
	return nil
}

// append a string to a buffer
//
// the field is prefixed by Varint64(length)
func appendString(buffer Packed, s string) Packed {
	l := util.ToVarint64(uint64(len(s)))
	buffer = append(buffer, l...)
	return append(buffer, s...)
}

// append a Varint64 to a buffer
func appendUint64(buffer Packed, value uint64) Packed {
	valueBytes := util.ToVarint64(value)
	return append(buffer, valueBytes...)
}

// append a zigzag encoded Varint64 to a buffer
func appendInt64(buffer Packed, value int64) Packed {
	return appendUint64(buffer, util.ToZigzag64(value))
}

// append a bool as a single byte Varint64
func appendBool(buffer Packed, value bool) Packed {
	b := uint64(0)
	if value {
		b = 1
	}
	return appendUint64(buffer, b)
}

// append a timestamp representation value
func appendTimestamp(buffer Packed, ts timestamp.Timestamp) Packed {
	return appendUint64(buffer, ts.Uint64())
}

// append a tag list to a buffer
//
// count followed by length prefixed key/value pairs in order
func appendTags(buffer Packed, tags Tags) Packed {
	buffer = appendUint64(buffer, uint64(len(tags)))
	for _, tag := range tags {
		buffer = appendString(buffer, tag.Key)
		buffer = appendString(buffer, tag.Value)
	}
	return buffer
}
