// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OSM Kit Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entityrecord

import (
	"fmt"

	"github.com/osmkit/osmkitd/fault"
	"github.com/osmkit/osmkitd/timestamp"
)

// TagType - type code for entity records
// this is encoded as a Varint64 at the start of "Packed"
type TagType uint64

// enumerate the possible entity record types
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	NodeTag      = TagType(iota) // a point with coordinates
	WayTag       = TagType(iota) // an ordered list of node references
	RelationTag  = TagType(iota) // typed members with roles
	ChangesetTag = TagType(iota) // an edit session

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// Entity - generic entity record interface
type Entity interface {
	Pack() (Packed, error)
}

// byte sizes and counts for various fields
const (
	maxUserLength     = 255
	maxKeyLength      = 255
	maxValueLength    = 255
	maxRoleLength     = 255
	maxTagCount       = 4096
	minNodeReferences = 2
	maxNodeReferences = 2000
	maxMemberCount    = 32000
)

// Tag - a single key/value annotation
type Tag struct {
	Key   string `json:"key"`   // utf-8
	Value string `json:"value"` // utf-8
}

// Tags - ordered annotation list, order is preserved by the codec
type Tags []Tag

// Node - a point on the surface with fixed precision coordinates
// Lon/Lat unit is 10⁻⁷ degree, matching the usual mapping data precision
type Node struct {
	Id        uint64              `json:"id"`
	Version   uint64              `json:"version"`
	Changeset uint64              `json:"changeset"`
	Uid       uint64              `json:"uid"`
	User      string              `json:"user"` // utf-8
	Timestamp timestamp.Timestamp `json:"timestamp"`
	Visible   bool                `json:"visible"`
	Lon       int64               `json:"lon"`
	Lat       int64               `json:"lat"`
	Tags      Tags                `json:"tags"`
}

// Way - an ordered list of node references forming a polyline or area
type Way struct {
	Id        uint64              `json:"id"`
	Version   uint64              `json:"version"`
	Changeset uint64              `json:"changeset"`
	Uid       uint64              `json:"uid"`
	User      string              `json:"user"` // utf-8
	Timestamp timestamp.Timestamp `json:"timestamp"`
	Visible   bool                `json:"visible"`
	Nodes     []int64             `json:"nodes"` // node ids in order
	Tags      Tags                `json:"tags"`
}

// Member - one constituent of a relation
type Member struct {
	Type TagType `json:"type"` // NodeTag, WayTag or RelationTag
	Ref  int64   `json:"ref"`
	Role string  `json:"role"` // utf-8
}

// Relation - an ordered list of typed members with roles
type Relation struct {
	Id        uint64              `json:"id"`
	Version   uint64              `json:"version"`
	Changeset uint64              `json:"changeset"`
	Uid       uint64              `json:"uid"`
	User      string              `json:"user"` // utf-8
	Timestamp timestamp.Timestamp `json:"timestamp"`
	Visible   bool                `json:"visible"`
	Members   []Member            `json:"members"`
	Tags      Tags                `json:"tags"`
}

// Changeset - an edit session bounded by two timestamps
// ClosedAt stays unset while the changeset is still open
type Changeset struct {
	Id         uint64              `json:"id"`
	Uid        uint64              `json:"uid"`
	User       string              `json:"user"` // utf-8
	CreatedAt  timestamp.Timestamp `json:"createdAt"`
	ClosedAt   timestamp.Timestamp `json:"closedAt"`
	Open       bool                `json:"open"`
	NumChanges uint64              `json:"numChanges"`
	Tags       Tags                `json:"tags"`
}

// internal conversion
func toString(tag TagType) ([]byte, error) {
	switch tag {
	case NodeTag:
		return []byte("node"), nil
	case WayTag:
		return []byte("way"), nil
	case RelationTag:
		return []byte("relation"), nil
	case ChangesetTag:
		return []byte("changeset"), nil
	default:
		return []byte{}, fault.ErrInvalidEntityTag
	}
}

// FromString - convert a record type name to its tag
func FromString(in string) (TagType, error) {
	switch in {
	case "node":
		return NodeTag, nil
	case "way":
		return WayTag, nil
	case "relation":
		return RelationTag, nil
	case "changeset":
		return ChangesetTag, nil
	default:
		return NullTag, fault.ErrInvalidEntityTag
	}
}

// String - convert a tag to its name for use by the fmt package (for %s)
func (tag TagType) String() string {
	s, err := toString(tag)
	if nil != err {
		return fmt.Sprintf("*tag:%d*", uint64(tag))
	}
	return string(s)
}

// GoString - tag value and name, for debugging (for %#v)
func (tag TagType) GoString() string {
	return fmt.Sprintf("<tag#%d:%q>", uint64(tag), tag.String())
}

// MarshalText - convert a tag into JSON
func (tag TagType) MarshalText() ([]byte, error) {
	return toString(tag)
}

// UnmarshalText - convert a tag name to its enumeration value from JSON
func (tag *TagType) UnmarshalText(s []byte) error {
	t, err := FromString(string(s))
	if nil != err {
		return err
	}
	*tag = t
	return nil
}
