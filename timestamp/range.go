// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OSM Kit Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package timestamp

// Range - running minimum/maximum over a stream of timestamps
//
// the accumulator is seeded with the sentinels so that any valid
// timestamp folded in dominates the seed
type Range struct {
	minimum Timestamp
	maximum Timestamp
}

// NewRange - an empty range with sentinel seeds
func NewRange() Range {
	return Range{
		minimum: EndOfTime(),
		maximum: StartOfTime(),
	}
}

// Add - fold a timestamp into the range
//
// unset timestamps are ignored so incomplete records do not distort
// the result
func (r *Range) Add(ts Timestamp) {
	if !ts.IsValid() {
		return
	}
	if ts < r.minimum {
		r.minimum = ts
	}
	if ts > r.maximum {
		r.maximum = ts
	}
}

// Min - earliest timestamp folded in, EndOfTime if the range is empty
func (r Range) Min() Timestamp {
	return r.minimum
}

// Max - latest timestamp folded in, StartOfTime if the range is empty
func (r Range) Max() Timestamp {
	return r.maximum
}

// IsEmpty - true until at least one valid timestamp has been folded in
func (r Range) IsEmpty() bool {
	return r.maximum < r.minimum
}
