// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OSM Kit Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package timestamp - compact fixed-width timestamps
//
// A timestamp is an unsigned 32 bit count of seconds since the epoch
// (1970-01-01T00:00:00Z) with a textual form of exactly
// "yyyy-mm-ddThh:mm:ssZ".  The value zero means unset and formats to
// an empty string.  The counter overflows silently for instants at or
// after 2106-02-07T06:28:16Z; mapping data never predates 1970 so the
// unsigned representation doubles the usable range of a signed value.
//
// Two reserved values, StartOfTime (1) and EndOfTime (0xffffffff),
// bound every other valid timestamp and seed min/max reductions over
// entity streams.
package timestamp
