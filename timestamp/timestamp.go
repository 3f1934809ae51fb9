// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OSM Kit Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package timestamp

import (
	"math"
	"time"

	"github.com/osmkit/osmkitd/fault"
)

// Timestamp - seconds since the epoch as an unsigned 32 bit integer
//
// the zero value means unset/invalid and is never a real instant
type Timestamp uint32

// ISOTimestampLength - length of the textual form "yyyy-mm-ddThh:mm:ssZ"
const ISOTimestampLength = 20

// structural shape of the textual form
// 'd' marks an ASCII digit, any other byte is a required literal
const isoPattern = "dddd-dd-ddTdd:dd:ddZ"

// upper bound for the day field of each month
//
// February is fixed at 29 for every year; only the calendar
// conversion is leap year aware
var monthLengths = [12]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// FromSeconds - construct a timestamp from a seconds-since-epoch count
//
// no range checking is performed: the value is silently truncated to
// 32 bits, so instants at or after 2106-02-07T06:28:16Z wrap
func FromSeconds(seconds int64) Timestamp {
	return Timestamp(uint32(seconds))
}

// Parse - construct a timestamp from its textual form
//
// the input must be exactly "yyyy-mm-ddThh:mm:ssZ"; any structural or
// range violation returns fault.ErrCannotParseTimestamp
//
// a second field of 60 is accepted to tolerate leap second notation,
// but converts by ordinary calendar arithmetic
func Parse(s string) (Timestamp, error) {
	if ISOTimestampLength != len(s) {
		return 0, fault.ErrCannotParseTimestamp
	}

	for i := 0; i < ISOTimestampLength; i += 1 {
		if 'd' == isoPattern[i] {
			if s[i] < '0' || s[i] > '9' {
				return 0, fault.ErrCannotParseTimestamp
			}
		} else if s[i] != isoPattern[i] {
			return 0, fault.ErrCannotParseTimestamp
		}
	}

	year := number(s, 0, 4)
	month := number(s, 5, 2) - 1 // zero based
	day := number(s, 8, 2)
	hour := number(s, 11, 2)
	minute := number(s, 14, 2)
	second := number(s, 17, 2)

	if month < 0 || month > 11 ||
		day < 1 || day > monthLengths[month] ||
		hour > 23 ||
		minute > 59 ||
		second > 60 {
		return 0, fault.ErrCannotParseTimestamp
	}

	seconds := epochDays(year, month, day)*secondsPerDay +
		int64(hour)*3600 + int64(minute)*60 + int64(second)
	return FromSeconds(seconds), nil
}

// FromISO - synonym for Parse
func FromISO(s string) (Timestamp, error) {
	return Parse(s)
}

// IsValid - true if the timestamp is set to something other than zero
func (ts Timestamp) IsValid() bool {
	return 0 != ts
}

// Seconds - the seconds-since-epoch count as a signed integer
func (ts Timestamp) Seconds() int64 {
	return int64(ts)
}

// Uint32 - the raw representation value
func (ts Timestamp) Uint32() uint32 {
	return uint32(ts)
}

// Uint64 - the representation value widened for packing
func (ts Timestamp) Uint64() uint64 {
	return uint64(ts)
}

// Time - the timestamp as a UTC time.Time, for interoperability only
//
// calendar arithmetic inside this package never goes through time.Time
func (ts Timestamp) Time() time.Time {
	return time.Unix(ts.Seconds(), 0).UTC()
}

// ToISO - the canonical textual form
//
// an unset timestamp produces the empty string, any other value
// produces exactly twenty bytes "yyyy-mm-ddThh:mm:ssZ"
func (ts Timestamp) ToISO() string {
	if 0 == ts {
		return ""
	}

	seconds := ts.Seconds()
	days := seconds / secondsPerDay
	rem := seconds % secondsPerDay

	year, month, day := civilFromDays(days)

	buffer := make([]byte, ISOTimestampLength)
	putDigits(buffer[0:4], year)
	buffer[4] = '-'
	putDigits(buffer[5:7], month)
	buffer[7] = '-'
	putDigits(buffer[8:10], day)
	buffer[10] = 'T'
	putDigits(buffer[11:13], int(rem/3600))
	buffer[13] = ':'
	putDigits(buffer[14:16], int(rem%3600/60))
	buffer[16] = ':'
	putDigits(buffer[17:19], int(rem%60))
	buffer[19] = 'Z'
	return string(buffer)
}

// String - textual form for use by the fmt package (for %s)
func (ts Timestamp) String() string {
	return ts.ToISO()
}

// GoString - representation value and textual form, for debugging (for %#v)
func (ts Timestamp) GoString() string {
	return "<timestamp:" + ts.ToISO() + ">"
}

// Compare - three way unsigned comparison
//
// returns -1/0/+1 if ts is chronologically before/equal/after rhs
func (ts Timestamp) Compare(rhs Timestamp) int {
	switch {
	case ts < rhs:
		return -1
	case ts > rhs:
		return 1
	default:
		return 0
	}
}

// Before - true if ts is strictly earlier than rhs
func (ts Timestamp) Before(rhs Timestamp) bool {
	return ts < rhs
}

// After - true if ts is strictly later than rhs
func (ts Timestamp) After(rhs Timestamp) bool {
	return ts > rhs
}

// StartOfTime - a timestamp ordered before every other valid timestamp
func StartOfTime() Timestamp {
	return Timestamp(1)
}

// EndOfTime - a timestamp ordered after every other valid timestamp
func EndOfTime() Timestamp {
	return Timestamp(math.MaxUint32)
}

// fold a fixed-width run of ASCII digits into an integer
// the caller has already verified the bytes are digits
func number(s string, offset int, width int) int {
	n := 0
	for i := offset; i < offset+width; i += 1 {
		n = n*10 + int(s[i]-'0')
	}
	return n
}

// render a value right aligned as zero padded ASCII digits
func putDigits(buffer []byte, value int) {
	for i := len(buffer) - 1; i >= 0; i -= 1 {
		buffer[i] = byte('0' + value%10)
		value /= 10
	}
}
