// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OSM Kit Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package timestamp

import (
	"fmt"
)

// MarshalText - convert a timestamp into JSON
//
// an unset timestamp marshals to the empty string
func (ts Timestamp) MarshalText() ([]byte, error) {
	return []byte(ts.ToISO()), nil
}

// UnmarshalText - convert a timestamp textual form from JSON
//
// empty text yields the unset timestamp, anything else must parse
func (ts *Timestamp) UnmarshalText(s []byte) error {
	if 0 == len(s) {
		*ts = 0
		return nil
	}
	parsed, err := Parse(string(s))
	if nil != err {
		return err
	}
	*ts = parsed
	return nil
}

// Scan - convert a timestamp textual form for use by the format package scan routines
func (ts *Timestamp) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		switch c {
		case '-', ':', 'T', 'Z':
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	parsed, err := Parse(string(token))
	if nil != err {
		return err
	}

	*ts = parsed
	return nil
}
