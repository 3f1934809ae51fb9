// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OSM Kit Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package timestamp_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/osmkit/osmkitd/fault"
	"github.com/osmkit/osmkitd/timestamp"
)

// representation value ↔ textual form pairs
var isoTests = []struct {
	value uint32
	iso   string
}{
	{1, "1970-01-01T00:00:01Z"},
	{1000000, "1970-01-12T13:46:40Z"},
	{1425168000, "2015-03-01T00:00:00Z"},
	{1456704000, "2016-02-29T00:00:00Z"}, // leap year
	{1469439000, "2016-07-25T09:30:00Z"},
	{1500000000, "2017-07-14T02:40:00Z"},
	{0xfffffffe, "2106-02-07T06:28:14Z"},
	{0xffffffff, "2106-02-07T06:28:15Z"},
}

func TestToISO(t *testing.T) {

	for i, item := range isoTests {
		ts := timestamp.FromSeconds(int64(item.value))
		if iso := ts.ToISO(); iso != item.iso {
			t.Errorf("%d: ToISO(%d) -> %q  expected: %q", i, item.value, iso, item.iso)
		}
	}
}

func TestParse(t *testing.T) {

	for i, item := range isoTests {
		ts, err := timestamp.Parse(item.iso)
		if nil != err {
			t.Fatalf("%d: Parse(%q) error: %s", i, item.iso, err)
		}
		if ts.Uint32() != item.value {
			t.Errorf("%d: Parse(%q) -> %d  expected: %d", i, item.iso, ts.Uint32(), item.value)
		}
	}
}

// round trip parse(format(v)) == v for selected representation values
func TestRoundTrip(t *testing.T) {

	for i, value := range []uint32{1, 1000000, 1500000000, 0xfffffffe} {
		ts := timestamp.FromSeconds(int64(value))
		back, err := timestamp.Parse(ts.ToISO())
		if nil != err {
			t.Fatalf("%d: Parse(%q) error: %s", i, ts.ToISO(), err)
		}
		if back != ts {
			t.Errorf("%d: round trip of %d -> %d", i, value, back.Uint32())
		}
	}
}

func TestInvalidZero(t *testing.T) {

	var unset timestamp.Timestamp
	if unset.IsValid() {
		t.Errorf("zero timestamp is valid")
	}
	if iso := unset.ToISO(); "" != iso {
		t.Errorf("zero timestamp formats to: %q  expected empty", iso)
	}
	if _, err := timestamp.Parse(""); fault.ErrCannotParseTimestamp != err {
		t.Errorf("parse of empty string returned: %v  expected: %v", err, fault.ErrCannotParseTimestamp)
	}
}

func TestParseInvalid(t *testing.T) {

	invalid := []string{
		"2015-01-01T00:00:00",     // too short
		"2015-01-01T00:00:00ZZ",   // too long
		"2015/01/01T00:00:00Z",    // wrong date separators
		"2015-01-01 00:00:00Z",    // missing T
		"2015-01-01T00.00.00Z",    // wrong time separators
		"2015-01-01T00:00:00z",    // lower case zone
		"2015-01-01T00:00:00+",    // offset instead of Z
		"2O15-01-01T00:00:00Z",    // letter O in year
		"2015-00-01T00:00:00Z",    // month zero
		"2016-13-01T00:00:00Z",    // month thirteen
		"2015-01-00T00:00:00Z",    // day zero
		"2015-01-32T00:00:00Z",    // day past January bound
		"2015-02-30T00:00:00Z",    // day past February bound
		"2015-04-31T00:00:00Z",    // day past April bound
		"2015-01-01T24:00:00Z",    // hour 24
		"2015-01-01T00:60:00Z",    // minute 60
		"2015-01-01T00:00:61Z",    // second 61
		" 2015-01-01T00:00:00Z",   // leading space
		"2015- 1- 1T00:00:00Z",    // spaces in fields
		"\x0015-01-01T00:00:00Z",  // control byte
	}

	for i, s := range invalid {
		ts, err := timestamp.Parse(s)
		if fault.ErrCannotParseTimestamp != err {
			t.Errorf("%d: testing: %q", i, s)
			t.Errorf("%d: expected ErrCannotParseTimestamp but got: %v", i, err)
		}
		if 0 != ts {
			t.Errorf("%d: Parse(%q) -> %d  expected: 0", i, s, ts.Uint32())
		}
	}
}

// the second field tolerates the leap second notation 60,
// converting by ordinary calendar arithmetic
func TestParseLeapSecond(t *testing.T) {

	ts, err := timestamp.Parse("2016-12-31T23:59:60Z")
	if nil != err {
		t.Fatalf("parse error: %s", err)
	}
	next, err := timestamp.Parse("2017-01-01T00:00:00Z")
	if nil != err {
		t.Fatalf("parse error: %s", err)
	}
	if ts != next {
		t.Errorf("leap second: %d  expected: %d", ts.Uint32(), next.Uint32())
	}
}

// the per-month day table fixes February at 29 days for every year,
// so February 29 of a non leap year passes structural validation and
// converts to the same instant as March 1
func TestParseFebruary29NonLeapYear(t *testing.T) {

	ts, err := timestamp.Parse("2015-02-29T00:00:00Z")
	if nil != err {
		t.Fatalf("parse error: %s", err)
	}
	march, err := timestamp.Parse("2015-03-01T00:00:00Z")
	if nil != err {
		t.Fatalf("parse error: %s", err)
	}
	if ts != march {
		t.Errorf("2015-02-29 -> %d  expected: %d", ts.Uint32(), march.Uint32())
	}
}

func TestOrdering(t *testing.T) {

	texts := []string{
		"1970-01-01T00:00:01Z",
		"1999-12-31T23:59:59Z",
		"2000-01-01T00:00:00Z",
		"2016-07-25T09:30:00Z",
		"2106-02-07T06:28:14Z",
	}

	parsed := make([]timestamp.Timestamp, len(texts))
	for i, s := range texts {
		ts, err := timestamp.Parse(s)
		if nil != err {
			t.Fatalf("%d: parse error: %s", i, err)
		}
		parsed[i] = ts
	}

	for i := 1; i < len(parsed); i += 1 {
		a := parsed[i-1]
		b := parsed[i]
		if !a.Before(b) || b.Before(a) || !b.After(a) {
			t.Errorf("%d: ordering failed: %s ≥ %s", i, a, b)
		}
		if -1 != a.Compare(b) || 1 != b.Compare(a) || 0 != a.Compare(a) {
			t.Errorf("%d: compare failed between %s and %s", i, a, b)
		}
	}

	for i, ts := range parsed {
		if !ts.After(0) {
			t.Errorf("%d: unset does not order before: %s", i, ts)
		}
	}
}

func TestSentinels(t *testing.T) {

	if 1 != timestamp.StartOfTime().Uint32() {
		t.Errorf("StartOfTime: %d  expected: 1", timestamp.StartOfTime().Uint32())
	}
	if 0xffffffff != timestamp.EndOfTime().Uint32() {
		t.Errorf("EndOfTime: %x  expected: ffffffff", timestamp.EndOfTime().Uint32())
	}

	one, err := timestamp.Parse("1970-01-01T00:00:01Z")
	if nil != err {
		t.Fatalf("parse error: %s", err)
	}
	if one != timestamp.StartOfTime() {
		t.Errorf("parsed: %d  expected StartOfTime", one.Uint32())
	}

	for i, item := range isoTests[1 : len(isoTests)-1] {
		ts := timestamp.FromSeconds(int64(item.value))
		if !timestamp.StartOfTime().Before(ts) {
			t.Errorf("%d: StartOfTime does not precede: %s", i, ts)
		}
		if !timestamp.EndOfTime().After(ts) {
			t.Errorf("%d: EndOfTime does not follow: %s", i, ts)
		}
	}
}

func TestConversions(t *testing.T) {

	ts := timestamp.FromSeconds(1469439000)
	if 1469439000 != ts.Seconds() {
		t.Errorf("Seconds: %d  expected: 1469439000", ts.Seconds())
	}
	if uint32(1469439000) != ts.Uint32() {
		t.Errorf("Uint32: %d  expected: 1469439000", ts.Uint32())
	}
	if uint64(1469439000) != ts.Uint64() {
		t.Errorf("Uint64: %d  expected: 1469439000", ts.Uint64())
	}
	if utc := ts.Time().Format("2006-01-02T15:04:05Z"); "2016-07-25T09:30:00Z" != utc {
		t.Errorf("Time: %q  expected: 2016-07-25T09:30:00Z", utc)
	}

	// truncation past the 32 bit span wraps silently
	wrapped := timestamp.FromSeconds(0x100000001)
	if 1 != wrapped.Uint32() {
		t.Errorf("wrapped: %d  expected: 1", wrapped.Uint32())
	}
}

func TestStringer(t *testing.T) {

	ts := timestamp.FromSeconds(1469439000)
	if s := fmt.Sprintf("%s", ts); "2016-07-25T09:30:00Z" != s {
		t.Errorf("timestamp(%%s): %q  expected: 2016-07-25T09:30:00Z", s)
	}
	if s := fmt.Sprintf("%#v", ts); "<timestamp:2016-07-25T09:30:00Z>" != s {
		t.Errorf("timestamp(%%#v): %q  expected: <timestamp:2016-07-25T09:30:00Z>", s)
	}
}

func TestScan(t *testing.T) {

	var ts timestamp.Timestamp
	n, err := fmt.Sscan("2016-07-25T09:30:00Z", &ts)
	if nil != err {
		t.Fatalf("scan error: %s", err)
	}
	if 1 != n {
		t.Fatalf("scanned: %d items  expected: 1", n)
	}
	if 1469439000 != ts.Uint32() {
		t.Errorf("scanned: %d  expected: 1469439000", ts.Uint32())
	}

	var bad timestamp.Timestamp
	_, err = fmt.Sscan("2016-13-01T00:00:00Z", &bad)
	if fault.ErrCannotParseTimestamp != err {
		t.Errorf("scan of invalid month returned: %v  expected: %v", err, fault.ErrCannotParseTimestamp)
	}
}

func TestMarshalling(t *testing.T) {

	type record struct {
		When timestamp.Timestamp `json:"when"`
	}

	in := record{When: timestamp.FromSeconds(1469439000)}
	buffer, err := json.Marshal(in)
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}
	expected := `{"when":"2016-07-25T09:30:00Z"}`
	if expected != string(buffer) {
		t.Errorf("marshalled: %s  expected: %s", buffer, expected)
	}

	var out record
	err = json.Unmarshal(buffer, &out)
	if nil != err {
		t.Fatalf("unmarshal error: %s", err)
	}
	if in.When != out.When {
		t.Errorf("unmarshalled: %d  expected: %d", out.When.Uint32(), in.When.Uint32())
	}

	// unset round trips through the empty string
	var unset record
	buffer, err = json.Marshal(unset)
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}
	if `{"when":""}` != string(buffer) {
		t.Errorf("marshalled: %s  expected: {\"when\":\"\"}", buffer)
	}
	out.When = timestamp.StartOfTime()
	err = json.Unmarshal(buffer, &out)
	if nil != err {
		t.Fatalf("unmarshal error: %s", err)
	}
	if out.When.IsValid() {
		t.Errorf("unmarshalled empty text: %d  expected unset", out.When.Uint32())
	}
}
